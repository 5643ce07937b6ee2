package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyProviderPayload = errors.New("provider_payload cannot be empty")

// OnlinePaymentRequest is the body of the online collection route.
//
// `provider_payload` is forwarded to the payment provider as-is (raw JSON) to
// support varying Mercado Pago schemas. A bare provider body is accepted too.
type OnlinePaymentRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload" swaggertype:"object"`
}

// ParseProviderPayload resolves the provider body from a raw request body.
func ParseProviderPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, key := range []string{"provider_payload", "mp_payload"} {
			wrapped, ok := envelope[key]
			if !ok {
				continue
			}
			if s := strings.TrimSpace(string(wrapped)); s == "" || s == "null" {
				return nil, ErrEmptyProviderPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
