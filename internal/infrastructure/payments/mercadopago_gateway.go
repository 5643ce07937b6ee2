package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"assignment_ledger/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

const (
	statusApproved = "approved"
	statusRejected = "rejected"
)

// MercadoPagoGateway charges assignment balances through Mercado Pago. In mock
// mode no request leaves the process: positive charges are approved and
// anything else is rejected.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[collection][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[collection][gateway] sdk config failed err=%v", err)
		return nil, err
	}
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return simulatePayment(requestPayload)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[collection][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[collection][gateway] create failed err=%v", err)
		return "", "", nil, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	id := fmt.Sprintf("%d", resp.ID)
	log.Printf("[collection][gateway] created provider_payment_id=%s status=%s", id, resp.Status)
	return id, resp.Status, raw, nil
}

// simulatePayment answers with the request echoed back as a provider payment.
func simulatePayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	body := map[string]any{}
	if len(requestPayload) > 0 {
		if err := json.Unmarshal(requestPayload, &body); err != nil || body == nil {
			body = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	status, detail := statusApproved, "accredited"
	if amount, _ := body["transaction_amount"].(float64); amount <= 0 {
		status, detail = statusRejected, "cc_rejected_other_reason"
	}

	id := "mock-" + uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	body["id"] = id
	body["status"] = status
	body["status_detail"] = detail
	body["date_created"] = now
	if status == statusApproved {
		body["date_approved"] = now
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[collection][gateway] simulated provider_payment_id=%s reference=%v status=%s", id, body["external_reference"], status)
	return id, status, raw, nil
}
