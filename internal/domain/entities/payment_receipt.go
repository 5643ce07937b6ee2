package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptStatus is the provider outcome of an online collection.
type ReceiptStatus string

const (
	ReceiptStatusPendente ReceiptStatus = "pendente"
	ReceiptStatusAprovado ReceiptStatus = "aprovado"
	ReceiptStatusNegado   ReceiptStatus = "negado"
)

// PaymentReceipt is an online payment collected against an assignment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assignment_id-index): assignment_id
//
// ProviderPayloadRaw keeps the original provider body for traceability.
// AppliedAt is set once an approved receipt has been credited to its
// assignment; approved receipts without it still need to be applied.
type PaymentReceipt struct {
	ID           string          `json:"id"`
	AssignmentID string          `json:"assignment_id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Status       ReceiptStatus   `json:"status"`
	AppliedAt    *time.Time      `json:"applied_at,omitempty"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func (p PaymentReceipt) Applied() bool {
	return p.AppliedAt != nil && !p.AppliedAt.IsZero()
}
