package response

import (
	"time"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

type ProjectedFeeResponse struct {
	ID                 string             `json:"id"`
	SourceAssignmentID string             `json:"source_assignment_id"`
	Kind               string             `json:"kind"`
	Name               string             `json:"name"`
	Amount             decimal.Decimal    `json:"amount" swaggertype:"string"`
	OriginalAmount     decimal.Decimal    `json:"original_amount" swaggertype:"string"`
	Discount           *entities.Discount `json:"discount,omitempty"`
	Paid               decimal.Decimal    `json:"paid" swaggertype:"string"`
	Balance            decimal.Decimal    `json:"balance" swaggertype:"string"`
	PaymentStatus      string             `json:"payment_status"`
	Remaining          *int               `json:"remaining,omitempty"`
}

type LedgerResponse struct {
	BeneficiaryID string                 `json:"beneficiary_id"`
	Period        entities.Period        `json:"period"`
	Fees          []ProjectedFeeResponse `json:"fees"`
	TotalAmount   decimal.Decimal        `json:"total_amount" swaggertype:"string"`
	TotalPaid     decimal.Decimal        `json:"total_paid" swaggertype:"string"`
	TotalBalance  decimal.Decimal        `json:"total_balance" swaggertype:"string"`
}

func FromLedger(l ledger.Ledger) LedgerResponse {
	fees := make([]ProjectedFeeResponse, 0, len(l.Fees))
	for _, f := range l.Fees {
		fees = append(fees, ProjectedFeeResponse{
			ID:                 f.ID,
			SourceAssignmentID: f.SourceAssignmentID,
			Kind:               string(f.Kind),
			Name:               f.Name,
			Amount:             f.Amount,
			OriginalAmount:     f.OriginalAmount,
			Discount:           f.Discount,
			Paid:               f.Paid,
			Balance:            f.Balance,
			PaymentStatus:      string(f.PaymentStatus),
			Remaining:          f.Remaining,
		})
	}
	return LedgerResponse{
		BeneficiaryID: l.BeneficiaryID,
		Period:        l.Period,
		Fees:          fees,
		TotalAmount:   l.TotalAmount,
		TotalPaid:     l.TotalPaid,
		TotalBalance:  l.TotalBalance,
	}
}

type PaymentReceiptResponse struct {
	PaymentID    string          `json:"payment_id"`
	ID           string          `json:"id"`
	AssignmentID string          `json:"assignment_id"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string"`
	PaymentDate  time.Time       `json:"payment_date"`
	Status       string          `json:"status"`
	AppliedAt    *time.Time      `json:"applied_at,omitempty"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPaymentReceipt(p entities.PaymentReceipt) PaymentReceiptResponse {
	return PaymentReceiptResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		AssignmentID:       p.AssignmentID,
		Amount:             p.Amount,
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		AppliedAt:          p.AppliedAt,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPaymentReceipts(items []entities.PaymentReceipt) []PaymentReceiptResponse {
	out := make([]PaymentReceiptResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPaymentReceipt(p))
	}
	return out
}
