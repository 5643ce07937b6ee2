package response

import (
	"time"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/usecase"

	"github.com/shopspring/decimal"
)

type ChargeResponse struct {
	Amount         decimal.Decimal    `json:"amount" swaggertype:"string"`
	OriginalAmount decimal.Decimal    `json:"original_amount" swaggertype:"string"`
	Discount       *entities.Discount `json:"discount,omitempty"`
	PaidAmount     decimal.Decimal    `json:"paid_amount" swaggertype:"string"`
	Balance        decimal.Decimal    `json:"balance" swaggertype:"string"`
	PaymentStatus  string             `json:"payment_status"`
}

type TrackingResponse struct {
	SelectionMode      string `json:"selection_mode"`
	ItemLabel          string `json:"item_label"`
	RequiredQuantity   int    `json:"required_quantity"`
	ReceivedFromParent int    `json:"received_from_parent"`
	ReceivedFromOffice int    `json:"received_from_office"`
	Received           int    `json:"received"`
	Remaining          int    `json:"remaining"`
}

type AssignmentResponse struct {
	AssignmentID      string                     `json:"assignment_id"`
	ID                string                     `json:"id"`
	BeneficiaryID     string                     `json:"beneficiary_id"`
	Kind              string                     `json:"kind"`
	Label             string                     `json:"label"`
	BenefitItemIDs    []string                   `json:"benefit_item_ids"`
	Status            string                     `json:"status"`
	Validity          entities.Validity          `json:"validity"`
	TermApplicability entities.TermApplicability `json:"term_applicability"`
	Charge            ChargeResponse             `json:"charge"`
	Tracking          *TrackingResponse          `json:"tracking,omitempty"`
	DisabledEffect    string                     `json:"disabled_effect,omitempty"`
	DisabledIn        *entities.Period           `json:"disabled_in,omitempty"`
	History           []entities.HistoryEntry    `json:"history"`
	Version           int64                      `json:"version"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
}

func FromAssignment(a entities.AssignmentRecord) AssignmentResponse {
	res := AssignmentResponse{
		AssignmentID:      a.ID,
		ID:                a.ID,
		BeneficiaryID:     a.BeneficiaryID,
		Kind:              string(a.Kind),
		Label:             a.Label,
		BenefitItemIDs:    a.BenefitItemIDs,
		Status:            string(a.Status),
		Validity:          a.Validity,
		TermApplicability: a.TermApplicability,
		Charge: ChargeResponse{
			Amount:         a.Charge.Amount,
			OriginalAmount: a.Charge.OriginalAmount,
			Discount:       a.Charge.Discount,
			PaidAmount:     a.Charge.PaidAmount,
			Balance:        a.Charge.Balance(),
			PaymentStatus:  string(a.Charge.PaymentStatus),
		},
		DisabledEffect: string(a.DisabledEffect),
		History:        a.History,
		Version:        a.Version,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if res.History == nil {
		res.History = []entities.HistoryEntry{}
	}
	if !a.DisabledIn.IsZero() {
		in := a.DisabledIn
		res.DisabledIn = &in
	}
	if t := a.Tracking; t != nil {
		res.Tracking = &TrackingResponse{
			SelectionMode:      string(t.SelectionMode),
			ItemLabel:          t.ItemLabel,
			RequiredQuantity:   t.RequiredQuantity,
			ReceivedFromParent: t.ReceivedFromParent,
			ReceivedFromOffice: t.ReceivedFromOffice,
			Received:           t.Received,
			Remaining:          t.Remaining(),
		}
	}
	return res
}

func FromAssignments(items []entities.AssignmentRecord) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAssignment(a))
	}
	return out
}

type SummaryResponse struct {
	AssignmentID      string          `json:"assignment_id"`
	Period            entities.Period `json:"period"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	AppliesThisPeriod bool            `json:"applies_this_period"`
	Amount            decimal.Decimal `json:"amount" swaggertype:"string"`
	Paid              decimal.Decimal `json:"paid" swaggertype:"string"`
	Balance           decimal.Decimal `json:"balance" swaggertype:"string"`
	Remaining         *int            `json:"remaining,omitempty"`
}

func FromSummary(s usecase.AssignmentSummary) SummaryResponse {
	return SummaryResponse{
		AssignmentID:      s.AssignmentID,
		Period:            s.Period,
		Status:            string(s.Status),
		PaymentStatus:     string(s.PaymentStatus),
		AppliesThisPeriod: s.AppliesThisPeriod,
		Amount:            s.Amount,
		Paid:              s.Paid,
		Balance:           s.Balance,
		Remaining:         s.Remaining,
	}
}
