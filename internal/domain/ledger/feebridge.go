package ledger

import (
	"errors"
	"fmt"

	"assignment_ledger/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrOverpayment   = errors.New("payment amount exceeds balance")
)

// ProjectedFee is an assignment rendered in the shape fee collection expects.
// SourceAssignmentID routes payments back to the originating record.
type ProjectedFee struct {
	ID                 string
	SourceAssignmentID string
	BeneficiaryID      string
	Kind               entities.AssignmentKind
	Name               string
	Amount             decimal.Decimal
	OriginalAmount     decimal.Decimal
	Discount           *entities.Discount
	Paid               decimal.Decimal
	Balance            decimal.Decimal
	PaymentStatus      entities.PaymentStatus
	Remaining          *int
}

// Ledger is the per-beneficiary collection view for one period.
type Ledger struct {
	BeneficiaryID string
	Period        entities.Period
	Fees          []ProjectedFee
	TotalAmount   decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalBalance  decimal.Decimal
}

// Project synthesizes the fee-shaped view of a record.
func Project(rec entities.AssignmentRecord) ProjectedFee {
	f := ProjectedFee{
		ID:                 fmt.Sprintf("%s:%s", rec.Kind, rec.ID),
		SourceAssignmentID: rec.ID,
		BeneficiaryID:      rec.BeneficiaryID,
		Kind:               rec.Kind,
		Name:               projectedName(rec),
		Amount:             rec.Charge.Amount,
		OriginalAmount:     rec.Charge.OriginalAmount,
		Discount:           rec.Charge.Discount,
		Paid:               rec.Charge.PaidAmount,
		Balance:            rec.Charge.Balance(),
		PaymentStatus:      rec.Charge.PaymentStatus,
	}
	if rec.Tracking != nil {
		remaining := rec.Tracking.Remaining()
		f.Remaining = &remaining
	}
	return f
}

func projectedName(rec entities.AssignmentRecord) string {
	if rec.Tracking == nil {
		return rec.Label
	}
	switch rec.Tracking.SelectionMode {
	case entities.SelectionFullSet:
		return fmt.Sprintf("%s (Full Set)", rec.Label)
	case entities.SelectionPartialSet:
		return fmt.Sprintf("%s (Partial Set - %d items)", rec.Label, rec.Tracking.ItemCount)
	case entities.SelectionSingleItem:
		if rec.Tracking.ItemLabel != "" {
			return rec.Tracking.ItemLabel
		}
	}
	return rec.Label
}

// ApplyPayment writes a payment made against the projected fee back to its
// source record.
func ApplyPayment(rec *entities.AssignmentRecord, s Stamp, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(rec.Charge.Balance()) {
		return ErrOverpayment
	}
	creditPayment(rec, s, amount, "")
	return nil
}

// ApplyReceipt credits an approved online receipt to its source record. It is
// safe to repeat: a receipt already present in the history is not credited
// again and false is returned. The credit is capped at the balance, so a
// receipt collected for a balance that was settled meanwhile is recorded
// with the amount actually credited.
func ApplyReceipt(rec *entities.AssignmentRecord, s Stamp, receiptID string, amount decimal.Decimal) (bool, error) {
	if receiptID == "" || !amount.IsPositive() {
		return false, ErrInvalidAmount
	}
	if HasReceipt(*rec, receiptID) {
		return false, nil
	}
	credit := decimal.Min(amount, rec.Charge.Balance())
	creditPayment(rec, s, credit, receiptID)
	return true, nil
}

// HasReceipt reports whether the receipt was already credited to rec.
func HasReceipt(rec entities.AssignmentRecord, receiptID string) bool {
	for _, h := range rec.History {
		if h.Action == entities.HistoryPayment && h.ReceiptID == receiptID {
			return true
		}
	}
	return false
}

func creditPayment(rec *entities.AssignmentRecord, s Stamp, amount decimal.Decimal, receiptID string) {
	rec.Charge.PaidAmount = rec.Charge.PaidAmount.Add(amount)
	rec.Charge.PaymentStatus = paymentStatusFor(rec.Charge)

	e := s.entry(entities.HistoryPayment)
	e.Amount = &amount
	e.ReceiptID = receiptID
	e.PreviousStatus = rec.Status
	e.NewStatus = rec.Status
	appendHistory(rec, e)
}

// BuildLedger projects every record that applies to the query period.
func BuildLedger(beneficiaryID string, recs []entities.AssignmentRecord, query, current entities.Period, cal Calendar) Ledger {
	l := Ledger{
		BeneficiaryID: beneficiaryID,
		Period:        query,
		Fees:          make([]ProjectedFee, 0, len(recs)),
		TotalAmount:   decimal.Zero,
		TotalPaid:     decimal.Zero,
		TotalBalance:  decimal.Zero,
	}
	for _, rec := range recs {
		if !AppliesThisPeriod(rec, query, current, cal) {
			continue
		}
		f := Project(rec)
		l.Fees = append(l.Fees, f)
		l.TotalAmount = l.TotalAmount.Add(f.Amount)
		l.TotalPaid = l.TotalPaid.Add(f.Paid)
		l.TotalBalance = l.TotalBalance.Add(f.Balance)
	}
	return l
}
