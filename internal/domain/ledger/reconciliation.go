package ledger

import (
	"errors"

	"assignment_ledger/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrNotTracked         = errors.New("assignment does not track quantities")
	ErrAssignmentDisabled = errors.New("assignment is disabled")
	ErrInvalidChannel     = errors.New("invalid reception channel")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrOverDelivery       = errors.New("quantity exceeds remaining requirement")
)

// CashEquivalent converts a partial delivery into money: the amount is
// amortized evenly over the required quantity.
func CashEquivalent(amount decimal.Decimal, requiredQuantity, quantity int) decimal.Decimal {
	if requiredQuantity <= 0 || quantity <= 0 {
		return decimal.Zero
	}
	unit := amount.Div(decimal.NewFromInt(int64(requiredQuantity)))
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// parentCredit is the cash equivalent of the parent deliveries numbered
// (from, from+quantity]. It is the difference of two cumulative figures, so
// a complete set of parent deliveries credits exactly the amount whatever
// the split.
func parentCredit(amount decimal.Decimal, requiredQuantity, from, quantity int) decimal.Decimal {
	return cumulativeCredit(amount, requiredQuantity, from+quantity).Sub(cumulativeCredit(amount, requiredQuantity, from))
}

func cumulativeCredit(amount decimal.Decimal, requiredQuantity, delivered int) decimal.Decimal {
	switch {
	case requiredQuantity <= 0 || delivered <= 0:
		return decimal.Zero
	case delivered >= requiredQuantity:
		return amount
	}
	return amount.Mul(decimal.NewFromInt(int64(delivered))).Div(decimal.NewFromInt(int64(requiredQuantity)))
}

// RecordReception registers a delivery through one channel. Parent deliveries
// count as simultaneous payment of their cash equivalent; office deliveries
// were already paid for and only move the received quantity.
func RecordReception(rec *entities.AssignmentRecord, s Stamp, channel entities.ReceptionChannel, quantity int) error {
	if rec.Tracking == nil {
		return ErrNotTracked
	}
	if rec.Status == entities.AssignmentStatusDisabled {
		return ErrAssignmentDisabled
	}
	if !channel.Valid() {
		return ErrInvalidChannel
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	t := rec.Tracking
	if quantity > t.Remaining() {
		return ErrOverDelivery
	}

	var e entities.HistoryEntry
	switch channel {
	case entities.ChannelParent:
		cash := parentCredit(rec.Charge.Amount, t.RequiredQuantity, t.ReceivedFromParent, quantity)
		paid := rec.Charge.PaidAmount.Add(cash)
		if paid.GreaterThan(rec.Charge.Amount) {
			paid = rec.Charge.Amount
		}
		rec.Charge.PaidAmount = paid
		rec.Charge.PaymentStatus = paymentStatusFor(rec.Charge)
		t.ReceivedFromParent += quantity
		e = s.entry(entities.HistoryPaymentAndReceipt)
		e.Amount = &cash
	case entities.ChannelOffice:
		t.ReceivedFromOffice += quantity
		e = s.entry(entities.HistoryReceiptOnly)
	}
	t.Received = t.ReceivedFromParent + t.ReceivedFromOffice

	e.Channel = channel
	e.Quantity = quantity
	e.PreviousStatus = rec.Status
	e.NewStatus = rec.Status
	appendHistory(rec, e)
	return nil
}
