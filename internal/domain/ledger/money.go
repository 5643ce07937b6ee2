package ledger

import (
	"errors"

	"assignment_ledger/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscount = errors.New("invalid discount")
	hundred            = decimal.NewFromInt(100)
)

// ApplyDiscount returns the final amount for an original total.
func ApplyDiscount(original decimal.Decimal, d *entities.Discount) (decimal.Decimal, error) {
	if d == nil {
		return original, nil
	}
	if d.Value.IsNegative() {
		return decimal.Zero, ErrInvalidDiscount
	}

	var final decimal.Decimal
	switch d.Type {
	case entities.DiscountTypeFixed:
		final = original.Sub(d.Value)
	case entities.DiscountTypePercentage:
		if d.Value.GreaterThan(hundred) {
			return decimal.Zero, ErrInvalidDiscount
		}
		final = original.Sub(original.Mul(d.Value).Div(hundred))
	default:
		return decimal.Zero, ErrInvalidDiscount
	}
	if final.IsNegative() {
		return decimal.Zero, nil
	}
	return final, nil
}

func paymentStatusFor(c entities.Charge) entities.PaymentStatus {
	switch {
	case c.Balance().IsZero():
		return entities.PaymentStatusPaid
	case c.PaidAmount.IsPositive():
		return entities.PaymentStatusPartial
	}
	return entities.PaymentStatusPending
}
