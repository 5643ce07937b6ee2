package ledger

import (
	"time"

	"assignment_ledger/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testCalendar has three years, listed out of order on purpose, with three
// terms in 2024 (term-2024-2 current).
func testCalendar() Calendar {
	years := []entities.AcademicYear{
		{ID: "year-2025", Name: "2025", StartDate: date(2025, 1, 1)},
		{ID: "year-2023", Name: "2023", StartDate: date(2023, 1, 1)},
		{ID: "year-2024", Name: "2024", StartDate: date(2024, 1, 1), IsCurrent: true},
	}
	terms := []entities.Term{
		{ID: "term-2024-3", AcademicYearID: "year-2024", StartDate: date(2024, 9, 1)},
		{ID: "term-2024-1", AcademicYearID: "year-2024", StartDate: date(2024, 1, 10)},
		{ID: "term-2024-2", AcademicYearID: "year-2024", StartDate: date(2024, 5, 1), IsCurrent: true},
		{ID: "term-2025-1", AcademicYearID: "year-2025", StartDate: date(2025, 1, 10)},
	}
	return NewCalendar(years, terms)
}

func stamp(period entities.Period) Stamp {
	return Stamp{Actor: "bursar", At: date(2024, 6, 1), Period: period}
}

var currentPeriod = entities.Period{AcademicYearID: "year-2024", TermID: "term-2024-2"}

func uniformRecord(price int64, required int) entities.AssignmentRecord {
	rec := entities.AssignmentRecord{
		ID:                "asg-1",
		BeneficiaryID:     "pupil-1",
		Kind:              entities.AssignmentKindUniform,
		Label:             "School Sweater",
		BenefitItemIDs:    []string{"item-sweater"},
		Validity:          entities.Validity{Type: entities.ValidityIndefinite},
		TermApplicability: entities.TermApplicability{Type: entities.TermsAll},
		Charge: entities.Charge{
			Amount:         decimal.NewFromInt(price),
			OriginalAmount: decimal.NewFromInt(price),
			PaidAmount:     decimal.Zero,
		},
		Tracking: &entities.TrackingLedger{
			SelectionMode:    entities.SelectionSingleItem,
			ItemLabel:        "School Sweater",
			ItemCount:        1,
			RequiredQuantity: required,
		},
	}
	Open(&rec, stamp(currentPeriod))
	return rec
}

func feeRecord(amount int64) entities.AssignmentRecord {
	rec := entities.AssignmentRecord{
		ID:                "asg-fee",
		BeneficiaryID:     "pupil-1",
		Kind:              entities.AssignmentKindFee,
		Label:             "Tuition",
		BenefitItemIDs:    []string{"fee-tuition"},
		Validity:          entities.Validity{Type: entities.ValidityIndefinite},
		TermApplicability: entities.TermApplicability{Type: entities.TermsAll},
		Charge: entities.Charge{
			Amount:         decimal.NewFromInt(amount),
			OriginalAmount: decimal.NewFromInt(amount),
			PaidAmount:     decimal.Zero,
		},
	}
	Open(&rec, stamp(currentPeriod))
	return rec
}
