package usecase

import (
	"context"
	"time"

	"assignment_ledger/internal/domain/entities"
	mock_interfaces "assignment_ledger/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var currentPeriod = entities.Period{AcademicYearID: "year-2024", TermID: "term-2024-2"}

func expectCalendar(repo *mock_interfaces.MockICalendarRepository) {
	years := []entities.AcademicYear{
		{ID: "year-2023", Name: "2023", StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "year-2024", Name: "2024", StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), IsCurrent: true},
		{ID: "year-2025", Name: "2025", StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	terms := []entities.Term{
		{ID: "term-2024-1", AcademicYearID: "year-2024", StartDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "term-2024-2", AcademicYearID: "year-2024", StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), IsCurrent: true},
		{ID: "term-2025-1", AcademicYearID: "year-2025", StartDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
	}
	repo.EXPECT().ListYears(gomock.Any()).Return(years, nil)
	repo.EXPECT().ListTerms(gomock.Any()).Return(terms, nil)
}

// expectVersionedUpdate makes Update behave like the store: it bumps the version.
func expectVersionedUpdate(repo *mock_interfaces.MockIAssignmentRepository, expected int64) *gomock.Call {
	return repo.EXPECT().Update(gomock.Any(), gomock.Any(), expected).
		DoAndReturn(func(_ context.Context, a entities.AssignmentRecord, v int64) (entities.AssignmentRecord, error) {
			a.Version = v + 1
			return a, nil
		})
}

func sweaterRecord() entities.AssignmentRecord {
	return entities.AssignmentRecord{
		ID:                "asg-1",
		BeneficiaryID:     "pupil-1",
		Kind:              entities.AssignmentKindUniform,
		Label:             "School Sweater",
		BenefitItemIDs:    []string{"item-sweater"},
		Status:            entities.AssignmentStatusActive,
		Validity:          entities.Validity{Type: entities.ValidityIndefinite},
		TermApplicability: entities.TermApplicability{Type: entities.TermsAll},
		Charge: entities.Charge{
			Amount:         decimal.NewFromInt(9000),
			OriginalAmount: decimal.NewFromInt(9000),
			PaidAmount:     decimal.Zero,
			PaymentStatus:  entities.PaymentStatusPending,
		},
		Tracking: &entities.TrackingLedger{
			SelectionMode:    entities.SelectionSingleItem,
			ItemLabel:        "School Sweater",
			ItemCount:        1,
			RequiredQuantity: 3,
		},
		History: []entities.HistoryEntry{{Action: entities.HistoryAssigned, Actor: "admin", NewStatus: entities.AssignmentStatusActive}},
		Version: 1,
	}
}
