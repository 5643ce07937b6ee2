package interfaces

import (
	"context"

	"assignment_ledger/internal/domain/entities"
)

//go:generate mockgen -source=calendar_repository_interface.go -destination=mocks/calendar_repository_mock.go -package=mock_interfaces

// ICalendarRepository exposes the academic calendar: years, terms and which
// of them is flagged current.
type ICalendarRepository interface {
	CreateYear(ctx context.Context, y entities.AcademicYear) (entities.AcademicYear, error)
	CreateTerm(ctx context.Context, t entities.Term) (entities.Term, error)
	ListYears(ctx context.Context) ([]entities.AcademicYear, error)
	ListTerms(ctx context.Context) ([]entities.Term, error)
}
