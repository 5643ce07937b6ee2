package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/domain/ledger"
	"assignment_ledger/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAcademicYearNotFound  = errors.New("academic year not found")
	ErrInvalidCalendarEntry  = errors.New("invalid calendar entry")
	ErrInvalidCalendarDates  = errors.New("end date must be after start date")
	ErrCalendarNotConfigured = errors.New("calendar repository not configured")
)

// CalendarView is the academic calendar with its current period resolved.
type CalendarView struct {
	Years   []entities.AcademicYear
	Terms   []entities.Term
	Current entities.Period
}

type CreateYearCommand struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
	IsCurrent bool
}

type CreateTermCommand struct {
	AcademicYearID string
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	IsCurrent      bool
}

//go:generate mockgen -source=calendar_usecase.go -destination=../adapter/http/handlers/mocks/calendar_usecase_mock.go -package=mocks

// ICalendarUseCase manages the academic calendar the ledger resolves periods against.
type ICalendarUseCase interface {
	CreateYear(ctx context.Context, cmd CreateYearCommand) (entities.AcademicYear, error)
	CreateTerm(ctx context.Context, cmd CreateTermCommand) (entities.Term, error)
	Get(ctx context.Context) (CalendarView, error)
}

type CalendarUseCase struct {
	repo interfaces.ICalendarRepository
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(repo interfaces.ICalendarRepository) *CalendarUseCase {
	return &CalendarUseCase{repo: repo}
}

func (u *CalendarUseCase) CreateYear(ctx context.Context, cmd CreateYearCommand) (entities.AcademicYear, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.AcademicYear{}, ErrInvalidCalendarEntry
	}
	if !cmd.EndDate.After(cmd.StartDate) {
		return entities.AcademicYear{}, ErrInvalidCalendarDates
	}

	y := entities.AcademicYear{
		ID:        uuid.NewString(),
		Name:      name,
		StartDate: cmd.StartDate.UTC(),
		EndDate:   cmd.EndDate.UTC(),
		IsCurrent: cmd.IsCurrent,
	}
	log.Printf("[calendar][usecase] create year name=%q current=%t", y.Name, y.IsCurrent)
	return u.repo.CreateYear(ctx, y)
}

func (u *CalendarUseCase) CreateTerm(ctx context.Context, cmd CreateTermCommand) (entities.Term, error) {
	yearID := strings.TrimSpace(cmd.AcademicYearID)
	name := strings.TrimSpace(cmd.Name)
	if yearID == "" || name == "" {
		return entities.Term{}, ErrInvalidCalendarEntry
	}
	if !cmd.EndDate.After(cmd.StartDate) {
		return entities.Term{}, ErrInvalidCalendarDates
	}

	years, err := u.repo.ListYears(ctx)
	if err != nil {
		return entities.Term{}, err
	}
	found := false
	for _, y := range years {
		if y.ID == yearID {
			found = true
			break
		}
	}
	if !found {
		return entities.Term{}, ErrAcademicYearNotFound
	}

	t := entities.Term{
		ID:             uuid.NewString(),
		AcademicYearID: yearID,
		Name:           name,
		StartDate:      cmd.StartDate.UTC(),
		EndDate:        cmd.EndDate.UTC(),
		IsCurrent:      cmd.IsCurrent,
	}
	log.Printf("[calendar][usecase] create term year_id=%s name=%q current=%t", yearID, t.Name, t.IsCurrent)
	return u.repo.CreateTerm(ctx, t)
}

func (u *CalendarUseCase) Get(ctx context.Context) (CalendarView, error) {
	years, terms, err := listCalendar(ctx, u.repo)
	if err != nil {
		return CalendarView{}, err
	}
	cal := ledger.NewCalendar(years, terms)
	return CalendarView{Years: years, Terms: terms, Current: cal.Current()}, nil
}

func listCalendar(ctx context.Context, repo interfaces.ICalendarRepository) ([]entities.AcademicYear, []entities.Term, error) {
	if repo == nil {
		return nil, nil, ErrCalendarNotConfigured
	}
	years, err := repo.ListYears(ctx)
	if err != nil {
		return nil, nil, err
	}
	terms, err := repo.ListTerms(ctx)
	if err != nil {
		return nil, nil, err
	}
	return years, terms, nil
}

// loadCalendar builds the ordering used by validity evaluation. The calendar
// is read fresh for each action so "current" is never cached.
func loadCalendar(ctx context.Context, repo interfaces.ICalendarRepository) (ledger.Calendar, error) {
	years, terms, err := listCalendar(ctx, repo)
	if err != nil {
		return ledger.Calendar{}, err
	}
	return ledger.NewCalendar(years, terms), nil
}
