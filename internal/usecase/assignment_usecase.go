package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/domain/ledger"
	"assignment_ledger/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAssignmentNotFound        = errors.New("assignment not found")
	ErrInvalidAssignmentID       = errors.New("invalid assignment id")
	ErrInvalidBeneficiaryID      = errors.New("invalid beneficiary id")
	ErrInvalidAssignmentKind     = errors.New("invalid assignment kind")
	ErrMissingSelection          = errors.New("no benefit item selected")
	ErrInvalidSelectionMode      = errors.New("invalid selection mode")
	ErrCatalogKindMismatch       = errors.New("catalog item kind does not match assignment kind")
	ErrAssignmentHasActivity     = errors.New("assignment has payments or receptions; disable it instead")
	ErrAssignmentVersionConflict = errors.New("assignment was modified concurrently")
)

// CreateAssignmentCommand is the admin intent to assign benefit items to a beneficiary.
type CreateAssignmentCommand struct {
	BeneficiaryID     string
	Kind              entities.AssignmentKind
	BenefitItemIDs    []string
	Label             string
	SelectionMode     entities.SelectionMode
	Validity          entities.Validity
	TermApplicability entities.TermApplicability
	Discount          *entities.Discount
	Profile           entities.BeneficiaryProfile
	Actor             string
}

// AssignmentSummary holds the computed read accessors of a record for one period.
type AssignmentSummary struct {
	AssignmentID      string
	Period            entities.Period
	Status            entities.AssignmentStatus
	PaymentStatus     entities.PaymentStatus
	AppliesThisPeriod bool
	Amount            decimal.Decimal
	Paid              decimal.Decimal
	Balance           decimal.Decimal
	Remaining         *int
}

//go:generate mockgen -source=assignment_usecase.go -destination=../adapter/http/handlers/mocks/assignment_usecase_mock.go -package=mocks

// IAssignmentUseCase exposes the assignment lifecycle:
//   - create / remove
//   - enable / disable(effect, reason) / adjust time settings
//   - record reception per channel
//   - computed remaining, balance and applies-this-period
type IAssignmentUseCase interface {
	Create(ctx context.Context, cmd CreateAssignmentCommand) (entities.AssignmentRecord, error)
	GetByID(ctx context.Context, id string) (entities.AssignmentRecord, error)
	ListByBeneficiary(ctx context.Context, beneficiaryID string) ([]entities.AssignmentRecord, error)
	Remove(ctx context.Context, id string) error
	Enable(ctx context.Context, id, actor string) (entities.AssignmentRecord, error)
	Disable(ctx context.Context, id, actor string, effect entities.DisableEffect, reason string) (entities.AssignmentRecord, error)
	AdjustTimeSettings(ctx context.Context, id, actor string, v entities.Validity, ta entities.TermApplicability) (entities.AssignmentRecord, error)
	RecordReception(ctx context.Context, id, actor string, channel entities.ReceptionChannel, quantity int) (entities.AssignmentRecord, error)
	Summary(ctx context.Context, id string, query entities.Period) (AssignmentSummary, error)
}

type AssignmentUseCase struct {
	repo         interfaces.IAssignmentRepository
	catalogRepo  interfaces.ICatalogRepository
	calendarRepo interfaces.ICalendarRepository
	mutator      assignmentMutator
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(repo interfaces.IAssignmentRepository, catalogRepo interfaces.ICatalogRepository, calendarRepo interfaces.ICalendarRepository) *AssignmentUseCase {
	return &AssignmentUseCase{
		repo:         repo,
		catalogRepo:  catalogRepo,
		calendarRepo: calendarRepo,
		mutator:      assignmentMutator{repo: repo, calendarRepo: calendarRepo},
	}
}

func (u *AssignmentUseCase) Create(ctx context.Context, cmd CreateAssignmentCommand) (entities.AssignmentRecord, error) {
	beneficiaryID := strings.TrimSpace(cmd.BeneficiaryID)
	log.Printf("[assignment][create] start beneficiary_id=%q kind=%s items=%d", beneficiaryID, cmd.Kind, len(cmd.BenefitItemIDs))
	if beneficiaryID == "" {
		return entities.AssignmentRecord{}, ErrInvalidBeneficiaryID
	}
	if !cmd.Kind.Valid() {
		return entities.AssignmentRecord{}, ErrInvalidAssignmentKind
	}
	itemIDs := normalizeIDs(cmd.BenefitItemIDs)
	if len(itemIDs) == 0 {
		return entities.AssignmentRecord{}, ErrMissingSelection
	}
	if cmd.Kind.Tracked() {
		if !cmd.SelectionMode.Valid() {
			return entities.AssignmentRecord{}, ErrInvalidSelectionMode
		}
		if cmd.SelectionMode == entities.SelectionSingleItem && len(itemIDs) != 1 {
			return entities.AssignmentRecord{}, ErrInvalidSelectionMode
		}
	}
	ta := cmd.TermApplicability
	if ta.Type == "" {
		ta.Type = entities.TermsAll
	}
	if err := ledger.ValidateTimeSettings(cmd.Validity, ta); err != nil {
		return entities.AssignmentRecord{}, err
	}

	items := make([]entities.CatalogItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := u.catalogRepo.GetByID(ctx, id)
		if err != nil {
			log.Printf("[assignment][create] catalog lookup failed item_id=%s err=%v", id, err)
			return entities.AssignmentRecord{}, err
		}
		if item.ID == "" {
			return entities.AssignmentRecord{}, fmt.Errorf("%w: %s", ErrCatalogItemNotFound, id)
		}
		if item.Kind != cmd.Kind {
			return entities.AssignmentRecord{}, fmt.Errorf("%w: %s", ErrCatalogKindMismatch, id)
		}
		if err := ledger.CheckTargeting(item.Targeting, cmd.Profile); err != nil {
			return entities.AssignmentRecord{}, fmt.Errorf("%w: %s", err, id)
		}
		items = append(items, item)
	}

	original := decimal.Zero
	required := 0
	names := make([]string, 0, len(items))
	for _, item := range items {
		original = original.Add(item.Price)
		required += item.RequiredQuantity
		names = append(names, item.Name)
	}
	amount, err := ledger.ApplyDiscount(original, cmd.Discount)
	if err != nil {
		return entities.AssignmentRecord{}, err
	}

	label := strings.TrimSpace(cmd.Label)
	if label == "" {
		label = strings.Join(names, " + ")
	}

	rec := entities.AssignmentRecord{
		ID:                uuid.NewString(),
		BeneficiaryID:     beneficiaryID,
		Kind:              cmd.Kind,
		Label:             label,
		BenefitItemIDs:    itemIDs,
		Validity:          cmd.Validity,
		TermApplicability: ta,
		Charge: entities.Charge{
			Amount:         amount,
			OriginalAmount: original,
			Discount:       cmd.Discount,
			PaidAmount:     decimal.Zero,
		},
		Version: 1,
	}
	if cmd.Kind.Tracked() {
		rec.Tracking = &entities.TrackingLedger{
			SelectionMode:    cmd.SelectionMode,
			ItemLabel:        names[0],
			ItemCount:        len(items),
			RequiredQuantity: required,
		}
	}

	cal, err := loadCalendar(ctx, u.calendarRepo)
	if err != nil {
		return entities.AssignmentRecord{}, err
	}
	ledger.Open(&rec, newStamp(cmd.Actor, cal))
	if err := rec.Validate(); err != nil {
		return entities.AssignmentRecord{}, err
	}

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		log.Printf("[assignment][create] repository create failed id=%s err=%v", rec.ID, err)
		return entities.AssignmentRecord{}, err
	}
	log.Printf("[assignment][create] success id=%s beneficiary_id=%s amount=%s", created.ID, created.BeneficiaryID, created.Charge.Amount)
	return created, nil
}

func (u *AssignmentUseCase) GetByID(ctx context.Context, id string) (entities.AssignmentRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AssignmentRecord{}, ErrInvalidAssignmentID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AssignmentRecord{}, err
	}
	if rec.ID == "" {
		return entities.AssignmentRecord{}, ErrAssignmentNotFound
	}
	return rec, nil
}

func (u *AssignmentUseCase) ListByBeneficiary(ctx context.Context, beneficiaryID string) ([]entities.AssignmentRecord, error) {
	beneficiaryID = strings.TrimSpace(beneficiaryID)
	if beneficiaryID == "" {
		return nil, ErrInvalidBeneficiaryID
	}
	return u.repo.ListByBeneficiaryID(ctx, beneficiaryID)
}

// Remove hard-deletes a record that has no payment or reception yet.
func (u *AssignmentUseCase) Remove(ctx context.Context, id string) error {
	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.HasActivity() {
		log.Printf("[assignment][remove] refused id=%s paid=%s", rec.ID, rec.Charge.PaidAmount)
		return ErrAssignmentHasActivity
	}
	if err := u.repo.Delete(ctx, rec.ID); err != nil {
		log.Printf("[assignment][remove] delete failed id=%s err=%v", rec.ID, err)
		return err
	}
	log.Printf("[assignment][remove] success id=%s", rec.ID)
	return nil
}

func (u *AssignmentUseCase) Enable(ctx context.Context, id, actor string) (entities.AssignmentRecord, error) {
	return u.mutator.mutate(ctx, "enable", id, actor, func(rec *entities.AssignmentRecord, s ledger.Stamp) (bool, error) {
		return ledger.Enable(rec, s), nil
	})
}

func (u *AssignmentUseCase) Disable(ctx context.Context, id, actor string, effect entities.DisableEffect, reason string) (entities.AssignmentRecord, error) {
	reason = strings.TrimSpace(reason)
	return u.mutator.mutate(ctx, "disable", id, actor, func(rec *entities.AssignmentRecord, s ledger.Stamp) (bool, error) {
		return ledger.Disable(rec, s, effect, reason)
	})
}

func (u *AssignmentUseCase) AdjustTimeSettings(ctx context.Context, id, actor string, v entities.Validity, ta entities.TermApplicability) (entities.AssignmentRecord, error) {
	if ta.Type == "" {
		ta.Type = entities.TermsAll
	}
	return u.mutator.mutate(ctx, "time-settings", id, actor, func(rec *entities.AssignmentRecord, s ledger.Stamp) (bool, error) {
		if err := ledger.AdjustTimeSettings(rec, s, v, ta); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (u *AssignmentUseCase) RecordReception(ctx context.Context, id, actor string, channel entities.ReceptionChannel, quantity int) (entities.AssignmentRecord, error) {
	return u.mutator.mutate(ctx, "reception", id, actor, func(rec *entities.AssignmentRecord, s ledger.Stamp) (bool, error) {
		if err := ledger.RecordReception(rec, s, channel, quantity); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (u *AssignmentUseCase) Summary(ctx context.Context, id string, query entities.Period) (AssignmentSummary, error) {
	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return AssignmentSummary{}, err
	}
	cal, err := loadCalendar(ctx, u.calendarRepo)
	if err != nil {
		return AssignmentSummary{}, err
	}
	query = resolveQuery(query, cal)

	f := ledger.Project(rec)
	return AssignmentSummary{
		AssignmentID:      rec.ID,
		Period:            query,
		Status:            rec.Status,
		PaymentStatus:     rec.Charge.PaymentStatus,
		AppliesThisPeriod: ledger.AppliesThisPeriod(rec, query, cal.Current(), cal),
		Amount:            f.Amount,
		Paid:              f.Paid,
		Balance:           f.Balance,
		Remaining:         f.Remaining,
	}, nil
}

func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
