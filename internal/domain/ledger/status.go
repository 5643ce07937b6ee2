package ledger

import (
	"errors"
	"time"

	"assignment_ledger/internal/domain/entities"
)

var (
	ErrInvalidDisableEffect = errors.New("invalid disable effect")
	ErrNoCurrentTerm        = errors.New("no current term to disable in")
)

// Stamp identifies who performed a mutation, when, and in which period.
type Stamp struct {
	Actor  string
	At     time.Time
	Period entities.Period
}

func (s Stamp) entry(action entities.HistoryAction) entities.HistoryEntry {
	return entities.HistoryEntry{At: s.At, Action: action, Actor: s.Actor, Period: s.Period}
}

func appendHistory(rec *entities.AssignmentRecord, e entities.HistoryEntry) {
	rec.History = append(rec.History, e)
	rec.UpdatedAt = e.At
}

// Open puts a freshly built record in its initial state.
func Open(rec *entities.AssignmentRecord, s Stamp) {
	rec.Status = entities.AssignmentStatusActive
	rec.Charge.PaymentStatus = paymentStatusFor(rec.Charge)
	rec.CreatedAt = s.At
	e := s.entry(entities.HistoryAssigned)
	e.NewStatus = entities.AssignmentStatusActive
	appendHistory(rec, e)
}

// Disable moves an active record to disabled. It returns false when the
// record was already disabled, in which case nothing changes.
func Disable(rec *entities.AssignmentRecord, s Stamp, effect entities.DisableEffect, reason string) (bool, error) {
	if !effect.Valid() {
		return false, ErrInvalidDisableEffect
	}
	if rec.Status == entities.AssignmentStatusDisabled {
		return false, nil
	}
	// The disabling term anchors every later applicability check.
	if s.Period.TermID == "" {
		return false, ErrNoCurrentTerm
	}

	e := s.entry(entities.HistoryDisabled)
	e.PreviousStatus = rec.Status
	e.NewStatus = entities.AssignmentStatusDisabled
	e.Reason = reason
	e.EffectiveFrom = effect

	rec.Status = entities.AssignmentStatusDisabled
	rec.DisabledEffect = effect
	rec.DisabledIn = s.Period
	appendHistory(rec, e)
	return true, nil
}

// Enable reactivates a disabled record regardless of how it was disabled.
func Enable(rec *entities.AssignmentRecord, s Stamp) bool {
	if rec.Status == entities.AssignmentStatusActive {
		return false
	}

	e := s.entry(entities.HistoryEnabled)
	e.PreviousStatus = rec.Status
	e.NewStatus = entities.AssignmentStatusActive

	rec.Status = entities.AssignmentStatusActive
	rec.DisabledEffect = ""
	rec.DisabledIn = entities.Period{}
	appendHistory(rec, e)
	return true
}

// AdjustTimeSettings replaces validity and term applicability, keeping the
// previous settings in the history entry.
func AdjustTimeSettings(rec *entities.AssignmentRecord, s Stamp, v entities.Validity, ta entities.TermApplicability) error {
	if err := ValidateTimeSettings(v, ta); err != nil {
		return err
	}

	prevValidity := rec.Validity
	prevTerms := rec.TermApplicability
	e := s.entry(entities.HistoryTimeAdjusted)
	e.PreviousStatus = rec.Status
	e.NewStatus = rec.Status
	e.PreviousValidity = &prevValidity
	e.PreviousTermApplicability = &prevTerms

	rec.Validity = v
	rec.TermApplicability = ta
	appendHistory(rec, e)
	return nil
}
