package ledger

import (
	"errors"

	"assignment_ledger/internal/domain/entities"
)

var (
	ErrInvalidValidity          = errors.New("invalid validity descriptor")
	ErrInvalidTermApplicability = errors.New("invalid term applicability")
)

// ValidateTimeSettings rejects descriptors missing the ids their type needs.
func ValidateTimeSettings(v entities.Validity, ta entities.TermApplicability) error {
	switch v.Type {
	case entities.ValidityIndefinite, entities.ValidityCurrentTerm, entities.ValidityCurrentYear:
	case entities.ValiditySpecificYear:
		if v.YearID == "" {
			return ErrInvalidValidity
		}
	case entities.ValidityYearRange:
		if v.StartYearID == "" || v.EndYearID == "" {
			return ErrInvalidValidity
		}
	case entities.ValiditySpecificTerms:
		if len(v.TermIDs) == 0 {
			return ErrInvalidValidity
		}
	default:
		return ErrInvalidValidity
	}

	switch ta.Type {
	case entities.TermsAll:
	case entities.TermsSpecific:
		if len(ta.TermIDs) == 0 {
			return ErrInvalidTermApplicability
		}
	default:
		return ErrInvalidTermApplicability
	}
	return nil
}

// ValidityApplies evaluates a validity descriptor and term applicability for
// the query period. Current is passed explicitly by the caller. Ids the
// calendar cannot resolve make the descriptor not apply.
func ValidityApplies(v entities.Validity, ta entities.TermApplicability, query, current entities.Period, cal Calendar) bool {
	if !yearApplies(v, query, current, cal) {
		return false
	}
	if ta.Type == entities.TermsSpecific {
		return contains(ta.TermIDs, query.TermID)
	}
	return true
}

func yearApplies(v entities.Validity, query, current entities.Period, cal Calendar) bool {
	switch v.Type {
	case entities.ValidityIndefinite:
		return true
	case entities.ValidityCurrentTerm:
		return current.TermID != "" && query.TermID == current.TermID
	case entities.ValidityCurrentYear:
		return current.AcademicYearID != "" && query.AcademicYearID == current.AcademicYearID
	case entities.ValiditySpecificYear:
		if _, ok := cal.YearPosition(v.YearID); !ok {
			return false
		}
		return query.AcademicYearID == v.YearID
	case entities.ValidityYearRange:
		start, ok := cal.YearPosition(v.StartYearID)
		if !ok {
			return false
		}
		end, ok := cal.YearPosition(v.EndYearID)
		if !ok {
			return false
		}
		q, ok := cal.YearPosition(query.AcademicYearID)
		if !ok {
			return false
		}
		if start > end {
			start, end = end, start
		}
		return q >= start && q <= end
	case entities.ValiditySpecificTerms:
		return query.TermID != "" && contains(v.TermIDs, query.TermID)
	}
	return false
}

// AppliesThisPeriod combines validity with the status overlay. A disabled
// record keeps counting for the terms before it was disabled, and also for
// the disabling term itself when the effect is from_next_term.
func AppliesThisPeriod(rec entities.AssignmentRecord, query, current entities.Period, cal Calendar) bool {
	if rec.Status == entities.AssignmentStatusDisabled && !appliesWhileDisabled(rec, query, cal) {
		return false
	}
	return ValidityApplies(rec.Validity, rec.TermApplicability, query, current, cal)
}

func appliesWhileDisabled(rec entities.AssignmentRecord, query entities.Period, cal Calendar) bool {
	disabledAt, ok := cal.TermPosition(rec.DisabledIn.TermID)
	if !ok {
		return false
	}
	q, ok := cal.TermPosition(query.TermID)
	if !ok {
		return false
	}
	if rec.DisabledEffect == entities.DisableFromNextTerm {
		return q <= disabledAt
	}
	return q < disabledAt
}

func contains(ids []string, id string) bool {
	if id == "" {
		return false
	}
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
