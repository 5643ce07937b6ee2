package ledger

import (
	"errors"
	"strings"

	"assignment_ledger/internal/domain/entities"
)

var (
	ErrMissingTargetingField = errors.New("beneficiary is missing a field the catalog item targets")
	ErrItemNotTargeted       = errors.New("catalog item does not target this beneficiary")
)

// CheckTargeting verifies a beneficiary against an item's targeting rules.
// Comparison is case-insensitive; an empty rule list accepts everyone.
func CheckTargeting(t entities.Targeting, p entities.BeneficiaryProfile) error {
	rules := []struct {
		allowed []string
		value   string
	}{
		{t.ClassIDs, p.ClassID},
		{t.Genders, p.Gender},
		{t.Sections, p.Section},
	}
	for _, r := range rules {
		if len(r.allowed) == 0 {
			continue
		}
		v := strings.TrimSpace(r.value)
		if v == "" {
			return ErrMissingTargetingField
		}
		if !containsFold(r.allowed, v) {
			return ErrItemNotTargeted
		}
	}
	return nil
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), v) {
			return true
		}
	}
	return false
}
