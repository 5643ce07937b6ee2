package request

import (
	"strings"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/usecase"

	"github.com/shopspring/decimal"
)

type ValidityRequest struct {
	Type        string   `json:"type" binding:"required,validity_type" example:"year_range"`
	YearID      string   `json:"year_id,omitempty"`
	StartYearID string   `json:"start_year_id,omitempty"`
	EndYearID   string   `json:"end_year_id,omitempty"`
	TermIDs     []string `json:"term_ids,omitempty"`
}

func (r ValidityRequest) ToEntity() entities.Validity {
	return entities.Validity{
		Type:        entities.ValidityType(r.Type),
		YearID:      strings.TrimSpace(r.YearID),
		StartYearID: strings.TrimSpace(r.StartYearID),
		EndYearID:   strings.TrimSpace(r.EndYearID),
		TermIDs:     r.TermIDs,
	}
}

type TermApplicabilityRequest struct {
	Type    string   `json:"type" binding:"required,term_applicability_type" example:"all_terms"`
	TermIDs []string `json:"term_ids,omitempty"`
}

// ToEntity maps a missing term applicability to all terms.
func (r *TermApplicabilityRequest) ToEntity() entities.TermApplicability {
	if r == nil {
		return entities.TermApplicability{Type: entities.TermsAll}
	}
	return entities.TermApplicability{Type: entities.TermApplicabilityType(r.Type), TermIDs: r.TermIDs}
}

type DiscountRequest struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value" binding:"decimal_non_negative" swaggertype:"string" example:"10"`
	Type  string          `json:"type" binding:"required,oneof=fixed percentage"`
}

type BeneficiaryProfileRequest struct {
	ClassID string `json:"class_id"`
	Gender  string `json:"gender"`
	Section string `json:"section"`
}

// CreateAssignmentRequest assigns one or more catalog items to a beneficiary.
type CreateAssignmentRequest struct {
	BeneficiaryID     string                    `json:"beneficiary_id" binding:"required,not_blank"`
	Kind              string                    `json:"kind" binding:"required,assignment_kind" example:"uniform"`
	BenefitItemIDs    []string                  `json:"benefit_item_ids" binding:"required,min=1,dive,not_blank"`
	Label             string                    `json:"label"`
	SelectionMode     string                    `json:"selection_mode" binding:"omitempty,selection_mode" example:"single_item"`
	Validity          ValidityRequest           `json:"validity" binding:"required"`
	TermApplicability *TermApplicabilityRequest `json:"term_applicability"`
	Discount          *DiscountRequest          `json:"discount"`
	Profile           BeneficiaryProfileRequest `json:"profile"`
}

func (r CreateAssignmentRequest) ToCommand(actor string) usecase.CreateAssignmentCommand {
	cmd := usecase.CreateAssignmentCommand{
		BeneficiaryID:     r.BeneficiaryID,
		Kind:              entities.AssignmentKind(r.Kind),
		BenefitItemIDs:    r.BenefitItemIDs,
		Label:             r.Label,
		SelectionMode:     entities.SelectionMode(r.SelectionMode),
		Validity:          r.Validity.ToEntity(),
		TermApplicability: r.TermApplicability.ToEntity(),
		Profile: entities.BeneficiaryProfile{
			ClassID: r.Profile.ClassID,
			Gender:  r.Profile.Gender,
			Section: r.Profile.Section,
		},
		Actor: actor,
	}
	if r.Discount != nil {
		cmd.Discount = &entities.Discount{
			Name:  strings.TrimSpace(r.Discount.Name),
			Value: r.Discount.Value,
			Type:  entities.DiscountType(r.Discount.Type),
		}
	}
	return cmd
}

type DisableAssignmentRequest struct {
	Effect string `json:"effect" binding:"required,disable_effect" example:"from_next_term"`
	Reason string `json:"reason"`
}

type TimeSettingsRequest struct {
	Validity          ValidityRequest           `json:"validity" binding:"required"`
	TermApplicability *TermApplicabilityRequest `json:"term_applicability"`
}

type ReceptionRequest struct {
	Channel  string `json:"channel" binding:"required,reception_channel" example:"parent"`
	Quantity int    `json:"quantity" binding:"required,gt=0" example:"2"`
}

type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"decimal_positive" swaggertype:"string" example:"2500"`
}

// PeriodQuery selects the academic period a read is evaluated for. Both
// empty means the current period.
type PeriodQuery struct {
	AcademicYearID string `form:"academic_year_id"`
	TermID         string `form:"term_id"`
}

func (q PeriodQuery) ToEntity() entities.Period {
	return entities.Period{
		AcademicYearID: strings.TrimSpace(q.AcademicYearID),
		TermID:         strings.TrimSpace(q.TermID),
	}
}
