package request

import (
	"time"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/usecase"

	"github.com/shopspring/decimal"
)

type TargetingRequest struct {
	ClassIDs []string `json:"class_ids"`
	Genders  []string `json:"genders"`
	Sections []string `json:"sections"`
}

type CreateCatalogItemRequest struct {
	Kind             string           `json:"kind" binding:"required,assignment_kind" example:"uniform"`
	Name             string           `json:"name" binding:"required,not_blank" example:"School Sweater"`
	Price            decimal.Decimal  `json:"price" binding:"decimal_non_negative" swaggertype:"string" example:"9000"`
	RequiredQuantity int              `json:"required_quantity" binding:"gte=0" example:"3"`
	Targeting        TargetingRequest `json:"targeting"`
}

func (r CreateCatalogItemRequest) ToCommand() usecase.CreateCatalogItemCommand {
	return usecase.CreateCatalogItemCommand{
		Kind:             entities.AssignmentKind(r.Kind),
		Name:             r.Name,
		Price:            r.Price,
		RequiredQuantity: r.RequiredQuantity,
		Targeting: entities.Targeting{
			ClassIDs: r.Targeting.ClassIDs,
			Genders:  r.Targeting.Genders,
			Sections: r.Targeting.Sections,
		},
	}
}

type CreateAcademicYearRequest struct {
	Name      string    `json:"name" binding:"required,not_blank" example:"2024"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
	IsCurrent bool      `json:"is_current"`
}

func (r CreateAcademicYearRequest) ToCommand() usecase.CreateYearCommand {
	return usecase.CreateYearCommand{Name: r.Name, StartDate: r.StartDate, EndDate: r.EndDate, IsCurrent: r.IsCurrent}
}

type CreateTermRequest struct {
	AcademicYearID string    `json:"academic_year_id" binding:"required,not_blank"`
	Name           string    `json:"name" binding:"required,not_blank" example:"Term 1"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
	IsCurrent      bool      `json:"is_current"`
}

func (r CreateTermRequest) ToCommand() usecase.CreateTermCommand {
	return usecase.CreateTermCommand{
		AcademicYearID: r.AcademicYearID,
		Name:           r.Name,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		IsCurrent:      r.IsCurrent,
	}
}
