package response

import (
	"time"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/usecase"

	"github.com/shopspring/decimal"
)

type CatalogItemResponse struct {
	ID               string             `json:"id"`
	Kind             string             `json:"kind"`
	Name             string             `json:"name"`
	Price            decimal.Decimal    `json:"price" swaggertype:"string"`
	RequiredQuantity int                `json:"required_quantity"`
	Targeting        entities.Targeting `json:"targeting"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromCatalogItem(i entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:               i.ID,
		Kind:             string(i.Kind),
		Name:             i.Name,
		Price:            i.Price,
		RequiredQuantity: i.RequiredQuantity,
		Targeting:        i.Targeting,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

type CalendarResponse struct {
	Years   []entities.AcademicYear `json:"years"`
	Terms   []entities.Term         `json:"terms"`
	Current entities.Period         `json:"current"`
}

func FromCalendar(v usecase.CalendarView) CalendarResponse {
	res := CalendarResponse{Years: v.Years, Terms: v.Terms, Current: v.Current}
	if res.Years == nil {
		res.Years = []entities.AcademicYear{}
	}
	if res.Terms == nil {
		res.Terms = []entities.Term{}
	}
	return res
}
