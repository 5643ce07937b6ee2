package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Targeting restricts which beneficiaries a catalog item applies to.
// An empty list means no restriction on that dimension.
type Targeting struct {
	ClassIDs []string `json:"class_ids,omitempty"`
	Genders  []string `json:"genders,omitempty"`
	Sections []string `json:"sections,omitempty"`
}

// CatalogItem is a fee structure, uniform item or requirement definition.
//
// Storage model (DynamoDB):
//   - PK: id
type CatalogItem struct {
	ID               string          `json:"id"`
	Kind             AssignmentKind  `json:"kind"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	RequiredQuantity int             `json:"required_quantity"`
	Targeting        Targeting       `json:"targeting"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// BeneficiaryProfile carries the targeting attributes of a pupil.
type BeneficiaryProfile struct {
	ClassID string `json:"class_id"`
	Gender  string `json:"gender"`
	Section string `json:"section"`
}
