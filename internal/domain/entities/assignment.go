package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// AssignmentKind discriminates the benefit domain an assignment belongs to.
type AssignmentKind string

const (
	AssignmentKindFee         AssignmentKind = "fee"
	AssignmentKindUniform     AssignmentKind = "uniform"
	AssignmentKindRequirement AssignmentKind = "requirement"
)

func (k AssignmentKind) Valid() bool {
	switch k {
	case AssignmentKindFee, AssignmentKindUniform, AssignmentKindRequirement:
		return true
	}
	return false
}

// Tracked reports whether records of this kind carry physical quantities.
func (k AssignmentKind) Tracked() bool {
	return k == AssignmentKindUniform || k == AssignmentKindRequirement
}

type AssignmentStatus string

const (
	AssignmentStatusActive   AssignmentStatus = "active"
	AssignmentStatusDisabled AssignmentStatus = "disabled"
)

// DisableEffect is the effective-from policy chosen when disabling.
type DisableEffect string

const (
	DisableFromCurrentTerm DisableEffect = "from_current_term"
	DisableFromNextTerm    DisableEffect = "from_next_term"
)

func (e DisableEffect) Valid() bool {
	return e == DisableFromCurrentTerm || e == DisableFromNextTerm
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

// Discount applied at assignment time, kept for display.
type Discount struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Type  DiscountType    `json:"type"`
}

// SelectionMode describes how a uniform/requirement bundle was chosen.
type SelectionMode string

const (
	SelectionFullSet    SelectionMode = "full_set"
	SelectionPartialSet SelectionMode = "partial_set"
	SelectionSingleItem SelectionMode = "single_item"
)

func (m SelectionMode) Valid() bool {
	switch m {
	case SelectionFullSet, SelectionPartialSet, SelectionSingleItem:
		return true
	}
	return false
}

// Charge is the monetary side shared by every assignment kind.
//
// Amount is the final amount after discount; OriginalAmount is the catalog
// total before it. PaidAmount never exceeds Amount.
type Charge struct {
	Amount         decimal.Decimal `json:"amount"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	Discount       *Discount       `json:"discount,omitempty"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
}

// Balance is max(0, amount - paid).
func (c Charge) Balance() decimal.Decimal {
	b := c.Amount.Sub(c.PaidAmount)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// TrackingLedger is the quantity side of uniform and requirement assignments.
//
// Received always equals ReceivedFromParent + ReceivedFromOffice and never
// exceeds RequiredQuantity.
type TrackingLedger struct {
	SelectionMode      SelectionMode `json:"selection_mode"`
	ItemLabel          string        `json:"item_label"`
	ItemCount          int           `json:"item_count"`
	RequiredQuantity   int           `json:"required_quantity"`
	ReceivedFromParent int           `json:"received_from_parent"`
	ReceivedFromOffice int           `json:"received_from_office"`
	Received           int           `json:"received"`
}

// Remaining is max(0, required - received).
func (t TrackingLedger) Remaining() int {
	if r := t.RequiredQuantity - t.Received; r > 0 {
		return r
	}
	return 0
}

// AssignmentRecord associates a benefit item selection with a beneficiary.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (beneficiary_id-index): beneficiary_id
//
// Kind is the variant tag: Tracking is set for uniform and requirement
// records and nil for fee records. Version is incremented on every write and
// checked against the stored value.
type AssignmentRecord struct {
	ID                string            `json:"id"`
	BeneficiaryID     string            `json:"beneficiary_id"`
	Kind              AssignmentKind    `json:"kind"`
	Label             string            `json:"label"`
	BenefitItemIDs    []string          `json:"benefit_item_ids"`
	Status            AssignmentStatus  `json:"status"`
	Validity          Validity          `json:"validity"`
	TermApplicability TermApplicability `json:"term_applicability"`
	Charge            Charge            `json:"charge"`
	Tracking          *TrackingLedger   `json:"tracking,omitempty"`
	DisabledEffect    DisableEffect     `json:"disabled_effect,omitempty"`
	DisabledIn        Period            `json:"disabled_in"`
	History           []HistoryEntry    `json:"history"`
	Version           int64             `json:"version"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

var (
	ErrTrackingRequired   = errors.New("tracking ledger required for tracked assignment kinds")
	ErrTrackingNotAllowed = errors.New("tracking ledger not allowed for fee assignments")
	ErrUnknownKind        = errors.New("unknown assignment kind")
)

// Validate checks the variant rule between Kind and Tracking.
func (a AssignmentRecord) Validate() error {
	if !a.Kind.Valid() {
		return ErrUnknownKind
	}
	if a.Kind.Tracked() && a.Tracking == nil {
		return ErrTrackingRequired
	}
	if !a.Kind.Tracked() && a.Tracking != nil {
		return ErrTrackingNotAllowed
	}
	return nil
}

// HasActivity reports whether money or items were recorded against it.
func (a AssignmentRecord) HasActivity() bool {
	if a.Charge.PaidAmount.IsPositive() {
		return true
	}
	return a.Tracking != nil && a.Tracking.Received > 0
}
