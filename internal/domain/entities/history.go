package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryAction tags a lifecycle event.
type HistoryAction string

const (
	HistoryAssigned          HistoryAction = "assigned"
	HistoryEnabled           HistoryAction = "enabled"
	HistoryDisabled          HistoryAction = "disabled"
	HistoryTimeAdjusted      HistoryAction = "time_adjusted"
	HistoryPaymentAndReceipt HistoryAction = "payment_and_receipt"
	HistoryReceiptOnly       HistoryAction = "receipt_only"
	HistoryPayment           HistoryAction = "payment"
)

// ReceptionChannel is where a physical delivery came from.
type ReceptionChannel string

const (
	ChannelParent ReceptionChannel = "parent"
	ChannelOffice ReceptionChannel = "office"
)

func (c ReceptionChannel) Valid() bool {
	return c == ChannelParent || c == ChannelOffice
}

// HistoryEntry is one immutable lifecycle event.
type HistoryEntry struct {
	At             time.Time        `json:"at"`
	Action         HistoryAction    `json:"action"`
	Actor          string           `json:"actor"`
	PreviousStatus AssignmentStatus `json:"previous_status,omitempty"`
	NewStatus      AssignmentStatus `json:"new_status,omitempty"`
	Reason         string           `json:"reason,omitempty"`
	EffectiveFrom  DisableEffect    `json:"effective_from,omitempty"`
	Period         Period           `json:"period"`

	Channel  ReceptionChannel `json:"channel,omitempty"`
	Quantity int              `json:"quantity,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	// ReceiptID links a payment entry to the online receipt it came from.
	ReceiptID string `json:"receipt_id,omitempty"`

	PreviousValidity          *Validity          `json:"previous_validity,omitempty"`
	PreviousTermApplicability *TermApplicability `json:"previous_term_applicability,omitempty"`
}
