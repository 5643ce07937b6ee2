package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/domain/ledger"
	"assignment_ledger/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentReceiptNotFound     = errors.New("payment receipt not found")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrNothingToCollect           = errors.New("assignment has no outstanding balance")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
	ErrReceiptNotApproved         = errors.New("payment receipt is not approved")
	// ErrReceiptNotApplied accompanies a receipt the provider approved but
	// that could not be credited yet; ApplyReceipt replays it.
	ErrReceiptNotApplied = errors.New("approved payment not yet applied to assignment")
)

// PaymentOptions tunes online collection.
type PaymentOptions struct {
	// MockMode relaxes payload checks; the gateway simulates approval.
	MockMode bool
	// SandboxPayerEmail fills payer.email when the caller sends no payer identity.
	SandboxPayerEmail string
}

//go:generate mockgen -source=ledger_usecase.go -destination=../adapter/http/handlers/mocks/ledger_usecase_mock.go -package=mocks

// ILedgerUseCase is the fee bridge seen from the payments side:
//   - the per-beneficiary ledger view of applicable assignments
//   - manual payment write-back onto the source record
//   - online collection through the payment gateway (receipt + write-back on approval)
//   - replay of approved receipts whose write-back did not complete
type ILedgerUseCase interface {
	BeneficiaryLedger(ctx context.Context, beneficiaryID string, query entities.Period) (ledger.Ledger, error)
	RecordPayment(ctx context.Context, assignmentID, actor string, amount decimal.Decimal) (entities.AssignmentRecord, error)
	CollectOnline(ctx context.Context, assignmentID, actor string, providerPayload json.RawMessage) (entities.PaymentReceipt, error)
	ListReceipts(ctx context.Context, assignmentID string) ([]entities.PaymentReceipt, error)
	ApplyReceipt(ctx context.Context, assignmentID, receiptID, actor string) (entities.PaymentReceipt, error)
}

type LedgerUseCase struct {
	repo         interfaces.IAssignmentRepository
	receiptRepo  interfaces.IPaymentReceiptRepository
	calendarRepo interfaces.ICalendarRepository
	gateway      interfaces.IPaymentGateway
	opts         PaymentOptions
	mutator      assignmentMutator
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(
	repo interfaces.IAssignmentRepository,
	receiptRepo interfaces.IPaymentReceiptRepository,
	calendarRepo interfaces.ICalendarRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
) *LedgerUseCase {
	return &LedgerUseCase{
		repo:         repo,
		receiptRepo:  receiptRepo,
		calendarRepo: calendarRepo,
		gateway:      gateway,
		opts:         opts,
		mutator:      assignmentMutator{repo: repo, calendarRepo: calendarRepo},
	}
}

func (u *LedgerUseCase) BeneficiaryLedger(ctx context.Context, beneficiaryID string, query entities.Period) (ledger.Ledger, error) {
	beneficiaryID = strings.TrimSpace(beneficiaryID)
	if beneficiaryID == "" {
		return ledger.Ledger{}, ErrInvalidBeneficiaryID
	}

	recs, err := u.repo.ListByBeneficiaryID(ctx, beneficiaryID)
	if err != nil {
		log.Printf("[ledger][usecase] list failed beneficiary_id=%s err=%v", beneficiaryID, err)
		return ledger.Ledger{}, err
	}
	cal, err := loadCalendar(ctx, u.calendarRepo)
	if err != nil {
		return ledger.Ledger{}, err
	}
	query = resolveQuery(query, cal)

	l := ledger.BuildLedger(beneficiaryID, recs, query, cal.Current(), cal)
	log.Printf("[ledger][usecase] view beneficiary_id=%s year=%s term=%s fees=%d/%d balance=%s",
		beneficiaryID, query.AcademicYearID, query.TermID, len(l.Fees), len(recs), l.TotalBalance)
	return l, nil
}

func (u *LedgerUseCase) RecordPayment(ctx context.Context, assignmentID, actor string, amount decimal.Decimal) (entities.AssignmentRecord, error) {
	log.Printf("[ledger][payment] start assignment_id=%q amount=%s", assignmentID, amount)
	return u.mutator.mutate(ctx, "payment", assignmentID, actor, func(rec *entities.AssignmentRecord, s ledger.Stamp) (bool, error) {
		if err := ledger.ApplyPayment(rec, s, amount); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (u *LedgerUseCase) CollectOnline(ctx context.Context, assignmentID, actor string, providerPayload json.RawMessage) (entities.PaymentReceipt, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	log.Printf("[ledger][online] start assignment_id=%q payload_len=%d mock=%t", assignmentID, len(providerPayload), u.opts.MockMode)
	if assignmentID == "" {
		return entities.PaymentReceipt{}, ErrInvalidAssignmentID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !u.opts.MockMode {
			log.Printf("[ledger][online] invalid payload assignment_id=%s", assignmentID)
			return entities.PaymentReceipt{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[ledger][online] gateway not configured assignment_id=%s", assignmentID)
		return entities.PaymentReceipt{}, ErrPaymentGatewayUnavailable
	}

	rec, err := u.repo.GetByID(ctx, assignmentID)
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	if rec.ID == "" {
		return entities.PaymentReceipt{}, ErrAssignmentNotFound
	}
	balance := rec.Charge.Balance()
	if !balance.IsPositive() {
		log.Printf("[ledger][online] nothing to collect assignment_id=%s paid=%s", assignmentID, rec.Charge.PaidAmount)
		return entities.PaymentReceipt{}, ErrNothingToCollect
	}

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[ledger][online] payload is not an object assignment_id=%s err=%v", assignmentID, err)
		return entities.PaymentReceipt{}, ErrInvalidProviderPayload
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[ledger][online] missing payment_method_id assignment_id=%s", assignmentID)
			return entities.PaymentReceipt{}, ErrInvalidProviderPayload
		}
		ensurePayerDefaults(reqMap, u.opts.SandboxPayerEmail)
		if !hasPayer(reqMap) {
			log.Printf("[ledger][online] missing payer assignment_id=%s", assignmentID)
			return entities.PaymentReceipt{}, ErrInvalidProviderPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = assignmentID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("%s (%s)", ledger.Project(rec).Name, rec.BeneficiaryID)
	}
	// The record balance is the amount charged, whatever the caller sent.
	reqMap["transaction_amount"] = balance.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.PaymentReceipt{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[ledger][online] gateway failed assignment_id=%s err=%v", assignmentID, err)
		switch {
		case isGatewayUnauthorized(err):
			return entities.PaymentReceipt{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.PaymentReceipt{}, ErrPaymentGatewayBadRequest
		}
		return entities.PaymentReceipt{}, err
	}
	log.Printf("[ledger][online] gateway success assignment_id=%s provider_payment_id=%s provider_status=%s", assignmentID, providerID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[ledger][online] provider response unmarshal failed assignment_id=%s err=%v", assignmentID, err)
	}

	receipt := entities.PaymentReceipt{
		ID:                 providerID,
		AssignmentID:       assignmentID,
		Amount:             balance,
		Date:               time.Now().UTC(),
		Status:             receiptStatusFor(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.receiptRepo.Create(ctx, receipt)
	if err != nil {
		log.Printf("[ledger][online] receipt create failed assignment_id=%s receipt_id=%s err=%v", assignmentID, receipt.ID, err)
		return entities.PaymentReceipt{}, err
	}

	if created.Status != entities.ReceiptStatusAprovado {
		log.Printf("[ledger][online] success assignment_id=%s receipt_id=%s status=%s", assignmentID, created.ID, created.Status)
		return created, nil
	}
	applied, err := u.applyReceipt(ctx, created, actor)
	if err != nil {
		log.Printf("[ledger][online] write-back failed assignment_id=%s receipt_id=%s err=%v", assignmentID, created.ID, err)
		return created, fmt.Errorf("%w: %v", ErrReceiptNotApplied, err)
	}
	log.Printf("[ledger][online] success assignment_id=%s receipt_id=%s status=%s", assignmentID, applied.ID, applied.Status)
	return applied, nil
}

// ApplyReceipt credits an approved receipt that was not applied when it was
// collected. Receipts already applied are returned unchanged.
func (u *LedgerUseCase) ApplyReceipt(ctx context.Context, assignmentID, receiptID, actor string) (entities.PaymentReceipt, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	receiptID = strings.TrimSpace(receiptID)
	if assignmentID == "" {
		return entities.PaymentReceipt{}, ErrInvalidAssignmentID
	}
	if receiptID == "" {
		return entities.PaymentReceipt{}, ErrPaymentReceiptNotFound
	}

	receipt, err := u.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	if receipt.ID == "" || receipt.AssignmentID != assignmentID {
		return entities.PaymentReceipt{}, ErrPaymentReceiptNotFound
	}
	if receipt.Status != entities.ReceiptStatusAprovado {
		return entities.PaymentReceipt{}, ErrReceiptNotApproved
	}
	if receipt.Applied() {
		log.Printf("[ledger][receipt] already applied assignment_id=%s receipt_id=%s", assignmentID, receiptID)
		return receipt, nil
	}
	return u.applyReceipt(ctx, receipt, actor)
}

// applyReceipt credits the receipt to its assignment, then stamps AppliedAt.
// The history entry carries the receipt id, so a retry after a partial
// failure never credits twice.
func (u *LedgerUseCase) applyReceipt(ctx context.Context, receipt entities.PaymentReceipt, actor string) (entities.PaymentReceipt, error) {
	rec, err := u.mutator.mutate(ctx, "receipt", receipt.AssignmentID, actor, func(rec *entities.AssignmentRecord, s ledger.Stamp) (bool, error) {
		return ledger.ApplyReceipt(rec, s, receipt.ID, receipt.Amount)
	})
	if err != nil {
		return entities.PaymentReceipt{}, err
	}

	at := time.Now().UTC()
	receipt.AppliedAt = &at
	marked, err := u.receiptRepo.MarkApplied(ctx, receipt)
	if err != nil {
		log.Printf("[ledger][receipt] mark applied failed receipt_id=%s err=%v", receipt.ID, err)
		return entities.PaymentReceipt{}, err
	}
	log.Printf("[ledger][receipt] applied assignment_id=%s receipt_id=%s paid=%s", rec.ID, marked.ID, rec.Charge.PaidAmount)
	return marked, nil
}

func (u *LedgerUseCase) ListReceipts(ctx context.Context, assignmentID string) ([]entities.PaymentReceipt, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return nil, ErrInvalidAssignmentID
	}
	return u.receiptRepo.ListByAssignmentID(ctx, assignmentID)
}

func receiptStatusFor(providerStatus string) entities.ReceiptStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.ReceiptStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.ReceiptStatusNegado
	}
	return entities.ReceiptStatusPendente
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any, sandboxEmail string) {
	if _, ok := m["payer"]; !ok || m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && sandboxEmail != "" {
		payer["email"] = sandboxEmail
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
