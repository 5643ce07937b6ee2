package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "assignment_ledger/internal/adapter/http/dto/request"
	response "assignment_ledger/internal/adapter/http/dto/response"
	"assignment_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles the fee-shaped view of assignments and payments
// collected against them.
type LedgerHandler struct {
	usecase  usecase.ILedgerUseCase
	mockMode bool
}

func NewLedgerHandler(uc usecase.ILedgerUseCase, mockMode bool) *LedgerHandler {
	return &LedgerHandler{usecase: uc, mockMode: mockMode}
}

// GetBeneficiaryLedger godoc
// @Summary      Beneficiary fee ledger
// @Tags         beneficiaries
// @Produce      json
// @Param        id  path  string  true  "Beneficiary ID"
// @Param        academic_year_id  query  string  false  "Academic year (defaults to current)"
// @Param        term_id  query  string  false  "Term (defaults to current)"
// @Success      200  {object}  response.LedgerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /beneficiaries/{id}/ledger [get]
func (h *LedgerHandler) GetBeneficiaryLedger(c *gin.Context) {
	var query request.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	beneficiaryID := c.Param("id")
	l, err := h.usecase.BeneficiaryLedger(c.Request.Context(), beneficiaryID, query.ToEntity())
	if err != nil {
		log.Printf("[ledger][handler] view failed beneficiary_id=%s err=%v", beneficiaryID, err)
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedger(l))
}

// RecordPayment applies an offline payment to the source assignment.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string  false  "Actor recorded in history"
// @Param        id  path  string  true  "Assignment ID"
// @Param        payload  body  request.PaymentRequest  true  "Amount"
// @Success      200  {object}  response.AssignmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id}/payments [post]
func (h *LedgerHandler) RecordPayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	id := c.Param("id")
	rec, err := h.usecase.RecordPayment(c.Request.Context(), id, actorFrom(c), payload.Amount)
	if err != nil {
		log.Printf("[payment][handler] record failed assignment_id=%s amount=%s err=%v", id, payload.Amount, err)
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(rec))
}

// CollectOnline charges the outstanding balance through the payment provider.
//
// @Summary      Collect the balance online
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string  false  "Actor recorded in history"
// @Param        id  path  string  true  "Assignment ID"
// @Param        payload  body  request.OnlinePaymentRequest  false  "Provider payload"
// @Success      200  {object}  response.PaymentReceiptResponse
// @Success      202  {object}  response.PaymentReceiptResponse  "Approved but not yet applied; replay with /apply"
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id}/payments/online [post]
func (h *LedgerHandler) CollectOnline(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] collect start assignment_id=%s", id)

	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Printf("[payment][handler] invalid payload assignment_id=%s err=%v", id, err)
			writeError(c, errInvalidRequest)
			return
		}
		log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload assignment_id=%s err=%v", id, err)
		payload = json.RawMessage("{}")
	}

	receipt, err := h.usecase.CollectOnline(c.Request.Context(), id, actorFrom(c), payload)
	if errors.Is(err, usecase.ErrReceiptNotApplied) {
		log.Printf("[payment][handler] collect approved but not applied assignment_id=%s payment_id=%s err=%v", id, receipt.ID, err)
		c.JSON(http.StatusAccepted, response.FromPaymentReceipt(receipt))
		return
	}
	if err != nil {
		log.Printf("[payment][handler] collect failed assignment_id=%s err=%v", id, err)
		writeError(c, mapLedgerError(err))
		return
	}
	log.Printf("[payment][handler] collect success assignment_id=%s payment_id=%s status=%s", id, receipt.ID, receipt.Status)

	c.JSON(http.StatusOK, response.FromPaymentReceipt(receipt))
}

// ListReceipts godoc
// @Summary      List online payments
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "Assignment ID"
// @Success      200  {array}  response.PaymentReceiptResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id}/payments [get]
func (h *LedgerHandler) ListReceipts(c *gin.Context) {
	receipts, err := h.usecase.ListReceipts(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentReceipts(receipts))
}

// ApplyReceipt credits an approved online payment that was not applied to
// its assignment when it was collected.
//
// @Summary      Apply an approved online payment
// @Tags         payments
// @Produce      json
// @Param        X-Actor-ID  header  string  false  "Actor recorded in history"
// @Param        id  path  string  true  "Assignment ID"
// @Param        payment_id  path  string  true  "Provider payment ID"
// @Success      200  {object}  response.PaymentReceiptResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id}/payments/{payment_id}/apply [post]
func (h *LedgerHandler) ApplyReceipt(c *gin.Context) {
	id, paymentID := c.Param("id"), c.Param("payment_id")
	receipt, err := h.usecase.ApplyReceipt(c.Request.Context(), id, paymentID, actorFrom(c))
	if err != nil {
		log.Printf("[payment][handler] apply failed assignment_id=%s payment_id=%s err=%v", id, paymentID, err)
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentReceipt(receipt))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ParseProviderPayload(raw)
}
