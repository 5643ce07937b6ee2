package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assignment_ledger/internal/adapter/http/handlers/mocks"
	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/domain/ledger"
	"assignment_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newLedgerRouter(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockILedgerUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILedgerUseCase(ctrl)
	h := NewLedgerHandler(uc, mockMode)

	r := gin.New()
	r.GET("/v1/beneficiaries/:id/ledger", h.GetBeneficiaryLedger)
	r.POST("/v1/assignments/:id/payments", h.RecordPayment)
	r.POST("/v1/assignments/:id/payments/online", h.CollectOnline)
	r.GET("/v1/assignments/:id/payments", h.ListReceipts)
	r.POST("/v1/assignments/:id/payments/:payment_id/apply", h.ApplyReceipt)
	return r, uc
}

func TestLedgerHandler_GetBeneficiaryLedger(t *testing.T) {
	t.Run("success with default period", func(t *testing.T) {
		r, uc := newLedgerRouter(t, false)
		uc.EXPECT().BeneficiaryLedger(gomock.Any(), "pupil-1", entities.Period{}).Return(ledger.Ledger{
			BeneficiaryID: "pupil-1",
			Period:        entities.Period{AcademicYearID: "year-2024", TermID: "term-2024-2"},
			TotalAmount:   decimal.NewFromInt(9000),
			TotalPaid:     decimal.NewFromInt(6000),
			TotalBalance:  decimal.NewFromInt(3000),
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/beneficiaries/pupil-1/ledger", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["total_balance"] != "3000" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		r, uc := newLedgerRouter(t, false)
		uc.EXPECT().BeneficiaryLedger(gomock.Any(), "pupil-1", gomock.Any()).Return(ledger.Ledger{}, errors.New("dynamo down"))

		w := doJSON(r, http.MethodGet, "/v1/beneficiaries/pupil-1/ledger?term_id=term-2024-1", "", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestLedgerHandler_RecordPayment(t *testing.T) {
	t.Run("non positive amount rejected by binding", func(t *testing.T) {
		r, _ := newLedgerRouter(t, false)

		w := doJSON(r, http.MethodPost, "/v1/assignments/asg-1/payments", `{"amount":"0"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("overpayment", func(t *testing.T) {
		r, uc := newLedgerRouter(t, false)
		uc.EXPECT().RecordPayment(gomock.Any(), "asg-1", "system", gomock.Any()).Return(entities.AssignmentRecord{}, ledger.ErrOverpayment)

		w := doJSON(r, http.MethodPost, "/v1/assignments/asg-1/payments", `{"amount":"99999"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newLedgerRouter(t, false)
		rec := uniformRecord()
		rec.Charge.PaidAmount = decimal.NewFromInt(2500)
		rec.Charge.PaymentStatus = entities.PaymentStatusPartial
		uc.EXPECT().
			RecordPayment(gomock.Any(), "asg-1", "bursar", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, amount decimal.Decimal) (entities.AssignmentRecord, error) {
				if !amount.Equal(decimal.NewFromInt(2500)) {
					t.Fatalf("unexpected amount: %s", amount)
				}
				return rec, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/assignments/asg-1/payments", `{"amount":2500}`, map[string]string{ActorHeader: "bursar"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLedgerHandler_CollectOnline(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newLedgerRouter(t, false)

		w := doJSON(r, http.MethodPost, "/v1/assignments/asg-1/payments/online", "{", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload falls back in mock mode", func(t *testing.T) {
		r, uc := newLedgerRouter(t, true)
		uc.EXPECT().
			CollectOnline(gomock.Any(), "asg-1", "system", json.RawMessage("{}")).
			Return(entities.PaymentReceipt{ID: "mock-1", AssignmentID: "asg-1", Status: entities.ReceiptStatusAprovado}, nil)

		w := doJSON(r, http.MethodPost, "/v1/assignments/asg-1/payments/online", "{", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("read body error", func(t *testing.T) {
		r, _ := newLedgerRouter(t, false)

		req := httptest.NewRequest(http.MethodPost, "/v1/assignments/asg-1/payments/online", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("envelope unwrapped", func(t *testing.T) {
		r, uc := newLedgerRouter(t, false)
		uc.EXPECT().
			CollectOnline(gomock.Any(), "asg-1", "system", json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.PaymentReceipt{}, usecase.ErrNothingToCollect)

		w := doJSON(r, http.MethodPost, "/v1/assignments/asg-1/payments/online", `{"provider_payload":{"payment_method_id":"pix"}}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("provider unauthorized", func(t *testing.T) {
		r, uc := newLedgerRouter(t, false)
		uc.EXPECT().CollectOnline(gomock.Any(), "asg-1", "system", gomock.Any()).Return(entities.PaymentReceipt{}, usecase.ErrPaymentGatewayUnauthorized)

		w := doJSON(r, http.MethodPost, "/v1/assignments/asg-1/payments/online", `{"payment_method_id":"pix"}`, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("approved but not applied", func(t *testing.T) {
		r, uc := newLedgerRouter(t, false)
		uc.EXPECT().CollectOnline(gomock.Any(), "asg-1", "system", gomock.Any()).Return(entities.PaymentReceipt{
			ID:           "pay-9",
			AssignmentID: "asg-1",
			Amount:       decimal.NewFromInt(3000),
			Status:       entities.ReceiptStatusAprovado,
		}, usecase.ErrReceiptNotApplied)

		w := doJSON(r, http.MethodPost, "/v1/assignments/asg-1/payments/online", `{"payment_method_id":"pix"}`, nil)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["payment_id"] != "pay-9" || res["status"] != "aprovado" {
			t.Fatalf("unexpected response: %+v", res)
		}
		if _, ok := res["applied_at"]; ok {
			t.Fatalf("unapplied receipt must not carry applied_at: %+v", res)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newLedgerRouter(t, false)
		now := time.Now().UTC()
		uc.EXPECT().CollectOnline(gomock.Any(), "asg-1", "system", gomock.Any()).Return(entities.PaymentReceipt{
			ID:           "pay-1",
			AssignmentID: "asg-1",
			Amount:       decimal.NewFromInt(3000),
			Date:         now,
			Status:       entities.ReceiptStatusAprovado,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assignments/asg-1/payments/online", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["payment_id"] != "pay-1" || res["status"] != "aprovado" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestLedgerHandler_ListReceipts(t *testing.T) {
	r, uc := newLedgerRouter(t, false)
	uc.EXPECT().ListReceipts(gomock.Any(), "asg-1").Return([]entities.PaymentReceipt{{ID: "pay-1"}, {ID: "pay-2"}}, nil)

	w := doJSON(r, http.MethodGet, "/v1/assignments/asg-1/payments", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || len(res) != 2 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestLedgerHandler_ApplyReceipt(t *testing.T) {
	t.Run("applied", func(t *testing.T) {
		r, uc := newLedgerRouter(t, false)
		at := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().ApplyReceipt(gomock.Any(), "asg-1", "pay-9", "bursar").
			Return(entities.PaymentReceipt{ID: "pay-9", AssignmentID: "asg-1", Status: entities.ReceiptStatusAprovado, AppliedAt: &at}, nil)

		w := doJSON(r, http.MethodPost, "/v1/assignments/asg-1/payments/pay-9/apply", "", map[string]string{ActorHeader: "bursar"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res["applied_at"] == nil {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	mapped := []struct {
		name string
		err  error
		want int
	}{
		{"unknown receipt", usecase.ErrPaymentReceiptNotFound, http.StatusNotFound},
		{"not approved", usecase.ErrReceiptNotApproved, http.StatusConflict},
		{"version conflict", usecase.ErrAssignmentVersionConflict, http.StatusConflict},
	}
	for _, tt := range mapped {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newLedgerRouter(t, false)
			uc.EXPECT().ApplyReceipt(gomock.Any(), "asg-1", "pay-9", "system").Return(entities.PaymentReceipt{}, tt.err)

			w := doJSON(r, http.MethodPost, "/v1/assignments/asg-1/payments/pay-9/apply", "", nil)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}
