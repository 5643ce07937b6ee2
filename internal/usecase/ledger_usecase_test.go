package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/domain/ledger"
	"assignment_ledger/internal/usecase/interfaces"
	mock_interfaces "assignment_ledger/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type ledgerFixture struct {
	repo     *mock_interfaces.MockIAssignmentRepository
	receipts *mock_interfaces.MockIPaymentReceiptRepository
	calendar *mock_interfaces.MockICalendarRepository
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newLedgerFixture(t *testing.T) ledgerFixture {
	ctrl := gomock.NewController(t)
	return ledgerFixture{
		repo:     mock_interfaces.NewMockIAssignmentRepository(ctrl),
		receipts: mock_interfaces.NewMockIPaymentReceiptRepository(ctrl),
		calendar: mock_interfaces.NewMockICalendarRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
}

func (f ledgerFixture) useCase(opts PaymentOptions) *LedgerUseCase {
	return NewLedgerUseCase(f.repo, f.receipts, f.calendar, f.gateway, opts)
}

func TestLedgerUseCase_BeneficiaryLedger(t *testing.T) {
	f := newLedgerFixture(t)
	uc := f.useCase(PaymentOptions{})

	if _, err := uc.BeneficiaryLedger(context.Background(), " ", entities.Period{}); !errors.Is(err, ErrInvalidBeneficiaryID) {
		t.Fatalf("expected ErrInvalidBeneficiaryID, got %v", err)
	}

	sweater := sweaterRecord()
	sweater.Charge.PaidAmount = decimal.NewFromInt(3000)
	disabled := sweaterRecord()
	disabled.ID = "asg-2"
	disabled.Status = entities.AssignmentStatusDisabled
	disabled.DisabledEffect = entities.DisableFromCurrentTerm
	disabled.DisabledIn = entities.Period{AcademicYearID: "year-2024", TermID: "term-2024-1"}

	f.repo.EXPECT().ListByBeneficiaryID(gomock.Any(), "pupil-1").Return([]entities.AssignmentRecord{sweater, disabled}, nil)
	expectCalendar(f.calendar)

	l, err := uc.BeneficiaryLedger(context.Background(), "pupil-1", entities.Period{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Period != currentPeriod || len(l.Fees) != 1 {
		t.Fatalf("expected one applicable fee in the current period, got %d", len(l.Fees))
	}
	fee := l.Fees[0]
	if fee.SourceAssignmentID != "asg-1" || fee.Name != "School Sweater" {
		t.Fatalf("unexpected projection %+v", fee)
	}
	if !l.TotalBalance.Equal(decimal.NewFromInt(6000)) {
		t.Fatalf("unexpected total balance %s", l.TotalBalance)
	}
}

func TestLedgerUseCase_RecordPayment(t *testing.T) {
	t.Run("writes back onto the source record", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil)
		expectCalendar(f.calendar)
		expectVersionedUpdate(f.repo, 1)

		rec, err := f.useCase(PaymentOptions{}).RecordPayment(context.Background(), "asg-1", "bursar", decimal.NewFromInt(2500))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.Charge.PaidAmount.Equal(decimal.NewFromInt(2500)) || rec.Charge.PaymentStatus != entities.PaymentStatusPartial {
			t.Fatalf("unexpected charge %+v", rec.Charge)
		}
		last := rec.History[len(rec.History)-1]
		if last.Action != entities.HistoryPayment || last.Amount == nil || !last.Amount.Equal(decimal.NewFromInt(2500)) {
			t.Fatalf("unexpected entry %+v", last)
		}
	})

	t.Run("rejects overpayment", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil)
		expectCalendar(f.calendar)

		_, err := f.useCase(PaymentOptions{}).RecordPayment(context.Background(), "asg-1", "bursar", decimal.NewFromInt(9001))
		if !errors.Is(err, ledger.ErrOverpayment) {
			t.Fatalf("expected ErrOverpayment, got %v", err)
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil)
		expectCalendar(f.calendar)

		_, err := f.useCase(PaymentOptions{}).RecordPayment(context.Background(), "asg-1", "bursar", decimal.Zero)
		if !errors.Is(err, ledger.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestLedgerUseCase_CollectOnline_Validations(t *testing.T) {
	t.Run("empty assignment id", func(t *testing.T) {
		f := newLedgerFixture(t)
		_, err := f.useCase(PaymentOptions{}).CollectOnline(context.Background(), " ", "", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidAssignmentID) {
			t.Fatalf("expected ErrInvalidAssignmentID, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		f := newLedgerFixture(t)
		_, err := f.useCase(PaymentOptions{}).CollectOnline(context.Background(), "asg-1", "", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		f := newLedgerFixture(t)
		uc := NewLedgerUseCase(f.repo, f.receipts, f.calendar, nil, PaymentOptions{})
		_, err := uc.CollectOnline(context.Background(), "asg-1", "", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("nothing to collect", func(t *testing.T) {
		f := newLedgerFixture(t)
		rec := sweaterRecord()
		rec.Charge.PaidAmount = rec.Charge.Amount
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(rec, nil)

		_, err := f.useCase(PaymentOptions{}).CollectOnline(context.Background(), "asg-1", "", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrNothingToCollect) {
			t.Fatalf("expected ErrNothingToCollect, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil)

		_, err := f.useCase(PaymentOptions{}).CollectOnline(context.Background(), "asg-1", "", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("missing payer without sandbox email", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil)

		_, err := f.useCase(PaymentOptions{}).CollectOnline(context.Background(), "asg-1", "", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})
}

func TestLedgerUseCase_CollectOnline_Gateway(t *testing.T) {
	t.Run("approved payment is written back", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil).Times(2)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload is not json: %v", err)
				}
				if m["transaction_amount"] != float64(9000) || m["external_reference"] != "asg-1" {
					t.Fatalf("unexpected enriched payload %v", m)
				}
				payer, _ := m["payer"].(map[string]any)
				if payer["email"] != "sandbox@test.com" {
					t.Fatalf("expected sandbox payer email, got %v", payer)
				}
				return "mp-1", "approved", json.RawMessage(`{"id":1,"status":"approved"}`), nil
			})
		f.receipts.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) { return p, nil })
		expectCalendar(f.calendar)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).
			DoAndReturn(func(_ context.Context, a entities.AssignmentRecord, v int64) (entities.AssignmentRecord, error) {
				if !a.Charge.PaidAmount.Equal(decimal.NewFromInt(9000)) || a.Charge.PaymentStatus != entities.PaymentStatusPaid {
					t.Fatalf("unexpected write-back %+v", a.Charge)
				}
				if last := a.History[len(a.History)-1]; last.ReceiptID != "mp-1" {
					t.Fatalf("payment entry must reference the receipt, got %+v", last)
				}
				a.Version = v + 1
				return a, nil
			})
		f.receipts.EXPECT().MarkApplied(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) { return p, nil })

		uc := f.useCase(PaymentOptions{SandboxPayerEmail: "sandbox@test.com"})
		receipt, err := uc.CollectOnline(context.Background(), "asg-1", "parent-portal", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt.ID != "mp-1" || receipt.Status != entities.ReceiptStatusAprovado || !receipt.Amount.Equal(decimal.NewFromInt(9000)) {
			t.Fatalf("unexpected receipt %+v", receipt)
		}
		if receipt.ProviderPayload["status"] != "approved" {
			t.Fatalf("expected parsed provider payload, got %v", receipt.ProviderPayload)
		}
		if !receipt.Applied() {
			t.Fatalf("expected receipt marked applied")
		}
	})

	t.Run("approved payment survives a failed write-back", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil).Times(2)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", "approved", json.RawMessage(`{}`), nil)
		f.receipts.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) { return p, nil })
		expectCalendar(f.calendar)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).Return(entities.AssignmentRecord{}, interfaces.ErrVersionConflict)

		receipt, err := f.useCase(PaymentOptions{}).CollectOnline(context.Background(), "asg-1", "", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrReceiptNotApplied) {
			t.Fatalf("expected ErrReceiptNotApplied, got %v", err)
		}
		if receipt.ID != "mp-9" || receipt.Status != entities.ReceiptStatusAprovado || receipt.Applied() {
			t.Fatalf("expected the unapplied approved receipt, got %+v", receipt)
		}
	})

	t.Run("pending payment leaves the record untouched", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "in_process", json.RawMessage(`{}`), nil)
		f.receipts.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) { return p, nil })

		receipt, err := f.useCase(PaymentOptions{}).CollectOnline(context.Background(), "asg-1", "", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt.Status != entities.ReceiptStatusPendente {
			t.Fatalf("expected pendente, got %s", receipt.Status)
		}
	})

	t.Run("mock mode accepts empty payload", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-3", "rejected", json.RawMessage(`{}`), nil)
		f.receipts.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) { return p, nil })

		receipt, err := f.useCase(PaymentOptions{MockMode: true}).CollectOnline(context.Background(), "asg-1", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt.Status != entities.ReceiptStatusNegado {
			t.Fatalf("expected negado, got %s", receipt.Status)
		}
	})

	mapped := []struct {
		name string
		err  error
		want error
	}{
		{"unauthorized", errors.New(`{"status":401,"error":"unauthorized"}`), ErrPaymentGatewayUnauthorized},
		{"bad request", errors.New(`{"status":400,"error":"bad_request"}`), ErrPaymentGatewayBadRequest},
	}
	for _, tt := range mapped {
		t.Run("gateway "+tt.name, func(t *testing.T) {
			f := newLedgerFixture(t)
			f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil)
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tt.err)

			_, err := f.useCase(PaymentOptions{}).CollectOnline(context.Background(), "asg-1", "", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLedgerUseCase_ListReceipts(t *testing.T) {
	f := newLedgerFixture(t)
	uc := f.useCase(PaymentOptions{})

	if _, err := uc.ListReceipts(context.Background(), ""); !errors.Is(err, ErrInvalidAssignmentID) {
		t.Fatalf("expected ErrInvalidAssignmentID, got %v", err)
	}

	f.receipts.EXPECT().ListByAssignmentID(gomock.Any(), "asg-1").Return([]entities.PaymentReceipt{{ID: "mp-1"}}, nil)
	list, err := uc.ListReceipts(context.Background(), "asg-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected result len=%d err=%v", len(list), err)
	}
}

func TestLedgerUseCase_ApplyReceipt(t *testing.T) {
	approved := func() entities.PaymentReceipt {
		return entities.PaymentReceipt{ID: "mp-9", AssignmentID: "asg-1", Amount: decimal.NewFromInt(9000), Status: entities.ReceiptStatusAprovado}
	}

	t.Run("credits an unapplied receipt", func(t *testing.T) {
		f := newLedgerFixture(t)
		f.receipts.EXPECT().GetByID(gomock.Any(), "mp-9").Return(approved(), nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(sweaterRecord(), nil)
		expectCalendar(f.calendar)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).
			DoAndReturn(func(_ context.Context, a entities.AssignmentRecord, v int64) (entities.AssignmentRecord, error) {
				if !a.Charge.PaidAmount.Equal(decimal.NewFromInt(9000)) || !ledger.HasReceipt(a, "mp-9") {
					t.Fatalf("unexpected write-back %+v", a.Charge)
				}
				a.Version = v + 1
				return a, nil
			})
		f.receipts.EXPECT().MarkApplied(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) { return p, nil })

		receipt, err := f.useCase(PaymentOptions{}).ApplyReceipt(context.Background(), "asg-1", "mp-9", "bursar")
		if err != nil || !receipt.Applied() {
			t.Fatalf("unexpected result %+v err=%v", receipt, err)
		}
	})

	t.Run("record already credited is only marked", func(t *testing.T) {
		f := newLedgerFixture(t)
		rec := sweaterRecord()
		amount := decimal.NewFromInt(9000)
		rec.Charge.PaidAmount = amount
		rec.Charge.PaymentStatus = entities.PaymentStatusPaid
		rec.History = append(rec.History, entities.HistoryEntry{Action: entities.HistoryPayment, Amount: &amount, ReceiptID: "mp-9"})
		f.receipts.EXPECT().GetByID(gomock.Any(), "mp-9").Return(approved(), nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "asg-1").Return(rec, nil)
		expectCalendar(f.calendar)
		f.receipts.EXPECT().MarkApplied(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) { return p, nil })

		receipt, err := f.useCase(PaymentOptions{}).ApplyReceipt(context.Background(), "asg-1", "mp-9", "")
		if err != nil || !receipt.Applied() {
			t.Fatalf("unexpected result %+v err=%v", receipt, err)
		}
	})

	t.Run("applied receipt is returned unchanged", func(t *testing.T) {
		f := newLedgerFixture(t)
		p := approved()
		at := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		p.AppliedAt = &at
		f.receipts.EXPECT().GetByID(gomock.Any(), "mp-9").Return(p, nil)

		receipt, err := f.useCase(PaymentOptions{}).ApplyReceipt(context.Background(), "asg-1", "mp-9", "")
		if err != nil || !receipt.AppliedAt.Equal(at) {
			t.Fatalf("unexpected result %+v err=%v", receipt, err)
		}
	})

	rejected := []struct {
		name    string
		receipt entities.PaymentReceipt
		want    error
	}{
		{"unknown receipt", entities.PaymentReceipt{}, ErrPaymentReceiptNotFound},
		{"other assignment", entities.PaymentReceipt{ID: "mp-9", AssignmentID: "asg-2", Status: entities.ReceiptStatusAprovado}, ErrPaymentReceiptNotFound},
		{"not approved", entities.PaymentReceipt{ID: "mp-9", AssignmentID: "asg-1", Status: entities.ReceiptStatusPendente}, ErrReceiptNotApproved},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			f := newLedgerFixture(t)
			f.receipts.EXPECT().GetByID(gomock.Any(), "mp-9").Return(tt.receipt, nil)

			_, err := f.useCase(PaymentOptions{}).ApplyReceipt(context.Background(), "asg-1", "mp-9", "")
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("blank ids", func(t *testing.T) {
		f := newLedgerFixture(t)
		uc := f.useCase(PaymentOptions{})
		if _, err := uc.ApplyReceipt(context.Background(), " ", "mp-9", ""); !errors.Is(err, ErrInvalidAssignmentID) {
			t.Fatalf("expected ErrInvalidAssignmentID, got %v", err)
		}
		if _, err := uc.ApplyReceipt(context.Background(), "asg-1", " ", ""); !errors.Is(err, ErrPaymentReceiptNotFound) {
			t.Fatalf("expected ErrPaymentReceiptNotFound, got %v", err)
		}
	})
}
