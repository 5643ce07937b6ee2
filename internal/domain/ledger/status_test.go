package ledger

import (
	"reflect"
	"testing"

	"assignment_ledger/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestOpen(t *testing.T) {
	rec := feeRecord(500)
	if rec.Status != entities.AssignmentStatusActive {
		t.Fatalf("expected active, got %s", rec.Status)
	}
	if rec.Charge.PaymentStatus != entities.PaymentStatusPending {
		t.Fatalf("expected pending, got %s", rec.Charge.PaymentStatus)
	}
	if len(rec.History) != 1 || rec.History[0].Action != entities.HistoryAssigned {
		t.Fatalf("expected one assigned entry, got %+v", rec.History)
	}

	free := feeRecord(0)
	if free.Charge.PaymentStatus != entities.PaymentStatusPaid {
		t.Fatalf("expected zero amount to be paid, got %s", free.Charge.PaymentStatus)
	}
}

func TestStatusTransitions_AppendExactlyOneEntry(t *testing.T) {
	rec := feeRecord(500)
	snapshot := func() []entities.HistoryEntry {
		return append([]entities.HistoryEntry(nil), rec.History...)
	}

	steps := []struct {
		name string
		run  func() (bool, error)
	}{
		{"disable", func() (bool, error) {
			return Disable(&rec, stamp(currentPeriod), entities.DisableFromNextTerm, "transfer")
		}},
		{"enable", func() (bool, error) { return Enable(&rec, stamp(currentPeriod)), nil }},
		{"adjust", func() (bool, error) {
			err := AdjustTimeSettings(&rec, stamp(currentPeriod),
				entities.Validity{Type: entities.ValiditySpecificYear, YearID: "year-2025"},
				entities.TermApplicability{Type: entities.TermsSpecific, TermIDs: []string{"term-2025-1"}})
			return err == nil, err
		}},
	}

	for _, step := range steps {
		before := snapshot()
		changed, err := step.run()
		if err != nil || !changed {
			t.Fatalf("%s: changed=%v err=%v", step.name, changed, err)
		}
		if len(rec.History) != len(before)+1 {
			t.Fatalf("%s: expected history to grow by one, got %d -> %d", step.name, len(before), len(rec.History))
		}
		if !reflect.DeepEqual(rec.History[:len(before)], before) {
			t.Fatalf("%s: earlier history entries were modified", step.name)
		}
	}
}

func TestDisable(t *testing.T) {
	rec := feeRecord(500)
	changed, err := Disable(&rec, stamp(currentPeriod), entities.DisableFromCurrentTerm, "fee waived")
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	last := rec.History[len(rec.History)-1]
	if last.Action != entities.HistoryDisabled || last.Reason != "fee waived" || last.EffectiveFrom != entities.DisableFromCurrentTerm {
		t.Fatalf("unexpected entry: %+v", last)
	}
	if last.PreviousStatus != entities.AssignmentStatusActive || last.NewStatus != entities.AssignmentStatusDisabled || last.Actor != "bursar" {
		t.Fatalf("unexpected entry: %+v", last)
	}
	if rec.DisabledIn != currentPeriod {
		t.Fatalf("expected disabling period recorded, got %+v", rec.DisabledIn)
	}

	t.Run("already disabled is a no-op", func(t *testing.T) {
		n := len(rec.History)
		changed, err := Disable(&rec, stamp(currentPeriod), entities.DisableFromNextTerm, "again")
		if err != nil || changed || len(rec.History) != n {
			t.Fatalf("expected no-op, changed=%v err=%v len=%d", changed, err, len(rec.History))
		}
	})

	t.Run("invalid effect", func(t *testing.T) {
		fresh := feeRecord(1)
		if _, err := Disable(&fresh, stamp(currentPeriod), "someday", ""); err != ErrInvalidDisableEffect {
			t.Fatalf("expected ErrInvalidDisableEffect, got %v", err)
		}
	})

	t.Run("no current term", func(t *testing.T) {
		fresh := feeRecord(1)
		n := len(fresh.History)
		_, err := Disable(&fresh, stamp(entities.Period{AcademicYearID: "year-2024"}), entities.DisableFromNextTerm, "")
		if err != ErrNoCurrentTerm {
			t.Fatalf("expected ErrNoCurrentTerm, got %v", err)
		}
		if fresh.Status != entities.AssignmentStatusActive || len(fresh.History) != n {
			t.Fatalf("record must be untouched, status=%s history=%d", fresh.Status, len(fresh.History))
		}
	})
}

func TestEnable(t *testing.T) {
	rec := feeRecord(500)
	if Enable(&rec, stamp(currentPeriod)) {
		t.Fatalf("expected enabling an active record to be a no-op")
	}
	_, _ = Disable(&rec, stamp(currentPeriod), entities.DisableFromCurrentTerm, "")
	if !Enable(&rec, stamp(currentPeriod)) {
		t.Fatalf("expected enable to change state")
	}
	if rec.Status != entities.AssignmentStatusActive || rec.DisabledEffect != "" || !rec.DisabledIn.IsZero() {
		t.Fatalf("unexpected record after enable: %+v", rec)
	}
}

func TestAdjustTimeSettings_KeepsPreviousSettings(t *testing.T) {
	rec := feeRecord(500)
	err := AdjustTimeSettings(&rec, stamp(currentPeriod),
		entities.Validity{Type: entities.ValidityYearRange, StartYearID: "year-2024", EndYearID: "year-2025"},
		entities.TermApplicability{Type: entities.TermsAll})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := rec.History[len(rec.History)-1]
	if last.Action != entities.HistoryTimeAdjusted {
		t.Fatalf("unexpected action %s", last.Action)
	}
	if last.PreviousValidity == nil || last.PreviousValidity.Type != entities.ValidityIndefinite {
		t.Fatalf("expected previous validity captured, got %+v", last.PreviousValidity)
	}
	if last.PreviousTermApplicability == nil || last.PreviousTermApplicability.Type != entities.TermsAll {
		t.Fatalf("expected previous term applicability captured")
	}
	if rec.Status != entities.AssignmentStatusActive {
		t.Fatalf("time adjustment must not change status")
	}

	n := len(rec.History)
	if err := AdjustTimeSettings(&rec, stamp(currentPeriod), entities.Validity{Type: entities.ValiditySpecificYear}, entities.TermApplicability{Type: entities.TermsAll}); err != ErrInvalidValidity {
		t.Fatalf("expected ErrInvalidValidity, got %v", err)
	}
	if len(rec.History) != n {
		t.Fatalf("rejected adjustment must not append history")
	}
}

func TestDisableFromNextTerm_KeepsPaymentHistory(t *testing.T) {
	rec := feeRecord(3000)
	if err := ApplyPayment(&rec, stamp(currentPeriod), decimal.NewFromInt(1000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := append([]entities.HistoryEntry(nil), rec.History...)

	changed, err := Disable(&rec, stamp(currentPeriod), entities.DisableFromNextTerm, "moving away")
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	if rec.Status != entities.AssignmentStatusDisabled {
		t.Fatalf("expected disabled, got %s", rec.Status)
	}
	if len(rec.History) != len(before)+1 || rec.History[len(rec.History)-1].Action != entities.HistoryDisabled {
		t.Fatalf("expected exactly one disabled entry appended")
	}
	if !reflect.DeepEqual(rec.History[:len(before)], before) {
		t.Fatalf("payment entries must stay untouched")
	}
	if !rec.Charge.PaidAmount.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("paid amount must be preserved, got %s", rec.Charge.PaidAmount)
	}
}
