package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/domain/ledger"
	"assignment_ledger/internal/usecase/interfaces"
)

const defaultActor = "system"

// mutation applies one lifecycle change to a loaded record. It reports
// whether the record changed; unchanged records are not written.
type mutation func(rec *entities.AssignmentRecord, s ledger.Stamp) (bool, error)

// assignmentMutator runs the read-modify-write cycle shared by every
// assignment operation.
type assignmentMutator struct {
	repo         interfaces.IAssignmentRepository
	calendarRepo interfaces.ICalendarRepository
}

func (m assignmentMutator) mutate(ctx context.Context, op, id, actor string, fn mutation) (entities.AssignmentRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AssignmentRecord{}, ErrInvalidAssignmentID
	}

	rec, err := m.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[assignment][%s] load failed id=%s err=%v", op, id, err)
		return entities.AssignmentRecord{}, err
	}
	if rec.ID == "" {
		return entities.AssignmentRecord{}, ErrAssignmentNotFound
	}

	cal, err := loadCalendar(ctx, m.calendarRepo)
	if err != nil {
		log.Printf("[assignment][%s] calendar load failed id=%s err=%v", op, id, err)
		return entities.AssignmentRecord{}, err
	}

	expected := rec.Version
	changed, err := fn(&rec, newStamp(actor, cal))
	if err != nil {
		log.Printf("[assignment][%s] rejected id=%s err=%v", op, id, err)
		return entities.AssignmentRecord{}, err
	}
	if !changed {
		log.Printf("[assignment][%s] no-op id=%s status=%s", op, id, rec.Status)
		return rec, nil
	}

	updated, err := m.repo.Update(ctx, rec, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[assignment][%s] version conflict id=%s expected_version=%d", op, id, expected)
			return entities.AssignmentRecord{}, ErrAssignmentVersionConflict
		}
		log.Printf("[assignment][%s] update failed id=%s err=%v", op, id, err)
		return entities.AssignmentRecord{}, err
	}
	log.Printf("[assignment][%s] success id=%s version=%d history_len=%d", op, id, updated.Version, len(updated.History))
	return updated, nil
}

func newStamp(actor string, cal ledger.Calendar) ledger.Stamp {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = defaultActor
	}
	return ledger.Stamp{Actor: actor, At: time.Now().UTC(), Period: cal.Current()}
}

// resolveQuery defaults an empty query to the current period.
func resolveQuery(query entities.Period, cal ledger.Calendar) entities.Period {
	query.AcademicYearID = strings.TrimSpace(query.AcademicYearID)
	query.TermID = strings.TrimSpace(query.TermID)
	if query.IsZero() {
		return cal.Current()
	}
	return query
}
