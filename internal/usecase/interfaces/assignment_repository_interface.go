package interfaces

import (
	"context"
	"errors"

	"assignment_ledger/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored version no longer
// matches the version the caller read.
var ErrVersionConflict = errors.New("assignment version conflict")

//go:generate mockgen -source=assignment_repository_interface.go -destination=mocks/assignment_repository_mock.go -package=mock_interfaces

// IAssignmentRepository abstracts document-store persistence for AssignmentRecord.
//
// GetByID returns a zero record (empty ID) when nothing is stored under id.
// Update writes the whole document only if the stored version equals
// expectedVersion, and stores it with expectedVersion+1.
type IAssignmentRepository interface {
	Create(ctx context.Context, a entities.AssignmentRecord) (entities.AssignmentRecord, error)
	GetByID(ctx context.Context, id string) (entities.AssignmentRecord, error)
	ListByBeneficiaryID(ctx context.Context, beneficiaryID string) ([]entities.AssignmentRecord, error)
	Update(ctx context.Context, a entities.AssignmentRecord, expectedVersion int64) (entities.AssignmentRecord, error)
	Delete(ctx context.Context, id string) error
}
