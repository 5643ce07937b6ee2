package interfaces

import (
	"context"

	"assignment_ledger/internal/domain/entities"
)

//go:generate mockgen -source=payment_receipt_repository_interface.go -destination=mocks/payment_receipt_repository_mock.go -package=mock_interfaces

// IPaymentReceiptRepository abstracts DynamoDB persistence for PaymentReceipt.
type IPaymentReceiptRepository interface {
	Create(ctx context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error)
	GetByID(ctx context.Context, id string) (entities.PaymentReceipt, error)
	ListByAssignmentID(ctx context.Context, assignmentID string) ([]entities.PaymentReceipt, error)
	// MarkApplied stores p (with AppliedAt set) over an existing receipt.
	MarkApplied(ctx context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error)
}
