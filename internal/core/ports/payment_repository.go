package ports

import (
	"context"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

// PaymentRepository defines persistence operations on the payments
// collection. The collection is append-only.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *domain.Payment) (string, error)
	// ListByEmail returns payments for the email, most recent first.
	ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error)
}
