package ports

import (
	"context"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

// PaymentIntentCreator abstracts the external payment provider. Create
// requests an intent for an integer minor-unit amount and returns the
// provider's client-side secret.
type PaymentIntentCreator interface {
	Create(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

// PaymentService implements payment-intent creation and payment history.
type PaymentService interface {
	// CreateIntent converts price (decimal currency units) to minor units
	// and requests a card payment intent from the provider.
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
	Record(ctx context.Context, payment *domain.Payment) (string, error)
	History(ctx context.Context, email string) ([]*domain.Payment, error)
}
