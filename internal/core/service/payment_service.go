package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/escoffier/enrollment-system/internal/api/metrics"
	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// intentCurrency is the fixed settlement currency for all intents.
const intentCurrency = "usd"

// PaymentService bridges the payment provider and the payment history store.
type PaymentService struct {
	repo    ports.PaymentRepository
	intents ports.PaymentIntentCreator
	logger  zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, intents ports.PaymentIntentCreator, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, intents: intents, logger: logger}
}

// CreateIntent requests a card payment intent for price expressed in decimal
// currency units. The provider works in integer minor units, so price×100 is
// rounded to the nearest cent. Provider failures are not recovered locally.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))

	secret, err := s.intents.Create(ctx, amount, intentCurrency)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Int64("amount", amount).Msg("payment intent failed")
		return "", err
	}

	metrics.PaymentIntentsTotal.WithLabelValues("ok").Inc()
	return secret, nil
}

// Record appends a payment to history. A missing transaction id or date is
// filled in server-side.
func (s *PaymentService) Record(ctx context.Context, payment *domain.Payment) (string, error) {
	if payment.TransactionID == "" {
		payment.TransactionID = uuid.NewString()
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	id, err := s.repo.Insert(ctx, payment)
	if err != nil {
		return "", err
	}

	metrics.PaymentsRecordedTotal.Inc()
	s.logger.Info().
		Str("email", payment.Email).
		Str("transaction_id", payment.TransactionID).
		Float64("amount", payment.Amount).
		Msg("payment recorded")
	return id, nil
}

func (s *PaymentService) History(ctx context.Context, email string) ([]*domain.Payment, error) {
	return s.repo.ListByEmail(ctx, email)
}
