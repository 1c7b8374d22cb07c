// Package payment adapts the Stripe SDK to the PaymentIntentCreator port.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeIntents creates card payment intents through the Stripe API.
type StripeIntents struct {
	api *client.API
}

// NewStripeIntents builds a client bound to the given secret key.
func NewStripeIntents(secretKey string) *StripeIntents {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeIntents{api: api}
}

// Create requests a card-only intent for an integer minor-unit amount and
// returns its client secret. Provider errors are returned as-is for the
// caller to propagate; there is no retry.
func (s *StripeIntents) Create(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
