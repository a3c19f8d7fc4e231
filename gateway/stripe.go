package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"

	"github.com/olvera93/FoodApp/pkg/apperr"
)

// StripeGateway authorizes payments through Stripe payment intents.
type StripeGateway struct {
	timeout time.Duration
}

func NewStripeGateway(secretKey string, timeout time.Duration) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{timeout: timeout}
}

func (g *StripeGateway) CreateAuthorization(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", apperr.Processing("error creating payment transaction: %v", err)
	}
	return intent.ClientSecret, nil
}
