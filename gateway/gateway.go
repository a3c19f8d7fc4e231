package gateway

import "context"

// PaymentGateway is the boundary to the external payment provider. It
// authorizes a charge in minor units and returns an opaque handle the
// client uses to complete the payment.
type PaymentGateway interface {
	CreateAuthorization(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (string, error)
}
