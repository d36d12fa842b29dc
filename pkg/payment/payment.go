package payment

import (
	"context"
	"errors"
)

// Order is the gateway's record of a payment intent. Nothing is committed
// until a signed completion callback arrives.
type Order struct {
	ID       string
	Amount   int64 // smallest currency unit (paise)
	Currency string
	Receipt  string
}

// ErrGatewayUnavailable is returned when the gateway cannot be reached
// within the configured timeout. Safe for the client to retry; a retry
// creates a fresh order.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// Provider mints orders with the external gateway. Callback verification
// lives in VerifySignature and needs no network round trip.
type Provider interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error)
}
