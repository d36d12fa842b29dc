package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// StubProvider mints local order ids without touching a gateway; used in
// development when no Razorpay credentials are configured.
type StubProvider struct{}

func (s *StubProvider) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	return &Order{
		ID:       fmt.Sprintf("order_stub_%s", uuid.New().String()),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}
