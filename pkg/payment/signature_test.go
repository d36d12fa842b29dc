package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature_Symmetric(t *testing.T) {
	sig := Sign("secret", "order_1", "pay_1")
	assert.True(t, VerifySignature("secret", "order_1", "pay_1", sig))
}

func TestVerifySignature_Mutations(t *testing.T) {
	const secret = "secret"
	orderID := "order_abc123"
	paymentID := "pay_xyz789"
	sig := Sign(secret, orderID, paymentID)

	mutate := func(s string, i int) string {
		b := []byte(s)
		if b[i] == 'x' {
			b[i] = 'y'
		} else {
			b[i] = 'x'
		}
		return string(b)
	}

	for i := 0; i < len(orderID); i++ {
		assert.False(t, VerifySignature(secret, mutate(orderID, i), paymentID, sig), "orderID mutated at %d", i)
	}
	for i := 0; i < len(paymentID); i++ {
		assert.False(t, VerifySignature(secret, orderID, mutate(paymentID, i), sig), "paymentID mutated at %d", i)
	}
	for i := 0; i < len(sig); i++ {
		assert.False(t, VerifySignature(secret, orderID, paymentID, mutate(sig, i)), "signature mutated at %d", i)
	}
}

func TestVerifySignature_MalformedInput(t *testing.T) {
	// Malformed input is a mismatch, never a panic.
	assert.False(t, VerifySignature("secret", "", "", ""))
	assert.False(t, VerifySignature("secret", "order_1", "pay_1", "not-hex-at-all"))
	assert.False(t, VerifySignature("secret", "order_1", "pay_1", strings.Repeat("0", 1000)))
	assert.False(t, VerifySignature("", "order_1", "pay_1", Sign("secret", "order_1", "pay_1")))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	sig := Sign("secret-a", "order_1", "pay_1")
	assert.False(t, VerifySignature("secret-b", "order_1", "pay_1", sig))
}

func TestStubProvider_CreateOrder(t *testing.T) {
	p := &StubProvider{}
	order, err := p.CreateOrder(context.Background(), 50000, "INR", "donation_test")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.ID, "order_stub_"))
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "donation_test", order.Receipt)
}
