package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/deep314313/unnativ-backend/config"
	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"
	"github.com/deep314313/unnativ-backend/pkg/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testKeySecret = "test-key-secret"

type fakeAthleteFinder struct {
	athletes map[uint]*models.Athlete
}

func (f *fakeAthleteFinder) GetByID(id uint) (*models.Athlete, error) {
	a, ok := f.athletes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

// fakeDonationStore mirrors the conditional-update semantics of the real
// repository: status transitions only apply while the row is PENDING, and
// MarkCompleted credits the recipient balance in the same step.
type fakeDonationStore struct {
	byOrder  map[string]*models.Donation
	balances map[uint]int64
	nextID   uint
}

func newFakeDonationStore() *fakeDonationStore {
	return &fakeDonationStore{
		byOrder:  make(map[string]*models.Donation),
		balances: make(map[uint]int64),
		nextID:   1,
	}
}

func (f *fakeDonationStore) Create(d *models.Donation) error {
	d.ID = f.nextID
	f.nextID++
	cp := *d
	f.byOrder[d.OrderID] = &cp
	return nil
}

func (f *fakeDonationStore) GetByOrderID(orderID string) (*models.Donation, error) {
	d, ok := f.byOrder[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDonationStore) ListByDonor(donorID uint) ([]models.Donation, error) {
	var out []models.Donation
	for _, d := range f.byOrder {
		if d.DonorID == donorID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDonationStore) MarkCompleted(orderID, paymentID string) (*models.Donation, bool, error) {
	d, ok := f.byOrder[orderID]
	if !ok || d.Status != domain.DonationPending {
		return nil, false, nil
	}
	now := time.Now()
	d.Status = domain.DonationCompleted
	d.PaymentID = paymentID
	d.CompletedAt = &now
	f.balances[d.AthleteID] += d.Amount
	cp := *d
	return &cp, true, nil
}

func (f *fakeDonationStore) MarkFailed(orderID string) (bool, error) {
	d, ok := f.byOrder[orderID]
	if !ok || d.Status != domain.DonationPending {
		return false, nil
	}
	d.Status = domain.DonationFailed
	return true, nil
}

type fakeProvider struct {
	orders int
}

func (p *fakeProvider) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payment.Order, error) {
	p.orders++
	return &payment.Order{
		ID:       fmt.Sprintf("order_fake_%d", p.orders),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

type downProvider struct{}

func (downProvider) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payment.Order, error) {
	return nil, payment.ErrGatewayUnavailable
}

func testRazorpayConfig() *config.RazorpayConfig {
	return &config.RazorpayConfig{
		KeySecret: testKeySecret,
		Currency:  "INR",
		Timeout:   time.Second,
	}
}

func newTestDonationService(provider payment.Provider) (*DonationService, *fakeDonationStore) {
	store := newFakeDonationStore()
	athletes := &fakeAthleteFinder{athletes: map[uint]*models.Athlete{
		5: {Name: "Test Athlete"},
	}}
	svc := NewDonationService(store, athletes, provider, testRazorpayConfig(), zap.NewNop())
	return svc, store
}

func TestOpen_InvalidAmount(t *testing.T) {
	svc, _ := newTestDonationService(&fakeProvider{})
	for _, amount := range []int64{0, -1, -500} {
		_, err := svc.Open(context.Background(), 1, 5, amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestOpen_RecipientNotFound(t *testing.T) {
	svc, _ := newTestDonationService(&fakeProvider{})
	_, err := svc.Open(context.Background(), 1, 999, 500)
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestOpen_GatewayDownLeavesNoRecord(t *testing.T) {
	svc, store := newTestDonationService(downProvider{})
	_, err := svc.Open(context.Background(), 1, 5, 500)
	assert.ErrorIs(t, err, payment.ErrGatewayUnavailable)
	assert.Empty(t, store.byOrder)
}

func TestOpen_CreatesPendingWithPaiseOrder(t *testing.T) {
	provider := &fakeProvider{}
	svc, store := newTestDonationService(provider)

	d, err := svc.Open(context.Background(), 1, 5, 500)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationPending, d.Status)
	assert.Equal(t, int64(500), d.Amount)
	assert.Equal(t, "INR", d.Currency)
	assert.NotEmpty(t, d.OrderID)
	assert.Empty(t, d.PaymentID)

	stored, err := store.GetByOrderID(d.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationPending, stored.Status)
}

func TestApplyCallback_OrderNotFound(t *testing.T) {
	svc, _ := newTestDonationService(&fakeProvider{})
	_, _, err := svc.ApplyCallback("order_missing", "pay_1", "sig")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestApplyCallback_ValidSignatureSettlesOnce(t *testing.T) {
	svc, store := newTestDonationService(&fakeProvider{})
	d, err := svc.Open(context.Background(), 1, 5, 750)
	require.NoError(t, err)

	sig := payment.Sign(testKeySecret, d.OrderID, "pay_1")
	outcome, settled, err := svc.ApplyCallback(d.OrderID, "pay_1", sig)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, domain.DonationCompleted, settled.Status)
	assert.Equal(t, "pay_1", settled.PaymentID)
	require.NotNil(t, settled.CompletedAt)
	assert.Equal(t, int64(750), store.balances[5])

	// Redelivery: acknowledged, no second credit.
	outcome, _, err = svc.ApplyCallback(d.OrderID, "pay_1", sig)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadySettled, outcome)
	assert.Equal(t, int64(750), store.balances[5])
}

func TestApplyCallback_BadSignatureFails(t *testing.T) {
	svc, store := newTestDonationService(&fakeProvider{})
	d, err := svc.Open(context.Background(), 1, 5, 300)
	require.NoError(t, err)

	outcome, failed, err := svc.ApplyCallback(d.OrderID, "pay_1", "bad-signature")
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, domain.DonationFailed, failed.Status)
	assert.Zero(t, store.balances[5])
}

func TestApplyCallback_ValidAfterFailedDoesNotRevive(t *testing.T) {
	svc, store := newTestDonationService(&fakeProvider{})
	d, err := svc.Open(context.Background(), 1, 5, 300)
	require.NoError(t, err)

	_, _, err = svc.ApplyCallback(d.OrderID, "pay_1", "bad-signature")
	require.NoError(t, err)

	// A later well-signed callback for a FAILED donation is a no-op.
	sig := payment.Sign(testKeySecret, d.OrderID, "pay_1")
	outcome, _, err := svc.ApplyCallback(d.OrderID, "pay_1", sig)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadySettled, outcome)
	assert.Zero(t, store.balances[5])

	stored, err := store.GetByOrderID(d.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationFailed, stored.Status)
}

func TestApplyCallback_SignatureBoundToOrder(t *testing.T) {
	svc, _ := newTestDonationService(&fakeProvider{})
	first, err := svc.Open(context.Background(), 1, 5, 100)
	require.NoError(t, err)
	second, err := svc.Open(context.Background(), 1, 5, 200)
	require.NoError(t, err)

	// A signature minted for one order must not settle another.
	sig := payment.Sign(testKeySecret, first.OrderID, "pay_1")
	outcome, _, err := svc.ApplyCallback(second.OrderID, "pay_1", sig)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
}

func TestListForDonor(t *testing.T) {
	svc, _ := newTestDonationService(&fakeProvider{})
	_, err := svc.Open(context.Background(), 1, 5, 100)
	require.NoError(t, err)
	_, err = svc.Open(context.Background(), 2, 5, 200)
	require.NoError(t, err)

	mine, err := svc.ListForDonor(1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(100), mine[0].Amount)
}
