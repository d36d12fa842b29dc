package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deep314313/unnativ-backend/config"
	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"
	"github.com/deep314313/unnativ-backend/pkg/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrOrderNotFound     = errors.New("order not found")
)

// SettlementOutcome is the result of applying a payment callback.
type SettlementOutcome int

const (
	// OutcomeCompleted: signature verified, donation settled, recipient credited.
	OutcomeCompleted SettlementOutcome = iota
	// OutcomeFailed: signature mismatch, donation moved to FAILED.
	OutcomeFailed
	// OutcomeAlreadySettled: donation was already terminal; nothing applied.
	OutcomeAlreadySettled
)

// DonationStore is the persistence contract for donations. MarkCompleted
// and MarkFailed are conditional on PENDING status so callback redelivery
// applies effects at most once.
type DonationStore interface {
	Create(d *models.Donation) error
	GetByOrderID(orderID string) (*models.Donation, error)
	ListByDonor(donorID uint) ([]models.Donation, error)
	MarkCompleted(orderID, paymentID string) (*models.Donation, bool, error)
	MarkFailed(orderID string) (bool, error)
}

// RecipientFinder checks that a donation target exists.
type RecipientFinder interface {
	GetByID(id uint) (*models.Athlete, error)
}

// DonationService opens gateway orders for donor pledges and settles them
// from signed completion callbacks.
type DonationService struct {
	store    DonationStore
	athletes RecipientFinder
	provider payment.Provider
	cfg      *config.RazorpayConfig
	logger   *zap.Logger
}

func NewDonationService(store DonationStore, athletes RecipientFinder, provider payment.Provider, cfg *config.RazorpayConfig, logger *zap.Logger) *DonationService {
	return &DonationService{store: store, athletes: athletes, provider: provider, cfg: cfg, logger: logger}
}

// Open creates a gateway order and then a PENDING donation tied to it, in
// that order: if the gateway call fails or times out, no donation record
// exists and the client can simply retry.
func (s *DonationService) Open(ctx context.Context, donorID, recipientID uint, amount int64) (*models.Donation, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.athletes.GetByID(recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}

	receipt := fmt.Sprintf("donation_%s", uuid.New().String())
	orderCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	order, err := s.provider.CreateOrder(orderCtx, amount*100, s.cfg.Currency, receipt)
	if err != nil {
		if orderCtx.Err() != nil {
			err = fmt.Errorf("%w: %v", payment.ErrGatewayUnavailable, orderCtx.Err())
		}
		s.logger.Warn("order creation failed",
			zap.Uint("donor_id", donorID),
			zap.Int64("amount", amount),
			zap.Error(err))
		return nil, err
	}

	d := &models.Donation{
		DonorID:   donorID,
		AthleteID: recipientID,
		Amount:    amount,
		Currency:  order.Currency,
		OrderID:   order.ID,
		Status:    domain.DonationPending,
	}
	if err := s.store.Create(d); err != nil {
		return nil, err
	}
	s.logger.Info("donation opened",
		zap.Uint("donor_id", donorID),
		zap.Uint("athlete_id", recipientID),
		zap.Int64("amount", amount),
		zap.String("order_id", order.ID))
	return d, nil
}

// ApplyCallback verifies and applies a gateway completion callback. The
// effect is exactly-once per donation: redelivery of any callback for a
// settled donation reports OutcomeAlreadySettled and changes nothing.
func (s *DonationService) ApplyCallback(orderID, paymentID, signature string) (SettlementOutcome, *models.Donation, error) {
	d, err := s.store.GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, ErrOrderNotFound
		}
		return 0, nil, err
	}
	if d.Status != domain.DonationPending {
		return OutcomeAlreadySettled, d, nil
	}

	if !payment.VerifySignature(s.cfg.KeySecret, orderID, paymentID, signature) {
		ok, err := s.store.MarkFailed(orderID)
		if err != nil {
			return 0, nil, err
		}
		if !ok {
			return OutcomeAlreadySettled, d, nil
		}
		s.logger.Warn("donation settlement rejected",
			zap.String("order_id", orderID),
			zap.Uint("donation_id", d.ID))
		d.Status = domain.DonationFailed
		return OutcomeFailed, d, nil
	}

	settled, ok, err := s.store.MarkCompleted(orderID, paymentID)
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		return OutcomeAlreadySettled, d, nil
	}
	s.logger.Info("donation settled",
		zap.String("order_id", orderID),
		zap.Uint("donation_id", settled.ID),
		zap.Uint("athlete_id", settled.AthleteID),
		zap.Int64("amount", settled.Amount))
	return OutcomeCompleted, settled, nil
}

func (s *DonationService) ListForDonor(donorID uint) ([]models.Donation, error) {
	return s.store.ListByDonor(donorID)
}
