package repository

import (
	"time"

	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"

	"gorm.io/gorm"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(d *models.Donation) error {
	return r.db.Create(d).Error
}

func (r *DonationRepository) GetByOrderID(orderID string) (*models.Donation, error) {
	var d models.Donation
	if err := r.db.Where("order_id = ?", orderID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonationRepository) ListByDonor(donorID uint) ([]models.Donation, error) {
	var out []models.Donation
	err := r.db.Where("donor_id = ?", donorID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// MarkCompleted settles a pending donation and credits the recipient in
// one transaction. The status flip is a conditional update keyed on
// PENDING, so a redelivered callback finds zero rows and the balance
// increment runs at most once per donation.
func (r *DonationRepository) MarkCompleted(orderID, paymentID string) (*models.Donation, bool, error) {
	var d models.Donation
	settled := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&models.Donation{}).
			Where("order_id = ? AND status = ?", orderID, domain.DonationPending).
			Updates(map[string]interface{}{
				"status":       domain.DonationCompleted,
				"payment_id":   paymentID,
				"completed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Where("order_id = ?", orderID).First(&d).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Athlete{}).
			Where("id = ?", d.AthleteID).
			UpdateColumn("total_received", gorm.Expr("total_received + ?", d.Amount)).Error; err != nil {
			return err
		}
		settled = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if !settled {
		return nil, false, nil
	}
	return &d, true, nil
}

// MarkFailed moves a pending donation to FAILED. Terminal states stay put.
func (r *DonationRepository) MarkFailed(orderID string) (bool, error) {
	res := r.db.Model(&models.Donation{}).
		Where("order_id = ? AND status = ?", orderID, domain.DonationPending).
		Update("status", domain.DonationFailed)
	return res.RowsAffected > 0, res.Error
}
