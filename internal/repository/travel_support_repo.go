package repository

import (
	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"

	"gorm.io/gorm"
)

type TravelSupportRepository struct {
	db *gorm.DB
}

func NewTravelSupportRepository(db *gorm.DB) *TravelSupportRepository {
	return &TravelSupportRepository{db: db}
}

func (r *TravelSupportRepository) Create(t *models.TravelSupport) error {
	return r.db.Create(t).Error
}

func (r *TravelSupportRepository) GetByID(id uint) (*models.TravelSupport, error) {
	var t models.TravelSupport
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TravelSupportRepository) ListByOrganization(orgID uint) ([]models.TravelSupport, error) {
	var out []models.TravelSupport
	err := r.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *TravelSupportRepository) ListOpen() ([]models.TravelSupport, error) {
	var out []models.TravelSupport
	err := r.db.Where("status = ?", domain.OpportunityOpen).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *TravelSupportRepository) Close(id, orgID uint) (bool, error) {
	res := r.db.Model(&models.TravelSupport{}).
		Where("id = ? AND organization_id = ? AND status = ?", id, orgID, domain.OpportunityOpen).
		Update("status", domain.OpportunityClosed)
	return res.RowsAffected > 0, res.Error
}
