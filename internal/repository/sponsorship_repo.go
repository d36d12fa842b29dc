package repository

import (
	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"

	"gorm.io/gorm"
)

type SponsorshipRepository struct {
	db *gorm.DB
}

func NewSponsorshipRepository(db *gorm.DB) *SponsorshipRepository {
	return &SponsorshipRepository{db: db}
}

func (r *SponsorshipRepository) Create(s *models.Sponsorship) error {
	return r.db.Create(s).Error
}

func (r *SponsorshipRepository) GetByID(id uint) (*models.Sponsorship, error) {
	var s models.Sponsorship
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SponsorshipRepository) ListByOrganization(orgID uint) ([]models.Sponsorship, error) {
	var out []models.Sponsorship
	err := r.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *SponsorshipRepository) ListOpen() ([]models.Sponsorship, error) {
	var out []models.Sponsorship
	err := r.db.Where("status = ?", domain.OpportunityOpen).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *SponsorshipRepository) Close(id, orgID uint) (bool, error) {
	res := r.db.Model(&models.Sponsorship{}).
		Where("id = ? AND organization_id = ? AND status = ?", id, orgID, domain.OpportunityOpen).
		Update("status", domain.OpportunityClosed)
	return res.RowsAffected > 0, res.Error
}
