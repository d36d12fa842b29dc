package repository

import (
	"github.com/deep314313/unnativ-backend/internal/models"

	"gorm.io/gorm"
)

type DonorRepository struct {
	db *gorm.DB
}

func NewDonorRepository(db *gorm.DB) *DonorRepository {
	return &DonorRepository{db: db}
}

func (r *DonorRepository) Create(d *models.Donor) error {
	return r.db.Create(d).Error
}

func (r *DonorRepository) GetByID(id uint) (*models.Donor, error) {
	var d models.Donor
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonorRepository) GetByEmail(email string) (*models.Donor, error) {
	var d models.Donor
	if err := r.db.Where("email = ?", email).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonorRepository) GetByGoogleID(googleID string) (*models.Donor, error) {
	var d models.Donor
	if err := r.db.Where("google_id = ?", googleID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonorRepository) Update(d *models.Donor) error {
	return r.db.Save(d).Error
}
