package repository

import (
	"github.com/deep314313/unnativ-backend/internal/models"

	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(o *models.Organization) error {
	return r.db.Create(o).Error
}

func (r *OrganizationRepository) GetByID(id uint) (*models.Organization, error) {
	var o models.Organization
	if err := r.db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrganizationRepository) GetByEmail(email string) (*models.Organization, error) {
	var o models.Organization
	if err := r.db.Where("email = ?", email).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrganizationRepository) Update(o *models.Organization) error {
	return r.db.Save(o).Error
}
