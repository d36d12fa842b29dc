package repository

import (
	"github.com/deep314313/unnativ-backend/internal/models"

	"gorm.io/gorm"
)

type AthleteRepository struct {
	db *gorm.DB
}

func NewAthleteRepository(db *gorm.DB) *AthleteRepository {
	return &AthleteRepository{db: db}
}

func (r *AthleteRepository) Create(a *models.Athlete) error {
	return r.db.Create(a).Error
}

func (r *AthleteRepository) GetByID(id uint) (*models.Athlete, error) {
	var a models.Athlete
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AthleteRepository) GetByEmail(email string) (*models.Athlete, error) {
	var a models.Athlete
	if err := r.db.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AthleteRepository) Update(a *models.Athlete) error {
	return r.db.Save(a).Error
}

// List returns athletes newest-first, optionally filtered by sport.
func (r *AthleteRepository) List(sport string, limit, offset int) ([]models.Athlete, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	q := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if sport != "" {
		q = q.Where("sport = ?", sport)
	}
	var out []models.Athlete
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
