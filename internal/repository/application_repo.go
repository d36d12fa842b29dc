package repository

import (
	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts the application. The composite unique index on
// (athlete_id, opportunity_type, opportunity_id) makes concurrent inserts
// for the same target lose with gorm.ErrDuplicatedKey; callers translate
// that to a conflict.
func (r *ApplicationRepository) Create(a *models.Application) error {
	return r.db.Create(a).Error
}

func (r *ApplicationRepository) GetByID(id uint) (*models.Application, error) {
	var a models.Application
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepository) ListByAthlete(athleteID uint) ([]models.Application, error) {
	var out []models.Application
	err := r.db.Where("athlete_id = ?", athleteID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// ListForOrganization returns applications targeting any opportunity owned
// by orgID, newest first.
func (r *ApplicationRepository) ListForOrganization(orgID uint) ([]models.Application, error) {
	eventIDs := r.db.Model(&models.Event{}).Select("id").Where("organization_id = ?", orgID)
	sponsorshipIDs := r.db.Model(&models.Sponsorship{}).Select("id").Where("organization_id = ?", orgID)
	travelIDs := r.db.Model(&models.TravelSupport{}).Select("id").Where("organization_id = ?", orgID)

	var out []models.Application
	err := r.db.Where(
		"(opportunity_type = ? AND opportunity_id IN (?)) OR (opportunity_type = ? AND opportunity_id IN (?)) OR (opportunity_type = ? AND opportunity_id IN (?))",
		domain.OpportunityEvent, eventIDs,
		domain.OpportunitySponsorship, sponsorshipIDs,
		domain.OpportunityTravelSupport, travelIDs,
	).Order("created_at DESC").Find(&out).Error
	return out, err
}

// SetStatusIfPending moves a pending application into a terminal status.
// Returns false when the application is already terminal (or gone), so two
// concurrent decisions cannot both win.
func (r *ApplicationRepository) SetStatusIfPending(id uint, status string) (bool, error) {
	res := r.db.Model(&models.Application{}).
		Where("id = ? AND status = ?", id, domain.ApplicationPending).
		Update("status", status)
	return res.RowsAffected > 0, res.Error
}
