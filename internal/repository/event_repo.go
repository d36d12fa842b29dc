package repository

import (
	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(e *models.Event) error {
	return r.db.Create(e).Error
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var e models.Event
	if err := r.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) ListByOrganization(orgID uint) ([]models.Event, error) {
	var out []models.Event
	err := r.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *EventRepository) ListOpen() ([]models.Event, error) {
	var out []models.Event
	err := r.db.Where("status = ?", domain.OpportunityOpen).Order("created_at DESC").Find(&out).Error
	return out, err
}

// Close flips an open event to CLOSED. Returns false when the event does
// not exist, is not owned by orgID, or is already closed.
func (r *EventRepository) Close(id, orgID uint) (bool, error) {
	res := r.db.Model(&models.Event{}).
		Where("id = ? AND organization_id = ? AND status = ?", id, orgID, domain.OpportunityOpen).
		Update("status", domain.OpportunityClosed)
	return res.RowsAffected > 0, res.Error
}
