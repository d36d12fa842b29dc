package repository

import (
	"errors"
	"fmt"

	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"

	"gorm.io/gorm"
)

// ErrOpportunityNotFound is returned by Lookup when no record matches.
var ErrOpportunityNotFound = errors.New("opportunity not found")

// OpportunityRef is the uniform projection over the three opportunity
// tables. Kind-specific fields stay out of the application workflow.
type OpportunityRef struct {
	Type           string
	ID             uint
	OrganizationID uint
	Status         string
}

// OpportunityRepository is the read-only registry used to validate
// application targets across the three opportunity kinds.
type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

// Lookup resolves (kind, id) to the uniform projection. The caller is
// expected to have validated the kind already; an unknown kind is still
// answered with ErrOpportunityNotFound rather than a fault.
func (r *OpportunityRepository) Lookup(opportunityType string, id uint) (*OpportunityRef, error) {
	ref := &OpportunityRef{Type: opportunityType, ID: id}
	var err error
	switch opportunityType {
	case domain.OpportunityEvent:
		var e models.Event
		if err = r.db.Select("id", "organization_id", "status").First(&e, id).Error; err == nil {
			ref.OrganizationID, ref.Status = e.OrganizationID, e.Status
		}
	case domain.OpportunitySponsorship:
		var s models.Sponsorship
		if err = r.db.Select("id", "organization_id", "status").First(&s, id).Error; err == nil {
			ref.OrganizationID, ref.Status = s.OrganizationID, s.Status
		}
	case domain.OpportunityTravelSupport:
		var t models.TravelSupport
		if err = r.db.Select("id", "organization_id", "status").First(&t, id).Error; err == nil {
			ref.OrganizationID, ref.Status = t.OrganizationID, t.Status
		}
	default:
		return nil, ErrOpportunityNotFound
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("opportunity lookup: %w", err)
	}
	return ref, nil
}
