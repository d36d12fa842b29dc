package service

import (
	"errors"
	"strings"

	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"
	"github.com/deep314313/unnativ-backend/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrUnknownOpportunityKind = errors.New("unknown opportunity kind")
	ErrMissingMessage         = errors.New("message is required")
	ErrOpportunityNotFound    = errors.New("opportunity not found")
	ErrDuplicateApplication   = errors.New("application already exists for this opportunity")
	ErrApplicationNotFound    = errors.New("application not found")
	ErrNotOpportunityOwner    = errors.New("caller does not own the opportunity")
	ErrAlreadyDecided         = errors.New("application already decided")
	ErrInvalidStatus          = errors.New("invalid application status")
)

// OpportunityRegistry resolves an application target across the three
// opportunity kinds.
type OpportunityRegistry interface {
	Lookup(opportunityType string, id uint) (*repository.OpportunityRef, error)
}

// ApplicationStore is the persistence contract for applications.
type ApplicationStore interface {
	Create(a *models.Application) error
	GetByID(id uint) (*models.Application, error)
	ListByAthlete(athleteID uint) ([]models.Application, error)
	ListForOrganization(orgID uint) ([]models.Application, error)
	SetStatusIfPending(id uint, status string) (bool, error)
}

// ApplicationService implements the application workflow: athletes apply
// to opportunities, owning organizations decide.
type ApplicationService struct {
	registry OpportunityRegistry
	store    ApplicationStore
}

func NewApplicationService(registry OpportunityRegistry, store ApplicationStore) *ApplicationService {
	return &ApplicationService{registry: registry, store: store}
}

// Apply records an athlete's intent to engage one opportunity. The
// duplicate check ignores the existing application's status: once an
// athlete has applied to a target, a second apply is a conflict even after
// rejection. That matches current product policy; relaxing it would mean
// narrowing the unique index, not changing this method.
func (s *ApplicationService) Apply(athleteID uint, opportunityType string, opportunityID uint, message, requirements string) (*models.Application, error) {
	if !domain.KnownOpportunityType(opportunityType) {
		return nil, ErrUnknownOpportunityKind
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrMissingMessage
	}
	if _, err := s.registry.Lookup(opportunityType, opportunityID); err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, err
	}
	a := &models.Application{
		AthleteID:       athleteID,
		OpportunityType: opportunityType,
		OpportunityID:   opportunityID,
		Message:         message,
		Requirements:    requirements,
		Status:          domain.ApplicationPending,
	}
	if err := s.store.Create(a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}
	return a, nil
}

// SetStatus lets the organization owning the targeted opportunity accept
// or reject a pending application. Terminal statuses do not revert.
func (s *ApplicationService) SetStatus(applicationID, callerOrgID uint, newStatus string) (*models.Application, error) {
	if newStatus != domain.ApplicationAccepted && newStatus != domain.ApplicationRejected {
		return nil, ErrInvalidStatus
	}
	a, err := s.store.GetByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	ref, err := s.registry.Lookup(a.OpportunityType, a.OpportunityID)
	if err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if ref.OrganizationID != callerOrgID {
		return nil, ErrNotOpportunityOwner
	}
	if a.Status != domain.ApplicationPending {
		return nil, ErrAlreadyDecided
	}
	ok, err := s.store.SetStatusIfPending(applicationID, newStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a race with a concurrent decision.
		return nil, ErrAlreadyDecided
	}
	a.Status = newStatus
	return a, nil
}

func (s *ApplicationService) ListForAthlete(athleteID uint) ([]models.Application, error) {
	return s.store.ListByAthlete(athleteID)
}

func (s *ApplicationService) ListForOrganization(orgID uint) ([]models.Application, error) {
	return s.store.ListForOrganization(orgID)
}
