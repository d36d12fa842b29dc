package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"
	"github.com/deep314313/unnativ-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRegistry struct {
	refs map[string]*repository.OpportunityRef
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{refs: make(map[string]*repository.OpportunityRef)}
}

func (f *fakeRegistry) add(opportunityType string, id, orgID uint) {
	f.refs[fmt.Sprintf("%s/%d", opportunityType, id)] = &repository.OpportunityRef{
		Type:           opportunityType,
		ID:             id,
		OrganizationID: orgID,
		Status:         domain.OpportunityOpen,
	}
}

func (f *fakeRegistry) Lookup(opportunityType string, id uint) (*repository.OpportunityRef, error) {
	ref, ok := f.refs[fmt.Sprintf("%s/%d", opportunityType, id)]
	if !ok {
		return nil, repository.ErrOpportunityNotFound
	}
	return ref, nil
}

// fakeAppStore mimics the storage contract, including the composite
// unique index on (athlete, opportunity type, opportunity id).
type fakeAppStore struct {
	apps   map[uint]*models.Application
	nextID uint
}

func newFakeAppStore() *fakeAppStore {
	return &fakeAppStore{apps: make(map[uint]*models.Application), nextID: 1}
}

func (f *fakeAppStore) Create(a *models.Application) error {
	for _, existing := range f.apps {
		if existing.AthleteID == a.AthleteID && existing.OpportunityType == a.OpportunityType && existing.OpportunityID == a.OpportunityID {
			return gorm.ErrDuplicatedKey
		}
	}
	a.ID = f.nextID
	f.nextID++
	a.CreatedAt = time.Now()
	cp := *a
	f.apps[a.ID] = &cp
	return nil
}

func (f *fakeAppStore) GetByID(id uint) (*models.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppStore) ListByAthlete(athleteID uint) ([]models.Application, error) {
	var out []models.Application
	for id := f.nextID; id > 0; id-- { // newest first
		if a, ok := f.apps[id]; ok && a.AthleteID == athleteID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppStore) ListForOrganization(orgID uint) ([]models.Application, error) {
	return nil, nil
}

func (f *fakeAppStore) SetStatusIfPending(id uint, status string) (bool, error) {
	a, ok := f.apps[id]
	if !ok || a.Status != domain.ApplicationPending {
		return false, nil
	}
	a.Status = status
	return true, nil
}

func newTestApplicationService() (*ApplicationService, *fakeRegistry, *fakeAppStore) {
	registry := newFakeRegistry()
	store := newFakeAppStore()
	return NewApplicationService(registry, store), registry, store
}

func TestApply_UnknownKind(t *testing.T) {
	svc, _, _ := newTestApplicationService()
	_, err := svc.Apply(1, "scholarship", 1, "hello", "")
	assert.ErrorIs(t, err, ErrUnknownOpportunityKind)
}

func TestApply_MissingMessage(t *testing.T) {
	svc, registry, _ := newTestApplicationService()
	registry.add(domain.OpportunityEvent, 1, 10)

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := svc.Apply(1, domain.OpportunityEvent, 1, msg, "")
		assert.ErrorIs(t, err, ErrMissingMessage)
	}
}

func TestApply_OpportunityNotFound(t *testing.T) {
	svc, _, _ := newTestApplicationService()
	_, err := svc.Apply(1, domain.OpportunityEvent, 42, "hello", "")
	assert.ErrorIs(t, err, ErrOpportunityNotFound)
}

func TestApply_CreatesPending(t *testing.T) {
	svc, registry, _ := newTestApplicationService()
	registry.add(domain.OpportunitySponsorship, 3, 10)

	a, err := svc.Apply(7, domain.OpportunitySponsorship, 3, "Please consider me", "need travel kit")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, a.Status)
	assert.Equal(t, uint(7), a.AthleteID)
	assert.Equal(t, domain.OpportunitySponsorship, a.OpportunityType)
	assert.Equal(t, uint(3), a.OpportunityID)
	assert.Equal(t, "Please consider me", a.Message)
	assert.Equal(t, "need travel kit", a.Requirements)
}

func TestApply_DuplicateRegardlessOfStatus(t *testing.T) {
	svc, registry, store := newTestApplicationService()
	registry.add(domain.OpportunityEvent, 1, 10)

	first, err := svc.Apply(1, domain.OpportunityEvent, 1, "first", "")
	require.NoError(t, err)

	// While pending.
	_, err = svc.Apply(1, domain.OpportunityEvent, 1, "again", "")
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	// After rejection: still a conflict, by design.
	ok, err := store.SetStatusIfPending(first.ID, domain.ApplicationRejected)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = svc.Apply(1, domain.OpportunityEvent, 1, "third time", "")
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	// Same athlete, different opportunity of the same kind: fine.
	registry.add(domain.OpportunityEvent, 2, 10)
	_, err = svc.Apply(1, domain.OpportunityEvent, 2, "other event", "")
	assert.NoError(t, err)
}

func TestSetStatus_NotFound(t *testing.T) {
	svc, _, _ := newTestApplicationService()
	_, err := svc.SetStatus(99, 10, domain.ApplicationAccepted)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestApplicationService()
	_, err := svc.SetStatus(1, 10, domain.ApplicationPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = svc.SetStatus(1, 10, "WITHDRAWN")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatus_NotOwner(t *testing.T) {
	svc, registry, _ := newTestApplicationService()
	registry.add(domain.OpportunityEvent, 1, 10)
	a, err := svc.Apply(1, domain.OpportunityEvent, 1, "hello", "")
	require.NoError(t, err)

	_, err = svc.SetStatus(a.ID, 11, domain.ApplicationAccepted)
	assert.ErrorIs(t, err, ErrNotOpportunityOwner)
}

func TestSetStatus_TerminalIsFinal(t *testing.T) {
	svc, registry, _ := newTestApplicationService()
	registry.add(domain.OpportunityTravelSupport, 1, 10)
	a, err := svc.Apply(1, domain.OpportunityTravelSupport, 1, "hello", "")
	require.NoError(t, err)

	updated, err := svc.SetStatus(a.ID, 10, domain.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationAccepted, updated.Status)

	_, err = svc.SetStatus(a.ID, 10, domain.ApplicationRejected)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	_, err = svc.SetStatus(a.ID, 10, domain.ApplicationAccepted)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestApplicationScenario_AcceptThenReapply(t *testing.T) {
	svc, registry, _ := newTestApplicationService()
	registry.add(domain.OpportunityEvent, 5, 20)

	a, err := svc.Apply(3, domain.OpportunityEvent, 5, "Please consider me", "")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, a.Status)

	updated, err := svc.SetStatus(a.ID, 20, domain.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationAccepted, updated.Status)

	_, err = svc.Apply(3, domain.OpportunityEvent, 5, "Please consider me", "")
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

func TestListForAthlete_NewestFirst(t *testing.T) {
	svc, registry, _ := newTestApplicationService()
	registry.add(domain.OpportunityEvent, 1, 10)
	registry.add(domain.OpportunityEvent, 2, 10)
	registry.add(domain.OpportunitySponsorship, 1, 10)

	_, err := svc.Apply(1, domain.OpportunityEvent, 1, "one", "")
	require.NoError(t, err)
	_, err = svc.Apply(1, domain.OpportunityEvent, 2, "two", "")
	require.NoError(t, err)
	_, err = svc.Apply(1, domain.OpportunitySponsorship, 1, "three", "")
	require.NoError(t, err)

	apps, err := svc.ListForAthlete(1)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, "three", apps[0].Message)
	assert.Equal(t, "two", apps[1].Message)
	assert.Equal(t, "one", apps[2].Message)
}
