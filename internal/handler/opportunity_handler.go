package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/middleware"
	"github.com/deep314313/unnativ-backend/internal/models"
	"github.com/deep314313/unnativ-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// OpportunityHandler covers the organization-owned listing surfaces for
// the three opportunity kinds plus the public browse endpoint.
type OpportunityHandler struct {
	eventRepo       *repository.EventRepository
	sponsorshipRepo *repository.SponsorshipRepository
	travelRepo      *repository.TravelSupportRepository
}

func NewOpportunityHandler(eventRepo *repository.EventRepository, sponsorshipRepo *repository.SponsorshipRepository, travelRepo *repository.TravelSupportRepository) *OpportunityHandler {
	return &OpportunityHandler{eventRepo: eventRepo, sponsorshipRepo: sponsorshipRepo, travelRepo: travelRepo}
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Sport       string `json:"sport"`
	Location    string `json:"location"`
	Date        string `json:"date"` // ISO date, optional
}

func (h *OpportunityHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e := &models.Event{
		OrganizationID: middleware.GetPrincipalID(c),
		Title:          req.Title,
		Description:    req.Description,
		Sport:          req.Sport,
		Location:       req.Location,
		Status:         domain.OpportunityOpen,
	}
	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		e.Date = &d
	}
	if err := h.eventRepo.Create(e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *OpportunityHandler) ListMyEvents(c *gin.Context) {
	events, err := h.eventRepo.ListByOrganization(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *OpportunityHandler) CloseEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}
	ok, err := h.eventRepo.Close(uint(id), middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "close failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "open event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": domain.OpportunityClosed})
}

type CreateSponsorshipRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Sport       string `json:"sport"`
	Amount      int64  `json:"amount" binding:"min=0"`
	Deadline    string `json:"deadline"` // ISO date, optional
}

func (h *OpportunityHandler) CreateSponsorship(c *gin.Context) {
	var req CreateSponsorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := &models.Sponsorship{
		OrganizationID: middleware.GetPrincipalID(c),
		Title:          req.Title,
		Description:    req.Description,
		Sport:          req.Sport,
		Amount:         req.Amount,
		Status:         domain.OpportunityOpen,
	}
	if req.Deadline != "" {
		d, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline, expected YYYY-MM-DD"})
			return
		}
		s.Deadline = &d
	}
	if err := h.sponsorshipRepo.Create(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *OpportunityHandler) ListMySponsorships(c *gin.Context) {
	sponsorships, err := h.sponsorshipRepo.ListByOrganization(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sponsorships": sponsorships})
}

func (h *OpportunityHandler) CloseSponsorship(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sponsorship id"})
		return
	}
	ok, err := h.sponsorshipRepo.Close(uint(id), middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "close failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "open sponsorship not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": domain.OpportunityClosed})
}

type CreateTravelSupportRequest struct {
	Title          string `json:"title" binding:"required,max=255"`
	Description    string `json:"description"`
	Destination    string `json:"destination"`
	CoverageAmount int64  `json:"coverage_amount" binding:"min=0"`
	Deadline       string `json:"deadline"` // ISO date, optional
}

func (h *OpportunityHandler) CreateTravelSupport(c *gin.Context) {
	var req CreateTravelSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &models.TravelSupport{
		OrganizationID: middleware.GetPrincipalID(c),
		Title:          req.Title,
		Description:    req.Description,
		Destination:    req.Destination,
		CoverageAmount: req.CoverageAmount,
		Status:         domain.OpportunityOpen,
	}
	if req.Deadline != "" {
		d, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline, expected YYYY-MM-DD"})
			return
		}
		t.Deadline = &d
	}
	if err := h.travelRepo.Create(t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *OpportunityHandler) ListMyTravelSupports(c *gin.Context) {
	supports, err := h.travelRepo.ListByOrganization(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"travel_supports": supports})
}

func (h *OpportunityHandler) CloseTravelSupport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid travel support id"})
		return
	}
	ok, err := h.travelRepo.Close(uint(id), middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "close failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "open travel support not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": domain.OpportunityClosed})
}

// ListOpen is the public browse endpoint: open opportunities of one kind.
func (h *OpportunityHandler) ListOpen(c *gin.Context) {
	kind := c.Param("kind")
	switch kind {
	case domain.OpportunityEvent:
		events, err := h.eventRepo.ListOpen()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"events": events})
	case domain.OpportunitySponsorship:
		sponsorships, err := h.sponsorshipRepo.ListOpen()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sponsorships": sponsorships})
	case domain.OpportunityTravelSupport:
		supports, err := h.travelRepo.ListOpen()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"travel_supports": supports})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown opportunity kind"})
	}
}
