package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/middleware"
	"github.com/deep314313/unnativ-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	svc *service.ApplicationService
}

func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type ApplyRequest struct {
	Message      string `json:"message" binding:"required"`
	Requirements string `json:"requirements"`
}

// Apply handles POST /athletes/applications/:kind/:id.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	opportunityID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid opportunity id"})
		return
	}
	a, err := h.svc.Apply(middleware.GetPrincipalID(c), c.Param("kind"), uint(opportunityID), req.Message, req.Requirements)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownOpportunityKind), errors.Is(err, service.ErrMissingMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrOpportunityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrDuplicateApplication):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "apply failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListMine handles GET /athletes/applications.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.svc.ListForAthlete(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListForOrganization handles GET /organizations/applications.
func (h *ApplicationHandler) ListForOrganization(c *gin.Context) {
	apps, err := h.svc.ListForOrganization(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus handles PUT /organizations/applications/:id/status. Accepts
// the client-facing labels "accepted"/"approved" and "rejected".
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applicationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}
	var status string
	switch strings.ToLower(req.Status) {
	case "accepted", "approved":
		status = domain.ApplicationAccepted
	case "rejected":
		status = domain.ApplicationRejected
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be accepted or rejected"})
		return
	}
	a, err := h.svc.SetStatus(uint(applicationID), middleware.GetPrincipalID(c), status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotOpportunityOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "status update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, a)
}
