package handler

import (
	"net/http"

	"github.com/deep314313/unnativ-backend/internal/middleware"
	"github.com/deep314313/unnativ-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	orgRepo *repository.OrganizationRepository
}

func NewOrganizationHandler(orgRepo *repository.OrganizationRepository) *OrganizationHandler {
	return &OrganizationHandler{orgRepo: orgRepo}
}

func (h *OrganizationHandler) Me(c *gin.Context) {
	o, err := h.orgRepo.GetByID(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

type UpdateOrganizationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
}

func (h *OrganizationHandler) UpdateMe(c *gin.Context) {
	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, err := h.orgRepo.GetByID(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		return
	}
	if req.Name != nil {
		o.Name = *req.Name
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.Website != nil {
		o.Website = *req.Website
	}
	if req.Location != nil {
		o.Location = *req.Location
	}
	if err := h.orgRepo.Update(o); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, o)
}
