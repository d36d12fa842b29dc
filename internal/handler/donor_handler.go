package handler

import (
	"net/http"

	"github.com/deep314313/unnativ-backend/internal/middleware"
	"github.com/deep314313/unnativ-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type DonorHandler struct {
	donorRepo *repository.DonorRepository
}

func NewDonorHandler(donorRepo *repository.DonorRepository) *DonorHandler {
	return &DonorHandler{donorRepo: donorRepo}
}

func (h *DonorHandler) Me(c *gin.Context) {
	d, err := h.donorRepo.GetByID(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "donor not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

type UpdateDonorRequest struct {
	Name *string `json:"name"`
}

func (h *DonorHandler) UpdateMe(c *gin.Context) {
	var req UpdateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.donorRepo.GetByID(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "donor not found"})
		return
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	if err := h.donorRepo.Update(d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, d)
}
