package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/deep314313/unnativ-backend/internal/middleware"
	"github.com/deep314313/unnativ-backend/internal/repository"
	"github.com/deep314313/unnativ-backend/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

type AthleteHandler struct {
	athleteRepo *repository.AthleteRepository
	cloud       cloudinary.Client
}

func NewAthleteHandler(athleteRepo *repository.AthleteRepository, cloud cloudinary.Client) *AthleteHandler {
	return &AthleteHandler{athleteRepo: athleteRepo, cloud: cloud}
}

func (h *AthleteHandler) Me(c *gin.Context) {
	a, err := h.athleteRepo.GetByID(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "athlete not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

type UpdateAthleteRequest struct {
	Name         *string `json:"name"`
	Sport        *string `json:"sport"`
	Bio          *string `json:"bio"`
	Location     *string `json:"location"`
	Achievements *string `json:"achievements"`
}

func (h *AthleteHandler) UpdateMe(c *gin.Context) {
	var req UpdateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.athleteRepo.GetByID(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "athlete not found"})
		return
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Sport != nil {
		a.Sport = *req.Sport
	}
	if req.Bio != nil {
		a.Bio = *req.Bio
	}
	if req.Location != nil {
		a.Location = *req.Location
	}
	if req.Achievements != nil {
		a.Achievements = *req.Achievements
	}
	if err := h.athleteRepo.Update(a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// UploadPhoto replaces the athlete's profile photo via Cloudinary.
func (h *AthleteHandler) UploadPhoto(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media uploads not configured"})
		return
	}
	athleteID := middleware.GetPrincipalID(c)
	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file required"})
		return
	}
	defer file.Close()
	url, _, err := h.cloud.UploadImage(c.Request.Context(), file, "unnativ/athletes", fmt.Sprintf("athlete_%d", athleteID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	a, err := h.athleteRepo.GetByID(athleteID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "athlete not found"})
		return
	}
	a.PhotoURL = url
	if err := h.athleteRepo.Update(a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

// List is the public athlete browse used by donors to pick recipients.
func (h *AthleteHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	athletes, err := h.athleteRepo.List(c.Query("sport"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"athletes": athletes})
}

func (h *AthleteHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid athlete id"})
		return
	}
	a, err := h.athleteRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "athlete not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}
