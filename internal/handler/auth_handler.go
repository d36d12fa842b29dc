package handler

import (
	"errors"
	"net/http"

	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"
	"github.com/deep314313/unnativ-backend/internal/repository"
	"github.com/deep314313/unnativ-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc       *service.AuthService
	auditRepo *repository.AuditLogRepository
}

func NewAuthHandler(svc *service.AuthService, auditRepo *repository.AuditLogRepository) *AuthHandler {
	return &AuthHandler{svc: svc, auditRepo: auditRepo}
}

type RegisterAthleteRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=128"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Sport    string `json:"sport"`
	Location string `json:"location"`
}

type RegisterOrganizationRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=128"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

type RegisterDonorRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=128"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) RegisterAthlete(c *gin.Context) {
	var req RegisterAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, token, err := h.svc.RegisterAthlete(req.Name, req.Email, req.Password, req.Sport, req.Location)
	if err != nil {
		h.registerError(c, err)
		return
	}
	h.audit(c, domain.KindAthlete, a.ID, "athlete_registered")
	c.JSON(http.StatusCreated, gin.H{"athlete": a, "token": token})
}

func (h *AuthHandler) RegisterOrganization(c *gin.Context) {
	var req RegisterOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, token, err := h.svc.RegisterOrganization(req.Name, req.Email, req.Password, req.Description, req.Website)
	if err != nil {
		h.registerError(c, err)
		return
	}
	h.audit(c, domain.KindOrganization, o.ID, "organization_registered")
	c.JSON(http.StatusCreated, gin.H{"organization": o, "token": token})
}

func (h *AuthHandler) RegisterDonor(c *gin.Context) {
	var req RegisterDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, token, err := h.svc.RegisterDonor(req.Name, req.Email, req.Password)
	if err != nil {
		h.registerError(c, err)
		return
	}
	h.audit(c, domain.KindDonor, d.ID, "donor_registered")
	c.JSON(http.StatusCreated, gin.H{"donor": d, "token": token})
}

func (h *AuthHandler) LoginAthlete(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, token, err := h.svc.LoginAthlete(req.Email, req.Password)
	if err != nil {
		h.loginError(c, err)
		return
	}
	h.audit(c, domain.KindAthlete, a.ID, "athlete_login")
	c.JSON(http.StatusOK, gin.H{"athlete": a, "token": token})
}

func (h *AuthHandler) LoginOrganization(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, token, err := h.svc.LoginOrganization(req.Email, req.Password)
	if err != nil {
		h.loginError(c, err)
		return
	}
	h.audit(c, domain.KindOrganization, o.ID, "organization_login")
	c.JSON(http.StatusOK, gin.H{"organization": o, "token": token})
}

func (h *AuthHandler) LoginDonor(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, token, err := h.svc.LoginDonor(req.Email, req.Password)
	if err != nil {
		h.loginError(c, err)
		return
	}
	h.audit(c, domain.KindDonor, d.ID, "donor_login")
	c.JSON(http.StatusOK, gin.H{"donor": d, "token": token})
}

func (h *AuthHandler) registerError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrEmailExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
}

func (h *AuthHandler) loginError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidCreds) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
}

func (h *AuthHandler) audit(c *gin.Context, kind string, id uint, action string) {
	_ = h.auditRepo.Create(&models.AuditLog{
		PrincipalKind: kind,
		PrincipalID:   &id,
		Action:        action,
		Resource:      "auth",
		IP:            c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	})
}
