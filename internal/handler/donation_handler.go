package handler

import (
	"errors"
	"net/http"

	"github.com/deep314313/unnativ-backend/config"
	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/middleware"
	"github.com/deep314313/unnativ-backend/internal/models"
	"github.com/deep314313/unnativ-backend/internal/repository"
	"github.com/deep314313/unnativ-backend/internal/service"
	"github.com/deep314313/unnativ-backend/pkg/payment"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	svc       *service.DonationService
	auditRepo *repository.AuditLogRepository
	cfg       *config.Config
}

func NewDonationHandler(svc *service.DonationService, auditRepo *repository.AuditLogRepository, cfg *config.Config) *DonationHandler {
	return &DonationHandler{svc: svc, auditRepo: auditRepo, cfg: cfg}
}

type CreateOrderRequest struct {
	Amount      int64 `json:"amount" binding:"required"`
	RecipientID uint  `json:"recipient_id" binding:"required"`
}

// CreateOrder handles POST /donations/order: opens a gateway order and a
// PENDING donation for the authenticated donor.
func (h *DonationHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.svc.Open(c.Request.Context(), middleware.GetPrincipalID(c), req.RecipientID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRecipientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, payment.ErrGatewayUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway unavailable, try again"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order creation failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"order_id": d.OrderID,
		"amount":   d.Amount,
		"currency": d.Currency,
		"key_id":   h.cfg.Razorpay.KeyID,
	})
}

type VerifyCallbackRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// VerifyCallback handles POST /donations/verify. The HMAC signature is the
// trust boundary here, not the bearer token; redelivered callbacks are
// acknowledged without reapplying any effect.
func (h *DonationHandler) VerifyCallback(c *gin.Context) {
	var req VerifyCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	outcome, d, err := h.svc.ApplyCallback(req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}
	switch outcome {
	case service.OutcomeCompleted:
		h.auditSettlement(c, d, "donation_completed")
		c.JSON(http.StatusOK, gin.H{"status": "completed", "order_id": d.OrderID})
	case service.OutcomeAlreadySettled:
		c.JSON(http.StatusOK, gin.H{"status": "already_settled", "order_id": d.OrderID})
	default:
		h.auditSettlement(c, d, "donation_failed")
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "error": "signature verification failed"})
	}
}

// ListMine handles GET /donors/donations.
func (h *DonationHandler) ListMine(c *gin.Context) {
	donations, err := h.svc.ListForDonor(middleware.GetPrincipalID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": donations})
}

func (h *DonationHandler) auditSettlement(c *gin.Context, d *models.Donation, action string) {
	if d == nil {
		return
	}
	donorID := d.DonorID
	_ = h.auditRepo.Create(&models.AuditLog{
		PrincipalKind: domain.KindDonor,
		PrincipalID:   &donorID,
		Action:        action,
		Resource:      "donation",
		ResourceID:    d.OrderID,
		IP:            c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	})
}
