package router

import (
	"time"

	"github.com/deep314313/unnativ-backend/config"
	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/handler"
	"github.com/deep314313/unnativ-backend/internal/middleware"
	"github.com/deep314313/unnativ-backend/internal/repository"
	"github.com/deep314313/unnativ-backend/internal/service"
	"github.com/deep314313/unnativ-backend/pkg/cloudinary"
	"github.com/deep314313/unnativ-backend/pkg/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	athleteRepo := repository.NewAthleteRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	donorRepo := repository.NewDonorRepository(db)
	eventRepo := repository.NewEventRepository(db)
	sponsorshipRepo := repository.NewSponsorshipRepository(db)
	travelRepo := repository.NewTravelSupportRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Payment provider: real gateway when credentials are set, local stub otherwise.
	var provider payment.Provider
	if cfg.Razorpay.KeyID != "" {
		provider = payment.NewRazorpayProvider(cfg.Razorpay.BaseURL, cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.Timeout)
	} else {
		logger.Warn("razorpay credentials not set, using stub payment provider")
		provider = &payment.StubProvider{}
	}

	// Services
	authSvc := service.NewAuthService(cfg, athleteRepo, orgRepo, donorRepo)
	applicationSvc := service.NewApplicationService(opportunityRepo, applicationRepo)
	donationSvc := service.NewDonationService(donationRepo, athleteRepo, provider, &cfg.Razorpay, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, auditRepo)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	athleteHandler := handler.NewAthleteHandler(athleteRepo, cloud)
	orgHandler := handler.NewOrganizationHandler(orgRepo)
	donorHandler := handler.NewDonorHandler(donorRepo)
	opportunityHandler := handler.NewOpportunityHandler(eventRepo, sponsorshipRepo, travelRepo)
	applicationHandler := handler.NewApplicationHandler(applicationSvc)
	donationHandler := handler.NewDonationHandler(donationSvc, auditRepo, cfg)

	authMw := middleware.AuthRequired(&cfg.JWT)
	athleteOnly := middleware.RequirePrincipal(domain.KindAthlete)
	orgOnly := middleware.RequirePrincipal(domain.KindOrganization)
	donorOnly := middleware.RequirePrincipal(domain.KindDonor)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/athletes/register", authHandler.RegisterAthlete)
			authGroup.POST("/athletes/login", authHandler.LoginAthlete)
			authGroup.POST("/organizations/register", authHandler.RegisterOrganization)
			authGroup.POST("/organizations/login", authHandler.LoginOrganization)
			authGroup.POST("/donors/register", authHandler.RegisterDonor)
			authGroup.POST("/donors/login", authHandler.LoginDonor)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
		}

		// Public browse
		api.GET("/athletes", athleteHandler.List)
		api.GET("/athletes/:id", athleteHandler.GetByID)
		api.GET("/opportunities/:kind", opportunityHandler.ListOpen)

		athletes := api.Group("/athletes/me", authMw, athleteOnly)
		{
			athletes.GET("", athleteHandler.Me)
			athletes.PUT("", athleteHandler.UpdateMe)
			athletes.POST("/photo", athleteHandler.UploadPhoto)
		}
		athleteApps := api.Group("/athletes/applications", authMw, athleteOnly)
		{
			athleteApps.GET("", applicationHandler.ListMine)
			athleteApps.POST("/:kind/:id", applicationHandler.Apply)
		}

		orgs := api.Group("/organizations", authMw, orgOnly)
		{
			orgs.GET("/me", orgHandler.Me)
			orgs.PUT("/me", orgHandler.UpdateMe)
			orgs.POST("/events", opportunityHandler.CreateEvent)
			orgs.GET("/events", opportunityHandler.ListMyEvents)
			orgs.POST("/events/:id/close", opportunityHandler.CloseEvent)
			orgs.POST("/sponsorships", opportunityHandler.CreateSponsorship)
			orgs.GET("/sponsorships", opportunityHandler.ListMySponsorships)
			orgs.POST("/sponsorships/:id/close", opportunityHandler.CloseSponsorship)
			orgs.POST("/travel-supports", opportunityHandler.CreateTravelSupport)
			orgs.GET("/travel-supports", opportunityHandler.ListMyTravelSupports)
			orgs.POST("/travel-supports/:id/close", opportunityHandler.CloseTravelSupport)
			orgs.GET("/applications", applicationHandler.ListForOrganization)
			orgs.PUT("/applications/:id/status", applicationHandler.SetStatus)
		}

		donors := api.Group("/donors", authMw, donorOnly)
		{
			donors.GET("/me", donorHandler.Me)
			donors.PUT("/me", donorHandler.UpdateMe)
			donors.GET("/donations", donationHandler.ListMine)
		}

		api.POST("/donations/order", authMw, donorOnly, donationHandler.CreateOrder)
		// Settlement is authenticated by the gateway signature, not by a
		// principal kind; any valid session may deliver it.
		api.POST("/donations/verify", authMw, donationHandler.VerifyCallback)
	}

	return r
}
