package router

import (
	"log/slog"

	"github.com/rajeev8964/thepersonalbuddy/config"
	"github.com/rajeev8964/thepersonalbuddy/internal/handler"
	"github.com/rajeev8964/thepersonalbuddy/internal/middleware"
	"github.com/rajeev8964/thepersonalbuddy/internal/repository"
	"github.com/rajeev8964/thepersonalbuddy/internal/service"
	"github.com/rajeev8964/thepersonalbuddy/pkg/cloudinary"
	"github.com/rajeev8964/thepersonalbuddy/pkg/mailer"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers onto a gin engine. The
// notification service is returned so the caller can drain in-flight mail
// during shutdown.
func Setup(cfg *config.Config, db *gorm.DB, mail mailer.Mailer, cloud cloudinary.Client, log *slog.Logger) (*gin.Engine, *service.NotificationService) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(cfg.RateLimit.GlobalLimit, cfg.RateLimit.GlobalWindow)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Services
	notifSvc := service.NewNotificationService(mail, cfg.Mail.FromAddress, cfg.Mail.AdminEmail, log)
	authSvc := service.NewAuthService(cfg, userRepo, roleRepo)
	accessSvc := service.NewAccessService(&cfg.JWT, roleRepo)
	profileSvc := service.NewProfileService(profileRepo)
	bookingSvc := service.NewBookingService(bookingRepo, profileRepo, notifSvc)
	contactSvc := service.NewContactService(contactRepo, notifSvc)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	contactHandler := handler.NewContactHandler(contactSvc)
	adminHandler := handler.NewAdminHandler(accessSvc, profileSvc, bookingSvc, contactSvc)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.AdminRequired(accessSvc)
	// Booking and contact submissions trigger outbound email; throttle them
	// before any store mutation.
	submitMw := middleware.SubmissionLimit(middleware.NewInMemoryRateLimiter(cfg.RateLimit.SubmissionQuota, cfg.RateLimit.SubmissionWindow))

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
			authGroup.POST("/google/token", googleOAuthHandler.Token)
		}

		// Public surface
		api.GET("/friends", profileHandler.ListPublic)
		api.POST("/bookings", submitMw, bookingHandler.Submit)
		api.POST("/contact", submitMw, contactHandler.Submit)
		api.POST("/verify-admin", adminHandler.VerifyAdmin)

		// Companion self-service
		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", profileHandler.GetMine)
			me.POST("/profile", profileHandler.UpsertMine)
			me.PUT("/profile", profileHandler.UpsertMine)
			me.PATCH("/profile/status", profileHandler.SetAvailability)
			me.POST("/profile/picture", uploadHandler.UploadProfilePicture)
			me.GET("/bookings", bookingHandler.ListForBuddy)
			me.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
		}

		// Client view of their own bookings, partitioned by verified email
		api.GET("/my/bookings", authMw, bookingHandler.ListMine)

		// Admin surface; every request re-checks the role store
		admin := api.Group("/admin")
		admin.Use(authMw, adminMw)
		{
			admin.GET("/profiles", adminHandler.ListProfiles)
			admin.POST("/profiles", adminHandler.CreateProfile)
			admin.PUT("/profiles/:id", adminHandler.UpdateProfile)
			admin.PATCH("/profiles/:id/approval", adminHandler.SetApproval)
			admin.DELETE("/profiles/:id", adminHandler.DeleteProfile)
			admin.GET("/bookings", adminHandler.ListBookings)
			admin.PATCH("/bookings/:id/status", adminHandler.UpdateBookingStatus)
			admin.DELETE("/bookings/:id", adminHandler.DeleteBooking)
			admin.GET("/contacts", adminHandler.ListContacts)
		}
	}

	return r, notifSvc
}
