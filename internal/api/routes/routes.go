package routes

import (
	"log"
	"time"

	"barshift-backend/internal/api/handlers"
	"barshift-backend/internal/api/middleware"
	"barshift-backend/internal/auth"
	"barshift-backend/internal/config"
	"barshift-backend/internal/repository"
	"barshift-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	venueRepo := repository.NewVenueRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo)
	venueService := service.NewVenueService(venueRepo, validator)
	staffService := service.NewStaffService(staffRepo, venueRepo, validator)
	shiftService := service.NewShiftService(shiftRepo, venueRepo, validator)
	availabilityService := service.NewAvailabilityService(availabilityRepo, staffRepo, notificationService, validator)
	assignmentService := service.NewAssignmentService(shiftRepo, staffRepo, venueRepo, assignmentRepo, availabilityRepo, overrideRepo, notificationService, validator)
	autoFillService := service.NewAutoFillService(shiftRepo, staffRepo, assignmentRepo, availabilityRepo, notificationService)
	overrideService := service.NewOverrideService(overrideRepo, shiftRepo, staffRepo, notificationService, validator)
	tradeService := service.NewTradeService(tradeRepo, shiftRepo, staffRepo, venueRepo, assignmentRepo, availabilityRepo, notificationService, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute, staffRepo)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	venueHandler := handlers.NewVenueHandler(venueService)
	staffHandler := handlers.NewStaffHandler(staffService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, autoFillService)
	overrideHandler := handlers.NewOverrideHandler(overrideService)
	tradeHandler := handlers.NewTradeHandler(tradeService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Venue routes
		venues := v1.Group("/venues")
		{
			venues.GET("", venueHandler.ListVenues)
			venues.GET("/:id", venueHandler.GetVenue)
			venues.POST("", authMiddleware.RequireManager(), venueHandler.CreateVenue)
			venues.PUT("/:id", authMiddleware.RequireManager(), venueHandler.UpdateVenue)
			venues.DELETE("/:id", authMiddleware.RequireManager(), venueHandler.DeleteVenue)
		}

		// Staff routes
		staff := v1.Group("/staff")
		{
			staff.GET("", staffHandler.ListStaff)
			staff.GET("/:id", staffHandler.GetStaff)
			staff.POST("", authMiddleware.RequireManager(), staffHandler.CreateStaff)
			staff.PUT("/:id", authMiddleware.RequireManager(), staffHandler.UpdateStaff)
			staff.DELETE("/:id", authMiddleware.RequireManager(), staffHandler.DeleteStaff)
			staff.PUT("/:id/venue-preferences", staffHandler.SetVenuePreferences)
			staff.PUT("/:id/venue-rank/:venueId", authMiddleware.RequireManager(), staffHandler.SetVenueRank)
		}

		// Shift routes
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.POST("", authMiddleware.RequireManager(), shiftHandler.CreateShift)
			shifts.PUT("/:id", authMiddleware.RequireManager(), shiftHandler.UpdateShift)
			shifts.DELETE("/:id", authMiddleware.RequireManager(), shiftHandler.DeleteShift)
			shifts.GET("/:id/assignments", assignmentHandler.ListByShift)
			shifts.POST("/:id/auto-fill", authMiddleware.RequireManager(), assignmentHandler.AutoFill)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.POST("", authMiddleware.RequireManager(), assignmentHandler.EvaluateAssignment)
			assignments.PUT("/:id/tip", assignmentHandler.RecordTip)
			assignments.DELETE("/:id", authMiddleware.RequireManager(), assignmentHandler.RemoveAssignment)
		}

		// Availability routes
		availability := v1.Group("/availability")
		{
			availability.GET("/:staffId/:month", availabilityHandler.GetMonth)
			availability.PUT("", availabilityHandler.SaveDays)
			availability.POST("/:staffId/:month/submit", availabilityHandler.Submit)
			availability.POST("/lock/:month", authMiddleware.RequireManager(), availabilityHandler.LockMonth)
			availability.POST("/unlock", authMiddleware.RequireManager(), availabilityHandler.Unlock)
		}

		// Override routes
		overrides := v1.Group("/overrides")
		{
			overrides.GET("", overrideHandler.ListByStaff)
			overrides.GET("/:id", overrideHandler.GetOverride)
			overrides.POST("", authMiddleware.RequireManager(), overrideHandler.CreateOverride)
			overrides.POST("/:id/respond", overrideHandler.RespondToOverride)
		}

		// Trade routes
		trades := v1.Group("/trades")
		{
			trades.GET("", tradeHandler.ListByStaff)
			trades.GET("/:id", tradeHandler.GetTrade)
			trades.POST("", tradeHandler.ProposeTrade)
			trades.POST("/:id/respond", tradeHandler.RespondTrade)
			trades.POST("/:id/approve", authMiddleware.RequireManager(), tradeHandler.ApproveTrade)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListMine)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
