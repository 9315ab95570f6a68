package server

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/partyoria/eventhub/config"
	"github.com/partyoria/eventhub/internal/handlers"
	"github.com/partyoria/eventhub/internal/middleware"
	"github.com/partyoria/eventhub/internal/storage"
)

func Start(log *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	var store storage.Store
	if cfg.DataDir != "" {
		store = storage.NewFileStore(cfg.DataDir, log)
	} else {
		store = storage.NewMemoryStore()
	}

	r := gin.Default()

	setupRoutes(r, db, store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("event hub listening", slog.String("port", port))
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, store storage.Store) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.StoreMiddleware(store))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)
		public.GET("/health", handlers.HealthCheck)
		public.GET("/locations", handlers.GetLocations)
		public.GET("/organizers", handlers.ListOrganizers)

		eventPublic := public.Group("/events")
		{
			eventPublic.GET("", handlers.ListEvents)
			eventPublic.GET("/:id", handlers.GetEvent)
		}

		vendorPublic := public.Group("/vendors")
		{
			vendorPublic.GET("", handlers.ListVendors)
			vendorPublic.GET("/:id", handlers.GetVendor)
		}

		venuePublic := public.Group("/venues")
		{
			venuePublic.GET("", handlers.ListVenues)
			venuePublic.GET("/:id", handlers.GetVenue)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.GET("/profile", handlers.GetProfile)
		protected.GET("/stats", handlers.EventStats)

		eventProtected := protected.Group("/events")
		{
			eventProtected.POST("", handlers.CreateEvent)
			eventProtected.PUT("/:id", handlers.UpdateEvent)
			eventProtected.DELETE("/:id", handlers.DeleteEvent)
			eventProtected.POST("/:id/inspiration", handlers.UploadInspirationImage)
			eventProtected.GET("/:id/bookings", handlers.ListEventBookings)
			eventProtected.POST("/:id/guests", handlers.AddGuest)
			eventProtected.GET("/:id/guests", handlers.ListGuests)
			eventProtected.PUT("/:id/guests/:guestId/rsvp", handlers.UpdateGuestRSVP)
		}

		protected.POST("/vendors", handlers.CreateVendor)
		protected.POST("/venues", handlers.CreateVenue)

		bookingProtected := protected.Group("/bookings")
		{
			bookingProtected.POST("", handlers.CreateBooking)
			bookingProtected.PUT("/:id/status", handlers.UpdateBookingStatus)
			bookingProtected.GET("/:id/qr", handlers.GenerateBookingQR)
			bookingProtected.POST("/validate", handlers.ValidateBookingQR)
		}

		wizardProtected := protected.Group("/wizard")
		{
			wizardProtected.POST("", handlers.StartWizard)
			wizardProtected.GET("/:id", handlers.GetWizard)
			wizardProtected.PUT("/:id/fields", handlers.UpdateWizardFields)
			wizardProtected.POST("/:id/draft", handlers.SaveWizardDraft)
			wizardProtected.POST("/:id/submit", handlers.SubmitWizard)
			wizardProtected.POST("/:id/vendor-choice", handlers.ResolveVendorChoice)
			wizardProtected.POST("/:id/vendors", handlers.CompleteWizardVendors)
			wizardProtected.POST("/:id/organizer", handlers.CompleteWizardOrganizer)
			wizardProtected.POST("/:id/reset", handlers.ResetWizard)
			wizardProtected.DELETE("/:id", handlers.EndWizard)
		}
	}
}
