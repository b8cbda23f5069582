package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/elpresidentey/diasporan-backend/internal/config"
	"github.com/elpresidentey/diasporan-backend/internal/database"
	"github.com/elpresidentey/diasporan-backend/internal/handlers"
	"github.com/elpresidentey/diasporan-backend/internal/messaging"
	"github.com/elpresidentey/diasporan-backend/internal/middleware"
	"github.com/elpresidentey/diasporan-backend/internal/services"
	"github.com/elpresidentey/diasporan-backend/pkg/jwt"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Diasporan booking backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection. Without DATABASE_URL the server runs
	// in mock-data mode: list endpoints serve static listings and booking
	// routes are not registered.
	var db database.DB
	if cfg.Database.URL != "" {
		logger.Info("Connecting to database...")
		db, err = database.NewConnection(cfg.Database)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		logger.Info("Database connection established")
	} else {
		logger.Warn("DATABASE_URL not set - serving static mock listings, bookings disabled")
	}

	// Initialize booking event publisher (optional)
	var publisher *messaging.Publisher
	if cfg.AMQP.URL != "" {
		publisher, err = messaging.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			logger.WithError(err).Warn("Failed to connect to message broker - booking events disabled")
		} else {
			defer publisher.Close()
			logger.WithField("exchange", cfg.AMQP.Exchange).Info("Booking event publisher connected")
		}
	}

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Set up router
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.EnableRequestLog {
		router.Use(middleware.RequestLogger(logger))
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: cfg.CORS.AllowedHeaders,
		MaxAge:       12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	if db != nil {
		// Initialize repositories
		accommodationRepo := database.NewAccommodationRepository(db)
		eventRepo := database.NewEventRepository(db)
		transportRepo := database.NewTransportRepository(db)
		flightRepo := database.NewFlightRepository(db)
		bookingRepo := database.NewBookingRepository(db)
		savedItemRepo := database.NewSavedItemRepository(db)

		// Initialize services
		adapters := []services.ResourceAdapter{
			services.NewAccommodationAdapter(accommodationRepo, bookingRepo),
			services.NewEventAdapter(eventRepo),
			services.NewTransportAdapter(transportRepo),
		}

		var eventPublisher services.EventPublisher
		if publisher != nil {
			eventPublisher = publisher
		}
		bookingService := services.NewBookingService(
			bookingRepo, adapters, eventPublisher, cfg.Booking.DefaultCurrency, logger,
		)
		savedItemService := services.NewSavedItemService(savedItemRepo, logger)

		// Initialize handlers
		listingHandler := handlers.NewListingHandler(
			accommodationRepo, eventRepo, transportRepo, flightRepo, logger,
		)
		bookingHandler := handlers.NewBookingHandler(bookingService, logger)
		savedItemHandler := handlers.NewSavedItemHandler(savedItemService, logger)

		registerListingRoutes(api, listingHandler)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(jwtService))
		{
			authed.POST("/bookings", bookingHandler.CreateBooking)
			authed.GET("/bookings", bookingHandler.GetBookings)
			authed.POST("/bookings/:id/cancel", bookingHandler.CancelBooking)

			authed.POST("/saved-items", savedItemHandler.SaveItem)
			authed.GET("/saved-items", savedItemHandler.GetSavedItems)
			authed.DELETE("/saved-items/:id", savedItemHandler.RemoveSavedItem)
		}
	} else {
		registerListingRoutes(api, handlers.NewMockListingHandler(logger))
	}

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
	logger.Info("Server stopped")
}

func registerListingRoutes(api *gin.RouterGroup, h *handlers.ListingHandler) {
	api.GET("/accommodations", h.ListAccommodations)
	api.GET("/events", h.ListEvents)
	api.GET("/transport", h.ListTransport)
	api.GET("/flights", h.ListFlights)
}
