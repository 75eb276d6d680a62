package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/brightpath-foundation/brightpath-api/internal/auth"
	"github.com/brightpath-foundation/brightpath-api/internal/config"
	"github.com/brightpath-foundation/brightpath-api/internal/handlers"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
	"github.com/brightpath-foundation/brightpath-api/internal/middleware"
	"github.com/brightpath-foundation/brightpath-api/internal/services"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/objectstore"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	config      *config.Config
	repos       *postgres.Container
	store       *objectstore.Store
	authService *auth.Service
}

// New creates a new server instance
func New(cfg *config.Config, repos *postgres.Container, store *objectstore.Store, authService *auth.Service) *Server {
	return &Server{
		config:      cfg,
		repos:       repos,
		store:       store,
		authService: authService,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		// Timeouts seguros según estándares de Go
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	// Configurar Gin
	if s.config.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware básico
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.config.CORS.AllowOrigins, ",")
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	corsConfig.AllowCredentials = true
	if s.config.CORS.AllowOrigins == "*" {
		// Credentialed wildcard origins are rejected by browsers.
		corsConfig.AllowCredentials = false
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}
	router.Use(cors.New(corsConfig))

	// Inicializar servicios
	registrationService := services.NewRegistrationService(s.repos.Registrations(), s.repos.Events())
	moderationService := services.NewModerationService(
		s.repos.Testimonials(),
		s.repos.Registrations(),
		s.repos.Volunteers(),
		s.repos.Donations(),
	)

	// Inicializar handlers
	eventHandler := handlers.NewEventHandler(s.repos.Events())
	registrationHandler := handlers.NewRegistrationHandler(registrationService, moderationService, s.repos.Registrations())
	testimonialHandler := handlers.NewTestimonialHandler(moderationService, s.repos.Testimonials())
	volunteerHandler := handlers.NewVolunteerHandler(moderationService, s.repos.Volunteers())
	donationHandler := handlers.NewDonationHandler(moderationService, s.repos.Donations())
	postHandler := handlers.NewPostHandler(s.repos.Posts())
	galleryHandler := handlers.NewGalleryHandler(s.repos.Gallery(), s.store, s.config.Gallery.PublicURL)
	authHandler := handlers.NewAuthHandler(s.authService, s.repos.Admins())

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		if err := s.repos.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"message": "database unreachable",
				"status":  "unhealthy",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "BrightPath API is running",
			"status":  "healthy",
		})
	})

	s.setupPublicRoutes(router, eventHandler, registrationHandler, testimonialHandler, volunteerHandler, donationHandler, postHandler, galleryHandler, authHandler)
	s.setupAdminRoutes(router, eventHandler, registrationHandler, testimonialHandler, volunteerHandler, donationHandler, postHandler, galleryHandler, authHandler)

	return router
}

// setupPublicRoutes configures the routes served without authentication
func (s *Server) setupPublicRoutes(
	router *gin.Engine,
	eventHandler *handlers.EventHandler,
	registrationHandler *handlers.RegistrationHandler,
	testimonialHandler *handlers.TestimonialHandler,
	volunteerHandler *handlers.VolunteerHandler,
	donationHandler *handlers.DonationHandler,
	postHandler *handlers.PostHandler,
	galleryHandler *handlers.GalleryHandler,
	authHandler *handlers.AuthHandler,
) {
	api := router.Group("/api")
	{
		events := api.Group("/events")
		{
			events.GET("", eventHandler.GetAllEvents)
			events.GET("/upcoming", eventHandler.GetUpcomingEvents)
			events.GET("/:event_id", eventHandler.GetEvent)
			events.GET("/:event_id/availability", registrationHandler.Availability)
			events.POST("/:event_id/register", registrationHandler.Register)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", testimonialHandler.GetApproved)
			testimonials.POST("", testimonialHandler.Submit)
		}

		api.POST("/volunteers", volunteerHandler.Submit)
		api.POST("/donations", donationHandler.Submit)

		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.GetPublished)
			posts.GET("/:slug", postHandler.GetBySlug)
		}

		api.GET("/gallery", galleryHandler.List)
		api.POST("/auth/signin", authHandler.SignIn)
	}
}

// setupAdminRoutes configures the staff dashboard routes behind bearer auth
func (s *Server) setupAdminRoutes(
	router *gin.Engine,
	eventHandler *handlers.EventHandler,
	registrationHandler *handlers.RegistrationHandler,
	testimonialHandler *handlers.TestimonialHandler,
	volunteerHandler *handlers.VolunteerHandler,
	donationHandler *handlers.DonationHandler,
	postHandler *handlers.PostHandler,
	galleryHandler *handlers.GalleryHandler,
	authHandler *handlers.AuthHandler,
) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.RequireAdmin(s.authService))
	{
		admin.GET("/me", authHandler.Me)
		admin.POST("/me/password", authHandler.ChangePassword)

		events := admin.Group("/events")
		{
			events.POST("", eventHandler.CreateEvent)
			events.PUT("/:event_id", eventHandler.UpdateEvent)
			events.DELETE("/:event_id", eventHandler.DeleteEvent)
			events.GET("/:event_id/registrations", registrationHandler.ListByEvent)
		}

		registrations := admin.Group("/registrations")
		{
			registrations.GET("", registrationHandler.List)
			registrations.PATCH("/:id/status", registrationHandler.UpdateStatus)
			registrations.DELETE("/:id", registrationHandler.Delete)
		}

		testimonials := admin.Group("/testimonials")
		{
			testimonials.GET("", testimonialHandler.List)
			testimonials.PATCH("/:id/status", testimonialHandler.UpdateStatus)
			testimonials.DELETE("/:id", testimonialHandler.Delete)
		}

		volunteers := admin.Group("/volunteers")
		{
			volunteers.GET("", volunteerHandler.List)
			volunteers.PATCH("/:id/status", volunteerHandler.UpdateStatus)
			volunteers.DELETE("/:id", volunteerHandler.Delete)
		}

		donations := admin.Group("/donations")
		{
			donations.GET("", donationHandler.List)
			donations.PATCH("/:id/status", donationHandler.UpdateStatus)
			donations.DELETE("/:id", donationHandler.Delete)
		}

		posts := admin.Group("/posts")
		{
			posts.GET("", postHandler.List)
			posts.POST("", postHandler.Create)
			posts.PUT("/:id", postHandler.Update)
			posts.DELETE("/:id", postHandler.Delete)
		}

		galleryGroup := admin.Group("/gallery")
		{
			galleryGroup.POST("", galleryHandler.Upload)
			galleryGroup.DELETE("/:id", galleryHandler.Delete)
		}
	}
}
