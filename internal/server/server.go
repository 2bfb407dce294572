package server

import (
	"io"

	"github.com/webfolio/portfolio-backend/internal/api/handlers"
	"github.com/webfolio/portfolio-backend/internal/api/middleware"
	"github.com/webfolio/portfolio-backend/internal/config"
	"github.com/webfolio/portfolio-backend/internal/db"
	"github.com/webfolio/portfolio-backend/internal/repository"
	"github.com/webfolio/portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	database *db.Database
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, database *db.Database) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	// Always add recovery middleware for panic handling
	router.Use(gin.Recovery())

	return &Server{
		router:   router,
		cfg:      cfg,
		database: database,
	}
}

// Start wires repositories, services, handlers and routes, then serves.
func (s *Server) Start() error {
	// Create repositories and services
	contactRepo := repository.NewContactRepository(s.database)
	whatsapp := service.NewWhatsAppService(s.cfg.WhatsApp)

	// Create validation middleware
	validationMiddleware := middleware.NewValidationMiddleware()

	// Create handlers
	helloHandler := handlers.NewHelloHandler()
	contactHandler := handlers.NewContactHandler(contactRepo, whatsapp)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(s.database, s.cfg)

	// Add global middleware
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger())

	// Public routes
	s.router.GET("/", helloHandler.Root)
	s.router.GET("/test", diagnosticsHandler.Check)

	api := s.router.Group("/api")
	{
		api.GET("/hello", helloHandler.Hello)
		api.POST("/contact", validationMiddleware.ValidateContactRequest(), contactHandler.Submit)
	}

	return s.router.Run(":" + s.cfg.Port)
}
