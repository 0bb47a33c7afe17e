package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driving"
	"github.com/verbale-labs/verbale-core/internal/runtime"
)

// ExtractorFactory builds an extraction client for the given endpoint.
// Injected so the transport layer stays independent of the concrete
// client implementation.
type ExtractorFactory func(apiKey, baseURL string) (driven.Extractor, error)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string
	outputDir  string

	generationService driving.GenerationService
	services          *runtime.Services
	newExtractor      ExtractorFactory
}

// Config holds server configuration
type Config struct {
	Host      string
	Port      int
	Version   string
	JWTSecret string
	OutputDir string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:      "0.0.0.0",
		Port:      8080,
		Version:   "dev",
		OutputDir: "./out",
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	generationService driving.GenerationService,
	services *runtime.Services,
	newExtractor ExtractorFactory,
) *Server {
	s := &Server{
		router:            http.NewServeMux(),
		version:           cfg.Version,
		outputDir:         cfg.OutputDir,
		generationService: generationService,
		services:          services,
		newExtractor:      newExtractor,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation runs extraction + assembly inline
		IdleTimeout:  60 * time.Second,
	}

	s.setupRoutes(cfg.JWTSecret)
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(jwtSecret string) {
	authMiddleware := NewAuthMiddleware(jwtSecret)

	// Health endpoints (no auth)
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /version", s.handleVersion)

	// Template catalog (authenticated)
	s.router.Handle("GET /api/v1/templates",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleListTemplates)))

	// Pipeline endpoints (authenticated)
	s.router.Handle("POST /api/v1/normalize",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleNormalize)))
	s.router.Handle("POST /api/v1/preview",
		authMiddleware.Authenticate(http.HandlerFunc(s.handlePreview)))
	s.router.Handle("POST /api/v1/generate",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleGenerate)))

	// Extraction service configuration (authenticated)
	s.router.Handle("PUT /api/v1/settings/extractor",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleUpdateExtractor)))
	s.router.Handle("GET /api/v1/settings/extractor",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleGetExtractorStatus)))
}

// Handler returns the root handler with the middleware chain applied,
// exposed for tests.
func (s *Server) Handler() http.Handler {
	logging := NewLoggingMiddleware()
	recovery := NewRecoveryMiddleware()
	requestID := NewRequestIDMiddleware()
	return recovery.Handler(requestID.Handler(logging.Handler(s.router)))
}

// Start starts the HTTP server with graceful shutdown
func (s *Server) Start() error {
	s.httpServer.Handler = s.Handler()

	// Channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-stop
	log.Println("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
