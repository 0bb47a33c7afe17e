package main

// @title           Verbale Core API
// @version         1.0
// @description     Assembly-minutes generation API. Verbale Core normalizes extracted company data and renders Italian corporate meeting minutes as PDF documents.

// @contact.name   Verbale OSS
// @contact.url    https://github.com/verbale-labs/verbale-core/issues

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Format: "Bearer {token}"

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/verbale-labs/verbale-core/internal/adapters/driven/ai"
	"github.com/verbale-labs/verbale-core/internal/adapters/driven/pdf"
	"github.com/verbale-labs/verbale-core/internal/adapters/driving/http"
	"github.com/verbale-labs/verbale-core/internal/assembler"
	"github.com/verbale-labs/verbale-core/internal/combiner"
	"github.com/verbale-labs/verbale-core/internal/core/ports/driven"
	"github.com/verbale-labs/verbale-core/internal/core/services"
	"github.com/verbale-labs/verbale-core/internal/runtime"
	"github.com/verbale-labs/verbale-core/internal/templates"
)

var version = "dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := runtime.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	log.Printf("verbale-core %s starting on %s:%d", version, cfg.Host, cfg.Port)

	// ===== Driven adapters (infrastructure) =====
	writerFactory := driven.WriterFactory(func() driven.DocumentWriter {
		return pdf.NewWriter()
	})
	extractorFactory := func(apiKey, baseURL string) (driven.Extractor, error) {
		return ai.NewExtractionClient(apiKey, baseURL)
	}

	// Runtime-swappable collaborators
	runtimeServices := runtime.NewServices()
	defer runtimeServices.Close()

	if cfg.ExtractionURL != "" {
		client, err := ai.NewExtractionClient(cfg.ExtractionAPIKey, cfg.ExtractionURL)
		if err != nil {
			log.Fatalf("Failed to create extraction client: %v", err)
		}
		if err := runtimeServices.ValidateAndSetExtractor(context.Background(), client); err != nil {
			log.Printf("Warning: extraction service health check failed: %v (extraction disabled until reconfigured)", err)
		} else {
			log.Println("Extraction service connected")
		}
	} else {
		log.Println("No extraction service configured; pipeline runs on caller-provided records")
	}

	// ===== Core services =====
	registry := templates.DefaultRegistry()
	log.Printf("Template registry loaded with %d variants", len(registry.List()))

	generationService := services.NewGenerationService(
		registry,
		combiner.New(logger),
		assembler.New(writerFactory, logger),
		logger,
	)

	// ===== HTTP server =====
	serverCfg := http.Config{
		Host:      cfg.Host,
		Port:      cfg.Port,
		Version:   version,
		JWTSecret: cfg.JWTSecret,
		OutputDir: cfg.OutputDir,
	}

	server := http.NewServer(serverCfg, generationService, runtimeServices, extractorFactory)

	log.Printf("API server starting on :%d", cfg.Port)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
