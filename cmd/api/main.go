package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/bgnclinic/blog-automation/pkg/validator"

	"github.com/bgnclinic/blog-automation/internal/adapter/handler"
	"github.com/bgnclinic/blog-automation/internal/adapter/repository"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/cache"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/database"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/external/openai"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/external/sheets"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/external/wordpress"
	"github.com/bgnclinic/blog-automation/internal/infrastructure/storage"
	"github.com/bgnclinic/blog-automation/internal/usecase/analyzer"
	"github.com/bgnclinic/blog-automation/internal/usecase/compliance"
	"github.com/bgnclinic/blog-automation/internal/usecase/content"
	"github.com/bgnclinic/blog-automation/internal/usecase/pipeline"
	"github.com/bgnclinic/blog-automation/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize cache (Redis with in-memory fallback)
	var store cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		log.Println("📦 Redis disabled, using in-memory cache")
		memStore := cache.NewMemoryStore()
		defer memStore.Close()
		store = memStore
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	factRepo := repository.NewInterviewFactRepository(db)
	contentRepo := repository.NewGeneratedContentRepository(db)

	// Initialize core components
	log.Println("🔍 Initializing analyzer and assembler...")
	extractor := analyzer.NewExtractor(cfg.Analyzer, logger)
	checker := compliance.NewChecker(logger)
	assembler := content.NewAssembler(checker, logger)

	// Optional collaborators, nil when unconfigured
	var aiClient *openai.Client
	if cfg.OpenAI.APIKey != "" {
		log.Println("🤖 Initializing OpenAI client...")
		aiClient = openai.NewClient(cfg.OpenAI, logger)
	} else {
		log.Println("⚠️  OPENAI_API_KEY not set, AI drafting and image generation disabled")
	}

	var wpClient *wordpress.Client
	if cfg.WordPress.URL != "" {
		log.Println("📝 Initializing WordPress client...")
		wpClient = wordpress.NewClient(cfg.WordPress, logger)
	} else {
		log.Println("⚠️  WORDPRESS_URL not set, publishing disabled")
	}

	var sheetsClient *sheets.Client
	if cfg.Sheets.SpreadsheetID != "" {
		log.Println("📊 Initializing Google Sheets client...")
		sheetsClient, err = sheets.NewClient(context.Background(), cfg.Sheets, logger)
		if err != nil {
			log.Fatalf("Failed to initialize Google Sheets client: %v", err)
		}
	} else {
		log.Println("⚠️  GOOGLE_SHEETS_ID not set, tracking disabled")
	}

	var mirror *storage.MinIOClient
	if cfg.Storage.Enabled {
		log.Println("🖼️  Initializing MinIO image mirror...")
		mirror, err = storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO client: %v", err)
		}
	} else {
		log.Println("⚠️  Storage disabled, generated image URLs will not be mirrored")
	}

	// Initialize pipeline service
	log.Println("🚀 Initializing pipeline service...")
	pipelineService := pipeline.NewService(
		extractor,
		assembler,
		factRepo,
		contentRepo,
		store,
		cfg.Redis.CacheTTL,
		aiClient,
		wpClient,
		sheetsClient,
		mirror,
		logger,
	)

	// Initialize interview handler
	interviewHandler := handler.NewInterview(pipelineService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, interviewHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
