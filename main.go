package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/patrickmn/go-cache"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio/internal/config"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
	"portfolio/pkg/mailer"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" && !cfg.AuthDisabled {
		log.Fatal("JWT_SECRET must be set unless AUTH_DISABLED=true")
	}

	careerStart, err := time.Parse("2006-01-02", cfg.CareerStartDate)
	if err != nil {
		log.Fatalf("Invalid CAREER_START_DATE %q: %v", cfg.CareerStartDate, err)
	}

	db, err := openDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Education{},
		&models.Experience{},
		&models.Project{},
		&models.Certificate{},
		&models.Tool{},
		&models.User{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The mailer is optional; without SMTP settings the contact form
	// reports a transport failure instead of pretending to send.
	var contactMailer services.Mailer
	if cfg.SMTPHost != "" {
		mailClient, err := mailer.NewClient(mailer.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.ContactFrom,
			To:       cfg.ContactTo,
		})
		if err != nil {
			log.Fatalf("Failed to initialize mailer: %v", err)
		}
		contactMailer = mailClient
	} else {
		log.Println("SMTP_HOST not set, contact form sends will fail")
	}

	// Homepage payload cache, flushed on every admin write.
	pageCache := cache.New(5*time.Minute, 10*time.Minute)

	// --- Initialize Repositories ---
	educationRepo := repositories.NewGORMEducationRepository(db)
	experienceRepo := repositories.NewGORMExperienceRepository(db)
	projectRepo := repositories.NewGORMProjectRepository(db)
	certificateRepo := repositories.NewGORMCertificateRepository(db)
	toolRepo := repositories.NewGORMToolRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Initialize Services ---
	educationService := services.NewEducationService(educationRepo, pageCache)
	experienceService := services.NewExperienceService(experienceRepo, pageCache)
	projectService := services.NewProjectService(projectRepo, pageCache, cfg.DocsDir, cfg.DocsBaseURL)
	certificateService := services.NewCertificateService(certificateRepo, pageCache)
	toolService := services.NewToolService(toolRepo, pageCache)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	contactService := services.NewContactService(contactMailer)
	homeService := services.NewHomeService(educationRepo, experienceRepo, projectRepo, certificateRepo, toolRepo, pageCache, careerStart)

	// --- Initialize Handlers ---
	educationHandler := handlers.NewEducationHandler(educationService)
	experienceHandler := handlers.NewExperienceHandler(experienceService)
	projectHandler := handlers.NewProjectHandler(projectService)
	certificateHandler := handlers.NewCertificateHandler(certificateService)
	toolHandler := handlers.NewToolHandler(toolService)
	authHandler := handlers.NewAuthHandler(authService)
	contactHandler := handlers.NewContactHandler(contactService)
	homeHandler := handlers.NewHomeHandler(homeService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(logger.New())

	// --- Public routes ---
	homeHandler.RegisterRoutes(app)
	projectHandler.RegisterPublicRoutes(app)
	contactHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app)
	if strings.HasPrefix(cfg.DocsBaseURL, "/") {
		app.Static(cfg.DocsBaseURL, cfg.DocsDir)
	}

	// --- Admin routes (token-guarded unless explicitly disabled) ---
	// The guard is mounted on the admin path prefixes only; an empty
	// group prefix would turn it into a global Use and capture /health
	// and every unmatched path as well.
	app.Use(handlers.AdminPathPrefixes, middleware.AuthRequired(authService, cfg.AuthDisabled))
	educationHandler.RegisterRoutes(app)
	experienceHandler.RegisterRoutes(app)
	projectHandler.RegisterRoutes(app)
	certificateHandler.RegisterRoutes(app)
	toolHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase connects to PostgreSQL when the URL looks like one and
// falls back to SQLite otherwise, which covers local development.
func openDatabase(databaseURL string) (*gorm.DB, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
}
