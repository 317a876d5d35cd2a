package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/lorekeep/lorekeep/internal/config"
	"github.com/lorekeep/lorekeep/internal/database"
	"github.com/lorekeep/lorekeep/internal/handlers"
	"github.com/lorekeep/lorekeep/internal/middleware"
	"github.com/lorekeep/lorekeep/internal/repository"
	"github.com/lorekeep/lorekeep/internal/store"
	"github.com/lorekeep/lorekeep/internal/types"

	_ "github.com/lorekeep/lorekeep/docs/api" // Swagger docs
)

// @title Lorekeep API
// @version 1.0.0
// @description Collaborative tabletop campaign data service

// @contact.name API Support
// @contact.url https://github.com/lorekeep/lorekeep

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Wire the record store and repositories
	reg := repository.NewRegistry(store.NewGormStore(db))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("lorekeep")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health probe
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}
	app.Get("/health", healthHandler.GetHealth)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Auth passthrough routes (public)
	authHandler := &handlers.AuthHandler{Cfg: cfg}
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)

	// Everything else requires a valid session
	api.Use(middleware.AuthUser(cfg, reg))

	accountHandler := &handlers.AccountHandler{Reg: reg}
	api.Get("/account", accountHandler.GetAccount)
	api.Post("/account", accountHandler.PostAccount)

	homeHandler := &handlers.HomeHandler{Reg: reg}
	api.Get("/home", homeHandler.GetHome)

	worldHandler := &handlers.WorldHandler{Reg: reg}
	api.Get("/worlds", worldHandler.ListWorlds)
	api.Get("/world/:id", worldHandler.GetWorld)
	api.Post("/world/:id", worldHandler.PostWorld)

	campaignHandler := &handlers.CampaignHandler{Reg: reg}
	api.Get("/campaigns", campaignHandler.ListCampaigns)
	api.Get("/campaign/:id", campaignHandler.GetCampaign)
	api.Post("/campaign/:id", campaignHandler.PostCampaign)

	blueprintHandler := &handlers.BlueprintHandler{Reg: reg}
	api.Get("/blueprints", blueprintHandler.ListBlueprints)
	api.Get("/blueprint/:id/delete", blueprintHandler.DeleteBlueprint)
	api.Get("/blueprint/:id", blueprintHandler.GetBlueprint)
	api.Post("/blueprint/:id", blueprintHandler.PostBlueprint)

	objectHandler := &handlers.ObjectHandler{Reg: reg}
	api.Get("/objects", objectHandler.ListObjects)
	api.Get("/object/:id", objectHandler.GetObject)
	api.Post("/object/:id", objectHandler.PostObject)

	contextHandler := &handlers.ContextHandler{Reg: reg}
	api.Get("/context/:id", contextHandler.GetContext)
	api.Post("/context/:id", contextHandler.PostContext)

	objectiveHandler := &handlers.ObjectiveHandler{Reg: reg}
	api.Get("/objective/:id", objectiveHandler.GetObjective)
	api.Post("/objective/:id", objectiveHandler.PostObjective)

	memberHandler := &handlers.MemberHandler{Reg: reg}
	api.Get("/members", memberHandler.ListMembers)
	api.Get("/member/:id", memberHandler.GetMember)
	api.Post("/member/:id", memberHandler.PostMember)

	narrativeHandler := &handlers.NarrativeHandler{Reg: reg}
	api.Get("/eras", narrativeHandler.ListEras)
	api.Get("/era/:id", narrativeHandler.GetEra)
	api.Post("/era/:id", narrativeHandler.PostEra)
	api.Get("/chapters", narrativeHandler.ListChapters)
	api.Get("/chapter/:id", narrativeHandler.GetChapter)
	api.Post("/chapter/:id", narrativeHandler.PostChapter)
	api.Get("/encounters", narrativeHandler.ListEncounters)
	api.Get("/encounter/:id", narrativeHandler.GetEncounter)
	api.Post("/encounter/:id", narrativeHandler.PostEncounter)

	actionHandler := &handlers.ActionHandler{Reg: reg}
	api.Get("/actions", actionHandler.ListActions)
	api.Get("/action/:id", actionHandler.GetAction)
	api.Post("/action/:id", actionHandler.PostAction)
	api.Get("/minigame/:id", actionHandler.GetMinigame)
	api.Post("/minigame/:id", actionHandler.PostMinigame)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var customErr *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
