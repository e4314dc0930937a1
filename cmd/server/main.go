// cmd/server/main.go
// Entry point for the Golf Scorecard API server. The cmd/ folder holds the
// executable; internal/ holds the packages behind it — most importantly
// internal/scoring, the rules engine every results route computes through.
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	// cors lets the mobile app talk to the API across origins.
	"github.com/gofiber/fiber/v2/middleware/cors"
	// logger prints each request's method, path, status, and duration.
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/trentd187/golf-scorecard/internal/config"
	"github.com/trentd187/golf-scorecard/internal/database"
	"github.com/trentd187/golf-scorecard/internal/handlers"
	"github.com/trentd187/golf-scorecard/internal/middleware"
	"github.com/trentd187/golf-scorecard/internal/websocket"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Migrations run on startup so the schema is always current.
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// The hub fans live score updates out to everyone watching a round;
	// it runs its event loop in its own goroutine.
	hub := websocket.NewHub()
	go hub.Run()

	app := fiber.New(fiber.Config{
		AppName: "Golf Scorecard API",
	})

	// Global middleware, applied to every request.
	app.Use(logger.New())
	// Open CORS for development; lock down to the app's domain in production.
	app.Use(cors.New())

	// Public liveness probe.
	app.Get("/health", handlers.HealthCheck)

	// Everything under /api/v1 requires a valid Clerk JWT; Auth also syncs
	// the user into our database and stores their ID/role in the context.
	api := app.Group("/api/v1", middleware.Auth(cfg, db))

	// Courses: anyone can browse; only admins and managers create them.
	api.Get("/courses", handlers.GetCourses(db))
	api.Get("/courses/:id", handlers.GetCourse(db))
	api.Post("/courses", middleware.RequireRole("admin", "manager"), handlers.CreateCourse(db))

	// Players.
	api.Get("/players", handlers.GetPlayers(db))
	api.Post("/players", handlers.CreatePlayer(db))
	api.Patch("/players/:id/handicap", handlers.UpdatePlayerHandicap(db))

	// Rounds: creation, the live scorecard, score entry, presses,
	// format-specific results, and completion.
	api.Post("/rounds", handlers.CreateRound(db))
	api.Get("/rounds/:id", handlers.GetRound(db))
	api.Put("/rounds/:id/scores", handlers.UpsertScore(db, hub))
	api.Post("/rounds/:id/presses", handlers.AddPress(db))
	api.Get("/rounds/:id/results", handlers.GetResults(db))
	api.Post("/rounds/:id/complete", handlers.CompleteRound(db))

	// Stableford point table: shared settings read by the engine on every
	// stableford lookup.
	api.Get("/settings/stableford", handlers.GetStablefordSettings)
	api.Put("/settings/stableford", handlers.UpdateStablefordSettings)
	api.Delete("/settings/stableford", handlers.ResetStablefordSettings)

	log.Printf("Starting server on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
