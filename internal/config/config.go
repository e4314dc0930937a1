// Package config handles loading runtime configuration for the Golf Scorecard API.
// Settings like the database URL and listen port are read from environment
// variables rather than hardcoded, so the same binary runs unchanged in dev,
// staging, and production — only the environment differs.
package config

import (
	"os"

	// godotenv reads a .env file and loads its key=value pairs into the
	// process environment. Convenient in development; in production the real
	// environment variables are already set by the deployment platform.
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port           string // TCP port the HTTP server listens on (e.g. "8080")
	DatabaseURL    string // PostgreSQL connection string
	ClerkSecretKey string // Secret key for verifying Clerk authentication tokens
	Env            string // "development", "staging", or "production"
}

// Load reads configuration from environment variables and returns a populated
// Config. A missing .env file is fine — godotenv's error is ignored because
// production sets real environment variables instead.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("ENV")
	if env == "" {
		// Default away from production so local runs stay harmless.
		env = "development"
	}

	return &Config{
		Port:           port,
		DatabaseURL:    os.Getenv("DATABASE_URL"), // Required — the server fails to start without it
		ClerkSecretKey: os.Getenv("CLERK_SECRET_KEY"),
		Env:            env,
	}
}
