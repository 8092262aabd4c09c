package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Data files
	UsersFile    string
	TrainsFile   string
	BookingsFile string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	return &Config{
		UsersFile:    getEnv("USERS_FILE", "cli_users.json"),
		TrainsFile:   getEnv("TRAINS_FILE", "cli_trains.json"),
		BookingsFile: getEnv("BOOKINGS_FILE", "cli_bookings.json"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
