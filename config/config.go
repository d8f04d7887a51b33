package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup. It is built
// once in main and passed into the constructors that need it; business logic
// never reads the environment directly.
type Config struct {
	MongoURI  string
	Database  string
	JWTSecret string
	Port      string

	// Browser origins allowed to send credentialed requests.
	Origins []string
}

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Error loading .env file")
	}
}

// Load builds the Config from the environment and validates required keys.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:  os.Getenv("DB_URI"),
		Database:  GetEnv("DB_NAME", "stylofy"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Port:      GetEnv("PORT", "5000"),
		Origins: []string{
			GetEnv("ORIGIN_1", "http://localhost:3000"),
			GetEnv("ORIGIN_2", "https://stylofy-ecom.vercel.app"),
		},
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("DB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// GetEnv retrieves environment variables with a fallback
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
