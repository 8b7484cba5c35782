package config

import "os"

// Config carries the environment-driven settings. Values come from the
// process environment (main loads .env first via godotenv).
type Config struct {
	Port          string
	DataDir       string
	AdminUsername string
	AdminPassword string
}

// Load reads the environment with development defaults. AdminUsername and
// AdminPassword are only used to seed the credential file on first run.
func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		DataDir:       getEnv("DATA_DIR", "data"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
