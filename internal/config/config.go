package config

import (
	"os"
	"strings"
)

type Config struct {
	PostgresURI       string
	RedisURI          string
	Port              string
	AllowedOrigins    []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	NutritionixAppID  string   // Nutritionix food search credentials
	NutritionixAPIKey string
	GeocodeAPIKey     string // Google Geocoding API key
	Environment       string // ENV: production, development, etc.
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	// CORS: allow multiple origins so a separately hosted frontend works
	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		frontend := strings.TrimSpace(getEnv("FRONTEND_URL", "http://localhost:3000"))
		if frontend != "" {
			allowedOrigins = append(allowedOrigins, frontend)
		}
	}

	return &Config{
		PostgresURI:       getEnv("POSTGRES_URI", getEnv("DATABASE_URL", "postgres://localhost:5432/daybook?sslmode=disable")),
		RedisURI:          getEnv("REDIS_URI", "redis://localhost:6379/0"),
		Port:              getEnv("PORT", "8080"),
		AllowedOrigins:    allowedOrigins,
		NutritionixAppID:  getEnv("NUTRITIONIX_APP_ID", ""),
		NutritionixAPIKey: getEnv("NUTRITIONIX_API_KEY", ""),
		GeocodeAPIKey:     getEnv("GEOCODE_API_KEY", ""),
		Environment:       env,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
