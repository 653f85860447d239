package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("POSTGRES_URI", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Contains(t, cfg.PostgresURI, "daybook")
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://daybook.example.com , http://localhost:3000 ,")

	cfg := Load()

	assert.Equal(t, []string{"https://daybook.example.com", "http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "Production ")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
}
