package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/daybook-app/backend/internal/config"
	"github.com/daybook-app/backend/internal/database"
	"github.com/daybook-app/backend/internal/handlers"
	"github.com/daybook-app/backend/internal/middleware"
	"github.com/daybook-app/backend/internal/routes"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg := config.Load()
	if !cfg.IsProduction() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if cfg.NutritionixAppID == "" || cfg.NutritionixAPIKey == "" {
		logrus.Warn("⚠️  NUTRITIONIX credentials not set. Food lookup will not be available.")
	}
	if cfg.GeocodeAPIKey == "" {
		logrus.Warn("⚠️  GEOCODE_API_KEY not set. Location lookup will not be available.")
	}

	// Connect to PostgreSQL
	logrus.Info("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		logrus.Fatal("Failed to connect to PostgreSQL: ", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis
	logrus.Info("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		logrus.Fatal("Failed to connect to Redis: ", err)
	}
	defer database.DisconnectRedis()

	// Wire third-party lookup clients
	handlers.InitLookupClients(cfg)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimit)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r)

	logrus.Info("📋 Registered routes:")
	logrus.Info("  GET  /health")
	logrus.Info("  GET  /")
	logrus.Info("  GET  /login")
	logrus.Info("  POST /login")
	logrus.Info("  POST /create")
	logrus.Info("  GET  /profile/{uid}")
	logrus.Info("  POST /new")
	logrus.Info("  GET  /logout")
	logrus.Info("  GET  /api/food")
	logrus.Info("  GET  /api/location")

	logrus.Infof("🚀 Daybook backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
