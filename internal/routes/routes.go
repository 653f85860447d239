package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Journaling pages
	r.Get("/", handlers.Home)
	r.Get("/login", handlers.LoginPage)
	r.Post("/login", handlers.Login)
	r.Post("/create", handlers.Register)
	r.Get("/profile/{uid}", handlers.Profile)
	r.Post("/new", handlers.NewEntry)
	r.Get("/logout", handlers.Logout)

	// Auxiliary lookup capabilities (JSON, off the journaling path)
	r.Get("/api/food", handlers.FoodSearch)
	r.Get("/api/location", handlers.LocationSearch)

	// Catch-all 404 page
	r.NotFound(handlers.NotFound)
}
