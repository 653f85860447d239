package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/daybook-app/backend/internal/config"
	"github.com/daybook-app/backend/internal/models"
	"github.com/daybook-app/backend/internal/services"
)

var (
	nutritionClient *services.NutritionClient
	geocodeClient   *services.GeocodeClient
)

// InitLookupClients wires the third-party lookup clients from config.
func InitLookupClients(cfg *config.Config) {
	nutritionClient = services.NewNutritionClient(cfg.NutritionixAppID, cfg.NutritionixAPIKey)
	geocodeClient = services.NewGeocodeClient(cfg.GeocodeAPIKey)
}

// SetLookupClients swaps the lookup clients. Intended for tests.
func SetLookupClients(n *services.NutritionClient, g *services.GeocodeClient) {
	nutritionClient = n
	geocodeClient = g
}

type FoodSearchResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Results []models.Food `json:"results"`
}

type LocationSearchResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Location *models.Location `json:"location,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// FoodSearch looks up food items for a free-text query.
// GET /api/food?query=...
func FoodSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, FoodSearchResponse{
			Success: false,
			Message: "query parameter is required",
			Results: []models.Food{},
		})
		return
	}

	if nutritionClient == nil || !nutritionClient.Configured() {
		writeJSON(w, http.StatusServiceUnavailable, FoodSearchResponse{
			Success: false,
			Message: "Food lookup is not configured",
			Results: []models.Food{},
		})
		return
	}

	cacheKey := services.CacheKey("food", query)
	var foods []models.Food
	if hit, _ := services.GetCache(cacheKey, &foods); hit {
		writeJSON(w, http.StatusOK, FoodSearchResponse{Success: true, Results: foods})
		return
	}

	foods, err := nutritionClient.Search(query)
	if err != nil {
		logrus.WithError(err).WithField("query", query).Error("Food lookup failed")
		writeJSON(w, http.StatusBadGateway, FoodSearchResponse{
			Success: false,
			Message: "Food lookup failed",
			Results: []models.Food{},
		})
		return
	}

	if err := services.SetCache(cacheKey, foods); err != nil {
		logrus.WithError(err).Warn("Failed to cache food results")
	}

	writeJSON(w, http.StatusOK, FoodSearchResponse{Success: true, Results: foods})
}

// LocationSearch geocodes a free-text query and persists the result.
// GET /api/location?query=...
func LocationSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, LocationSearchResponse{
			Success: false,
			Message: "query parameter is required",
		})
		return
	}

	if geocodeClient == nil || !geocodeClient.Configured() {
		writeJSON(w, http.StatusServiceUnavailable, LocationSearchResponse{
			Success: false,
			Message: "Location lookup is not configured",
		})
		return
	}

	cacheKey := services.CacheKey("location", query)
	var cached models.Location
	if hit, _ := services.GetCache(cacheKey, &cached); hit {
		writeJSON(w, http.StatusOK, LocationSearchResponse{Success: true, Location: &cached})
		return
	}

	location, err := geocodeClient.Search(query)
	if err != nil {
		if err == services.ErrNoResults {
			writeJSON(w, http.StatusNotFound, LocationSearchResponse{
				Success: false,
				Message: "No results for that query",
			})
			return
		}
		logrus.WithError(err).WithField("query", query).Error("Location lookup failed")
		writeJSON(w, http.StatusBadGateway, LocationSearchResponse{
			Success: false,
			Message: "Location lookup failed",
		})
		return
	}

	if err := services.SaveLocation(query, location); err != nil {
		logrus.WithError(err).Warn("Failed to persist location")
	}
	if err := services.SetCache(cacheKey, location); err != nil {
		logrus.WithError(err).Warn("Failed to cache location")
	}

	writeJSON(w, http.StatusOK, LocationSearchResponse{Success: true, Location: location})
}
