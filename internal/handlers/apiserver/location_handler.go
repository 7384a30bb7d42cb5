package apiserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"social-go/internal/middleware"
	"social-go/internal/services"

	"github.com/gorilla/mux"
)

// LocationHandler bundles the user location HTTP handlers.
type LocationHandler struct {
	locationService services.LocationService
}

// NewLocationHandler creates a new LocationHandler instance.
func NewLocationHandler(locationService services.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// LocationRequest carries a location's fields.
type LocationRequest struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateLocationHandler records a new location for the authenticated user.
// Users may record as many locations as they like.
func (h *LocationHandler) CreateLocationHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	location, err := h.locationService.CreateLocation(r.Context(), userID, req.City, req.Latitude, req.Longitude)
	if err != nil {
		writeServiceError(w, err, "failed to create location")
		return
	}
	writeJSONResponse(w, http.StatusCreated, location)
}

// EditLocationHandler updates one of the authenticated user's locations.
func (h *LocationHandler) EditLocationHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseUint(vars["locationID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid location ID", http.StatusBadRequest)
		return
	}

	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	location, err := h.locationService.EditLocation(r.Context(), uint(locationID), req.City, req.Latitude, req.Longitude)
	if err != nil {
		writeServiceError(w, err, "failed to update location")
		return
	}
	writeJSONResponse(w, http.StatusOK, location)
}

// ListLocationsHandler returns the authenticated user's locations.
func (h *LocationHandler) ListLocationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	locations, err := h.locationService.ListUserLocations(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "failed to list locations")
		return
	}
	writeJSONResponse(w, http.StatusOK, locations)
}
