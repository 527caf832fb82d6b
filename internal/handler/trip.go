package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/service"
)

// maxTravelers is the input-range bound applied at the HTTP layer.
// The domain rule is only "at least 1"; the ceiling mirrors the planning
// form's widest traveler option.
const maxTravelers = 20

// createTripRequest is the body of POST /trips.
// Dates are "2006-01-02" calendar dates.
type createTripRequest struct {
	DestinationID string             `json:"destination_id"`
	StartDate     openapi_types.Date `json:"start_date"`
	EndDate       openapi_types.Date `json:"end_date"`
	Budget        float64            `json:"budget"`
	Travelers     int                `json:"travelers"`
	Notes         string             `json:"notes,omitempty"`
}

// updateStatusRequest is the body of PATCH /trips/{id}/status.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// tripResponse is the JSON representation of a saved trip.
type tripResponse struct {
	ID          string             `json:"id"`
	Destination domain.Destination `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Budget      float64            `json:"budget"`
	Travelers   int                `json:"travelers"`
	Notes       string             `json:"notes,omitempty"`
	Status      string             `json:"status"`
}

// handleListTrips handles GET /trips.
func (s *Server) handleListTrips(w http.ResponseWriter, _ *http.Request) {
	trips := s.trips.List()
	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, data)
}

// handleCreateTrip handles POST /trips.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "request body is required and must be valid JSON")
		return
	}
	if req.DestinationID == "" {
		requestError(w, "destination_id is required")
		return
	}
	if req.Travelers > maxTravelers {
		requestError(w, "travelers must be at most 20")
		return
	}

	created, err := s.trips.Create(r.Context(), service.CreateTripParams{
		DestinationID: req.DestinationID,
		StartDate:     req.StartDate.Time,
		EndDate:       req.EndDate.Time,
		Budget:        req.Budget,
		Travelers:     req.Travelers,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, "destination not found")
		case errors.Is(err, domain.ErrValidation):
			validationError(w, err)
		case errors.Is(err, domain.ErrStorage):
			storageError(w)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// handleDeleteTrip handles DELETE /trips/{id}.
func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.trips.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, "trip not found")
		case errors.Is(err, domain.ErrStorage):
			storageError(w)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateTripStatus handles PATCH /trips/{id}/status — the manual
// status transition path.
func (s *Server) handleUpdateTripStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "request body is required and must be valid JSON")
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := s.trips.UpdateStatus(r.Context(), id, domain.TripStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, "trip not found")
		case errors.Is(err, domain.ErrValidation):
			validationError(w, err)
		case errors.Is(err, domain.ErrStorage):
			storageError(w)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// tripToResponse converts a domain.Trip into its JSON representation.
func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		Budget:      t.Budget,
		Travelers:   t.Travelers,
		Notes:       t.Notes,
		Status:      string(t.Status),
	}
}
