// Package handler implements the HTTP handlers for the Travel Planner API.
// All handlers are methods on Server; methods are split into domain-specific
// files (health.go, trip.go, plan.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/service"
	"github.com/pkordes/travel-planner/backend/spec"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching storage or the service layer.
type TripServicer interface {
	List() []domain.Trip
	Create(ctx context.Context, p service.CreateTripParams) (domain.Trip, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status domain.TripStatus) (domain.Trip, error)
}

// PlanServicer defines the itinerary generation operation the plan handlers
// depend on.
type PlanServicer interface {
	Generate(ctx context.Context, req service.PlanRequest) (domain.TripPlan, error)
}

// CatalogProvider defines the read-only catalog operations the destination
// handlers depend on.
type CatalogProvider interface {
	Filter(term, country string) []domain.Destination
	Countries() []string
}

// ExportServicer defines the export renderings the export handlers depend on.
type ExportServicer interface {
	Rows() []domain.ExportRow
	PlanPDF(plan domain.TripPlan) ([]byte, error)
}

// Server holds the dependencies shared by all handlers.
type Server struct {
	trips   TripServicer
	plans   PlanServicer
	catalog CatalogProvider
	exports ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, plans PlanServicer, catalog CatalogProvider, exports ExportServicer) *Server {
	return &Server{trips: trips, plans: plans, catalog: catalog, exports: exports}
}

// Routes returns the router with every API endpoint registered.
// Middleware is applied by the caller (main.go), not here.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", s.handleListDestinations)
		r.Get("/countries", s.handleListCountries)
	})

	r.Route("/plans", func(r chi.Router) {
		r.Post("/", s.handleGeneratePlan)
		r.Post("/pdf", s.handlePlanPDF)
	})

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.handleListTrips)
		r.Post("/", s.handleCreateTrip)
		r.Get("/export", s.handleExportTrips)
		r.Delete("/{id}", s.handleDeleteTrip)
		r.Patch("/{id}/status", s.handleUpdateTripStatus)
	})

	return r
}

// handleOpenAPI serves the embedded OpenAPI document, so the spec and the
// running code are always in sync.
func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(spec.OpenAPI)
}
