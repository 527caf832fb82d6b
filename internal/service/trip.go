// Package service contains the business logic for the Travel Planner API.
// Services validate inputs, enforce business rules, and orchestrate the
// catalog, planner, and persistence layers. No serialization lives here —
// services depend on small interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// TripStorer defines the persistence operations the trip service depends on.
// Satisfied by *store.TripStore.
type TripStorer interface {
	Load(ctx context.Context) ([]domain.Trip, error)
	Save(ctx context.Context, trips []domain.Trip) error
}

// DestinationCatalog resolves destination IDs to catalog records.
// Satisfied by *catalog.Catalog.
type DestinationCatalog interface {
	ByID(id string) (domain.Destination, error)
}

// CreateTripParams are the validated-on-entry inputs for creating a trip.
type CreateTripParams struct {
	DestinationID string
	StartDate     time.Time
	EndDate       time.Time
	Budget        float64
	Travelers     int
	Notes         string
}

// TripService holds the authoritative in-memory trip collection and keeps it
// synchronized with durable storage using a strict "mutate, then persist"
// discipline: every state transition is followed by an explicit Save of the
// whole collection.
//
// When a Save fails the mutation is kept — in-memory state stays
// authoritative — and the error (wrapping domain.ErrStorage) is surfaced so
// the caller can notify the user.
type TripService struct {
	store   TripStorer
	catalog DestinationCatalog

	mu    sync.Mutex
	trips []domain.Trip
}

// NewTripService constructs a TripService backed by the provided store and
// catalog. Call Load before any other method.
func NewTripService(store TripStorer, catalog DestinationCatalog) *TripService {
	return &TripService{store: store, catalog: catalog}
}

// Load populates the in-memory collection from durable storage.
// On corruption (error wrapping domain.ErrCorruptData) the service starts
// from an empty collection and the error is returned for user notification —
// the service is still fully usable afterwards.
func (s *TripService) Load(ctx context.Context) error {
	trips, err := s.store.Load(ctx)
	s.mu.Lock()
	if trips != nil {
		s.trips = trips
	} else {
		s.trips = []domain.Trip{}
	}
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("service.TripService.Load: %w", err)
	}
	return nil
}

// List returns all trips in insertion order.
// Always returns a non-nil copy so callers can safely range and hold on to it.
func (s *TripService) List() []domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Trip, len(s.trips))
	copy(out, s.trips)
	return out
}

// Get returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) Get(id string) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", domain.ErrNotFound)
}

// Create resolves the destination snapshot, builds the trip through the
// validating constructor, appends it, and persists the collection.
// Returns domain.ErrNotFound for an unknown destination and
// domain.ErrValidation for rule violations. On a storage failure the created
// trip is returned together with the domain.ErrStorage-wrapped error.
func (s *TripService) Create(ctx context.Context, p CreateTripParams) (domain.Trip, error) {
	dest, err := s.catalog.ByID(p.DestinationID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	trip, err := domain.NewTrip(dest, p.StartDate, p.EndDate, p.Budget, p.Travelers, p.Notes)
	if err != nil {
		return domain.Trip{}, err
	}

	s.mu.Lock()
	s.trips = append(s.trips, trip)
	snapshot := make([]domain.Trip, len(s.trips))
	copy(snapshot, s.trips)
	s.mu.Unlock()

	if err := s.store.Save(ctx, snapshot); err != nil {
		return trip, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// Delete removes the trip with the given ID, preserving the relative order
// of the remaining trips, then persists the collection.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, t := range s.trips {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("service.TripService.Delete: %w", domain.ErrNotFound)
	}
	s.trips = append(s.trips[:idx], s.trips[idx+1:]...)
	snapshot := make([]domain.Trip, len(s.trips))
	copy(snapshot, s.trips)
	s.mu.Unlock()

	if err := s.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// UpdateStatus is the manual status transition path — the only way a trip's
// status ever changes. Returns domain.ErrValidation for an unknown status
// and domain.ErrNotFound for an unknown trip.
func (s *TripService) UpdateStatus(ctx context.Context, id string, status domain.TripStatus) (domain.Trip, error) {
	if !status.Valid() {
		return domain.Trip{}, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, string(status))
	}

	s.mu.Lock()
	idx := -1
	for i, t := range s.trips {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateStatus: %w", domain.ErrNotFound)
	}
	s.trips[idx].Status = status
	updated := s.trips[idx]
	snapshot := make([]domain.Trip, len(s.trips))
	copy(snapshot, s.trips)
	s.mu.Unlock()

	if err := s.store.Save(ctx, snapshot); err != nil {
		return updated, fmt.Errorf("service.TripService.UpdateStatus: %w", err)
	}
	return updated, nil
}
