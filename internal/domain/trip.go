// Package domain contains the core data types for the Travel Planner backend.
// This package has no dependencies on other internal packages and is imported
// by every one of them (catalog, planner, store, service, handler).
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a saved trip.
// It is a closed set: use the Status* constants, never raw strings.
// Transitions are manual — nothing in this package or the service layer
// advances a trip automatically.
type TripStatus string

const (
	StatusPlanned   TripStatus = "planned"
	StatusBooked    TripStatus = "booked"
	StatusCompleted TripStatus = "completed"
)

// Valid reports whether s is one of the known trip statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusBooked, StatusCompleted:
		return true
	}
	return false
}

// MaxNotesLen is the maximum number of characters kept in Trip.Notes.
// Longer notes are truncated by NewTrip, not rejected.
const MaxNotesLen = 500

// Trip represents a user-created trip to a catalog destination.
// The destination is an embedded snapshot, not a reference — a trip stays
// intact even if the catalog changes underneath it.
//
// Trips are only built through NewTrip, so an in-memory Trip always satisfies
// the invariants: StartDate < EndDate, Budget > 0, Travelers >= 1, Notes
// within MaxNotesLen, Status valid.
type Trip struct {
	ID          string      `json:"id"`
	Destination Destination `json:"destination"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Budget      float64     `json:"budget"`
	Travelers   int         `json:"travelers"`
	Notes       string      `json:"notes,omitempty"`
	Status      TripStatus  `json:"status"`
}

// NewTrip validates the inputs and constructs a Trip with a fresh ID and
// status planned. It is the only way to obtain a Trip; invalid inputs return
// an error wrapping ErrValidation and no Trip is produced.
func NewTrip(dest Destination, start, end time.Time, budget float64, travelers int, notes string) (Trip, error) {
	if err := validateTrip(start, end, budget, travelers); err != nil {
		return Trip{}, err
	}
	if r := []rune(notes); len(r) > MaxNotesLen {
		notes = string(r[:MaxNotesLen])
	}
	return Trip{
		ID:          uuid.NewString(),
		Destination: dest,
		StartDate:   start,
		EndDate:     end,
		Budget:      budget,
		Travelers:   travelers,
		Notes:       notes,
		Status:      StatusPlanned,
	}, nil
}

// validateTrip enforces the trip construction rules.
//   - EndDate must be strictly after StartDate (a same-day trip is rejected).
//   - Budget must be positive.
//   - Travelers must be at least 1.
func validateTrip(start, end time.Time, budget float64, travelers int) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}
	if budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", ErrValidation)
	}
	if travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrValidation)
	}
	return nil
}
