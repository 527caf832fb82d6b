// Package store implements the trip persistence adapter: the full trip
// collection serialized to a single key in the durable blob store, with
// per-record validation and corruption recovery on load.
//
// A TripStore has exactly one logical owner at a time (the trip service);
// it performs no locking of its own.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/kv"
)

// Key is the blob store key holding the JSON-encoded trip collection.
// The TripStore is the sole writer of this key.
const Key = "travelPlannerTrips"

// ErrNotLoaded is returned by Save when Load has not yet completed.
// Writes are suppressed until the first load so a fresh process can never
// clobber existing data with its empty initial state.
var ErrNotLoaded = errors.New("save before initial load")

// TripStore loads and saves the trip collection as one unit.
// There are no partial or incremental writes: Save always serializes the
// entire collection and overwrites the prior value.
type TripStore struct {
	kv     kv.Store
	loaded bool
}

// NewTripStore constructs a TripStore over the given blob store.
func NewTripStore(store kv.Store) *TripStore {
	return &TripStore{kv: store}
}

// Load reads the stored trip collection.
//
// A missing key yields an empty collection. A blob that fails to decode is
// discarded — the key is deleted — and an empty collection is returned
// together with an error wrapping domain.ErrCorruptData, so the caller can
// notify the user without treating the condition as fatal. Individual
// records missing required fields are silently dropped; the remaining valid
// records are still returned.
//
// Load always returns a non-nil slice when err is nil or wraps
// domain.ErrCorruptData.
func (s *TripStore) Load(ctx context.Context) ([]domain.Trip, error) {
	raw, err := s.kv.Get(ctx, Key)
	if err != nil {
		if errors.Is(err, kv.ErrNoKey) {
			s.loaded = true
			return []domain.Trip{}, nil
		}
		return nil, fmt.Errorf("store.TripStore.Load: %w", err)
	}

	var records []tripRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		// The blob is beyond repair. Clear it so the next load starts clean,
		// and hand back an empty collection with a recoverable error signal.
		if delErr := s.kv.Delete(ctx, Key); delErr != nil {
			return nil, fmt.Errorf("store.TripStore.Load: clear corrupt blob: %w", delErr)
		}
		s.loaded = true
		return []domain.Trip{}, fmt.Errorf("store.TripStore.Load: %w: %v", domain.ErrCorruptData, err)
	}

	trips := make([]domain.Trip, 0, len(records))
	for _, rec := range records {
		if t, ok := rec.toTrip(); ok {
			trips = append(trips, t)
		}
	}
	s.loaded = true
	return trips, nil
}

// Save serializes the entire collection and overwrites the stored value.
// Returns ErrNotLoaded if called before the first Load has completed, and an
// error wrapping domain.ErrStorage when the underlying write fails — in both
// cases the caller's in-memory state remains authoritative.
func (s *TripStore) Save(ctx context.Context, trips []domain.Trip) error {
	if !s.loaded {
		return fmt.Errorf("store.TripStore.Save: %w", ErrNotLoaded)
	}

	records := make([]tripRecord, len(trips))
	for i, t := range trips {
		records[i] = toRecord(t)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("store.TripStore.Save: %w: %v", domain.ErrStorage, err)
	}
	if err := s.kv.Set(ctx, Key, raw); err != nil {
		return fmt.Errorf("store.TripStore.Save: %w: %v", domain.ErrStorage, err)
	}
	return nil
}

// tripRecord is the wire form of a trip. Required fields are pointers so a
// load can tell "absent" from "zero value" and drop incomplete records;
// dates travel as ISO-8601 strings.
type tripRecord struct {
	ID          *string             `json:"id"`
	Destination *domain.Destination `json:"destination"`
	StartDate   *string             `json:"start_date"`
	EndDate     *string             `json:"end_date"`
	Budget      *float64            `json:"budget"`
	Travelers   *int                `json:"travelers"`
	Notes       string              `json:"notes,omitempty"`
	Status      string              `json:"status,omitempty"`
}

// toRecord converts a domain trip to its wire form.
func toRecord(t domain.Trip) tripRecord {
	start := t.StartDate.UTC().Format(time.RFC3339Nano)
	end := t.EndDate.UTC().Format(time.RFC3339Nano)
	return tripRecord{
		ID:          &t.ID,
		Destination: &t.Destination,
		StartDate:   &start,
		EndDate:     &end,
		Budget:      &t.Budget,
		Travelers:   &t.Travelers,
		Notes:       t.Notes,
		Status:      string(t.Status),
	}
}

// toTrip validates and converts a wire record back into a domain trip.
// A record is admitted only when id, destination, both dates, budget, and
// travelers are present and the dates parse; missing notes default to empty
// and a missing or unknown status defaults to planned.
func (r tripRecord) toTrip() (domain.Trip, bool) {
	if r.ID == nil || r.Destination == nil || r.StartDate == nil || r.EndDate == nil ||
		r.Budget == nil || r.Travelers == nil {
		return domain.Trip{}, false
	}
	start, err := parseDate(*r.StartDate)
	if err != nil {
		return domain.Trip{}, false
	}
	end, err := parseDate(*r.EndDate)
	if err != nil {
		return domain.Trip{}, false
	}

	status := domain.TripStatus(r.Status)
	if !status.Valid() {
		status = domain.StatusPlanned
	}

	return domain.Trip{
		ID:          *r.ID,
		Destination: *r.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      *r.Budget,
		Travelers:   *r.Travelers,
		Notes:       r.Notes,
		Status:      status,
	}, true
}

// parseDate accepts full ISO-8601 timestamps and bare calendar dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
