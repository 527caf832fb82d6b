package domain

// Destination is a single entry in the static destination catalog.
// Records are loaded once at startup and never mutated; everything that
// needs one either reads the catalog or holds its own snapshot.
type Destination struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Country         string   `json:"country"`
	Description     string   `json:"description"`
	ImageURL        string   `json:"image_url"`
	EstimatedCost   float64  `json:"estimated_cost"`
	BestTimeToVisit string   `json:"best_time_to_visit"`
	Activities      []string `json:"activities"`
}
