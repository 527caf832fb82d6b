// Package catalog holds the static destination catalog and the filtering
// operations over it. The catalog is compiled in — there is no external
// fetch — and is treated as read-only by every caller.
package catalog

import (
	"sort"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// Catalog is an ordered, read-only collection of destinations.
// The zero value is an empty catalog; use Default for the built-in set.
type Catalog struct {
	destinations []domain.Destination
}

// New builds a Catalog over the given destinations. The slice is not copied;
// callers must not mutate it afterwards.
func New(destinations []domain.Destination) *Catalog {
	return &Catalog{destinations: destinations}
}

// Default returns the built-in destination catalog.
func Default() *Catalog {
	return New(defaultDestinations)
}

// All returns every destination in catalog order.
func (c *Catalog) All() []domain.Destination {
	return c.destinations
}

// ByID returns the destination with the given ID.
// Returns domain.ErrNotFound if no such destination exists.
func (c *Catalog) ByID(id string) (domain.Destination, error) {
	for _, d := range c.destinations {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Destination{}, domain.ErrNotFound
}

// Countries returns the sorted set of distinct countries in the catalog.
// This is the option list for the country facet filter.
func (c *Catalog) Countries() []string {
	seen := make(map[string]bool, len(c.destinations))
	out := make([]string, 0, len(c.destinations))
	for _, d := range c.destinations {
		if !seen[d.Country] {
			seen[d.Country] = true
			out = append(out, d.Country)
		}
	}
	sort.Strings(out)
	return out
}

var defaultDestinations = []domain.Destination{
	{
		ID:              "1",
		Name:            "Tokyo",
		Country:         "Japan",
		Description:     "A vibrant metropolis blending traditional culture with cutting-edge technology.",
		ImageURL:        "https://images.pexels.com/photos/2506923/pexels-photo-2506923.jpeg?auto=compress&cs=tinysrgb&w=800",
		EstimatedCost:   3500,
		BestTimeToVisit: "March-May, September-November",
		Activities:      []string{"Temple visits", "Sushi tasting", "Shopping in Shibuya", "Cherry blossom viewing"},
	},
	{
		ID:              "2",
		Name:            "Paris",
		Country:         "France",
		Description:     "The City of Light, famous for its art, fashion, gastronomy, and culture.",
		ImageURL:        "https://images.pexels.com/photos/338515/pexels-photo-338515.jpeg?auto=compress&cs=tinysrgb&w=800",
		EstimatedCost:   2800,
		BestTimeToVisit: "April-June, September-October",
		Activities:      []string{"Eiffel Tower", "Louvre Museum", "Seine River cruise", "Café culture"},
	},
	{
		ID:              "3",
		Name:            "Bali",
		Country:         "Indonesia",
		Description:     "Tropical paradise known for its beaches, temples, and vibrant culture.",
		ImageURL:        "https://images.pexels.com/photos/2474690/pexels-photo-2474690.jpeg?auto=compress&cs=tinysrgb&w=800",
		EstimatedCost:   1800,
		BestTimeToVisit: "April-October",
		Activities:      []string{"Beach relaxation", "Temple tours", "Rice terrace hiking", "Spa treatments"},
	},
	{
		ID:              "4",
		Name:            "New York City",
		Country:         "USA",
		Description:     "The Big Apple - a bustling metropolis with iconic landmarks and endless entertainment.",
		ImageURL:        "https://images.pexels.com/photos/466685/pexels-photo-466685.jpeg?auto=compress&cs=tinysrgb&w=800",
		EstimatedCost:   4200,
		BestTimeToVisit: "April-June, September-November",
		Activities:      []string{"Broadway shows", "Central Park", "Museums", "Food tours"},
	},
	{
		ID:              "5",
		Name:            "Santorini",
		Country:         "Greece",
		Description:     "Stunning Greek island famous for its white-washed buildings and sunset views.",
		ImageURL:        "https://images.pexels.com/photos/1285625/pexels-photo-1285625.jpeg?auto=compress&cs=tinysrgb&w=800",
		EstimatedCost:   2200,
		BestTimeToVisit: "April-October",
		Activities:      []string{"Sunset watching", "Wine tasting", "Beach hopping", "Photography"},
	},
	{
		ID:              "6",
		Name:            "Dubai",
		Country:         "UAE",
		Description:     "Modern city known for luxury shopping, ultramodern architecture, and nightlife.",
		ImageURL:        "https://images.pexels.com/photos/1470502/pexels-photo-1470502.jpeg?auto=compress&cs=tinysrgb&w=800",
		EstimatedCost:   3200,
		BestTimeToVisit: "November-March",
		Activities:      []string{"Burj Khalifa", "Desert safari", "Shopping malls", "Beach resorts"},
	},
}
