package catalog

import (
	"strings"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// Filter returns the destinations matching the given search term and country
// facet, preserving catalog order.
//
// The term is matched case-insensitively as a substring of name, country, or
// description; an empty term matches everything. A non-empty country must
// match the destination country exactly; empty means no facet filter.
//
// Filter always returns a non-nil slice and is idempotent: filtering its own
// result with the same arguments yields the same result.
func (c *Catalog) Filter(term, country string) []domain.Destination {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]domain.Destination, 0, len(c.destinations))
	for _, d := range c.destinations {
		if country != "" && d.Country != country {
			continue
		}
		if needle != "" && !matches(d, needle) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// matches reports whether needle (already lowercased) occurs in the
// destination's name, country, or description.
func matches(d domain.Destination, needle string) bool {
	return strings.Contains(strings.ToLower(d.Name), needle) ||
		strings.Contains(strings.ToLower(d.Country), needle) ||
		strings.Contains(strings.ToLower(d.Description), needle)
}
