package handler

import (
	"net/http"
)

// handleListDestinations handles GET /destinations.
// Supports ?search= (case-insensitive substring over name, country, and
// description) and ?country= (exact facet match). Both empty returns the
// whole catalog in catalog order.
func (s *Server) handleListDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	destinations := s.catalog.Filter(q.Get("search"), q.Get("country"))
	writeJSON(w, http.StatusOK, destinations)
}

// handleListCountries handles GET /destinations/countries.
// Returns the sorted set of distinct countries — the country facet options.
func (s *Server) handleListCountries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Countries())
}
