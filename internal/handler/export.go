// Package handler — export.go implements GET /trips/export.
// Returns the saved trips as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "destination", "country", "start_date", "end_date",
	"budget", "travelers", "status", "notes",
}

// exportRowResponse is the JSON form of one export row.
type exportRowResponse struct {
	TripID      string  `json:"trip_id"`
	Destination string  `json:"destination"`
	Country     string  `json:"country"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	Travelers   int     `json:"travelers"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
}

// handleExportTrips handles GET /trips/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) handleExportTrips(w http.ResponseWriter, r *http.Request) {
	rows := s.exports.Rows()

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]exportRowResponse, len(rows))
	for i, row := range rows {
		out[i] = exportRowResponse(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes the rows as CSV with a header line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer writes never fail.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write([]string{
			r.TripID,
			r.Destination,
			r.Country,
			r.StartDate,
			r.EndDate,
			strconv.FormatFloat(r.Budget, 'f', -1, 64),
			strconv.Itoa(r.Travelers),
			r.Status,
			r.Notes,
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
