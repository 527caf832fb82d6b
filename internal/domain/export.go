package domain

// ExportRow is a single row in the trip export.
// It is a flat, denormalized view of one trip: destination fields are pulled
// up out of the embedded snapshot so the row serializes cleanly to CSV.
//
// Dates are "2006-01-02" formatted strings.
type ExportRow struct {
	TripID      string
	Destination string
	Country     string
	StartDate   string
	EndDate     string
	Budget      float64
	Travelers   int
	Status      string
	Notes       string
}
