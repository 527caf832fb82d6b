package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// TripLister is the read-only view of the trip collection the export
// service depends on. Satisfied by *TripService.
type TripLister interface {
	List() []domain.Trip
}

// ExportService produces download-friendly renderings: a flat row view of
// the saved trips (for CSV) and a PDF of a generated itinerary.
type ExportService struct {
	trips TripLister
}

// NewExportService constructs an ExportService over the given trip collection.
func NewExportService(trips TripLister) *ExportService {
	return &ExportService{trips: trips}
}

// Rows returns one ExportRow per saved trip, in collection order.
// Always returns a non-nil slice.
func (s *ExportService) Rows() []domain.ExportRow {
	trips := s.trips.List()
	rows := make([]domain.ExportRow, len(trips))
	for i, t := range trips {
		rows[i] = domain.ExportRow{
			TripID:      t.ID,
			Destination: t.Destination.Name,
			Country:     t.Destination.Country,
			StartDate:   t.StartDate.Format("2006-01-02"),
			EndDate:     t.EndDate.Format("2006-01-02"),
			Budget:      t.Budget,
			Travelers:   t.Travelers,
			Status:      string(t.Status),
			Notes:       t.Notes,
		}
	}
	return rows
}

// PlanPDF renders a generated itinerary as a printable A4 PDF.
func (s *ExportService) PlanPDF(plan domain.TripPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar.
	pdf.SetFillColor(30, 58, 95)
	pdf.Rect(0, 0, 210, 26, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 7)
	pdf.CellFormat(170, 10, "Travel Planner", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 16)
	pdf.CellFormat(170, 6, fmt.Sprintf("%d-day itinerary for %s", plan.Duration, plan.Destination), "", 1, "L", false, 0, "")

	pdf.SetY(34)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(30, 58, 95)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Destination", plan.Destination)
	row("Duration", fmt.Sprintf("%d day(s)", plan.Duration))
	row("Travelers", fmt.Sprintf("%d", plan.Travelers))
	row("Budget tier", string(plan.BudgetTier))
	pdf.Ln(4)

	for _, day := range plan.Itinerary {
		sectionHeader(fmt.Sprintf("Day %d - %s", day.Number, day.Title))
		for _, a := range day.Activities {
			label := a.Time
			value := a.Name
			if a.Cost != "" {
				value = fmt.Sprintf("%s (%s)", a.Name, a.Cost)
			}
			row(label, value)
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(120, 120, 120)
			pdf.SetX(75)
			pdf.MultiCell(115, 5, a.Description, "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(3)
	}

	cost := plan.EstimatedCost
	sectionHeader("Cost Estimate")
	row("Accommodation", fmt.Sprintf("$%d", cost.Accommodation))
	row("Food", fmt.Sprintf("$%d", cost.Food))
	row("Activities", fmt.Sprintf("$%d", cost.Activities))
	row("Transport", fmt.Sprintf("$%d", cost.Transport))

	pdf.SetFillColor(230, 236, 245)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmt.Sprintf("$%d", cost.Total), "", 1, "L", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("service.ExportService.PlanPDF: %w", err)
	}
	return buf.Bytes(), nil
}
