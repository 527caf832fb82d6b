package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/service"
)

// planRequest is the body of POST /plans and POST /plans/pdf.
// Omitted fields fall back to the planning form's defaults
// (3 days, 2 travelers, moderate budget).
type planRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Travelers   int      `json:"travelers"`
	BudgetTier  string   `json:"budget_tier"`
	Interests   []string `json:"interests"`
}

// toServiceRequest applies form defaults and converts to the service type.
func (r planRequest) toServiceRequest() service.PlanRequest {
	req := service.PlanRequest{
		Destination: r.Destination,
		Days:        r.Days,
		Travelers:   r.Travelers,
		BudgetTier:  domain.BudgetTier(r.BudgetTier),
		Interests:   r.Interests,
	}
	if req.Days == 0 {
		req.Days = 3
	}
	if req.Travelers == 0 {
		req.Travelers = 2
	}
	if req.BudgetTier == "" {
		req.BudgetTier = domain.TierModerate
	}
	return req
}

// handleGeneratePlan handles POST /plans.
// Generation includes the simulated processing delay; a client that goes
// away mid-wait cancels its own request and no plan is delivered.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	plan, ok := s.generatePlan(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// handlePlanPDF handles POST /plans/pdf.
// Generates a plan for the same request body and returns it rendered as PDF.
func (s *Server) handlePlanPDF(w http.ResponseWriter, r *http.Request) {
	plan, ok := s.generatePlan(w, r)
	if !ok {
		return
	}

	pdf, err := s.exports.PlanPDF(plan)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to render PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// generatePlan decodes the request and runs the generator, writing the error
// response itself when something goes wrong. The bool reports success.
func (s *Server) generatePlan(w http.ResponseWriter, r *http.Request) (domain.TripPlan, bool) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "request body is required and must be valid JSON")
		return domain.TripPlan{}, false
	}

	plan, err := s.plans.Generate(r.Context(), req.toServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			validationError(w, err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// The client gave up during the simulated processing delay.
			// The plan is abandoned; nothing useful can be written back.
			writeError(w, http.StatusServiceUnavailable, "canceled", "request canceled")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return domain.TripPlan{}, false
	}
	return plan, true
}
