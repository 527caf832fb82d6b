package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/planner"
)

// PlanRequest carries the planning-form inputs to the generator.
type PlanRequest struct {
	Destination string
	Days        int
	Travelers   int
	BudgetTier  domain.BudgetTier
	Interests   []string
}

// PlanService wraps the itinerary generator with the simulated processing
// latency. The wait is context-aware: when the caller goes away before the
// delay elapses, the stale plan is abandoned instead of being delivered.
type PlanService struct {
	gen   *planner.Generator
	delay time.Duration
}

// NewPlanService constructs a PlanService. delay is the simulated processing
// time before a plan is delivered; pass 0 to disable the wait (tests).
func NewPlanService(gen *planner.Generator, delay time.Duration) *PlanService {
	return &PlanService{gen: gen, delay: delay}
}

// Generate produces a plan for the request.
// Validation errors surface immediately; the simulated delay only applies to
// successful generations. Returns the context error if the caller cancels
// before the delay elapses.
func (s *PlanService) Generate(ctx context.Context, req PlanRequest) (domain.TripPlan, error) {
	plan, err := s.gen.Generate(req.Destination, req.Days, req.Travelers, req.BudgetTier, req.Interests)
	if err != nil {
		return domain.TripPlan{}, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return domain.TripPlan{}, fmt.Errorf("service.PlanService.Generate: %w", ctx.Err())
		}
	}

	return plan, nil
}
