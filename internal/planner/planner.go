// Package planner generates mock trip itineraries with a derived cost
// estimate. Generation is a stateless transform: no persistence, no I/O.
package planner

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// MaxDays is the longest itinerary the generator will produce — the largest
// duration offered by the planning form.
const MaxDays = 21

// Daily cost rates, in whole currency units. The estimate is a function of
// the trip duration alone; the activities chosen for the itinerary carry
// display-only cost labels and are deliberately not summed.
const (
	accommodationPerDay = 120
	foodPerDay          = 80
	activitiesPerDay    = 60
	transportFlat       = 200
)

// activityPool is the fixed template pool each day draws from.
// Days take a contiguous prefix of 3, 4, or 5 entries, so the pool order is
// load-bearing: earlier entries appear on every day.
var activityPool = []domain.Activity{
	{Time: "9:00 AM", Name: "Visit Historic District", Description: "Explore the charming old town with guided tour", Cost: "$25"},
	{Time: "12:00 PM", Name: "Local Cuisine Lunch", Description: "Try authentic local dishes at recommended restaurant", Cost: "$35"},
	{Time: "2:30 PM", Name: "Museum Visit", Description: "Discover local art and culture", Cost: "$15"},
	{Time: "5:00 PM", Name: "Scenic Viewpoint", Description: "Watch sunset from the best vantage point", Cost: "Free"},
	{Time: "7:30 PM", Name: "Traditional Dinner", Description: "Fine dining experience with local specialties", Cost: "$65"},
}

// Generator produces trip plans. The random source used to pick each day's
// activity count is injectable so tests can force every legal count.
type Generator struct {
	intn func(n int) int
}

// New constructs a Generator using the given random function, which must
// behave like rand.Intn (uniform in [0, n)). Pass nil to use rand.Intn.
func New(intn func(n int) int) *Generator {
	if intn == nil {
		intn = rand.Intn
	}
	return &Generator{intn: intn}
}

// Generate builds a plan with exactly `days` itinerary days for the named
// destination. Day numbers are 1..days with no gaps; day 1 and the final day
// carry fixed arrival/departure titles. Each day's activity list is a
// randomly sized prefix (3 to 5 entries) of the template pool.
//
// A blank destination, a duration outside [1, MaxDays], or an unknown budget
// tier returns an error wrapping domain.ErrValidation.
func (g *Generator) Generate(destination string, days, travelers int, tier domain.BudgetTier, interests []string) (domain.TripPlan, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return domain.TripPlan{}, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if days < 1 || days > MaxDays {
		return domain.TripPlan{}, fmt.Errorf("%w: duration must be between 1 and %d days", domain.ErrValidation, MaxDays)
	}
	if travelers < 1 {
		return domain.TripPlan{}, fmt.Errorf("%w: travelers must be at least 1", domain.ErrValidation)
	}
	if !tier.Valid() {
		return domain.TripPlan{}, fmt.Errorf("%w: unknown budget tier %q", domain.ErrValidation, string(tier))
	}

	itinerary := make([]domain.Day, days)
	for i := range itinerary {
		count := 3 + g.intn(3)
		activities := make([]domain.Activity, count)
		copy(activities, activityPool[:count])
		itinerary[i] = domain.Day{
			Number:     i + 1,
			Title:      dayTitle(destination, i, days),
			Activities: activities,
		}
	}

	if interests == nil {
		interests = []string{}
	}

	return domain.TripPlan{
		ID:            uuid.NewString(),
		Destination:   destination,
		Duration:      days,
		Travelers:     travelers,
		BudgetTier:    tier,
		Interests:     interests,
		Itinerary:     itinerary,
		EstimatedCost: estimate(days),
	}, nil
}

// dayTitle returns the title for the day at index i of a days-long plan.
// The first day is always the arrival day; the last day (when there is more
// than one) is the departure day.
func dayTitle(destination string, i, days int) string {
	switch {
	case i == 0:
		return "Arrival & City Exploration"
	case i == days-1:
		return "Final Adventures & Departure"
	default:
		return fmt.Sprintf("Discover %s - Day %d", destination, i+1)
	}
}

// estimate derives the cost breakdown from the trip duration.
func estimate(days int) domain.CostEstimate {
	e := domain.CostEstimate{
		Accommodation: accommodationPerDay * days,
		Food:          foodPerDay * days,
		Activities:    activitiesPerDay * days,
		Transport:     transportFlat,
	}
	e.Total = e.Accommodation + e.Food + e.Activities + e.Transport
	return e
}
