package domain

// BudgetTier is the spending preference attached to a plan request.
// It is a closed set: use the Tier* constants, never raw strings.
type BudgetTier string

const (
	TierBudget   BudgetTier = "budget"
	TierModerate BudgetTier = "moderate"
	TierLuxury   BudgetTier = "luxury"
)

// Valid reports whether t is one of the known budget tiers.
func (t BudgetTier) Valid() bool {
	switch t {
	case TierBudget, TierModerate, TierLuxury:
		return true
	}
	return false
}

// Activity is a single scheduled item within an itinerary day.
// Cost is a free-text label ("$25", "Free"), not a number — it is display
// copy and never feeds the cost estimate.
type Activity struct {
	Time        string `json:"time"`
	Name        string `json:"activity"`
	Description string `json:"description"`
	Cost        string `json:"cost,omitempty"`
}

// Day is one day of a generated itinerary.
// Number is 1-based; within a plan, day numbers are exactly 1..Duration with
// no gaps or repeats.
type Day struct {
	Number     int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// CostEstimate is the derived cost breakdown of a plan.
// Total equals the sum of the four components by construction.
// The estimate depends on the trip duration alone — deliberately not on the
// activities that ended up in the itinerary, since the activity cost labels
// are uncalibrated display copy.
type CostEstimate struct {
	Accommodation int `json:"accommodation"`
	Food          int `json:"food"`
	Activities    int `json:"activities"`
	Transport     int `json:"transport"`
	Total         int `json:"total"`
}

// TripPlan is a generated itinerary plus its cost estimate.
// Plans are ephemeral: they are returned to the caller and never persisted.
// Invariant: len(Itinerary) == Duration.
type TripPlan struct {
	ID            string       `json:"id"`
	Destination   string       `json:"destination"`
	Duration      int          `json:"duration"`
	Travelers     int          `json:"travelers"`
	BudgetTier    BudgetTier   `json:"budget_tier"`
	Interests     []string     `json:"interests"`
	Itinerary     []Day        `json:"itinerary"`
	EstimatedCost CostEstimate `json:"estimated_cost"`
}
