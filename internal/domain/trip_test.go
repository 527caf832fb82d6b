package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// ---- helpers ---------------------------------------------------------------

func destFixture() domain.Destination {
	return domain.Destination{
		ID:            "2",
		Name:          "Paris",
		Country:       "France",
		Description:   "The City of Light.",
		EstimatedCost: 2800,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---- NewTrip ---------------------------------------------------------------

func TestNewTrip_Valid(t *testing.T) {
	got, err := domain.NewTrip(destFixture(), date(2025, 6, 10), date(2025, 6, 11), 1500, 2, "bring a raincoat")

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Paris", got.Destination.Name)
	assert.Equal(t, domain.StatusPlanned, got.Status)
	assert.Equal(t, "bring a raincoat", got.Notes)
}

func TestNewTrip_GeneratesUniqueIDs(t *testing.T) {
	a, err := domain.NewTrip(destFixture(), date(2025, 6, 10), date(2025, 6, 12), 1500, 2, "")
	require.NoError(t, err)
	b, err := domain.NewTrip(destFixture(), date(2025, 6, 10), date(2025, 6, 12), 1500, 2, "")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewTrip_EndDateEqualToStartDate(t *testing.T) {
	_, err := domain.NewTrip(destFixture(), date(2025, 6, 10), date(2025, 6, 10), 1500, 2, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewTrip_EndDateBeforeStartDate(t *testing.T) {
	_, err := domain.NewTrip(destFixture(), date(2025, 6, 10), date(2025, 6, 9), 1500, 2, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewTrip_EndDateAfterStartDate(t *testing.T) {
	_, err := domain.NewTrip(destFixture(), date(2025, 6, 10), date(2025, 6, 11), 1500, 2, "")

	assert.NoError(t, err)
}

func TestNewTrip_ZeroBudget(t *testing.T) {
	_, err := domain.NewTrip(destFixture(), date(2025, 6, 10), date(2025, 6, 12), 0, 2, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewTrip_NegativeBudget(t *testing.T) {
	_, err := domain.NewTrip(destFixture(), date(2025, 6, 10), date(2025, 6, 12), -100, 2, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewTrip_ZeroTravelers(t *testing.T) {
	_, err := domain.NewTrip(destFixture(), date(2025, 6, 10), date(2025, 6, 12), 1500, 0, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewTrip_NotesTruncatedToLimit(t *testing.T) {
	long := strings.Repeat("a", domain.MaxNotesLen+100)

	got, err := domain.NewTrip(destFixture(), date(2025, 6, 10), date(2025, 6, 12), 1500, 2, long)

	require.NoError(t, err)
	// Truncated, not rejected.
	assert.Len(t, []rune(got.Notes), domain.MaxNotesLen)
}

// ---- TripStatus ------------------------------------------------------------

func TestTripStatus_Valid(t *testing.T) {
	assert.True(t, domain.StatusPlanned.Valid())
	assert.True(t, domain.StatusBooked.Valid())
	assert.True(t, domain.StatusCompleted.Valid())
	assert.False(t, domain.TripStatus("cancelled").Valid())
	assert.False(t, domain.TripStatus("").Valid())
}

// ---- BudgetTier ------------------------------------------------------------

func TestBudgetTier_Valid(t *testing.T) {
	assert.True(t, domain.TierBudget.Valid())
	assert.True(t, domain.TierModerate.Valid())
	assert.True(t, domain.TierLuxury.Valid())
	assert.False(t, domain.BudgetTier("premium").Valid())
	assert.False(t, domain.BudgetTier("").Valid())
}
