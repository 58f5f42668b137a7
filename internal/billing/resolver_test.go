package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolveRate_UnitSpecificWinsOverClientWide(t *testing.T) {
	t.Parallel()

	now := time.Now()
	candidates := []RateCandidate{
		{ID: "client-wide", UnitID: nil, Designation: "Security Guard", UpdatedAt: now},
		{ID: "unit-specific", UnitID: strPtr("unit-1"), Designation: "Security Guard", UpdatedAt: now.Add(-time.Hour)},
	}

	res, err := ResolveRate(candidates, strPtr("unit-1"), "Security Guard")
	require.NoError(t, err)
	assert.Equal(t, "unit-specific", res.ID)
	assert.False(t, res.Conflict)
}

func TestResolveRate_FallsBackToClientWide(t *testing.T) {
	t.Parallel()

	candidates := []RateCandidate{
		{ID: "client-wide", UnitID: nil, Designation: "Security Guard", UpdatedAt: time.Now()},
		{ID: "other-unit", UnitID: strPtr("unit-2"), Designation: "Security Guard", UpdatedAt: time.Now()},
	}

	res, err := ResolveRate(candidates, strPtr("unit-1"), "Security Guard")
	require.NoError(t, err)
	assert.Equal(t, "client-wide", res.ID)
}

func TestResolveRate_NoUnitGiven(t *testing.T) {
	t.Parallel()

	candidates := []RateCandidate{
		{ID: "unit-specific", UnitID: strPtr("unit-1"), Designation: "Security Guard", UpdatedAt: time.Now()},
		{ID: "client-wide", UnitID: nil, Designation: "Security Guard", UpdatedAt: time.Now()},
	}

	res, err := ResolveRate(candidates, nil, "Security Guard")
	require.NoError(t, err)
	assert.Equal(t, "client-wide", res.ID)
}

func TestResolveRate_DesignationCaseInsensitive(t *testing.T) {
	t.Parallel()

	candidates := []RateCandidate{
		{ID: "r1", UnitID: nil, Designation: "Security Guard", UpdatedAt: time.Now()},
	}

	res, err := ResolveRate(candidates, nil, "security guard")
	require.NoError(t, err)
	assert.Equal(t, "r1", res.ID)
}

func TestResolveRate_ConflictPicksMostRecentAndFlags(t *testing.T) {
	t.Parallel()

	now := time.Now()
	candidates := []RateCandidate{
		{ID: "older", UnitID: strPtr("unit-1"), Designation: "Security Guard", UpdatedAt: now.Add(-time.Hour)},
		{ID: "newer", UnitID: strPtr("unit-1"), Designation: "Security Guard", UpdatedAt: now},
	}

	res, err := ResolveRate(candidates, strPtr("unit-1"), "Security Guard")
	require.NoError(t, err)
	assert.Equal(t, "newer", res.ID)
	assert.True(t, res.Conflict)
}

func TestResolveRate_NotFound(t *testing.T) {
	t.Parallel()

	candidates := []RateCandidate{
		{ID: "r1", UnitID: nil, Designation: "Supervisor", UpdatedAt: time.Now()},
	}

	_, err := ResolveRate(candidates, nil, "Security Guard")
	assert.ErrorIs(t, err, ErrNoMatchingRate)

	_, err = ResolveRate(nil, nil, "Security Guard")
	assert.ErrorIs(t, err, ErrNoMatchingRate)
}
