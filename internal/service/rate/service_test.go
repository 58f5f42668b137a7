package rate

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/domain/rate"
	"github.com/garudasec/billing-backend-go/internal/pkg/validator"
)

type stubRateRepo struct {
	records    []rate.RateRecord
	created    *rate.RateRecord
	updated    *rate.UpdateRateRequest
	candidates []rate.RateRecord
}

func (s *stubRateRepo) Create(ctx context.Context, r rate.RateRecord) (rate.RateRecord, error) {
	r.ID = "rate-1"
	r.IsActive = true
	s.created = &r
	return r, nil
}

func (s *stubRateRepo) GetByID(ctx context.Context, id string) (rate.RateRecord, error) {
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return rate.RateRecord{}, rate.ErrRateRecordNotFound
}

func (s *stubRateRepo) GetCandidates(ctx context.Context, clientID, designation string) ([]rate.RateRecord, error) {
	return s.candidates, nil
}

func (s *stubRateRepo) ListByClient(ctx context.Context, clientID string) ([]rate.RateRecord, error) {
	return s.records, nil
}

func (s *stubRateRepo) Update(ctx context.Context, req rate.UpdateRateRequest) error {
	s.updated = &req
	return nil
}

func (s *stubRateRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateRate_DefaultsAndComponentValidation(t *testing.T) {
	t.Parallel()

	repo := &stubRateRepo{}
	svc := NewRateService(repo)

	created, err := svc.CreateRate(context.Background(), rate.CreateRateRequest{
		ClientID:    "client-1",
		Designation: "Security Guard",
		Components: map[billing.ComponentKey]decimal.Decimal{
			billing.ComponentBasic: decimal.NewFromInt(15000),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, billing.PFBasisActual, created.PFBasis)
	assert.Equal(t, billing.RoomRentFixed, created.RoomRentType)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Security Guard", repo.created.Designation)
}

func TestCreateRate_RejectsUnknownComponent(t *testing.T) {
	t.Parallel()

	svc := NewRateService(&stubRateRepo{})

	_, err := svc.CreateRate(context.Background(), rate.CreateRateRequest{
		ClientID:    "client-1",
		Designation: "Security Guard",
		Components: map[billing.ComponentKey]decimal.Decimal{
			"mystery_allowance": decimal.NewFromInt(500),
		},
	})
	assert.ErrorIs(t, err, billing.ErrUnknownComponent)
}

func TestUpdateRate_RejectsOutOfRangePercentRule(t *testing.T) {
	t.Parallel()

	repo := &stubRateRepo{}
	svc := NewRateService(repo)

	_, err := svc.UpdateRate(context.Background(), rate.UpdateRateRequest{
		ID: "rate-1",
		Rules: map[billing.RuleKey]rate.RuleRequest{
			billing.RuleEPF: {Basis: billing.BasisBasicDA, Rate: decimal.NewFromInt(130)},
		},
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "rules.epf")
	assert.Nil(t, repo.updated)
}

func TestUpdateRate_RejectsNegativeFixedRule(t *testing.T) {
	t.Parallel()

	repo := &stubRateRepo{}
	svc := NewRateService(repo)

	_, err := svc.UpdateRate(context.Background(), rate.UpdateRateRequest{
		ID: "rate-1",
		Rules: map[billing.RuleKey]rate.RuleRequest{
			billing.RuleLWF: {Basis: billing.BasisFixed, Rate: decimal.NewFromInt(-5)},
		},
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "rules.lwf")
	assert.Nil(t, repo.updated)
}

func TestResolve_UnitSpecificBeatsClientWide(t *testing.T) {
	t.Parallel()

	now := time.Now()
	repo := &stubRateRepo{candidates: []rate.RateRecord{
		{ID: "client-wide", ClientID: "client-1", Designation: "Security Guard", UpdatedAt: now},
		{ID: "unit-specific", ClientID: "client-1", UnitID: strPtr("unit-1"), Designation: "Security Guard", UpdatedAt: now.Add(-time.Hour)},
	}}
	svc := NewRateService(repo)

	resolved, err := svc.Resolve(context.Background(), "client-1", strPtr("unit-1"), "Security Guard")
	require.NoError(t, err)

	assert.Equal(t, "unit-specific", resolved.Rate.ID)
	assert.False(t, resolved.Conflict)
}

func TestResolve_FallsBackToClientWide(t *testing.T) {
	t.Parallel()

	repo := &stubRateRepo{candidates: []rate.RateRecord{
		{ID: "client-wide", ClientID: "client-1", Designation: "Security Guard", UpdatedAt: time.Now()},
		{ID: "other-unit", ClientID: "client-1", UnitID: strPtr("unit-2"), Designation: "Security Guard", UpdatedAt: time.Now()},
	}}
	svc := NewRateService(repo)

	resolved, err := svc.Resolve(context.Background(), "client-1", strPtr("unit-1"), "Security Guard")
	require.NoError(t, err)

	assert.Equal(t, "client-wide", resolved.Rate.ID)
}

func TestResolve_DuplicateScopePicksNewestAndFlagsConflict(t *testing.T) {
	t.Parallel()

	now := time.Now()
	repo := &stubRateRepo{candidates: []rate.RateRecord{
		{ID: "older", ClientID: "client-1", Designation: "Security Guard", UpdatedAt: now.Add(-24 * time.Hour)},
		{ID: "newer", ClientID: "client-1", Designation: "Security Guard", UpdatedAt: now},
	}}
	svc := NewRateService(repo)

	resolved, err := svc.Resolve(context.Background(), "client-1", nil, "Security Guard")
	require.NoError(t, err)

	assert.Equal(t, "newer", resolved.Rate.ID)
	assert.True(t, resolved.Conflict)
}

func TestResolve_NoMatchReturnsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewRateService(&stubRateRepo{})

	_, err := svc.Resolve(context.Background(), "client-1", nil, "Supervisor")
	assert.ErrorIs(t, err, rate.ErrRateRecordNotFound)
}
