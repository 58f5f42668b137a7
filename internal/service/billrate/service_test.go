package billrate

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/domain/billrate"
)

type stubBillRateRepo struct {
	created *billrate.BillRateEstimate
}

func (s *stubBillRateRepo) Create(ctx context.Context, e billrate.BillRateEstimate) (billrate.BillRateEstimate, error) {
	e.ID = "estimate-1"
	s.created = &e
	return e, nil
}

func (s *stubBillRateRepo) GetByID(ctx context.Context, id string) (billrate.BillRateEstimate, error) {
	return billrate.BillRateEstimate{}, billrate.ErrEstimateNotFound
}

func (s *stubBillRateRepo) ListByClient(ctx context.Context, clientID string) ([]billrate.BillRateEstimate, error) {
	return nil, nil
}

func (s *stubBillRateRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func guardEstimateRequest() billrate.EstimateRequest {
	return billrate.EstimateRequest{
		ClientID:    "client-1",
		Designation: "Security Guard",
		Nos:         1,
		MonthDays:   30,
		Components: map[billing.ComponentKey]decimal.Decimal{
			billing.ComponentBasic: decimal.NewFromInt(15000),
			billing.ComponentDA:    decimal.NewFromInt(3000),
			billing.ComponentHRA:   decimal.NewFromInt(4000),
		},
		Rules: map[billing.RuleKey]billrate.RuleInput{
			billing.RuleEPF:           {Basis: billing.BasisBasicDA, Rate: decimal.NewFromInt(13)},
			billing.RuleESI:           {Basis: billing.BasisGross, Rate: decimal.NewFromFloat(3.25)},
			billing.RuleServiceCharge: {Basis: billing.BasisSubTotal, Rate: decimal.NewFromInt(10)},
		},
		PFBasis: billing.PFBasisActual,
	}
}

func TestEstimate_ComputesTotalsWithoutPersisting(t *testing.T) {
	t.Parallel()

	repo := &stubBillRateRepo{}
	svc := NewBillRateService(repo)

	resp, err := svc.Estimate(context.Background(), guardEstimateRequest())
	require.NoError(t, err)

	assert.True(t, resp.Gross.Equal(decimal.NewFromInt(22000)), "gross: %s", resp.Gross)
	assert.True(t, resp.Statutory[billing.RuleEPF].Equal(decimal.NewFromInt(2340)), "epf: %s", resp.Statutory[billing.RuleEPF])
	assert.True(t, resp.Statutory[billing.RuleESI].Equal(decimal.NewFromInt(715)), "esi: %s", resp.Statutory[billing.RuleESI])
	assert.True(t, resp.SubTotal.Equal(decimal.NewFromInt(25055)), "sub_total: %s", resp.SubTotal)
	assert.True(t, resp.ServiceCharge.Equal(decimal.NewFromInt(2506)), "service_charge: %s", resp.ServiceCharge)
	assert.True(t, resp.GrandTotal.Equal(decimal.NewFromInt(27561)), "grand_total: %s", resp.GrandTotal)

	assert.Empty(t, resp.ID)
	assert.Nil(t, repo.created)
}

func TestEstimate_GrandTotalScalesByNos(t *testing.T) {
	t.Parallel()

	svc := NewBillRateService(&stubBillRateRepo{})

	req := guardEstimateRequest()
	req.Nos = 4

	resp, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.PerHeadTotal.Equal(decimal.NewFromInt(27561)))
	assert.True(t, resp.GrandTotal.Equal(decimal.NewFromInt(110244)))
}

func TestEstimate_ValidationFailures(t *testing.T) {
	t.Parallel()

	svc := NewBillRateService(&stubBillRateRepo{})

	t.Run("missing client", func(t *testing.T) {
		t.Parallel()
		req := guardEstimateRequest()
		req.ClientID = ""
		_, err := svc.Estimate(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("zero nos", func(t *testing.T) {
		t.Parallel()
		req := guardEstimateRequest()
		req.Nos = 0
		_, err := svc.Estimate(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("negative rate", func(t *testing.T) {
		t.Parallel()
		req := guardEstimateRequest()
		req.Rules = map[billing.RuleKey]billrate.RuleInput{
			billing.RuleEPF: {Basis: billing.BasisBasicDA, Rate: decimal.NewFromInt(-13)},
		}
		_, err := svc.Estimate(context.Background(), req)
		assert.ErrorIs(t, err, billing.ErrNegativeRate)
	})
}

func TestSaveEstimate_PersistsSnapshot(t *testing.T) {
	t.Parallel()

	repo := &stubBillRateRepo{}
	svc := NewBillRateService(repo)

	resp, err := svc.SaveEstimate(context.Background(), guardEstimateRequest())
	require.NoError(t, err)

	assert.Equal(t, "estimate-1", resp.ID)
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.GrandTotal.Equal(decimal.NewFromInt(27561)))
	assert.Equal(t, "Security Guard", repo.created.Designation)
}
