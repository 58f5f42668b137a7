package billrate

import (
	"context"

	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/domain/billrate"
)

type BillRateServiceImpl struct {
	billRateRepo billrate.BillRateRepository
}

func NewBillRateService(billRateRepo billrate.BillRateRepository) billrate.BillRateService {
	return &BillRateServiceImpl{billRateRepo: billRateRepo}
}

// Estimate runs the computation without persisting. The totals are
// all-or-nothing: any invalid input fails the whole call.
func (s *BillRateServiceImpl) Estimate(ctx context.Context, req billrate.EstimateRequest) (billrate.EstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return billrate.EstimateResponse{}, err
	}

	totals, err := s.compute(req)
	if err != nil {
		return billrate.EstimateResponse{}, err
	}

	return toEstimateResponse(billrate.BillRateEstimate{
		ClientID:     req.ClientID,
		UnitID:       req.UnitID,
		RateRecordID: req.RateRecordID,
		Designation:  req.Designation,
		Nos:          req.Nos,
		MonthDays:    req.MonthDays,
		Components:   billing.EarningComponents(req.Components),
		Rules:        req.RuleSet(),
		PFBasis:      req.PFBasis,

		Gross:         totals.Gross,
		Statutory:     totals.Statutory,
		SubTotal:      totals.SubTotal,
		ServiceCharge: totals.ServiceCharge,
		PerHeadTotal:  totals.PerHeadTotal,
		GrandTotal:    totals.GrandTotal,
	}), nil
}

func (s *BillRateServiceImpl) SaveEstimate(ctx context.Context, req billrate.EstimateRequest) (billrate.EstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return billrate.EstimateResponse{}, err
	}

	totals, err := s.compute(req)
	if err != nil {
		return billrate.EstimateResponse{}, err
	}

	created, err := s.billRateRepo.Create(ctx, billrate.BillRateEstimate{
		ClientID:     req.ClientID,
		UnitID:       req.UnitID,
		RateRecordID: req.RateRecordID,
		Designation:  req.Designation,
		Nos:          req.Nos,
		MonthDays:    req.MonthDays,
		Components:   billing.EarningComponents(req.Components),
		Rules:        req.RuleSet(),
		PFBasis:      req.PFBasis,

		Gross:         totals.Gross,
		Statutory:     totals.Statutory,
		SubTotal:      totals.SubTotal,
		ServiceCharge: totals.ServiceCharge,
		PerHeadTotal:  totals.PerHeadTotal,
		GrandTotal:    totals.GrandTotal,
	})
	if err != nil {
		return billrate.EstimateResponse{}, err
	}

	return toEstimateResponse(created), nil
}

func (s *BillRateServiceImpl) compute(req billrate.EstimateRequest) (billing.Totals, error) {
	pfBasis := req.PFBasis
	if pfBasis == "" {
		pfBasis = billing.PFBasisActual
	}

	return billing.ComputeEstimate(billing.EstimateInput{
		Components: billing.EarningComponents(req.Components),
		Rules:      req.RuleSet(),
		PFBasis:    pfBasis,
		Nos:        req.Nos,
		MonthDays:  req.MonthDays,
	})
}

func (s *BillRateServiceImpl) GetEstimate(ctx context.Context, id string) (billrate.EstimateResponse, error) {
	e, err := s.billRateRepo.GetByID(ctx, id)
	if err != nil {
		return billrate.EstimateResponse{}, err
	}
	return toEstimateResponse(e), nil
}

func (s *BillRateServiceImpl) ListEstimatesByClient(ctx context.Context, clientID string) ([]billrate.EstimateResponse, error) {
	estimates, err := s.billRateRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]billrate.EstimateResponse, len(estimates))
	for i, e := range estimates {
		responses[i] = toEstimateResponse(e)
	}
	return responses, nil
}

func (s *BillRateServiceImpl) DeleteEstimate(ctx context.Context, id string) error {
	return s.billRateRepo.Delete(ctx, id)
}

func toEstimateResponse(e billrate.BillRateEstimate) billrate.EstimateResponse {
	rules := make(map[billing.RuleKey]billrate.RuleInput, len(e.Rules))
	for key, rule := range e.Rules {
		rules[key] = billrate.RuleInput{Basis: rule.Basis, Rate: rule.Rate}
	}

	return billrate.EstimateResponse{
		ID:           e.ID,
		ClientID:     e.ClientID,
		ClientName:   e.ClientName,
		UnitID:       e.UnitID,
		UnitName:     e.UnitName,
		RateRecordID: e.RateRecordID,
		Designation:  e.Designation,
		Nos:          e.Nos,
		MonthDays:    e.MonthDays,
		Components:   e.Components,
		Rules:        rules,
		PFBasis:      e.PFBasis,

		Gross:         e.Gross,
		Statutory:     e.Statutory,
		SubTotal:      e.SubTotal,
		ServiceCharge: e.ServiceCharge,
		PerHeadTotal:  e.PerHeadTotal,
		GrandTotal:    e.GrandTotal,
	}
}
