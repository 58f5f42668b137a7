package rate

import (
	"context"
	"log/slog"

	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/domain/rate"
)

type RateServiceImpl struct {
	rateRepo rate.RateRepository
}

func NewRateService(rateRepo rate.RateRepository) rate.RateService {
	return &RateServiceImpl{rateRepo: rateRepo}
}

func (s *RateServiceImpl) CreateRate(ctx context.Context, req rate.CreateRateRequest) (rate.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return rate.RateResponse{}, err
	}

	components := billing.EarningComponents(req.Components)
	if err := components.Validate(billing.CatalogueBillRate); err != nil {
		return rate.RateResponse{}, err
	}

	pfBasis := req.PFBasis
	if pfBasis == "" {
		pfBasis = billing.PFBasisActual
	}
	roomRent := req.RoomRentType
	if roomRent == "" {
		roomRent = billing.RoomRentFixed
	}

	created, err := s.rateRepo.Create(ctx, rate.RateRecord{
		ClientID:     req.ClientID,
		UnitID:       req.UnitID,
		Designation:  req.Designation,
		Components:   components,
		Rules:        req.RuleSet(),
		PFBasis:      pfBasis,
		RoomRentType: roomRent,
	})
	if err != nil {
		return rate.RateResponse{}, err
	}

	return toRateResponse(created), nil
}

func (s *RateServiceImpl) GetRate(ctx context.Context, id string) (rate.RateResponse, error) {
	rec, err := s.rateRepo.GetByID(ctx, id)
	if err != nil {
		return rate.RateResponse{}, err
	}
	return toRateResponse(rec), nil
}

func (s *RateServiceImpl) ListRatesByClient(ctx context.Context, clientID string) ([]rate.RateResponse, error) {
	records, err := s.rateRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]rate.RateResponse, len(records))
	for i, rec := range records {
		responses[i] = toRateResponse(rec)
	}
	return responses, nil
}

func (s *RateServiceImpl) UpdateRate(ctx context.Context, req rate.UpdateRateRequest) (rate.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return rate.RateResponse{}, err
	}

	if req.Components != nil {
		if err := billing.EarningComponents(req.Components).Validate(billing.CatalogueBillRate); err != nil {
			return rate.RateResponse{}, err
		}
	}

	if err := s.rateRepo.Update(ctx, req); err != nil {
		return rate.RateResponse{}, err
	}

	return s.GetRate(ctx, req.ID)
}

func (s *RateServiceImpl) DeleteRate(ctx context.Context, id string) error {
	return s.rateRepo.Delete(ctx, id)
}

// Resolve picks the applicable rate card for a posting. A conflict
// means stored data violates the one-record-per-scope rule; the pick
// still resolves deterministically, and the violation is logged.
func (s *RateServiceImpl) Resolve(ctx context.Context, clientID string, unitID *string, designation string) (rate.ResolveResponse, error) {
	records, err := s.rateRepo.GetCandidates(ctx, clientID, designation)
	if err != nil {
		return rate.ResolveResponse{}, err
	}

	candidates := make([]billing.RateCandidate, len(records))
	byID := make(map[string]rate.RateRecord, len(records))
	for i, rec := range records {
		candidates[i] = billing.RateCandidate{
			ID:          rec.ID,
			UnitID:      rec.UnitID,
			Designation: rec.Designation,
			UpdatedAt:   rec.UpdatedAt,
		}
		byID[rec.ID] = rec
	}

	resolution, err := billing.ResolveRate(candidates, unitID, designation)
	if err != nil {
		return rate.ResolveResponse{}, rate.ErrRateRecordNotFound
	}

	if resolution.Conflict {
		slog.Warn("Multiple rate records matched one scope",
			"client_id", clientID, "designation", designation, "picked", resolution.ID)
	}

	return rate.ResolveResponse{
		Rate:     toRateResponse(byID[resolution.ID]),
		Conflict: resolution.Conflict,
	}, nil
}

func toRateResponse(rec rate.RateRecord) rate.RateResponse {
	rules := make(map[billing.RuleKey]rate.RuleResponse, len(rec.Rules))
	for key, rule := range rec.Rules {
		rules[key] = rate.RuleResponse{Basis: rule.Basis, Rate: rule.Rate}
	}

	return rate.RateResponse{
		ID:           rec.ID,
		ClientID:     rec.ClientID,
		ClientName:   rec.ClientName,
		UnitID:       rec.UnitID,
		UnitName:     rec.UnitName,
		Designation:  rec.Designation,
		Components:   rec.Components,
		Rules:        rules,
		PFBasis:      rec.PFBasis,
		RoomRentType: rec.RoomRentType,
		IsActive:     rec.IsActive,
	}
}
