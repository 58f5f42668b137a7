package billrate

import (
	"context"
)

// BillRateService defines business logic for bill-rate estimates.
type BillRateService interface {
	// Estimate computes totals without persisting anything.
	Estimate(ctx context.Context, req EstimateRequest) (EstimateResponse, error)
	// SaveEstimate computes and stores a named estimate snapshot.
	SaveEstimate(ctx context.Context, req EstimateRequest) (EstimateResponse, error)
	GetEstimate(ctx context.Context, id string) (EstimateResponse, error)
	ListEstimatesByClient(ctx context.Context, clientID string) ([]EstimateResponse, error)
	DeleteEstimate(ctx context.Context, id string) error
}
