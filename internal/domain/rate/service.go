package rate

import (
	"context"
)

// RateService defines business logic for rate cards and rate
// resolution at billing time.
type RateService interface {
	CreateRate(ctx context.Context, req CreateRateRequest) (RateResponse, error)
	GetRate(ctx context.Context, id string) (RateResponse, error)
	ListRatesByClient(ctx context.Context, clientID string) ([]RateResponse, error)
	UpdateRate(ctx context.Context, req UpdateRateRequest) (RateResponse, error)
	DeleteRate(ctx context.Context, id string) error

	// Resolve picks the applicable rate card for a posting: a
	// unit-specific card beats a client-wide one, ties fall to the most
	// recently updated card with the conflict flag set.
	Resolve(ctx context.Context, clientID string, unitID *string, designation string) (ResolveResponse, error)
}
