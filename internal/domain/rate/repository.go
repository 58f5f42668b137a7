package rate

import "context"

type RateRepository interface {
	Create(ctx context.Context, r RateRecord) (RateRecord, error)
	GetByID(ctx context.Context, id string) (RateRecord, error)
	// GetCandidates returns every active record for the client and
	// designation, both unit-specific and client-wide.
	GetCandidates(ctx context.Context, clientID, designation string) ([]RateRecord, error)
	ListByClient(ctx context.Context, clientID string) ([]RateRecord, error)
	Update(ctx context.Context, req UpdateRateRequest) error
	Delete(ctx context.Context, id string) error
}
