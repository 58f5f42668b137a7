package billrate

import "context"

type BillRateRepository interface {
	Create(ctx context.Context, e BillRateEstimate) (BillRateEstimate, error)
	GetByID(ctx context.Context, id string) (BillRateEstimate, error)
	ListByClient(ctx context.Context, clientID string) ([]BillRateEstimate, error)
	Delete(ctx context.Context, id string) error
}
