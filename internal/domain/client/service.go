package client

import (
	"context"
)

// ClientService defines business logic for client and unit master data.
type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	GetClient(ctx context.Context, id string) (ClientResponse, error)
	ListClients(ctx context.Context, activeOnly bool) ([]ClientResponse, error)
	UpdateClient(ctx context.Context, req UpdateClientRequest) (ClientResponse, error)
	DeleteClient(ctx context.Context, id string) error

	CreateUnit(ctx context.Context, req CreateUnitRequest) (UnitResponse, error)
	ListUnits(ctx context.Context, clientID string) ([]UnitResponse, error)
	DeleteUnit(ctx context.Context, id string) error
}
