package client

import "context"

type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context, activeOnly bool) ([]Client, error)
	Update(ctx context.Context, req UpdateClientRequest) error
	Delete(ctx context.Context, id string) error
}

type UnitRepository interface {
	Create(ctx context.Context, u Unit) (Unit, error)
	GetByID(ctx context.Context, id string) (Unit, error)
	GetByClientID(ctx context.Context, clientID string) ([]Unit, error)
	Delete(ctx context.Context, id string) error
}
