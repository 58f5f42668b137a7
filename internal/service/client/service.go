package client

import (
	"context"

	"github.com/garudasec/billing-backend-go/internal/domain/client"
)

type ClientServiceImpl struct {
	clientRepo client.ClientRepository
	unitRepo   client.UnitRepository
}

func NewClientService(clientRepo client.ClientRepository, unitRepo client.UnitRepository) client.ClientService {
	return &ClientServiceImpl{
		clientRepo: clientRepo,
		unitRepo:   unitRepo,
	}
}

func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		StateCode:   req.StateCode,
		GSTIN:       req.GSTIN,
		PAN:         req.PAN,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}

	return toClientResponse(created), nil
}

func (s *ClientServiceImpl) GetClient(ctx context.Context, id string) (client.ClientResponse, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return toClientResponse(c), nil
}

func (s *ClientServiceImpl) ListClients(ctx context.Context, activeOnly bool) ([]client.ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]client.ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = toClientResponse(c)
	}
	return responses, nil
}

func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	if err := s.clientRepo.Update(ctx, req); err != nil {
		return client.ClientResponse{}, err
	}

	return s.GetClient(ctx, req.ID)
}

func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}

func (s *ClientServiceImpl) CreateUnit(ctx context.Context, req client.CreateUnitRequest) (client.UnitResponse, error) {
	if err := req.Validate(); err != nil {
		return client.UnitResponse{}, err
	}

	// Client must exist and be active to take new postings.
	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return client.UnitResponse{}, err
	}

	created, err := s.unitRepo.Create(ctx, client.Unit{
		ClientID: req.ClientID,
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
	})
	if err != nil {
		return client.UnitResponse{}, err
	}

	return toUnitResponse(created), nil
}

func (s *ClientServiceImpl) ListUnits(ctx context.Context, clientID string) ([]client.UnitResponse, error) {
	units, err := s.unitRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]client.UnitResponse, len(units))
	for i, u := range units {
		responses[i] = toUnitResponse(u)
	}
	return responses, nil
}

func (s *ClientServiceImpl) DeleteUnit(ctx context.Context, id string) error {
	return s.unitRepo.Delete(ctx, id)
}

func toClientResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Address:     c.Address,
		City:        c.City,
		StateCode:   c.StateCode,
		GSTIN:       c.GSTIN,
		PAN:         c.PAN,
		ContactName: c.ContactName,
		Phone:       c.Phone,
		Email:       c.Email,
		IsActive:    c.IsActive,
	}
}

func toUnitResponse(u client.Unit) client.UnitResponse {
	return client.UnitResponse{
		ID:       u.ID,
		ClientID: u.ClientID,
		Name:     u.Name,
		Address:  u.Address,
		City:     u.City,
		IsActive: u.IsActive,
	}
}
