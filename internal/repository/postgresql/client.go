package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/garudasec/billing-backend-go/internal/domain/client"
	"github.com/garudasec/billing-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (name, address, city, state_code, gstin, pan, contact_name, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, address, city, state_code, gstin, pan, contact_name, phone, email,
			is_active, created_at, updated_at
	`

	var out client.Client
	err := q.QueryRow(ctx, query,
		c.Name, c.Address, c.City, c.StateCode, c.GSTIN, c.PAN, c.ContactName, c.Phone, c.Email,
	).Scan(
		&out.ID, &out.Name, &out.Address, &out.City, &out.StateCode, &out.GSTIN, &out.PAN,
		&out.ContactName, &out.Phone, &out.Email, &out.IsActive, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_clients_name") {
			return client.Client{}, client.ErrClientNameExists
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return out, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, city, state_code, gstin, pan, contact_name, phone, email,
			is_active, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var out client.Client
	err := q.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.Name, &out.Address, &out.City, &out.StateCode, &out.GSTIN, &out.PAN,
		&out.ContactName, &out.Phone, &out.Email, &out.IsActive, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return out, nil
}

func (r *clientRepository) List(ctx context.Context, activeOnly bool) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, city, state_code, gstin, pan, contact_name, phone, email,
			is_active, created_at, updated_at
		FROM clients
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Address, &c.City, &c.StateCode, &c.GSTIN, &c.PAN,
			&c.ContactName, &c.Phone, &c.Email, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *clientRepository) Update(ctx context.Context, req client.UpdateClientRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients SET
			name = COALESCE($2, name),
			address = COALESCE($3, address),
			city = COALESCE($4, city),
			state_code = COALESCE($5, state_code),
			gstin = COALESCE($6, gstin),
			pan = COALESCE($7, pan),
			contact_name = COALESCE($8, contact_name),
			phone = COALESCE($9, phone),
			email = COALESCE($10, email),
			is_active = COALESCE($11, is_active),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.Name, req.Address, req.City, req.StateCode, req.GSTIN, req.PAN,
		req.ContactName, req.Phone, req.Email, req.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE clients SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

type unitRepository struct {
	db *database.DB
}

func NewUnitRepository(db *database.DB) client.UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) Create(ctx context.Context, u client.Unit) (client.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO units (client_id, name, address, city)
		VALUES ($1, $2, $3, $4)
		RETURNING id, client_id, name, address, city, is_active, created_at, updated_at
	`

	var out client.Unit
	err := q.QueryRow(ctx, query, u.ClientID, u.Name, u.Address, u.City).Scan(
		&out.ID, &out.ClientID, &out.Name, &out.Address, &out.City,
		&out.IsActive, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "fk_units_client") {
			return client.Unit{}, client.ErrClientNotFound
		}
		return client.Unit{}, fmt.Errorf("failed to create unit: %w", err)
	}

	return out, nil
}

func (r *unitRepository) GetByID(ctx context.Context, id string) (client.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, client_id, name, address, city, is_active, created_at, updated_at
		FROM units
		WHERE id = $1
	`

	var out client.Unit
	err := q.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.ClientID, &out.Name, &out.Address, &out.City,
		&out.IsActive, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Unit{}, client.ErrUnitNotFound
		}
		return client.Unit{}, fmt.Errorf("failed to get unit: %w", err)
	}

	return out, nil
}

func (r *unitRepository) GetByClientID(ctx context.Context, clientID string) ([]client.Unit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, client_id, name, address, city, is_active, created_at, updated_at
		FROM units
		WHERE client_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	var units []client.Unit
	for rows.Next() {
		var u client.Unit
		if err := rows.Scan(
			&u.ID, &u.ClientID, &u.Name, &u.Address, &u.City,
			&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, u)
	}

	return units, rows.Err()
}

func (r *unitRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE units SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrUnitNotFound
	}

	return nil
}
