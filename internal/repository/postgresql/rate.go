package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/domain/rate"
	"github.com/garudasec/billing-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rateRepository struct {
	db *database.DB
}

func NewRateRepository(db *database.DB) rate.RateRepository {
	return &rateRepository{db: db}
}

// Components and rules are persisted as JSONB so the rate card keeps
// its open component set without a migration per new component.
func (r *rateRepository) Create(ctx context.Context, rec rate.RateRecord) (rate.RateRecord, error) {
	q := GetQuerier(ctx, r.db)

	components, err := json.Marshal(rec.Components)
	if err != nil {
		return rate.RateRecord{}, fmt.Errorf("failed to marshal components: %w", err)
	}
	rules, err := json.Marshal(rec.Rules)
	if err != nil {
		return rate.RateRecord{}, fmt.Errorf("failed to marshal rules: %w", err)
	}

	query := `
		INSERT INTO rate_records (client_id, unit_id, designation, components, rules, pf_basis, room_rent_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active, created_at, updated_at
	`

	out := rec
	err = q.QueryRow(ctx, query,
		rec.ClientID, rec.UnitID, rec.Designation, components, rules, rec.PFBasis, rec.RoomRentType,
	).Scan(&out.ID, &out.IsActive, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_rate_records_scope") {
			return rate.RateRecord{}, rate.ErrRateRecordExists
		}
		return rate.RateRecord{}, fmt.Errorf("failed to create rate record: %w", err)
	}

	return out, nil
}

const rateSelectColumns = `
	r.id, r.client_id, r.unit_id, r.designation, r.components, r.rules,
	r.pf_basis, r.room_rent_type, r.is_active, r.created_at, r.updated_at,
	c.name AS client_name, u.name AS unit_name
`

func scanRateRecord(row pgx.Row) (rate.RateRecord, error) {
	var rec rate.RateRecord
	var components, rules []byte

	err := row.Scan(
		&rec.ID, &rec.ClientID, &rec.UnitID, &rec.Designation, &components, &rules,
		&rec.PFBasis, &rec.RoomRentType, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.ClientName, &rec.UnitName,
	)
	if err != nil {
		return rate.RateRecord{}, err
	}

	if err := json.Unmarshal(components, &rec.Components); err != nil {
		return rate.RateRecord{}, fmt.Errorf("failed to unmarshal components: %w", err)
	}
	if err := json.Unmarshal(rules, &rec.Rules); err != nil {
		return rate.RateRecord{}, fmt.Errorf("failed to unmarshal rules: %w", err)
	}

	return rec, nil
}

func (r *rateRepository) GetByID(ctx context.Context, id string) (rate.RateRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + rateSelectColumns + `
		FROM rate_records r
		JOIN clients c ON c.id = r.client_id
		LEFT JOIN units u ON u.id = r.unit_id
		WHERE r.id = $1
	`

	rec, err := scanRateRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rate.RateRecord{}, rate.ErrRateRecordNotFound
		}
		return rate.RateRecord{}, fmt.Errorf("failed to get rate record: %w", err)
	}

	return rec, nil
}

func (r *rateRepository) GetCandidates(ctx context.Context, clientID, designation string) ([]rate.RateRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + rateSelectColumns + `
		FROM rate_records r
		JOIN clients c ON c.id = r.client_id
		LEFT JOIN units u ON u.id = r.unit_id
		WHERE r.client_id = $1 AND LOWER(r.designation) = LOWER($2) AND r.is_active = TRUE
	`

	return r.queryRecords(ctx, q, query, clientID, designation)
}

func (r *rateRepository) ListByClient(ctx context.Context, clientID string) ([]rate.RateRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + rateSelectColumns + `
		FROM rate_records r
		JOIN clients c ON c.id = r.client_id
		LEFT JOIN units u ON u.id = r.unit_id
		WHERE r.client_id = $1
		ORDER BY r.designation, r.unit_id NULLS FIRST
	`

	return r.queryRecords(ctx, q, query, clientID)
}

func (r *rateRepository) queryRecords(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]rate.RateRecord, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate records: %w", err)
	}
	defer rows.Close()

	var records []rate.RateRecord
	for rows.Next() {
		rec, err := scanRateRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rate record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *rateRepository) Update(ctx context.Context, req rate.UpdateRateRequest) error {
	q := GetQuerier(ctx, r.db)

	var components, rules []byte
	var err error
	if req.Components != nil {
		if components, err = json.Marshal(billing.EarningComponents(req.Components)); err != nil {
			return fmt.Errorf("failed to marshal components: %w", err)
		}
	}
	if req.Rules != nil {
		rs := make(billing.RuleSet, len(req.Rules))
		for key, rule := range req.Rules {
			rs[key] = billing.Rule{Basis: rule.Basis, Rate: rule.Rate}
		}
		if rules, err = json.Marshal(rs); err != nil {
			return fmt.Errorf("failed to marshal rules: %w", err)
		}
	}

	query := `
		UPDATE rate_records SET
			components = COALESCE($2, components),
			rules = COALESCE($3, rules),
			pf_basis = COALESCE($4, pf_basis),
			room_rent_type = COALESCE($5, room_rent_type),
			is_active = COALESCE($6, is_active),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, components, rules, req.PFBasis, req.RoomRentType, req.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update rate record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rate.ErrRateRecordNotFound
	}

	return nil
}

func (r *rateRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE rate_records SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rate record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rate.ErrRateRecordNotFound
	}

	return nil
}
