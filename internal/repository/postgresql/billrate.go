package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/garudasec/billing-backend-go/internal/domain/billrate"
	"github.com/garudasec/billing-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type billRateRepository struct {
	db *database.DB
}

func NewBillRateRepository(db *database.DB) billrate.BillRateRepository {
	return &billRateRepository{db: db}
}

func (r *billRateRepository) Create(ctx context.Context, e billrate.BillRateEstimate) (billrate.BillRateEstimate, error) {
	q := GetQuerier(ctx, r.db)

	components, err := json.Marshal(e.Components)
	if err != nil {
		return billrate.BillRateEstimate{}, fmt.Errorf("failed to marshal components: %w", err)
	}
	rules, err := json.Marshal(e.Rules)
	if err != nil {
		return billrate.BillRateEstimate{}, fmt.Errorf("failed to marshal rules: %w", err)
	}
	statutory, err := json.Marshal(e.Statutory)
	if err != nil {
		return billrate.BillRateEstimate{}, fmt.Errorf("failed to marshal statutory amounts: %w", err)
	}

	query := `
		INSERT INTO bill_rate_estimates (
			client_id, unit_id, rate_record_id, designation, nos, month_days,
			components, rules, pf_basis,
			gross, statutory, sub_total, service_charge, per_head_total, grand_total
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`

	out := e
	err = q.QueryRow(ctx, query,
		e.ClientID, e.UnitID, e.RateRecordID, e.Designation, e.Nos, e.MonthDays,
		components, rules, e.PFBasis,
		e.Gross, statutory, e.SubTotal, e.ServiceCharge, e.PerHeadTotal, e.GrandTotal,
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return billrate.BillRateEstimate{}, fmt.Errorf("failed to create bill rate estimate: %w", err)
	}

	return out, nil
}

const billRateSelectColumns = `
	e.id, e.client_id, e.unit_id, e.rate_record_id, e.designation, e.nos, e.month_days,
	e.components, e.rules, e.pf_basis,
	e.gross, e.statutory, e.sub_total, e.service_charge, e.per_head_total, e.grand_total,
	e.created_at, e.updated_at,
	c.name AS client_name, u.name AS unit_name
`

func scanBillRateEstimate(row pgx.Row) (billrate.BillRateEstimate, error) {
	var e billrate.BillRateEstimate
	var components, rules, statutory []byte

	err := row.Scan(
		&e.ID, &e.ClientID, &e.UnitID, &e.RateRecordID, &e.Designation, &e.Nos, &e.MonthDays,
		&components, &rules, &e.PFBasis,
		&e.Gross, &statutory, &e.SubTotal, &e.ServiceCharge, &e.PerHeadTotal, &e.GrandTotal,
		&e.CreatedAt, &e.UpdatedAt,
		&e.ClientName, &e.UnitName,
	)
	if err != nil {
		return billrate.BillRateEstimate{}, err
	}

	if err := json.Unmarshal(components, &e.Components); err != nil {
		return billrate.BillRateEstimate{}, fmt.Errorf("failed to unmarshal components: %w", err)
	}
	if err := json.Unmarshal(rules, &e.Rules); err != nil {
		return billrate.BillRateEstimate{}, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	if err := json.Unmarshal(statutory, &e.Statutory); err != nil {
		return billrate.BillRateEstimate{}, fmt.Errorf("failed to unmarshal statutory amounts: %w", err)
	}

	return e, nil
}

func (r *billRateRepository) GetByID(ctx context.Context, id string) (billrate.BillRateEstimate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + billRateSelectColumns + `
		FROM bill_rate_estimates e
		JOIN clients c ON c.id = e.client_id
		LEFT JOIN units u ON u.id = e.unit_id
		WHERE e.id = $1
	`

	e, err := scanBillRateEstimate(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billrate.BillRateEstimate{}, billrate.ErrEstimateNotFound
		}
		return billrate.BillRateEstimate{}, fmt.Errorf("failed to get bill rate estimate: %w", err)
	}

	return e, nil
}

func (r *billRateRepository) ListByClient(ctx context.Context, clientID string) ([]billrate.BillRateEstimate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + billRateSelectColumns + `
		FROM bill_rate_estimates e
		JOIN clients c ON c.id = e.client_id
		LEFT JOIN units u ON u.id = e.unit_id
		WHERE e.client_id = $1
		ORDER BY e.created_at DESC
	`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bill rate estimates: %w", err)
	}
	defer rows.Close()

	var estimates []billrate.BillRateEstimate
	for rows.Next() {
		e, err := scanBillRateEstimate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill rate estimate: %w", err)
		}
		estimates = append(estimates, e)
	}

	return estimates, rows.Err()
}

func (r *billRateRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM bill_rate_estimates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill rate estimate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return billrate.ErrEstimateNotFound
	}

	return nil
}
