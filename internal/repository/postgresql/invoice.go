package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/garudasec/billing-backend-go/internal/domain/invoice"
	"github.com/garudasec/billing-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create persists the invoice header and every line item. Callers run
// it inside WithTransaction so a failed line insert rolls the header
// back too.
func (r *invoiceRepository) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	headerQuery := `
		INSERT INTO invoices (
			invoice_no, client_id, unit_id, period_month, period_year, status,
			cgst_percent, sgst_percent, igst_percent, tds_percent, others,
			sub_total, cgst_amount, sgst_amount, igst_amount, tax_total,
			grand_total, tds_amount, net_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at, updated_at
	`

	out := inv
	err := q.QueryRow(ctx, headerQuery,
		inv.InvoiceNo, inv.ClientID, inv.UnitID, inv.PeriodMonth, inv.PeriodYear, inv.Status,
		inv.CGSTPercent, inv.SGSTPercent, inv.IGSTPercent, inv.TDSPercent, inv.Others,
		inv.SubTotal, inv.CGSTAmount, inv.SGSTAmount, inv.IGSTAmount, inv.TaxTotal,
		inv.GrandTotal, inv.TDSAmount, inv.NetAmount,
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	lineQuery := `
		INSERT INTO invoice_line_items (
			invoice_id, service, nop, duty, rate, month_days,
			sc_percent, pf_percent, esi_percent, lwf_rate, levy_rate,
			amount, sc_amount, pf_amount, esi_amount, lwf_amount, levy_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	out.LineItems = make([]invoice.LineItem, len(inv.LineItems))
	for i, li := range inv.LineItems {
		li.InvoiceID = out.ID
		err := q.QueryRow(ctx, lineQuery,
			out.ID, li.Service, li.NOP, li.Duty, li.Rate, li.MonthDays,
			li.SCPercent, li.PFPercent, li.ESIPercent, li.LWFRate, li.LevyRate,
			li.Amount, li.SCAmount, li.PFAmount, li.ESIAmount, li.LWFAmount, li.LevyAmount,
		).Scan(&li.ID)
		if err != nil {
			return invoice.Invoice{}, fmt.Errorf("failed to create invoice line item: %w", err)
		}
		out.LineItems[i] = li
	}

	return out, nil
}

const invoiceSelectColumns = `
	i.id, i.invoice_no, i.client_id, i.unit_id, i.period_month, i.period_year, i.status,
	i.cgst_percent, i.sgst_percent, i.igst_percent, i.tds_percent, i.others,
	i.sub_total, i.cgst_amount, i.sgst_amount, i.igst_amount, i.tax_total,
	i.grand_total, i.tds_amount, i.net_amount,
	i.issued_at, i.created_at, i.updated_at,
	c.name AS client_name, c.state_code AS client_state_code, c.gstin AS client_gstin,
	u.name AS unit_name
`

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.InvoiceNo, &inv.ClientID, &inv.UnitID, &inv.PeriodMonth, &inv.PeriodYear, &inv.Status,
		&inv.CGSTPercent, &inv.SGSTPercent, &inv.IGSTPercent, &inv.TDSPercent, &inv.Others,
		&inv.SubTotal, &inv.CGSTAmount, &inv.SGSTAmount, &inv.IGSTAmount, &inv.TaxTotal,
		&inv.GrandTotal, &inv.TDSAmount, &inv.NetAmount,
		&inv.IssuedAt, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.ClientName, &inv.ClientStateCode, &inv.ClientGSTIN, &inv.UnitName,
	)
	return inv, err
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceSelectColumns + `
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		LEFT JOIN units u ON u.id = i.unit_id
		WHERE i.id = $1
	`

	inv, err := scanInvoice(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	lineQuery := `
		SELECT id, invoice_id, service, nop, duty, rate, month_days,
			sc_percent, pf_percent, esi_percent, lwf_rate, levy_rate,
			amount, sc_amount, pf_amount, esi_amount, lwf_amount, levy_amount
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY id
	`

	rows, err := q.Query(ctx, lineQuery, id)
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var li invoice.LineItem
		if err := rows.Scan(
			&li.ID, &li.InvoiceID, &li.Service, &li.NOP, &li.Duty, &li.Rate, &li.MonthDays,
			&li.SCPercent, &li.PFPercent, &li.ESIPercent, &li.LWFRate, &li.LevyRate,
			&li.Amount, &li.SCAmount, &li.PFAmount, &li.ESIAmount, &li.LWFAmount, &li.LevyAmount,
		); err != nil {
			return invoice.Invoice{}, fmt.Errorf("failed to scan invoice line item: %w", err)
		}
		inv.LineItems = append(inv.LineItems, li)
	}

	return inv, rows.Err()
}

func (r *invoiceRepository) List(ctx context.Context, filter invoice.ListInvoiceFilter) ([]invoice.Invoice, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.ClientID != "" {
		where += fmt.Sprintf(" AND i.client_id = $%d", argPos)
		args = append(args, filter.ClientID)
		argPos++
	}
	if filter.PeriodMonth > 0 {
		where += fmt.Sprintf(" AND i.period_month = $%d", argPos)
		args = append(args, filter.PeriodMonth)
		argPos++
	}
	if filter.PeriodYear > 0 {
		where += fmt.Sprintf(" AND i.period_year = $%d", argPos)
		args = append(args, filter.PeriodYear)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND i.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM invoices i` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := `
		SELECT ` + invoiceSelectColumns + `
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		LEFT JOIN units u ON u.id = i.unit_id
	` + where + fmt.Sprintf(" ORDER BY i.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, total, rows.Err()
}

// NextSequence increments and returns the per-year invoice counter.
func (r *invoiceRepository) NextSequence(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoice_sequences (year, last_seq)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_seq = invoice_sequences.last_seq + 1
		RETURNING last_seq
	`

	var seq int
	if err := q.QueryRow(ctx, query, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to advance invoice sequence: %w", err)
	}

	return seq, nil
}

func (r *invoiceRepository) MarkIssued(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices SET status = $2, issued_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	tag, err := q.Exec(ctx, query, id, invoice.InvoiceStatusIssued, invoice.InvoiceStatusDraft)
	if err != nil {
		return fmt.Errorf("failed to issue invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already issued; disambiguate for the caller.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return invoice.ErrAlreadyIssued
	}

	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM invoices WHERE id = $1 AND status = $2`, id, invoice.InvoiceStatusDraft)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return invoice.ErrAlreadyIssued
	}

	return nil
}
