package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"logixy_crm/internal/models"
)

type QuotationSQLite struct {
	db *sql.DB
}

func NewQuotationSQLite(db *sql.DB) *QuotationSQLite { return &QuotationSQLite{db: db} }

var _ QuotationRepo = (*QuotationSQLite)(nil)

const (
	quotationColumns = `id, code, date, origin, destination, container_type, freight, dpp, forwarding, t1, auto, rail, ` +
		`total, shipping_line, agent, sales, transit_days, client_id, client_name`

	upsertQuotationSQL = `
		INSERT INTO quotations (` + quotationColumns + `, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			code=excluded.code,
			date=excluded.date,
			origin=excluded.origin,
			destination=excluded.destination,
			container_type=excluded.container_type,
			freight=excluded.freight,
			dpp=excluded.dpp,
			forwarding=excluded.forwarding,
			t1=excluded.t1,
			auto=excluded.auto,
			rail=excluded.rail,
			total=excluded.total,
			shipping_line=excluded.shipping_line,
			agent=excluded.agent,
			sales=excluded.sales,
			transit_days=excluded.transit_days,
			client_id=excluded.client_id,
			client_name=excluded.client_name,
			updated_at=excluded.updated_at
	`

	selectQuotationByIDSQL = `SELECT ` + quotationColumns + ` FROM quotations WHERE id = ?`
	selectQuotationsSQL    = `SELECT ` + quotationColumns + ` FROM quotations ORDER BY code ASC`
	countQuotationsSQL     = `SELECT COUNT(*) FROM quotations`

	// lower() folds ASCII only; route labels are stored as typed.
	selectQuotationsByRouteSQL = `SELECT ` + quotationColumns + ` FROM quotations
		WHERE lower(origin) = lower(?) AND lower(destination) = lower(?) AND container_type = ? AND date >= ?
		ORDER BY date ASC, code ASC`
)

// Save inserts the quotation or replaces the row with the same id.
func (r *QuotationSQLite) Save(ctx context.Context, q models.Quotation) error {
	var clientID *string
	if q.ClientID != "" {
		clientID = &q.ClientID
	}

	_, err := r.db.ExecContext(ctx, upsertQuotationSQL,
		q.ID, q.Code, q.Date, q.From, q.To, string(q.ContainerKind),
		q.Freight, q.DPP, q.Forwarding, q.T1, q.Auto, q.Rail, q.Total,
		q.ShippingLine, q.Agent, q.Sales, q.TransitDays,
		clientID, q.ClientName,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert quotation %q: %w", q.ID, err)
	}
	return nil
}

// Get returns (nil, nil) when no quotation has the id.
func (r *QuotationSQLite) Get(ctx context.Context, id string) (*models.Quotation, error) {
	q, err := scanQuotation(r.db.QueryRowContext(ctx, selectQuotationByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select quotation %q: %w", id, err)
	}
	return &q, nil
}

// List returns every quotation ordered by code.
func (r *QuotationSQLite) List(ctx context.Context) ([]models.Quotation, error) {
	return r.query(ctx, selectQuotationsSQL)
}

func (r *QuotationSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countQuotationsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quotations: %w", err)
	}
	return n, nil
}

func (r *QuotationSQLite) ListByRoute(ctx context.Context, from, to string, kind models.ContainerKind, since string) ([]models.Quotation, error) {
	return r.query(ctx, selectQuotationsByRouteSQL,
		strings.TrimSpace(from), strings.TrimSpace(to), string(kind), since)
}

func (r *QuotationSQLite) query(ctx context.Context, q string, args ...any) ([]models.Quotation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select quotations: %w", err)
	}
	defer rows.Close()

	out := make([]models.Quotation, 0, 64)
	for rows.Next() {
		qt, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		out = append(out, qt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanQuotation(row rowScanner) (models.Quotation, error) {
	var (
		q        models.Quotation
		kind     string
		clientID sql.NullString
	)
	if err := row.Scan(
		&q.ID, &q.Code, &q.Date, &q.From, &q.To, &kind,
		&q.Freight, &q.DPP, &q.Forwarding, &q.T1, &q.Auto, &q.Rail, &q.Total,
		&q.ShippingLine, &q.Agent, &q.Sales, &q.TransitDays,
		&clientID, &q.ClientName,
	); err != nil {
		return models.Quotation{}, err
	}
	q.ContainerKind = models.ContainerKind(kind)
	q.ClientID = clientID.String
	return q, nil
}
