package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"logixy_crm/internal/models"
)

type ClientSQLite struct {
	db *sql.DB
}

func NewClientSQLite(db *sql.DB) *ClientSQLite {
	return &ClientSQLite{db: db}
}

var _ ClientRepo = (*ClientSQLite)(nil)

const (
	clientColumns = `id, code, name, edrpou, vat, city, status, sales, holding, last_contact, website, address, ` +
		`source, company_type, directions, services, cargo, what_ships, working_since, notes, contacts`

	upsertClientSQL = `
		INSERT INTO clients (` + clientColumns + `, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			code=excluded.code,
			name=excluded.name,
			edrpou=excluded.edrpou,
			vat=excluded.vat,
			city=excluded.city,
			status=excluded.status,
			sales=excluded.sales,
			holding=excluded.holding,
			last_contact=excluded.last_contact,
			website=excluded.website,
			address=excluded.address,
			source=excluded.source,
			company_type=excluded.company_type,
			directions=excluded.directions,
			services=excluded.services,
			cargo=excluded.cargo,
			what_ships=excluded.what_ships,
			working_since=excluded.working_since,
			notes=excluded.notes,
			contacts=excluded.contacts,
			updated_at=excluded.updated_at
	`

	selectClientByIDSQL = `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`
	selectClientsSQL    = `SELECT ` + clientColumns + ` FROM clients ORDER BY code ASC`
	countClientsSQL     = `SELECT COUNT(*) FROM clients`
)

// Save inserts the client or replaces the row with the same id.
func (r *ClientSQLite) Save(ctx context.Context, c models.Client) error {
	directions, err := marshalList(c.Directions)
	if err != nil {
		return fmt.Errorf("marshal directions for client %q: %w", c.ID, err)
	}
	services, err := marshalList(c.Services)
	if err != nil {
		return fmt.Errorf("marshal services for client %q: %w", c.ID, err)
	}
	contacts, err := marshalList(c.Contacts)
	if err != nil {
		return fmt.Errorf("marshal contacts for client %q: %w", c.ID, err)
	}

	_, err = r.db.ExecContext(ctx, upsertClientSQL,
		c.ID, c.Code, c.Name, c.EDRPOU, c.VAT, c.City, c.Status, c.Sales, c.Holding,
		c.LastContact, c.Website, c.Address, c.Source, c.CompanyType,
		directions, services,
		c.Cargo, c.WhatShips, c.WorkingSince, c.Notes,
		contacts,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert client %q: %w", c.ID, err)
	}
	return nil
}

// Get returns (nil, nil) when no client has the id.
func (r *ClientSQLite) Get(ctx context.Context, id string) (*models.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, selectClientByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select client %q: %w", id, err)
	}
	return &c, nil
}

// List returns every client ordered by code.
func (r *ClientSQLite) List(ctx context.Context) ([]models.Client, error) {
	rows, err := r.db.QueryContext(ctx, selectClientsSQL)
	if err != nil {
		return nil, fmt.Errorf("select clients: %w", err)
	}
	defer rows.Close()

	out := make([]models.Client, 0, 64)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countClientsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (models.Client, error) {
	var (
		c                              models.Client
		directions, services, contacts string
	)
	if err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.EDRPOU, &c.VAT, &c.City, &c.Status, &c.Sales, &c.Holding,
		&c.LastContact, &c.Website, &c.Address, &c.Source, &c.CompanyType,
		&directions, &services,
		&c.Cargo, &c.WhatShips, &c.WorkingSince, &c.Notes,
		&contacts,
	); err != nil {
		return models.Client{}, err
	}

	var err error
	if c.Directions, err = unmarshalList[string](directions); err != nil {
		return models.Client{}, fmt.Errorf("directions: %w", err)
	}
	if c.Services, err = unmarshalList[string](services); err != nil {
		return models.Client{}, fmt.Errorf("services: %w", err)
	}
	if c.Contacts, err = unmarshalList[models.Contact](contacts); err != nil {
		return models.Client{}, fmt.Errorf("contacts: %w", err)
	}
	return c, nil
}
