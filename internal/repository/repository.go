package repository

import (
	"context"
	"database/sql"

	"logixy_crm/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type ClientRepo interface {
	Save(ctx context.Context, c models.Client) error
	Get(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Count(ctx context.Context) (int, error)
}

type QuotationRepo interface {
	Save(ctx context.Context, q models.Quotation) error
	Get(ctx context.Context, id string) (*models.Quotation, error)
	List(ctx context.Context) ([]models.Quotation, error)
	Count(ctx context.Context) (int, error)
	// ListByRoute returns quotations on a route dated on or after since (YYYY-MM-DD), oldest first.
	ListByRoute(ctx context.Context, from, to string, kind models.ContainerKind, since string) ([]models.Quotation, error)
}

type Repository struct {
	Clients    ClientRepo
	Quotations QuotationRepo
	Auth       Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Clients:    NewClientSQLite(db),
		Quotations: NewQuotationSQLite(db),
		Auth:       NewUserRepository(db),
	}
}
