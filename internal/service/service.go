package service

import (
	"context"
	"time"

	"logixy_crm/internal/models"
	"logixy_crm/internal/rates"
	"logixy_crm/internal/repository"
	"logixy_crm/internal/table"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Clients manages the client directory.
type Clients interface {
	ListClients(ctx context.Context, q table.Query) (table.Result[models.Client], error)
	GetClient(ctx context.Context, id string) (models.Client, error)
	SaveClient(ctx context.Context, c models.Client) (models.Client, error)
}

// Quotations manages issued price offers.
type Quotations interface {
	ListQuotations(ctx context.Context, month string, q table.Query) (table.Result[models.Quotation], error)
	Months(ctx context.Context) ([]string, error)
	GetQuotation(ctx context.Context, id string) (models.Quotation, error)
	SaveQuotation(ctx context.Context, q models.Quotation) (models.Quotation, error)
}

// RateSearch answers "what should this route cost" queries.
type RateSearch interface {
	SearchRates(ctx context.Context, from, to, kind string) (rates.Recommendation, error)
}

// Dashboard exposes read-only aggregate figures.
type Dashboard interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

// Service aggregates all sub-services.
type Service struct {
	Clients
	Quotations
	RateSearch
	Dashboard
	Authorization
}

// Deps carries what the services need beyond the repositories.
type Deps struct {
	Engine     *rates.Engine
	SigningKey string
	TokenTTL   time.Duration
	// OnClientOpened is called each time a single client record is read.
	OnClientOpened func(models.Client)
	Now            func() time.Time
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, deps Deps) *Service {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	clients := NewClientService(repos.Clients, deps.Now, deps.OnClientOpened)
	return &Service{
		Clients:       clients,
		Quotations:    NewQuotationService(repos.Quotations, repos.Clients, deps.Now),
		RateSearch:    NewRateSearchService(deps.Engine),
		Dashboard:     NewDashboardService(repos.Clients, repos.Quotations),
		Authorization: NewAuthService(repos.Auth, deps.SigningKey, deps.TokenTTL),
	}
}
