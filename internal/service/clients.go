package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"logixy_crm/internal/models"
	"logixy_crm/internal/repository"
	"logixy_crm/internal/table"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidClient  = errors.New("invalid client: name is required")
)

const (
	clientCodeFormat = "SM%06d"
	dateLayout       = "2006-01-02"
)

// ClientColumns is the client table layout.
func ClientColumns() []table.Column[models.Client] {
	return []table.Column[models.Client]{
		{Key: "code", Title: "Code", Value: func(c models.Client) any { return c.Code }, Sortable: true, Searchable: true},
		{Key: "name", Title: "Company", Value: func(c models.Client) any { return c.Name }, Sortable: true, Searchable: true},
		{Key: "edrpou", Title: "EDRPOU", Value: func(c models.Client) any { return c.EDRPOU }, Sortable: true, Searchable: true},
		{Key: "city", Title: "City", Value: func(c models.Client) any { return c.City }, Sortable: true, Searchable: true},
		{Key: "status", Title: "Status", Value: func(c models.Client) any { return c.Status }, Sortable: true, Searchable: true},
		{Key: "sales", Title: "Sales", Value: func(c models.Client) any { return c.Sales }, Sortable: true, Searchable: true},
		{Key: "holding", Title: "Holding", Value: func(c models.Client) any { return c.Holding }, Sortable: true, Searchable: true},
		{Key: "last_contact", Title: "Last contact", Value: func(c models.Client) any { return c.LastContact }, Sortable: true},
		{Key: "company_type", Title: "Type", Value: func(c models.Client) any { return c.CompanyType }, Sortable: true, Searchable: true},
		{Key: "directions", Title: "Directions", Value: func(c models.Client) any { return c.Directions }, Searchable: true},
		{Key: "services", Title: "Services", Value: func(c models.Client) any { return c.Services }, Searchable: true},
	}
}

type ClientService struct {
	repo  repository.ClientRepo
	table *table.Table[models.Client]
	now   func() time.Time

	// serializes code assignment for new clients
	mu sync.Mutex
}

func NewClientService(repo repository.ClientRepo, now func() time.Time, onOpened func(models.Client)) *ClientService {
	if now == nil {
		now = time.Now
	}
	opts := []table.Option[models.Client]{table.WithSearchKeys[models.Client]("name")}
	if onOpened != nil {
		opts = append(opts, table.WithActivate(onOpened))
	}
	return &ClientService{
		repo:  repo,
		table: table.New(ClientColumns(), opts...),
		now:   now,
	}
}

// ListClients applies q to the directory. Without an explicit sort, clients
// are grouped by holding with standalone companies last.
func (s *ClientService) ListClients(ctx context.Context, q table.Query) (table.Result[models.Client], error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return table.Result[models.Client]{}, err
	}
	if q.Sort.Column == "" {
		slices.SortStableFunc(rows, byHoldingEmptyLast)
	}
	return s.table.Apply(rows, q)
}

func byHoldingEmptyLast(a, b models.Client) int {
	switch {
	case a.Holding == "" && b.Holding == "":
		return 0
	case a.Holding == "":
		return 1
	case b.Holding == "":
		return -1
	}
	return strings.Compare(a.Holding, b.Holding)
}

func (s *ClientService) GetClient(ctx context.Context, id string) (models.Client, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Client{}, err
	}
	if c == nil {
		return models.Client{}, ErrClientNotFound
	}
	s.table.Activate(*c)
	return *c, nil
}

// SaveClient creates the client when it has no ID and updates it otherwise.
// New clients get a uuid, the next SM code, status New and today's last contact date.
func (s *ClientService) SaveClient(ctx context.Context, c models.Client) (models.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return models.Client{}, ErrInvalidClient
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return models.Client{}, err
		}
		c.ID = uuid.NewString()
		c.Code = fmt.Sprintf(clientCodeFormat, n+1)
	} else {
		existing, err := s.repo.Get(ctx, c.ID)
		if err != nil {
			return models.Client{}, err
		}
		if existing == nil {
			return models.Client{}, ErrClientNotFound
		}
		if c.Code == "" {
			c.Code = existing.Code
		}
	}

	normalizeClient(&c, s.now())

	if err := s.repo.Save(ctx, c); err != nil {
		return models.Client{}, err
	}
	return c, nil
}

func normalizeClient(c *models.Client, now time.Time) {
	c.Holding = strings.TrimSpace(c.Holding)
	if c.Status == "" {
		c.Status = models.StatusNew
	}
	if c.LastContact == "" {
		c.LastContact = now.Format(dateLayout)
	}
	if c.Directions == nil {
		c.Directions = []string{}
	}
	if c.Services == nil {
		c.Services = []string{}
	}
	if c.Contacts == nil {
		c.Contacts = []models.Contact{}
	}
	for i := range c.Contacts {
		if c.Contacts[i].ID == "" {
			c.Contacts[i].ID = uuid.NewString()
		}
	}
}
