package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"logixy_crm/internal/models"
)

var fixedNow = func() time.Time { return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC) }

// memClients is an in-memory repository.ClientRepo.
type memClients struct {
	mu      sync.Mutex
	rows    []models.Client
	listErr error
	saved   int
}

func (m *memClients) Save(_ context.Context, c models.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved++
	for i := range m.rows {
		if m.rows[i].ID == c.ID {
			m.rows[i] = c
			return nil
		}
	}
	m.rows = append(m.rows, c)
	return nil
}

func (m *memClients) Get(_ context.Context, id string) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memClients) List(context.Context) ([]models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return slices.Clone(m.rows), nil
}

func (m *memClients) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

// memQuotations is an in-memory repository.QuotationRepo.
type memQuotations struct {
	mu      sync.Mutex
	rows    []models.Quotation
	listErr error
}

func (m *memQuotations) Save(_ context.Context, q models.Quotation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == q.ID {
			m.rows[i] = q
			return nil
		}
	}
	m.rows = append(m.rows, q)
	return nil
}

func (m *memQuotations) Get(_ context.Context, id string) (*models.Quotation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.rows {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, nil
}

func (m *memQuotations) List(context.Context) ([]models.Quotation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return slices.Clone(m.rows), nil
}

func (m *memQuotations) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

func (m *memQuotations) ListByRoute(_ context.Context, from, to string, kind models.ContainerKind, since string) ([]models.Quotation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Quotation
	for _, q := range m.rows {
		if strings.EqualFold(q.From, from) && strings.EqualFold(q.To, to) && q.ContainerKind == kind && q.Date >= since {
			out = append(out, q)
		}
	}
	return out, nil
}
