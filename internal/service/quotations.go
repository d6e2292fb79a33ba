package service

import (
	"cmp"
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
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrNegativeAmount    = errors.New("amounts must not be negative")
	ErrInvalidMonth      = errors.New("invalid month: expected YYYY-MM")
	ErrInvalidQuotation  = errors.New("invalid quotation: from and to are required")
	ErrInvalidDate       = errors.New("invalid date: expected YYYY-MM-DD")
)

const (
	quotationCodeFormat = "QT%06d"
	monthLayout         = "2006-01"
	// AllMonths disables the month filter.
	AllMonths = "all"
)

// QuotationColumns is the quotation table layout.
func QuotationColumns() []table.Column[models.Quotation] {
	return []table.Column[models.Quotation]{
		{Key: "code", Title: "Code", Value: func(q models.Quotation) any { return q.Code }, Sortable: true, Searchable: true},
		{Key: "date", Title: "Date", Value: func(q models.Quotation) any { return q.Date }, Sortable: true},
		{Key: "client_name", Title: "Client", Value: func(q models.Quotation) any { return q.ClientName }, Sortable: true, Searchable: true},
		{Key: "from", Title: "From", Value: func(q models.Quotation) any { return q.From }, Sortable: true, Searchable: true},
		{Key: "to", Title: "To", Value: func(q models.Quotation) any { return q.To }, Sortable: true, Searchable: true},
		{Key: "type", Title: "Type", Value: func(q models.Quotation) any { return string(q.ContainerKind) }, Sortable: true},
		{Key: "freight", Title: "Freight", Value: func(q models.Quotation) any { return q.Freight }, Sortable: true},
		{Key: "total", Title: "Total", Value: func(q models.Quotation) any { return q.Total }, Sortable: true},
		{Key: "shipping_line", Title: "Line", Value: func(q models.Quotation) any { return q.ShippingLine }, Sortable: true, Searchable: true},
		{Key: "agent", Title: "Agent", Value: func(q models.Quotation) any { return q.Agent }, Sortable: true, Searchable: true},
		{Key: "sales", Title: "Sales", Value: func(q models.Quotation) any { return q.Sales }, Sortable: true, Searchable: true},
		{Key: "transit", Title: "Transit", Value: func(q models.Quotation) any { return q.TransitDays }, Sortable: true},
	}
}

type QuotationService struct {
	repo    repository.QuotationRepo
	clients repository.ClientRepo
	table   *table.Table[models.Quotation]
	now     func() time.Time

	mu sync.Mutex
}

func NewQuotationService(repo repository.QuotationRepo, clients repository.ClientRepo, now func() time.Time) *QuotationService {
	if now == nil {
		now = time.Now
	}
	return &QuotationService{
		repo:    repo,
		clients: clients,
		table:   table.New(QuotationColumns(), table.WithSearchKeys[models.Quotation]("code", "client_name", "from", "to")),
		now:     now,
	}
}

// normalizeMonth returns "" for no filter.
func normalizeMonth(month string) (string, error) {
	month = strings.TrimSpace(month)
	if month == "" || strings.EqualFold(month, AllMonths) {
		return "", nil
	}
	if _, err := time.Parse(monthLayout, month); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return month, nil
}

// ListQuotations narrows to a YYYY-MM month ("" or "all" for every month) and applies q.
// Without an explicit sort the newest quotations come first.
func (s *QuotationService) ListQuotations(ctx context.Context, month string, q table.Query) (table.Result[models.Quotation], error) {
	month, err := normalizeMonth(month)
	if err != nil {
		return table.Result[models.Quotation]{}, err
	}
	rows, err := s.repo.List(ctx)
	if err != nil {
		return table.Result[models.Quotation]{}, err
	}
	if month != "" {
		rows = slices.DeleteFunc(rows, func(q models.Quotation) bool {
			return !strings.HasPrefix(q.Date, month+"-")
		})
	}
	if q.Sort.Column == "" {
		slices.SortStableFunc(rows, newestFirst)
	}
	return s.table.Apply(rows, q)
}

func newestFirst(a, b models.Quotation) int {
	if c := cmp.Compare(b.Date, a.Date); c != 0 {
		return c
	}
	return cmp.Compare(b.Code, a.Code)
}

// Months lists the distinct YYYY-MM months that have quotations, newest first.
func (s *QuotationService) Months(ctx context.Context) ([]string, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, 12)
	for _, q := range rows {
		if len(q.Date) < len(monthLayout) {
			continue
		}
		m := q.Date[:len(monthLayout)]
		if _, err := time.Parse(monthLayout, m); err != nil {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	slices.Sort(out)
	slices.Reverse(out)
	return out, nil
}

func (s *QuotationService) GetQuotation(ctx context.Context, id string) (models.Quotation, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Quotation{}, err
	}
	if q == nil {
		return models.Quotation{}, ErrQuotationNotFound
	}
	return *q, nil
}

// SaveQuotation validates and stores q. The total is always recomputed
// from the priced components.
func (s *QuotationService) SaveQuotation(ctx context.Context, q models.Quotation) (models.Quotation, error) {
	q.From = strings.TrimSpace(q.From)
	q.To = strings.TrimSpace(q.To)
	if q.From == "" || q.To == "" {
		return models.Quotation{}, ErrInvalidQuotation
	}
	kind, err := models.ParseContainerKind(string(q.ContainerKind))
	if err != nil {
		return models.Quotation{}, err
	}
	q.ContainerKind = kind
	for _, v := range q.Components() {
		if v < 0 {
			return models.Quotation{}, ErrNegativeAmount
		}
	}
	if q.TransitDays < 0 {
		return models.Quotation{}, ErrNegativeAmount
	}
	if q.Date == "" {
		q.Date = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, q.Date); err != nil {
		return models.Quotation{}, fmt.Errorf("%w: %q", ErrInvalidDate, q.Date)
	}

	if q.ClientID != "" {
		c, err := s.clients.Get(ctx, q.ClientID)
		if err != nil {
			return models.Quotation{}, err
		}
		if c == nil {
			return models.Quotation{}, ErrClientNotFound
		}
		q.ClientName = c.Name
	}

	q.Total = q.ComputeTotal()

	s.mu.Lock()
	defer s.mu.Unlock()

	if q.ID == "" {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return models.Quotation{}, err
		}
		q.ID = uuid.NewString()
		q.Code = fmt.Sprintf(quotationCodeFormat, n+1)
	} else {
		existing, err := s.repo.Get(ctx, q.ID)
		if err != nil {
			return models.Quotation{}, err
		}
		if existing == nil {
			return models.Quotation{}, ErrQuotationNotFound
		}
		if q.Code == "" {
			q.Code = existing.Code
		}
	}

	if err := s.repo.Save(ctx, q); err != nil {
		return models.Quotation{}, err
	}
	return q, nil
}
