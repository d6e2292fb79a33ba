package service

import (
	"cmp"
	"context"
	"math"
	"slices"

	"logixy_crm/internal/models"
	"logixy_crm/internal/repository"

	"golang.org/x/sync/errgroup"
)

const (
	recentQuotationsLimit = 5
	topRoutesLimit        = 5
)

// knownStatuses fixes the order of the status breakdown.
var knownStatuses = []string{
	models.StatusNew,
	models.StatusPotential,
	models.StatusActive,
	models.StatusLost,
	models.StatusDeclined,
	models.StatusBringsOwn,
	models.StatusClientLeft,
}

type DashboardService struct {
	clients    repository.ClientRepo
	quotations repository.QuotationRepo
}

func NewDashboardService(clients repository.ClientRepo, quotations repository.QuotationRepo) *DashboardService {
	return &DashboardService{clients: clients, quotations: quotations}
}

// Stats loads clients and quotations concurrently and aggregates them.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var (
		clients    []models.Client
		quotations []models.Quotation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.clients.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		quotations, err = s.quotations.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}

	return computeStats(clients, quotations), nil
}

func computeStats(clients []models.Client, quotations []models.Quotation) DashboardStats {
	st := DashboardStats{
		TotalClients:     len(clients),
		TotalQuotations:  len(quotations),
		RecentQuotations: []models.Quotation{},
		StatusCounts:     []StatusCount{},
		TopRoutes:        []RouteCount{},
	}

	byStatus := make(map[string]int, len(knownStatuses))
	holdings := make(map[string]struct{})
	for _, c := range clients {
		byStatus[c.Status]++
		switch c.Status {
		case models.StatusActive:
			st.ActiveClients++
		case models.StatusPotential, models.StatusNew:
			st.PotentialClients++
		}
		if c.Holding != "" {
			holdings[c.Holding] = struct{}{}
		}
	}
	st.Holdings = len(holdings)

	for _, status := range knownStatuses {
		st.StatusCounts = append(st.StatusCounts, StatusCount{Status: status, Count: byStatus[status]})
		delete(byStatus, status)
	}
	var other []StatusCount
	for status, n := range byStatus {
		other = append(other, StatusCount{Status: status, Count: n})
	}
	slices.SortFunc(other, func(a, b StatusCount) int { return cmp.Compare(a.Status, b.Status) })
	st.StatusCounts = append(st.StatusCounts, other...)

	byRoute := make(map[string]int)
	var total float64
	for _, q := range quotations {
		total += q.Total
		byRoute[q.Route()]++
	}
	st.TotalValue = roundCents(total)
	if len(quotations) > 0 {
		st.AverageQuotation = roundCents(total / float64(len(quotations)))
	}

	recent := slices.Clone(quotations)
	slices.SortStableFunc(recent, newestFirst)
	if len(recent) > recentQuotationsLimit {
		recent = recent[:recentQuotationsLimit]
	}
	if recent != nil {
		st.RecentQuotations = recent
	}

	for route, n := range byRoute {
		st.TopRoutes = append(st.TopRoutes, RouteCount{Route: route, Count: n})
	}
	slices.SortFunc(st.TopRoutes, func(a, b RouteCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Route, b.Route)
	})
	if len(st.TopRoutes) > topRoutesLimit {
		st.TopRoutes = st.TopRoutes[:topRoutesLimit]
	}

	return st
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
