package rates

import (
	"context"

	"logixy_crm/internal/models"

	"github.com/rotisserie/eris"
)

// Engine validates searches, asks its Provider for observations and summarizes them.
// It keeps no state between calls.
type Engine struct {
	provider Provider
	window   int
}

// NewEngine wires a provider; window <= 0 uses DefaultWindow.
func NewEngine(p Provider, window int) *Engine {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Engine{provider: p, window: window}
}

// Recommendation is a search result with its derived summary.
// Summary is nil when there are no observations.
type Recommendation struct {
	Route        Route                         `json:"route"`
	Observations []models.PriceObservation     `json:"results"`
	Summary      *models.RecommendationSummary `json:"summary"`
}

// Search returns observations for a valid route.
func (e *Engine) Search(ctx context.Context, r Route) ([]models.PriceObservation, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	obs, err := e.provider.Observations(ctx, r)
	if err != nil {
		return nil, eris.Wrap(err, "rates: search")
	}
	if obs == nil {
		obs = []models.PriceObservation{}
	}
	return obs, nil
}

// Recommend searches and summarizes in one call.
func (e *Engine) Recommend(ctx context.Context, r Route) (Recommendation, error) {
	obs, err := e.Search(ctx, r)
	if err != nil {
		return Recommendation{}, err
	}
	rec := Recommendation{Route: r, Observations: obs}
	if s, ok := SummarizeWindow(obs, e.window); ok {
		rec.Summary = &s
	}
	return rec, nil
}
