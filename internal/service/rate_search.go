package service

import (
	"context"
	"errors"

	"logixy_crm/internal/rates"
)

var errNoEngine = errors.New("rate search is not configured")

type RateSearchService struct {
	engine *rates.Engine
}

func NewRateSearchService(engine *rates.Engine) *RateSearchService {
	return &RateSearchService{engine: engine}
}

// SearchRates validates the route and returns observations with their summary.
// Bad input is reported as rates.ErrInvalidArgument.
func (s *RateSearchService) SearchRates(ctx context.Context, from, to, kind string) (rates.Recommendation, error) {
	if s.engine == nil {
		return rates.Recommendation{}, errNoEngine
	}
	r, err := rates.NewRoute(from, to, kind)
	if err != nil {
		return rates.Recommendation{}, err
	}
	return s.engine.Recommend(ctx, r)
}
