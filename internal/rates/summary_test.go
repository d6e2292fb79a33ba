package rates

import (
	"math/rand/v2"
	"testing"

	"logixy_crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricesToObs(prices ...float64) []models.PriceObservation {
	out := make([]models.PriceObservation, len(prices))
	for i, p := range prices {
		out[i] = models.PriceObservation{Price: p, ContainerKind: models.Container40}
	}
	return out
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()
	s, ok := Summarize(nil)
	assert.False(t, ok)
	assert.Equal(t, models.RecommendationSummary{}, s)

	s, ok = Summarize([]models.PriceObservation{})
	assert.False(t, ok)
	assert.Zero(t, s.SampleCount)
}

func TestSummarize_Single(t *testing.T) {
	t.Parallel()
	s, ok := Summarize(pricesToObs(1234.6))
	require.True(t, ok)
	assert.Equal(t, models.TrendStable, s.Trend)
	assert.Equal(t, 1235.0, s.RecommendedPrice)
	assert.Equal(t, s.WindowAverage, s.OverallAverage)
	assert.Equal(t, 1, s.SampleCount)
}

func TestSummarize_TrailingWindowExample(t *testing.T) {
	t.Parallel()
	s, ok := Summarize(pricesToObs(100, 100, 100, 100, 100, 200))
	require.True(t, ok)

	assert.Equal(t, models.TrendUp, s.Trend)
	assert.Equal(t, 120.0, s.WindowAverage)
	assert.Equal(t, 117.0, s.OverallAverage)
	assert.Equal(t, 100.0, s.MinPrice)
	assert.Equal(t, 200.0, s.MaxPrice)
	assert.Equal(t, 120.0, s.RecommendedPrice)
	assert.Equal(t, 6, s.SampleCount)
}

func TestSummarize_Trend(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		prices []float64
		want   models.Trend
	}{
		{"falling", []float64{300, 300, 300, 100, 100, 100, 100, 100}, models.TrendDown},
		{"rising", []float64{100, 100, 100, 300, 300, 300, 300, 300}, models.TrendUp},
		{"flat", []float64{250, 250, 250, 250, 250, 250, 250}, models.TrendStable},
		{"fewer than window", []float64{100, 200, 300}, models.TrendStable},
		{"float noise is a tie", []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}, models.TrendStable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, ok := Summarize(pricesToObs(tc.prices...))
			require.True(t, ok)
			assert.Equal(t, tc.want, s.Trend)
		})
	}
}

func TestTrendOf_Tolerance(t *testing.T) {
	tests := []struct {
		name            string
		recent, overall float64
		want            models.Trend
	}{
		{"equal", 1800, 1800, models.TrendStable},
		{"float noise", 0.1 + 0.2, 0.3, models.TrendStable},
		{"within relative tolerance", 3000 * (1 + 1e-10), 3000, models.TrendStable},
		{"one cent up", 3000.01, 3000, models.TrendUp},
		{"one cent down", 2999.99, 3000, models.TrendDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trendOf(tt.recent, tt.overall))
		})
	}
}

func TestSummarizeWindow_CustomWindow(t *testing.T) {
	t.Parallel()
	s, ok := SummarizeWindow(pricesToObs(100, 200, 300, 400), 2)
	require.True(t, ok)
	assert.Equal(t, 350.0, s.WindowAverage)
	assert.Equal(t, 250.0, s.OverallAverage)
	assert.Equal(t, models.TrendUp, s.Trend)

	all, ok := SummarizeWindow(pricesToObs(100, 200, 300, 400), 0)
	require.True(t, ok)
	assert.Equal(t, all.OverallAverage, all.WindowAverage)
}

func TestSummarize_BoundsInvariant(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		n := 1 + rnd.IntN(40)
		prices := make([]float64, n)
		for j := range prices {
			prices[j] = rnd.Float64() * 5000
		}
		s, ok := Summarize(pricesToObs(prices...))
		require.True(t, ok)
		for _, v := range []float64{s.RecommendedPrice, s.WindowAverage, s.OverallAverage} {
			assert.LessOrEqual(t, s.MinPrice, v)
			assert.LessOrEqual(t, v, s.MaxPrice)
		}
		assert.Equal(t, n, s.SampleCount)
	}
}
