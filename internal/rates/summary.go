package rates

import (
	"math"

	"logixy_crm/internal/models"
)

// DefaultWindow is the number of trailing observations treated as "recent".
const DefaultWindow = 5

// trendTolerance absorbs float noise when comparing the two averages.
const trendTolerance = 1e-9

// Summarize reduces observations with the default trailing window.
func Summarize(obs []models.PriceObservation) (models.RecommendationSummary, bool) {
	return SummarizeWindow(obs, DefaultWindow)
}

// SummarizeWindow reduces observations to a recommendation. It reports false,
// with a zero summary, when obs is empty. Averages keep full precision until
// the final rounding to whole currency units. Trend is stable when the window
// and overall averages agree within a relative 1e-9 (see trendOf).
func SummarizeWindow(obs []models.PriceObservation, window int) (models.RecommendationSummary, bool) {
	n := len(obs)
	if n == 0 {
		return models.RecommendationSummary{}, false
	}
	if window <= 0 || window > n {
		window = n
	}

	var sum, recentSum float64
	lo, hi := obs[0].Price, obs[0].Price
	for i, o := range obs {
		sum += o.Price
		if i >= n-window {
			recentSum += o.Price
		}
		lo = math.Min(lo, o.Price)
		hi = math.Max(hi, o.Price)
	}
	overall := sum / float64(n)
	recent := recentSum / float64(window)

	return models.RecommendationSummary{
		RecommendedPrice: math.Round(recent),
		WindowAverage:    math.Round(recent),
		OverallAverage:   math.Round(overall),
		Trend:            trendOf(recent, overall),
		MinPrice:         math.Round(lo),
		MaxPrice:         math.Round(hi),
		SampleCount:      n,
	}, true
}

// trendOf compares the window average with the overall average. Values within
// trendTolerance relative to the overall average (absolute below 1) count as
// equal and give TrendStable, so float summation noise never reads as a trend.
func trendOf(recent, overall float64) models.Trend {
	if math.Abs(recent-overall) <= trendTolerance*math.Max(1, math.Abs(overall)) {
		return models.TrendStable
	}
	if recent > overall {
		return models.TrendUp
	}
	return models.TrendDown
}
