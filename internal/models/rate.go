package models

import (
	"errors"
	"slices"
	"strings"
)

// ContainerKind is the freight container size/type category.
type ContainerKind string

const (
	Container20   ContainerKind = "20'"
	Container40   ContainerKind = "40'"
	Container40HC ContainerKind = "40HC"
	ContainerTent ContainerKind = "Tent"
)

// ErrInvalidContainerKind is returned for values outside the fixed set.
var ErrInvalidContainerKind = errors.New("invalid container kind: must be 20', 40', 40HC or Tent")

// ContainerKinds lists every supported kind in display order.
func ContainerKinds() []ContainerKind {
	return []ContainerKind{Container20, Container40, Container40HC, ContainerTent}
}

// Valid reports whether k is one of the supported kinds.
func (k ContainerKind) Valid() bool {
	return slices.Contains(ContainerKinds(), k)
}

// ParseContainerKind accepts the exact labels (surrounding spaces ignored).
// It never maps an unknown value onto a valid kind.
func ParseContainerKind(s string) (ContainerKind, error) {
	k := ContainerKind(strings.TrimSpace(s))
	if !k.Valid() {
		return "", ErrInvalidContainerKind
	}
	return k, nil
}

// Trend is the direction of recent prices against the longer-run average.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// PriceObservation is a single historical price point for a route.
type PriceObservation struct {
	Date          string        `json:"date"` // YYYY-MM-DD
	Origin        string        `json:"from"`
	Destination   string        `json:"to"`
	ContainerKind ContainerKind `json:"type"`
	Price         float64       `json:"price"`
	Carrier       string        `json:"shipping_line"`
}

// RecommendationSummary is derived from a sample of observations on every search.
// Amounts are rounded to whole currency units.
type RecommendationSummary struct {
	RecommendedPrice float64 `json:"recommended_price"`
	WindowAverage    float64 `json:"window_average"`
	OverallAverage   float64 `json:"overall_average"`
	Trend            Trend   `json:"trend"`
	MinPrice         float64 `json:"min_price"`
	MaxPrice         float64 `json:"max_price"`
	SampleCount      int     `json:"sample_count"`
}
