// Package rates looks up historical price observations for a route and reduces
// them to a recommended price.
package rates

import (
	"context"
	"strings"

	"logixy_crm/internal/models"

	"github.com/rotisserie/eris"
)

// Provider names accepted by NewProvider.
const (
	ProviderSynthetic = "synthetic"
	ProviderHistory   = "history"
)

// ErrInvalidArgument marks a search that must not be performed.
var ErrInvalidArgument = eris.New("invalid argument")

// IsInvalidArgument reports whether err was caused by bad search input.
func IsInvalidArgument(err error) bool {
	return eris.Is(err, ErrInvalidArgument)
}

// Route is an origin/destination pair for one container kind.
type Route struct {
	Origin        string               `json:"from"`
	Destination   string               `json:"to"`
	ContainerKind models.ContainerKind `json:"type"`
}

// NewRoute trims the route labels and parses the container kind.
func NewRoute(origin, destination, kind string) (Route, error) {
	r := Route{
		Origin:        strings.TrimSpace(origin),
		Destination:   strings.TrimSpace(destination),
		ContainerKind: models.ContainerKind(strings.TrimSpace(kind)),
	}
	return r, r.Validate()
}

// Validate requires both route labels and a known container kind.
func (r Route) Validate() error {
	if strings.TrimSpace(r.Origin) == "" || strings.TrimSpace(r.Destination) == "" {
		return eris.Wrap(ErrInvalidArgument, "origin and destination are required")
	}
	if !r.ContainerKind.Valid() {
		return eris.Wrapf(ErrInvalidArgument, "container kind %q: %v", string(r.ContainerKind), models.ErrInvalidContainerKind)
	}
	return nil
}

// Provider supplies price observations for a route, oldest first.
type Provider interface {
	Observations(ctx context.Context, r Route) ([]models.PriceObservation, error)
}

// ProviderConfig selects and tunes a Provider.
type ProviderConfig struct {
	Name        string
	SampleDays  int // synthetic: one observation per day
	HistoryDays int // history: look-back window
}

// NewProvider builds the provider named in cfg. source is only used by the history provider.
func NewProvider(cfg ProviderConfig, source QuotationSource) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Name)) {
	case "", ProviderSynthetic:
		return NewSyntheticProvider(cfg.SampleDays, nil), nil
	case ProviderHistory:
		if source == nil {
			return nil, eris.New("rates: history provider requires a quotation source")
		}
		return NewHistoryProvider(source, cfg.HistoryDays), nil
	}
	return nil, eris.Errorf("rates: unknown provider %q", cfg.Name)
}
