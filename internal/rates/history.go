package rates

import (
	"context"
	"slices"
	"strings"
	"time"

	"logixy_crm/internal/models"

	"github.com/rotisserie/eris"
)

const DefaultHistoryDays = 90

// QuotationSource is the read side of the quotation store used for rate history.
// since is an inclusive YYYY-MM-DD lower bound.
type QuotationSource interface {
	ListByRoute(ctx context.Context, from, to string, kind models.ContainerKind, since string) ([]models.Quotation, error)
}

// HistoryProvider derives observations from quotations previously issued on a route.
type HistoryProvider struct {
	HistoryDays int
	Now         func() time.Time
	source      QuotationSource
}

// NewHistoryProvider reads up to historyDays of quotations from source.
func NewHistoryProvider(source QuotationSource, historyDays int) *HistoryProvider {
	if historyDays <= 0 {
		historyDays = DefaultHistoryDays
	}
	return &HistoryProvider{HistoryDays: historyDays, Now: time.Now, source: source}
}

// Observations maps each priced quotation to an observation (freight as price,
// shipping line as carrier), oldest first.
func (p *HistoryProvider) Observations(ctx context.Context, r Route) ([]models.PriceObservation, error) {
	since := p.Now().UTC().AddDate(0, 0, -p.HistoryDays).Format(dateLayout)
	qs, err := p.source.ListByRoute(ctx, r.Origin, r.Destination, r.ContainerKind, since)
	if err != nil {
		return nil, eris.Wrapf(err, "rates: load history for %s → %s", r.Origin, r.Destination)
	}

	out := make([]models.PriceObservation, 0, len(qs))
	for _, q := range qs {
		if q.Freight <= 0 {
			continue
		}
		out = append(out, models.PriceObservation{
			Date:          q.Date,
			Origin:        q.From,
			Destination:   q.To,
			ContainerKind: q.ContainerKind,
			Price:         q.Freight,
			Carrier:       q.ShippingLine,
		})
	}
	slices.SortStableFunc(out, func(a, b models.PriceObservation) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out, nil
}
