package rates

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"logixy_crm/internal/models"
)

const (
	DefaultSampleDays = 30
	priceSpread       = 0.15 // ±15% around the anchor
	routeSpread       = 0.10 // ±10% per route
	dateLayout        = "2006-01-02"
)

// baseRates anchors synthetic prices per container kind (USD).
var baseRates = map[models.ContainerKind]float64{
	models.Container20:   1800,
	models.Container40:   2800,
	models.Container40HC: 3000,
	models.ContainerTent: 1500,
}

var carriers = []string{
	"MSC", "Maersk", "CMA CGM", "Hapag-Lloyd", "COSCO", "Evergreen", "ONE", "ZIM",
}

// SyntheticProvider fabricates a trailing daily price history. It stands in for
// a real rate source in demos and tests.
type SyntheticProvider struct {
	SampleDays int
	Now        func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand // nil uses the global source
}

// NewSyntheticProvider returns a provider producing sampleDays observations.
// A nil src draws from the global random source.
func NewSyntheticProvider(sampleDays int, src rand.Source) *SyntheticProvider {
	if sampleDays <= 0 {
		sampleDays = DefaultSampleDays
	}
	p := &SyntheticProvider{SampleDays: sampleDays, Now: time.Now}
	if src != nil {
		p.rnd = rand.New(src)
	}
	return p
}

// Observations returns one observation per day ending today, oldest first.
func (p *SyntheticProvider) Observations(ctx context.Context, r Route) ([]models.PriceObservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	anchor := anchorPrice(r)
	today := p.Now().UTC()

	out := make([]models.PriceObservation, 0, p.SampleDays)
	for i := p.SampleDays - 1; i >= 0; i-- {
		jitter := 1 - priceSpread + 2*priceSpread*p.randFloat()
		out = append(out, models.PriceObservation{
			Date:          today.AddDate(0, 0, -i).Format(dateLayout),
			Origin:        r.Origin,
			Destination:   r.Destination,
			ContainerKind: r.ContainerKind,
			Price:         math.Round(anchor * jitter),
			Carrier:       carriers[p.randIntN(len(carriers))],
		})
	}
	return out, nil
}

// anchorPrice is the kind's base rate scaled by a stable per-route factor.
func anchorPrice(r Route) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(r.Origin) + "|" + strings.ToLower(r.Destination)))
	unit := float64(h.Sum32()%1000) / 999 // [0,1]
	return baseRates[r.ContainerKind] * (1 - routeSpread + 2*routeSpread*unit)
}

func (p *SyntheticProvider) randFloat() float64 {
	if p.rnd == nil {
		return rand.Float64()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Float64()
}

func (p *SyntheticProvider) randIntN(n int) int {
	if p.rnd == nil {
		return rand.IntN(n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.IntN(n)
}
