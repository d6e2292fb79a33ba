// Package seed loads the bundled demo dataset into an empty store.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"logixy_crm/internal/models"
	"logixy_crm/internal/repository"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yml
var datasetYAML []byte

// Dataset is a set of clients and the quotations issued to them.
type Dataset struct {
	Clients    []models.Client    `yaml:"clients"`
	Quotations []models.Quotation `yaml:"quotations"`
}

// Counts reports how many records Load wrote.
type Counts struct {
	Clients    int
	Quotations int
}

// Default parses the embedded demo dataset.
func Default() (Dataset, error) {
	return Parse(datasetYAML)
}

// Parse decodes a YAML dataset, fills client names on linked quotations
// and recomputes quotation totals.
func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode seed dataset: %w", err)
	}

	names := make(map[string]string, len(ds.Clients))
	for i := range ds.Clients {
		c := &ds.Clients[i]
		if c.Directions == nil {
			c.Directions = []string{}
		}
		if c.Services == nil {
			c.Services = []string{}
		}
		if c.Contacts == nil {
			c.Contacts = []models.Contact{}
		}
		names[c.ID] = c.Name
	}
	for i := range ds.Quotations {
		q := &ds.Quotations[i]
		if !q.ContainerKind.Valid() {
			return Dataset{}, fmt.Errorf("quotation %s: %w", q.Code, models.ErrInvalidContainerKind)
		}
		if q.ClientID != "" {
			name, ok := names[q.ClientID]
			if !ok {
				return Dataset{}, fmt.Errorf("quotation %s: unknown client %s", q.Code, q.ClientID)
			}
			q.ClientName = name
		}
		q.Total = q.ComputeTotal()
	}
	return ds, nil
}

// Load writes every record of ds. Clients go first so quotation links resolve.
func Load(ctx context.Context, ds Dataset, clients repository.ClientRepo, quotations repository.QuotationRepo) (Counts, error) {
	var n Counts
	for _, c := range ds.Clients {
		if err := clients.Save(ctx, c); err != nil {
			return n, fmt.Errorf("seed client %s: %w", c.Code, err)
		}
		n.Clients++
	}
	for _, q := range ds.Quotations {
		if err := quotations.Save(ctx, q); err != nil {
			return n, fmt.Errorf("seed quotation %s: %w", q.Code, err)
		}
		n.Quotations++
	}
	return n, nil
}

// LoadIfEmpty loads the demo dataset only when the store has no clients.
// loaded is false when the store already had data.
func LoadIfEmpty(ctx context.Context, clients repository.ClientRepo, quotations repository.QuotationRepo) (counts Counts, loaded bool, err error) {
	existing, err := clients.Count(ctx)
	if err != nil {
		return Counts{}, false, err
	}
	if existing > 0 {
		return Counts{}, false, nil
	}
	ds, err := Default()
	if err != nil {
		return Counts{}, false, err
	}
	counts, err = Load(ctx, ds, clients, quotations)
	return counts, err == nil, err
}
