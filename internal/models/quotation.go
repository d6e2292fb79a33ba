package models

import "math"

// Quotation is a freight price offer for a route and container kind.
// All money amounts are USD.
type Quotation struct {
	ID            string        `json:"id" yaml:"id"`
	Code          string        `json:"code" yaml:"code"` // QT000001
	Date          string        `json:"date" yaml:"date"` // YYYY-MM-DD
	From          string        `json:"from" yaml:"from"`
	To            string        `json:"to" yaml:"to"`
	ContainerKind ContainerKind `json:"type" yaml:"type"`
	Freight       float64       `json:"freight" yaml:"freight"`
	DPP           float64       `json:"dpp" yaml:"dpp"` // customs/duty pass-through
	Forwarding    float64       `json:"forwarding" yaml:"forwarding"`
	T1            float64       `json:"t1" yaml:"t1"`
	Auto          float64       `json:"auto" yaml:"auto"`
	Rail          float64       `json:"rail" yaml:"rail"`
	Total         float64       `json:"total" yaml:"total"`
	ShippingLine  string        `json:"shipping_line" yaml:"shipping_line"`
	Agent         string        `json:"agent" yaml:"agent"`
	Sales         string        `json:"sales" yaml:"sales"`
	TransitDays   int           `json:"transit" yaml:"transit"`
	ClientID      string        `json:"client_id,omitempty" yaml:"client_id"`
	ClientName    string        `json:"client_name,omitempty" yaml:"client_name"`
}

// Components returns the priced parts of the quotation in display order.
func (q Quotation) Components() []float64 {
	return []float64{q.Freight, q.DPP, q.Forwarding, q.T1, q.Auto, q.Rail}
}

// ComputeTotal sums the priced components, rounded to cents.
func (q Quotation) ComputeTotal() float64 {
	var sum float64
	for _, v := range q.Components() {
		sum += v
	}
	return math.Round(sum*100) / 100
}

// Route renders the route label used in dashboards.
func (q Quotation) Route() string {
	return q.From + " → " + q.To
}
