package service

import "logixy_crm/internal/models"

// DashboardStats is the summary shown on the CRM landing page.
type DashboardStats struct {
	TotalClients     int                `json:"total_clients"`
	ActiveClients    int                `json:"active_clients"`
	PotentialClients int                `json:"potential_clients"` // Potential + New
	Holdings         int                `json:"holdings"`
	TotalQuotations  int                `json:"total_quotations"`
	TotalValue       float64            `json:"total_value"`
	AverageQuotation float64            `json:"average_quotation"`
	RecentQuotations []models.Quotation `json:"recent_quotations"`
	StatusCounts     []StatusCount      `json:"status_counts"`
	TopRoutes        []RouteCount       `json:"top_routes"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// RouteCount is a "from → to" label with the number of quotations on it.
type RouteCount struct {
	Route string `json:"route"`
	Count int    `json:"count"`
}
