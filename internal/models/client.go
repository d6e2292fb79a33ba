package models

// Client statuses as shown in the CRM.
const (
	StatusNew        = "New"
	StatusPotential  = "Potential"
	StatusActive     = "Active"
	StatusLost       = "Lost"
	StatusDeclined   = "Declined"
	StatusBringsOwn  = "Brings own"
	StatusClientLeft = "Client left"
)

// Contact is a person at a client company.
type Contact struct {
	ID       string `json:"id" yaml:"id"`
	FullName string `json:"full_name" yaml:"full_name"`
	Position string `json:"position" yaml:"position"`
	Phone    string `json:"phone" yaml:"phone"`
	Email    string `json:"email" yaml:"email"`
}

// Client is a company record, optionally grouped under a holding.
type Client struct {
	ID           string    `json:"id" yaml:"id"`
	Code         string    `json:"code" yaml:"code"` // SM000001
	Name         string    `json:"name" yaml:"name"`
	EDRPOU       string    `json:"edrpou" yaml:"edrpou"` // state registry code
	VAT          string    `json:"vat" yaml:"vat"`
	City         string    `json:"city" yaml:"city"`
	Status       string    `json:"status" yaml:"status"`
	Sales        string    `json:"sales" yaml:"sales"`     // responsible manager
	Holding      string    `json:"holding" yaml:"holding"` // "" when standalone
	LastContact  string    `json:"last_contact" yaml:"last_contact"`
	Website      string    `json:"website" yaml:"website"`
	Address      string    `json:"address" yaml:"address"`
	Source       string    `json:"source" yaml:"source"`
	CompanyType  string    `json:"company_type" yaml:"company_type"` // Forwarder | Broker | Manufacturer | Trader
	Directions   []string  `json:"directions" yaml:"directions"`     // Import | Export | Transit
	Services     []string  `json:"services" yaml:"services"`         // Freight | Auto | FTL | Rail | LCL | Air
	Cargo        string    `json:"cargo" yaml:"cargo"`
	WhatShips    string    `json:"what_ships" yaml:"what_ships"`
	WorkingSince string    `json:"working_since" yaml:"working_since"`
	Notes        string    `json:"notes" yaml:"notes"`
	Contacts     []Contact `json:"contacts" yaml:"contacts"`
}
