package domain

import "github.com/shopspring/decimal"

// Offering is a bookable service type with a fixed daily slot template.
type Offering struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Slots []string        `json:"slots"`
}

// OfferingName is the name-only projection of the catalog.
type OfferingName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
