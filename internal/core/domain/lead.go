package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadProduct is the product a lead is interested in.
type LeadProduct string

const (
	LeadProductCard LeadProduct = "card"
	LeadProductNote LeadProduct = "note"
)

// NewLead is a validated lead that has not been stored yet.
type NewLead struct {
	City     string
	Product  LeadProduct
	Currency string
	Amount   int64
}

// Lead is a stored sales lead. Leads are append-only.
type Lead struct {
	ID              int64            `json:"id"`
	City            string           `json:"city"`
	Product         LeadProduct      `json:"product"`
	Currency        string           `json:"currency"`
	Amount          int64            `json:"amount"`
	ConvertedAmount *decimal.Decimal `json:"convertedAmount"`
	CreatedAt       time.Time        `json:"createdAt"`
}
