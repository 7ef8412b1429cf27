package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductCode identifies the purchase channel used by the forex provider.
type ProductCode string

const (
	ProductCard  ProductCode = "PC" // Prepaid forex card load
	ProductNotes ProductCode = "CN" // Physical currency notes
)

// ParseProductCode validates a raw product code.
func ParseProductCode(raw string) (ProductCode, error) {
	switch p := ProductCode(strings.ToUpper(strings.TrimSpace(raw))); p {
	case ProductCard, ProductNotes:
		return p, nil
	default:
		return "", fmt.Errorf("unknown product code %q", raw)
	}
}

// Rate holds the indicative buy rates for one currency in one city.
type Rate struct {
	Currency       string
	CardRate       decimal.Decimal
	NotesRate      decimal.Decimal
	NotesComboRate *decimal.Decimal
	Name           string
	Image          string
}

// IsValid reports whether the rate is usable: a currency code and at least one positive rate.
func (r Rate) IsValid() bool {
	if r.Currency == "" {
		return false
	}
	return r.CardRate.IsPositive() || r.NotesRate.IsPositive()
}

// RateCard is the normalized provider rate card for a city.
type RateCard struct {
	CityCode    string
	LastUpdated time.Time
	Rates       []Rate
}
