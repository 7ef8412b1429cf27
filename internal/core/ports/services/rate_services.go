package services

import (
	"context"

	"github.com/SscSPs/forex_widget/internal/core/domain"
)

// RateSvc defines read operations for rate cards.
type RateSvc interface {
	// GetRateCard fetches and normalizes the provider rate card for a city code.
	GetRateCard(ctx context.Context, cityCode string) (*domain.RateCard, error)
}

// BetterRateSvc computes discount quotes.
type BetterRateSvc interface {
	// GetBetterRate resolves a discount quote for a currency/product/amount/city.
	GetBetterRate(ctx context.Context, query domain.BetterRateQuery) (*domain.DiscountQuote, error)
}

// CurrencyPickerSvc builds the currency selector view.
type CurrencyPickerSvc interface {
	// GetPicker returns the categorized currencies available in a city, filtered by query.
	GetPicker(ctx context.Context, cityCode, query string) (*domain.CurrencyPicker, error)
}
