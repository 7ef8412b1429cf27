package domain

import "github.com/shopspring/decimal"

// BetterRateQuery is the input to the discount resolver.
type BetterRateQuery struct {
	CityCode     string
	CurrencyCode string
	Product      ProductCode
	Amount       decimal.Decimal
}

// DiscountQuote is the computed better-rate offer.
type DiscountQuote struct {
	OriginalRate decimal.Decimal
	FlatDiscount decimal.Decimal
	TotalAmount  decimal.Decimal
	GrandTotal   *decimal.Decimal
	DiscountCode *string
}

// HasDiscount reports whether the quote carries a positive flat discount.
func (q DiscountQuote) HasDiscount() bool {
	return q.FlatDiscount.IsPositive()
}
