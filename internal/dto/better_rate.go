package dto

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NumericAmount is a decimal that only binds from a bare JSON number.
// Quoted numbers and other JSON types are rejected; null leaves it zero.
type NumericAmount struct {
	decimal.Decimal
}

func (a *NumericAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}
	if len(data) == 0 || !(data[0] == '-' || (data[0] >= '0' && data[0] <= '9')) {
		return &json.UnmarshalTypeError{Value: "non-number", Type: reflect.TypeOf(float64(0))}
	}
	return a.Decimal.UnmarshalJSON(data)
}

// BetterRateRequest defines the data needed to request a discount quote.
type BetterRateRequest struct {
	Amount       NumericAmount `json:"amount" swaggertype:"number"`
	CurrencyCode string        `json:"currencyCode" binding:"required"`
	Product      string        `json:"product" binding:"required,oneof=CN PC"`
	CityCode     string        `json:"cityCode" binding:"required"`
}

// BetterRateResponse defines the discount quote returned to the widget.
type BetterRateResponse struct {
	DiscountCode *string  `json:"discountCode"`
	FlatDiscount float64  `json:"flatDiscount"`
	OriginalRate float64  `json:"originalRate"`
	TotalAmount  float64  `json:"totalAmount"`
	GrandTotal   *float64 `json:"grandTotal,omitempty"`
}

// ToBetterRateResponse converts a domain.DiscountQuote to BetterRateResponse DTO
func ToBetterRateResponse(q *domain.DiscountQuote) BetterRateResponse {
	res := BetterRateResponse{
		DiscountCode: q.DiscountCode,
		FlatDiscount: q.FlatDiscount.InexactFloat64(),
		OriginalRate: q.OriginalRate.InexactFloat64(),
		TotalAmount:  q.TotalAmount.InexactFloat64(),
	}
	if q.GrandTotal != nil {
		gt := q.GrandTotal.InexactFloat64()
		res.GrandTotal = &gt
	}
	return res
}
