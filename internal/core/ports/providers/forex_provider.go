package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexValue is a provider field that may arrive as a JSON string, number or null.
type FlexValue struct {
	raw    string
	number bool
}

// NewFlexString builds a FlexValue as if the provider sent a JSON string.
func NewFlexString(s string) FlexValue { return FlexValue{raw: s} }

// NewFlexNumber builds a FlexValue as if the provider sent a JSON number.
func NewFlexNumber(s string) FlexValue { return FlexValue{raw: s, number: true} }

// UnmarshalJSON accepts strings and numbers; anything else is treated as absent.
func (v *FlexValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*v = FlexValue{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		v.raw = s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v.raw = string(data)
		v.number = true
	}
	return nil
}

// Present reports whether the provider sent a usable (truthy) value:
// a non-empty string or a non-zero number.
func (v FlexValue) Present() bool {
	if v.number {
		d, err := decimal.NewFromString(v.raw)
		return err == nil && !d.IsZero()
	}
	return v.raw != ""
}

// Or returns v when it is present, otherwise fallback.
func (v FlexValue) Or(fallback FlexValue) FlexValue {
	if v.Present() {
		return v
	}
	return fallback
}

// Decimal parses the value; missing or malformed values yield zero.
func (v FlexValue) Decimal() decimal.Decimal {
	d, ok := v.ParseDecimal()
	if !ok {
		return decimal.Zero
	}
	return d
}

// ParseDecimal parses the value and reports whether it was a valid number.
func (v FlexValue) ParseDecimal() (decimal.Decimal, bool) {
	s := strings.TrimSpace(v.raw)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// String returns the raw text of the value.
func (v FlexValue) String() string { return v.raw }

// RateRecord is one entry of the provider's rate card, in the provider's own field names.
type RateRecord struct {
	CurrencyCode        string    `json:"currency_code"`
	CurrencyDescription string    `json:"currency_description"`
	CurrencyImage       string    `json:"currency_image"`
	Bpc                 FlexValue `json:"bpc"`       // buy rate, prepaid card
	Bcn                 FlexValue `json:"bcn"`       // buy rate, currency notes
	BcnCombo            FlexValue `json:"bcn_combo"` // buy rate, notes bought with a card
	B                   FlexValue `json:"b"`         // generic buy rate
}

// looseString keeps JSON strings and treats any other value as absent.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	*s = ""
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
	}
	return nil
}

// UnmarshalJSON decodes a record, ignoring text fields that are not JSON strings.
// A value that is not an object is an error.
func (r *RateRecord) UnmarshalJSON(data []byte) error {
	type plain RateRecord
	var aux struct {
		plain
		CurrencyCode        looseString `json:"currency_code"`
		CurrencyDescription looseString `json:"currency_description"`
		CurrencyImage       looseString `json:"currency_image"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = RateRecord(aux.plain)
	r.CurrencyCode = string(aux.CurrencyCode)
	r.CurrencyDescription = string(aux.CurrencyDescription)
	r.CurrencyImage = string(aux.CurrencyImage)
	return nil
}

// BetterRateItem is one currency/product line of a better-rate request.
type BetterRateItem struct {
	CurrencyCode  string
	ProductCode   string
	ForeignAmount decimal.Decimal
}

// BetterRateRequest asks the provider for a discount quote.
type BetterRateRequest struct {
	CityCode string
	Rate     decimal.Decimal
	Items    []BetterRateItem
}

// BetterRateReply is the provider's raw answer. Its body shape varies, so it is
// returned undecoded together with the response_token header.
type BetterRateReply struct {
	StatusCode    int
	ResponseToken string
	Body          []byte
}

// ForexProvider is the third-party rate and discount source.
type ForexProvider interface {
	// FetchRateCard returns the full rate card for a provider city code.
	FetchRateCard(ctx context.Context, providerCityCode string) ([]RateRecord, error)
	// SaveBetterRate requests a discount quote.
	SaveBetterRate(ctx context.Context, req BetterRateRequest) (*BetterRateReply, error)
}
