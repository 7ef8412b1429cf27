package dto

import "github.com/SscSPs/forex_widget/internal/core/domain"

// CurrencyPickerParams defines the query parameters of the currency picker endpoint.
type CurrencyPickerParams struct {
	CityCode string `form:"city_code"`
	Query    string `form:"q"`
}

// PickerCurrencyResponse defines one selectable currency.
type PickerCurrencyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Popular     bool   `json:"popular"`
	RightLabel  string `json:"rightLabel"`
	SearchTerms string `json:"searchTerms"`
	Image       string `json:"image,omitempty"`
}

// CurrencyPickerResponse defines the categorized picker view.
type CurrencyPickerResponse struct {
	Searching bool                     `json:"searching"`
	Popular   []PickerCurrencyResponse `json:"popular"`
	Other     []PickerCurrencyResponse `json:"other"`
	Results   []PickerCurrencyResponse `json:"results"`
}

func toPickerCurrencyList(items []domain.PickerCurrency) []PickerCurrencyResponse {
	res := make([]PickerCurrencyResponse, len(items))
	for i, c := range items {
		res[i] = PickerCurrencyResponse{
			Code:        c.Code,
			Name:        c.Name,
			Popular:     c.Popular,
			RightLabel:  c.RightLabel,
			SearchTerms: c.SearchTerms,
			Image:       c.Image,
		}
	}
	return res
}

// ToCurrencyPickerResponse converts a domain.CurrencyPicker to CurrencyPickerResponse DTO
func ToCurrencyPickerResponse(p *domain.CurrencyPicker) CurrencyPickerResponse {
	return CurrencyPickerResponse{
		Searching: p.Searching,
		Popular:   toPickerCurrencyList(p.Popular),
		Other:     toPickerCurrencyList(p.Other),
		Results:   toPickerCurrencyList(p.Results),
	}
}
