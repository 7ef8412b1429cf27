package dto

import (
	"time"

	"github.com/SscSPs/forex_widget/internal/core/domain"
)

// ListRatesParams defines the query parameters of the rate card endpoint.
type ListRatesParams struct {
	CityCode string `form:"city_code"`
}

// RateResponse defines the data returned for one currency of a rate card.
type RateResponse struct {
	Currency       string   `json:"currency"`
	CardRate       float64  `json:"cardRate"`
	NotesRate      float64  `json:"notesRate"`
	NotesComboRate *float64 `json:"notesComboRate,omitempty"`
	Symbol         string   `json:"symbol"`
	Name           string   `json:"name"`
	Image          string   `json:"image,omitempty"`
}

// RatesResponse defines the rate card payload.
type RatesResponse struct {
	LastUpdated string         `json:"lastUpdated"`
	Rates       []RateResponse `json:"rates"`
}

// ToRateResponse converts a domain.Rate to RateResponse DTO
func ToRateResponse(r domain.Rate) RateResponse {
	res := RateResponse{
		Currency:  r.Currency,
		CardRate:  r.CardRate.InexactFloat64(),
		NotesRate: r.NotesRate.InexactFloat64(),
		Name:      r.Name,
		Image:     r.Image,
	}
	if r.NotesComboRate != nil {
		combo := r.NotesComboRate.InexactFloat64()
		res.NotesComboRate = &combo
	}
	return res
}

// ToRatesResponse converts a domain.RateCard to RatesResponse DTO
func ToRatesResponse(card *domain.RateCard) RatesResponse {
	rates := make([]RateResponse, len(card.Rates))
	for i, r := range card.Rates {
		rates[i] = ToRateResponse(r)
	}
	return RatesResponse{
		LastUpdated: card.LastUpdated.UTC().Format(time.RFC3339Nano),
		Rates:       rates,
	}
}
