package dto

import "github.com/SscSPs/forex_widget/internal/core/domain"

// CityResponse defines the data returned for a city.
type CityResponse struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Aliases          []string `json:"aliases"`
	IsTopCity        bool     `json:"isTopCity"`
	ServiceableCard  *bool    `json:"serviceableCard,omitempty"`
	ServiceableNotes *bool    `json:"serviceableNotes,omitempty"`
}

// ToCityResponse converts a domain.City to CityResponse DTO
func ToCityResponse(city domain.City) CityResponse {
	aliases := city.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	card, notes := city.ServiceableCard, city.ServiceableNotes
	return CityResponse{
		Code:             city.Code,
		Name:             city.Name,
		Aliases:          aliases,
		IsTopCity:        city.IsTopCity,
		ServiceableCard:  &card,
		ServiceableNotes: &notes,
	}
}

// ToListCityResponse converts a slice of domain.City to a slice of CityResponse DTOs
func ToListCityResponse(cities []domain.City) []CityResponse {
	res := make([]CityResponse, len(cities))
	for i, city := range cities {
		res[i] = ToCityResponse(city)
	}
	return res
}

// ToFallbackCityResponse converts the degraded city list. Serviceability is
// unknown there, so those fields are left out.
func ToFallbackCityResponse(cities []domain.City) []CityResponse {
	res := ToListCityResponse(cities)
	for i := range res {
		res[i].ServiceableCard = nil
		res[i].ServiceableNotes = nil
	}
	return res
}
