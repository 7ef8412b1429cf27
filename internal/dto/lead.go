package dto

import (
	"time"

	"github.com/SscSPs/forex_widget/internal/core/domain"
)

// CreateLeadRequest defines the data needed to record a lead.
// Fields are checked in declaration order; the first failure is reported.
type CreateLeadRequest struct {
	City     string `json:"city" validate:"required"`
	Product  string `json:"product" validate:"required,oneof=card note"`
	Currency string `json:"currency" validate:"required"`
	Amount   *int64 `json:"amount" validate:"required,min=0"`
}

// LeadResponse defines the data returned for a stored lead.
type LeadResponse struct {
	ID              int64     `json:"id"`
	City            string    `json:"city"`
	Product         string    `json:"product"`
	Currency        string    `json:"currency"`
	Amount          int64     `json:"amount"`
	ConvertedAmount *string   `json:"convertedAmount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToLeadResponse converts a domain.Lead to LeadResponse DTO
func ToLeadResponse(lead *domain.Lead) LeadResponse {
	res := LeadResponse{
		ID:        lead.ID,
		City:      lead.City,
		Product:   string(lead.Product),
		Currency:  lead.Currency,
		Amount:    lead.Amount,
		CreatedAt: lead.CreatedAt,
	}
	if lead.ConvertedAmount != nil {
		s := lead.ConvertedAmount.String()
		res.ConvertedAmount = &s
	}
	return res
}
