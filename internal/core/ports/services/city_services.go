package services

import (
	"context"

	"github.com/SscSPs/forex_widget/internal/core/domain"
)

// CitySvc defines read operations for the city selector.
type CitySvc interface {
	// ListCities returns all cities, top cities first then by name.
	ListCities(ctx context.Context) ([]domain.City, error)
}
