package services

import (
	"context"
	"errors"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/refdata"
)

type cityService struct {
	BaseService
	catalog *refdata.Catalog
}

// NewCityService creates a city service backed by the reference catalog.
func NewCityService(catalog *refdata.Catalog) portssvc.CitySvc {
	return &cityService{catalog: catalog}
}

func (s *cityService) ListCities(ctx context.Context) ([]domain.City, error) {
	if s.catalog == nil {
		return nil, errors.New("city catalog is not loaded")
	}
	cities := s.catalog.Cities()
	if len(cities) == 0 {
		return nil, errors.New("city catalog is empty")
	}
	s.LogDebug(ctx, "Listing cities")
	return cities, nil
}
