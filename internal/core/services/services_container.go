package services

import (
	"github.com/SscSPs/forex_widget/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/forex_widget/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/platform/config"
	"github.com/SscSPs/forex_widget/internal/refdata"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider providers.ForexProvider, catalog *refdata.Catalog) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.City = NewCityService(catalog)
	container.Rate = NewRateService(provider, catalog, cfg.DefaultCityCode)
	container.BetterRate = NewBetterRateService(provider, catalog)
	container.Lead = NewLeadService(repos.LeadRepo)

	// The picker reads through the rate normalizer.
	container.CurrencyPicker = NewCurrencyPickerService(container.Rate, catalog)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CitySvc           = (*cityService)(nil)
	_ portssvc.RateSvc           = (*rateService)(nil)
	_ portssvc.BetterRateSvc     = (*betterRateService)(nil)
	_ portssvc.LeadSvcFacade     = (*leadService)(nil)
	_ portssvc.CurrencyPickerSvc = (*currencyPickerService)(nil)
)
