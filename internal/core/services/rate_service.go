package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	"github.com/SscSPs/forex_widget/internal/core/ports/providers"
	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/refdata"
	"github.com/SscSPs/forex_widget/internal/utils"
)

type rateService struct {
	BaseService
	provider        providers.ForexProvider
	catalog         *refdata.Catalog
	defaultCityCode string
	now             func() time.Time
}

// NewRateService creates the rate normalizer. An empty city code falls back to defaultCityCode.
func NewRateService(provider providers.ForexProvider, catalog *refdata.Catalog, defaultCityCode string) portssvc.RateSvc {
	return &rateService{
		provider:        provider,
		catalog:         catalog,
		defaultCityCode: strings.ToUpper(defaultCityCode),
		now:             time.Now,
	}
}

func (s *rateService) GetRateCard(ctx context.Context, cityCode string) (*domain.RateCard, error) {
	code := strings.ToUpper(strings.TrimSpace(cityCode))
	if code == "" {
		code = s.defaultCityCode
	}
	providerCode := s.catalog.ProviderCityCode(code)

	records, err := s.provider.FetchRateCard(ctx, providerCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch rates from provider", slog.String("city_code", code), slog.String("provider_city_code", providerCode))
		return nil, err
	}

	rates := NormalizeRates(records, s.catalog.PopularityRank)
	s.LogDebug(ctx, "Normalized rate card", slog.String("city_code", code), slog.Int("received", len(records)), slog.Int("kept", len(rates)))

	return &domain.RateCard{
		CityCode:    code,
		LastUpdated: s.now().UTC(),
		Rates:       rates,
	}, nil
}

// NormalizeRates maps provider records to rates, drops unusable ones and orders the rest
// by rank (unranked last) then by name.
func NormalizeRates(records []providers.RateRecord, rank func(code string) (int, bool)) []domain.Rate {
	rates := make([]domain.Rate, 0, len(records))
	for _, rec := range records {
		r := domain.Rate{
			Currency:  strings.TrimSpace(rec.CurrencyCode),
			CardRate:  rec.Bpc.Or(rec.B).Decimal(),
			NotesRate: rec.Bcn.Or(rec.B).Decimal(),
			Name:      rec.CurrencyDescription,
			Image:     rec.CurrencyImage,
		}
		if rec.BcnCombo.Present() {
			combo := rec.BcnCombo.Decimal()
			r.NotesComboRate = &combo
		}
		if !r.IsValid() {
			continue
		}
		rates = append(rates, r)
	}

	utils.SortByRankThenName(rates,
		func(r domain.Rate) (int, bool) { return rank(r.Currency) },
		func(r domain.Rate) string { return r.Name },
	)
	return rates
}
