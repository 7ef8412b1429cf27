package services

import (
	"context"
	"strings"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/refdata"
	"github.com/SscSPs/forex_widget/internal/utils"
)

type currencyPickerService struct {
	BaseService
	rates   portssvc.RateSvc
	catalog *refdata.Catalog
}

// NewCurrencyPickerService builds picker views over live rate cards.
func NewCurrencyPickerService(rates portssvc.RateSvc, catalog *refdata.Catalog) portssvc.CurrencyPickerSvc {
	return &currencyPickerService{rates: rates, catalog: catalog}
}

func (s *currencyPickerService) GetPicker(ctx context.Context, cityCode, query string) (*domain.CurrencyPicker, error) {
	card, err := s.rates.GetRateCard(ctx, cityCode)
	if err != nil {
		return nil, err
	}
	picker := BuildPicker(EnrichCurrencies(s.catalog.Currencies(), card.Rates), query)
	return &picker, nil
}

// EnrichCurrencies joins the static currency list with the live rates.
// Only currencies with a live rate are kept, in the static declaration order.
func EnrichCurrencies(metas []domain.CurrencyMeta, rates []domain.Rate) []domain.PickerCurrency {
	live := make(map[string]domain.Rate, len(rates))
	for _, r := range rates {
		live[r.Currency] = r
	}

	out := make([]domain.PickerCurrency, 0, len(metas))
	for _, meta := range metas {
		r, ok := live[meta.Code]
		if !ok {
			continue
		}
		out = append(out, domain.PickerCurrency{CurrencyMeta: meta, Image: r.Image})
	}
	return out
}

// BuildPicker groups or filters the enriched currencies.
// A blank query yields popular (declared order) and other (by name); otherwise
// results hold every match in declared order.
func BuildPicker(currencies []domain.PickerCurrency, query string) domain.CurrencyPicker {
	picker := domain.CurrencyPicker{
		Popular: []domain.PickerCurrency{},
		Other:   []domain.PickerCurrency{},
		Results: []domain.PickerCurrency{},
	}

	if strings.TrimSpace(query) == "" {
		for _, c := range currencies {
			if c.Popular {
				picker.Popular = append(picker.Popular, c)
			} else {
				picker.Other = append(picker.Other, c)
			}
		}
		utils.SortByName(picker.Other, func(c domain.PickerCurrency) string { return c.Name })
		return picker
	}

	picker.Searching = true
	for _, c := range currencies {
		if c.MatchesQuery(query) {
			picker.Results = append(picker.Results, c)
		}
	}
	return picker
}
