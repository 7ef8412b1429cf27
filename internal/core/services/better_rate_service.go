package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/SscSPs/forex_widget/internal/core/domain"
	"github.com/SscSPs/forex_widget/internal/core/ports/providers"
	portssvc "github.com/SscSPs/forex_widget/internal/core/ports/services"
	"github.com/SscSPs/forex_widget/internal/refdata"
	"github.com/SscSPs/forex_widget/internal/utils"
	"github.com/shopspring/decimal"
)

type betterRateService struct {
	BaseService
	provider providers.ForexProvider
	catalog  *refdata.Catalog
}

// NewBetterRateService creates the discount resolver.
func NewBetterRateService(provider providers.ForexProvider, catalog *refdata.Catalog) portssvc.BetterRateSvc {
	return &betterRateService{provider: provider, catalog: catalog}
}

func (s *betterRateService) GetBetterRate(ctx context.Context, q domain.BetterRateQuery) (*domain.DiscountQuote, error) {
	if !q.Amount.IsPositive() {
		return nil, apperrors.NewFieldError("amount", "amount must be a positive number")
	}
	if q.Product != domain.ProductCard && q.Product != domain.ProductNotes {
		return nil, apperrors.NewFieldError("product", "product must be one of CN, PC")
	}
	currency := strings.TrimSpace(q.CurrencyCode)
	providerCity := s.catalog.ProviderCityCode(strings.TrimSpace(q.CityCode))
	logger := s.GetLogger(ctx).With(
		slog.String("currency", currency),
		slog.String("product", string(q.Product)),
		slog.String("provider_city_code", providerCity),
	)

	records, err := s.provider.FetchRateCard(ctx, providerCity)
	if err != nil {
		logger.Error("Failed to fetch rate card for better rate", slog.String("error", err.Error()))
		return nil, err
	}

	record, found := findRateRecord(records, currency)
	if !found {
		return nil, fmt.Errorf("%w: currency rate not found", apperrors.ErrNotFound)
	}
	originalRate := productBaseRate(record, q.Product)
	if !originalRate.IsPositive() {
		return nil, fmt.Errorf("%w: rate not available", apperrors.ErrNotFound)
	}

	reply, err := s.provider.SaveBetterRate(ctx, providers.BetterRateRequest{
		CityCode: providerCity,
		Rate:     originalRate,
		Items: []providers.BetterRateItem{{
			CurrencyCode:  currency,
			ProductCode:   string(q.Product),
			ForeignAmount: q.Amount,
		}},
	})
	if err != nil {
		logger.Error("Better rate request failed", slog.String("error", err.Error()))
		return nil, err
	}
	logger.Debug("Better rate reply received", slog.Int("status", reply.StatusCode))

	return resolveDiscount(q.Product, q.Amount, originalRate, record.BcnCombo, reply), nil
}

func findRateRecord(records []providers.RateRecord, currency string) (providers.RateRecord, bool) {
	for _, rec := range records {
		if rec.CurrencyCode == currency {
			return rec, true
		}
	}
	return providers.RateRecord{}, false
}

// productBaseRate reads the buy rate of the requested channel straight from the provider record.
func productBaseRate(rec providers.RateRecord, product domain.ProductCode) decimal.Decimal {
	if product == domain.ProductNotes {
		return rec.Bcn.Decimal()
	}
	return rec.Bpc.Decimal()
}

// discountPayload is the structured part of a better-rate reply.
type discountPayload struct {
	Found        bool
	FlatDiscount decimal.Decimal
	TotalAmount  decimal.Decimal
	GrandTotal   decimal.Decimal
	Key          string
}

// resolveDiscount applies the discount policy to a provider reply.
func resolveDiscount(product domain.ProductCode, amount, originalRate decimal.Decimal, combo providers.FlexValue, reply *providers.BetterRateReply) *domain.DiscountQuote {
	var code string
	var flat, total, grand decimal.Decimal
	if reply != nil {
		code = reply.ResponseToken
	}

	var body []byte
	if reply != nil {
		body = reply.Body
	}

	if payload, ok := parseDiscountPayload(body); ok {
		if payload.Found {
			flat = payload.FlatDiscount
			total = payload.TotalAmount
			grand = payload.GrandTotal
			if code == "" {
				code = payload.Key
			}
		}
	} else if product == domain.ProductNotes {
		comboRate, _ := combo.ParseDecimal()
		if comboRate.IsPositive() && comboRate.LessThan(originalRate) {
			flat = utils.RoundMoney(originalRate.Sub(comboRate).Mul(amount))
		}
	}

	quote := &domain.DiscountQuote{
		OriginalRate: originalRate,
		FlatDiscount: flat,
		TotalAmount:  total,
	}
	if !flat.IsPositive() {
		quote.FlatDiscount = decimal.Zero
		code = ""
	}
	if code != "" {
		quote.DiscountCode = &code
	}
	if !total.IsPositive() {
		quote.TotalAmount = originalRate.Mul(amount)
	}
	if grand.IsPositive() {
		quote.GrandTotal = &grand
	}
	return quote
}

// parseDiscountPayload decodes a better-rate body. ok is false when the body is not JSON
// or the first discount entry is null.
// The discount list is read from result.betterRateDiscounts, falling back to a root
// level betterRateDiscounts; only the first entry is used.
func parseDiscountPayload(body []byte) (discountPayload, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return discountPayload{}, false
	}
	if dec.More() {
		return discountPayload{}, false
	}

	discounts := discountList(root)
	if len(discounts) == 0 {
		return discountPayload{}, true
	}

	if discounts[0] == nil {
		return discountPayload{}, false
	}
	entry, _ := discounts[0].(map[string]any)
	return discountPayload{
		Found:        true,
		FlatDiscount: numberField(entry, "flat_discount", "margin_value"),
		TotalAmount:  numberField(entry, "total_amount"),
		GrandTotal:   numberField(entry, "grand_total"),
		Key:          stringField(entry, "better_rate_key"),
	}, true
}

func discountList(root any) []any {
	obj, _ := root.(map[string]any)
	result := root
	if obj != nil && truthy(obj["result"]) {
		result = obj["result"]
	}
	if m, ok := result.(map[string]any); ok {
		if list, ok := m["betterRateDiscounts"].([]any); ok {
			return list
		}
	}
	if obj != nil {
		if list, ok := obj["betterRateDiscounts"].([]any); ok {
			return list
		}
	}
	return nil
}

// truthy follows the provider's loose notion of a present value.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return err != nil || !d.IsZero()
	default:
		return true
	}
}

// numberField returns the first non-null key as a decimal; unparsable values are zero.
func numberField(entry map[string]any, keys ...string) decimal.Decimal {
	for _, key := range keys {
		v, ok := entry[key]
		if !ok || v == nil {
			continue
		}
		var raw string
		switch t := v.(type) {
		case json.Number:
			raw = t.String()
		case string:
			raw = strings.TrimSpace(t)
		default:
			return decimal.Zero
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.Zero
}

func stringField(entry map[string]any, key string) string {
	switch t := entry[key].(type) {
	case string:
		return t
	case json.Number:
		if truthy(t) {
			return t.String()
		}
	}
	return ""
}
