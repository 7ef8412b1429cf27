// Package refdata holds the static currency and city tables used by the widget.
// Tables are embedded YAML, parsed once at start-up into read-only lookups.
package refdata

import (
	"embed"
	"fmt"
	"strings"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	"github.com/SscSPs/forex_widget/internal/utils"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

type currencyFile struct {
	PopularityOrder []string              `yaml:"popularityOrder"`
	Currencies      []domain.CurrencyMeta `yaml:"currencies"`
}

type cityFile struct {
	TopCityOrder      []string          `yaml:"topCityOrder"`
	CardServiceable   []string          `yaml:"cardServiceable"`
	NotesServiceable  []string          `yaml:"notesServiceable"`
	ProviderCityCodes map[string]string `yaml:"providerCityCodes"`
	Cities            []domain.City     `yaml:"cities"`
}

// Catalog is the immutable reference data. All accessors return copies.
type Catalog struct {
	currencies        []domain.CurrencyMeta
	popularityRank    map[string]int
	cities            []domain.City
	providerCityCodes map[string]string
}

// Load parses the embedded tables.
func Load() (*Catalog, error) {
	currencies, err := dataFS.ReadFile("data/currencies.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read currency table: %w", err)
	}
	cities, err := dataFS.ReadFile("data/cities.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read city table: %w", err)
	}
	return Parse(currencies, cities)
}

// Parse builds a Catalog from raw currency and city YAML documents.
func Parse(currencyYAML, cityYAML []byte) (*Catalog, error) {
	var cf currencyFile
	if err := yaml.Unmarshal(currencyYAML, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse currency table: %w", err)
	}
	var ct cityFile
	if err := yaml.Unmarshal(cityYAML, &ct); err != nil {
		return nil, fmt.Errorf("failed to parse city table: %w", err)
	}

	c := &Catalog{
		popularityRank:    make(map[string]int, len(cf.PopularityOrder)),
		providerCityCodes: make(map[string]string, len(ct.ProviderCityCodes)),
	}

	for i, code := range cf.PopularityOrder {
		if _, dup := c.popularityRank[code]; !dup {
			c.popularityRank[code] = i
		}
	}
	seenCurrency := make(map[string]struct{}, len(cf.Currencies))
	for _, meta := range cf.Currencies {
		if meta.Code == "" {
			return nil, fmt.Errorf("currency table has an entry without a code")
		}
		if _, dup := seenCurrency[meta.Code]; dup {
			return nil, fmt.Errorf("currency %s is listed twice", meta.Code)
		}
		seenCurrency[meta.Code] = struct{}{}
		c.currencies = append(c.currencies, meta)
	}

	for from, to := range ct.ProviderCityCodes {
		c.providerCityCodes[strings.ToUpper(from)] = strings.ToUpper(to)
	}

	topRank := make(map[string]int, len(ct.TopCityOrder))
	for i, code := range ct.TopCityOrder {
		topRank[code] = i
	}
	card := toSet(ct.CardServiceable)
	notes := toSet(ct.NotesServiceable)
	seen := make(map[string]struct{}, len(ct.Cities))
	for _, city := range ct.Cities {
		if city.Code == "" {
			return nil, fmt.Errorf("city table has an entry without a code")
		}
		if _, dup := seen[city.Code]; dup {
			return nil, fmt.Errorf("city %s is listed twice", city.Code)
		}
		seen[city.Code] = struct{}{}
		if city.Aliases == nil {
			city.Aliases = []string{}
		}
		_, city.IsTopCity = topRank[city.Code]
		_, city.ServiceableCard = card[city.Code]
		_, city.ServiceableNotes = notes[city.Code]
		c.cities = append(c.cities, city)
	}
	utils.SortByRankThenName(c.cities,
		func(city domain.City) (int, bool) {
			r, ok := topRank[city.Code]
			return r, ok
		},
		func(city domain.City) string { return city.Name },
	)

	return c, nil
}

func toSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

// Currencies returns the currency metadata in declared order.
func (c *Catalog) Currencies() []domain.CurrencyMeta {
	out := make([]domain.CurrencyMeta, len(c.currencies))
	copy(out, c.currencies)
	return out
}

// PopularityRank returns the position of a currency in the rate card ranking.
func (c *Catalog) PopularityRank(code string) (int, bool) {
	rank, ok := c.popularityRank[code]
	return rank, ok
}

// Cities returns the city list, top cities first in their fixed order, then by name.
func (c *Catalog) Cities() []domain.City {
	out := make([]domain.City, len(c.cities))
	for i, city := range c.cities {
		city.Aliases = append([]string(nil), city.Aliases...)
		out[i] = city
	}
	return out
}

// ProviderCityCode translates an internal city code into the provider's vocabulary.
// The input is upper-cased; codes without a mapping are returned as-is.
func (c *Catalog) ProviderCityCode(code string) string {
	upper := strings.ToUpper(code)
	if mapped, ok := c.providerCityCodes[upper]; ok {
		return mapped
	}
	return upper
}
