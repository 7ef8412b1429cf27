package domain

import "strings"

// CurrencyMeta is the static description of a currency the widget can offer.
type CurrencyMeta struct {
	Code        string `json:"code" yaml:"code"`               // Primary Key (e.g., "USD")
	Name        string `json:"name" yaml:"name"`               // e.g., "US Dollar"
	Popular     bool   `json:"popular" yaml:"popular"`         // Shown in the "popular" group
	RightLabel  string `json:"rightLabel" yaml:"rightLabel"`   // Region label, e.g. "Thailand"
	SearchTerms string `json:"searchTerms" yaml:"searchTerms"` // Lowercase free-text keywords
}

// MatchesQuery reports whether every whitespace-separated token of query is a
// substring of the currency's search terms. An empty query matches everything.
func (c CurrencyMeta) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, word := range strings.Fields(q) {
		if !strings.Contains(c.SearchTerms, word) {
			return false
		}
	}
	return true
}

// PickerCurrency is a CurrencyMeta joined with the live rate card.
type PickerCurrency struct {
	CurrencyMeta
	Image string `json:"image,omitempty"`
}

// CurrencyPicker is the categorized view rendered by the currency selector.
// With no query, Popular and Other are filled; with a query, Results holds the matches.
type CurrencyPicker struct {
	Searching bool             `json:"searching"`
	Popular   []PickerCurrency `json:"popular"`
	Other     []PickerCurrency `json:"other"`
	Results   []PickerCurrency `json:"results"`
}

// PickerState tracks the open/query/selection state of a currency selector.
type PickerState struct {
	Open     bool
	Query    string
	Selected string
}

// SetOpen opens or closes the picker; closing clears the query.
func (s *PickerState) SetOpen(open bool) {
	s.Open = open
	if !open {
		s.Query = ""
	}
}

// Select records the chosen currency, clears the query and closes the picker.
func (s *PickerState) Select(code string) {
	s.Selected = code
	s.Query = ""
	s.Open = false
}
