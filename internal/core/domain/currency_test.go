package domain_test

import (
	"testing"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyMeta_MatchesQuery(t *testing.T) {
	eur := domain.CurrencyMeta{Code: "EUR", SearchTerms: "eur euro europe france germany paris rome"}

	assert.True(t, eur.MatchesQuery(""))
	assert.True(t, eur.MatchesQuery("   "))
	assert.True(t, eur.MatchesQuery("Paris"))
	assert.True(t, eur.MatchesQuery("  euro   PAR "))
	assert.True(t, eur.MatchesQuery("fran"))
	assert.False(t, eur.MatchesQuery("paris london"))
	assert.False(t, eur.MatchesQuery("dollar"))
}

func TestPickerState(t *testing.T) {
	s := domain.PickerState{}
	s.SetOpen(true)
	s.Query = "baht"

	s.Select("THB")
	assert.Equal(t, "THB", s.Selected)
	assert.Empty(t, s.Query)
	assert.False(t, s.Open)

	s.SetOpen(true)
	s.Query = "yen"
	s.SetOpen(false)
	assert.Empty(t, s.Query)
	assert.Equal(t, "THB", s.Selected)
}
