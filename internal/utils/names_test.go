package utils_test

import (
	"testing"

	"github.com/SscSPs/forex_widget/internal/utils"
	"github.com/stretchr/testify/assert"
)

type named struct {
	code string
	name string
}

func TestSortByName(t *testing.T) {
	items := []named{{"ZAR", "south african rand"}, {"AUD", "Australian Dollar"}, {"BHD", "Bahraini Dinar"}, {"DEL", "DELHI"}, {"del", "delhi"}}

	utils.SortByName(items, func(n named) string { return n.name })

	assert.Equal(t, []string{"AUD", "BHD", "DEL", "del", "ZAR"}, []string{items[0].code, items[1].code, items[2].code, items[3].code, items[4].code})
}

func TestSortByRankThenName(t *testing.T) {
	ranks := map[string]int{"USD": 0, "EUR": 1}
	items := []named{
		{"XAF", "CFA Franc"},
		{"EUR", "Euro"},
		{"ARS", "argentine peso"},
		{"USD", "US Dollar"},
	}

	utils.SortByRankThenName(items,
		func(n named) (int, bool) {
			r, ok := ranks[n.code]
			return r, ok
		},
		func(n named) string { return n.name },
	)

	got := make([]string, len(items))
	for i, it := range items {
		got[i] = it.code
	}
	assert.Equal(t, []string{"USD", "EUR", "ARS", "XAF"}, got)
}
