package utils

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newNameCollator returns a case-insensitive English collator.
// Collators keep internal buffers, so each sort gets its own.
func newNameCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// SortByName stably sorts items by the display name returned from name.
func SortByName[T any](items []T, name func(T) string) {
	c := newNameCollator()
	slices.SortStableFunc(items, func(a, b T) int {
		return c.CompareString(name(a), name(b))
	})
}

// SortByRankThenName stably sorts items by rank (unranked last) and then by display name.
// rank returns the position of an item and whether it is ranked at all.
func SortByRankThenName[T any](items []T, rank func(T) (int, bool), name func(T) string) {
	c := newNameCollator()
	slices.SortStableFunc(items, func(a, b T) int {
		ra, okA := rank(a)
		rb, okB := rank(b)
		switch {
		case okA && okB && ra != rb:
			return ra - rb
		case okA && !okB:
			return -1
		case !okA && okB:
			return 1
		}
		return c.CompareString(name(a), name(b))
	})
}
