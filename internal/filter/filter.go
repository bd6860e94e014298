// Package filter provides pure filter functions for the catalog.
// All functions are simple: []Item in, []Item out. No side effects.
package filter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/abelbrown/cupid/internal/catalog"
	"github.com/abelbrown/cupid/internal/textnorm"
)

const (
	// DefaultBrowseLimit caps the view shown before anything is typed.
	DefaultBrowseLimit = 20
	// DefaultQueryLimit caps search results to bound rendering cost.
	DefaultQueryLimit = 50
)

// Browse returns the best-rated items: Bayes score descending, then rating
// count descending. limit <= 0 selects DefaultBrowseLimit.
func Browse(items []catalog.Item, limit int) []catalog.Item {
	if limit <= 0 {
		limit = DefaultBrowseLimit
	}
	result := slices.Clone(items)
	slices.SortStableFunc(result, func(a, b catalog.Item) int {
		if c := cmp.Compare(b.Bayes, a.Bayes); c != 0 {
			return c
		}
		if c := cmp.Compare(b.UsersRated, a.UsersRated); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return head(result, limit)
}

// Query returns items whose name contains q, ignoring case and accents,
// most-rated first. limit <= 0 selects DefaultQueryLimit.
func Query(items []catalog.Item, q string, limit int) []catalog.Item {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}
	needle := textnorm.Fold(strings.TrimSpace(q))

	result := make([]catalog.Item, 0)
	for _, item := range items {
		if strings.Contains(textnorm.Fold(item.Name), needle) {
			result = append(result, item)
		}
	}
	slices.SortStableFunc(result, func(a, b catalog.Item) int {
		if c := cmp.Compare(b.UsersRated, a.UsersRated); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return head(result, limit)
}

// View picks Browse for a blank query and Query otherwise.
func View(items []catalog.Item, q string, browseLimit, queryLimit int) []catalog.Item {
	if strings.TrimSpace(q) == "" {
		return Browse(items, browseLimit)
	}
	return Query(items, q, queryLimit)
}

func head(items []catalog.Item, n int) []catalog.Item {
	if len(items) > n {
		return items[:n]
	}
	return items
}
