package filter

import (
	"testing"

	"github.com/abelbrown/cupid/internal/catalog"
)

func ids(items []catalog.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var testCatalog = []catalog.Item{
	{ID: 1, Name: "Catan", Bayes: 7.0, UsersRated: 120000},
	{ID: 2, Name: "Château Roquefort", Bayes: 6.5, UsersRated: 3000},
	{ID: 3, Name: "Brass: Birmingham", Bayes: 8.4, UsersRated: 50000},
	{ID: 4, Name: "Brass: Lancashire", Bayes: 8.0, UsersRated: 30000},
	{ID: 5, Name: "Chateau", Bayes: 8.0, UsersRated: 40000},
	{ID: 6, Name: "Azul", Bayes: 7.6, UsersRated: 100000},
}

func TestBrowseSortsByBayesThenUsersRated(t *testing.T) {
	got := Browse(testCatalog, 0)
	want := []int{3, 5, 4, 6, 1, 2}
	if !equalIDs(ids(got), want) {
		t.Errorf("Browse order = %v, want %v", ids(got), want)
	}
}

func TestBrowseLimit(t *testing.T) {
	got := Browse(testCatalog, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 5 {
		t.Errorf("unexpected top two: %v", ids(got))
	}
}

func TestBrowseDefaultLimit(t *testing.T) {
	many := make([]catalog.Item, 45)
	for i := range many {
		many[i] = catalog.Item{ID: i + 1, Name: "Game"}
	}
	if got := Browse(many, 0); len(got) != DefaultBrowseLimit {
		t.Errorf("expected %d items, got %d", DefaultBrowseLimit, len(got))
	}
}

func TestBrowseDoesNotReorderInput(t *testing.T) {
	input := append([]catalog.Item(nil), testCatalog...)
	Browse(input, 0)
	if !equalIDs(ids(input), ids(testCatalog)) {
		t.Errorf("input reordered: %v", ids(input))
	}
}

func TestQueryIsCaseAndAccentInsensitive(t *testing.T) {
	got := Query(testCatalog, "CHÂTEAU", 0)
	want := []int{5, 2}
	if !equalIDs(ids(got), want) {
		t.Errorf("Query order = %v, want %v", ids(got), want)
	}

	got = Query(testCatalog, "chateau", 0)
	if !equalIDs(ids(got), want) {
		t.Errorf("unaccented query = %v, want %v", ids(got), want)
	}
}

func TestQuerySortsByUsersRatedAndCaps(t *testing.T) {
	got := Query(testCatalog, "brass", 0)
	if !equalIDs(ids(got), []int{3, 4}) {
		t.Errorf("Query brass = %v", ids(got))
	}

	got = Query(testCatalog, "a", 3)
	if !equalIDs(ids(got), []int{1, 6, 3}) {
		t.Errorf("capped query = %v", ids(got))
	}
}

func TestQueryNoMatches(t *testing.T) {
	got := Query(testCatalog, "zzz", 0)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %v", got)
	}
}

func TestView(t *testing.T) {
	if got := View(testCatalog, "   ", 1, 10); !equalIDs(ids(got), []int{3}) {
		t.Errorf("blank query should browse, got %v", ids(got))
	}
	if got := View(testCatalog, " azul ", 1, 10); !equalIDs(ids(got), []int{6}) {
		t.Errorf("query should search, got %v", ids(got))
	}
}
