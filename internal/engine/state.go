// Package engine is the pick state machine: collection, feed sweep,
// challenger tournament and result.
//
// State is an immutable value. The only way to change it is
// Reducer.Reduce, which returns a new State and never writes through the
// old one, so any State can be kept as a snapshot.
package engine

import (
	"slices"

	"github.com/abelbrown/cupid/internal/catalog"
)

// Phase is the lifecycle stage of a pick.
type Phase string

const (
	// PhaseCollection is where the owned selection is edited.
	PhaseCollection Phase = "collection"
	// PhaseFeed sweeps once through the owned items with like/reject.
	PhaseFeed Phase = "feed"
	// PhaseTournament compares each liked item against a running champion.
	PhaseTournament Phase = "tournament"
	// PhaseResult shows the winner until reset.
	PhaseResult Phase = "result"
)

// State is a snapshot of the whole pick session.
type State struct {
	items   []catalog.Item
	loading bool
	loadErr string

	owned Selection
	phase Phase

	feed       *FeedState
	tournament *TournamentState
	winner     *catalog.Item
}

// NewState returns the initial state: collection phase, catalog loading,
// nothing owned.
func NewState() State {
	return State{phase: PhaseCollection, loading: true}
}

// Phase returns the current phase.
func (s State) Phase() Phase { return s.phase }

// Catalog returns the loaded catalog. Callers must not modify it.
func (s State) Catalog() []catalog.Item { return s.items }

// Loading reports whether a catalog load is in flight.
func (s State) Loading() bool { return s.loading }

// LoadErr is the last catalog load error, or "".
func (s State) LoadErr() string { return s.loadErr }

// Owned returns the owned selection.
func (s State) Owned() Selection { return s.owned }

// OwnedItems returns the catalog items that are owned, in catalog order.
// Owned ids missing from the catalog are ignored.
func (s State) OwnedItems() []catalog.Item {
	var out []catalog.Item
	for _, it := range s.items {
		if s.owned.Has(it.ID) {
			out = append(out, it)
		}
	}
	return out
}

// CanStart reports whether Start would leave the collection phase.
func (s State) CanStart() bool {
	if s.phase != PhaseCollection {
		return false
	}
	for _, it := range s.items {
		if s.owned.Has(it.ID) {
			return true
		}
	}
	return false
}

// Feed returns the sweep state, or nil outside the feed phase.
func (s State) Feed() *FeedState { return s.feed }

// Tournament returns the tournament state, or nil outside the tournament.
func (s State) Tournament() *TournamentState { return s.tournament }

// Winner returns the chosen item once the result phase is reached.
func (s State) Winner() (catalog.Item, bool) {
	if s.winner == nil {
		return catalog.Item{}, false
	}
	return *s.winner, true
}

// FeedState is the like/reject sweep over a shuffled copy of the owned items.
type FeedState struct {
	deck  []catalog.Item
	index int
	liked map[int]struct{}
}

// Deck returns a copy of the sweep order.
func (f *FeedState) Deck() []catalog.Item { return slices.Clone(f.deck) }

// Index is the position of the item awaiting a decision.
func (f *FeedState) Index() int { return f.index }

// Len is the deck size.
func (f *FeedState) Len() int { return len(f.deck) }

// Current returns the item awaiting a decision.
func (f *FeedState) Current() (catalog.Item, bool) {
	if f.index >= len(f.deck) {
		return catalog.Item{}, false
	}
	return f.deck[f.index], true
}

// Liked reports whether id was liked during this sweep.
func (f *FeedState) Liked(id int) bool {
	_, ok := f.liked[id]
	return ok
}

// LikedCount is the number of liked items so far.
func (f *FeedState) LikedCount() int { return len(f.liked) }

// LikedItems returns the liked items in deck order.
func (f *FeedState) LikedItems() []catalog.Item {
	var out []catalog.Item
	for _, it := range f.deck {
		if f.Liked(it.ID) {
			out = append(out, it)
		}
	}
	return out
}

// TournamentState is a single linear pass: each challenger in deck order
// meets the current champion once.
type TournamentState struct {
	deck     []catalog.Item
	index    int
	champion catalog.Item
}

// Deck returns a copy of the tournament order. Deck()[0] seeded the champion.
func (t *TournamentState) Deck() []catalog.Item { return slices.Clone(t.deck) }

// Index is the position of the current challenger, starting at 1.
func (t *TournamentState) Index() int { return t.index }

// Len is the deck size.
func (t *TournamentState) Len() int { return len(t.deck) }

// Champion is the item that has survived every comparison so far.
func (t *TournamentState) Champion() catalog.Item { return t.champion }

// Challenger is the item the champion currently faces.
func (t *TournamentState) Challenger() (catalog.Item, bool) {
	if t.index >= len(t.deck) {
		return catalog.Item{}, false
	}
	return t.deck[t.index], true
}

// Rounds is the number of comparisons in the tournament.
func (t *TournamentState) Rounds() int { return len(t.deck) - 1 }
