package engine

import (
	"maps"

	"github.com/abelbrown/cupid/internal/catalog"
	"github.com/abelbrown/cupid/internal/shuffle"
)

// Reducer applies actions to states. Its only dependency is the Orderer that
// shuffles the feed deck and the tournament deck.
type Reducer struct {
	order shuffle.Orderer
}

// NewReducer creates a Reducer. A nil orderer selects a randomly seeded
// shuffle.Random.
func NewReducer(order shuffle.Orderer) Reducer {
	if order == nil {
		order = shuffle.NewRandom(0)
	}
	return Reducer{order: order}
}

// Reduce returns the state that follows s after a. Actions that do not apply
// to the current phase return s unchanged.
func (r Reducer) Reduce(s State, a Action) State {
	switch a := a.(type) {
	case LoadStarted:
		if s.phase != PhaseCollection {
			return s
		}
		s.loading = true
		s.loadErr = ""
		return s

	case LoadSucceeded:
		if s.phase != PhaseCollection {
			return s
		}
		s.loading = false
		s.loadErr = ""
		s.items = a.Items
		return s

	case LoadFailed:
		if s.phase != PhaseCollection {
			return s
		}
		s.loading = false
		s.loadErr = "unknown error"
		if a.Err != nil {
			s.loadErr = a.Err.Error()
		}
		return s

	case ToggleOwned:
		s.owned = s.owned.Toggle(a.ID)
		return s

	case ClearOwned:
		s.owned = Selection{}
		return s

	case Start:
		return r.start(s)

	case Like:
		return r.sweep(s, true)

	case Reject:
		return r.sweep(s, false)

	case KeepWinner:
		return r.resolve(s, false)

	case ReplaceWinner:
		return r.resolve(s, true)

	case Back, Reset:
		if s.phase == PhaseCollection {
			return s
		}
		return toCollection(s)
	}

	return s
}

func (r Reducer) start(s State) State {
	if s.phase != PhaseCollection {
		return s
	}
	owned := s.OwnedItems()
	if len(owned) == 0 {
		return s
	}

	s.phase = PhaseFeed
	s.winner = nil
	s.tournament = nil
	s.feed = &FeedState{
		deck:  r.order.Order(owned),
		index: 0,
		liked: map[int]struct{}{},
	}
	return s
}

func (r Reducer) sweep(s State, like bool) State {
	if s.phase != PhaseFeed || s.feed == nil {
		return s
	}
	current, ok := s.feed.Current()
	if !ok {
		return s
	}

	next := &FeedState{
		deck:  s.feed.deck,
		index: s.feed.index + 1,
		liked: s.feed.liked,
	}
	if like {
		next.liked = maps.Clone(s.feed.liked)
		next.liked[current.ID] = struct{}{}
	}
	s.feed = next

	if next.index == len(next.deck) {
		return r.eliminate(s)
	}
	return s
}

// eliminate decides what follows a finished sweep. With nothing liked the
// first deck item wins; with one liked item it wins outright; otherwise the
// liked items are shuffled into a tournament seeded by the first of them.
func (r Reducer) eliminate(s State) State {
	liked := s.feed.LikedItems()

	switch len(liked) {
	case 0:
		return toResult(s, s.feed.deck[0])
	case 1:
		return toResult(s, liked[0])
	}

	deck := r.order.Order(liked)
	s.phase = PhaseTournament
	s.feed = nil
	s.winner = nil
	s.tournament = &TournamentState{
		deck:     deck,
		index:    1,
		champion: deck[0],
	}
	return s
}

func (r Reducer) resolve(s State, replace bool) State {
	if s.phase != PhaseTournament || s.tournament == nil {
		return s
	}
	t := s.tournament
	challenger, ok := t.Challenger()
	if !ok {
		return s
	}

	champion := t.champion
	if replace {
		champion = challenger
	}

	// The index is checked before advancing: the challenger just resolved
	// was the last one.
	if t.index >= len(t.deck)-1 {
		return toResult(s, champion)
	}

	s.tournament = &TournamentState{deck: t.deck, index: t.index + 1, champion: champion}
	return s
}

func toResult(s State, winner catalog.Item) State {
	s.phase = PhaseResult
	s.feed = nil
	s.tournament = nil
	s.winner = &winner
	return s
}

func toCollection(s State) State {
	s.phase = PhaseCollection
	s.feed = nil
	s.tournament = nil
	s.winner = nil
	return s
}
