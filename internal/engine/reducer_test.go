package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelbrown/cupid/internal/catalog"
	"github.com/abelbrown/cupid/internal/shuffle"
)

func testCatalog(ids ...int) []catalog.Item {
	out := make([]catalog.Item, len(ids))
	for i, id := range ids {
		out[i] = catalog.Item{ID: id, Name: string(rune('A' + i))}
	}
	return out
}

func itemIDs(items []catalog.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// loaded returns a collection-phase state with the catalog installed and ids owned.
func loaded(r Reducer, items []catalog.Item, owned ...int) State {
	s := r.Reduce(NewState(), LoadSucceeded{Items: items})
	for _, id := range owned {
		s = r.Reduce(s, ToggleOwned{ID: id})
	}
	return s
}

// unknownAction is not handled by the reducer.
type unknownAction struct{}

func (unknownAction) Name() string { return "UNKNOWN" }

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, PhaseCollection, s.Phase())
	assert.True(t, s.Loading())
	assert.Zero(t, s.Owned().Len())
	assert.Nil(t, s.Feed())
	assert.Nil(t, s.Tournament())
	_, ok := s.Winner()
	assert.False(t, ok)
}

func TestLoadActions(t *testing.T) {
	r := NewReducer(shuffle.Identity{})

	s := r.Reduce(NewState(), LoadFailed{Err: errors.New("failed to load data: 500")})
	assert.False(t, s.Loading())
	assert.Equal(t, "failed to load data: 500", s.LoadErr())

	s = r.Reduce(s, LoadStarted{})
	assert.True(t, s.Loading())
	assert.Empty(t, s.LoadErr())

	s = r.Reduce(s, LoadSucceeded{Items: testCatalog(1, 2)})
	assert.False(t, s.Loading())
	assert.Len(t, s.Catalog(), 2)
}

func TestLoadIgnoredOutsideCollection(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := r.Reduce(loaded(r, testCatalog(1, 2), 1, 2), Start{})
	require.Equal(t, PhaseFeed, s.Phase())

	next := r.Reduce(s, LoadSucceeded{Items: testCatalog(9)})
	assert.Equal(t, s, next)
}

func TestToggleOwnedIdempotence(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := loaded(r, testCatalog(1, 2, 3), 2)

	once := r.Reduce(s, ToggleOwned{ID: 1})
	assert.True(t, once.Owned().Has(1))

	twice := r.Reduce(once, ToggleOwned{ID: 1})
	assert.False(t, twice.Owned().Has(1))
	assert.Equal(t, s.Owned().IDs(), twice.Owned().IDs())

	// The earlier snapshot is unaffected.
	assert.True(t, once.Owned().Has(1))
	assert.False(t, s.Owned().Has(1))
}

func TestClearOwned(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := loaded(r, testCatalog(1, 2, 3), 1, 3)

	cleared := r.Reduce(s, ClearOwned{})
	assert.Zero(t, cleared.Owned().Len())
	assert.Equal(t, []int{1, 3}, s.Owned().IDs())
}

func TestStartWithNothingOwnedIsNoop(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := loaded(r, testCatalog(1, 2))

	next := r.Reduce(s, Start{})
	assert.Equal(t, s, next)
	assert.Equal(t, PhaseCollection, next.Phase())
	assert.Nil(t, next.Feed())
}

func TestStartIgnoresOwnedIDsMissingFromCatalog(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := loaded(r, testCatalog(1, 2), 99)
	assert.False(t, s.CanStart())

	next := r.Reduce(s, Start{})
	assert.Equal(t, PhaseCollection, next.Phase())
}

func TestStartBeforeCatalogLoadsIsNoop(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := r.Reduce(NewState(), ToggleOwned{ID: 1})

	assert.Equal(t, s, r.Reduce(s, Start{}))
}

func TestStartSnapshotsOwnedItemsInOrdererOrder(t *testing.T) {
	r := NewReducer(shuffle.Reverse{})
	s := loaded(r, testCatalog(1, 2, 3, 4), 4, 1, 3)
	require.True(t, s.CanStart())

	s = r.Reduce(s, Start{})
	require.Equal(t, PhaseFeed, s.Phase())
	feed := s.Feed()
	require.NotNil(t, feed)
	// Catalog order is 1,3,4; the Reverse orderer flips it.
	assert.Equal(t, []int{4, 3, 1}, itemIDs(feed.Deck()))
	assert.Equal(t, 0, feed.Index())
	assert.Zero(t, feed.LikedCount())
}

func TestStartOnlyFromCollection(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := r.Reduce(loaded(r, testCatalog(1, 2), 1, 2), Start{})
	s = r.Reduce(s, Like{})

	assert.Equal(t, s, r.Reduce(s, Start{}))
}

func TestFeedMonotonicity(t *testing.T) {
	r := NewReducer(shuffle.NewRandom(3))
	s := r.Reduce(loaded(r, testCatalog(1, 2, 3, 4, 5, 6), 1, 2, 3, 4, 5, 6), Start{})

	actions := []Action{Like{}, Reject{}, Like{}, Reject{}, Reject{}}
	prevIndex, prevLiked := 0, map[int]bool{}
	for _, a := range actions {
		s = r.Reduce(s, a)
		feed := s.Feed()
		require.NotNil(t, feed)
		assert.Greater(t, feed.Index(), prevIndex)
		assert.LessOrEqual(t, feed.Index(), feed.Len())
		for id := range prevLiked {
			assert.True(t, feed.Liked(id), "liked id %d dropped", id)
		}
		for _, it := range feed.Deck() {
			if feed.Liked(it.ID) {
				prevLiked[it.ID] = true
			}
		}
		prevIndex = feed.Index()
	}
	assert.Len(t, prevLiked, 2)
}

func TestFeedActionsOutsideFeedAreNoops(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := loaded(r, testCatalog(1, 2), 1, 2)

	for _, a := range []Action{Like{}, Reject{}, KeepWinner{}, ReplaceWinner{}, Back{}, Reset{}} {
		assert.Equal(t, s, r.Reduce(s, a), a.Name())
	}
}

func TestUnknownActionIsNoop(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := r.Reduce(loaded(r, testCatalog(1, 2), 1, 2), Start{})

	assert.Equal(t, s, r.Reduce(s, unknownAction{}))
	assert.Equal(t, s, r.Reduce(s, nil))
}

func TestEliminationZeroLikedFallsBackToFirstOfDeck(t *testing.T) {
	r := NewReducer(shuffle.Reverse{})
	s := r.Reduce(loaded(r, testCatalog(1, 2, 3), 1, 2, 3), Start{})
	first := s.Feed().Deck()[0]

	s = r.Reduce(s, Reject{})
	s = r.Reduce(s, Reject{})
	s = r.Reduce(s, Reject{})

	require.Equal(t, PhaseResult, s.Phase())
	winner, ok := s.Winner()
	require.True(t, ok)
	assert.Equal(t, first, winner)
	assert.Equal(t, 3, winner.ID)
	assert.Nil(t, s.Feed())
	assert.Nil(t, s.Tournament())
}

func TestEliminationSingleLikedWins(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := r.Reduce(loaded(r, testCatalog(1, 2, 3), 1, 2, 3), Start{})

	s = r.Reduce(s, Reject{})
	s = r.Reduce(s, Like{})
	s = r.Reduce(s, Reject{})

	require.Equal(t, PhaseResult, s.Phase())
	winner, _ := s.Winner()
	assert.Equal(t, 2, winner.ID)
}

func TestEliminationManyLikedStartsTournament(t *testing.T) {
	r := NewReducer(shuffle.Reverse{})
	s := r.Reduce(loaded(r, testCatalog(1, 2, 3, 4), 1, 2, 3, 4), Start{})
	// Feed deck is 4,3,2,1.
	s = r.Reduce(s, Like{})
	s = r.Reduce(s, Reject{})
	s = r.Reduce(s, Like{})
	s = r.Reduce(s, Like{})

	require.Equal(t, PhaseTournament, s.Phase())
	assert.Nil(t, s.Feed())
	tour := s.Tournament()
	require.NotNil(t, tour)
	// Liked in deck order is 4,2,1; reversed again for the tournament.
	assert.Equal(t, []int{1, 2, 4}, itemIDs(tour.Deck()))
	assert.Equal(t, 1, tour.Index())
	assert.Equal(t, 1, tour.Champion().ID)
	assert.Equal(t, 2, tour.Rounds())
	challenger, ok := tour.Challenger()
	require.True(t, ok)
	assert.Equal(t, 2, challenger.ID)
	_, hasWinner := s.Winner()
	assert.False(t, hasWinner)
}

func TestTournamentKeepAndReplace(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := r.Reduce(loaded(r, testCatalog(1, 2, 3), 1, 2, 3), Start{})
	for range 3 {
		s = r.Reduce(s, Like{})
	}
	require.Equal(t, PhaseTournament, s.Phase())

	s = r.Reduce(s, ReplaceWinner{})
	require.Equal(t, PhaseTournament, s.Phase())
	assert.Equal(t, 2, s.Tournament().Champion().ID)
	assert.Equal(t, 2, s.Tournament().Index())

	s = r.Reduce(s, KeepWinner{})
	require.Equal(t, PhaseResult, s.Phase())
	winner, _ := s.Winner()
	assert.Equal(t, 2, winner.ID)
}

func TestTournamentReplaceOnFinalRoundWins(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := r.Reduce(loaded(r, testCatalog(1, 2, 3), 1, 2, 3), Start{})
	for range 3 {
		s = r.Reduce(s, Like{})
	}

	s = r.Reduce(s, KeepWinner{})
	s = r.Reduce(s, ReplaceWinner{})

	require.Equal(t, PhaseResult, s.Phase())
	winner, _ := s.Winner()
	assert.Equal(t, 3, winner.ID)
}

func TestTournamentTerminatesAfterKMinusOneActions(t *testing.T) {
	for k := 2; k <= 8; k++ {
		ids := make([]int, k)
		for i := range ids {
			ids[i] = i + 1
		}
		r := NewReducer(shuffle.NewRandom(uint64(k)))
		s := r.Reduce(loaded(r, testCatalog(ids...), ids...), Start{})
		for range k {
			s = r.Reduce(s, Like{})
		}
		require.Equal(t, PhaseTournament, s.Phase(), "k=%d", k)

		for i := 0; i < k-1; i++ {
			require.Equal(t, PhaseTournament, s.Phase(), "k=%d round %d", k, i)
			if i%2 == 0 {
				s = r.Reduce(s, ReplaceWinner{})
			} else {
				s = r.Reduce(s, KeepWinner{})
			}
		}

		require.Equal(t, PhaseResult, s.Phase(), "k=%d", k)
		winner, ok := s.Winner()
		require.True(t, ok)
		assert.Contains(t, ids, winner.ID)
	}
}

func TestBackAndResetReturnToCollection(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	base := loaded(r, testCatalog(1, 2, 3), 1, 2, 3)

	inFeed := r.Reduce(base, Start{})
	inTournament := r.Reduce(r.Reduce(r.Reduce(inFeed, Like{}), Like{}), Like{})
	require.Equal(t, PhaseTournament, inTournament.Phase())
	inResult := r.Reduce(r.Reduce(inTournament, KeepWinner{}), KeepWinner{})
	require.Equal(t, PhaseResult, inResult.Phase())

	for _, s := range []State{inFeed, inTournament, inResult} {
		for _, a := range []Action{Back{}, Reset{}} {
			next := r.Reduce(s, a)
			assert.Equal(t, PhaseCollection, next.Phase())
			assert.Nil(t, next.Feed())
			assert.Nil(t, next.Tournament())
			_, ok := next.Winner()
			assert.False(t, ok)
			assert.Equal(t, []int{1, 2, 3}, next.Owned().IDs())
			assert.True(t, next.CanStart())
		}
	}
}

func TestRestartBuildsFreshFeed(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := r.Reduce(loaded(r, testCatalog(1, 2, 3), 1, 2, 3), Start{})
	s = r.Reduce(s, Like{})
	s = r.Reduce(s, Back{})

	s = r.Reduce(s, Start{})
	require.Equal(t, PhaseFeed, s.Phase())
	assert.Equal(t, 0, s.Feed().Index())
	assert.Zero(t, s.Feed().LikedCount())
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := r.Reduce(loaded(r, testCatalog(1, 2, 3), 1, 2, 3), Start{})
	feed := s.Feed()

	next := r.Reduce(s, Like{})
	assert.Equal(t, 0, feed.Index())
	assert.Zero(t, feed.LikedCount())
	assert.Equal(t, 1, next.Feed().Index())
	assert.Equal(t, 1, next.Feed().LikedCount())

	deck := next.Feed().Deck()
	deck[0] = catalog.Item{ID: 42}
	assert.Equal(t, 1, next.Feed().Deck()[0].ID)
}

func TestToggleDuringFeedKeepsDeckSnapshot(t *testing.T) {
	r := NewReducer(shuffle.Identity{})
	s := r.Reduce(loaded(r, testCatalog(1, 2), 1, 2), Start{})

	s = r.Reduce(s, ToggleOwned{ID: 2})
	assert.False(t, s.Owned().Has(2))
	assert.Equal(t, []int{1, 2}, itemIDs(s.Feed().Deck()))
}

func TestNilOrdererDefaultsToRandom(t *testing.T) {
	r := NewReducer(nil)
	s := r.Reduce(loaded(r, testCatalog(1, 2, 3), 1, 2, 3), Start{})
	assert.ElementsMatch(t, []int{1, 2, 3}, itemIDs(s.Feed().Deck()))
}
