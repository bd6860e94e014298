package engine

import "github.com/abelbrown/cupid/internal/catalog"

// Action is an input to Reducer.Reduce. Actions the reducer does not
// recognise, or that do not apply to the current phase, leave the state
// unchanged.
type Action interface {
	Name() string
}

// LoadStarted marks the catalog as loading.
type LoadStarted struct{}

// LoadSucceeded installs a freshly loaded catalog.
type LoadSucceeded struct {
	Items []catalog.Item
}

// LoadFailed records a catalog load error.
type LoadFailed struct {
	Err error
}

// ToggleOwned flips ownership of one item.
type ToggleOwned struct {
	ID int
}

// ClearOwned empties the selection.
type ClearOwned struct{}

// Start begins the feed sweep over the owned items.
type Start struct{}

// Like keeps the current feed item for the tournament.
type Like struct{}

// Reject skips the current feed item.
type Reject struct{}

// KeepWinner rejects the current challenger.
type KeepWinner struct{}

// ReplaceWinner makes the current challenger the champion.
type ReplaceWinner struct{}

// Back abandons the feed, tournament or result and returns to collection.
type Back struct{}

// Reset leaves the result screen for a new round.
type Reset struct{}

func (LoadStarted) Name() string   { return "LOAD_GAMES_START" }
func (LoadSucceeded) Name() string { return "LOAD_GAMES_SUCCESS" }
func (LoadFailed) Name() string    { return "LOAD_GAMES_ERROR" }
func (ToggleOwned) Name() string   { return "TOGGLE_OWNED" }
func (ClearOwned) Name() string    { return "CLEAR_OWNED" }
func (Start) Name() string         { return "START" }
func (Like) Name() string          { return "LIKE" }
func (Reject) Name() string        { return "REJECT" }
func (KeepWinner) Name() string    { return "KEEP_WINNER" }
func (ReplaceWinner) Name() string { return "REPLACE_WINNER" }
func (Back) Name() string          { return "BACK" }
func (Reset) Name() string         { return "RESET" }
