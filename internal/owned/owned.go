// Package owned persists the owned selection between sessions.
//
// Persistence is best effort: a missing, unreadable or corrupted slot loads
// as an empty list and failed writes are logged and dropped. Ownership is a
// convenience, so none of these failures reach the caller.
package owned

import (
	"encoding/json"

	"github.com/abelbrown/cupid/internal/catalog"
	"github.com/abelbrown/cupid/internal/engine"
	"github.com/abelbrown/cupid/internal/logging"
	"github.com/abelbrown/cupid/internal/store"
)

// DefaultKey is the slot the owned ids live under.
const DefaultKey = "cardboard_cupid_owned_ids"

// Adapter loads and saves owned ids through a store.KV.
type Adapter struct {
	kv  store.KV
	key string
}

// NewAdapter creates an Adapter. An empty key selects DefaultKey.
func NewAdapter(kv store.KV, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{kv: kv, key: key}
}

// Key returns the slot name.
func (a *Adapter) Key() string { return a.key }

// Load returns the persisted ids in stored order with duplicates removed.
// Elements that are not integral numbers or numeric strings are dropped.
// It never fails; any problem yields an empty list.
func (a *Adapter) Load() []int {
	raw, ok, err := a.kv.Get(a.key)
	if err != nil {
		logging.Warn("Failed to read owned ids", "key", a.key, "error", err)
		return []int{}
	}
	if !ok || len(raw) == 0 {
		return []int{}
	}

	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		logging.Warn("Ignoring malformed owned ids", "key", a.key, "error", err)
		return []int{}
	}

	ids := make([]int, 0, len(values))
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		id, ok := catalog.IntValue(v)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// Save writes ids as a JSON array. Errors are logged and swallowed.
func (a *Adapter) Save(ids []int) {
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		logging.Warn("Failed to encode owned ids", "error", err)
		return
	}
	if err := a.kv.Set(a.key, data); err != nil {
		logging.Warn("Failed to save owned ids", "key", a.key, "count", len(ids), "error", err)
		return
	}
	logging.Debug("Saved owned ids", "key", a.key, "count", len(ids))
}

// Hydrate applies ToggleOwned for each id. It is meant for the one-time
// bootstrap against an empty selection, where toggling is a set union.
func Hydrate(r engine.Reducer, s engine.State, ids []int) engine.State {
	for _, id := range ids {
		s = r.Reduce(s, engine.ToggleOwned{ID: id})
	}
	return s
}
