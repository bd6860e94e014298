package engine

import (
	"maps"
	"slices"
)

// Selection is the set of owned item ids. It is a value: Toggle returns a
// new Selection and leaves the receiver untouched.
type Selection struct {
	ids map[int]struct{}
}

// NewSelection builds a Selection holding ids.
func NewSelection(ids ...int) Selection {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Selection{ids: set}
}

// Has reports whether id is owned.
func (s Selection) Has(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Len is the number of owned ids.
func (s Selection) Len() int {
	return len(s.ids)
}

// Toggle adds id when absent and removes it when present.
func (s Selection) Toggle(id int) Selection {
	next := maps.Clone(s.ids)
	if next == nil {
		next = make(map[int]struct{}, 1)
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return Selection{ids: next}
}

// IDs returns the owned ids in ascending order.
func (s Selection) IDs() []int {
	return slices.Sorted(maps.Keys(s.ids))
}
