// Package catalog defines the board game catalog and how it is loaded.
//
// The catalog is produced offline (see internal/prep) as a JSON array and is
// read-only once loaded. Decoding is lenient: ids may arrive as strings,
// optional numeric fields default to null or zero.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNotArray is returned when a catalog document is not a JSON array.
var ErrNotArray = errors.New("catalog is not a JSON array")

// ErrTrailingData is returned when anything but whitespace follows the array.
var ErrTrailingData = errors.New("catalog has trailing data")

// Item is a single game in the catalog. ID is its identity; the rest is
// descriptive.
type Item struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Year       *int     `json:"year"`
	Rank       *int     `json:"rank"`
	UsersRated int      `json:"usersRated"`
	Bayes      float64  `json:"bayes"`
	Avg        float64  `json:"avg"`
	Genres     []string `json:"genres"`
}

// Parse decodes a catalog document. Entries without a usable id or name are
// skipped, and a repeated id keeps its first entry.
func Parse(data []byte) ([]Item, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, ErrTrailingData
	}
	rows, ok := doc.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	items := make([]Item, 0, len(rows))
	seen := make(map[int]bool, len(rows))
	for _, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			continue
		}
		item, ok := itemFromObject(obj)
		if !ok || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		items = append(items, item)
	}
	return items, nil
}

func itemFromObject(obj map[string]any) (Item, bool) {
	id, ok := IntValue(obj["id"])
	if !ok {
		return Item{}, false
	}
	name, ok := obj["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return Item{}, false
	}

	item := Item{
		ID:     id,
		Name:   name,
		Year:   optionalInt(obj["year"]),
		Rank:   optionalInt(obj["rank"]),
		Genres: []string{},
	}
	if n, ok := FloatValue(obj["usersRated"]); ok {
		item.UsersRated = int(n)
	}
	if f, ok := FloatValue(obj["bayes"]); ok {
		item.Bayes = f
	}
	if f, ok := FloatValue(obj["avg"]); ok {
		item.Avg = f
	}
	if tags, ok := obj["genres"].([]any); ok {
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				item.Genres = append(item.Genres, s)
			}
		}
	}
	return item, true
}

// FloatValue coerces a decoded JSON value (json.Number, float64, string or
// bool) to a finite float.
func FloatValue(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = x
	case int:
		f = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IntValue is FloatValue restricted to integral values.
func IntValue(v any) (int, bool) {
	f, ok := FloatValue(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// optionalInt maps absent, zero and non-finite values to nil.
func optionalInt(v any) *int {
	f, ok := FloatValue(v)
	if !ok || f == 0 {
		return nil
	}
	n := int(f)
	return &n
}

// YearLabel renders the publication year, or "" when unknown.
func (it Item) YearLabel() string {
	if it.Year == nil {
		return ""
	}
	return strconv.Itoa(*it.Year)
}
