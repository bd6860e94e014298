// Package prep turns a board game ranks dump (CSV) into the catalog JSON the
// app loads. It runs offline through cupidctl.
package prep

import (
	"cmp"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/abelbrown/cupid/internal/catalog"
	"github.com/abelbrown/cupid/internal/textnorm"
)

// ErrMissingColumn is returned when the CSV header lacks id or name.
var ErrMissingColumn = errors.New("missing required column")

// genreColumns maps rank columns to genre tags, in output order.
var genreColumns = []struct {
	column string
	genre  string
}{
	{"abstracts_rank", "abstract"},
	{"cgs_rank", "customizable-card-game"},
	{"childrensgames_rank", "kids"},
	{"familygames_rank", "family"},
	{"partygames_rank", "party"},
	{"strategygames_rank", "strategy"},
	{"thematic_rank", "thematic"},
	{"wargames_rank", "wargame"},
}

// promoTerms flag names that are usually promos or add-ons even when the
// expansion flag is not set.
var promoTerms = []string{"promo", "promotional", "demo", "scenario", "kit", "pack", "expansion"}

// Options tunes the pipeline.
type Options struct {
	MinUsersRated int
	MinYear       int
	MaxGames      int
	DedupeTitles  bool
	DropPromos    bool
}

// DefaultOptions returns the settings the published catalog is built with.
func DefaultOptions() Options {
	return Options{
		MinUsersRated: 500,
		MinYear:       1990,
		MaxGames:      30000,
		DedupeTitles:  true,
		DropPromos:    true,
	}
}

// Stats counts what each step removed.
type Stats struct {
	Rows       int
	Invalid    int
	Expansions int
	Promos     int
	Unpopular  int
	Old        int
	Deduped    int
	Capped     int
	Kept       int
}

// Row is one CSV record keyed by header name.
type Row map[string]string

func (r Row) number(col string) (float64, bool) {
	return catalog.FloatValue(r[col])
}

func (r Row) numberOr(col string, fallback float64) float64 {
	if f, ok := r.number(col); ok {
		return f
	}
	return fallback
}

// ReadCSV reads a ranks dump with a header line.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	for _, required := range []string{"id", "name"} {
		if !slices.Contains(header, required) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Run filters, deduplicates, sorts and caps rows into catalog items.
func Run(rows []Row, opts Options) ([]catalog.Item, Stats) {
	stats := Stats{Rows: len(rows)}

	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		switch {
		case row["name"] == "" || !hasID(row):
			stats.Invalid++
		case isExpansion(row["is_expansion"]):
			stats.Expansions++
		case opts.DropPromos && looksLikePromo(row["name"]):
			stats.Promos++
		case !popular(row, opts.MinUsersRated):
			stats.Unpopular++
		case tooOld(row, opts.MinYear):
			stats.Old++
		default:
			kept = append(kept, row)
		}
	}

	if opts.DedupeTitles {
		var dropped int
		kept, dropped = dedupe(kept)
		stats.Deduped = dropped
	}

	slices.SortStableFunc(kept, func(a, b Row) int {
		return cmp.Compare(b.numberOr("usersrated", 0), a.numberOr("usersrated", 0))
	})
	if opts.MaxGames > 0 && len(kept) > opts.MaxGames {
		stats.Capped = len(kept) - opts.MaxGames
		kept = kept[:opts.MaxGames]
	}

	items := make([]catalog.Item, 0, len(kept))
	for _, row := range kept {
		items = append(items, toItem(row))
	}
	stats.Kept = len(items)
	return items, stats
}

// WriteJSON writes items as an indented JSON array.
func WriteJSON(w io.Writer, items []catalog.Item) error {
	if items == nil {
		items = []catalog.Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

func isExpansion(v string) bool {
	if strings.EqualFold(v, "true") {
		return true
	}
	f, ok := catalog.FloatValue(v)
	return ok && f == 1
}

func looksLikePromo(name string) bool {
	n := strings.ToLower(name)
	for _, term := range promoTerms {
		if strings.Contains(n, term) {
			return true
		}
	}
	return false
}

func hasID(row Row) bool {
	_, ok := catalog.IntValue(row["id"])
	return ok
}

// popular treats a blank count as zero and a garbled one as unpopular.
func popular(row Row, minUsers int) bool {
	users := 0.0
	if row["usersrated"] != "" {
		f, ok := row.number("usersrated")
		if !ok {
			return false
		}
		users = f
	}
	return users >= float64(minUsers)
}

func tooOld(row Row, minYear int) bool {
	year := row.numberOr("yearpublished", 0)
	return minYear > 0 && year > 0 && year < float64(minYear)
}

// dedupe keeps one row per base title: most ratings, then highest Bayes
// score, then best rank. The survivor takes the slot of the first row seen.
func dedupe(rows []Row) ([]Row, int) {
	best := make([]Row, 0, len(rows))
	slot := make(map[string]int, len(rows))
	dropped := 0

	for _, row := range rows {
		key := textnorm.BaseTitle(row["name"])
		i, ok := slot[key]
		if !ok {
			slot[key] = len(best)
			best = append(best, row)
			continue
		}
		dropped++
		if better(row, best[i]) {
			best[i] = row
		}
	}
	return best, dropped
}

func better(g, cur Row) bool {
	gUsers, cUsers := g.numberOr("usersrated", 0), cur.numberOr("usersrated", 0)
	if gUsers != cUsers {
		return gUsers > cUsers
	}
	gBayes, cBayes := g.numberOr("bayesaverage", 0), cur.numberOr("bayesaverage", 0)
	if gBayes != cBayes {
		return gBayes > cBayes
	}
	return g.numberOr("rank", math.Inf(1)) < cur.numberOr("rank", math.Inf(1))
}

func toItem(row Row) catalog.Item {
	id, _ := catalog.IntValue(row["id"])
	item := catalog.Item{
		ID:         id,
		Name:       row["name"],
		Year:       positiveInt(row, "yearpublished"),
		Rank:       positiveInt(row, "rank"),
		UsersRated: int(row.numberOr("usersrated", 0)),
		Bayes:      row.numberOr("bayesaverage", 0),
		Avg:        row.numberOr("average", 0),
		Genres:     []string{},
	}
	for _, g := range genreColumns {
		if _, ok := row.number(g.column); ok {
			item.Genres = append(item.Genres, g.genre)
		}
	}
	return item
}

func positiveInt(row Row, col string) *int {
	f, ok := row.number(col)
	if !ok || f == 0 {
		return nil
	}
	n := int(f)
	return &n
}
