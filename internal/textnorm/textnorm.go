// Package textnorm folds game titles for matching and deduplication.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	parenthetical = regexp.MustCompile(`\s*\(.*?\)\s*`)
	whitespace    = regexp.MustCompile(`\s+`)
	apostrophes   = strings.NewReplacer("’", "", "'", "")
)

// stripMarks returns a fresh transformer; transform chains carry state and
// must not be shared between goroutines.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold lower-cases s and removes combining accents, so "Château" and
// "chateau" compare equal.
func Fold(s string) string {
	lower := cases.Lower(language.Und).String(s)
	out, _, err := transform.String(stripMarks(), lower)
	if err != nil {
		return lower
	}
	return out
}

// BaseTitle reduces a game name to the title shared by its variant editions.
//
//	"Codenames: Duet"      -> "codenames"
//	"Azul (2017)"          -> "azul"
//	"Codenames – Pictures" -> "codenames"
func BaseTitle(name string) string {
	s := apostrophes.Replace(Fold(name))
	s = parenthetical.ReplaceAllString(s, " ")
	s, _, _ = strings.Cut(s, ":")
	s, _, _ = strings.Cut(s, " - ")
	s, _, _ = strings.Cut(s, " – ")
	return whitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}
