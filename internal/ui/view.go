package ui

import (
	"fmt"
	"strings"

	"github.com/abelbrown/cupid/internal/catalog"
	"github.com/abelbrown/cupid/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

// chrome is the number of lines used by header, search bar, status and help.
const chrome = 5

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var body string
	switch a.state.Phase() {
	case engine.PhaseCollection:
		body = a.renderCollection()
	case engine.PhaseFeed:
		body = renderFeed(a.state.Feed())
	case engine.PhaseTournament:
		body = renderTournament(a.state.Tournament())
	case engine.PhaseResult:
		winner, _ := a.state.Winner()
		body = renderResult(winner)
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(StatusText.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render(a.help.View(a.keyMap())))
	return b.String()
}

func (a App) renderHeader() string {
	left := fmt.Sprintf("CARDBOARD CUPID │ %s │ %d owned", a.state.Phase(), a.state.Owned().Len())
	right := ""
	if a.state.Loading() {
		right = a.spinner.View() + " loading games"
	}

	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}
	return Header.Width(a.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (a App) renderCollection() string {
	var b strings.Builder

	if err := a.state.LoadErr(); err != "" {
		b.WriteString(ErrorStyle.Render("Could not load games: " + err + " (press r to retry)"))
		b.WriteString("\n")
	}

	visible := a.Visible()
	if a.searching || a.search.Value() != "" {
		count := SearchCount.Render(fmt.Sprintf(" %d matches", len(visible)))
		b.WriteString(SearchBar.Render(a.search.View() + count))
		b.WriteString("\n")
	}

	if len(visible) == 0 {
		switch {
		case a.state.Loading():
			b.WriteString(HelpStyle.Render(a.spinner.View() + " Fetching the catalog..."))
		case a.search.Value() != "":
			b.WriteString(HelpStyle.Render("No games match."))
		default:
			b.WriteString(HelpStyle.Render("No games to show."))
		}
		return b.String()
	}

	owned := a.state.Owned()
	rows := a.height - chrome
	if rows < 5 {
		rows = 5
	}
	offset := 0
	if a.cursor >= rows {
		offset = a.cursor - rows + 1
	}

	for i := offset; i < len(visible) && i < offset+rows; i++ {
		b.WriteString(renderRow(visible[i], owned.Has(visible[i].ID), i == a.cursor, a.width))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderRow(item catalog.Item, owned, selected bool, width int) string {
	mark := "[ ]"
	if owned {
		mark = OwnedMark.Render("[x]")
	}

	name := item.Name
	if y := item.YearLabel(); y != "" {
		name += " (" + y + ")"
	}
	maxName := width - 24
	if maxName < 20 {
		maxName = 20
	}
	if r := []rune(name); len(r) > maxName {
		name = string(r[:maxName-1]) + "…"
	}

	line := fmt.Sprintf("%s %s %s", mark, name, Meta.Render(fmt.Sprintf("★ %.2f", item.Bayes)))
	if selected {
		return SelectedItem.Render(line)
	}
	return NormalItem.Render(line)
}

func renderFeed(f *engine.FeedState) string {
	if f == nil {
		return ""
	}
	cur, ok := f.Current()
	if !ok {
		return ""
	}
	caption := Label.Render(fmt.Sprintf("Game %d of %d", f.Index()+1, f.Len()))
	liked := Meta.Render(fmt.Sprintf("%d liked so far", f.LikedCount()))
	return lipgloss.JoinVertical(lipgloss.Left, caption, renderCard(cur, Card), liked)
}

func renderTournament(t *engine.TournamentState) string {
	if t == nil {
		return ""
	}
	challenger, ok := t.Challenger()
	if !ok {
		return ""
	}
	caption := Label.Render(fmt.Sprintf("Round %d of %d", t.Index(), t.Rounds()))
	left := lipgloss.JoinVertical(lipgloss.Left, Meta.Render("champion"), renderCard(t.Champion(), ChampionCard))
	right := lipgloss.JoinVertical(lipgloss.Left, Meta.Render("challenger"), renderCard(challenger, Card))
	return lipgloss.JoinVertical(lipgloss.Left, caption, lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
}

func renderResult(winner catalog.Item) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		Label.Render("Tonight you play"),
		renderCard(winner, WinnerCard),
	)
}

func renderCard(item catalog.Item, style lipgloss.Style) string {
	lines := []string{CardTitle.Render(item.Name)}

	var meta []string
	if y := item.YearLabel(); y != "" {
		meta = append(meta, y)
	}
	if item.Rank != nil {
		meta = append(meta, fmt.Sprintf("rank #%d", *item.Rank))
	}
	meta = append(meta, fmt.Sprintf("★ %.2f", item.Bayes))
	lines = append(lines, Meta.Render(strings.Join(meta, " · ")))

	if len(item.Genres) > 0 {
		lines = append(lines, Meta.Render(strings.Join(item.Genres, ", ")))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// keyMap returns the bindings that apply in the current phase.
func (a App) keyMap() bindingSet {
	switch a.state.Phase() {
	case engine.PhaseFeed:
		return bindingSet{keys.Reject, keys.Like, keys.Back, keys.Quit}
	case engine.PhaseTournament:
		return bindingSet{keys.Keep, keys.Replace, keys.Back, keys.Quit}
	case engine.PhaseResult:
		return bindingSet{keys.Reset, keys.Back, keys.Quit}
	}
	if a.searching {
		return bindingSet{searchKeys.Up, searchKeys.Down, searchKeys.Toggle, keys.LeaveSearch}
	}
	set := bindingSet{keys.Up, keys.Down, keys.Toggle, keys.Search, keys.Clear, keys.Start}
	if a.state.LoadErr() != "" {
		set = append(set, keys.Reload)
	}
	return append(set, keys.Quit)
}
