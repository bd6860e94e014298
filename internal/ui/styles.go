package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
)

// Header style for the top bar.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// SelectedItem style for the row under the cursor.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// NormalItem style for other rows.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// OwnedMark style for the checkbox of an owned game.
var OwnedMark = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// Meta style for year, rating and genre details.
var Meta = lipgloss.NewStyle().
	Foreground(colorSecondary)

// Card frames a single game in the feed and tournament.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorSecondary).
	Padding(1, 2).
	Width(36)

// ChampionCard highlights the running champion.
var ChampionCard = Card.
	BorderForeground(colorHighlight)

// WinnerCard frames the result.
var WinnerCard = Card.
	BorderForeground(colorSuccess).
	BorderStyle(lipgloss.DoubleBorder())

// CardTitle style for the game name on a card.
var CardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// Label style for small captions above cards.
var Label = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// SearchBar style for the search input bar.
var SearchBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(colorMuted).
	Padding(0, 1)

// SearchCount style for the match count.
var SearchCount = lipgloss.NewStyle().
	Foreground(colorSecondary)

// StatusText style for transient hints.
var StatusText = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Padding(0, 1)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)
