// Package ui provides the Bubble Tea TUI for Cardboard Cupid.
package ui

import "github.com/abelbrown/cupid/internal/catalog"

// CatalogLoaded is sent when the catalog load command finishes.
type CatalogLoaded struct {
	Items []catalog.Item
	Err   error
}

// OwnedSaved is sent after the owned selection has been written.
// Writes are best effort, so there is no error to report.
type OwnedSaved struct {
	Count int
}
