package tui

import (
	"github.com/mmcdole/dex/internal/catalog"
	"github.com/mmcdole/dex/internal/domain"
)

// Message types for the TUI. Completion messages carry the identity they
// were requested for so Update can drop stale ones.

// CatalogLoadedMsg carries the outcome of the full catalog fetch
type CatalogLoadedMsg struct {
	Entries []domain.Entry
	Err     error
}

// CategoriesLoadedMsg carries the selectable category list
type CategoriesLoadedMsg struct {
	Categories []domain.Category
	Err        error
}

// CategoryResolvedMsg carries a category resolution, tagged with its request
type CategoryResolvedMsg struct {
	Result catalog.CategoryResult
}

// DetailLoadedMsg carries an entry detail, tagged with the identifier it
// was requested for
type DetailLoadedMsg struct {
	ID     string
	Detail *domain.EntryDetail
	Err    error
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message if it is still the one
// with the given sequence number
type ClearStatusMsg struct {
	Seq int
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
