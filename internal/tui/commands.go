package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/dex/internal/catalog"
	"github.com/mmcdole/dex/internal/detail"
	"github.com/mmcdole/dex/internal/domain"
)

// Command factories for async operations. They only perform I/O; all
// state changes happen when Update receives the resulting message.

const (
	catalogTimeout = 60 * time.Second // one large list request
	requestTimeout = 30 * time.Second
)

// LoadCatalogCmd fetches the full catalog
func LoadCatalogCmd(b *catalog.Browser) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()

		entries, err := b.FetchCatalog(ctx)
		return CatalogLoadedMsg{Entries: entries, Err: err}
	}
}

// LoadCategoriesCmd fetches (or reads the cached) category list
func LoadCategoriesCmd(r *catalog.Resolver) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		categories, err := r.Categories(ctx)
		return CategoriesLoadedMsg{Categories: categories, Err: err}
	}
}

// ResolveCategoryCmd resolves the members of a selected category
func ResolveCategoryCmd(b *catalog.Browser, req catalog.CategoryRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return CategoryResolvedMsg{Result: b.ResolveCategory(ctx, req)}
	}
}

// LoadDetailCmd fetches the detail of one entry. catalog is a snapshot of
// the full entry list used for not-found suggestions.
func LoadDetailCmd(svc *detail.Service, id string, entries []domain.Entry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		d, err := svc.Get(ctx, id, entries)
		return DetailLoadedMsg{ID: id, Detail: d, Err: err}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status seq after a delay
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
