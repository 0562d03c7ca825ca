package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mmcdole/dex/internal/domain"
)

// ErrUnknownRange is returned by SetRange for a label that is not a known group
var ErrUnknownRange = errors.New("unknown range group")

// Observer receives the displayed list and notices.
// Calls happen on the goroutine that mutates the Browser.
type Observer interface {
	OnResult(entries []domain.Entry)
	OnNotice(notice Notice)
}

// NoOpObserver discards everything (for tests and headless use)
type NoOpObserver struct{}

func (NoOpObserver) OnResult([]domain.Entry) {}
func (NoOpObserver) OnNotice(Notice)         {}

// CategoryRequest identifies one category selection awaiting resolution.
// Generation increases with every category change, including clears.
type CategoryRequest struct {
	Generation uint64
	Category   string
}

// CategoryResult is the outcome of resolving a CategoryRequest
type CategoryResult struct {
	Request CategoryRequest
	Entries []domain.Entry
	Err     error
}

// Browser combines the catalog store, the facet selection and the
// category resolver into the displayed list.
//
// All methods except ResolveCategory must be called from one execution
// context (the Bubble Tea Update loop in the terminal UI). ResolveCategory
// performs network I/O only and may run anywhere; its result is applied
// back on the owning context with ApplyCategory, which drops stale results.
type Browser struct {
	store    *Store
	resolver *Resolver
	ranges   []domain.RangeGroup
	observer Observer
	logger   *slog.Logger

	facets     Facets
	generation uint64
	pending    bool
	result     []domain.Entry
}

// NewBrowser wires a browser to its store. ranges is the static set of
// selectable range groups (domain.Generations for the national catalog).
func NewBrowser(store *Store, resolver *Resolver, ranges []domain.RangeGroup, observer Observer, logger *slog.Logger) *Browser {
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = NoOpObserver{}
	}
	b := &Browser{
		store:    store,
		resolver: resolver,
		ranges:   ranges,
		observer: observer,
		logger:   logger,
	}
	store.OnChange(b.recompute)
	return b
}

// FetchCatalog downloads the full catalog without installing it.
// Like ResolveCategory it is safe to call from any goroutine.
func (b *Browser) FetchCatalog(ctx context.Context) ([]domain.Entry, error) {
	return b.store.FetchFull(ctx)
}

// InstallCatalog applies the outcome of FetchCatalog. Once a category's
// members have been applied they stay the base list; only the full
// catalog changes.
func (b *Browser) InstallCatalog(entries []domain.Entry, err error) {
	if err != nil {
		b.observer.OnNotice(NoticeFromError("Error fetching entry list", err))
		return
	}
	b.store.InstallFull(entries)
}

// SetCategory selects a category ("" clears it) and recomputes.
//
// Clearing resets the base list to the full catalog and returns nil.
// Otherwise the list is recomputed against the current base (an interim
// state) and a request is returned that the caller must resolve with
// ResolveCategory and apply with ApplyCategory.
func (b *Browser) SetCategory(name string) *CategoryRequest {
	b.generation++
	b.facets.Category = name

	if name == "" {
		b.pending = false
		b.logger.Debug("category cleared", "generation", b.generation)
		b.store.ResetBase()
		return nil
	}

	b.pending = true
	b.logger.Debug("category selected", "category", name, "generation", b.generation)
	b.recompute()
	return &CategoryRequest{Generation: b.generation, Category: name}
}

// ResolveCategory fetches the members for req. It does not touch the
// browser state and is safe to call from any goroutine.
func (b *Browser) ResolveCategory(ctx context.Context, req CategoryRequest) CategoryResult {
	entries, err := b.resolver.Resolve(ctx, req.Category)
	return CategoryResult{Request: req, Entries: entries, Err: err}
}

// ApplyCategory installs a resolution result as the base list. Results for
// a superseded selection are discarded and false is returned.
//
// A failed resolution empties the base list and emits an error notice; the
// previous base list never survives a failed category change.
func (b *Browser) ApplyCategory(res CategoryResult) bool {
	if res.Request.Generation != b.generation || res.Request.Category != b.facets.Category {
		b.logger.Debug("discarding stale category result",
			"category", res.Request.Category,
			"generation", res.Request.Generation,
			"current", b.generation,
		)
		return false
	}

	b.pending = false

	if res.Err != nil {
		b.observer.OnNotice(NoticeFromError(
			fmt.Sprintf("Failed to load entries of type '%s'", res.Request.Category), res.Err))
		b.store.SetBase(nil)
		return true
	}

	b.store.SetBase(res.Entries)
	return true
}

// SetRange selects a range group by label ("" clears it) and recomputes
func (b *Browser) SetRange(label string) error {
	if label == "" {
		b.facets.Range = nil
		b.recompute()
		return nil
	}

	group, ok := domain.FindRangeGroup(b.ranges, label)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRange, label)
	}
	b.facets.Range = &group
	b.recompute()
	return nil
}

// SetQuery sets the free-text query and recomputes
func (b *Browser) SetQuery(query string) {
	b.facets.Query = query
	b.recompute()
}

// Facets returns the current selection
func (b *Browser) Facets() Facets {
	return b.facets
}

// Ranges returns the selectable range groups
func (b *Browser) Ranges() []domain.RangeGroup {
	return b.ranges
}

// Pending reports whether a category resolution is outstanding
func (b *Browser) Pending() bool {
	return b.pending
}

// Result returns a copy of the displayed list
func (b *Browser) Result() []domain.Entry {
	return slices.Clone(b.result)
}

// Catalog returns a snapshot of the full catalog
func (b *Browser) Catalog() []domain.Entry {
	return b.store.Full()
}

// CatalogSize returns the number of entries in the full catalog
func (b *Browser) CatalogSize() int {
	return b.store.Size()
}

// recompute derives the displayed list from the base list and facets
func (b *Browser) recompute() {
	b.result = Apply(b.store.Base(), b.facets.Range, b.facets.Query)
	b.observer.OnResult(slices.Clone(b.result))

	// No empty notice for an interim list computed against the old base
	if len(b.result) == 0 && b.facets.Active() && !b.pending && b.store.Loaded() {
		b.observer.OnNotice(Notice{Kind: NoticeEmpty, Message: EmptyResultMessage})
	}
}
