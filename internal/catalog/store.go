package catalog

import (
	"context"
	"log/slog"
	"slices"

	"github.com/mmcdole/dex/internal/domain"
)

// Store holds the full catalog and the active base list.
//
// The base list is either the full catalog or the member list of the
// selected category. Installing a new catalog replaces a base that is the
// full catalog and leaves a member list alone. Every base change calls the OnChange callback
// synchronously, before the mutating method returns.
//
// Store is not safe for concurrent use; it belongs to a single
// execution context. FetchFull is the only method safe to call elsewhere.
type Store struct {
	repo   domain.EntryRepository
	limit  int
	logger *slog.Logger

	full     []domain.Entry
	base     []domain.Entry
	baseFull bool // base is the full catalog
	loaded   bool
	onChange func()
}

// NewStore creates an empty store that loads up to limit entries from repo
func NewStore(repo domain.EntryRepository, limit int, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{repo: repo, limit: limit, logger: logger, baseFull: true}
}

// OnChange registers the callback run after every base list change
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// FetchFull downloads the full catalog without touching the store
func (s *Store) FetchFull(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.repo.ListEntries(ctx, s.limit)
	if err != nil {
		s.logger.Error("failed to fetch catalog", "error", err)
		return nil, err
	}
	s.logger.Debug("fetched catalog", "count", len(entries))
	return entries, nil
}

// LoadFull fetches and installs the full catalog. On failure the
// previous state is kept.
func (s *Store) LoadFull(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.FetchFull(ctx)
	if err != nil {
		return nil, err
	}
	s.InstallFull(entries)
	return s.Full(), nil
}

// InstallFull replaces the full catalog. A base list that was the full
// catalog follows the new one; a category member list is kept.
func (s *Store) InstallFull(entries []domain.Entry) {
	s.full = slices.Clone(entries)
	s.loaded = true
	s.logger.Info("catalog installed", "count", len(s.full), "base_full", s.baseFull)
	if s.baseFull {
		s.base = s.full
	}
	s.changed()
}

// Loaded reports whether a full catalog has been installed
func (s *Store) Loaded() bool {
	return s.loaded
}

// SetBase replaces the base list wholesale
func (s *Store) SetBase(entries []domain.Entry) {
	s.base = slices.Clone(entries)
	s.baseFull = false
	s.changed()
}

// ResetBase makes the full catalog the base list again
func (s *Store) ResetBase() {
	s.base = s.full
	s.baseFull = true
	s.changed()
}

// Full returns a copy of the full catalog
func (s *Store) Full() []domain.Entry {
	return slices.Clone(s.full)
}

// Size returns the number of entries in the full catalog
func (s *Store) Size() int {
	return len(s.full)
}

// Base returns the current base list. Callers must not modify it.
func (s *Store) Base() []domain.Entry {
	return s.base
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
