package detail

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mmcdole/dex/internal/domain"
)

// Service fetches entry details, serving repeats from the session cache.
// It is safe for concurrent use if the cache is.
type Service struct {
	repo   domain.EntryRepository
	cache  domain.DetailCache
	logger *slog.Logger
}

// NewService creates a detail service. cache may be nil.
func NewService(repo domain.EntryRepository, cache domain.DetailCache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

// Get returns the detail record for an ID or name. The identifier is
// lowercased before lookup.
//
// catalog is a snapshot of the full entry list; when the server does not
// know the identifier, the returned *domain.NotFoundError carries the
// closest catalog names as suggestions.
func (s *Service) Get(ctx context.Context, idOrName string, catalog []domain.Entry) (*domain.EntryDetail, error) {
	id := strings.ToLower(strings.TrimSpace(idOrName))
	if id == "" {
		return nil, &domain.NotFoundError{ID: idOrName}
	}

	if s.cache != nil {
		if d, ok := s.cache.GetDetail(id); ok {
			s.logger.Debug("detail cache hit", "id", id)
			return d, nil
		}
	}

	d, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			nf.Suggestions = Suggest(id, catalog, maxSuggestions)
			s.logger.Debug("entry not found", "id", id, "suggestions", nf.Suggestions)
			return nil, nf
		}
		s.logger.Error("failed to fetch detail", "id", id, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SaveDetail(d); err != nil {
			s.logger.Error("failed to cache detail", "id", id, "error", err)
		}
	}
	return d, nil
}

// Invalidate drops every cached detail
func (s *Service) Invalidate() {
	if s.cache != nil {
		s.cache.InvalidateAll()
	}
}
