package catalog

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/mmcdole/dex/internal/domain"
)

// hiddenCategories are listed by the server but have no regular members
var hiddenCategories = []string{"unknown", "shadow"}

// Resolver looks up category membership on the server.
// It is safe for concurrent use.
type Resolver struct {
	repo   domain.CategoryRepository
	limit  int
	logger *slog.Logger

	group      singleflight.Group
	mu         sync.RWMutex
	categories []domain.Category // nil until the first successful fetch
}

// NewResolver creates a resolver; limit bounds the category list request
func NewResolver(repo domain.CategoryRepository, limit int, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{repo: repo, limit: limit, logger: logger}
}

// Resolve fetches the ordered member list of a category
func (r *Resolver) Resolve(ctx context.Context, name string) ([]domain.Entry, error) {
	members, err := r.repo.GetCategoryMembers(ctx, strings.ToLower(name))
	if err != nil {
		r.logger.Error("failed to resolve category", "category", name, "error", err)
		return nil, err
	}
	r.logger.Debug("resolved category", "category", name, "count", len(members))
	return members, nil
}

// Categories returns the selectable categories. The list is fetched on
// first use and cached; concurrent first callers share one request.
// Failures are not cached.
func (r *Resolver) Categories(ctx context.Context) ([]domain.Category, error) {
	if cached, ok := r.CachedCategories(); ok {
		return cached, nil
	}

	v, err, shared := r.group.Do("categories", func() (any, error) {
		all, err := r.repo.ListCategories(ctx, r.limit)
		if err != nil {
			return nil, err
		}
		visible := slices.DeleteFunc(slices.Clone(all), func(c domain.Category) bool {
			return slices.Contains(hiddenCategories, c.Name)
		})
		if visible == nil {
			visible = []domain.Category{}
		}

		r.mu.Lock()
		r.categories = visible
		r.mu.Unlock()
		return visible, nil
	})
	if err != nil {
		r.logger.Error("failed to load categories", "error", err)
		return nil, err
	}

	r.logger.Debug("loaded categories", "count", len(v.([]domain.Category)), "shared", shared)
	return slices.Clone(v.([]domain.Category)), nil
}

// CachedCategories returns the cached category list without network access
func (r *Resolver) CachedCategories() ([]domain.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.categories == nil {
		return nil, false
	}
	return slices.Clone(r.categories), true
}
