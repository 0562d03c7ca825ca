package domain

import "context"

// EntryRepository provides access to catalog entries
type EntryRepository interface {
	// ListEntries returns the first limit entries in catalog order
	ListEntries(ctx context.Context, limit int) ([]Entry, error)

	// GetEntry returns the full record for an ID or lowercase name.
	// Returns *NotFoundError when the server does not know it.
	GetEntry(ctx context.Context, idOrName string) (*EntryDetail, error)
}

// CategoryRepository provides access to server-side category groupings
type CategoryRepository interface {
	// ListCategories returns up to limit categories
	ListCategories(ctx context.Context, limit int) ([]Category, error)

	// GetCategoryMembers returns the ordered members of a category
	GetCategoryMembers(ctx context.Context, name string) ([]Entry, error)
}

// CatalogSource combines the repositories a catalog backend must implement
type CatalogSource interface {
	EntryRepository
	CategoryRepository
}
