package domain

// DetailCache holds entry details for the lifetime of a session.
// Lookups work by numeric ID or by lowercase name.
type DetailCache interface {
	GetDetail(idOrName string) (*EntryDetail, bool)
	SaveDetail(detail *EntryDetail) error
	InvalidateAll()
	Close() error
}
