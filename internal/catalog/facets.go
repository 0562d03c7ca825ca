package catalog

import (
	"strings"

	"github.com/mmcdole/dex/internal/domain"
)

// Facets is the current filter selection. The zero value selects nothing.
type Facets struct {
	Category string             // "" = no category
	Range    *domain.RangeGroup // nil = no range group
	Query    string
}

// Active reports whether any facet narrows the list
func (f Facets) Active() bool {
	return f.Category != "" || f.Range != nil || strings.TrimSpace(f.Query) != ""
}

// RangeLabel returns the selected range label, or "" when none is selected
func (f Facets) RangeLabel() string {
	if f.Range == nil {
		return ""
	}
	return f.Range.Label
}
