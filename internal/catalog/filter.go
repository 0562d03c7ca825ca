package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mmcdole/dex/internal/domain"
)

// Apply narrows base to the entries matching the range group and the query.
// The range is applied first, then the query; base order is preserved.
//
// With rng set, entries whose ID is not an integer are dropped. A blank
// query (after trimming) matches everything; otherwise matching is a
// case-folded substring test against Entry.Name.
//
// Apply is pure: base is never modified and the result never aliases it.
func Apply(base []domain.Entry, rng *domain.RangeGroup, query string) []domain.Entry {
	result := make([]domain.Entry, 0, len(base))

	if rng != nil {
		for _, e := range base {
			if id, ok := e.NumericID(); ok && rng.Contains(id) {
				result = append(result, e)
			}
		}
	} else {
		result = append(result, base...)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return result
	}

	folder := cases.Fold()
	needle := folder.String(query)

	kept := result[:0]
	for _, e := range result {
		if strings.Contains(folder.String(e.Name), needle) {
			kept = append(kept, e)
		}
	}
	return kept
}
