package detail

import (
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/dex/internal/domain"
)

const (
	maxSuggestions = 3

	// maxTypoDistance bounds the edit distance of typo suggestions
	maxTypoDistance = 3
)

// Suggest returns up to limit catalog names close to query, best first.
//
// Names containing the query as an in-order subsequence rank first (so an
// abbreviation like "pkchu" finds "pikachu"); the rest are filled with names
// within a small edit distance, which catches typos.
func Suggest(query string, catalog []domain.Entry, limit int) []string {
	if query == "" || limit <= 0 || len(catalog) == 0 {
		return nil
	}

	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	var out []string
	for _, r := range ranks {
		if len(out) == limit {
			return out
		}
		out = append(out, r.Target)
	}

	type candidate struct {
		name     string
		distance int
	}
	var typos []candidate
	for _, name := range names {
		if slices.Contains(out, name) {
			continue
		}
		if d := fuzzy.LevenshteinDistance(query, name); d <= maxTypoDistance {
			typos = append(typos, candidate{name: name, distance: d})
		}
	}
	sort.SliceStable(typos, func(i, j int) bool { return typos[i].distance < typos[j].distance })

	for _, c := range typos {
		if len(out) == limit {
			break
		}
		out = append(out, c.name)
	}
	return out
}
