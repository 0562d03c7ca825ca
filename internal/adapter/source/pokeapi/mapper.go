package pokeapi

import (
	"fmt"
	"strings"

	"github.com/mmcdole/dex/internal/domain"
)

// ResourceID extracts the identifier from a resource URL,
// e.g. "https://pokeapi.co/api/v2/pokemon/1/" -> "1"
func ResourceID(resourceURL string) string {
	trimmed := strings.TrimRight(resourceURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// ArtworkURL builds the official artwork URL for an entry ID
func ArtworkURL(artworkBaseURL, id string) string {
	return fmt.Sprintf("%s/%s.png", strings.TrimRight(artworkBaseURL, "/"), id)
}

// MapEntry converts a named resource into a domain entry
func MapEntry(r NamedResource, artworkBaseURL string) domain.Entry {
	id := ResourceID(r.URL)
	return domain.Entry{
		ID:       id,
		Name:     r.Name,
		ImageURL: ArtworkURL(artworkBaseURL, id),
	}
}

// MapEntries converts a list of named resources, preserving order
func MapEntries(resources []NamedResource, artworkBaseURL string) []domain.Entry {
	entries := make([]domain.Entry, len(resources))
	for i, r := range resources {
		entries[i] = MapEntry(r, artworkBaseURL)
	}
	return entries
}

// MapTypeMembers converts the member slots of a type, preserving order
func MapTypeMembers(slots []PokemonSlot, artworkBaseURL string) []domain.Entry {
	entries := make([]domain.Entry, len(slots))
	for i, s := range slots {
		entries[i] = MapEntry(s.Pokemon, artworkBaseURL)
	}
	return entries
}

// MapCategories converts the type list
func MapCategories(resources []NamedResource) []domain.Category {
	categories := make([]domain.Category, len(resources))
	for i, r := range resources {
		categories[i] = domain.Category{Name: r.Name, URL: r.URL}
	}
	return categories
}

// MapPokemon converts a detail response
func MapPokemon(p *PokemonResponse) *domain.EntryDetail {
	detail := &domain.EntryDetail{
		ID:     p.ID,
		Name:   p.Name,
		Height: p.Height,
		Weight: p.Weight,
	}

	for _, t := range p.Types {
		detail.Types = append(detail.Types, t.Type.Name)
	}
	for _, s := range p.Stats {
		detail.Stats = append(detail.Stats, domain.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}

	if p.Sprites.FrontDefault != nil {
		detail.SpriteURL = *p.Sprites.FrontDefault
	}
	if o := p.Sprites.Other; o != nil && o.OfficialArtwork != nil && o.OfficialArtwork.FrontDefault != nil {
		detail.ArtworkURL = *o.OfficialArtwork.FrontDefault
	}

	return detail
}
