package domain

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is one catalog item as listed by the catalog endpoints.
// Entries are immutable once fetched.
type Entry struct {
	ID       string // Trailing path segment of the item URL (numeric for real entries)
	Name     string // Lowercase API name, e.g. "bulbasaur"
	ImageURL string // Official artwork URL derived from ID
}

// NumericID returns the entry ID as an integer, if it is one.
func (e Entry) NumericID() (int, bool) {
	n, err := strconv.Atoi(e.ID)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DisplayName returns the title-cased name for display
func (e Entry) DisplayName() string {
	return DisplayName(e.Name)
}

// Category is one selectable category (elemental type)
type Category struct {
	Name string
	URL  string
}

// DisplayName returns the title-cased category name
func (c Category) DisplayName() string {
	return DisplayName(c.Name)
}

// Stat is a single base stat of an entry
type Stat struct {
	Name string // API stat name, e.g. "special-attack"
	Base int
}

// EntryDetail is the full record behind an Entry
type EntryDetail struct {
	ID         int
	Name       string
	Height     int      // Decimetres
	Weight     int      // Hectograms
	Types      []string // Category names in slot order
	Stats      []Stat
	ArtworkURL string // Official artwork, may be empty
	SpriteURL  string // Basic front sprite, may be empty
}

// detailStats lists the stats shown in the detail view, in display order.
var detailStats = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// Heading returns the detail heading, e.g. "BULBASAUR (#1)"
func (d EntryDetail) Heading() string {
	return fmt.Sprintf("%s (#%d)", strings.ToUpper(d.Name), d.ID)
}

// ImageURL prefers the official artwork and falls back to the sprite
func (d EntryDetail) ImageURL() string {
	if d.ArtworkURL != "" {
		return d.ArtworkURL
	}
	return d.SpriteURL
}

// FormattedHeight returns the height in metres
func (d EntryDetail) FormattedHeight() string {
	return fmt.Sprintf("%.1f m", float64(d.Height)/10.0)
}

// FormattedWeight returns the weight in kilograms
func (d EntryDetail) FormattedWeight() string {
	return fmt.Sprintf("%.1f kg", float64(d.Weight)/10.0)
}

// FormattedTypes returns the display names of the types joined by ", "
func (d EntryDetail) FormattedTypes() string {
	names := make([]string, len(d.Types))
	for i, t := range d.Types {
		names[i] = DisplayName(t)
	}
	return strings.Join(names, ", ")
}

// DisplayStats returns "Name: base" lines for the six headline stats,
// in the order the API reports them.
func (d EntryDetail) DisplayStats() []string {
	var lines []string
	for _, s := range d.Stats {
		if !isDetailStat(s.Name) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %d", DisplayName(s.Name), s.Base))
	}
	return lines
}

func isDetailStat(name string) bool {
	name = strings.ToLower(name)
	for _, s := range detailStats {
		if s == name {
			return true
		}
	}
	return false
}

// DisplayName title-cases an API name without depending on the process
// locale ("special-attack" -> "Special-Attack").
func DisplayName(name string) string {
	return cases.Title(language.Und).String(name)
}
