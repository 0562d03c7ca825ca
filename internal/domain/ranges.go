package domain

// RangeGroup is a statically known, inclusive bucket of numeric entry IDs
type RangeGroup struct {
	Label string
	Low   int // Inclusive
	High  int // Inclusive
}

// Contains reports whether id falls inside the group
func (g RangeGroup) Contains(id int) bool {
	return id >= g.Low && id <= g.High
}

// Generations is the ordered, contiguous set of range groups covering the
// national catalog.
var Generations = []RangeGroup{
	{Label: "Gen I", Low: 1, High: 151},
	{Label: "Gen II", Low: 152, High: 251},
	{Label: "Gen III", Low: 252, High: 386},
	{Label: "Gen IV", Low: 387, High: 493},
	{Label: "Gen V", Low: 494, High: 649},
	{Label: "Gen VI", Low: 650, High: 721},
	{Label: "Gen VII", Low: 722, High: 809},
	{Label: "Gen VIII", Low: 810, High: 905},
	{Label: "Gen IX", Low: 906, High: 1025},
}

// FindRangeGroup looks up a group by label
func FindRangeGroup(groups []RangeGroup, label string) (RangeGroup, bool) {
	for _, g := range groups {
		if g.Label == label {
			return g, true
		}
	}
	return RangeGroup{}, false
}
