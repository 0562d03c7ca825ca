package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryNumericID(t *testing.T) {
	n, ok := Entry{ID: "152"}.NumericID()
	require.True(t, ok)
	assert.Equal(t, 152, n)

	_, ok = Entry{ID: "10001-mega"}.NumericID()
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Bulbasaur", DisplayName("bulbasaur"))
	assert.Equal(t, "Special-Attack", DisplayName("special-attack"))
	assert.Equal(t, "", DisplayName(""))
}

func TestEntryDetailFormatting(t *testing.T) {
	d := EntryDetail{
		ID:     6,
		Name:   "charizard",
		Height: 17,
		Weight: 905,
		Types:  []string{"fire", "flying"},
		Stats: []Stat{
			{Name: "hp", Base: 78},
			{Name: "attack", Base: 84},
			{Name: "accuracy", Base: 100},
			{Name: "special-attack", Base: 109},
		},
		SpriteURL: "sprite.png",
	}

	assert.Equal(t, "CHARIZARD (#6)", d.Heading())
	assert.Equal(t, "1.7 m", d.FormattedHeight())
	assert.Equal(t, "90.5 kg", d.FormattedWeight())
	assert.Equal(t, "Fire, Flying", d.FormattedTypes())
	assert.Equal(t, []string{"Hp: 78", "Attack: 84", "Special-Attack: 109"}, d.DisplayStats())
	assert.Equal(t, "sprite.png", d.ImageURL())

	d.ArtworkURL = "art.png"
	assert.Equal(t, "art.png", d.ImageURL())
}

func TestGenerationsAreContiguous(t *testing.T) {
	require.NotEmpty(t, Generations)
	assert.Equal(t, 1, Generations[0].Low)
	for i := 1; i < len(Generations); i++ {
		assert.Equal(t, Generations[i-1].High+1, Generations[i].Low, Generations[i].Label)
	}

	g, ok := FindRangeGroup(Generations, "Gen II")
	require.True(t, ok)
	assert.True(t, g.Contains(152))
	assert.True(t, g.Contains(251))
	assert.False(t, g.Contains(252))

	_, ok = FindRangeGroup(Generations, "Gen X")
	assert.False(t, ok)
}

func TestNotFoundErrorIs(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &NotFoundError{ID: "pikachoo", Suggestions: []string{"pikachu"}})
	assert.True(t, errors.Is(err, ErrEntryNotFound))
	assert.Contains(t, err.Error(), "did you mean pikachu")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "pikachoo", nf.ID)
}

func TestFetchErrorUnwrap(t *testing.T) {
	err := &FetchError{Op: "list entries", Err: ErrServerOffline}
	assert.True(t, errors.Is(err, ErrServerOffline))

	err = &FetchError{Op: "list entries", StatusCode: 503}
	assert.Equal(t, "list entries: unexpected status code: 503", err.Error())
}
