package pokeapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceID(t *testing.T) {
	assert.Equal(t, "1", ResourceID("https://pokeapi.co/api/v2/pokemon/1/"))
	assert.Equal(t, "10001", ResourceID("https://pokeapi.co/api/v2/pokemon/10001"))
	assert.Equal(t, "plain", ResourceID("plain"))
}

func TestMapPokemonWithoutArtwork(t *testing.T) {
	front := "front.png"
	detail := MapPokemon(&PokemonResponse{ID: 1, Name: "bulbasaur", Sprites: Sprites{FrontDefault: &front}})
	assert.Equal(t, "", detail.ArtworkURL)
	assert.Equal(t, "front.png", detail.ImageURL())
}
