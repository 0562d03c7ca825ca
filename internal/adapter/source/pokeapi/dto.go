package pokeapi

// NamedResource is the {name, url} pair PokeAPI uses for references
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListResponse is a paginated resource list (/pokemon, /type)
type ListResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// PokemonResponse is the detail object returned by /pokemon/{idOrName}
type PokemonResponse struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Height  int        `json:"height"` // Decimetres
	Weight  int        `json:"weight"` // Hectograms
	Types   []TypeSlot `json:"types"`
	Stats   []StatSlot `json:"stats"`
	Sprites Sprites    `json:"sprites"`
}

// TypeSlot is one entry of a pokemon's type list
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatSlot is one base stat of a pokemon
type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// Sprites holds the image URLs of a pokemon
type Sprites struct {
	FrontDefault *string       `json:"front_default"`
	Other        *OtherSprites `json:"other"`
}

// OtherSprites holds alternative artwork sets
type OtherSprites struct {
	OfficialArtwork *OfficialArtwork `json:"official-artwork"`
}

// OfficialArtwork is the high-quality artwork set
type OfficialArtwork struct {
	FrontDefault *string `json:"front_default"`
}

// TypeResponse is the detail object returned by /type/{name}
type TypeResponse struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Pokemon []PokemonSlot `json:"pokemon"`
}

// PokemonSlot is a member of a type
type PokemonSlot struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}
