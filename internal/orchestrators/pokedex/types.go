package pokedex

import "github.com/KirkDiggler/pokeroll/internal/entities/pokemon"

// RandomEntryInput defines the request for drawing a random entry
type RandomEntryInput struct{}

// RandomEntryOutput defines the response for drawing a random entry
type RandomEntryOutput struct {
	Entry *Entry
}

// GetEntryInput defines the request for a specific entry
type GetEntryInput struct {
	PokemonID int
}

// GetEntryOutput defines the response for a specific entry
type GetEntryOutput struct {
	Entry *Entry
}

// Entry is what gets presented for one pokemon
type Entry struct {
	PokemonID     int
	SpriteURL     string
	Language      pokemon.LanguageCode
	LocalizedName string
}
