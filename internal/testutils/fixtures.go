// Package testutils provides shared fixtures for pokeroll tests
package testutils

import (
	"github.com/KirkDiggler/pokeroll/internal/entities/pokemon"
)

const (
	// PikachuID is the national dex number used by most fixtures
	PikachuID = 25

	// PikachuSpriteURL is the default front sprite of the pikachu fixture
	PikachuSpriteURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png"

	// PikachuKoreanName is the ko name of the pikachu fixture
	PikachuKoreanName = "피카츄"

	// PikachuJSON is a trimmed /pokemon/25 payload with extra fields left in
	PikachuJSON = `{
		"id": 25,
		"name": "pikachu",
		"base_experience": 112,
		"sprites": {
			"front_default": "` + PikachuSpriteURL + `",
			"back_default": "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/back/25.png",
			"other": {"home": {"front_default": "ignored"}}
		},
		"weight": 60
	}`

	// PikachuSpeciesJSON is a trimmed /pokemon-species/25 payload
	PikachuSpeciesJSON = `{
		"id": 25,
		"name": "pikachu",
		"names": [
			{"name": "ピカチュウ", "language": {"name": "ja-Hrkt", "url": "https://pokeapi.co/api/v2/language/1/"}},
			{"name": "피카츄", "language": {"name": "ko", "url": "https://pokeapi.co/api/v2/language/3/"}},
			{"name": "Pikachu", "language": {"name": "en", "url": "https://pokeapi.co/api/v2/language/9/"}}
		]
	}`

	// PikachuSpeciesWithoutKoJSON has no ko entry
	PikachuSpeciesWithoutKoJSON = `{"id": 25, "names": [{"name": "Pikachu", "language": {"name": "en"}}]}`
)

// CreateTestPokemon creates a pokemon with a default front sprite
func CreateTestPokemon(id int) *pokemon.Pokemon {
	return &pokemon.Pokemon{
		ID:      id,
		Name:    "pikachu",
		Sprites: &pokemon.Sprites{FrontDefault: PikachuSpriteURL},
	}
}

// CreateTestSpecies creates a species with ko and en names, ko first
func CreateTestSpecies(id int) *pokemon.Species {
	return &pokemon.Species{
		ID: id,
		Names: []pokemon.LocalizedName{
			{Name: PikachuKoreanName, Language: pokemon.NamedResource{Name: string(pokemon.LanguageKorean)}},
			{Name: "Pikachu", Language: pokemon.NamedResource{Name: string(pokemon.LanguageEnglish)}},
		},
	}
}
