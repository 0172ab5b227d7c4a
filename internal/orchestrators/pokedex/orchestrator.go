// Package pokedex implements the orchestrator that draws and resolves pokedex entries
package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=pokedexmock github.com/KirkDiggler/pokeroll/internal/orchestrators/pokedex Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/pokeroll/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokeroll/internal/entities/pokemon"
	"github.com/KirkDiggler/pokeroll/internal/errors"
)

// FirstGenerationCount is the number of pokemon in the first generation.
// Ids 1 through 151 inclusive.
const FirstGenerationCount = 151

// Service defines the interface for pokedex operations
type Service interface {
	// RandomEntry draws a first generation id and resolves its entry
	RandomEntry(ctx context.Context, input *RandomEntryInput) (*RandomEntryOutput, error)

	// GetEntry resolves the entry for a given id
	GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error)
}

// Config holds the dependencies for the pokedex orchestrator
type Config struct {
	Client pokeapi.Client
	// DiceRoller draws the id (optional, defaults to dice.DefaultRoller)
	DiceRoller dice.Roller
	// Language of the presented name (optional, defaults to ko)
	Language pokemon.LanguageCode
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.DiceRoller == nil {
		c.DiceRoller = dice.DefaultRoller
	}
	if c.Language == "" {
		c.Language = pokemon.LanguageKorean
	}

	return vb.Build()
}

type orchestrator struct {
	client   pokeapi.Client
	roller   dice.Roller
	language pokemon.LanguageCode
}

// NewOrchestrator creates a new pokedex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:   cfg.Client,
		roller:   cfg.DiceRoller,
		language: cfg.Language,
	}, nil
}

// RandomEntry rolls a d151 and resolves that entry
func (o *orchestrator) RandomEntry(ctx context.Context, _ *RandomEntryInput) (*RandomEntryOutput, error) {
	id, err := o.drawPokemonID()
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "drew pokemon", "pokemon_id", id)

	out, err := o.GetEntry(ctx, &GetEntryInput{PokemonID: id})
	if err != nil {
		return nil, err
	}

	return &RandomEntryOutput{Entry: out.Entry}, nil
}

// GetEntry fetches the pokemon and its species, in that order, with the same id
func (o *orchestrator) GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("PokemonID", input.PokemonID, 1, FirstGenerationCount, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	p, err := o.client.GetPokemon(ctx, input.PokemonID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pokemon")
	}

	spriteURL := p.FrontSprite()
	if spriteURL == "" {
		slog.WarnContext(ctx, "pokemon has no default front sprite", "pokemon_id", input.PokemonID)
	}

	species, err := o.client.GetPokemonSpecies(ctx, input.PokemonID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pokemon species")
	}

	name, err := species.LocalizedName(o.language)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select localized name").
			WithMeta("pokemon_id", input.PokemonID)
	}

	return &GetEntryOutput{
		Entry: &Entry{
			PokemonID:     input.PokemonID,
			SpriteURL:     spriteURL,
			Language:      o.language,
			LocalizedName: name,
		},
	}, nil
}

// drawPokemonID rolls a single FirstGenerationCount-sided die
func (o *orchestrator) drawPokemonID() (int, error) {
	id, err := o.roller.Roll(FirstGenerationCount)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll pokemon id")
	}

	if id < 1 || id > FirstGenerationCount {
		return 0, errors.Internalf("roller returned %d outside [1, %d]", id, FirstGenerationCount)
	}

	return id, nil
}
