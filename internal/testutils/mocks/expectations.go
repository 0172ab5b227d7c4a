// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokeroll/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokeroll/internal/entities/pokemon"
)

// ExpectEntryFetch expects the pokemon fetch followed by the species fetch, both for id
func ExpectEntryFetch(
	ctx context.Context,
	mockClient *pokeapimock.MockClient,
	id int,
	p *pokemon.Pokemon,
	species *pokemon.Species,
) {
	gomock.InOrder(
		mockClient.EXPECT().GetPokemon(ctx, id).Return(p, nil),
		mockClient.EXPECT().GetPokemonSpecies(ctx, id).Return(species, nil),
	)
}

// ExpectPokemonFetchError expects a failing pokemon fetch and no species fetch
func ExpectPokemonFetchError(ctx context.Context, mockClient *pokeapimock.MockClient, id int, err error) {
	mockClient.EXPECT().GetPokemon(ctx, id).Return(nil, err)
	mockClient.EXPECT().GetPokemonSpecies(gomock.Any(), gomock.Any()).Times(0)
}
