//go:build integration
// +build integration

package pokeapi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokeroll/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokeroll/internal/entities/pokemon"
)

func TestGetPokemon_Integration(t *testing.T) {
	// Skip if not running integration tests
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := pokeapi.New(&pokeapi.Config{})
	require.NoError(t, err)

	ctx := context.Background()

	testCases := []struct {
		name   string
		id     int
		wantKo string
	}{
		{name: "bulbasaur", id: 1, wantKo: "이상해씨"},
		{name: "pikachu", id: 25, wantKo: "피카츄"},
		{name: "mew", id: 151, wantKo: "뮤"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := client.GetPokemon(ctx, tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.id, p.ID)
			assert.NotEmpty(t, p.FrontSprite())

			s, err := client.GetPokemonSpecies(ctx, tc.id)
			require.NoError(t, err)

			name, err := s.LocalizedName(pokemon.LanguageKorean)
			require.NoError(t, err)
			assert.Equal(t, tc.wantKo, name)
		})
	}
}
