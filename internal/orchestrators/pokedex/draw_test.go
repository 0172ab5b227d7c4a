package pokedex

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawPokemonID_CoversFirstGeneration(t *testing.T) {
	o := &orchestrator{roller: dice.DefaultRoller}

	// 20k draws leave each of 151 buckets empty with probability ~e^-132
	const trials = 20000
	seen := make(map[int]int, FirstGenerationCount)
	for i := 0; i < trials; i++ {
		id, err := o.drawPokemonID()
		require.NoError(t, err)
		require.GreaterOrEqual(t, id, 1)
		require.LessOrEqual(t, id, FirstGenerationCount)
		seen[id]++
	}

	assert.Len(t, seen, FirstGenerationCount)
	for id := 1; id <= FirstGenerationCount; id++ {
		assert.Positive(t, seen[id], "id %d never drawn", id)
	}
}
