package pokedex_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokeroll/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokeroll/internal/entities/pokemon"
	"github.com/KirkDiggler/pokeroll/internal/errors"
	"github.com/KirkDiggler/pokeroll/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokeroll/internal/testutils"
	"github.com/KirkDiggler/pokeroll/internal/testutils/mocks"
)

// stubDiceRoller returns a fixed value
type stubDiceRoller struct {
	value int
	err   error
	sizes []int
}

func (s *stubDiceRoller) Roll(size int) (int, error) {
	s.sizes = append(s.sizes, size)
	return s.value, s.err
}

func (s *stubDiceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *pokeapimock.MockClient
	roller       *stubDiceRoller
	orchestrator pokedex.Service
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.roller = &stubDiceRoller{value: 25}

	orchestrator, err := pokedex.NewOrchestrator(&pokedex.Config{
		Client:     s.mockClient,
		DiceRoller: s.roller,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_RequiresClient() {
	_, err := pokedex.NewOrchestrator(&pokedex.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_Defaults() {
	cfg := &pokedex.Config{Client: s.mockClient}
	_, err := pokedex.NewOrchestrator(cfg)
	s.Require().NoError(err)

	s.NotNil(cfg.DiceRoller)
	s.Equal(pokemon.LanguageKorean, cfg.Language)
}

func (s *OrchestratorTestSuite) TestRandomEntry_Success() {
	ctx := context.Background()

	mocks.ExpectEntryFetch(ctx, s.mockClient, testutils.PikachuID,
		testutils.CreateTestPokemon(testutils.PikachuID),
		testutils.CreateTestSpecies(testutils.PikachuID))

	out, err := s.orchestrator.RandomEntry(ctx, &pokedex.RandomEntryInput{})
	s.Require().NoError(err)
	s.Require().NotNil(out.Entry)

	s.Equal(25, out.Entry.PokemonID)
	s.Equal(testutils.PikachuSpriteURL, out.Entry.SpriteURL)
	s.Equal(testutils.PikachuKoreanName, out.Entry.LocalizedName)
	s.Equal(pokemon.LanguageKorean, out.Entry.Language)
	s.Equal([]int{pokedex.FirstGenerationCount}, s.roller.sizes)
}

func (s *OrchestratorTestSuite) TestRandomEntry_SameIDForBothCalls() {
	for _, id := range []int{1, 77, 151} {
		s.Run(fmt.Sprintf("id_%d", id), func() {
			ctx := context.Background()
			s.roller.value = id

			mocks.ExpectEntryFetch(ctx, s.mockClient, id,
				testutils.CreateTestPokemon(id),
				testutils.CreateTestSpecies(id))

			out, err := s.orchestrator.RandomEntry(ctx, nil)
			s.Require().NoError(err)
			s.Equal(id, out.Entry.PokemonID)
		})
	}
}

func (s *OrchestratorTestSuite) TestRandomEntry_RollerError() {
	s.roller.err = fmt.Errorf("entropy exhausted")

	_, err := s.orchestrator.RandomEntry(context.Background(), &pokedex.RandomEntryInput{})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestRandomEntry_RollerOutOfRange() {
	s.roller.value = 152

	_, err := s.orchestrator.RandomEntry(context.Background(), &pokedex.RandomEntryInput{})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestGetEntry_InvalidID() {
	for _, id := range []int{0, -1, 152} {
		s.Run(fmt.Sprintf("id_%d", id), func() {
			_, err := s.orchestrator.GetEntry(context.Background(), &pokedex.GetEntryInput{PokemonID: id})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestGetEntry_NilInput() {
	_, err := s.orchestrator.GetEntry(context.Background(), nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetEntry_PokemonFetchFails() {
	ctx := context.Background()

	mocks.ExpectPokemonFetchError(ctx, s.mockClient, 25, errors.Unavailable("request failed"))

	_, err := s.orchestrator.GetEntry(ctx, &pokedex.GetEntryInput{PokemonID: 25})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestGetEntry_SpeciesFetchFails() {
	ctx := context.Background()

	s.mockClient.EXPECT().GetPokemon(ctx, 25).Return(testutils.CreateTestPokemon(25), nil)
	s.mockClient.EXPECT().
		GetPokemonSpecies(ctx, 25).
		Return(nil, errors.New(errors.CodeDataLoss, "failed to decode response"))

	_, err := s.orchestrator.GetEntry(ctx, &pokedex.GetEntryInput{PokemonID: 25})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *OrchestratorTestSuite) TestGetEntry_NoKoreanName() {
	ctx := context.Background()

	s.mockClient.EXPECT().GetPokemon(ctx, 25).Return(testutils.CreateTestPokemon(25), nil)
	s.mockClient.EXPECT().GetPokemonSpecies(ctx, 25).Return(&pokemon.Species{
		Names: []pokemon.LocalizedName{
			{Name: "Pikachu", Language: pokemon.NamedResource{Name: "en"}},
		},
	}, nil)

	out, err := s.orchestrator.GetEntry(ctx, &pokedex.GetEntryInput{PokemonID: 25})
	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsNotFound(err))
	s.Equal(25, errors.GetMeta(err)["pokemon_id"])
}

func (s *OrchestratorTestSuite) TestGetEntry_MissingSpriteIsNotFatal() {
	ctx := context.Background()

	s.mockClient.EXPECT().GetPokemon(ctx, 25).Return(&pokemon.Pokemon{ID: 25}, nil)
	s.mockClient.EXPECT().GetPokemonSpecies(ctx, 25).Return(testutils.CreateTestSpecies(25), nil)

	out, err := s.orchestrator.GetEntry(ctx, &pokedex.GetEntryInput{PokemonID: 25})
	s.Require().NoError(err)
	s.Equal("", out.Entry.SpriteURL)
	s.Equal(testutils.PikachuKoreanName, out.Entry.LocalizedName)
}

func (s *OrchestratorTestSuite) TestGetEntry_ConfiguredLanguage() {
	ctx := context.Background()

	orchestrator, err := pokedex.NewOrchestrator(&pokedex.Config{
		Client:     s.mockClient,
		DiceRoller: s.roller,
		Language:   pokemon.LanguageEnglish,
	})
	s.Require().NoError(err)

	s.mockClient.EXPECT().GetPokemon(ctx, 25).Return(testutils.CreateTestPokemon(25), nil)
	s.mockClient.EXPECT().GetPokemonSpecies(ctx, 25).Return(testutils.CreateTestSpecies(25), nil)

	out, err := orchestrator.GetEntry(ctx, &pokedex.GetEntryInput{PokemonID: 25})
	s.Require().NoError(err)
	s.Equal("Pikachu", out.Entry.LocalizedName)
}
