package driver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketsim/pocketsim/agent"
	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/driver"
	"github.com/pocketsim/pocketsim/model"
)

func testDeck() model.Deck {
	bulbasaur, _ := catalog.ByID(catalog.Bulbasaur)
	ivysaur, _ := catalog.ByID(catalog.Ivysaur)
	venusaur, _ := catalog.ByID(catalog.Venusaur)
	exeggcute, _ := catalog.ByID(catalog.Exeggcute)
	exeggutor, _ := catalog.ByID(catalog.Exeggutor)

	var cards []model.Card
	for i := 0; i < 6; i++ {
		cards = append(cards, bulbasaur)
	}
	for i := 0; i < 6; i++ {
		cards = append(cards, ivysaur)
	}
	for i := 0; i < 2; i++ {
		cards = append(cards, venusaur)
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, exeggcute)
	}
	for i := 0; i < 2; i++ {
		cards = append(cards, exeggutor)
	}
	return model.Deck{Cards: cards, EnergyTypes: model.DefaultEnergyTypes(cards)}
}

func playGame(seed int64, agentA, agentB driver.Agent) driver.Result {
	rng := rand.New(rand.NewSource(seed))
	deckA, deckB := testDeck(), testDeck()
	state := model.Initialize(deckA, deckB, rng)
	game := driver.NewGame(agentA, agentB)
	return game.Play(rng, state)
}

func TestGameIsDeterministicForAGivenSeed(t *testing.T) {
	a := playGame(42, agent.Random{}, agent.Random{})
	b := playGame(42, agent.Random{}, agent.Random{})

	require.Equal(t, a.Outcome, b.Outcome)
	require.Equal(t, a.TurnCount, b.TurnCount)
	require.Equal(t, a.Plies, b.Plies)
}

func TestRandomVsRandomTerminatesWithoutPanicking(t *testing.T) {
	require.NotPanics(t, func() {
		result := playGame(1406385978241804004, agent.Random{}, agent.Random{})
		require.LessOrEqual(t, result.TurnCount, uint8(driver.MaxTurns))
	})
}

func TestGameStopsAtTurnCapWhenBothAgentsPassivelyEndTurn(t *testing.T) {
	result := playGame(3, agent.EndTurn{}, agent.EndTurn{})
	require.EqualValues(t, driver.MaxTurns, result.TurnCount)
	require.Nil(t, result.Outcome)
}

func TestRolloutPlaysAClonedStateLeavingOriginalUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	deckA, deckB := testDeck(), testDeck()
	state := model.Initialize(deckA, deckB, rng)
	before := state.CardConservationCount(0)

	driver.Rollout(rng, state, agent.Random{}, agent.Random{})

	require.Equal(t, before, state.CardConservationCount(0))
}
