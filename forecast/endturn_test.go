package forecast

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketsim/pocketsim/model"
)

func TestForecastCheckupParalysisAlwaysClears(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.TurnCount = 1
	pc := freshPlayed(100, false)
	pc.Paralyzed = true
	state.InPlay[0][0] = pc
	state.InPlay[1][0] = freshPlayed(100, false)

	probs, mutations := forecastCheckup(state)
	require.Len(t, probs, 1)
	rng := rand.New(rand.NewSource(1))
	mutations[0](rng, state, model.Action{Actor: 0})

	require.False(t, state.InPlay[0][0].Paralyzed)
}

func TestForecastCheckupPoisonDealsTenDamage(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.TurnCount = 1
	pc := freshPlayed(100, false)
	pc.Poisoned = true
	state.InPlay[0][0] = pc
	state.InPlay[1][0] = freshPlayed(100, false)

	_, mutations := forecastCheckup(state)
	rng := rand.New(rand.NewSource(1))
	mutations[0](rng, state, model.Action{Actor: 0})

	require.EqualValues(t, 90, state.InPlay[0][0].RemainingHP)
}

func TestForecastCheckupPoisonKnockoutAwardsPointToOpponent(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.TurnCount = 1
	pc := freshPlayed(10, false)
	pc.Poisoned = true
	state.InPlay[0][0] = pc
	state.InPlay[1][0] = freshPlayed(100, false)

	_, mutations := forecastCheckup(state)
	rng := rand.New(rand.NewSource(1))
	mutations[0](rng, state, model.Action{Actor: 0})

	require.EqualValues(t, 1, state.Points[1])
	require.Nil(t, state.InPlay[0][0])
}

func TestForecastCheckupSleepEnumeratesBothWakeOutcomesUniformly(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.TurnCount = 1
	pc := freshPlayed(100, false)
	pc.Asleep = true
	state.InPlay[0][0] = pc
	state.InPlay[1][0] = freshPlayed(100, false)

	probs, mutations := forecastCheckup(state)
	require.Len(t, probs, 2)
	require.InDelta(t, 0.5, probs[0], 1e-9)
	require.InDelta(t, 0.5, probs[1], 1e-9)

	awake := state.Clone()
	rng := rand.New(rand.NewSource(1))
	mutations[1](rng, awake, model.Action{Actor: 0})
	require.False(t, awake.InPlay[0][0].Asleep)

	stillAsleep := state.Clone()
	mutations[0](rng, stillAsleep, model.Action{Actor: 0})
	require.True(t, stillAsleep.InPlay[0][0].Asleep)
}

func TestSetupAdvanceStartsTurnOneOnceBothSidesHaveAnActive(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.InPlay[0][0] = freshPlayed(100, false)
	state.InPlay[1][0] = freshPlayed(100, false)

	rng := rand.New(rand.NewSource(1))
	setupAdvance(rng, state, model.Action{Actor: 0})

	require.EqualValues(t, 1, state.TurnCount)
	require.Len(t, state.MoveGenerationStack, 1)
}
