package forecast

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/model"
)

func twentyCardDeck() model.Deck {
	return model.Deck{Cards: make([]model.Card, 20)}
}

func TestForecastProbabilitiesSumToOne(t *testing.T) {
	cases := []struct {
		name string
		card model.CardID
		idx  int
	}{
		{"coin flip damage", catalog.Poliwrath, 0},
		{"bench count", catalog.Poliwrath, 1},
		{"status apply half chance", catalog.Weezing, 0},
		{"status apply always", catalog.Koffing, 0},
		{"flip until tails", catalog.HoOhEX, 0},
		{"energy scaled coins", catalog.Raichu, 0},
		{"direct damage", catalog.Zebstrika, 0},
		{"distribute", catalog.MoltresEX, 1},
		{"self damage", catalog.Arcanine, 0},
		{"energy discard", catalog.Charmander, 0},
		{"draw and damage", catalog.Meowth, 0},
		{"self heal", catalog.Venusaur, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := model.NewState(twentyCardDeck(), twentyCardDeck())
			card, ok := catalog.ByID(tc.card)
			require.True(t, ok)
			played := model.ToPlayableCard(card, false)
			played.AttachEnergy(model.Fire, 3)
			played.AttachEnergy(model.Lightning, 3)
			state.InPlay[0][0] = &played

			probs, mutations := Forecast(state, model.Action{Actor: 0, Inner: model.SimpleAction{Kind: model.KindAttack, AttackIndex: tc.idx}})
			require.Equal(t, len(probs), len(mutations))

			var sum float64
			for _, p := range probs {
				sum += p
			}
			require.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

func TestApplyEvolvePreservesDamageEnergyAndChain(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())

	bulbasaur, ok := catalog.ByID(catalog.Bulbasaur)
	require.True(t, ok)
	ivysaur, ok := catalog.ByID(catalog.Ivysaur)
	require.True(t, ok)

	played := model.ToPlayableCard(bulbasaur, false)
	played.ApplyDamage(30)
	played.AttachEnergy(model.Grass, 2)
	state.InPlay[0][0] = &played
	state.Hands[0] = []model.Card{ivysaur}

	rng := rand.New(rand.NewSource(1))
	action := model.Action{Actor: 0, Inner: model.SimpleAction{Kind: model.KindEvolve, Card: ivysaur, Slot: 0}}
	Apply(rng, state, action)

	evolved := state.InPlay[0][0]
	require.True(t, evolved.Card.Equal(ivysaur))
	require.EqualValues(t, 60, evolved.RemainingHP)
	require.Len(t, evolved.AttachedEnergy, 2)
	require.Len(t, evolved.CardsBehind, 1)
	require.True(t, evolved.CardsBehind[0].Equal(bulbasaur))
	require.True(t, evolved.PlayedThisTurn)
	require.Empty(t, state.Hands[0])
}

func TestApplyRetreatClearsStatusOnPromotedPokemon(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())

	active := &model.PlayedCard{Card: model.Card{Pokemon: &model.PokemonCard{Name: "Active", RetreatCost: nil}}}
	bench := &model.PlayedCard{
		Card:      model.Card{Pokemon: &model.PokemonCard{Name: "Bench"}},
		Poisoned:  true,
		Paralyzed: true,
		Asleep:    true,
	}
	state.InPlay[0][0] = active
	state.InPlay[0][1] = bench

	applyRetreat(state, 0, 1, false)

	require.Same(t, bench, state.InPlay[0][0])
	require.False(t, state.InPlay[0][0].Poisoned)
	require.False(t, state.InPlay[0][0].Paralyzed)
	require.False(t, state.InPlay[0][0].Asleep)
	require.Same(t, active, state.InPlay[0][1])
	require.True(t, state.HasRetreated)
}

func TestApplyRetreatDiscardsEffectiveCostEnergy(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	active := &model.PlayedCard{
		Card:           model.Card{Pokemon: &model.PokemonCard{RetreatCost: []model.EnergyType{model.Colorless, model.Colorless}}},
		AttachedEnergy: []model.EnergyType{model.Water, model.Water, model.Water},
	}
	state.InPlay[0][0] = active
	state.InPlay[0][1] = &model.PlayedCard{Card: model.Card{Pokemon: &model.PokemonCard{Name: "Bench"}}}

	applyRetreat(state, 0, 1, false)

	require.Len(t, state.InPlay[0][1].AttachedEnergy, 1)
}

func TestSampleFallsBackToLastIndexOnRoundingSlack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// The weights sum to 0.3 and seed 1's first draw is about 0.605, so
	// the draw walks past every bucket and must land on the last index.
	idx := Sample(rng, []float64{0.1, 0.1, 0.1})
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, 3)
	require.Equal(t, 2, idx)
}

func TestDistributeOutcomeProbabilities(t *testing.T) {
	effect := &model.AttackEffect{Shape: model.ShapeDistribute}
	probs, mutations := distributeOutcome(effect)
	require.Equal(t, []float64{0.125, 0.375, 0.375, 0.125}, probs)
	require.Len(t, mutations, 4)
}
