package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketsim/pocketsim/model"
)

func TestByIDResolvesKnownCard(t *testing.T) {
	card, ok := ByID(Bulbasaur)
	require.True(t, ok)
	require.Equal(t, "Bulbasaur", card.Name())
}

func TestByIDMissesUnknownCard(t *testing.T) {
	_, ok := ByID(model.CardID("ZZ 999"))
	require.False(t, ok)
}

func TestArceusEXIsRecognisedAsEX(t *testing.T) {
	card, ok := ByID(ArceusEX)
	require.True(t, ok)
	require.True(t, card.IsEX())
}

func TestMoltresEXAndHoOhEXAreEX(t *testing.T) {
	for _, id := range []model.CardID{MoltresEX, HoOhEX} {
		card, ok := ByID(id)
		require.True(t, ok)
		require.True(t, card.IsEX())
	}
}

func TestBulbasaurIsNotEX(t *testing.T) {
	card, ok := ByID(Bulbasaur)
	require.True(t, ok)
	require.False(t, card.IsEX())
}

func TestAllPreviouslyUnreachableEffectShapesHaveACatalogCard(t *testing.T) {
	shapes := map[model.EffectShape]bool{
		model.ShapeSelfDamage:       false,
		model.ShapeEnergyDiscard:    false,
		model.ShapeDrawAndDamage:    false,
		model.ShapeEnergyScaledCoins: false,
		model.ShapeFlipUntilTails:   false,
		model.ShapeDirectDamage:     false,
		model.ShapeDistribute:       false,
	}

	for _, card := range All() {
		for _, attack := range card.Attacks() {
			if attack.Effect == nil {
				continue
			}
			if _, tracked := shapes[attack.Effect.Shape]; tracked {
				shapes[attack.Effect.Shape] = true
			}
		}
	}

	for shape, seen := range shapes {
		require.True(t, seen, "effect shape %v has no exercising catalog card", shape)
	}
}

func TestCounterPokemonAndBounceablePokemonAreDistinctLists(t *testing.T) {
	require.True(t, CounterPokemon["Poliwrath"])
	require.True(t, CounterPokemon["Druddigon"])
	require.True(t, BounceablePokemon["Weezing"])
	require.True(t, BounceablePokemon["Muk"])
	for name := range CounterPokemon {
		require.False(t, BounceablePokemon[name], "%s is in both lists", name)
	}
}

func TestToolIDFromResolvesAttachedTools(t *testing.T) {
	rockyHelmet, ok := ByID(RockyHelmet)
	require.True(t, ok)
	toolID, ok := ToolIDFrom(rockyHelmet)
	require.True(t, ok)
	require.Equal(t, ToolRockyHelmet, toolID)
}
