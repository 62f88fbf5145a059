package movegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/model"
)

func emptyDeck() model.Deck {
	return model.Deck{Cards: make([]model.Card, 20)}
}

func TestLegalActionsNoAttackOnTurnOne(t *testing.T) {
	state := model.NewState(emptyDeck(), emptyDeck())
	state.TurnCount = 1
	state.CurrentPlayer = 0

	bulbasaur, ok := catalog.ByID(catalog.Bulbasaur)
	require.True(t, ok)
	played := model.ToPlayableCard(bulbasaur, false)
	played.AttachEnergy(model.Grass, 2)
	state.InPlay[0][0] = &played

	_, actions := LegalActions(state)
	for _, a := range actions {
		require.NotEqual(t, model.KindAttack, a.Inner.Kind)
	}
}

func TestLegalActionsAttackAvailableFromTurnTwo(t *testing.T) {
	state := model.NewState(emptyDeck(), emptyDeck())
	state.TurnCount = 2
	state.CurrentPlayer = 0

	bulbasaur, ok := catalog.ByID(catalog.Bulbasaur)
	require.True(t, ok)
	played := model.ToPlayableCard(bulbasaur, false)
	played.AttachEnergy(model.Grass, 2)
	state.InPlay[0][0] = &played

	_, actions := LegalActions(state)
	found := false
	for _, a := range actions {
		if a.Inner.Kind == model.KindAttack {
			found = true
		}
	}
	require.True(t, found)
}

func TestLegalActionsNoEvolveBeforeTurnThree(t *testing.T) {
	state := model.NewState(emptyDeck(), emptyDeck())
	state.TurnCount = 2
	state.CurrentPlayer = 0

	bulbasaur, ok := catalog.ByID(catalog.Bulbasaur)
	require.True(t, ok)
	ivysaur, ok := catalog.ByID(catalog.Ivysaur)
	require.True(t, ok)
	played := model.ToPlayableCard(bulbasaur, false)
	state.InPlay[0][0] = &played
	state.Hands[0] = []model.Card{ivysaur}

	_, actions := LegalActions(state)
	for _, a := range actions {
		require.NotEqual(t, model.KindEvolve, a.Inner.Kind)
	}
}

func TestLegalActionsEvolveAvailableFromTurnThree(t *testing.T) {
	state := model.NewState(emptyDeck(), emptyDeck())
	state.TurnCount = 3
	state.CurrentPlayer = 0

	bulbasaur, ok := catalog.ByID(catalog.Bulbasaur)
	require.True(t, ok)
	ivysaur, ok := catalog.ByID(catalog.Ivysaur)
	require.True(t, ok)
	played := model.ToPlayableCard(bulbasaur, false)
	state.InPlay[0][0] = &played
	state.Hands[0] = []model.Card{ivysaur}

	_, actions := LegalActions(state)
	found := false
	for _, a := range actions {
		if a.Inner.Kind == model.KindEvolve {
			found = true
		}
	}
	require.True(t, found)
}

func TestLegalActionsNoSupporterAfterOnePlayed(t *testing.T) {
	state := model.NewState(emptyDeck(), emptyDeck())
	state.TurnCount = 3
	state.CurrentPlayer = 0
	state.HasPlayedSupport = true

	erika, ok := catalog.ByID(catalog.Erika)
	require.True(t, ok)
	state.Hands[0] = []model.Card{erika}

	played := model.ToPlayableCard(model.Card{Pokemon: &model.PokemonCard{Name: "Active", Stage: model.StageBasic, HP: 100}}, false)
	state.InPlay[0][0] = &played

	_, actions := LegalActions(state)
	for _, a := range actions {
		require.NotEqual(t, model.KindPlay, a.Inner.Kind)
	}
}

func TestSetupActionsOnlyPlaceIntoActiveBeforeOnePresent(t *testing.T) {
	state := model.NewState(emptyDeck(), emptyDeck())
	state.CurrentPlayer = 0

	bulbasaur, ok := catalog.ByID(catalog.Bulbasaur)
	require.True(t, ok)
	state.Hands[0] = []model.Card{bulbasaur}

	_, actions := LegalActions(state)
	require.Len(t, actions, 1)
	require.Equal(t, model.KindPlace, actions[0].Inner.Kind)
	require.Equal(t, 0, actions[0].Inner.Slot)
}
