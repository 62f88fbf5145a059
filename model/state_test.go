package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleDeck(n int) Deck {
	basic := PokemonCard{Name: "Bulbasaur", Stage: StageBasic, HP: 70}
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card{Pokemon: &basic}
	}
	return Deck{Cards: cards, EnergyTypes: []EnergyType{Grass}}
}

func TestCardConservationCountAcrossZones(t *testing.T) {
	state := NewState(sampleDeck(20), sampleDeck(20))
	require.Equal(t, 20, state.CardConservationCount(0))

	card, _ := state.Decks[0].DrawFront()
	state.Hands[0] = append(state.Hands[0], card)
	require.Equal(t, 20, state.CardConservationCount(0))

	state.DiscardCardFromHand(0, card)
	require.Equal(t, 20, state.CardConservationCount(0))
}

func TestCardConservationCountCountsEvolutionChain(t *testing.T) {
	state := NewState(sampleDeck(20), sampleDeck(20))
	card, _ := state.Decks[0].DrawFront()
	evolution, _ := state.Decks[0].DrawFront()
	state.InPlay[0][0] = &PlayedCard{Card: card, CardsBehind: []Card{evolution}}
	require.Equal(t, 20, state.CardConservationCount(0))
}

func TestInitializeDealsFiveCardsEachAndPicksABasicOnTop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	state := Initialize(sampleDeck(20), sampleDeck(20), rng)
	require.Len(t, state.Hands[0], 5)
	require.Len(t, state.Hands[1], 5)
	require.Len(t, state.Decks[0].Cards, 15)
	require.Equal(t, StageBasic, state.Hands[0][0].Pokemon.Stage)
	require.Equal(t, StageBasic, state.Hands[1][0].Pokemon.Stage)
}

func TestAdvanceTurnFlipsPlayerAndQueuesDraw(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	state := NewState(sampleDeck(20), sampleDeck(20))
	state.CurrentPlayer = 0
	state.AdvanceTurn(rng)

	require.Equal(t, 1, state.CurrentPlayer)
	require.EqualValues(t, 1, state.TurnCount)
	require.NotNil(t, state.CurrentEnergy)
	require.Len(t, state.MoveGenerationStack, 1)
	require.Equal(t, KindDrawCard, state.MoveGenerationStack[0].Actions[0].Kind)
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	state := NewState(sampleDeck(20), sampleDeck(20))
	card, _ := state.Decks[0].DrawFront()
	state.InPlay[0][0] = &PlayedCard{Card: card, AttachedEnergy: []EnergyType{Grass}}

	clone := state.Clone()
	clone.InPlay[0][0].AttachedEnergy[0] = Fire
	clone.Points[0] = 3

	require.Equal(t, Grass, state.InPlay[0][0].AttachedEnergy[0])
	require.EqualValues(t, 0, state.Points[0])
}

func TestPopStackPanicsWhenEmpty(t *testing.T) {
	state := NewState(sampleDeck(20), sampleDeck(20))
	require.Panics(t, func() { state.PopStack() })
}
