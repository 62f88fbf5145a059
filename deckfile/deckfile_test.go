package deckfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/model"
)

func TestParseBasicDeck(t *testing.T) {
	text := `Pokémon:
2 Bulbasaur A1 1
1 Ivysaur A1 2
1 Venusaur A1 3
2 Caterpie A1 5
2 Metapod A1 6
1 Butterfree A1 7
2 Koffing A1 20
1 Weezing A1 21
2 Exeggcute A1 10
1 Exeggutor A1 11
2 Ralts A1 40
1 Kirlia A1 41

Trainer:
2 Potion PA 1
`
	deck, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, deck.Cards, 20)

	bulbasaur, ok := catalog.ByID(catalog.Bulbasaur)
	require.True(t, ok)
	count := 0
	for _, c := range deck.Cards {
		if c.Equal(bulbasaur) {
			count++
		}
	}
	require.Equal(t, 2, count)

	require.NoError(t, deck.Validate())
	require.NotEmpty(t, deck.EnergyTypes)
}

func TestParseExplicitEnergyLine(t *testing.T) {
	text := `Energy: Grass
Energy: Psychic
Pokémon:
4 Bulbasaur A1 1
`
	deck, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.ElementsMatch(t, []model.EnergyType{model.Grass, model.Psychic}, deck.EnergyTypes)
}

func TestParseUnknownCardID(t *testing.T) {
	_, err := Parse(strings.NewReader("1 Nonexistent ZZ 999\n"))
	require.Error(t, err)
}

func TestParsePadsShortCardNumbers(t *testing.T) {
	deck, err := Parse(strings.NewReader("1 Bulbasaur A1 1\n"))
	require.NoError(t, err)
	require.Len(t, deck.Cards, 1)
	require.Equal(t, catalog.Bulbasaur, deck.Cards[0].ID())
}
