package forecast

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/model"
)

func freshPlayed(hp uint32, isEX bool) *model.PlayedCard {
	name := "Snorlax"
	if isEX {
		name = "Snorlax ex"
	}
	card := model.Card{Pokemon: &model.PokemonCard{Name: name, HP: hp}}
	played := model.ToPlayableCard(card, false)
	return &played
}

func TestHandleAttackDamageAwardsTwoPointsForEXKnockout(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.InPlay[0][0] = freshPlayed(100, false)
	state.InPlay[1][0] = freshPlayed(50, true)

	handleAttackDamage(state, 0, []model.DamageTarget{{Damage: 50, Slot: 0}})

	require.EqualValues(t, 2, state.Points[0])
	require.Nil(t, state.InPlay[1][0])
}

func TestHandleAttackDamageAwardsOnePointForNonEXKnockout(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.InPlay[0][0] = freshPlayed(100, false)
	state.InPlay[1][0] = freshPlayed(50, false)

	handleAttackDamage(state, 0, []model.DamageTarget{{Damage: 50, Slot: 0}})

	require.EqualValues(t, 1, state.Points[0])
}

func TestHandleAttackDamageCounterAttackOnlyAgainstActiveSlot(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.InPlay[0][0] = freshPlayed(100, false)
	defender := freshPlayed(100, false)
	defender.AttachedTool = catalog.ToolRockyHelmet
	state.InPlay[1][0] = defender

	handleAttackDamage(state, 0, []model.DamageTarget{{Damage: 30, Slot: 0}})
	require.EqualValues(t, 80, state.InPlay[0][0].RemainingHP)
}

func TestHandleAttackDamageNoCounterAgainstBenchTarget(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.InPlay[0][0] = freshPlayed(100, false)
	benched := freshPlayed(100, false)
	benched.AttachedTool = catalog.ToolRockyHelmet
	state.InPlay[1][1] = benched

	handleAttackDamage(state, 0, []model.DamageTarget{{Damage: 30, Slot: 1}})
	require.EqualValues(t, 100, state.InPlay[0][0].RemainingHP)
}

func TestHandleAttackDamageWinAtThreePoints(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.Points[0] = 2
	state.InPlay[0][0] = freshPlayed(100, false)
	state.InPlay[1][0] = freshPlayed(10, false)

	handleAttackDamage(state, 0, []model.DamageTarget{{Damage: 10, Slot: 0}})

	require.NotNil(t, state.Winner)
	require.False(t, state.Winner.IsTie)
	require.Equal(t, 0, state.Winner.Winner)
}

func TestHandleAttackDamageForcedPromotionQueuesActivateChoicePerBenchSlot(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.InPlay[0][0] = freshPlayed(100, false)
	state.InPlay[1][0] = freshPlayed(10, false)
	state.InPlay[1][1] = freshPlayed(80, false)
	state.InPlay[1][2] = freshPlayed(80, false)

	handleAttackDamage(state, 0, []model.DamageTarget{{Damage: 10, Slot: 0}})

	require.Nil(t, state.Winner)
	require.Len(t, state.MoveGenerationStack, 1)
	frame := state.MoveGenerationStack[0]
	require.Equal(t, 1, frame.Actor)
	require.Len(t, frame.Actions, 2)
	for _, a := range frame.Actions {
		require.Equal(t, model.KindActivate, a.Kind)
	}
}

func TestHandleAttackDamageNoBenchEndsGameForOpponent(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.InPlay[0][0] = freshPlayed(100, false)
	state.InPlay[1][0] = freshPlayed(10, false)

	handleAttackDamage(state, 0, []model.DamageTarget{{Damage: 10, Slot: 0}})

	require.NotNil(t, state.Winner)
	require.Equal(t, 0, state.Winner.Winner)
}

func TestHandleAttackDamageSingleBenchPokemonAutoPromotesSilently(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	state.InPlay[0][0] = freshPlayed(100, false)
	state.InPlay[1][0] = freshPlayed(10, false)
	replacement := freshPlayed(80, false)
	state.InPlay[1][1] = replacement

	handleAttackDamage(state, 0, []model.DamageTarget{{Damage: 10, Slot: 0}})

	require.Nil(t, state.Winner)
	require.Empty(t, state.MoveGenerationStack)
	require.Same(t, replacement, state.InPlay[1][0])
	require.Nil(t, state.InPlay[1][1])
}

func TestHandleAttackDamageArceusEXBenchCountScenario(t *testing.T) {
	state := model.NewState(twentyCardDeck(), twentyCardDeck())
	arceus, ok := catalog.ByID(catalog.ArceusEX)
	require.True(t, ok)
	arceusPlayed := model.ToPlayableCard(arceus, false)
	state.InPlay[0][0] = &arceusPlayed
	state.InPlay[0][1] = freshPlayed(60, false)

	target := freshPlayed(160, false)
	state.InPlay[1][0] = target

	probs, mutations := forecastAttack(state, 0, 0)
	require.Equal(t, []float64{1.0}, probs)

	rng := rand.New(rand.NewSource(1))
	mutations[0](rng, state, model.Action{Actor: 0, Inner: model.SimpleAction{Kind: model.KindAttack, AttackIndex: 0}})

	require.EqualValues(t, 70, state.InPlay[1][0].RemainingHP)
}
