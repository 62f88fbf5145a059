package agent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketsim/pocketsim/model"
)

func TestRandomPicksAmongProvidedActions(t *testing.T) {
	actions := []model.Action{
		{Inner: model.SimpleAction{Kind: model.KindEndTurn}},
		{Inner: model.SimpleAction{Kind: model.KindAttack}},
	}
	rng := rand.New(rand.NewSource(42))
	chosen := Random{}.Decide(rng, &model.State{}, 0, actions)
	require.Contains(t, actions, chosen)
}

func TestRandomIsDeterministicForAGivenSeed(t *testing.T) {
	actions := []model.Action{
		{Inner: model.SimpleAction{Kind: model.KindEndTurn}},
		{Inner: model.SimpleAction{Kind: model.KindAttack}},
		{Inner: model.SimpleAction{Kind: model.KindRetreat}},
	}
	a := Random{}.Decide(rand.New(rand.NewSource(7)), &model.State{}, 0, actions)
	b := Random{}.Decide(rand.New(rand.NewSource(7)), &model.State{}, 0, actions)
	require.Equal(t, a, b)
}

func TestMustOnePanicsOnEmptyActions(t *testing.T) {
	require.Panics(t, func() { mustOne(nil) })
}

func TestMustOneReturnsFirstAction(t *testing.T) {
	actions := []model.Action{
		{Inner: model.SimpleAction{Kind: model.KindEndTurn}},
		{Inner: model.SimpleAction{Kind: model.KindAttack}},
	}
	require.Equal(t, actions[0], mustOne(actions))
}

func TestAttachThenAttackPrefersAttachOverAttack(t *testing.T) {
	actions := []model.Action{
		{Inner: model.SimpleAction{Kind: model.KindAttack}},
		{Inner: model.SimpleAction{Kind: model.KindAttach}},
		{Inner: model.SimpleAction{Kind: model.KindEndTurn}},
	}
	chosen := AttachThenAttack{}.Decide(nil, nil, 0, actions)
	require.Equal(t, model.KindAttach, chosen.Inner.Kind)
}

func TestAttachThenAttackFallsBackToAttack(t *testing.T) {
	actions := []model.Action{
		{Inner: model.SimpleAction{Kind: model.KindEndTurn}},
		{Inner: model.SimpleAction{Kind: model.KindAttack}},
	}
	chosen := AttachThenAttack{}.Decide(nil, nil, 0, actions)
	require.Equal(t, model.KindAttack, chosen.Inner.Kind)
}

func TestEndTurnAgentEndsTurnWheneverLegal(t *testing.T) {
	actions := []model.Action{
		{Inner: model.SimpleAction{Kind: model.KindAttack}},
		{Inner: model.SimpleAction{Kind: model.KindEndTurn}},
	}
	chosen := EndTurn{}.Decide(nil, nil, 0, actions)
	require.Equal(t, model.KindEndTurn, chosen.Inner.Kind)
}

func TestWeightedRandomNeverPicksOutsideProvidedActions(t *testing.T) {
	actions := []model.Action{
		{Inner: model.SimpleAction{Kind: model.KindEndTurn}},
		{Inner: model.SimpleAction{Kind: model.KindAttack}},
		{Inner: model.SimpleAction{Kind: model.KindAttach}},
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		chosen := WeightedRandom{}.Decide(rng, &model.State{}, 0, actions)
		require.Contains(t, actions, chosen)
	}
}
