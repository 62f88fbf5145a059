package agent

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/model"
)

// AttachThenAttack always attaches energy if it can, else attacks if
// it can, else takes the first available action. A baseline used in
// tests, not a serious strategy.
type AttachThenAttack struct{}

func (AttachThenAttack) Decide(_ *rand.Rand, _ *model.State, _ int, actions []model.Action) model.Action {
	for _, a := range actions {
		if a.Inner.Kind == model.KindAttach {
			return a
		}
	}
	for _, a := range actions {
		if a.Inner.Kind == model.KindAttack {
			return a
		}
	}
	return mustOne(actions)
}

// EndTurn ends its turn whenever that's legal, else takes the first
// available action. The other baseline used in tests.
type EndTurn struct{}

func (EndTurn) Decide(_ *rand.Rand, _ *model.State, _ int, actions []model.Action) model.Action {
	for _, a := range actions {
		if a.Inner.Kind == model.KindEndTurn {
			return a
		}
	}
	return mustOne(actions)
}
