package agent

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/model"
)

// Random picks uniformly among the legal actions.
type Random struct{}

func (Random) Decide(rng *rand.Rand, _ *model.State, _ int, actions []model.Action) model.Action {
	return actions[rng.Intn(len(actions))]
}
