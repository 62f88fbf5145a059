// Package agent implements the eight decision strategies (C8): the
// five the specification names (Random, Weighted-Random, Rule-based,
// Value-function, Expectiminimax) plus MCTS and the supplemented
// Interactive agent. Every strategy implements the same Decide
// signature so the driver never needs to know which one it's talking
// to.
package agent

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/model"
)

// Agent chooses one action from actions, all addressed to actor.
type Agent interface {
	Decide(rng *rand.Rand, state *model.State, actor int, actions []model.Action) model.Action
}

func mustOne(actions []model.Action) model.Action {
	if len(actions) == 0 {
		panic("agent: no legal actions to decide among")
	}
	return actions[0]
}
