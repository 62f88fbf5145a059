package agent

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/forecast"
	"github.com/pocketsim/pocketsim/model"
	"github.com/pocketsim/pocketsim/movegen"
)

// Expectiminimax searches MaxDepth plies ahead, alternating max (when
// the decider is myself) and min (when it's the opponent), scoring
// leaves with valueFunction. It uses the same legal-actions generator
// for the opponent's turn as for its own — a known approximation, since
// the opponent's hand and deck order are not actually hidden from this
// engine.
type Expectiminimax struct {
	MaxDepth int
}

func (e Expectiminimax) Decide(rng *rand.Rand, state *model.State, myself int, actions []model.Action) model.Action {
	depth := e.MaxDepth
	if depth < 1 {
		depth = 1
	}

	best := actions[0]
	bestScore := e.expectedValue(rng, state, best, depth-1, myself)
	for _, a := range actions[1:] {
		if s := e.expectedValue(rng, state, a, depth-1, myself); s > bestScore {
			best, bestScore = a, s
		}
	}
	return best
}

func (e Expectiminimax) expectedValue(rng *rand.Rand, state *model.State, action model.Action, depth int, myself int) float64 {
	probabilities, mutations := forecast.Forecast(state, action)
	var score float64
	for i, mutation := range mutations {
		clone := state.Clone()
		mutation(rng, clone, action)
		score += probabilities[i] * e.search(rng, clone, depth, myself)
	}
	return score
}

func (e Expectiminimax) search(rng *rand.Rand, state *model.State, depth int, myself int) float64 {
	if state.Winner != nil || depth == 0 {
		return valueFunction(state, myself)
	}

	actor, actions := movegen.LegalActions(state)
	if len(actions) == 0 {
		return valueFunction(state, myself)
	}

	scores := make([]float64, len(actions))
	for i, a := range actions {
		scores[i] = e.expectedValue(rng, state, a, depth-1, myself)
	}

	best := scores[0]
	if actor == myself {
		for _, s := range scores[1:] {
			if s > best {
				best = s
			}
		}
	} else {
		for _, s := range scores[1:] {
			if s < best {
				best = s
			}
		}
	}
	return best
}
