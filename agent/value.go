package agent

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/forecast"
	"github.com/pocketsim/pocketsim/model"
)

// valueFunction scores state from myself's perspective: points dominate
// (worth 1000 each), then total and remaining HP on the board, plus
// attached energy at 50 per energy.
func valueFunction(state *model.State, myself int) float64 {
	opponent := model.Opponent(myself)

	var myTotalHP, oppTotalHP, myRemainingHP, oppRemainingHP, myEnergy, oppEnergy float64
	for _, slot := range state.EnumerateInPlay(myself) {
		pc := state.InPlay[myself][slot]
		myTotalHP += float64(pc.TotalHP)
		myRemainingHP += float64(pc.RemainingHP)
		myEnergy += float64(len(pc.AttachedEnergy))
	}
	for _, slot := range state.EnumerateInPlay(opponent) {
		pc := state.InPlay[opponent][slot]
		oppTotalHP += float64(pc.TotalHP)
		oppRemainingHP += float64(pc.RemainingHP)
		oppEnergy += float64(len(pc.AttachedEnergy))
	}

	points := float64(state.Points[myself]) - float64(state.Points[opponent])
	return 1000*points + (myTotalHP - oppTotalHP) + (myRemainingHP - oppRemainingHP) + 50*(myEnergy-oppEnergy)
}

// expectedValue averages valueFunction over an action's forecast
// distribution, cloning state once per outcome so scoring never
// mutates the caller's state.
func expectedValue(rng *rand.Rand, state *model.State, action model.Action, myself int) float64 {
	probabilities, mutations := forecast.Forecast(state, action)
	var score float64
	for i, mutation := range mutations {
		clone := state.Clone()
		mutation(rng, clone, action)
		score += probabilities[i] * valueFunction(clone, myself)
	}
	return score
}

// ValueFunction picks the action whose expected post-state value
// (over its forecast distribution) is highest, a one-ply greedy
// search.
type ValueFunction struct{}

func (ValueFunction) Decide(rng *rand.Rand, state *model.State, actor int, actions []model.Action) model.Action {
	best := actions[0]
	bestScore := expectedValue(rng, state, best, actor)
	for _, a := range actions[1:] {
		if s := expectedValue(rng, state, a, actor); s > bestScore {
			best, bestScore = a, s
		}
	}
	return best
}
