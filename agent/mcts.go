package agent

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/driver"
	"github.com/pocketsim/pocketsim/forecast"
	"github.com/pocketsim/pocketsim/mcts"
	"github.com/pocketsim/pocketsim/model"
	"github.com/pocketsim/pocketsim/movegen"
)

// MCTS runs a shallow four-phase search rooted at the current
// decision: select a random root child, expand it if unvisited,
// simulate a Random-vs-Random rollout from its resulting state, and
// backpropagate the {-1,0,1} reward onto that child alone. The final
// pick is the root child with the highest cumulative reward, not the
// highest UCB1 — see mcts.Node for the (unused here) UCB1 machinery
// this mirrors.
type MCTS struct {
	Iterations int
}

func (m MCTS) Decide(rng *rand.Rand, state *model.State, myself int, actions []model.Action) model.Action {
	root := mcts.GetNode()
	root.State = state
	root.PlayerID = myself
	defer mcts.PutNode(root)

	iterations := m.Iterations
	if iterations < 1 {
		iterations = 1
	}

	for i := 0; i < iterations; i++ {
		var leaf *mcts.Node
		if len(root.Children) == 0 {
			leaf = root
		} else {
			leaf = root.Children[rng.Intn(len(root.Children))]
		}

		if !leaf.IsTerminal() && len(leaf.Children) == 0 {
			expandNode(leaf, rng)
		}

		reward := simulateRollout(rng, leaf.State, myself)
		leaf.Visits++
		leaf.Wins += reward
	}

	if len(root.Children) == 0 {
		return mustOne(actions)
	}
	best := root.Children[0]
	for _, c := range root.Children[1:] {
		if c.Wins > best.Wins {
			best = c
		}
	}
	bestIdx := 0
	for i, c := range root.Children {
		if c == best {
			bestIdx = i
			break
		}
	}
	return actions[bestIdx]
}

// expandNode materialises one child per legal action from n's state,
// applying the sampled outcome of each so every child holds its own
// post-action State.
func expandNode(n *mcts.Node, rng *rand.Rand) {
	_, actions := movegen.LegalActions(n.State)
	for _, a := range actions {
		clone := n.State.Clone()
		forecast.Apply(rng, clone, a)
		child := mcts.GetNode()
		child.State = clone
		child.PlayerID = n.PlayerID
		child.Parent = n
		n.Children = append(n.Children, child)
	}
}

// simulateRollout plays state to completion under two Random agents
// and scores it from investigator's perspective: 1.0 for a win, -1.0
// for a loss, 0.0 for a tie or an unterminated game.
func simulateRollout(rng *rand.Rand, state *model.State, investigator int) float64 {
	outcome := driver.Rollout(rng, state, Random{}, Random{})
	if outcome == nil || outcome.IsTie {
		return 0.0
	}
	if outcome.Winner == investigator {
		return 1.0
	}
	return -1.0
}
