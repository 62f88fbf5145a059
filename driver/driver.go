// Package driver runs the game loop (C7): at each tick it asks the
// move generator for the legal actions, hands them to the deciding
// player's agent, and applies the chosen action through forecast.
// Single-threaded and synchronous, per the engine's concurrency model.
package driver

import (
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pocketsim/pocketsim/forecast"
	"github.com/pocketsim/pocketsim/model"
	"github.com/pocketsim/pocketsim/movegen"
)

// MaxTurns is the hard stall cap: two sufficiently passive agents would
// otherwise never terminate.
const MaxTurns = 100

// Agent chooses one action from the legal set for actor, given state.
// Implemented by every strategy in package agent; declared here (not
// there) so driver never needs to import agent, keeping the dependency
// single-directional for search agents that drive rollouts.
type Agent interface {
	Decide(rng *rand.Rand, state *model.State, actor int, actions []model.Action) model.Action
}

// Game pairs two decks with two agents under one seedable RNG.
type Game struct {
	RunID  uuid.UUID
	Agents [2]Agent
	Logger *zap.SugaredLogger
}

// NewGame builds a Game with a fresh RunID and a no-op logger; callers
// that want diagnostics swap in a real *zap.SugaredLogger.
func NewGame(agentA, agentB Agent) *Game {
	return &Game{
		RunID:  uuid.New(),
		Agents: [2]Agent{agentA, agentB},
		Logger: zap.NewNop().Sugar(),
	}
}

// PlyStats records one action's bookkeeping for the per-game report.
type PlyStats struct {
	Actor int
	Kind  model.ActionKind
}

// Result is the outcome of one played-out game.
type Result struct {
	Outcome   *model.Outcome
	TurnCount uint8
	Plies     []PlyStats
}

// Play runs state to completion: a win/tie, or the turn cap. Every
// tick consults the move generator, routes the decision to the
// addressed agent (which may differ from state.CurrentPlayer when the
// move generation stack is non-empty), and applies the outcome.
func (g *Game) Play(rng *rand.Rand, state *model.State) Result {
	var plies []PlyStats
	for {
		if state.Winner != nil {
			break
		}
		if state.TurnCount >= MaxTurns {
			break
		}

		decider, actions := movegen.LegalActions(state)
		if len(actions) == 0 {
			g.Logger.Debugw("no legal actions", "run_id", g.RunID, "turn", state.TurnCount)
			break
		}

		chosen := g.Agents[decider].Decide(rng, state, decider, actions)
		plies = append(plies, PlyStats{Actor: decider, Kind: chosen.Inner.Kind})
		forecast.Apply(rng, state, chosen)
	}

	return Result{Outcome: state.Winner, TurnCount: state.TurnCount, Plies: plies}
}

// Rollout plays a cloned copy of state to completion under agentA/
// agentB and returns only the outcome — the shape a search agent's
// simulate phase (MCTS) needs without the ply log a real report wants.
func Rollout(rng *rand.Rand, state *model.State, agentA, agentB Agent) *model.Outcome {
	clone := state.Clone()
	g := NewGame(agentA, agentB)
	result := g.Play(rng, clone)
	return result.Outcome
}
