// Package mcts provides the pooled search-tree node used by the MCTS
// agent. The pool shape, UCB1 formula, and BestChild/MostVisitedChild
// helpers implement the usual Monte Carlo tree search node; agent.MCTS
// deliberately selects and finalises differently (random child,
// highest cumulative reward), so UCB1/BestChild stay here as
// exercised, tested infrastructure rather than Decide's control flow.
package mcts

import (
	"math"
	"sync"

	"github.com/pocketsim/pocketsim/model"
)

// Node is one position in the search tree: the state it represents,
// the legal actions not yet expanded into a child, and the visit/
// reward bookkeeping backpropagation updates.
type Node struct {
	State        *model.State
	PlayerID     int
	Parent       *Node
	Children     []*Node
	UntriedMoves []model.Action
	Visits       int
	Wins         float64
}

var pool = sync.Pool{
	New: func() any {
		return &Node{Children: make([]*Node, 0, 8)}
	},
}

// GetNode acquires a Node from the pool, pre-sized for a handful of
// children the way the pool's New func allocates it.
func GetNode() *Node {
	return pool.Get().(*Node)
}

// PutNode resets n and every descendant and returns them all to the
// pool. Recursive, since a search tree is only ever torn down whole.
func PutNode(n *Node) {
	for _, c := range n.Children {
		PutNode(c)
	}
	n.Reset()
	pool.Put(n)
}

// Reset clears a node back to its zero-value bookkeeping so the pool
// never leaks a prior search's state into the next one.
func (n *Node) Reset() {
	n.State = nil
	n.PlayerID = 0
	n.Parent = nil
	n.Children = n.Children[:0]
	n.UntriedMoves = nil
	n.Visits = 0
	n.Wins = 0
}

// UCB1 computes the upper-confidence-bound score used to balance
// exploitation against exploration of under-visited siblings.
func (n *Node) UCB1(explorationConstant float64) float64 {
	if n.Visits == 0 {
		return math.Inf(1)
	}
	exploitation := n.Wins / float64(n.Visits)
	exploration := explorationConstant * math.Sqrt(math.Log(float64(n.Parent.Visits))/float64(n.Visits))
	return exploitation + exploration
}

// BestChild returns the child with the highest UCB1 score.
func (n *Node) BestChild(explorationConstant float64) *Node {
	var best *Node
	bestScore := math.Inf(-1)
	for _, c := range n.Children {
		if score := c.UCB1(explorationConstant); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// MostVisitedChild returns the child with the highest visit count,
// the conventional robust-child final answer most MCTS agents use
// (kept as tested infrastructure; agent.MCTS itself picks by
// cumulative reward instead).
func (n *Node) MostVisitedChild() *Node {
	var best *Node
	bestVisits := -1
	for _, c := range n.Children {
		if c.Visits > bestVisits {
			best, bestVisits = c, c.Visits
		}
	}
	return best
}

// IsFullyExpanded reports whether every legal action from this node
// already has a corresponding child.
func (n *Node) IsFullyExpanded() bool {
	return len(n.UntriedMoves) == 0
}

// IsTerminal reports whether this node's state is a finished game.
func (n *Node) IsTerminal() bool {
	return n.State.Winner != nil
}
