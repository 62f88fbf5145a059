package mcts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketsim/pocketsim/model"
)

func TestNodePool(t *testing.T) {
	n1 := GetNode()
	require.NotZero(t, cap(n1.Children), "expected pre-allocated children slice")

	PutNode(n1)

	n2 := GetNode()
	require.Same(t, &n1.Children, &n2.Children, "pool did not reuse memory")

	PutNode(n2)
}

func TestNodeReset(t *testing.T) {
	node := GetNode()
	node.Visits = 100
	node.Wins = 50.0
	node.PlayerID = 1

	node.Reset()

	require.Zero(t, node.Visits)
	require.Zero(t, node.Wins)
	require.Zero(t, node.PlayerID)

	PutNode(node)
}

func TestUCB1Calculation(t *testing.T) {
	parent := GetNode()
	parent.Visits = 100

	child := GetNode()
	child.Parent = parent
	child.Visits = 10
	child.Wins = 7.0

	ucb := child.UCB1(1.414)

	// exploitation = 7/10 = 0.7, exploration ~= 1.414*sqrt(ln(100)/10) ~= 0.96
	require.InDelta(t, 1.66, ucb, 0.2)

	PutNode(parent)
	PutNode(child)
}

func TestBestChild(t *testing.T) {
	parent := GetNode()
	parent.Visits = 100

	child1 := GetNode()
	child1.Parent = parent
	child1.Visits = 40
	child1.Wins = 20.0 // win rate 0.50

	child2 := GetNode()
	child2.Parent = parent
	child2.Visits = 50
	child2.Wins = 40.0 // win rate 0.80

	parent.Children = append(parent.Children, child1, child2)

	require.Same(t, child2, parent.BestChild(1.414))

	PutNode(parent)
}

func TestMostVisitedChild(t *testing.T) {
	parent := GetNode()

	child1 := GetNode()
	child1.Visits = 10
	child2 := GetNode()
	child2.Visits = 25
	child3 := GetNode()
	child3.Visits = 15

	parent.Children = append(parent.Children, child1, child2, child3)

	require.Same(t, child2, parent.MostVisitedChild())

	PutNode(parent)
}

func TestIsFullyExpanded(t *testing.T) {
	node := GetNode()
	node.UntriedMoves = []model.Action{{Inner: model.SimpleAction{Kind: model.KindEndTurn}}}

	require.False(t, node.IsFullyExpanded())

	node.UntriedMoves = node.UntriedMoves[:0]
	require.True(t, node.IsFullyExpanded())

	PutNode(node)
}

func TestIsTerminal(t *testing.T) {
	node := GetNode()
	node.State = &model.State{}

	require.False(t, node.IsTerminal())

	node.State.Winner = &model.Outcome{Winner: 0}
	require.True(t, node.IsTerminal())

	PutNode(node)
}
