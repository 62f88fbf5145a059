package agent

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/model"
)

// actionWeights favours Attach/Attack/Evolve/UseAbility over passive
// actions like DrawCard/EndTurn/Activate, matching the original
// weighted player's hand-tuned table.
var actionWeights = map[model.ActionKind]uint32{
	model.KindDrawCard:     1,
	model.KindPlay:         5,
	model.KindPlace:        5,
	model.KindAttach:       10,
	model.KindAttachTool:   10,
	model.KindEvolve:       10,
	model.KindUseAbility:   10,
	model.KindAttack:       10,
	model.KindApplyDamage:  10,
	model.KindRetreat:      2,
	model.KindEndTurn:      1,
	model.KindHeal:         5,
	model.KindActivate:     1,
}

// WeightedRandom is a uniform choice modified by a per-variant weight
// vector, so it tends toward developing the board over passing.
type WeightedRandom struct{}

func (WeightedRandom) Decide(rng *rand.Rand, _ *model.State, _ int, actions []model.Action) model.Action {
	var total uint32
	weights := make([]uint32, len(actions))
	for i, a := range actions {
		w := actionWeights[a.Inner.Kind]
		if w == 0 {
			w = 1
		}
		weights[i] = w
		total += w
	}

	draw := rng.Uint32() % total
	var cumulative uint32
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return actions[i]
		}
	}
	return actions[len(actions)-1]
}
