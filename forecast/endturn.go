package forecast

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/hooks"
	"github.com/pocketsim/pocketsim/model"
)

// forecastEndTurn routes to the setup-phase advance or the full
// checkup, depending on whether the game has started.
func forecastEndTurn(state *model.State) ([]float64, []Mutation) {
	if state.TurnCount == 0 {
		return []float64{1.0}, []Mutation{setupAdvance}
	}
	return forecastCheckup(state)
}

// setupAdvance hands setup to the other player; once both have an
// Active, the game proper begins at turn 1 with no energy generation
// (the first current player's energy is only generated starting their
// first real turn's AdvanceTurn call, per state.Initialize/driver).
func setupAdvance(_ *rand.Rand, state *model.State, action model.Action) {
	commonMutation(state, action)
	state.CurrentPlayer = model.Opponent(state.CurrentPlayer)
	bothInitiated := state.InPlay[0][0] != nil && state.InPlay[1][0] != nil
	if bothInitiated {
		state.TurnCount = 1
		state.ResetTurnStates()
		state.QueueDrawAction(state.CurrentPlayer)
	}
}

type checkupEntry struct {
	player int
	slot   int
}

// forecastCheckup scans both sides for status conditions. Paralysis
// always clears. Poison deals 10 damage through the full damage
// pipeline (it can end the game). Sleep is a coin flip per sleeping
// Pokémon; the forecast enumerates every joint 2^k outcome uniformly,
// since the engine never hides information from itself when
// forecasting.
func forecastCheckup(state *model.State) ([]float64, []Mutation) {
	var asleep, paralyzed, poisoned []checkupEntry
	for player := 0; player < 2; player++ {
		for _, slot := range state.EnumerateInPlay(player) {
			pc := state.InPlay[player][slot]
			if pc.Asleep {
				asleep = append(asleep, checkupEntry{player, slot})
			}
			if pc.Paralyzed {
				paralyzed = append(paralyzed, checkupEntry{player, slot})
			}
			if pc.Poisoned {
				poisoned = append(poisoned, checkupEntry{player, slot})
			}
		}
	}

	wakeOutcomes := booleanVectors(len(asleep))
	probabilities := make([]float64, len(wakeOutcomes))
	mutations := make([]Mutation, len(wakeOutcomes))
	uniform := 1.0 / float64(len(wakeOutcomes))

	for i, wake := range wakeOutcomes {
		wake := wake
		probabilities[i] = uniform
		mutations[i] = func(rng *rand.Rand, state *model.State, action model.Action) {
			commonMutation(state, action)
			applyCheckup(state, rng, asleep, paralyzed, poisoned, wake)
		}
	}
	return probabilities, mutations
}

func applyCheckup(state *model.State, rng *rand.Rand, asleep, paralyzed, poisoned []checkupEntry, wake []bool) {
	for i, entry := range asleep {
		if wake[i] {
			state.InPlay[entry.player][entry.slot].Asleep = false
		}
	}
	for _, entry := range paralyzed {
		state.InPlay[entry.player][entry.slot].Paralyzed = false
	}
	for _, entry := range poisoned {
		// Attacker is attributed as the opposite player so the damage
		// pipeline's game-end short-circuit and point bookkeeping apply
		// uniformly, whichever side the poison actually favours.
		handleAttackDamage(state, model.Opponent(entry.player), []model.DamageTarget{{Damage: 10, Slot: entry.slot}})
	}
	// Always advance, even if a poison knockout just ended the game —
	// the driver checks state.Winner before consuming the queued draw.
	state.AdvanceTurn(rng)
	hooks.AdvanceTurnEffects(state, state.TurnCount)
}

// booleanVectors returns all 2^n boolean combinations, n small in
// practice (the number of simultaneously-sleeping Pokémon).
func booleanVectors(n int) [][]bool {
	total := 1 << n
	out := make([][]bool, total)
	for i := 0; i < total; i++ {
		v := make([]bool, n)
		for bit := 0; bit < n; bit++ {
			v[bit] = i&(1<<bit) != 0
		}
		out[i] = v
	}
	return out
}
