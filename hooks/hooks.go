// Package hooks implements the per-card custom logic (C3): damage
// computation and its modifiers, retreat-cost modifiers, the
// can-play-support / can-retreat gates, energy matching, counter-attack
// damage, and on-attach-tool effects. These are the "if Psyduck, do
// this" call sites the rest of the engine dispatches into.
package hooks

import (
	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/model"
)

// DamageFromAttack computes the damage a given attack deals, applying
// the Giovanni and weakness modifiers per §4.3. Bench targets never
// receive modifiers, and a 0-damage attack is never modified.
func DamageFromAttack(state *model.State, player int, attackIndex int, receivingIndex int) uint32 {
	active := state.Active(player)
	attack := active.Card.Attacks()[attackIndex]

	if attack.FixedDamage == 0 {
		return 0
	}
	if receivingIndex != 0 {
		return attack.FixedDamage
	}

	var giovanniModifier uint32
	for _, c := range state.CurrentTurnEffects() {
		if c.Trainer != nil && c.Trainer.ID == catalog.Giovanni {
			giovanniModifier = 10
			break
		}
	}

	var weaknessModifier uint32
	opponent := model.Opponent(player)
	if receiving := state.Active(opponent); receiving != nil && receiving.Card.Pokemon != nil {
		if w := receiving.Card.Pokemon.Weakness; w != nil && *w == active.Card.EnergyTypeOf() {
			weaknessModifier = 20
		}
	}

	return attack.FixedDamage + weaknessModifier + giovanniModifier
}

// ContainsEnergy reports whether attached satisfies cost, matching
// non-Colorless requirements exactly first and treating any leftover
// attached energy as satisfying Colorless requirements.
func ContainsEnergy(attached, cost []model.EnergyType) bool {
	working := append([]model.EnergyType(nil), attached...)
	colorless := 0

	for _, want := range cost {
		if want == model.Colorless {
			colorless++
			continue
		}
		idx := -1
		for i, have := range working {
			if have == want {
				idx = i
				break
			}
		}
		if idx == -1 {
			return false
		}
		working = append(working[:idx], working[idx+1:]...)
	}

	return len(working) >= colorless
}

// RetreatCost computes a Pokémon's effective retreat cost: the printed
// cost minus one per X-Speed and two per Leaf currently in the turn's
// effect list, floored at zero.
func RetreatCost(state *model.State, card *model.PlayedCard) []model.EnergyType {
	if card.Card.Pokemon == nil {
		return nil
	}
	cost := append([]model.EnergyType(nil), card.Card.Pokemon.RetreatCost...)

	var xSpeeds, leafs int
	for _, c := range state.CurrentTurnEffects() {
		if c.Trainer == nil {
			continue
		}
		switch c.Trainer.ID {
		case catalog.XSpeed:
			xSpeeds++
		case catalog.LeafA1a, catalog.LeafA1aAlt:
			leafs++
		}
	}

	toSubtract := leafs*2 + xSpeeds
	for i := 0; i < toSubtract && len(cost) > 0; i++ {
		cost = cost[:len(cost)-1]
	}
	return cost
}

// CanRetreat reports whether the current player may retreat: they must
// not have already retreated this turn, and no Arbok "Corner" effect
// may be active.
func CanRetreat(state *model.State) bool {
	if state.HasRetreated {
		return false
	}
	for _, c := range state.CurrentTurnEffects() {
		if c.Name() == "Arbok" {
			return false
		}
	}
	return true
}

// CanPlaySupport reports whether the current player may play a
// Supporter card this turn: none played yet, and no Psyduck "Headache"
// effect is active.
func CanPlaySupport(state *model.State) bool {
	if state.HasPlayedSupport {
		return false
	}
	for _, c := range state.CurrentTurnEffects() {
		if c.Name() == "Psyduck" {
			return false
		}
	}
	return true
}

// CounterAttackDamage computes the damage the attacker takes back when
// attacking a defender holding Rocky Helmet or a hard-coded counter
// Pokémon, applied only when the target is the Active slot.
func CounterAttackDamage(defender *model.PlayedCard, targetSlot int) uint32 {
	if targetSlot != 0 {
		return 0
	}
	var dmg uint32
	if defender.AttachedTool == catalog.ToolRockyHelmet {
		dmg += 20
	}
	if catalog.CounterPokemon[defender.Card.Name()] {
		dmg += 20
	}
	return dmg
}

// OnAttachTool applies a tool's immediate effect when attached. Giant
// Cape grows both current and max HP by 20; Rocky Helmet has no
// on-attach effect (it modifies counter-attack damage instead).
func OnAttachTool(card *model.PlayedCard, tool model.ToolID) {
	switch tool {
	case catalog.ToolGiantCape:
		card.RemainingHP += 20
		card.TotalHP += 20
	case catalog.ToolRockyHelmet:
		// No-op on attach.
	}
}

// AdvanceTurnEffects enqueues standing passive effects (Arbok's Corner,
// Psyduck's Headache) onto the given future turn for each player whose
// Active Pokémon carries one, so CurrentTurnEffects sees them the way
// it sees played Trainer effects. Called once per AdvanceTurn.
func AdvanceTurnEffects(state *model.State, turn uint8) {
	for p := 0; p < 2; p++ {
		active := state.InPlay[p][0]
		if active == nil {
			continue
		}
		switch active.Card.Name() {
		case "Arbok", "Psyduck":
			state.AddTurnEffect(turn, active.Card)
		}
	}
}
