// Package movegen enumerates the currently legal actions for a State,
// in the precedence the driver and every agent depend on: the move
// generation stack always takes priority over free play, and free play
// always offers EndTurn alongside whatever hand/energy/retreat/attack/
// ability actions are currently available.
package movegen

import (
	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/hooks"
	"github.com/pocketsim/pocketsim/model"
)

// LegalActions returns the deciding player and the set of actions they
// may currently choose among.
func LegalActions(state *model.State) (int, []model.Action) {
	if state.TurnCount == 0 {
		return state.CurrentPlayer, wrap(state.CurrentPlayer, setupActions(state), false)
	}

	if n := len(state.MoveGenerationStack); n > 0 {
		frame := state.MoveGenerationStack[n-1]
		return frame.Actor, wrap(frame.Actor, frame.Actions, true)
	}

	actor := state.CurrentPlayer
	actions := []model.SimpleAction{{Kind: model.KindEndTurn}}
	actions = append(actions, handActions(state, actor)...)
	actions = append(actions, energyActions(state, actor)...)
	actions = append(actions, retreatActions(state, actor)...)
	actions = append(actions, attackActions(state, actor)...)
	actions = append(actions, abilityActions(state, actor)...)
	return actor, wrap(actor, actions, false)
}

func wrap(actor int, simple []model.SimpleAction, isStack bool) []model.Action {
	out := make([]model.Action, len(simple))
	for i, a := range simple {
		out[i] = model.Action{Actor: actor, Inner: a, IsStack: isStack}
	}
	return out
}

// setupActions governs the pre-game placement phase: a player with no
// Active may only place a Basic into the Active slot; once they have
// one, they may fill the bench or end their half of setup.
func setupActions(state *model.State) []model.SimpleAction {
	actor := state.CurrentPlayer
	hand := handActions(state, actor)
	if state.InPlay[actor][0] == nil {
		var out []model.SimpleAction
		for _, a := range hand {
			if a.Kind == model.KindPlace && a.Slot == 0 {
				out = append(out, a)
			}
		}
		return out
	}
	var out []model.SimpleAction
	for _, a := range hand {
		if a.Kind == model.KindPlace && a.Slot != 0 {
			out = append(out, a)
		}
	}
	out = append(out, model.SimpleAction{Kind: model.KindEndTurn})
	return out
}

func handActions(state *model.State, actor int) []model.SimpleAction {
	var out []model.SimpleAction
	for _, card := range state.Hands[actor] {
		switch {
		case card.Pokemon != nil && card.Pokemon.Stage == model.StageBasic:
			for _, slot := range state.EnumerateEmptySlots(actor) {
				out = append(out, model.SimpleAction{Kind: model.KindPlace, Card: card, Slot: slot})
			}
		case card.Pokemon != nil:
			if state.TurnCount <= 2 {
				continue
			}
			for _, slot := range state.EnumerateInPlay(actor) {
				pc := state.InPlay[actor][slot]
				if pc.PlayedThisTurn {
					continue
				}
				if pc.Card.Name() == card.Pokemon.EvolvesFrom {
					out = append(out, model.SimpleAction{Kind: model.KindEvolve, Card: card, Slot: slot})
				}
			}
		case card.Trainer != nil:
			out = append(out, trainerActions(state, actor, card)...)
		}
	}
	return out
}

func energyActions(state *model.State, actor int) []model.SimpleAction {
	if state.CurrentEnergy == nil {
		return nil
	}
	var out []model.SimpleAction
	for _, slot := range state.EnumerateInPlay(actor) {
		out = append(out, model.SimpleAction{
			Kind:        model.KindAttach,
			Attachments: []model.Attachment{{Amount: 1, Type: *state.CurrentEnergy, Slot: slot}},
			IsTurnEnergy: true,
		})
	}
	return out
}

func retreatActions(state *model.State, actor int) []model.SimpleAction {
	active := state.InPlay[actor][0]
	if active == nil || !hooks.CanRetreat(state) {
		return nil
	}
	cost := hooks.RetreatCost(state, active)
	if !hooks.ContainsEnergy(active.AttachedEnergy, cost) {
		return nil
	}
	var out []model.SimpleAction
	for _, slot := range state.EnumerateBench(actor) {
		out = append(out, model.SimpleAction{Kind: model.KindRetreat, Slot: slot})
	}
	return out
}

// attackActions withholds attacks entirely on turn 1, per the rule
// that the first player to act can never attack on their opening turn.
func attackActions(state *model.State, actor int) []model.SimpleAction {
	if state.TurnCount <= 1 {
		return nil
	}
	active := state.InPlay[actor][0]
	if active == nil {
		return nil
	}
	var out []model.SimpleAction
	for i, attack := range active.Card.Attacks() {
		if hooks.ContainsEnergy(active.AttachedEnergy, attack.EnergyRequired) {
			out = append(out, model.SimpleAction{Kind: model.KindAttack, AttackIndex: i})
		}
	}
	return out
}

// abilityActions offers UseAbility only for implementable, currently
// activatable abilities; passive abilities (Arbok, Psyduck, Arceus-EX)
// never surface here — they resolve via hooks at turn-advance or the
// damage/status pipeline instead.
func abilityActions(state *model.State, actor int) []model.SimpleAction {
	var out []model.SimpleAction
	for _, slot := range state.EnumerateInPlay(actor) {
		pc := state.InPlay[actor][slot]
		if pc.Card.Pokemon == nil || pc.Card.Pokemon.Ability == "" {
			continue
		}
		abilityID, ok := catalog.AbilityIDFrom(pc.Card.Pokemon.ID)
		if !ok || catalog.PassiveAbilities[abilityID] {
			continue
		}
		if abilityID == catalog.AbilityPoisonActive && slot != 0 {
			continue
		}
		if pc.AbilityUsed {
			continue
		}
		out = append(out, model.SimpleAction{Kind: model.KindUseAbility, Slot: slot})
	}
	return out
}
