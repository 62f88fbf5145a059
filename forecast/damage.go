package forecast

import (
	"github.com/pocketsim/pocketsim/hooks"
	"github.com/pocketsim/pocketsim/model"
)

type knockout struct {
	side int // whose board the knocked-out Pokémon was on
	slot int
}

// handleAttackDamage applies damage to attackingPlayer's opponent
// across targets, resolves any counter-attack damage back onto the
// attacker's Active, awards points for every knockout (on either side),
// checks the game-end short-circuit, and — only if the game
// continues — replaces every knocked-out Active: a side with an empty
// bench loses, a single bench Pokémon is promoted directly, and two or
// more queue an Activate choice per bench slot.
func handleAttackDamage(state *model.State, attackingPlayer int, targets []model.DamageTarget) {
	opponent := model.Opponent(attackingPlayer)
	var knockouts []knockout

	for _, t := range targets {
		if t.Damage == 0 {
			continue
		}
		receiving := state.InPlay[opponent][t.Slot]
		receiving.ApplyDamage(t.Damage)
		if receiving.RemainingHP == 0 {
			knockouts = append(knockouts, knockout{opponent, t.Slot})
		}

		if t.Slot != 0 {
			continue
		}
		counter := hooks.CounterAttackDamage(receiving, t.Slot)
		if counter == 0 {
			continue
		}
		attackerActive := state.InPlay[attackingPlayer][0]
		if attackerActive == nil {
			continue
		}
		attackerActive.ApplyDamage(counter)
		if attackerActive.RemainingHP == 0 {
			knockouts = append(knockouts, knockout{attackingPlayer, 0})
		}
	}

	for _, k := range knockouts {
		receiving := state.InPlay[k.side][k.slot]
		awardedTo := attackingPlayer
		if k.side == attackingPlayer {
			awardedTo = opponent
		}
		points := uint8(1)
		if receiving.Card.IsEX() {
			points = 2
		}
		state.Points[awardedTo] += points

		discard := append(append([]model.Card(nil), receiving.CardsBehind...), receiving.Card)
		state.DiscardPiles[k.side] = append(state.DiscardPiles[k.side], discard...)
		state.InPlay[k.side][k.slot] = nil
	}

	p0, p1 := state.Points[0], state.Points[1]
	switch {
	case p0 >= 3 && p1 >= 3:
		state.Winner = &model.Outcome{IsTie: true}
		return
	case p0 >= 3:
		state.Winner = &model.Outcome{Winner: 0}
		return
	case p1 >= 3:
		state.Winner = &model.Outcome{Winner: 1}
		return
	}

	seen := map[int]bool{}
	for _, k := range knockouts {
		if k.slot != 0 || seen[k.side] {
			continue
		}
		seen[k.side] = true

		bench := state.EnumerateBench(k.side)
		switch len(bench) {
		case 0:
			state.Winner = &model.Outcome{Winner: model.Opponent(k.side)}
			return
		case 1:
			idx := bench[0]
			state.InPlay[k.side][0] = state.InPlay[k.side][idx]
			state.InPlay[k.side][idx] = nil
		default:
			moves := make([]model.SimpleAction, len(bench))
			for i, idx := range bench {
				moves[i] = model.SimpleAction{Kind: model.KindActivate, Slot: idx}
			}
			state.PushStack(k.side, moves)
		}
	}
}
