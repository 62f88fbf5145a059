// Package forecast implements the action/forecast/mutation engine: for
// every legal action it produces a probability vector and an
// index-aligned list of lazy mutations, and separately applies the
// sampled outcome. Bots and the game driver share this single code
// path — a bot that wants to reason about an action's distribution
// calls Forecast directly; the driver calls Apply to actually play.
//
// Mutations accept the sampling *rand.Rand so that state spaces that
// would otherwise blow up combinatorially (shuffling a 20-card deck,
// choosing a random card from it) collapse to one outcome/mutation
// pair instead of one per permutation. Forecasting never samples;
// sampling happens only inside a chosen mutation.
package forecast

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/hooks"
	"github.com/pocketsim/pocketsim/model"
)

// Mutation deterministically advances state given the sampled rng draws
// it needs (deck shuffles, random card picks). Never reads action after
// state has diverged from what produced it.
type Mutation func(rng *rand.Rand, state *model.State, action model.Action)

// Forecast routes action to its specialised forecaster and returns the
// outcome distribution alongside the mutation that realises each
// outcome. len(probabilities) == len(mutations) always.
func Forecast(state *model.State, action model.Action) ([]float64, []Mutation) {
	switch action.Inner.Kind {
	case model.KindDrawCard, model.KindPlace, model.KindAttach, model.KindAttachTool,
		model.KindEvolve, model.KindUseAbility, model.KindActivate, model.KindRetreat,
		model.KindApplyDamage, model.KindHeal:
		return []float64{1.0}, []Mutation{applyDeterministicAction}
	case model.KindAttack:
		return forecastAttack(state, action.Actor, action.Inner.AttackIndex)
	case model.KindPlay:
		return forecastTrainer(state, action.Actor, action.Inner.Trainer)
	case model.KindEndTurn:
		return forecastEndTurn(state)
	default:
		panic("forecast: unhandled action kind")
	}
}

// Apply forecasts action and samples+runs one outcome against state.
func Apply(rng *rand.Rand, state *model.State, action model.Action) {
	probabilities, mutations := Forecast(state, action)
	idx := Sample(rng, probabilities)
	mutations[idx](rng, state, action)
}

// Sample draws a weighted-random index from probabilities. Falls back
// to the last index on floating-point rounding so a >=1.0 cumulative
// draw never runs off the end.
func Sample(rng *rand.Rand, probabilities []float64) int {
	if len(probabilities) == 1 {
		return 0
	}
	r := rng.Float64()
	var cumulative float64
	for i, p := range probabilities {
		cumulative += p
		if r < cumulative {
			return i
		}
	}
	return len(probabilities) - 1
}

// commonMutation applies the bookkeeping every outcome mutation must
// perform regardless of action kind: popping the move generation stack
// when the action was drawn from it, and moving a played Trainer card
// from hand to the discard pile (plus the has-played-Supporter gate).
func commonMutation(state *model.State, action model.Action) {
	if action.IsStack {
		state.PopStack()
	}
	if action.Inner.Kind == model.KindPlay {
		card := action.Inner.Trainer
		state.DiscardCardFromHand(action.Actor, card)
		if card.Trainer != nil && card.Trainer.Kind == model.Supporter {
			state.HasPlayedSupport = true
		}
	}
}

func applyDeterministicAction(_ *rand.Rand, state *model.State, action model.Action) {
	commonMutation(state, action)
	actor := action.Actor
	in := action.Inner

	switch in.Kind {
	case model.KindDrawCard:
		state.MaybeDrawCard(actor)
	case model.KindAttach:
		for _, a := range in.Attachments {
			state.InPlay[actor][a.Slot].AttachEnergy(a.Type, a.Amount)
		}
		if in.IsTurnEnergy {
			state.CurrentEnergy = nil
		}
	case model.KindAttachTool:
		pc := state.InPlay[actor][in.Slot]
		pc.AttachedTool = in.ToolID
		hooks.OnAttachTool(pc, in.ToolID)
	case model.KindPlace:
		played := model.ToPlayableCard(in.Card, true)
		state.InPlay[actor][in.Slot] = &played
		state.RemoveCardFromHand(actor, in.Card)
	case model.KindEvolve:
		applyEvolve(state, actor, in.Card, in.Slot)
	case model.KindUseAbility:
		applyAbility(state, actor, in.Slot)
	case model.KindActivate:
		applyRetreat(state, actor, in.Slot, true)
	case model.KindRetreat:
		applyRetreat(state, actor, in.Slot, false)
	case model.KindApplyDamage:
		handleAttackDamage(state, actor, in.DamageTargets)
	case model.KindHeal:
		state.InPlay[actor][in.Slot].Heal(in.HealAmount)
	default:
		panic("forecast: expected deterministic action")
	}
}

// applyEvolve replaces the pre-evolution PlayedCard, carrying over
// damage taken, attached energy, and the evolution chain; the attached
// tool and any status conditions are dropped, matching a fresh
// ToPlayableCard. played_this_turn is set so the new form cannot evolve
// again this turn, but it may still attack.
func applyEvolve(state *model.State, actor int, card model.Card, slot int) {
	if card.Pokemon == nil {
		panic("forecast: only Pokémon cards can be evolved")
	}
	if card.Pokemon.Stage == model.StageBasic {
		panic("forecast: only Stage 1 or Stage 2 Pokémon can be evolved into")
	}
	old := state.InPlay[actor][slot]
	played := model.ToPlayableCard(card, true)

	damageTaken := old.TotalHP - old.RemainingHP
	played.RemainingHP = played.TotalHP - damageTaken
	played.AttachedEnergy = append([]model.EnergyType(nil), old.AttachedEnergy...)
	played.CardsBehind = append(append([]model.Card(nil), old.CardsBehind...), old.Card)

	state.InPlay[actor][slot] = &played
	state.RemoveCardFromHand(actor, card)
}

func applyAbility(state *model.State, actor int, slot int) {
	pc := state.InPlay[actor][slot]
	pc.AbilityUsed = true
	abilityID, ok := catalog.AbilityIDFrom(pc.Card.Pokemon.ID)
	if !ok {
		panic("forecast: no ability implemented for " + pc.Card.Name())
	}
	switch abilityID {
	case catalog.AbilityHealAllBurst:
		for _, p := range state.InPlay[actor] {
			if p != nil {
				p.Heal(20)
			}
		}
	case catalog.AbilityPoisonActive:
		state.Active(model.Opponent(actor)).Poisoned = true
	case catalog.AbilityAttachPsychic:
		state.Active(actor).AttachEnergy(model.Psychic, 1)
	default:
		panic("forecast: unsupported ability " + string(abilityID))
	}
}

// applyRetreat swaps slot into Active, clearing status on the newly
// promoted Pokémon. A paid (non-free) retreat charges the effective
// retreat cost, discarding the last N attached energy (the engine
// never lets the player choose which energies to discard).
// Both paid and free (forced-promotion) retreats set HasRetreated,
// matching the source: once a side's Active has changed this turn,
// no further retreat is offered this turn either way.
func applyRetreat(state *model.State, actor int, slot int, isFree bool) {
	if !isFree {
		active := state.Active(actor)
		cost := hooks.RetreatCost(state, active)
		active.DiscardEnergyCount(len(cost))
	}
	state.InPlay[actor][0], state.InPlay[actor][slot] = state.InPlay[actor][slot], state.InPlay[actor][0]
	if promoted := state.InPlay[actor][0]; promoted != nil {
		promoted.ClearStatus()
	}
	state.HasRetreated = true
}
