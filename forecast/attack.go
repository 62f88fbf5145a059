package forecast

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/hooks"
	"github.com/pocketsim/pocketsim/model"
)

// forecastAttack routes an attack to the plain-damage outcome or, when
// the attack carries an effect, to its canonical shape handler.
func forecastAttack(state *model.State, actor int, index int) ([]float64, []Mutation) {
	active := state.Active(actor)
	attack := active.Card.Attacks()[index]
	if attack.Effect == nil {
		return indexDamageDoutcome(index, nil)
	}
	return forecastEffectAttack(state, actor, index, attack.Effect)
}

func forecastEffectAttack(state *model.State, actor int, index int, effect *model.AttackEffect) ([]float64, []Mutation) {
	switch effect.Shape {
	case model.ShapeSelfHeal:
		amount := effect.SelfHealAmount
		return indexDamageDoutcome(index, func(_ *rand.Rand, s *model.State, a model.Action) {
			s.Active(a.Actor).Heal(amount)
		})
	case model.ShapeSelfDamage:
		return damageDoutcome(literalDamageFromFixed(state.Active(actor).Card, index), func(_ *rand.Rand, s *model.State, a model.Action) {
			s.Active(a.Actor).ApplyDamage(effect.SelfDamageAmount)
		})
	case model.ShapeEnergyDiscard:
		toDiscard := effect.EnergyDiscardCount
		return indexDamageDoutcome(index, func(_ *rand.Rand, s *model.State, a model.Action) {
			s.Active(a.Actor).DiscardEnergyCount(toDiscard)
		})
	case model.ShapeDrawAndDamage:
		return damageDoutcome(literalDamageFromFixed(active(state, actor).Card, index), func(_ *rand.Rand, s *model.State, a model.Action) {
			for i := 0; i < effect.DrawCount; i++ {
				s.PushStack(a.Actor, []model.SimpleAction{{Kind: model.KindDrawCard}})
			}
		})
	case model.ShapeStatusApply:
		return statusApplyOutcomes(literalDamageFromFixed(active(state, actor).Card, index), effect)
	case model.ShapeCoinFlipDamage:
		return coinFlipDamageOutcomes(effect.NumCoins, effect.DamagePerHit)
	case model.ShapeFlipUntilTails:
		return flipUntilTailsOutcomes(effect.FlipDamagePerHeads)
	case model.ShapeEnergyScaledCoins:
		n := countAttachedEnergy(state.Active(actor), effect.ScaleByEnergyType)
		return coinFlipDamageOutcomes(n, effect.DamagePerHit)
	case model.ShapeBenchCount:
		count := countBench(state, actor, effect.BenchEnergyFilter)
		damage := effect.Base + effect.PerBench*uint32(count)
		return damageDoutcome(damage, nil)
	case model.ShapeDirectDamage:
		return directDamageOutcome(uint32(effect.DistributeTotal), false)
	case model.ShapeDistribute:
		return distributeOutcome(effect)
	default:
		panic("forecast: unhandled effect shape")
	}
}

func active(state *model.State, actor int) *model.PlayedCard { return state.Active(actor) }

// literalDamageFromFixed resolves the attack's FixedDamage directly
// from the catalog card, used by shapes whose damage figure is a flat
// printed value rather than being recomputed via hooks.DamageFromAttack.
func literalDamageFromFixed(card model.Card, index int) uint32 {
	return card.Attacks()[index].FixedDamage
}

func countAttachedEnergy(pc *model.PlayedCard, filter *model.EnergyType) int {
	if filter == nil {
		return len(pc.AttachedEnergy)
	}
	n := 0
	for _, e := range pc.AttachedEnergy {
		if e == *filter {
			n++
		}
	}
	return n
}

func countBench(state *model.State, actor int, filter *model.EnergyType) int {
	n := 0
	for _, slot := range state.EnumerateBench(actor) {
		pc := state.InPlay[actor][slot]
		if filter == nil || pc.Card.EnergyTypeOf() == *filter {
			n++
		}
	}
	return n
}

// ===== Outcome builders, mirroring the source's doutcome/mutation
// helper split: every attack mutation pushes an EndTurn stack frame
// before resolving damage/effects, so attacking always ends the turn
// (any forced follow-up choice resolves first, LIFO, ahead of EndTurn).

func damageEffectMutation(targets []model.DamageTarget, extra Mutation) Mutation {
	return func(rng *rand.Rand, state *model.State, action model.Action) {
		commonMutation(state, action)
		state.PushStack(action.Actor, []model.SimpleAction{{Kind: model.KindEndTurn}})
		if extra != nil {
			extra(rng, state, action)
		}
		handleAttackDamage(state, action.Actor, targets)
	}
}

func damageDoutcome(damage uint32, extra Mutation) ([]float64, []Mutation) {
	return []float64{1.0}, []Mutation{damageEffectMutation([]model.DamageTarget{{Damage: damage, Slot: 0}}, extra)}
}

// indexDamageDoutcome defers the damage computation to apply-time via
// hooks.DamageFromAttack, so it reflects the current weakness/Giovanni
// modifiers against the Active target, exactly as a no-effect attack
// would.
func indexDamageDoutcome(attackIndex int, extra Mutation) ([]float64, []Mutation) {
	mutation := func(rng *rand.Rand, state *model.State, action model.Action) {
		commonMutation(state, action)
		state.PushStack(action.Actor, []model.SimpleAction{{Kind: model.KindEndTurn}})
		if extra != nil {
			extra(rng, state, action)
		}
		damage := hooks.DamageFromAttack(state, action.Actor, attackIndex, 0)
		handleAttackDamage(state, action.Actor, []model.DamageTarget{{Damage: damage, Slot: 0}})
	}
	return []float64{1.0}, []Mutation{mutation}
}

func statusApplyOutcomes(damage uint32, effect *model.AttackEffect) ([]float64, []Mutation) {
	if effect.StatusProbability >= 1.0 {
		return damageDoutcome(damage, buildStatusEffect(effect.Status))
	}
	return []float64{effect.StatusProbability, 1 - effect.StatusProbability}, []Mutation{
		damageEffectMutation([]model.DamageTarget{{Damage: damage, Slot: 0}}, buildStatusEffect(effect.Status)),
		damageEffectMutation([]model.DamageTarget{{Damage: damage, Slot: 0}}, nil),
	}
}

// buildStatusEffect inflicts status on the opponent's Active, except
// Arceus-EX, which is immune to all three conditions.
func buildStatusEffect(status model.StatusCondition) Mutation {
	return func(_ *rand.Rand, state *model.State, action model.Action) {
		opponentActive := state.Active(model.Opponent(action.Actor))
		if opponentActive == nil {
			return
		}
		if opponentActive.Card.Pokemon != nil && opponentActive.Card.Pokemon.Ability == catalog.AbilityArceusPassive {
			return
		}
		switch status {
		case model.StatusPoisoned:
			opponentActive.Poisoned = true
		case model.StatusParalyzed:
			opponentActive.Paralyzed = true
		case model.StatusAsleep:
			opponentActive.Asleep = true
		}
	}
}

func coinFlipDamageOutcomes(numCoins int, damagePerHit uint32) ([]float64, []Mutation) {
	if numCoins == 0 {
		return damageDoutcome(0, nil)
	}
	probs := binomialProbabilities(numCoins)
	mutations := make([]Mutation, len(probs))
	for heads := range probs {
		damage := damagePerHit * uint32(heads)
		mutations[heads] = damageEffectMutation([]model.DamageTarget{{Damage: damage, Slot: 0}}, nil)
	}
	return probs, mutations
}

// flipUntilTailsOutcomes models flipping a coin repeatedly, stopping at
// the first tails, capped at 8 heads: probability (½)^(k+1) for
// k = 0..6, with the remaining mass folded into k = 7 so the vector
// sums exactly to 1.
func flipUntilTailsOutcomes(damagePerHeads uint32) ([]float64, []Mutation) {
	const cap = 8
	probs := make([]float64, cap)
	var sum float64
	for k := 0; k < cap-1; k++ {
		p := 1.0
		for i := 0; i <= k; i++ {
			p /= 2
		}
		probs[k] = p
		sum += p
	}
	probs[cap-1] = 1 - sum

	mutations := make([]Mutation, cap)
	for heads := range probs {
		damage := damagePerHeads * uint32(heads)
		mutations[heads] = damageEffectMutation([]model.DamageTarget{{Damage: damage, Slot: 0}}, nil)
	}
	return probs, mutations
}

// binomialProbabilities returns C(n,k)/2^n for k = 0..n via Pascal's
// triangle, avoiding factorial overflow for the small n this engine
// ever sees (coin counts stay in the single digits).
func binomialProbabilities(n int) []float64 {
	row := make([]float64, n+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		for j := i; j > 0; j-- {
			row[j] += row[j-1]
		}
	}
	total := 0.0
	for _, v := range row {
		total += v
	}
	probs := make([]float64, n+1)
	for i, v := range row {
		probs[i] = v / total
	}
	return probs
}

// directDamageOutcome queues a choice of which opposing Pokémon takes
// damage — bench only, or any in-play slot — ending the turn once the
// choice resolves.
func directDamageOutcome(damage uint32, benchOnly bool) ([]float64, []Mutation) {
	mutation := func(rng *rand.Rand, state *model.State, action model.Action) {
		commonMutation(state, action)
		state.PushStack(action.Actor, []model.SimpleAction{{Kind: model.KindEndTurn}})
		opponent := model.Opponent(action.Actor)
		var slots []int
		if benchOnly {
			slots = state.EnumerateBench(opponent)
		} else {
			slots = state.EnumerateInPlay(opponent)
		}
		if len(slots) == 0 {
			return
		}
		choices := make([]model.SimpleAction, len(slots))
		for i, slot := range slots {
			choices[i] = model.SimpleAction{Kind: model.KindApplyDamage, DamageTargets: []model.DamageTarget{{Damage: damage, Slot: slot}}}
		}
		state.PushStack(action.Actor, choices)
	}
	return []float64{1.0}, []Mutation{mutation}
}

// distributeOutcome models Moltres ex's Inferno Dance: flip three coins
// (0-3 heads, probabilities 0.125/0.375/0.375/0.125), then queue a
// choice of how to spread that many Fire energy across Fire-type bench
// Pokémon, one choice per partition of the heads count across the
// eligible slots.
func distributeOutcome(effect *model.AttackEffect) ([]float64, []Mutation) {
	probs := []float64{0.125, 0.375, 0.375, 0.125}
	mutations := make([]Mutation, len(probs))
	for heads := range probs {
		heads := heads
		mutations[heads] = damageEffectMutation([]model.DamageTarget{{Damage: 0, Slot: 0}}, func(_ *rand.Rand, state *model.State, action model.Action) {
			if heads == 0 {
				return
			}
			var fireBench []int
			for _, slot := range state.EnumerateBench(action.Actor) {
				if state.InPlay[action.Actor][slot].Card.EnergyTypeOf() == model.Fire {
					fireBench = append(fireBench, slot)
				}
			}
			if len(fireBench) == 0 {
				return
			}
			choices := generateEnergyDistributions(fireBench, heads)
			if len(choices) == 0 {
				return
			}
			state.PushStack(action.Actor, choices)
		})
	}
	return probs, mutations
}

// generateEnergyDistributions enumerates every way to split heads units
// of Fire energy across slots, one Attach choice per partition.
func generateEnergyDistributions(slots []int, heads int) []model.SimpleAction {
	var partitions [][]int
	current := make([]int, len(slots))
	var recurse func(remaining, startIdx int)
	recurse = func(remaining, startIdx int) {
		if remaining == 0 {
			partitions = append(partitions, append([]int(nil), current...))
			return
		}
		if startIdx >= len(slots) {
			return
		}
		for amount := 0; amount <= remaining; amount++ {
			current[startIdx] = amount
			recurse(remaining-amount, startIdx+1)
		}
		current[startIdx] = 0
	}
	recurse(heads, 0)

	choices := make([]model.SimpleAction, 0, len(partitions))
	for _, dist := range partitions {
		var attachments []model.Attachment
		for i, slot := range slots {
			if dist[i] > 0 {
				attachments = append(attachments, model.Attachment{Amount: dist[i], Type: model.Fire, Slot: slot})
			}
		}
		choices = append(choices, model.SimpleAction{Kind: model.KindAttach, Attachments: attachments})
	}
	return choices
}
