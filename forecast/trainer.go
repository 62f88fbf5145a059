package forecast

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/model"
)

// forecastTrainer routes a played Trainer card to its effect (§4.7).
// Unlike attacks, playing a Trainer never ends the turn.
func forecastTrainer(state *model.State, actor int, trainer model.Card) ([]float64, []Mutation) {
	if trainer.Trainer == nil {
		panic("forecast: Play action requires a Trainer card")
	}
	switch trainer.Trainer.ID {
	case catalog.Potion:
		return deterministic(healChoices(20, nil))
	case catalog.Erika:
		grass := model.Grass
		return deterministic(healChoices(50, &grass))
	case catalog.XSpeed, catalog.LeafA1a, catalog.LeafA1aAlt, catalog.Giovanni:
		return deterministic(addTurnEffect)
	case catalog.PokeBall:
		return pokeballOutcomes(state, actor)
	case catalog.RedCard:
		return deterministic(redCardEffect)
	case catalog.ProfessorsResearch:
		return deterministic(professorsResearchEffect)
	case catalog.Sabrina:
		return deterministic(sabrinaEffect)
	case catalog.Cyrus:
		return deterministic(cyrusEffect)
	case catalog.Koga:
		return deterministic(kogaEffect)
	case catalog.MythicalSlab:
		return deterministic(mythicalSlabEffect)
	case catalog.GiantCape, catalog.RockyHelmet:
		return deterministic(attachToolEffect)
	default:
		panic("forecast: unsupported Trainer card " + trainer.Name())
	}
}

// deterministic wraps a trainer body with the common mutation prelude;
// unlike attack outcomes, no EndTurn frame is pushed.
func deterministic(body func(rng *rand.Rand, state *model.State, action model.Action)) ([]float64, []Mutation) {
	return []float64{1.0}, []Mutation{func(rng *rand.Rand, state *model.State, action model.Action) {
		commonMutation(state, action)
		body(rng, state, action)
	}}
}

func healChoices(amount uint32, energyFilter *model.EnergyType) func(*rand.Rand, *model.State, model.Action) {
	return func(_ *rand.Rand, state *model.State, action model.Action) {
		var choices []model.SimpleAction
		for _, slot := range state.EnumerateInPlay(action.Actor) {
			pc := state.InPlay[action.Actor][slot]
			if !pc.IsDamaged() {
				continue
			}
			if energyFilter != nil && pc.Card.EnergyTypeOf() != *energyFilter {
				continue
			}
			choices = append(choices, model.SimpleAction{Kind: model.KindHeal, Slot: slot, HealAmount: amount})
		}
		if len(choices) > 0 {
			state.PushStack(action.Actor, choices)
		}
	}
}

func addTurnEffect(_ *rand.Rand, state *model.State, action model.Action) {
	state.AddTurnEffect(state.TurnCount, action.Inner.Trainer)
}

func pokeballOutcomes(state *model.State, actor int) ([]float64, []Mutation) {
	var basicIdx []int
	for i, c := range state.Decks[actor].Cards {
		if c.Pokemon != nil && c.Pokemon.Stage == model.StageBasic {
			basicIdx = append(basicIdx, i)
		}
	}
	if len(basicIdx) == 0 {
		return deterministic(func(rng *rand.Rand, state *model.State, action model.Action) {
			state.Decks[action.Actor].Shuffle(false, rng)
		})
	}

	n := len(basicIdx)
	probs := make([]float64, n)
	mutations := make([]Mutation, n)
	for i, deckIdx := range basicIdx {
		deckIdx := deckIdx
		probs[i] = 1.0 / float64(n)
		mutations[i] = func(rng *rand.Rand, state *model.State, action model.Action) {
			commonMutation(state, action)
			card := state.Decks[action.Actor].Cards[deckIdx]
			deck := &state.Decks[action.Actor]
			deck.Cards = append(deck.Cards[:deckIdx], deck.Cards[deckIdx+1:]...)
			state.Hands[action.Actor] = append(state.Hands[action.Actor], card)
			deck.Shuffle(false, rng)
		}
	}
	return probs, mutations
}

func redCardEffect(rng *rand.Rand, state *model.State, action model.Action) {
	opponent := model.Opponent(action.Actor)
	deck := &state.Decks[opponent]
	deck.Cards = append(deck.Cards, state.Hands[opponent]...)
	state.Hands[opponent] = nil
	deck.Shuffle(false, rng)
	for i := 0; i < 3; i++ {
		state.MaybeDrawCard(opponent)
	}
}

func professorsResearchEffect(_ *rand.Rand, state *model.State, action model.Action) {
	state.MaybeDrawCard(action.Actor)
	state.MaybeDrawCard(action.Actor)
}

func sabrinaEffect(_ *rand.Rand, state *model.State, action model.Action) {
	opponent := model.Opponent(action.Actor)
	bench := state.EnumerateBench(opponent)
	if len(bench) == 0 {
		return
	}
	moves := make([]model.SimpleAction, len(bench))
	for i, slot := range bench {
		moves[i] = model.SimpleAction{Kind: model.KindActivate, Slot: slot}
	}
	state.PushStack(opponent, moves)
}

func cyrusEffect(_ *rand.Rand, state *model.State, action model.Action) {
	opponent := model.Opponent(action.Actor)
	var moves []model.SimpleAction
	for _, slot := range state.EnumerateBench(opponent) {
		if state.InPlay[opponent][slot].IsDamaged() {
			moves = append(moves, model.SimpleAction{Kind: model.KindActivate, Slot: slot})
		}
	}
	if len(moves) > 0 {
		state.PushStack(opponent, moves)
	}
}

func kogaEffect(_ *rand.Rand, state *model.State, action model.Action) {
	actor := action.Actor
	activePokemon := state.InPlay[actor][0]
	if activePokemon == nil || !catalog.BounceablePokemon[activePokemon.Card.Name()] {
		return
	}
	collected := append(append([]model.Card(nil), activePokemon.CardsBehind...), activePokemon.Card)
	state.Hands[actor] = append(state.Hands[actor], collected...)
	state.InPlay[actor][0] = nil

	bench := state.EnumerateBench(actor)
	if len(bench) == 0 {
		state.Winner = &model.Outcome{Winner: model.Opponent(actor)}
		return
	}
	moves := make([]model.SimpleAction, len(bench))
	for i, slot := range bench {
		moves[i] = model.SimpleAction{Kind: model.KindActivate, Slot: slot}
	}
	state.PushStack(actor, moves)
}

func mythicalSlabEffect(_ *rand.Rand, state *model.State, action model.Action) {
	deck := &state.Decks[action.Actor]
	if len(deck.Cards) == 0 {
		return
	}
	top := deck.Cards[0]
	if top.Pokemon != nil && top.Pokemon.Stage == model.StageBasic {
		state.Hands[action.Actor] = append(state.Hands[action.Actor], top)
		deck.Cards = deck.Cards[1:]
		return
	}
	deck.Cards = append(deck.Cards[1:], top)
}

func attachToolEffect(_ *rand.Rand, state *model.State, action model.Action) {
	toolID, ok := catalog.ToolIDFrom(action.Inner.Trainer)
	if !ok {
		panic("forecast: no tool id for " + action.Inner.Trainer.Name())
	}
	var choices []model.SimpleAction
	for _, slot := range state.EnumerateInPlay(action.Actor) {
		if state.InPlay[action.Actor][slot].AttachedTool == "" {
			choices = append(choices, model.SimpleAction{Kind: model.KindAttachTool, Slot: slot, ToolID: toolID})
		}
	}
	if len(choices) > 0 {
		state.PushStack(action.Actor, choices)
	}
}
