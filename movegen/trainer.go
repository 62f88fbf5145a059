package movegen

import (
	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/hooks"
	"github.com/pocketsim/pocketsim/model"
)

// trainerActions gates a Trainer card behind the preconditions that
// make it usable at all, so unplayable trainers never appear as legal
// actions (a Potion with nothing damaged yields no action, not a
// Play that fizzles).
func trainerActions(state *model.State, actor int, card model.Card) []model.SimpleAction {
	trainer := card.Trainer
	if trainer.Kind == model.Supporter && !hooks.CanPlaySupport(state) {
		return nil
	}
	if trainer.Kind == model.Tool {
		if hasOpenToolSlot(state, actor) {
			return []model.SimpleAction{{Kind: model.KindPlay, Trainer: card}}
		}
		return nil
	}

	switch trainer.ID {
	case catalog.Potion:
		if anyDamaged(state, actor, nil) {
			return []model.SimpleAction{{Kind: model.KindPlay, Trainer: card}}
		}
	case catalog.Erika:
		grass := model.Grass
		if anyDamaged(state, actor, &grass) {
			return []model.SimpleAction{{Kind: model.KindPlay, Trainer: card}}
		}
	case catalog.Koga:
		active := state.InPlay[actor][0]
		if active != nil && catalog.BounceablePokemon[active.Card.Name()] {
			return []model.SimpleAction{{Kind: model.KindPlay, Trainer: card}}
		}
	case catalog.Sabrina:
		if len(state.EnumerateBench(model.Opponent(actor))) > 0 {
			return []model.SimpleAction{{Kind: model.KindPlay, Trainer: card}}
		}
	case catalog.Cyrus:
		opponent := model.Opponent(actor)
		for _, slot := range state.EnumerateBench(opponent) {
			if state.InPlay[opponent][slot].IsDamaged() {
				return []model.SimpleAction{{Kind: model.KindPlay, Trainer: card}}
			}
		}
	case catalog.XSpeed, catalog.LeafA1a, catalog.LeafA1aAlt, catalog.PokeBall,
		catalog.RedCard, catalog.ProfessorsResearch, catalog.Giovanni, catalog.MythicalSlab:
		return []model.SimpleAction{{Kind: model.KindPlay, Trainer: card}}
	}
	return nil
}

func anyDamaged(state *model.State, actor int, energyFilter *model.EnergyType) bool {
	for _, slot := range state.EnumerateInPlay(actor) {
		pc := state.InPlay[actor][slot]
		if !pc.IsDamaged() {
			continue
		}
		if energyFilter == nil || pc.Card.EnergyTypeOf() == *energyFilter {
			return true
		}
	}
	return false
}

func hasOpenToolSlot(state *model.State, actor int) bool {
	for _, slot := range state.EnumerateInPlay(actor) {
		if state.InPlay[actor][slot].AttachedTool == "" {
			return true
		}
	}
	return false
}
