package catalog

import "github.com/pocketsim/pocketsim/model"

// ByID resolves a catalog entry by its stable CardID.
func ByID(id model.CardID) (model.Card, bool) {
	c, ok := registry[id]
	return c, ok
}

// ByName resolves a catalog entry by display name, case-sensitive.
// Returns the first match found; which of several reprints sharing a
// name across sets is returned is not defined. Deck files resolve
// cards by their set+number pair through ByID instead.
func ByName(name string) (model.Card, bool) {
	for _, c := range registry {
		if c.Name() == name {
			return c, true
		}
	}
	return model.Card{}, false
}

// All returns every catalog entry, used by the optimizer to enumerate
// candidate cards.
func All() []model.Card {
	out := make([]model.Card, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	return out
}
