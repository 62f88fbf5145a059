package optimize

import (
	"math/rand"

	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/driver"
	"github.com/pocketsim/pocketsim/model"
)

// completeDeck appends a candidate combination onto a (possibly
// incomplete) base deck, resolving each CardID through the catalog.
func completeDeck(base model.Deck, completion []model.CardID) (model.Deck, error) {
	out := base.Clone()
	for _, id := range completion {
		card, ok := catalog.ByID(id)
		if !ok {
			return model.Deck{}, errUnknownCardID(id)
		}
		out.Cards = append(out.Cards, card)
	}
	if out.EnergyTypes == nil || len(out.EnergyTypes) == 0 {
		out.EnergyTypes = model.DefaultEnergyTypes(out.Cards)
	}
	return out, nil
}

// winRate plays num games of deck against every enemy deck with the
// given agent pair (deck always seated as player 0) and returns the
// fraction of games player 0 won outright (ties don't count).
func winRate(deck model.Deck, enemyDecks []model.Deck, num int, agents [2]driver.Agent, seed *uint64) float64 {
	wins, total := 0, 0
	for _, enemy := range enemyDecks {
		for i := 0; i < num; i++ {
			rng := rngFor(seed, total)
			state := model.Initialize(deck.Clone(), enemy.Clone(), rng)
			g := driver.NewGame(agents[0], agents[1])
			result := g.Play(rng, state)
			total++
			if result.Outcome != nil && !result.Outcome.IsTie && result.Outcome.Winner == 0 {
				wins++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total)
}

// rngFor derives a per-game RNG: deterministic (seed+offset) when a
// seed was supplied, otherwise process-entropy seeded.
func rngFor(seed *uint64, offset int) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return rand.New(rand.NewSource(int64(*seed) + int64(offset)))
}

type errUnknownCardID model.CardID

func (e errUnknownCardID) Error() string {
	return "optimize: unknown card id " + string(e)
}
