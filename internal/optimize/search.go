package optimize

import (
	"context"

	"github.com/pocketsim/pocketsim/driver"
	"github.com/pocketsim/pocketsim/model"
)

// SearchBestDeck finds the single best-performing 20-card deck built
// entirely from candidates (no incomplete deck seed), against every
// deck in enemyDecks. Shares Run's combination/genetic machinery with
// an empty base deck.
func SearchBestDeck(ctx context.Context, candidates []model.CardID, enemyDecks []model.Deck, num int, agents [2]driver.Agent, seed *uint64) (Result, error) {
	empty := model.Deck{}
	return Run(ctx, empty, candidates, enemyDecks, num, agents, seed)
}
