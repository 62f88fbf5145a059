package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pocketsim/pocketsim/deckfile"
	"github.com/pocketsim/pocketsim/model"
)

// loadEnemyDecks reads every file in a folder as a deck, skipping (and
// warning about) anything that doesn't parse into a valid 20-card deck
// rather than aborting the whole run.
func loadEnemyDecks(dir string, log *zap.SugaredLogger) ([]model.Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var decks []model.Deck
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		deck, err := deckfile.Load(path)
		if err != nil {
			log.Warnw("skipping unparseable enemy deck", "path", path, "error", err)
			continue
		}
		if err := deck.Validate(); err != nil {
			log.Warnw("skipping invalid enemy deck", "path", path, "error", err)
			continue
		}
		decks = append(decks, deck)
	}
	return decks, nil
}
