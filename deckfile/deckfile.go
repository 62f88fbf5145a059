// Package deckfile parses the plain-text deck list format: a run of
// lines, optionally grouped under "Pokémon:" / "Trainer:" headers, plus
// "Energy: <Type>" lines naming the deck's energy types, each card line
// reading "<count> <name words...> <set>
// <number>". The trailing two tokens are the card's set code and
// printed number; the number is zero-padded to three digits before
// being joined into the catalog's "<set> <number>" ID.
package deckfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/model"
)

// Load reads and parses a deck file from disk.
func Load(path string) (model.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Deck{}, fmt.Errorf("deckfile: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a deck list from r. Energy types come from explicit
// "Energy: <Type>" lines; if none appear, they default to the union of
// every Pokémon card's printed energy type.
func Parse(r io.Reader) (model.Deck, error) {
	var cards []model.Card
	var energyTypes []model.EnergyType
	seenEnergy := map[model.EnergyType]bool{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "Pokémon:") || strings.HasPrefix(trimmed, "Trainer:") {
			continue
		}
		if strings.HasPrefix(trimmed, "Energy:") {
			fields := strings.Fields(trimmed)
			if len(fields) < 2 {
				return model.Deck{}, fmt.Errorf("deckfile: line %d: Energy: line missing a type", line)
			}
			et, ok := model.EnergyTypeFromString(fields[len(fields)-1])
			if !ok {
				return model.Deck{}, fmt.Errorf("deckfile: line %d: unknown energy type %q", line, fields[len(fields)-1])
			}
			if !seenEnergy[et] {
				seenEnergy[et] = true
				energyTypes = append(energyTypes, et)
			}
			continue
		}

		count, card, err := parseCardLine(trimmed)
		if err != nil {
			return model.Deck{}, fmt.Errorf("deckfile: line %d: %w", line, err)
		}
		for i := uint32(0); i < count; i++ {
			cards = append(cards, card)
		}
	}
	if err := scanner.Err(); err != nil {
		return model.Deck{}, fmt.Errorf("deckfile: %w", err)
	}

	if len(energyTypes) == 0 {
		energyTypes = model.DefaultEnergyTypes(cards)
	}

	return model.Deck{Cards: cards, EnergyTypes: energyTypes}, nil
}

// parseCardLine splits a line into its leading count and the card it
// resolves to, using the last two whitespace-separated tokens as the
// set code and card number.
func parseCardLine(line string) (uint32, model.Card, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, model.Card{}, fmt.Errorf("invalid card line %q", line)
	}

	count, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return 0, model.Card{}, fmt.Errorf("invalid count in %q: %w", line, err)
	}

	set := fields[len(fields)-2]
	number := fields[len(fields)-1]
	for len(number) < 3 {
		number = "0" + number
	}
	id := model.CardID(set + " " + number)

	card, ok := catalog.ByID(id)
	if !ok {
		return 0, model.Card{}, fmt.Errorf("unknown card ID %q", id)
	}
	return uint32(count), card, nil
}
