package model

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
)

// ErrInvalidDeck is returned when a deck fails the 20-card / has-a-Basic
// validity rule.
var ErrInvalidDeck = errors.New("model: invalid deck")

// Deck is a player's 20-card deck plus the 1-3 energy types it can
// generate at turn advance.
type Deck struct {
	Cards       []Card
	EnergyTypes []EnergyType
}

// Validate enforces the deck invariant: exactly 20 cards, at least one
// Basic Pokémon.
func (d *Deck) Validate() error {
	if len(d.Cards) != 20 {
		return fmt.Errorf("%w: deck must have exactly 20 cards", ErrInvalidDeck)
	}
	for _, c := range d.Cards {
		if c.Pokemon != nil && c.Pokemon.Stage == StageBasic {
			return nil
		}
	}
	return fmt.Errorf("%w: deck must contain at least one Basic Pokémon", ErrInvalidDeck)
}

// Shuffle randomizes deck order. When initial is true, the shuffle
// guarantees a Basic Pokémon on top: partition out the Basics, pick one,
// shuffle the remainder, and prepend the chosen Basic. The deck is drawn
// from the front (index 0 is "top").
func (d *Deck) Shuffle(initial bool, rng *rand.Rand) {
	if !initial {
		rng.Shuffle(len(d.Cards), func(i, j int) {
			d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
		})
		return
	}

	var basics []Card
	var rest []Card
	for _, c := range d.Cards {
		if c.Pokemon != nil && c.Pokemon.Stage == StageBasic {
			basics = append(basics, c)
		} else {
			rest = append(rest, c)
		}
	}
	if len(basics) == 0 {
		// Caller is responsible for validating decks before play; fall
		// back to a plain shuffle rather than panicking mid-game.
		rng.Shuffle(len(d.Cards), func(i, j int) {
			d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
		})
		return
	}

	pick := rng.Intn(len(basics))
	top := basics[pick]
	basics = append(basics[:pick], basics[pick+1:]...)

	rest = append(rest, basics...)
	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	d.Cards = append(d.Cards[:0], top)
	d.Cards = append(d.Cards, rest...)
}

// DrawFront removes and returns the top card, or false if the deck is empty.
func (d *Deck) DrawFront() (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	c := d.Cards[0]
	d.Cards = d.Cards[1:]
	return c, true
}

// GenerateEnergy samples uniformly from the deck's energy type list.
// Deterministic when the list is a singleton.
func (d *Deck) GenerateEnergy(rng *rand.Rand) EnergyType {
	if len(d.EnergyTypes) == 0 {
		return Colorless
	}
	if len(d.EnergyTypes) == 1 {
		return d.EnergyTypes[0]
	}
	return d.EnergyTypes[rng.Intn(len(d.EnergyTypes))]
}

// Clone returns a deep copy, safe to mutate independently.
func (d *Deck) Clone() Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	energies := make([]EnergyType, len(d.EnergyTypes))
	copy(energies, d.EnergyTypes)
	return Deck{Cards: cards, EnergyTypes: energies}
}

// Hash returns a canonical hash over sorted card IDs and sorted energy
// types, stable across equivalent decks regardless of input order. Used
// by the deck optimizer to memoize simulation results across completions
// that happen to coincide.
func (d *Deck) Hash() uint64 {
	ids := make([]string, len(d.Cards))
	for i, c := range d.Cards {
		ids[i] = string(c.ID())
	}
	sort.Strings(ids)

	energies := make([]EnergyType, len(d.EnergyTypes))
	copy(energies, d.EnergyTypes)
	sort.Slice(energies, func(i, j int) bool { return energies[i] < energies[j] })

	h := fnv.New64a()
	for _, id := range ids {
		h.Write([]byte(id))
		h.Write([]byte{0})
	}
	for _, e := range energies {
		h.Write([]byte{byte(e)})
	}
	return h.Sum64()
}

// DefaultEnergyTypes returns the union of all Pokémon card energy types
// in the deck, used when a deck file has no explicit "Energy:" line.
func DefaultEnergyTypes(cards []Card) []EnergyType {
	seen := map[EnergyType]bool{}
	var out []EnergyType
	for _, c := range cards {
		if c.Pokemon == nil {
			continue
		}
		t := c.Pokemon.EnergyType
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
