// Package catalog provides the closed enumeration of implemented cards,
// attacks, abilities, and tools, plus lookup from stable string
// identifiers to catalog records (C1). The catalog itself — the exact
// roster of printed cards — is a small reference implementation; the
// contract (stable IDs, a bijection to/from strings, the notion that an
// attack/ability/tool dispatch table is enumerable) is what matters.
package catalog

import "github.com/pocketsim/pocketsim/model"

// Pokémon card IDs. Naming mirrors the set/number convention used by
// the real game's card IDs ("A1 001").
const (
	Bulbasaur model.CardID = "A1 001"
	Ivysaur   model.CardID = "A1 002"
	Venusaur  model.CardID = "A1 003"

	Exeggcute  model.CardID = "A1 010"
	Exeggutor  model.CardID = "A1 011"

	Koffing model.CardID = "A1 020"
	Weezing model.CardID = "A1 021"

	Ekans model.CardID = "A1 023"
	Arbok model.CardID = "A1 024"

	Grimer model.CardID = "A1 025"
	Muk    model.CardID = "A1 026"

	Psyduck model.CardID = "A1 030"

	Ralts    model.CardID = "A1 040"
	Kirlia   model.CardID = "A1 041"
	Gardevoir model.CardID = "A1 042"

	Caterpie  model.CardID = "A1 005"
	Metapod   model.CardID = "A1 006"
	Butterfree model.CardID = "A1 007"

	Poliwag   model.CardID = "A1 050"
	Poliwhirl model.CardID = "A1 051"
	Poliwrath model.CardID = "A1 052"

	Druddigon model.CardID = "A1 060"

	ArceusEX model.CardID = "A1 096"

	HelixFossil model.CardID = "A1 100"
	DomeFossil  model.CardID = "A1 101"
	OldAmber    model.CardID = "A1 102"

	Growlithe model.CardID = "A1 070"
	Arcanine  model.CardID = "A1 071"

	Charmander model.CardID = "A1 072"

	Meowth model.CardID = "A1 073"

	Blitzle   model.CardID = "A1 074"
	Zebstrika model.CardID = "A1 075"

	Pikachu model.CardID = "A1 076"
	Raichu  model.CardID = "A1 077"

	HoOhEX   model.CardID = "A1 078"
	MoltresEX model.CardID = "A1 079"
)

// Trainer card IDs.
const (
	Potion              model.CardID = "PA 001"
	Erika                model.CardID = "PA 002"
	XSpeed               model.CardID = "PA 003"
	LeafA1a              model.CardID = "A1a 068"
	LeafA1aAlt           model.CardID = "A1a 082"
	PokeBall              model.CardID = "PA 004"
	RedCard               model.CardID = "PA 005"
	ProfessorsResearch    model.CardID = "PA 006"
	Giovanni              model.CardID = "PA 007"
	Sabrina               model.CardID = "PA 008"
	Cyrus                 model.CardID = "PA 009"
	Koga                  model.CardID = "PA 010"
	MythicalSlab          model.CardID = "PA 011"
	GiantCape             model.CardID = "A2 147"
	RockyHelmet           model.CardID = "A2 148"
)

// Ability IDs. Gated into two groups by §4.5.1: activatable abilities
// (dispatched from UseAbility) and passive abilities the move generator
// never surfaces as a legal action (Arbok's Corner, Psyduck's Headache,
// Arceus's conditional passive).
const (
	AbilityHealAllBurst  model.AbilityID = "heal-all-burst"  // Butterfree-type
	AbilityPoisonActive  model.AbilityID = "poison-active"   // Weezing-type
	AbilityAttachPsychic model.AbilityID = "attach-psychic"  // Gardevoir-type
	AbilityCorner        model.AbilityID = "corner"          // Arbok, passive
	AbilityHeadache      model.AbilityID = "headache"        // Psyduck, passive
	AbilityArceusPassive model.AbilityID = "arceus-passive"  // Arceus-EX, passive
)

// PassiveAbilities are never offered as a UseAbility legal action; they
// take effect structurally (turn-effect enqueueing, or a permanent
// modifier) rather than through a player decision.
var PassiveAbilities = map[model.AbilityID]bool{
	AbilityCorner:        true,
	AbilityHeadache:      true,
	AbilityArceusPassive: true,
}

// Tool IDs.
const (
	ToolGiantCape   model.ToolID = "giant-cape"
	ToolRockyHelmet model.ToolID = "rocky-helmet"
)

// Attack IDs. Some cards share an attack across multiple printings,
// hence the separate (pokemon, index) -> AttackID map rather than
// baking the ID directly into the Attack struct.
const (
	AttackVineWhip        model.AttackID = "vine-whip"
	AttackGigaDrain        model.AttackID = "giga-drain"
	AttackPoisonPowder     model.AttackID = "poison-powder"
	AttackSludge           model.AttackID = "sludge"
	AttackSmog             model.AttackID = "smog"
	AttackGlare            model.AttackID = "glare"
	AttackConfuseRay       model.AttackID = "confuse-ray"
	AttackPsychic          model.AttackID = "psychic"
	AttackDoubleSlap       model.AttackID = "double-slap"
	AttackWaterGun         model.AttackID = "water-gun"
	AttackHydroPump        model.AttackID = "hydro-pump"
	AttackDragonClaw       model.AttackID = "dragon-claw"
	AttackJudgment         model.AttackID = "judgment"
)

// CardByID resolves a stable string identifier to the full Card record.
func CardByID(id model.CardID) (model.Card, bool) {
	c, ok := registry[id]
	return c, ok
}

// MustCard resolves id or panics — used where the roster itself
// references another roster entry and a miss is an engine bug, not a
// user error.
func MustCard(id model.CardID) model.Card {
	c, ok := CardByID(id)
	if !ok {
		panic("catalog: unknown card id " + string(id))
	}
	return c
}

// CardEnumFromString parses a deck-file card id string (already
// zero-padded/normalized by the deckfile package) into a Card.
func CardEnumFromString(s string) (model.Card, bool) {
	return CardByID(model.CardID(s))
}

// attackLookup maps (pokemon id, printed attack index) to a stable
// AttackID. Several printings across sets can share the same attack
// text, hence the many-to-one shape.
var attackLookup = map[model.CardID]map[int]model.AttackID{
	Venusaur:  {1: AttackGigaDrain},
	Ivysaur:   {0: AttackVineWhip},
	Bulbasaur: {0: AttackVineWhip},
	Weezing:   {0: AttackSmog, 1: AttackSludge},
	Arbok:     {0: AttackGlare},
	Gardevoir: {0: AttackConfuseRay, 1: AttackPsychic},
	Poliwrath: {0: AttackDoubleSlap, 1: AttackHydroPump},
	Poliwhirl: {0: AttackWaterGun},
	Druddigon: {0: AttackDragonClaw},
	ArceusEX:  {0: AttackJudgment},
}

// AttackIDFrom resolves the stable AttackID for a printed attack.
func AttackIDFrom(pokemon model.CardID, index int) (model.AttackID, bool) {
	m, ok := attackLookup[pokemon]
	if !ok {
		return "", false
	}
	id, ok := m[index]
	return id, ok
}

var abilityLookup = map[model.CardID]model.AbilityID{
	Butterfree: AbilityHealAllBurst,
	Weezing:    AbilityPoisonActive,
	Gardevoir:  AbilityAttachPsychic,
	Arbok:      AbilityCorner,
	Psyduck:    AbilityHeadache,
	ArceusEX:   AbilityArceusPassive,
}

// AbilityIDFrom resolves the stable AbilityID for a Pokémon's printed ability.
func AbilityIDFrom(pokemon model.CardID) (model.AbilityID, bool) {
	id, ok := abilityLookup[pokemon]
	return id, ok
}

var toolLookup = map[model.CardID]model.ToolID{
	GiantCape:   ToolGiantCape,
	RockyHelmet: ToolRockyHelmet,
}

// ToolIDFrom resolves the stable ToolID for a Tool-kind Trainer card.
func ToolIDFrom(trainer model.Card) (model.ToolID, bool) {
	if trainer.Trainer == nil {
		return "", false
	}
	id, ok := toolLookup[trainer.Trainer.ID]
	return id, ok
}

// CounterPokemon lists the Pokémon names that deal +20 counter-attack
// damage when their Active slot is attacked, independent of any tool.
// Hard-coded per spec.md §4.3 ("hard-coded counter Pokémon").
var CounterPokemon = map[string]bool{
	"Poliwrath": true,
	"Druddigon": true,
}

// BounceablePokemon lists the Pokémon names Koga can bounce from the
// Active slot back to hand.
var BounceablePokemon = map[string]bool{
	"Weezing": true,
	"Muk":     true,
}
