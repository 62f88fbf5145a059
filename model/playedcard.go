package model

// PlayedCard is a card instance on the mat: the mutable counterpart to
// the immutable Card record.
type PlayedCard struct {
	Card            Card
	RemainingHP     uint32
	TotalHP         uint32
	AttachedEnergy  []EnergyType
	AttachedTool    ToolID
	PlayedThisTurn  bool
	AbilityUsed     bool
	Poisoned        bool
	Paralyzed       bool
	Asleep          bool
	CardsBehind     []Card // evolution chain beneath this card, oldest first
}

// IsDamaged reports whether this Pokémon has taken any damage.
func (p *PlayedCard) IsDamaged() bool { return p.RemainingHP < p.TotalHP }

// Heal restores HP, clamped at TotalHP.
func (p *PlayedCard) Heal(n uint32) {
	p.RemainingHP += n
	if p.RemainingHP > p.TotalHP {
		p.RemainingHP = p.TotalHP
	}
}

// ApplyDamage reduces HP, saturating at 0.
func (p *PlayedCard) ApplyDamage(n uint32) {
	if n >= p.RemainingHP {
		p.RemainingHP = 0
		return
	}
	p.RemainingHP -= n
}

// AttachEnergy appends n copies of the given energy type.
func (p *PlayedCard) AttachEnergy(t EnergyType, n int) {
	for i := 0; i < n; i++ {
		p.AttachedEnergy = append(p.AttachedEnergy, t)
	}
}

// DiscardEnergy removes one attached energy of the given type, in
// unspecified order (swap-remove; order of attached energy is never
// observable by the engine).
func (p *PlayedCard) DiscardEnergy(t EnergyType) bool {
	for i, e := range p.AttachedEnergy {
		if e == t {
			last := len(p.AttachedEnergy) - 1
			p.AttachedEnergy[i] = p.AttachedEnergy[last]
			p.AttachedEnergy = p.AttachedEnergy[:last]
			return true
		}
	}
	return false
}

// DiscardEnergyCount removes up to n attached energy entries, in
// whatever order they happen to sit in; the player never chooses which
// energy a retreat discards.
func (p *PlayedCard) DiscardEnergyCount(n int) {
	if n > len(p.AttachedEnergy) {
		n = len(p.AttachedEnergy)
	}
	p.AttachedEnergy = p.AttachedEnergy[:len(p.AttachedEnergy)-n]
}

// ClearStatus resets all status conditions, as happens on retreat or
// forced promotion.
func (p *PlayedCard) ClearStatus() {
	p.Poisoned = false
	p.Paralyzed = false
	p.Asleep = false
}

// ToPlayableCard creates a fresh PlayedCard from an immutable Card
// record. Pokémon cards use their printed HP; the Fossil-style Trainer
// cards playable directly into a Pokémon slot use 40 HP (the names in
// PlayableTrainerNames below).
func ToPlayableCard(card Card, playedThisTurn bool) PlayedCard {
	var totalHP uint32
	switch {
	case card.Pokemon != nil:
		totalHP = card.Pokemon.HP
	case IsPlayableTrainer(card):
		totalHP = 40
	default:
		panic("model: unplayable trainer card: " + card.Name())
	}
	return PlayedCard{
		Card:           card,
		RemainingHP:    totalHP,
		TotalHP:        totalHP,
		PlayedThisTurn: playedThisTurn,
	}
}

// PlayableTrainerNames lists Trainer cards that are played into a
// Pokémon slot rather than used as a one-shot effect (fossil cards).
var PlayableTrainerNames = map[string]bool{
	"Helix Fossil": true,
	"Dome Fossil":  true,
	"Old Amber":    true,
}

// IsPlayableTrainer reports whether a Trainer card is one of the
// Fossil-style cards playable into a Pokémon slot.
func IsPlayableTrainer(card Card) bool {
	return card.Trainer != nil && PlayableTrainerNames[card.Trainer.Name]
}
