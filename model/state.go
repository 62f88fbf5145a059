package model

import "math/rand"

// Outcome records who won (or that the game tied).
type Outcome struct {
	IsTie bool
	Winner int // meaningful only when !IsTie
}

// State is the authoritative, hashable game state: everything reachable
// during play for both players.
type State struct {
	Winner     *Outcome
	Points     [2]uint8
	TurnCount  uint8
	CurrentPlayer int

	MoveGenerationStack []StackFrame

	CurrentEnergy *EnergyType

	Hands         [2][]Card
	Decks         [2]Deck
	DiscardPiles  [2][]Card
	InPlay        [2][4]*PlayedCard // slot 0 = Active, 1-3 = Bench

	HasPlayedSupport bool
	HasRetreated     bool

	// TurnEffects maps a future turn number to the cards whose effects
	// apply during that turn (X-Speed, Leaf, Giovanni, Arbok's Corner,
	// Psyduck's Headache). See hooks.AdvanceTurnEffects.
	TurnEffects map[uint8][]Card
}

// NewState builds an empty State from the two decks, pre-shuffle.
func NewState(deckA, deckB Deck) *State {
	return &State{
		Points:       [2]uint8{0, 0},
		CurrentPlayer: 0,
		Decks:        [2]Deck{deckA.Clone(), deckB.Clone()},
		TurnEffects:  map[uint8][]Card{},
	}
}

// Initialize shuffles both decks with the initial-placement constraint,
// draws five cards each, and coin-flips the starting player.
func Initialize(deckA, deckB Deck, rng *rand.Rand) *State {
	s := NewState(deckA, deckB)
	for i := range s.Decks {
		s.Decks[i].Shuffle(true, rng)
	}
	for i := 0; i < 5; i++ {
		s.MaybeDrawCard(0)
		s.MaybeDrawCard(1)
	}
	s.CurrentPlayer = rng.Intn(2)
	return s
}

// MaybeDrawCard draws the front card of player p's deck into their
// hand, or no-ops if the deck is empty.
func (s *State) MaybeDrawCard(p int) {
	if c, ok := s.Decks[p].DrawFront(); ok {
		s.Hands[p] = append(s.Hands[p], c)
	}
}

// Active returns player p's Active Pokémon, or nil if the slot is empty.
func (s *State) Active(p int) *PlayedCard { return s.InPlay[p][0] }

// Opponent returns the other player's index.
func Opponent(p int) int { return 1 - p }

// EnumerateBench yields the occupied bench slot indices (1-3) for player p.
func (s *State) EnumerateBench(p int) []int {
	var out []int
	for i := 1; i < 4; i++ {
		if s.InPlay[p][i] != nil {
			out = append(out, i)
		}
	}
	return out
}

// EnumerateEmptySlots yields empty slot indices (0-3) for player p.
func (s *State) EnumerateEmptySlots(p int) []int {
	var out []int
	for i := 0; i < 4; i++ {
		if s.InPlay[p][i] == nil {
			out = append(out, i)
		}
	}
	return out
}

// EnumerateInPlay yields every occupied slot index (0-3) for player p,
// including the Active slot. Status conditions can linger on a
// benched Pokémon (a retreat only clears status on the newly-promoted
// Pokémon), so checkup must scan all of these, not just Active.
func (s *State) EnumerateInPlay(p int) []int {
	var out []int
	for i := 0; i < 4; i++ {
		if s.InPlay[p][i] != nil {
			out = append(out, i)
		}
	}
	return out
}

// RemoveCardFromHand removes the first card matching c by ID. Panics if
// absent: callers only remove cards whose presence a legal action
// already established.
func (s *State) RemoveCardFromHand(p int, c Card) {
	for i, h := range s.Hands[p] {
		if h.Equal(c) {
			last := len(s.Hands[p]) - 1
			s.Hands[p][i] = s.Hands[p][last]
			s.Hands[p] = s.Hands[p][:last]
			return
		}
	}
	panic("model: card not found in hand: " + string(c.ID()))
}

// DiscardCardFromHand removes a card from hand and appends it to the
// discard pile in one step.
func (s *State) DiscardCardFromHand(p int, c Card) {
	s.RemoveCardFromHand(p, c)
	s.DiscardPiles[p] = append(s.DiscardPiles[p], c)
}

// QueueDrawAction pushes a forced DrawCard addressed to actor, used at
// the start of every turn (for turn 1, when the setup phase ends).
func (s *State) QueueDrawAction(actor int) {
	s.PushStack(actor, []SimpleAction{{Kind: KindDrawCard}})
}

// AdvanceTurn flips the current player, increments the turn counter,
// resets once-per-turn flags, queues the mandatory draw, and generates
// the new current player's energy for the turn. Only valid from
// turn_count >= 1; the initial setup phase advances players without a
// turn count or energy generation (see forecast's end-turn handling).
func (s *State) AdvanceTurn(rng *rand.Rand) {
	s.CurrentPlayer = Opponent(s.CurrentPlayer)
	s.TurnCount++
	s.ResetTurnStates()
	s.QueueDrawAction(s.CurrentPlayer)
	e := s.Decks[s.CurrentPlayer].GenerateEnergy(rng)
	s.CurrentEnergy = &e
}

// ResetTurnStates clears the once-per-turn flags for every in-play
// Pokémon on both sides (played_this_turn and ability_used persist only
// for the turn they were set), plus the per-turn support/retreat gates.
// Called from AdvanceTurn; kept as its own method since the end of the
// setup phase needs it without a full turn advance.
func (s *State) ResetTurnStates() {
	for p := 0; p < 2; p++ {
		for i := range s.InPlay[p] {
			if pc := s.InPlay[p][i]; pc != nil {
				pc.PlayedThisTurn = false
				pc.AbilityUsed = false
			}
		}
	}
	s.HasPlayedSupport = false
	s.HasRetreated = false
}

// CurrentTurnEffects returns the cards whose effects apply this turn.
func (s *State) CurrentTurnEffects() []Card {
	return s.TurnEffects[s.TurnCount]
}

// AddTurnEffect enqueues a card's effect for a specific future turn.
func (s *State) AddTurnEffect(turn uint8, c Card) {
	s.TurnEffects[turn] = append(s.TurnEffects[turn], c)
}

// PushStack pushes a forced sub-decision addressed to actor.
func (s *State) PushStack(actor int, actions []SimpleAction) {
	s.MoveGenerationStack = append(s.MoveGenerationStack, StackFrame{Actor: actor, Actions: actions})
}

// PopStack removes and returns the top stack frame. Panics if empty —
// callers only pop after confirming IsStack, an internal invariant.
func (s *State) PopStack() StackFrame {
	n := len(s.MoveGenerationStack)
	if n == 0 {
		panic("model: PopStack on empty move generation stack")
	}
	frame := s.MoveGenerationStack[n-1]
	s.MoveGenerationStack = s.MoveGenerationStack[:n-1]
	return frame
}

// Clone performs a deep copy, used by forecasting and MCTS expansion.
// Cheap enough to be routine: cloning is explicit, never implicit.
func (s *State) Clone() *State {
	clone := &State{
		Points:           s.Points,
		TurnCount:        s.TurnCount,
		CurrentPlayer:    s.CurrentPlayer,
		HasPlayedSupport: s.HasPlayedSupport,
		HasRetreated:     s.HasRetreated,
	}
	if s.Winner != nil {
		w := *s.Winner
		clone.Winner = &w
	}
	if s.CurrentEnergy != nil {
		e := *s.CurrentEnergy
		clone.CurrentEnergy = &e
	}

	clone.MoveGenerationStack = make([]StackFrame, len(s.MoveGenerationStack))
	for i, f := range s.MoveGenerationStack {
		actions := make([]SimpleAction, len(f.Actions))
		copy(actions, f.Actions)
		clone.MoveGenerationStack[i] = StackFrame{Actor: f.Actor, Actions: actions}
	}

	for p := 0; p < 2; p++ {
		clone.Hands[p] = append([]Card(nil), s.Hands[p]...)
		clone.Decks[p] = s.Decks[p].Clone()
		clone.DiscardPiles[p] = append([]Card(nil), s.DiscardPiles[p]...)
		for i := 0; i < 4; i++ {
			if s.InPlay[p][i] != nil {
				pc := *s.InPlay[p][i]
				pc.AttachedEnergy = append([]EnergyType(nil), s.InPlay[p][i].AttachedEnergy...)
				pc.CardsBehind = append([]Card(nil), s.InPlay[p][i].CardsBehind...)
				clone.InPlay[p][i] = &pc
			}
		}
	}

	clone.TurnEffects = make(map[uint8][]Card, len(s.TurnEffects))
	for k, v := range s.TurnEffects {
		clone.TurnEffects[k] = append([]Card(nil), v...)
	}

	return clone
}

// CardConservationCount returns, for player p, the total number of
// cards reachable across deck, hand, discard, and in-play (including
// evolution chains). Used by tests to verify this total never drifts
// across a game.
func (s *State) CardConservationCount(p int) int {
	n := len(s.Decks[p].Cards) + len(s.Hands[p]) + len(s.DiscardPiles[p])
	for _, pc := range s.InPlay[p] {
		if pc != nil {
			n += 1 + len(pc.CardsBehind)
		}
	}
	return n
}
