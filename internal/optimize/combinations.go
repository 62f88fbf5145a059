// Package optimize implements the deck-completion and best-deck search
// machinery behind the optimize and search CLI subcommands: given an
// incomplete deck (or none at all) and a pool of candidate cards, it
// finds the completion with the best simulated win rate against a
// folder of enemy decks.
package optimize

import "github.com/pocketsim/pocketsim/model"

// GenerateCombinations enumerates every multiset of candidates that
// sums to exactly remaining cards, respecting each candidate's
// allowance (how many more copies of it the final deck may hold).
// Candidates absent from allowed default to an allowance of 2, the
// printed-card copy limit.
func GenerateCombinations(candidates []model.CardID, allowed map[model.CardID]int, remaining int) [][]model.CardID {
	var result [][]model.CardID
	var current []model.CardID
	generateCombinationsRecursive(candidates, allowed, remaining, 0, &current, &result)
	return result
}

func generateCombinationsRecursive(candidates []model.CardID, allowed map[model.CardID]int, remaining, index int, current *[]model.CardID, result *[][]model.CardID) {
	if remaining == 0 {
		combo := make([]model.CardID, len(*current))
		copy(combo, *current)
		*result = append(*result, combo)
		return
	}
	if index >= len(candidates) {
		return
	}

	candidate := candidates[index]
	max, ok := allowed[candidate]
	if !ok {
		max = 2
	}
	if max > remaining {
		max = remaining
	}

	for count := 0; count <= max; count++ {
		for i := 0; i < count; i++ {
			*current = append(*current, candidate)
		}
		generateCombinationsRecursive(candidates, allowed, remaining-count, index+1, current, result)
		*current = (*current)[:len(*current)-count]
	}
}

// CombinationCount returns how many combinations GenerateCombinations
// would produce, without building them — used to decide whether brute
// force is tractable before paying for it.
func CombinationCount(candidates []model.CardID, allowed map[model.CardID]int, remaining int) int {
	var memo = map[[2]int]int{}
	var count func(index, remaining int) int
	count = func(index, remaining int) int {
		if remaining == 0 {
			return 1
		}
		if index >= len(candidates) {
			return 0
		}
		key := [2]int{index, remaining}
		if v, ok := memo[key]; ok {
			return v
		}
		max, ok := allowed[candidates[index]]
		if !ok {
			max = 2
		}
		if max > remaining {
			max = remaining
		}
		total := 0
		for c := 0; c <= max; c++ {
			total += count(index+1, remaining-c)
		}
		memo[key] = total
		return total
	}
	return count(0, remaining)
}

// AllowanceFor builds the per-candidate allowance map for an existing
// (possibly incomplete) deck: each candidate may appear up to 2 times
// total, minus however many copies the deck already holds.
func AllowanceFor(deck model.Deck, candidates []model.CardID) map[model.CardID]int {
	counts := map[model.CardID]int{}
	for _, c := range deck.Cards {
		counts[c.ID()]++
	}
	allowed := make(map[model.CardID]int, len(candidates))
	for _, c := range candidates {
		allowance := 2 - counts[c]
		if allowance < 0 {
			allowance = 0
		}
		allowed[c] = allowance
	}
	return allowed
}
