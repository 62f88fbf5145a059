package optimize

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pocketsim/pocketsim/driver"
	"github.com/pocketsim/pocketsim/model"
)

// maxBruteForceCombinations bounds when Run enumerates every
// completion outright versus falling back to the genetic search —
// above this the combinatorial blowup makes brute force impractical.
const maxBruteForceCombinations = 5000

// CandidateResult is one evaluated deck completion.
type CandidateResult struct {
	Completion []model.CardID
	WinRate    float64
}

// Result is everything a caller needs to report an optimize/search run.
type Result struct {
	Best        CandidateResult
	Evaluated   []CandidateResult
	UsedGenetic bool
}

// Run completes incomplete with combinations of candidates (each
// capped at 2 total copies per card) and returns the completion with
// the best simulated win rate against enemyDecks. Enumerates every
// valid combination when the space is small; otherwise searches it
// with a genetic algorithm (see runGenetic in ga.go).
func Run(ctx context.Context, incomplete model.Deck, candidates []model.CardID, enemyDecks []model.Deck, num int, agents [2]driver.Agent, seed *uint64) (Result, error) {
	remaining := 20 - len(incomplete.Cards)
	if remaining <= 0 {
		rate := winRate(incomplete, enemyDecks, num, agents, seed)
		return Result{Best: CandidateResult{WinRate: rate}}, nil
	}

	allowed := AllowanceFor(incomplete, candidates)
	if CombinationCount(candidates, allowed, remaining) <= maxBruteForceCombinations {
		return runBruteForce(ctx, incomplete, candidates, allowed, remaining, enemyDecks, num, agents, seed)
	}
	return runGenetic(ctx, incomplete, candidates, enemyDecks, num, agents, seed)
}

func runBruteForce(ctx context.Context, incomplete model.Deck, candidates []model.CardID, allowed map[model.CardID]int, remaining int, enemyDecks []model.Deck, num int, agents [2]driver.Agent, seed *uint64) (Result, error) {
	combinations := GenerateCombinations(candidates, allowed, remaining)

	results := make([]CandidateResult, len(combinations))
	seen := newMemoize()
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelism())

	for i, combo := range combinations {
		i, combo := i, combo
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			deck, err := completeDeck(incomplete, combo)
			if err != nil {
				return err
			}
			if err := deck.Validate(); err != nil {
				results[i] = CandidateResult{Completion: combo, WinRate: -1}
				return nil
			}
			if rate, ok := seen.get(deck); ok {
				results[i] = CandidateResult{Completion: combo, WinRate: rate}
				return nil
			}
			rate := winRate(deck, enemyDecks, num, agents, seed)
			seen.put(deck, rate)
			results[i] = CandidateResult{Completion: combo, WinRate: rate}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	best := bestOf(results)
	return Result{Best: best, Evaluated: results}, nil
}

func bestOf(results []CandidateResult) CandidateResult {
	best := CandidateResult{WinRate: -1}
	for _, r := range results {
		if r.WinRate > best.WinRate {
			best = r
		}
	}
	return best
}

func maxParallelism() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}

// memoize caches win rates by completed-deck hash so combinations that
// happen to collide (same multiset, different candidate ordering)
// aren't resimulated.
type memoize struct {
	mu    sync.Mutex
	cache map[uint64]float64
}

func newMemoize() *memoize {
	return &memoize{cache: map[uint64]float64{}}
}

func (m *memoize) get(deck model.Deck) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rate, ok := m.cache[deck.Hash()]
	return rate, ok
}

func (m *memoize) put(deck model.Deck, rate float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[deck.Hash()] = rate
}

// SortedDescending returns a copy of results ordered best win rate first,
// for reporting runners-up alongside the overall best completion.
func SortedDescending(results []CandidateResult) []CandidateResult {
	out := make([]CandidateResult, len(results))
	copy(out, results)
	sort.Slice(out, func(i, j int) bool { return out[i].WinRate > out[j].WinRate })
	return out
}
