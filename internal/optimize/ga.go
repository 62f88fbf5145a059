package optimize

import (
	"context"
	"math/rand"

	"github.com/MaxHalford/eaopt"

	"github.com/pocketsim/pocketsim/driver"
	"github.com/pocketsim/pocketsim/model"
)

const (
	gaPopulationSize = 24
	gaGenerations    = 30
)

// completionGenome is one candidate deck completion: a fixed-length
// slice of candidate card IDs filling the slots the incomplete deck is
// missing. It implements eaopt.Genome.
type completionGenome struct {
	genes      []model.CardID
	candidates []model.CardID
	base       model.Deck
	enemyDecks []model.Deck
	num        int
	agents     [2]driver.Agent
	seed       *uint64
	seen       *memoize
}

func newCompletionGenome(rng *rand.Rand, candidates []model.CardID, remaining int, shared *completionGenome) *completionGenome {
	genes := make([]model.CardID, remaining)
	for i := range genes {
		genes[i] = candidates[rng.Intn(len(candidates))]
	}
	return &completionGenome{
		genes:      genes,
		candidates: candidates,
		base:       shared.base,
		enemyDecks: shared.enemyDecks,
		num:        shared.num,
		agents:     shared.agents,
		seed:       shared.seed,
		seen:       shared.seen,
	}
}

// Evaluate scores the completion as the negative win rate, since
// eaopt.GA.Minimize is written in terms of minimization.
func (g *completionGenome) Evaluate() (float64, error) {
	deck, err := completeDeck(g.base, g.genes)
	if err != nil {
		return 0, err
	}
	if err := deck.Validate(); err != nil {
		// An invalid completion (e.g. too many copies of one card once
		// combined with the base deck) is simply a bad genome, not a
		// fatal error - push it to the bottom of the population.
		return 1, nil
	}
	if rate, ok := g.seen.get(deck); ok {
		return -rate, nil
	}
	rate := winRate(deck, g.enemyDecks, g.num, g.agents, g.seed)
	g.seen.put(deck, rate)
	return -rate, nil
}

// Mutate replaces one random gene with a randomly chosen candidate,
// which may be the one already there.
func (g *completionGenome) Mutate(rng *rand.Rand) {
	if len(g.genes) == 0 {
		return
	}
	pos := rng.Intn(len(g.genes))
	g.genes[pos] = g.candidates[rng.Intn(len(g.candidates))]
}

// Crossover performs uniform crossover against another completionGenome.
func (g *completionGenome) Crossover(other eaopt.Genome, rng *rand.Rand) {
	mate, ok := other.(*completionGenome)
	if !ok || len(mate.genes) != len(g.genes) {
		return
	}
	for i := range g.genes {
		if rng.Intn(2) == 0 {
			g.genes[i] = mate.genes[i]
		}
	}
}

func (g *completionGenome) Clone() eaopt.Genome {
	genes := make([]model.CardID, len(g.genes))
	copy(genes, g.genes)
	clone := *g
	clone.genes = genes
	return &clone
}

// runGenetic searches the completion space with a genetic algorithm
// when brute-force enumeration would be too large, reusing the same
// fitness evaluation (and memoization cache) as the brute-force path.
func runGenetic(ctx context.Context, incomplete model.Deck, candidates []model.CardID, enemyDecks []model.Deck, num int, agents [2]driver.Agent, seed *uint64) (Result, error) {
	remaining := 20 - len(incomplete.Cards)

	shared := &completionGenome{
		base:       incomplete,
		enemyDecks: enemyDecks,
		num:        num,
		agents:     agents,
		seed:       seed,
		seen:       newMemoize(),
	}

	gaConfig := eaopt.GAConfig{
		NPops:        1,
		PopSize:      gaPopulationSize,
		NGenerations: gaGenerations,
		HofSize:      1,
		Model: eaopt.ModGenerational{
			Selector:  eaopt.SelTournament{NContestants: 3},
			MutRate:   0.5,
			CrossRate: 0.7,
		},
		EarlyStop: func(*eaopt.GA) bool {
			return ctx.Err() != nil
		},
	}
	if seed != nil {
		gaConfig.RNG = rand.New(rand.NewSource(int64(*seed)))
	}

	ga, err := gaConfig.NewGA()
	if err != nil {
		return Result{}, err
	}

	factory := func(rng *rand.Rand) eaopt.Genome {
		return newCompletionGenome(rng, candidates, remaining, shared)
	}

	if err := ga.Minimize(factory); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	best := ga.HallOfFame[0].Genome.(*completionGenome)
	bestResult := CandidateResult{Completion: append([]model.CardID(nil), best.genes...), WinRate: -ga.HallOfFame[0].Fitness}

	evaluated := make([]CandidateResult, 0, len(ga.HallOfFame))
	for _, indi := range ga.HallOfFame {
		g := indi.Genome.(*completionGenome)
		evaluated = append(evaluated, CandidateResult{Completion: append([]model.CardID(nil), g.genes...), WinRate: -indi.Fitness})
	}

	return Result{Best: bestResult, Evaluated: evaluated, UsedGenetic: true}, nil
}
