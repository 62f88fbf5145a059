package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pocketsim/pocketsim/catalog"
	"github.com/pocketsim/pocketsim/deckfile"
	"github.com/pocketsim/pocketsim/internal/optimize"
	"github.com/pocketsim/pocketsim/model"
)

func optimizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "optimize",
		Usage:     "complete an incomplete deck with the best-performing candidate cards",
		ArgsUsage: "<incomplete-deck> <candidates> <enemy-folder>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "players", Value: "R,R", Usage: "player codes, e.g. AA,M"},
			&cli.IntFlag{Name: "num", Value: 10, Usage: "games simulated per (completion, enemy deck) pair"},
			&cli.StringFlag{Name: "seed", Usage: "RNG seed (decimal); omit for a random seed"},
			&cli.IntFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "increase log verbosity (repeatable)"},
		},
		Action: runOptimize,
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "search for the single best 20-card deck from a candidate pool",
		ArgsUsage: "<candidates> <enemy-folder>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "players", Value: "R,R", Usage: "player codes, e.g. AA,M"},
			&cli.IntFlag{Name: "num", Value: 10, Usage: "games simulated per (deck, enemy deck) pair"},
			&cli.StringFlag{Name: "seed", Usage: "RNG seed (decimal); omit for a random seed"},
			&cli.IntFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "increase log verbosity (repeatable)"},
		},
		Action: runSearch,
	}
}

func runOptimize(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 3 {
		return fmt.Errorf("optimize: expected <incomplete-deck> <candidates> <enemy-folder> arguments")
	}
	incompletePath := cmd.Args().Get(0)
	candidatesRaw := cmd.Args().Get(1)
	enemyFolder := cmd.Args().Get(2)

	log := newLogger(int(cmd.Int("verbose")))
	defer log.Sync()

	incomplete, err := deckfile.Load(incompletePath)
	if err != nil {
		return err
	}

	candidates, err := parseCandidateList(candidatesRaw)
	if err != nil {
		return err
	}

	enemyDecks, err := loadEnemyDecks(enemyFolder, log)
	if err != nil {
		return err
	}
	if len(enemyDecks) == 0 {
		return fmt.Errorf("optimize: no valid enemy decks found in %s", enemyFolder)
	}

	codes, err := parsePlayerCodes(cmd.String("players"))
	if err != nil {
		return err
	}
	agents, err := buildAgents(codes, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	seed, err := parseSeedFlag(cmd.String("seed"))
	if err != nil {
		return err
	}
	num := int(cmd.Int("num"))
	if num < 1 {
		num = 1
	}

	remaining := 20 - len(incomplete.Cards)
	if remaining <= 0 {
		return fmt.Errorf("optimize: deck already has %d cards, nothing to complete", len(incomplete.Cards))
	}
	allowed := optimize.AllowanceFor(incomplete, candidates)
	combinationCount := optimize.CombinationCount(candidates, allowed, remaining)
	estimate := optimize.EstimateTotal(codes, combinationCount, len(enemyDecks), num)
	log.Infow("starting optimize run", "combinations", combinationCount, "enemy_decks", len(enemyDecks), "estimate", estimate.String())

	result, err := optimize.Run(ctx, incomplete, candidates, enemyDecks, num, agents, seed)
	if err != nil {
		return err
	}

	fmt.Println(renderOptimizeReport(result, combinationCount, len(enemyDecks), num, estimate.String()))
	return nil
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("search: expected <candidates> <enemy-folder> arguments")
	}
	candidatesRaw := cmd.Args().Get(0)
	enemyFolder := cmd.Args().Get(1)

	log := newLogger(int(cmd.Int("verbose")))
	defer log.Sync()

	candidates, err := parseCandidateList(candidatesRaw)
	if err != nil {
		return err
	}

	enemyDecks, err := loadEnemyDecks(enemyFolder, log)
	if err != nil {
		return err
	}
	if len(enemyDecks) == 0 {
		return fmt.Errorf("search: no valid enemy decks found in %s", enemyFolder)
	}

	codes, err := parsePlayerCodes(cmd.String("players"))
	if err != nil {
		return err
	}
	agents, err := buildAgents(codes, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	seed, err := parseSeedFlag(cmd.String("seed"))
	if err != nil {
		return err
	}
	num := int(cmd.Int("num"))
	if num < 1 {
		num = 1
	}

	allowed := optimize.AllowanceFor(model.Deck{}, candidates)
	combinationCount := optimize.CombinationCount(candidates, allowed, 20)
	estimate := optimize.EstimateTotal(codes, combinationCount, len(enemyDecks), num)
	log.Infow("starting search run", "combinations", combinationCount, "enemy_decks", len(enemyDecks), "estimate", estimate.String())

	result, err := optimize.SearchBestDeck(ctx, candidates, enemyDecks, num, agents, seed)
	if err != nil {
		return err
	}

	fmt.Println(renderOptimizeReport(result, combinationCount, len(enemyDecks), num, estimate.String()))
	return nil
}

// parseCandidateList splits "SET###,SET###,..." into CardIDs, taking the
// last three characters of each entry as the number and the rest as the
// set code. Numbers are not zero-padded, so each must already be written
// with three digits.
func parseCandidateList(raw string) ([]model.CardID, error) {
	var out []model.CardID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if len(part) < 3 {
			return nil, fmt.Errorf("invalid candidate card id %q", part)
		}
		number := part[len(part)-3:]
		prefix := strings.TrimSpace(part[:len(part)-3])
		id := model.CardID(prefix + " " + number)
		if _, ok := catalog.ByID(id); !ok {
			return nil, fmt.Errorf("unknown candidate card id %q", id)
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no candidate cards given")
	}
	return out, nil
}
