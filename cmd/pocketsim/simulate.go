package main

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/pocketsim/pocketsim/deckfile"
	"github.com/pocketsim/pocketsim/driver"
	"github.com/pocketsim/pocketsim/model"
)

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:      "simulate",
		Usage:     "play N games between two decks and report win rates",
		ArgsUsage: "<deckA> <deckB>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "players", Value: "R,R", Usage: "player codes, e.g. AA,M"},
			&cli.IntFlag{Name: "num", Value: 1, Usage: "number of games to simulate"},
			&cli.StringFlag{Name: "seed", Usage: "RNG seed (decimal); omit for a random seed"},
			&cli.IntFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "increase log verbosity (repeatable)"},
		},
		Action: runSimulate,
	}
}

func runSimulate(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("simulate: expected <deckA> <deckB> arguments")
	}
	deckAPath := cmd.Args().Get(0)
	deckBPath := cmd.Args().Get(1)

	log := newLogger(int(cmd.Int("verbose")))
	defer log.Sync()

	codes, err := parsePlayerCodes(cmd.String("players"))
	if err != nil {
		return err
	}
	agents, err := buildAgents(codes, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	deckA, err := deckfile.Load(deckAPath)
	if err != nil {
		return err
	}
	if err := deckA.Validate(); err != nil {
		return fmt.Errorf("deck A: %w", err)
	}
	deckB, err := deckfile.Load(deckBPath)
	if err != nil {
		return err
	}
	if err := deckB.Validate(); err != nil {
		return fmt.Errorf("deck B: %w", err)
	}

	seed, err := parseSeedFlag(cmd.String("seed"))
	if err != nil {
		return err
	}
	num := cmd.Int("num")
	if num < 1 {
		num = 1
	}

	bar := progressbar.NewOptions(int(num),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("games"),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
	)

	summary := newSimulateSummary()
	for i := int64(0); i < num; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rng := seedRNG(offsetSeed(seed, i))
		state := model.Initialize(deckA.Clone(), deckB.Clone(), rng)
		game := driver.NewGame(agents[0], agents[1])
		game.Logger = log
		result := game.Play(rng, state)

		kinds := make([]model.ActionKind, len(result.Plies))
		for j, p := range result.Plies {
			kinds[j] = p.Kind
		}
		summary.add(result.Outcome, result.TurnCount, kinds)
		bar.Add(1)
	}

	fmt.Println(summary.render(deckAPath, deckBPath, codes))
	return nil
}

func parseSeedFlag(raw string) (*uint64, error) {
	if raw == "" {
		return nil, nil
	}
	var seed uint64
	if _, err := fmt.Sscanf(raw, "%d", &seed); err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", raw, err)
	}
	return &seed, nil
}

func offsetSeed(seed *uint64, i int64) *uint64 {
	if seed == nil {
		return nil
	}
	offset := *seed + uint64(i)
	return &offset
}
