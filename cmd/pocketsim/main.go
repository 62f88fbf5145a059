// Command pocketsim is the CLI front end over the simulator: simulate
// plays two decks against each other and reports win rates; optimize
// completes a partial deck with the best candidate cards; search finds
// the best full deck from a candidate pool.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "pocketsim",
		Usage: "deterministic Pokémon TCG Pocket-style game simulator",
		Commands: []*cli.Command{
			simulateCommand(),
			optimizeCommand(),
			searchCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "pocketsim: %v\n", err)
		os.Exit(1)
	}
}
