package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pocketsim/pocketsim/internal/optimize"
	"github.com/pocketsim/pocketsim/model"
)

var (
	reportBorderColor = lipgloss.Color("#06B6D4")
	reportHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	reportPanelStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(reportBorderColor).
				Padding(1, 2)
)

// simulateSummary aggregates Results across a batch of played games.
type simulateSummary struct {
	Games     int
	WinsA     int
	WinsB     int
	Ties      int
	TurnTotal int
	Kinds     map[model.ActionKind]int
}

func newSimulateSummary() *simulateSummary {
	return &simulateSummary{Kinds: map[model.ActionKind]int{}}
}

func (s *simulateSummary) add(outcome *model.Outcome, turnCount uint8, kinds []model.ActionKind) {
	s.Games++
	s.TurnTotal += int(turnCount)
	switch {
	case outcome == nil:
		// turn-cap stall with no winner; counted only in Games/Turns.
	case outcome.IsTie:
		s.Ties++
	case outcome.Winner == 0:
		s.WinsA++
	case outcome.Winner == 1:
		s.WinsB++
	}
	for _, k := range kinds {
		s.Kinds[k]++
	}
}

func (s *simulateSummary) render(deckAName, deckBName string, players [2]string) string {
	var b strings.Builder
	fmt.Fprintln(&b, reportHeaderStyle.Render(fmt.Sprintf("%s (%s) vs %s (%s)", deckAName, players[0], deckBName, players[1])))

	if s.Games == 0 {
		return reportPanelStyle.Render(b.String() + "no games played")
	}

	winPctA := 100 * float64(s.WinsA) / float64(s.Games)
	winPctB := 100 * float64(s.WinsB) / float64(s.Games)
	tiePct := 100 * float64(s.Ties) / float64(s.Games)
	avgTurns := float64(s.TurnTotal) / float64(s.Games)

	fmt.Fprintf(&b, "games: %d\n", s.Games)
	fmt.Fprintf(&b, "  %s wins: %.1f%%\n", deckAName, winPctA)
	fmt.Fprintf(&b, "  %s wins: %.1f%%\n", deckBName, winPctB)
	fmt.Fprintf(&b, "  ties:    %.1f%%\n", tiePct)
	fmt.Fprintf(&b, "avg turns per game: %.1f\n", avgTurns)

	fmt.Fprintln(&b, "action mix:")
	for kind, count := range s.Kinds {
		fmt.Fprintf(&b, "  %-12s %d\n", kind, count)
	}

	return reportPanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderOptimizeReport formats a completed optimize/search Result plus
// the pre-run cost estimate into one lipgloss panel.
func renderOptimizeReport(result optimize.Result, combinations, enemyDecks, gamesPerDeck int, estimate string) string {
	var b strings.Builder
	fmt.Fprintln(&b, reportHeaderStyle.Render("deck optimization"))
	fmt.Fprintf(&b, "combinations: %d, enemy decks: %d, games/deck: %d\n", combinations, enemyDecks, gamesPerDeck)
	fmt.Fprintf(&b, "estimated time: %s\n", estimate)
	if result.UsedGenetic {
		fmt.Fprintln(&b, "search strategy: genetic algorithm (combination space too large for brute force)")
	} else {
		fmt.Fprintln(&b, "search strategy: brute-force enumeration")
	}
	fmt.Fprintf(&b, "best win rate: %.1f%%\n", 100*result.Best.WinRate)
	fmt.Fprintln(&b, "best completion:")
	for _, id := range result.Best.Completion {
		fmt.Fprintf(&b, "  %s\n", id)
	}

	ranked := optimize.SortedDescending(result.Evaluated)
	if len(ranked) > 1 {
		fmt.Fprintln(&b, "runners-up:")
		for _, r := range ranked[1:min(4, len(ranked))] {
			fmt.Fprintf(&b, "  %.1f%%  %v\n", 100*r.WinRate, r.Completion)
		}
	}

	return reportPanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
