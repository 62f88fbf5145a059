package agent

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pocketsim/pocketsim/model"
)

// Interactive prompts a human for a choice among the legal actions
// over an arbitrary reader/writer pair, so it's testable without a
// real terminal. Never wired as a CLI default agent — it exists for
// the same reason the CLI itself does: a human collaborator, not a UI
// layer.
type Interactive struct {
	In  io.Reader
	Out io.Writer
}

func (h Interactive) Decide(_ *rand.Rand, state *model.State, _ int, actions []model.Action) model.Action {
	if len(actions) == 1 {
		fmt.Fprintln(h.Out, "Only one possible action, selecting it.")
		return actions[0]
	}

	fmt.Fprintf(h.Out, "=== turn %d | points %v\n\n", state.TurnCount, state.Points)
	fmt.Fprintln(h.Out, "Select an action:")
	for i, a := range actions {
		fmt.Fprintf(h.Out, "%d: %s\n", i+1, describe(a.Inner))
	}

	scanner := bufio.NewScanner(h.In)
	for scanner.Scan() {
		index, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || index < 1 || index > len(actions) {
			fmt.Fprintln(h.Out, "Invalid input, try again.")
			continue
		}
		return actions[index-1]
	}
	panic("agent: interactive input exhausted without a valid choice")
}

func describe(a model.SimpleAction) string {
	switch a.Kind {
	case model.KindPlace:
		return "Place " + a.Card.Name()
	case model.KindEvolve:
		return "Evolve into " + a.Card.Name()
	case model.KindPlay:
		return "Play " + a.Trainer.Name()
	case model.KindAttack:
		return fmt.Sprintf("Attack #%d", a.AttackIndex)
	case model.KindRetreat:
		return fmt.Sprintf("Retreat to slot %d", a.Slot)
	case model.KindUseAbility:
		return fmt.Sprintf("Use ability at slot %d", a.Slot)
	case model.KindEndTurn:
		return "End turn"
	default:
		return fmt.Sprintf("%v", a.Kind)
	}
}
