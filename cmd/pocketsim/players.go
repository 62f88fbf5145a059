package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/pocketsim/pocketsim/agent"
	"github.com/pocketsim/pocketsim/driver"
)

// playerCode names an agent strategy via one of the {AA, ET, R, H, W,
// M, V, E} codes, case-insensitive.
type playerCode string

const (
	codeAttachThenAttack playerCode = "AA"
	codeEndTurn          playerCode = "ET"
	codeRandom           playerCode = "R"
	codeHuman            playerCode = "H"
	codeWeightedRandom   playerCode = "W"
	codeMCTS             playerCode = "M"
	codeValueFunction    playerCode = "V"
	codeExpectiminimax   playerCode = "E"
)

// parsePlayerCodes splits a comma-separated "CODE,CODE" flag value into
// two normalized codes. A missing second code defaults to R; an empty
// string defaults both to R.
func parsePlayerCodes(raw string) ([2]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return [2]string{string(codeRandom), string(codeRandom)}, nil
	}

	parts := strings.SplitN(raw, ",", 2)
	first := strings.ToUpper(strings.TrimSpace(parts[0]))
	second := string(codeRandom)
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		second = strings.ToUpper(strings.TrimSpace(parts[1]))
	}
	if first == "" {
		first = string(codeRandom)
	}

	for _, code := range [2]string{first, second} {
		if !isValidCode(code) {
			return [2]string{}, fmt.Errorf("invalid player code %q", code)
		}
	}
	return [2]string{first, second}, nil
}

func isValidCode(code string) bool {
	switch playerCode(code) {
	case codeAttachThenAttack, codeEndTurn, codeRandom, codeHuman, codeWeightedRandom, codeMCTS, codeValueFunction, codeExpectiminimax:
		return true
	default:
		return false
	}
}

// buildAgent resolves a player code to a concrete agent. humanIn/humanOut
// back the H code's Interactive agent; they're only consulted when that
// code is actually selected.
func buildAgent(code string, humanIn io.Reader, humanOut io.Writer) (driver.Agent, error) {
	switch playerCode(strings.ToUpper(code)) {
	case codeAttachThenAttack:
		return agent.AttachThenAttack{}, nil
	case codeEndTurn:
		return agent.EndTurn{}, nil
	case codeRandom:
		return agent.Random{}, nil
	case codeHuman:
		return agent.Interactive{In: humanIn, Out: humanOut}, nil
	case codeWeightedRandom:
		return agent.WeightedRandom{}, nil
	case codeMCTS:
		return agent.MCTS{Iterations: 200}, nil
	case codeValueFunction:
		return agent.ValueFunction{}, nil
	case codeExpectiminimax:
		return agent.Expectiminimax{MaxDepth: 3}, nil
	default:
		return nil, fmt.Errorf("invalid player code %q", code)
	}
}

// buildAgents resolves both halves of a parsed player-code pair.
func buildAgents(codes [2]string, humanIn io.Reader, humanOut io.Writer) ([2]driver.Agent, error) {
	var agents [2]driver.Agent
	for i, code := range codes {
		a, err := buildAgent(code, humanIn, humanOut)
		if err != nil {
			return agents, err
		}
		agents[i] = a
	}
	return agents, nil
}

// seedRNG returns a *rand.Rand seeded deterministically when seed is
// non-nil, otherwise seeded from process entropy.
func seedRNG(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return rand.New(rand.NewSource(int64(*seed)))
}
