package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSeedFlagEmptyIsNil(t *testing.T) {
	seed, err := parseSeedFlag("")
	require.NoError(t, err)
	require.Nil(t, seed)
}

func TestParseSeedFlagParsesDecimal(t *testing.T) {
	seed, err := parseSeedFlag("1406385978241804004")
	require.NoError(t, err)
	require.NotNil(t, seed)
	require.Equal(t, uint64(1406385978241804004), *seed)
}

func TestParseSeedFlagRejectsGarbage(t *testing.T) {
	_, err := parseSeedFlag("not-a-number")
	require.Error(t, err)
}

func TestOffsetSeedNilStaysNil(t *testing.T) {
	require.Nil(t, offsetSeed(nil, 5))
}

func TestOffsetSeedAddsIndex(t *testing.T) {
	seed := uint64(100)
	got := offsetSeed(&seed, 3)
	require.Equal(t, uint64(103), *got)
}

func TestSimulateSummaryTracksOutcomes(t *testing.T) {
	s := newSimulateSummary()
	s.add(nil, 50, nil)
	require.Equal(t, 1, s.Games)
	require.Zero(t, s.WinsA)
	require.Zero(t, s.WinsB)
	require.Zero(t, s.Ties)
}
