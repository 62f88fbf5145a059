package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pocketsim/pocketsim/catalog"
)

func TestParseCandidateListResolvesKnownCards(t *testing.T) {
	ids, err := parseCandidateList("A1001,PA002")
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.Equal(t, catalog.Bulbasaur, ids[0])
	require.Equal(t, catalog.Erika, ids[1])
}

func TestParseCandidateListRejectsUnknown(t *testing.T) {
	_, err := parseCandidateList("ZZ999")
	require.Error(t, err)
}

func TestParseCandidateListRejectsEmpty(t *testing.T) {
	_, err := parseCandidateList("")
	require.Error(t, err)
}
