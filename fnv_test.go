package bnk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFNV1_32LowerReference(t *testing.T) {
	assert.Equal(t, uint32(1834890111), FNV1_32Lower("Play_c407001000"))
}

func TestFNV1_32LowerCaseInvariant(t *testing.T) {
	a := FNV1_32Lower("PLAY_c407001000")
	b := FNV1_32Lower("play_c407001000")
	assert.Equal(t, uint32(1834890111), a)
	assert.Equal(t, a, b)
}

func TestParseDictionarySkipsBlankAndComments(t *testing.T) {
	input := `
# a comment
Play_c407001000


# another
Stop_c407001001
`
	dict, err := ParseDictionary(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, dict, 2)

	name, ok := dict.Lookup(FNV1_32Lower("Play_c407001000"))
	require.True(t, ok)
	assert.Equal(t, "Play_c407001000", name)
}

func TestParseDictionaryExplicitHash(t *testing.T) {
	input := "1834890111 Play_c407001000\n"
	dict, err := ParseDictionary(strings.NewReader(input))
	require.NoError(t, err)

	name, ok := dict.Lookup(1834890111)
	require.True(t, ok)
	assert.Equal(t, "Play_c407001000", name)
}

func TestDictionaryAdd(t *testing.T) {
	dict := make(Dictionary)
	h := dict.Add("Play_c407001000")
	assert.Equal(t, uint32(1834890111), h)
	name, ok := dict.Lookup(h)
	require.True(t, ok)
	assert.Equal(t, "Play_c407001000", name)
}
