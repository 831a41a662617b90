package fstx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenamedTapeRedirectsRequests(t *testing.T) {
	child := NewTapeCollection()
	_, err := child.Tokenize("ll", "a")
	require.NoError(t, err)

	renamed := NewRenamedTape(child, "up", "ll")

	bits, err := renamed.ToBits("up", "a")
	require.NoError(t, err)
	assert.False(t, bits.IsEmpty())

	chars, err := renamed.FromBits("up", bits)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, chars)
}

func TestRenamedTapeMatchTapeReWraps(t *testing.T) {
	child := NewTapeCollection()
	_, err := child.Tokenize("ll", "a")
	require.NoError(t, err)

	renamed := NewRenamedTape(child, "up", "ll")

	resolved := renamed.MatchTape("up")
	require.NotNil(t, resolved)

	_, ok := resolved.(*RenamedTape)
	assert.True(t, ok, "MatchTape should re-wrap a successful resolution in another RenamedTape")
}

func TestRenamedTapeUnmatchedNameReturnsNil(t *testing.T) {
	child := NewTapeCollection()
	renamed := NewRenamedTape(child, "up", "ll")

	assert.Nil(t, renamed.MatchTape("down"))
}
