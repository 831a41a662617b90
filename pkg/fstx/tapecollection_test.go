package fstx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTapeCollectionSentinelNames(t *testing.T) {
	c := NewTapeCollection()
	assert.Equal(t, NoTapeName, c.TapeName())

	_, err := c.Tokenize("text", "a")
	require.NoError(t, err)
	assert.Equal(t, AnyTapeName, c.TapeName())
}

func TestTapeCollectionLazyTapeCreation(t *testing.T) {
	c := NewTapeCollection()

	_, err := c.Tokenize("text", "ab")
	require.NoError(t, err)

	tape := c.MatchTape("text")
	require.NotNil(t, tape)
	assert.Equal(t, "text", tape.TapeName())
}

func TestTapeCollectionUndefinedTape(t *testing.T) {
	c := NewTapeCollection()

	_, err := c.ToBits("ghost", "a")
	assert.Error(t, err)

	_, err = c.FromBits("ghost", AnyChar)
	assert.Error(t, err)

	assert.Nil(t, c.MatchTape("ghost"))
}
