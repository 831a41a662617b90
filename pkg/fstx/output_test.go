package fstx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleTapeOutputGetStrings(t *testing.T) {
	tape := NewStringTape("text")
	tokens, err := tape.Tokenize("text", "ab")
	require.NoError(t, err)

	chain := NewSingleTapeOutput(tape, tokens[0])
	chain, err = chain.Add(tape, tokens[1])
	require.NoError(t, err)

	strs, err := chain.GetStrings()
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, strs)
}

func TestSingleTapeOutputNilChainYieldsEmptyString(t *testing.T) {
	var chain *SingleTapeOutput
	strs, err := chain.GetStrings()
	require.NoError(t, err)
	assert.Equal(t, []string{""}, strs)
}

func TestSingleTapeOutputRejectsMismatchedTape(t *testing.T) {
	textTape := NewStringTape("text")
	glossTape := NewStringTape("gloss")

	tokens, err := textTape.Tokenize("text", "a")
	require.NoError(t, err)
	chain := NewSingleTapeOutput(textTape, tokens[0])

	glossTokens, err := glossTape.Tokenize("gloss", "x")
	require.NoError(t, err)

	_, err = chain.Add(glossTape, glossTokens[0])
	assert.Error(t, err)
}

func TestMultiTapeOutputProductAcrossTapes(t *testing.T) {
	textTape := NewStringTape("text")
	glossTape := NewStringTape("gloss")

	textTokens, err := textTape.Tokenize("text", "a")
	require.NoError(t, err)
	glossTokens, err := glossTape.Tokenize("gloss", "x")
	require.NoError(t, err)

	out := NewMultiTapeOutput()
	out, err = out.Add(textTape, textTokens[0])
	require.NoError(t, err)
	out, err = out.Add(glossTape, glossTokens[0])
	require.NoError(t, err)

	records, err := out.ToStrings(nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0]["text"])
	assert.Equal(t, "x", records[0]["gloss"])
}

func TestMultiTapeOutputAddIsNoopForEmptyCollection(t *testing.T) {
	collection := NewTapeCollection()
	out := NewMultiTapeOutput()

	same, err := out.Add(collection, AnyChar)
	require.NoError(t, err)
	assert.Same(t, out, same)
}

func TestMultiTapeOutputCopyOnWriteLeavesReceiverUnchanged(t *testing.T) {
	textTape := NewStringTape("text")
	tokens, err := textTape.Tokenize("text", "ab")
	require.NoError(t, err)

	base := NewMultiTapeOutput()
	base, err = base.Add(textTape, tokens[0])
	require.NoError(t, err)

	extended, err := base.Add(textTape, tokens[1])
	require.NoError(t, err)

	baseStrs, err := base.ToStrings(nil)
	require.NoError(t, err)
	extendedStrs, err := extended.ToStrings(nil)
	require.NoError(t, err)

	assert.Equal(t, "a", baseStrs[0]["text"])
	assert.Equal(t, "ab", extendedStrs[0]["text"])
}
