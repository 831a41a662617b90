package fstx

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateOrFail(t *testing.T, s State) []StringRecord {
	t.Helper()
	recs, err := Generate(context.Background(), s, DefaultGenerateOptions())
	require.NoError(t, err)
	return recs
}

func recordKeys(recs []StringRecord) []string {
	keys := make([]string, len(recs))
	for i, r := range recs {
		parts := make([]string, 0, len(r))
		names := make([]string, 0, len(r))
		for name := range r {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			parts = append(parts, name+"="+r[name])
		}
		key := ""
		for _, p := range parts {
			key += p + ";"
		}
		keys[i] = key
	}
	sort.Strings(keys)
	return keys
}

func TestLiteralIdentity(t *testing.T) {
	recs := generateOrFail(t, Lit("text", "hello"))
	require.Len(t, recs, 1)
	assert.Equal(t, "hello", recs[0]["text"])
}

func TestConcatIdentityWithEmptyLiteral(t *testing.T) {
	x := Lit("text", "foo")

	left := mustSeqT(t, Epsilon("text"), x)
	right := mustSeqT(t, x, Epsilon("text"))

	assert.Equal(t, recordKeys(generateOrFail(t, x)), recordKeys(generateOrFail(t, left)))
	assert.Equal(t, recordKeys(generateOrFail(t, x)), recordKeys(generateOrFail(t, right)))
}

func TestSeqAssociativity(t *testing.T) {
	a, b, c := Lit("text", "a"), Lit("text", "b"), Lit("text", "c")

	leftNested := mustSeqT(t, mustSeqT(t, a, b), c)
	rightNested := mustSeqT(t, a, mustSeqT(t, b, c))
	flat := mustSeqT(t, a, b, c)

	want := recordKeys(generateOrFail(t, flat))
	assert.Equal(t, want, recordKeys(generateOrFail(t, leftNested)))
	assert.Equal(t, want, recordKeys(generateOrFail(t, rightNested)))
}

func TestUniCommutativity(t *testing.T) {
	a, b := Lit("text", "a"), Lit("text", "b")

	ab := mustUniT(t, a, b)
	ba := mustUniT(t, b, a)

	assert.ElementsMatch(t, recordKeys(generateOrFail(t, ab)), recordKeys(generateOrFail(t, ba)))
}

func TestSeqDistributesOverUni(t *testing.T) {
	a, b, c := Lit("text", "a"), Lit("text", "b"), Lit("text", "c")

	uni := mustUniT(t, a, b)
	lhs := mustSeqT(t, uni, c)

	ac := mustSeqT(t, a, c)
	bc := mustSeqT(t, b, c)
	rhs := mustUniT(t, ac, bc)

	assert.ElementsMatch(t, recordKeys(generateOrFail(t, lhs)), recordKeys(generateOrFail(t, rhs)))
}

func TestJoinIdempotenceOnLiterals(t *testing.T) {
	same := Join(Lit("T", "s"), Lit("T", "s"))
	recs := generateOrFail(t, same)
	require.Len(t, recs, 1)
	assert.Equal(t, "s", recs[0]["T"])

	different := Join(Lit("T", "s"), Lit("T", "other"))
	assert.Empty(t, generateOrFail(t, different))
}

func TestMultiTapeProductViaJoin(t *testing.T) {
	grammar := Join(Lit("t1", "hi"), mustSeqT(t, Lit("t1", "hi"), Lit("t2", "bye")))
	recs := generateOrFail(t, grammar)
	require.Len(t, recs, 1)
	assert.Equal(t, "hi", recs[0]["t1"])
	assert.Equal(t, "bye", recs[0]["t2"])
}

func TestTapeOrderInvariance(t *testing.T) {
	left := mustSeqT(t, Lit("A", "a"), Lit("B", "b"))
	right := mustSeqT(t, Lit("B", "b"), Lit("A", "a"))

	recs := generateOrFail(t, Join(left, right))
	require.Len(t, recs, 1)
	assert.Equal(t, "a", recs[0]["A"])
	assert.Equal(t, "b", recs[0]["B"])
}

func TestAnyCharAsDot(t *testing.T) {
	dotted := mustSeqT(t, Lit("T", "h"), Any("T"), Lit("T", "llo"))

	match := Join(Lit("T", "hello"), dotted)
	recs := generateOrFail(t, match)
	require.Len(t, recs, 1)
	assert.Equal(t, "hello", recs[0]["T"])

	noMatch := Join(Lit("T", "hllo"), dotted)
	assert.Empty(t, generateOrFail(t, noMatch))
}

func TestEmbedTerminatesAtMaxRecursionPlusOne(t *testing.T) {
	table := NewSymbolTable()
	body := mustUniT(t, mustSeqT(t, Lit("T", "a"), Embed("S", table)), Epsilon("T"))
	table.Set("S", body)

	require.NoError(t, ValidateSymbols(table))

	opts := DefaultGenerateOptions()
	recs, err := Generate(context.Background(), Embed("S", table), opts)
	require.NoError(t, err)

	assert.Len(t, recs, opts.MaxRecursion+1)

	got := make(map[string]bool, len(recs))
	for _, r := range recs {
		got[r["T"]] = true
	}
	for i := 0; i <= opts.MaxRecursion; i++ {
		as := ""
		for j := 0; j < i; j++ {
			as += "a"
		}
		assert.True(t, got[as], "expected output %q among results", as)
	}
}

func TestDeterminizerDisjointness(t *testing.T) {
	grammar := mustUniT(t, Lit("T", "abc"), Lit("T", "abd"))

	stack := NewCounterStack(4)
	tapes := NewTapeCollection()
	grammar.CollectVocab(tapes, nil)

	results := DQuery(grammar, tapes, AnyChar, stack)
	for i := 0; i < len(results); i++ {
		for j := i + 1; j < len(results); j++ {
			if results[i].Tape.TapeName() != results[j].Tape.TapeName() {
				continue
			}
			overlap := results[i].Token.And(results[j].Token)
			assert.True(t, overlap.IsEmpty(), "results %d and %d share a bit on tape %s", i, j, results[i].Tape.TapeName())
		}
	}
}

func TestEndToEndSeqConcat(t *testing.T) {
	recs := generateOrFail(t, mustSeqT(t, Lit("text", "hello"), Lit("text", "world")))
	require.Len(t, recs, 1)
	assert.Equal(t, "helloworld", recs[0]["text"])
}

func TestEndToEndUniOfLiterals(t *testing.T) {
	recs := generateOrFail(t, mustUniT(t, Lit("text", "hello"), Lit("text", "goodbye")))
	assert.ElementsMatch(t, []string{"hello", "goodbye"}, []string{recs[0]["text"], recs[1]["text"]})
}

func TestEndToEndJoinAcrossUnrelatedTape(t *testing.T) {
	grammar := Join(
		mustSeqT(t, Lit("text", "hello"), Lit("unrelated", "foo")),
		Lit("text", "hello"),
	)
	recs := generateOrFail(t, grammar)
	require.Len(t, recs, 1)
	assert.Equal(t, "hello", recs[0]["text"])
	assert.Equal(t, "foo", recs[0]["unrelated"])
}

func TestEndToEndJoinOfTwoUnions(t *testing.T) {
	grammar := Join(
		mustUniT(t, Lit("text", "hello"), Lit("text", "goodbye")),
		mustUniT(t, Lit("text", "goodbye"), Lit("text", "welcome")),
	)
	recs := generateOrFail(t, grammar)
	require.Len(t, recs, 1)
	assert.Equal(t, "goodbye", recs[0]["text"])
}

func TestEndToEndJoinLiteralWithUnionBranchingOnUnrelatedTape(t *testing.T) {
	grammar := Join(
		Lit("text", "hello"),
		mustUniT(t, Lit("text", "hello"), Lit("unrelated", "foo")),
	)
	recs := generateOrFail(t, grammar)
	require.Len(t, recs, 2)

	assert.ElementsMatch(t, recordKeys(recs), recordKeys([]StringRecord{
		{"text": "hello"},
		{"text": "hello", "unrelated": "foo"},
	}))
}

func TestEndToEndThreeWayJoin(t *testing.T) {
	grammar := Join(
		Lit("t1", "hi"),
		Join(
			mustSeqT(t, Lit("t1", "hi"), Lit("t2", "bye")),
			mustSeqT(t, Lit("t2", "bye"), Lit("t3", "yo")),
		),
	)
	recs := generateOrFail(t, grammar)
	require.Len(t, recs, 1)
	assert.Equal(t, "hi", recs[0]["t1"])
	assert.Equal(t, "bye", recs[0]["t2"])
	assert.Equal(t, "yo", recs[0]["t3"])
}

func mustSeqT(t *testing.T, children ...State) State {
	t.Helper()
	s, err := Seq(children...)
	require.NoError(t, err)
	return s
}

func mustUniT(t *testing.T, children ...State) State {
	t.Helper()
	s, err := Uni(children...)
	require.NoError(t, err)
	return s
}
