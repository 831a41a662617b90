package fstx

// AnyTapeName is the sentinel TapeCollection.TapeName returns when it holds
// at least one tape: "match anything on any tape you like".
const AnyTapeName = "__ANY_TAPE__"

// NoTapeName is the sentinel TapeCollection.TapeName returns when it holds
// no tapes at all — the state a generator's BFS begins with.
const NoTapeName = "__NO_TAPE__"

// TapeCollection indexes tapes by name and creates StringTapes on first
// tokenization. Passing a TapeCollection to a leaf state's query is how a
// "free query" ("match anything on any tape") is expressed: the leaf state
// calls MatchTape(itsOwnTapeName) on the collection and gets back the
// specific tape it cares about, if the collection has it.
type TapeCollection struct {
	tapes map[string]Tape
}

// NewTapeCollection creates an empty TapeCollection.
func NewTapeCollection() *TapeCollection {
	return &TapeCollection{tapes: make(map[string]Tape)}
}

// TapeName implements Tape: a collection never answers to a specific name,
// only to the sentinels.
func (c *TapeCollection) TapeName() string {
	if len(c.tapes) == 0 {
		return NoTapeName
	}
	return AnyTapeName
}

// NumTapes implements Tape.
func (c *TapeCollection) NumTapes() int { return len(c.tapes) }

// AddTape registers an already-constructed tape under its own name.
func (c *TapeCollection) AddTape(tape Tape) {
	c.tapes[tape.TapeName()] = tape
}

// Any is not meaningful on a collection as a whole; it exists only to
// satisfy the Tape interface and is never called in practice (queries are
// always routed to a resolved child tape first).
func (c *TapeCollection) Any() Token { return AnyChar }

// Add is not meaningful on a collection as a whole; see Any.
func (c *TapeCollection) Add(s1, s2 string) []string { return []string{s1 + s2} }

// Match is not meaningful on a collection as a whole; see Any.
func (c *TapeCollection) Match(t1, t2 Token) Token { return t1.And(t2) }

// Tokenize creates a StringTape for tapeName on first use, then delegates.
func (c *TapeCollection) Tokenize(tapeName, s string) ([]Token, error) {
	tape, ok := c.tapes[tapeName]
	if !ok {
		tape = NewStringTape(tapeName)
		c.tapes[tapeName] = tape
	}
	return tape.Tokenize(tapeName, s)
}

// MatchTape returns the registered tape named tapeName, or nil if none is
// registered under that name.
func (c *TapeCollection) MatchTape(tapeName string) Tape {
	return c.tapes[tapeName]
}

// ToBits delegates to the named tape, failing if it is not registered.
func (c *TapeCollection) ToBits(tapeName, char string) (Token, error) {
	tape, ok := c.tapes[tapeName]
	if !ok {
		return NoChar, NewTapeError("undefined tape: %q", tapeName)
	}
	return tape.ToBits(tapeName, char)
}

// FromBits delegates to the named tape, failing if it is not registered.
func (c *TapeCollection) FromBits(tapeName string, bits Token) ([]string, error) {
	tape, ok := c.tapes[tapeName]
	if !ok {
		return nil, NewTapeError("undefined tape: %q", tapeName)
	}
	return tape.FromBits(tapeName, bits)
}
