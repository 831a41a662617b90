package fstx

// RenamedTape adapts a child tape so that requests for fromTape are
// transparently redirected to toTape before being delegated. Renaming is
// needed when composing two grammars whose tapes were built independently:
// e.g. joining {"up":"lr","down":"ll"} with {"up":"ll","down":"lh"} requires
// making the first grammar's "down" and the second's "up" refer to the same
// underlying tape, which RenamedTape achieves without either sub-grammar
// needing to know about the larger naming scheme.
type RenamedTape struct {
	child     Tape
	fromTape  string
	toTape    string
}

// NewRenamedTape wraps child so that any operation asking for fromTape is
// redirected to toTape.
func NewRenamedTape(child Tape, fromTape, toTape string) *RenamedTape {
	return &RenamedTape{child: child, fromTape: fromTape, toTape: toTape}
}

func (r *RenamedTape) adjust(tapeName string) string {
	if tapeName == r.fromTape {
		return r.toTape
	}
	return tapeName
}

// TapeName implements Tape: transparent to the child's own name.
func (r *RenamedTape) TapeName() string { return r.child.TapeName() }

// NumTapes implements Tape: transparent to the child.
func (r *RenamedTape) NumTapes() int { return r.child.NumTapes() }

// Any implements Tape: transparent to the child.
func (r *RenamedTape) Any() Token { return r.child.Any() }

// Add implements Tape: transparent to the child.
func (r *RenamedTape) Add(s1, s2 string) []string { return r.child.Add(s1, s2) }

// Match implements Tape: transparent to the child.
func (r *RenamedTape) Match(t1, t2 Token) Token { return r.child.Match(t1, t2) }

// MatchTape resolves tapeName against the rename mapping before
// delegating, and wraps a successful resolution in another RenamedTape so
// the adapter stays transparent for every subsequent bit operation.
func (r *RenamedTape) MatchTape(tapeName string) Tape {
	resolved := r.adjust(tapeName)
	child := r.child.MatchTape(resolved)
	if child == nil {
		return nil
	}
	return NewRenamedTape(child, r.fromTape, r.toTape)
}

// Tokenize resolves tapeName against the rename mapping before delegating.
func (r *RenamedTape) Tokenize(tapeName, s string) ([]Token, error) {
	return r.child.Tokenize(r.adjust(tapeName), s)
}

// ToBits resolves tapeName against the rename mapping before delegating.
func (r *RenamedTape) ToBits(tapeName, char string) (Token, error) {
	return r.child.ToBits(r.adjust(tapeName), char)
}

// FromBits resolves tapeName against the rename mapping before delegating.
func (r *RenamedTape) FromBits(tapeName string, bits Token) ([]string, error) {
	return r.child.FromBits(r.adjust(tapeName), bits)
}
