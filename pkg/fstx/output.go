package fstx

import "sort"

// SingleTapeOutput is an immutable node of a reverse-linked output trie for
// one tape: (tape, token, prev). Because non-deterministic branching can
// fan out from any shared prefix, building a trie of nodes rather than
// eagerly concatenating strings means siblings share the prefix they have
// in common instead of each copying it.
type SingleTapeOutput struct {
	tape  Tape
	token Token
	prev  *SingleTapeOutput
}

// NewSingleTapeOutput starts a fresh chain with one token on tape.
func NewSingleTapeOutput(tape Tape, token Token) *SingleTapeOutput {
	return &SingleTapeOutput{tape: tape, token: token}
}

// Add returns a new chain node with one more token appended, sharing the
// receiver as the new node's predecessor. Add fails with a TapeError if
// tape's name disagrees with the chain's own tape name, since a single
// chain must never mix characters from two tapes.
func (o *SingleTapeOutput) Add(tape Tape, token Token) (*SingleTapeOutput, error) {
	if tape.TapeName() != o.tape.TapeName() {
		return nil, NewTapeError("incompatible tapes: %q, %q", tape.TapeName(), o.tape.TapeName())
	}
	return &SingleTapeOutput{tape: tape, token: token, prev: o}, nil
}

// GetStrings yields every string obtainable by decoding the chain from its
// root to the receiver. A nil chain (spec's open question: the empty-chain
// base case) yields a single empty-string prefix, matching the reference
// behavior.
func (o *SingleTapeOutput) GetStrings() ([]string, error) {
	if o == nil {
		return []string{""}, nil
	}
	prevStrings, err := o.prev.GetStrings()
	if err != nil {
		return nil, err
	}
	chars, err := o.tape.FromBits(o.tape.TapeName(), o.token)
	if err != nil {
		return nil, err
	}
	results := make([]string, 0, len(prevStrings)*len(chars))
	for _, s := range prevStrings {
		for _, c := range chars {
			results = append(results, s+c)
		}
	}
	return results, nil
}

// MultiTapeOutput is a persistent map from tape name to the SingleTapeOutput
// chain accumulated so far on that tape. Add is copy-on-write at the map
// level: the returned MultiTapeOutput is a new map with one entry replaced,
// every other entry shared by reference with the receiver.
type MultiTapeOutput struct {
	chains map[string]*SingleTapeOutput
}

// NewMultiTapeOutput returns the empty output, the starting point for a
// generation run.
func NewMultiTapeOutput() *MultiTapeOutput {
	return &MultiTapeOutput{}
}

// Add returns a new MultiTapeOutput with tape's chain extended by token.
// If tape.NumTapes() == 0 — the TapeCollection a generator seeds its BFS
// with before any transition has resolved a concrete tape — Add is a
// required no-op: it returns the receiver unchanged, preventing spurious
// output for transitions that never actually touched a tape.
func (m *MultiTapeOutput) Add(tape Tape, token Token) (*MultiTapeOutput, error) {
	if tape.NumTapes() == 0 {
		return m, nil
	}
	next := &SingleTapeOutput{tape: tape, token: token}
	if m.chains != nil {
		next.prev = m.chains[tape.TapeName()]
	}
	result := &MultiTapeOutput{chains: make(map[string]*SingleTapeOutput, len(m.chains)+1)}
	for k, v := range m.chains {
		result.chains[k] = v
	}
	result.chains[tape.TapeName()] = next
	return result, nil
}

// ToStrings expands the output into the Cartesian product of per-tape
// decodings, returning one record per combination. Field order within a
// record is irrelevant; tapeOrder, if non-empty, fixes the order tapes are
// folded into the product so that repeated runs over the same grammar
// produce records in a deterministic sequence.
func (m *MultiTapeOutput) ToStrings(tapeOrder []string) ([]StringRecord, error) {
	results := []StringRecord{{}}
	for _, tapeName := range m.orderedTapeNames(tapeOrder) {
		chain := m.chains[tapeName]
		strs, err := chain.GetStrings()
		if err != nil {
			return nil, err
		}
		next := make([]StringRecord, 0, len(results)*len(strs))
		for _, s := range strs {
			for _, prefix := range results {
				rec := make(StringRecord, len(prefix)+1)
				for k, v := range prefix {
					rec[k] = v
				}
				rec[tapeName] = s
				next = append(next, rec)
			}
		}
		results = next
	}
	return results, nil
}

// orderedTapeNames returns the tape names present in m, in tapeOrder's
// order followed by any remaining names in sorted order for determinism.
func (m *MultiTapeOutput) orderedTapeNames(tapeOrder []string) []string {
	remaining := make(map[string]bool, len(m.chains))
	for name := range m.chains {
		remaining[name] = true
	}
	ordered := make([]string, 0, len(m.chains))
	for _, name := range tapeOrder {
		if remaining[name] {
			ordered = append(ordered, name)
			delete(remaining, name)
		}
	}
	rest := make([]string, 0, len(remaining))
	for name := range remaining {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

// StringRecord is one generated tuple: tape name to decoded string.
type StringRecord map[string]string
