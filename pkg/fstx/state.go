package fstx

// Transition is one result of querying a State: tape/token identify what
// was matched (or would have been, had Matched been true), and Next is the
// state reached by taking that transition.
type Transition struct {
	Tape    Tape
	Token   Token
	Matched bool
	Next    State
}

// State is a pointer into an unmaterialized state graph: rather than
// pre-computing every node of a (possibly exponential, possibly infinite)
// automaton, each State answers "what could I transition to on this
// tape/token" on demand, and the object returned by that answer is itself
// a State representing "the rest of the parse from here."
//
// Three methods matter for the algorithm:
//
//   - NDQuery: given a tape/token to match, yields every transition this
//     state could take, non-deterministically — results may overlap (two
//     transitions may both match the same character).
//   - Accepting: whether this state alone constitutes a complete parse.
//     Accepting a sub-state doesn't mean the whole grammar is done — e.g.
//     a ConcatState consults its left child's Accepting to decide whether
//     to also offer its right child's transitions.
//   - CollectVocab: registers every character this state (and its
//     descendants) could ever emit, into a TapeCollection, before any
//     query is made. Composite states recurse into children; EmbedState
//     additionally guards against infinite recursion through a stack of
//     symbol names already visited.
type State interface {
	ID() string
	Accepting(stack CounterStack) bool
	NDQuery(tape Tape, target Token, stack CounterStack) []Transition
	CollectVocab(tapes *TapeCollection, visiting []string)
}

// DQuery is the deterministic counterpart to NDQuery: it calls s.NDQuery
// and then folds the results so that no two returned transitions can match
// the same character on the same tape. Where two non-deterministic
// transitions would have overlapped, DQuery splits them into up to three
// disjoint transitions: the shared intersection (leading to the union of
// what each would have led to), and the two remainders (each leading to
// what only that original transition would have led to).
//
// This matters because some combinators (Join's intersection in
// particular) would silently double-count or mis-match if queried through
// NDQuery's possibly-overlapping results directly.
func DQuery(s State, tape Tape, target Token, stack CounterStack) []Transition {
	var results []Transition
	for _, nd := range s.NDQuery(tape, target, stack) {
		if nd.Tape.NumTapes() == 0 {
			results = append(results, nd)
			continue
		}

		var newResults []Transition
		bits := nd.Token
		for _, r := range results {
			if nd.Tape.TapeName() != r.Tape.TapeName() {
				newResults = append(newResults, r)
				continue
			}

			intersection := bits.And(r.Token)
			if !intersection.IsEmpty() {
				union := NewUnionState(nd.Next, r.Next)
				newResults = append(newResults, Transition{
					Tape:    nd.Tape,
					Token:   intersection,
					Matched: nd.Matched || r.Matched,
					Next:    union,
				})
			}
			bits = bits.AndNot(intersection)
			otherBits := r.Token.AndNot(intersection)
			if !otherBits.IsEmpty() {
				newResults = append(newResults, Transition{
					Tape:    r.Tape,
					Token:   otherBits,
					Matched: r.Matched,
					Next:    r.Next,
				})
			}
		}
		results = newResults
		if !bits.IsEmpty() {
			results = append(results, Transition{
				Tape:    nd.Tape,
				Token:   bits,
				Matched: nd.Matched,
				Next:    nd.Next,
			})
		}
	}
	return results
}

// TrivialState recognizes the empty grammar: it is always accepting and
// never offers a transition. Useful as the base case other states hand
// control to once they've been fully consumed.
type TrivialState struct{}

// NewTrivialState returns the singleton-in-spirit trivial state. A fresh
// value is returned each call since TrivialState carries no data, but all
// instances are interchangeable.
func NewTrivialState() *TrivialState { return &TrivialState{} }

func (s *TrivialState) ID() string { return "0" }

func (s *TrivialState) Accepting(stack CounterStack) bool { return true }

func (s *TrivialState) NDQuery(tape Tape, target Token, stack CounterStack) []Transition {
	return nil
}

func (s *TrivialState) CollectVocab(tapes *TapeCollection, visiting []string) {}
