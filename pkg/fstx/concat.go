package fstx

// ConcatState represents the state of an in-progress concatenation A+B.
// Sequences of more than two grammars are right-branching: A+B+C is built
// as Concat(A, Concat(B, C)).
//
// Concat must stay tape-order-agnostic: Concat(Lit("a","x"), Lit("b","y"))
// and Concat(Lit("b","y"), Lit("a","x")) describe the same pairing, but a
// naive implementation that always asks child1 first would deadlock a Join
// between them, since one side emits tape "a" before "b" and the other
// emits "b" before "a". Concat resolves this by offering child2's
// transitions whenever child1 declines the requested tape (a Matched=false
// stay), and otherwise falling through to child2 only once per query, and
// only once child1 is accepting and nothing has come from child2 yet.
type ConcatState struct {
	child1 State
	child2 State
}

// NewConcatState builds the state for child1 followed by child2.
func NewConcatState(child1, child2 State) *ConcatState {
	return &ConcatState{child1: child1, child2: child2}
}

func (s *ConcatState) ID() string { return "Concat(" + s.child1.ID() + "," + s.child2.ID() + ")" }

func (s *ConcatState) Accepting(stack CounterStack) bool {
	return s.child1.Accepting(stack) && s.child2.Accepting(stack)
}

func (s *ConcatState) CollectVocab(tapes *TapeCollection, visiting []string) {
	s.child1.CollectVocab(tapes, visiting)
	s.child2.CollectVocab(tapes, visiting)
}

func (s *ConcatState) NDQuery(tape Tape, target Token, stack CounterStack) []Transition {
	var results []Transition
	yieldedFromChild2 := false

	for _, t1 := range DQuery(s.child1, tape, target, stack) {
		if t1.Matched {
			results = append(results, Transition{
				Tape:    t1.Tape,
				Token:   t1.Token,
				Matched: true,
				Next:    NewConcatState(t1.Next, s.child2),
			})
			continue
		}
		// child1 declined the requested tape; whatever comes first on
		// that tape, if anything, must come from child2.
		for _, t2 := range DQuery(s.child2, tape, target, stack) {
			results = append(results, Transition{
				Tape:    t2.Tape,
				Token:   t2.Token,
				Matched: t2.Matched,
				Next:    NewConcatState(s.child1, t2.Next),
			})
			yieldedFromChild2 = true
		}
	}

	if !yieldedFromChild2 && s.child1.Accepting(stack) {
		results = append(results, DQuery(s.child2, tape, target, stack)...)
	}
	return results
}
