package fstx

// JoinState represents the current state of a join between two grammars:
// on any tape both children address, a transition must satisfy both (the
// result is their intersection); on a tape only one child addresses, that
// child's transition passes through untouched. Parsing is expressed in
// terms of Join: to parse a query against a grammar X, join
// a literal grammar built from the query with X, then generate from the
// join.
//
// Most of the time Join needs no ConcatState-style "which child goes
// first" fallback, because both children are queried about the same
// tape — first child1 broadly, then child2 specifically about whatever
// tape/token child1 turned out to care about. That narrowing is what
// keeps a Join's intersection from drifting: child2 is never asked about
// a wider token than child1 already committed to.
//
// One case still needs an explicit fallback, just like Concat's: child1
// may be exhausted outright (already Accepting, with nothing left to
// query at all) while child2 still has transitions of its own to offer on
// a tape child1 never touches. DQuery(child1, ...) then returns zero
// transitions rather than a Matched=false stay, so the per-transition
// loop below never runs and child2 would otherwise be stranded. The
// fallback mirrors ConcatState.NDQuery's own "child1 exhausted, hand off
// to child2 unconstrained" branch.
type JoinState struct {
	child1 State
	child2 State
}

// NewJoinState builds the state for the intersection/product of child1 and
// child2.
func NewJoinState(child1, child2 State) *JoinState {
	return &JoinState{child1: child1, child2: child2}
}

func (s *JoinState) ID() string { return "Join(" + s.child1.ID() + "," + s.child2.ID() + ")" }

func (s *JoinState) Accepting(stack CounterStack) bool {
	return s.child1.Accepting(stack) && s.child2.Accepting(stack)
}

func (s *JoinState) CollectVocab(tapes *TapeCollection, visiting []string) {
	s.child1.CollectVocab(tapes, visiting)
	s.child2.CollectVocab(tapes, visiting)
}

func (s *JoinState) NDQuery(tape Tape, target Token, stack CounterStack) []Transition {
	var results []Transition

	t1s := DQuery(s.child1, tape, target, stack)

	for _, t1 := range t1s {
		if !t1.Matched {
			// child1 doesn't address this tape at all; the whole
			// question passes to child2 unchanged.
			for _, t2 := range DQuery(s.child2, tape, target, stack) {
				results = append(results, Transition{
					Tape:    t2.Tape,
					Token:   t2.Token,
					Matched: t2.Matched,
					Next:    NewJoinState(s.child1, t2.Next),
				})
			}
			continue
		}

		// child1 committed to (t1.Tape, t1.Token); ask child2 about
		// exactly that, never the original (possibly broader) target.
		matchedAny := false
		for _, t2 := range DQuery(s.child2, t1.Tape, t1.Token, stack) {
			if !t2.Matched {
				continue
			}
			matchedAny = true
			results = append(results, Transition{
				Tape:    t2.Tape,
				Token:   t2.Token,
				Matched: true,
				Next:    NewJoinState(t1.Next, t2.Next),
			})
		}
		if !matchedAny {
			// child2 doesn't address this tape either; child1's
			// transition passes through untouched.
			results = append(results, Transition{
				Tape:    t1.Tape,
				Token:   t1.Token,
				Matched: true,
				Next:    NewJoinState(t1.Next, s.child2),
			})
		}
	}

	// child1 had nothing at all to say here, not even a Matched=false
	// stay — which only happens once it's already Accepting and its
	// textQuery-style NDQuery has started returning nil outright. It
	// contributes nothing further, so the question passes to child2
	// unconstrained, exactly as ConcatState does when child1 is done and
	// child2 hasn't yielded yet.
	if len(t1s) == 0 && s.child1.Accepting(stack) {
		results = append(results, DQuery(s.child2, tape, target, stack)...)
	}

	return results
}
