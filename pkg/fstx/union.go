package fstx

// UnionState represents a choice between two grammars. Unlike Concat,
// Union never needs to construct a successor UnionState: once a query is
// answered by one child or the other, the next state is just that child's
// own successor.
type UnionState struct {
	child1 State
	child2 State
}

// NewUnionState builds the state for child1 or child2.
func NewUnionState(child1, child2 State) *UnionState {
	return &UnionState{child1: child1, child2: child2}
}

func (s *UnionState) ID() string { return "Union(" + s.child1.ID() + "," + s.child2.ID() + ")" }

func (s *UnionState) Accepting(stack CounterStack) bool {
	return s.child1.Accepting(stack) || s.child2.Accepting(stack)
}

func (s *UnionState) CollectVocab(tapes *TapeCollection, visiting []string) {
	s.child1.CollectVocab(tapes, visiting)
	s.child2.CollectVocab(tapes, visiting)
}

func (s *UnionState) NDQuery(tape Tape, target Token, stack CounterStack) []Transition {
	results := DQuery(s.child1, tape, target, stack)
	results = append(results, DQuery(s.child2, tape, target, stack)...)
	return results
}
