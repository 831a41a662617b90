package fstx

// AnyCharState recognizes or emits any single registered character on one
// tape: the "dot" of a regular expression. It matches exactly once, then
// hands off to TrivialState.
type AnyCharState struct {
	tapeName string
}

// NewAnyCharState constructs the dot state for tapeName.
func NewAnyCharState(tapeName string) *AnyCharState {
	return &AnyCharState{tapeName: tapeName}
}

func (s *AnyCharState) ID() string { return s.tapeName + ":(ANY)" }

func (s *AnyCharState) Accepting(stack CounterStack) bool { return false }

func (s *AnyCharState) CollectVocab(tapes *TapeCollection, visiting []string) {}

func (s *AnyCharState) NDQuery(tape Tape, target Token, stack CounterStack) []Transition {
	return textQuery(s.tapeName, s.firstToken, s.successor, s.Accepting(stack), s, tape, target, stack)
}

func (s *AnyCharState) firstToken(tape Tape) Token { return tape.Any() }

func (s *AnyCharState) successor() State { return NewTrivialState() }
