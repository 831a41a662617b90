package fstx

// textQuery implements the query template shared by LiteralState and
// AnyCharState: both match a single token against a single named tape and
// then hand off to a successor; they differ only in which token they match
// first and what state follows. Neither can be queried before
// CollectVocab has tokenized its text against the grammar's full alphabet.
func textQuery(tapeName string, firstToken func(Tape) Token, successor func() State, accepting bool, self State, tape Tape, target Token, stack CounterStack) []Transition {
	matchedTape := tape.MatchTape(tapeName)
	if matchedTape == nil {
		return []Transition{{Tape: tape, Token: target, Matched: false, Next: self}}
	}
	if accepting {
		return nil
	}
	bits := firstToken(matchedTape)
	result := matchedTape.Match(bits, target)
	return []Transition{{Tape: matchedTape, Token: result, Matched: true, Next: successor()}}
}

// LiteralState recognizes or emits a fixed string on one tape, character
// by character: matching the first character of text produces a
// LiteralState for what remains, until the text is exhausted and the state
// becomes accepting.
type LiteralState struct {
	tapeName string
	text     string
	tokens   []Token
	tapes    Tape
}

// NewLiteralState constructs a LiteralState for text on tapeName. Its
// tokens are filled in lazily by CollectVocab, since tokenizing registers
// its characters in the grammar's shared TapeCollection.
func NewLiteralState(tapeName, text string) *LiteralState {
	return &LiteralState{tapeName: tapeName, text: text}
}

func (s *LiteralState) ID() string { return s.tapeName + ":" + s.text }

func (s *LiteralState) Accepting(stack CounterStack) bool {
	return len(s.tokens) == 0
}

func (s *LiteralState) CollectVocab(tapes *TapeCollection, visiting []string) {
	tokens, err := tapes.Tokenize(s.tapeName, s.text)
	if err != nil {
		return
	}
	s.tokens = tokens
	s.tapes = tapes
}

func (s *LiteralState) NDQuery(tape Tape, target Token, stack CounterStack) []Transition {
	return textQuery(s.tapeName, s.firstToken, s.successor, s.Accepting(stack), s, tape, target, stack)
}

func (s *LiteralState) firstToken(tape Tape) Token {
	return s.tokens[0]
}

func (s *LiteralState) successor() State {
	newTokens := s.tokens[1:]
	firstChars, err := s.tapes.FromBits(s.tapeName, s.tokens[0])
	if err != nil {
		return NewTrivialState()
	}
	consumed := 0
	for _, c := range firstChars {
		consumed += len(c)
		break
	}
	newText := s.text[consumed:]
	return &LiteralState{tapeName: s.tapeName, text: newText, tokens: newTokens, tapes: s.tapes}
}
