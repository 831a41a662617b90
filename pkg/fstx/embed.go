package fstx

// SymbolTable maps rule names to the States that define them, so that an
// EmbedState can refer to a rule by name before that rule's own State has
// necessarily finished being constructed — the only way a grammar can
// refer to itself. Callers populate a SymbolTable completely before
// calling Generate; EmbedState only ever reads from it.
type SymbolTable struct {
	entries map[string]State
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[string]State)}
}

// Set defines (or redefines) name's State.
func (t *SymbolTable) Set(name string, s State) {
	t.entries[name] = s
}

// Get returns name's State and whether it was defined.
func (t *SymbolTable) Get(name string) (State, bool) {
	s, ok := t.entries[name]
	return s, ok
}

// Names returns every defined rule name, for validation purposes.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for n := range t.entries {
		names = append(names, n)
	}
	return names
}

// EmbedState refers to a named rule in a SymbolTable, allowing one grammar
// to be embedded inside another — including inside itself, which is how
// context-free recursion enters an otherwise-regular system. Because a
// self-referencing rule could otherwise expand forever, every expansion is
// checked against the CounterStack's ceiling first (CounterStack.Add,
// CounterStack.ExceedsMax): once a name has been expanded stack.max times
// along a given search branch, further attempts to re-embed that name
// simply offer no transitions, which prunes that branch instead of
// recursing again.
//
// A subtlety: Generate's BFS passes the same un-bumped CounterStack to
// every top-level query in every round, since bumping only ever happens
// inside a query itself, not across rounds. If a query merely forwarded
// that ambient stack straight through, a name's recursion count would
// reset every round and the ceiling would never bind. Instead, the moment
// an EmbedState is entered, it bumps its own CounterStack and closes over
// the bumped value in an embedFrame, which then *ignores* whatever
// CounterStack it is handed by later queries and keeps using the value it
// captured — so depth accumulated while descending into a rule persists
// for as long as that search branch stays inside the rule, independent of
// how many BFS rounds that takes.
type EmbedState struct {
	name  string
	table *SymbolTable
}

// NewEmbedState refers to name as defined in table.
func NewEmbedState(name string, table *SymbolTable) *EmbedState {
	return &EmbedState{name: name, table: table}
}

func (s *EmbedState) ID() string { return "Embed(" + s.name + ")" }

// Accepting delegates to the referenced rule under the incremented
// counter, but — unlike NDQuery — does not itself refuse once a name has
// been re-entered stack.max times. Guarding Accepting the same way NDQuery
// guards expansion is an off-by-one trap: it would refuse the very last
// (depth == max) acceptance that NDQuery's own bound was designed to still
// allow, since a rule's non-recursive alternative (its base case) doesn't
// stop being reachable just because the recursive alternative has been
// exhausted. A rule with no non-recursive alternative at all (pure
// "S = Embed(S)", no base case) recurses here without bound; that grammar
// never terminates under any semantics and is left unguarded.
func (s *EmbedState) Accepting(stack CounterStack) bool {
	inner, ok := s.table.Get(s.name)
	if !ok {
		return false
	}
	return inner.Accepting(stack.Add(s.name))
}

func (s *EmbedState) NDQuery(tape Tape, target Token, stack CounterStack) []Transition {
	if stack.ExceedsMax(s.name) {
		return nil
	}
	inner, ok := s.table.Get(s.name)
	if !ok {
		return nil
	}
	bumped := stack.Add(s.name)
	var results []Transition
	for _, t := range DQuery(inner, tape, target, bumped) {
		results = append(results, Transition{
			Tape:    t.Tape,
			Token:   t.Token,
			Matched: t.Matched,
			Next:    &embedFrame{inner: t.Next, stack: bumped, name: s.name},
		})
	}
	return results
}

// CollectVocab recurses into the named rule's vocabulary once per name per
// branch; visiting tracks names already being collected on this branch so
// that a self-referencing rule doesn't recurse forever just to gather its
// own alphabet, which (being fixed) only needs collecting once.
func (s *EmbedState) CollectVocab(tapes *TapeCollection, visiting []string) {
	for _, v := range visiting {
		if v == s.name {
			return
		}
	}
	inner, ok := s.table.Get(s.name)
	if !ok {
		return
	}
	inner.CollectVocab(tapes, append(visiting, s.name))
}

// embedFrame is the State reached partway through expanding an EmbedState.
// It carries the CounterStack captured at the moment its rule was entered,
// and forces every subsequent query down into that rule to use the
// captured stack rather than whatever stack the ambient driver supplies —
// see EmbedState's doc comment for why.
type embedFrame struct {
	inner State
	stack CounterStack
	name  string
}

func (f *embedFrame) ID() string { return "Embed<" + f.name + ">(" + f.inner.ID() + ")" }

func (f *embedFrame) Accepting(_ CounterStack) bool {
	return f.inner.Accepting(f.stack)
}

func (f *embedFrame) CollectVocab(tapes *TapeCollection, visiting []string) {}

func (f *embedFrame) NDQuery(tape Tape, target Token, _ CounterStack) []Transition {
	var results []Transition
	for _, t := range DQuery(f.inner, tape, target, f.stack) {
		results = append(results, Transition{
			Tape:    t.Tape,
			Token:   t.Token,
			Matched: t.Matched,
			Next:    &embedFrame{inner: t.Next, stack: f.stack, name: f.name},
		})
	}
	return results
}
