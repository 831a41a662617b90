package fstx

import (
	"context"
	"log"
	"os"
)

// Logger receives diagnostic output from Generate, in particular the
// warning the original state machine prints to stderr when a transition
// claims to have matched nothing: logged rather than treated as fatal,
// since it likely indicates a tape that no part of the grammar addresses
// rather than a crash-worthy condition.
type Logger interface {
	Printf(format string, args ...interface{})
}

// defaultLogger writes to stderr, matching where the original reference
// implementation sends this same warning.
var defaultLogger Logger = log.New(os.Stderr, "", 0)

// GenerateOptions configures a Generate/GenerateStream run. A MaxRecursion
// or MaxChars of 0 (or less), as in the zero value, is replaced by the
// corresponding DefaultGenerateOptions value when the run starts.
type GenerateOptions struct {
	// MaxRecursion bounds how many times any single named rule may be
	// re-entered via Embed along one search branch; see CounterStack.
	MaxRecursion int

	// MaxChars bounds the number of BFS rounds (roughly, the length of
	// the longest output any tape can accumulate) before generation
	// stops even if unexplored branches remain.
	MaxChars int

	// TapeOrder fixes the order tape names are folded into each
	// result's Cartesian product, for deterministic output ordering.
	// Tapes not named here follow in sorted order.
	TapeOrder []string

	// Logger receives diagnostic warnings. If nil, warnings go to
	// stderr.
	Logger Logger
}

// DefaultGenerateOptions matches the reference implementation's defaults:
// up to 4 levels of Embed recursion, up to 1000 BFS rounds.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{MaxRecursion: 4, MaxChars: 1000}
}

type searchNode struct {
	output *MultiTapeOutput
	state  State
}

// Generate performs a breadth-first traversal of start's state graph and
// returns every complete parse/generation it finds, each as one
// StringRecord mapping every tape it wrote to that tape's string. There is no corresponding "parse" entry point:
// to query a grammar against a specific input, Join a literal grammar
// built from that input with the grammar and Generate from the join —
// the query's own tape constraints do the narrowing.
//
// ctx is checked once per BFS round, not per state: cancelling it stops
// the search at the next round boundary and returns ctx.Err(). The engine
// itself never spawns goroutines; ctx is a cooperative cancellation point
// only, matching how the teacher's own goal combinators treat ctx.Done()
// as a check rather than a signal driving concurrency.
func Generate(ctx context.Context, start State, opts GenerateOptions) ([]StringRecord, error) {
	var results []StringRecord
	err := generate(ctx, start, opts, func(rec StringRecord) bool {
		results = append(results, rec)
		return true
	})
	return results, err
}

// GenerateStream is Generate's incremental form: visit is called once per
// complete parse, in the order found, and traversal stops early if visit
// returns false.
func GenerateStream(ctx context.Context, start State, opts GenerateOptions, visit func(StringRecord) bool) error {
	return generate(ctx, start, opts, visit)
}

func generate(ctx context.Context, start State, opts GenerateOptions, visit func(StringRecord) bool) error {
	if opts.MaxRecursion <= 0 {
		opts.MaxRecursion = DefaultGenerateOptions().MaxRecursion
	}
	if opts.MaxChars <= 0 {
		opts.MaxChars = DefaultGenerateOptions().MaxChars
	}
	logger := opts.Logger
	if logger == nil {
		logger = defaultLogger
	}

	allTapes := NewTapeCollection()
	start.CollectVocab(allTapes, nil)

	stack := NewCounterStack(opts.MaxRecursion)
	queue := []searchNode{{output: NewMultiTapeOutput(), state: start}}

	chars := 0
	for len(queue) > 0 && chars < opts.MaxChars {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var next []searchNode
		for _, node := range queue {
			if node.state.Accepting(stack) {
				recs, err := node.output.ToStrings(opts.TapeOrder)
				if err != nil {
					return err
				}
				for _, rec := range recs {
					if !visit(rec) {
						return nil
					}
				}
			}
			for _, t := range DQuery(node.state, allTapes, AnyChar, stack) {
				if !t.Matched {
					logger.Printf("fstx: got all the way through without a match")
					continue
				}
				nextOutput, err := node.output.Add(t.Tape, t.Token)
				if err != nil {
					return err
				}
				next = append(next, searchNode{output: nextOutput, state: t.Next})
			}
		}
		queue = next
		chars++
	}
	return nil
}

// ValidateSymbols fails with a StateError naming the first unresolved
// reference it finds if any rule in table embeds a name that table itself
// does not define. Call this once, after a SymbolTable has been fully
// populated and before Generate, since a self-referencing grammar's
// EmbedState nodes cannot be validated individually at construction time
// — the very name an early rule embeds may only be defined by a rule
// added to the table afterward.
func ValidateSymbols(table *SymbolTable) error {
	for _, name := range table.Names() {
		state, _ := table.Get(name)
		if err := validateEmbeds(state, table, nil); err != nil {
			return err
		}
	}
	return nil
}

func validateEmbeds(s State, table *SymbolTable, visiting []string) error {
	switch st := s.(type) {
	case *EmbedState:
		if _, ok := table.Get(st.name); !ok {
			return NewStateError("embed refers to undefined symbol %q", st.name)
		}
		for _, v := range visiting {
			if v == st.name {
				return nil
			}
		}
		inner, _ := table.Get(st.name)
		return validateEmbeds(inner, table, append(visiting, st.name))
	case *ConcatState:
		if err := validateEmbeds(st.child1, table, visiting); err != nil {
			return err
		}
		return validateEmbeds(st.child2, table, visiting)
	case *UnionState:
		if err := validateEmbeds(st.child1, table, visiting); err != nil {
			return err
		}
		return validateEmbeds(st.child2, table, visiting)
	case *JoinState:
		if err := validateEmbeds(st.child1, table, visiting); err != nil {
			return err
		}
		return validateEmbeds(st.child2, table, visiting)
	default:
		return nil
	}
}
