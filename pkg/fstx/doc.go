// Package fstx implements a multi-tape, recursive, non-deterministic
// finite-state transduction engine.
//
// A grammar is a tree of State constructors (Literal, AnyChar, Trivial,
// Concat, Union, Join, Embed). Each tape is a named string channel with its
// own small alphabet; a single grammar can read/write several tapes at once,
// which is what makes it suitable for morphological description: one tape
// holds a surface form, another holds a gloss, further tapes hold additional
// analyses. The engine lazily enumerates all string tuples consistent with
// a grammar by breadth-first search over the product of its tapes.
//
// # Non-determinism and determinization
//
// Every State answers queries two ways:
//
//   - NDQuery returns every transition compatible with a requested tape and
//     character set, even when two of those transitions overlap (e.g. a
//     literal "q" and a dot that also matches "q").
//   - DQuery (provided once, as a free function over any NDQuery) folds
//     overlapping transitions from NDQuery into a disjoint partition, so
//     that a given character on a given tape leads to exactly one successor
//     (itself possibly a Union of what the overlapping branches would have
//     led to separately). This is the piece that makes Join and negation
//     behave correctly over ambiguous sub-grammars.
//
// # Recursion
//
// Grammars may recursively refer to themselves through Embed and a
// SymbolTable. A CounterStack bounds how many times any one named symbol
// may be re-entered during a single generation, which turns a left-
// recursive context-free grammar into a terminating, depth-bounded
// unfolding while still reflecting genuine infinitude at higher bounds.
//
// # Output
//
// Generated output is not a single string but a record across every tape
// touched by a run. Output is accumulated in persistent, reverse-linked
// tries (SingleTapeOutput per tape, MultiTapeOutput across tapes) so that
// the branching inherent in non-deterministic enumeration shares structure
// rather than copying it.
//
// The engine is single-threaded and fully synchronous: Generate performs a
// plain breadth-first traversal bounded by a character-step count and a
// recursion-depth count, with no goroutines of its own.
package fstx
