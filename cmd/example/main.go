// Package main demonstrates basic fstx usage patterns.
//
// This example shows how to build grammars out of the core combinators
// and run them through Generate to enumerate their outputs.
package main

import (
	"context"
	"fmt"

	"github.com/gitrdm/fstx/pkg/fstx"
)

func main() {
	fmt.Println("=== fstx Examples ===")
	fmt.Println()

	literalMatch()
	unionChoice()
	sequence()
	multiTapeJoin()
	anyChar()
	recursion()
}

// literalMatch demonstrates the simplest possible grammar: a single fixed
// string on a single tape.
func literalMatch() {
	fmt.Println("1. Literal:")

	grammar := fstx.Lit("text", "hello")
	results, err := fstx.Generate(context.Background(), grammar, fstx.DefaultGenerateOptions())
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	fmt.Printf("   Lit(\"text\", \"hello\") => %v\n", results)
	fmt.Println()
}

// unionChoice demonstrates offering several alternatives.
func unionChoice() {
	fmt.Println("2. Union (Choice):")

	grammar, err := fstx.Uni(
		fstx.Lit("text", "cat"),
		fstx.Lit("text", "dog"),
		fstx.Lit("text", "bird"),
	)
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	results, err := fstx.Generate(context.Background(), grammar, fstx.DefaultGenerateOptions())
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	fmt.Printf("   cat|dog|bird => %v\n", results)
	fmt.Println()
}

// sequence demonstrates concatenation of a stem and a choice of suffixes,
// the basic shape of a morphological paradigm.
func sequence() {
	fmt.Println("3. Sequence:")

	suffix, err := fstx.Uni(fstx.Lit("text", "s"), fstx.Lit("text", "ed"), fstx.Epsilon("text"))
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}
	grammar, err := fstx.Seq(fstx.Lit("text", "walk"), suffix)
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	results, err := fstx.Generate(context.Background(), grammar, fstx.DefaultGenerateOptions())
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	fmt.Printf("   walk+(s|ed|ε) => %v\n", results)
	fmt.Println()
}

// multiTapeJoin demonstrates a two-tape grammar and querying it by joining
// with a literal built from the query itself.
func multiTapeJoin() {
	fmt.Println("4. Multi-tape Join (query-as-join):")

	pairs, err := fstx.Uni(
		mustSeq(fstx.Lit("text", "walks"), fstx.Lit("gloss", "PRES")),
		mustSeq(fstx.Lit("text", "walked"), fstx.Lit("gloss", "PAST")),
	)
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	query := fstx.Join(fstx.Lit("gloss", "PAST"), pairs)
	results, err := fstx.Generate(context.Background(), query, fstx.DefaultGenerateOptions())
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	fmt.Printf("   gloss=PAST joined with the paradigm => %v\n", results)
	fmt.Println()
}

// anyChar demonstrates the "dot": any single registered character.
func anyChar() {
	fmt.Println("5. AnyChar (dot):")

	grammar, err := fstx.Seq(fstx.Lit("text", "a"), fstx.Any("text"), fstx.Lit("text", "c"))
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}
	// Appending Epsilon registers no characters: AnyChar ranges only over
	// the characters the literals themselves register ("a" and "c").
	grammar, err = fstx.Seq(grammar, fstx.Epsilon("text"))
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	results, err := fstx.Generate(context.Background(), grammar, fstx.DefaultGenerateOptions())
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	fmt.Printf("   a.c => %v\n", results)
	fmt.Println()
}

// recursion demonstrates Embed: a rule that refers to itself, bounded by
// GenerateOptions.MaxRecursion.
func recursion() {
	fmt.Println("6. Recursion (Embed):")

	table := fstx.NewSymbolTable()
	body, err := fstx.Uni(
		mustSeq(fstx.Lit("text", "a"), fstx.Embed("S", table)),
		fstx.Epsilon("text"),
	)
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}
	table.Set("S", body)

	if err := fstx.ValidateSymbols(table); err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	opts := fstx.DefaultGenerateOptions()
	opts.MaxRecursion = 4
	results, err := fstx.Generate(context.Background(), fstx.Embed("S", table), opts)
	if err != nil {
		fmt.Printf("   error: %v\n", err)
		return
	}

	fmt.Printf("   S = a S | ε, maxRecursion=4 => %v\n", results)
	fmt.Println()
}

func mustSeq(children ...fstx.State) fstx.State {
	s, err := fstx.Seq(children...)
	if err != nil {
		panic(err)
	}
	return s
}
