package fstx

// Lit returns a state recognizing/emitting the literal text on tapeName.
func Lit(tapeName, text string) State {
	return NewLiteralState(tapeName, text)
}

// Literalizer partially applies Lit to a fixed tape, for grammars that
// build up many literals on the same tape.
func Literalizer(tapeName string) func(string) State {
	return func(text string) State {
		return Lit(tapeName, text)
	}
}

// Epsilon returns a state that matches the empty string on tapeName: sugar
// for Lit(tapeName, ""), useful as an explicit "nothing required here" leg
// of a Union.
func Epsilon(tapeName string) State {
	return Lit(tapeName, "")
}

// Any returns the "dot": a state recognizing/emitting any single
// registered character on tapeName.
func Any(tapeName string) State {
	return NewAnyCharState(tapeName)
}

// Seq concatenates children in order, right-branching: Seq(A,B,C) builds
// Concat(A, Concat(B, C)). Seq requires at least one child.
func Seq(children ...State) (State, error) {
	if len(children) == 0 {
		return nil, NewStateError("sequences must have at least 1 child")
	}
	if len(children) == 1 {
		return children[0], nil
	}
	rest, err := Seq(children[1:]...)
	if err != nil {
		return nil, err
	}
	return NewConcatState(children[0], rest), nil
}

// Uni offers a choice between children, right-branching: Uni(A,B,C) builds
// Union(A, Union(B, C)). Uni requires at least one child.
func Uni(children ...State) (State, error) {
	if len(children) == 0 {
		return nil, NewStateError("unions must have at least 1 child")
	}
	if len(children) == 1 {
		return children[0], nil
	}
	rest, err := Uni(children[1:]...)
	if err != nil {
		return nil, err
	}
	return NewUnionState(children[0], rest), nil
}

// Join intersects child1 and child2 on whatever tapes they share, and
// takes the product of whatever tapes only one of them addresses.
func Join(child1, child2 State) State {
	return NewJoinState(child1, child2)
}

// Embed refers to name as defined in table, permitting (bounded, see
// CounterStack) recursive self-reference.
func Embed(name string, table *SymbolTable) State {
	return NewEmbedState(name, table)
}
