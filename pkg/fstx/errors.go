package fstx

import "fmt"

// StateError reports a malformed grammar: an empty Seq/Uni, an Embed whose
// name is absent from its SymbolTable, or another construction-time defect.
// Seq and Uni return it at construction time; an Embed of an undefined name
// is not rejected by Embed itself but reported by ValidateSymbols. Generate
// never returns a StateError: during generation an Embed of an undefined
// name is simply never accepting and offers no transitions.
type StateError struct {
	Message string
}

func (e StateError) Error() string {
	return "fstx: state error: " + e.Message
}

// NewStateError builds a StateError with a formatted message.
func NewStateError(format string, args ...interface{}) StateError {
	return StateError{Message: fmt.Sprintf(format, args...)}
}

// TapeError reports a tape-level mismatch: a read or write against a tape
// name that does not match the operand's own tape (after renaming
// resolution), or an attempt to register a character past MaxNumChars.
type TapeError struct {
	Message string
}

func (e TapeError) Error() string {
	return "fstx: tape error: " + e.Message
}

// NewTapeError builds a TapeError with a formatted message.
func NewTapeError(format string, args ...interface{}) TapeError {
	return TapeError{Message: fmt.Sprintf(format, args...)}
}
