// Package errs defines the typed error kinds raised by the netlist parser,
// the stimulus/fault-list readers, and the ATPG search budget.
//
// Callers that need to branch on the kind of failure use errors.As against
// one of these concrete types instead of matching error-string substrings.
package errs

import "fmt"

// ParseError reports a malformed or unresolvable line in an ISCAS-85
// netlist file.
type ParseError struct {
	Line   int
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Detail)
}

// StructuralError reports a netlist that parsed but violates a structural
// invariant (cycle, fanin mismatch, missing primary output, ...).
type StructuralError struct {
	Address int
	Detail  string
}

func (e *StructuralError) Error() string {
	if e.Address != 0 {
		return fmt.Sprintf("structural error at gate %d: %s", e.Address, e.Detail)
	}
	return fmt.Sprintf("structural error: %s", e.Detail)
}

// StimulusError reports a malformed stimulus file: an unknown input
// address, an out-of-order time step, or an unrecognized value character.
type StimulusError struct {
	Line   int
	Detail string
}

func (e *StimulusError) Error() string {
	return fmt.Sprintf("stimulus error at line %d: %s", e.Line, e.Detail)
}

// BudgetExceededError reports that a PODEM search for a fault exhausted
// its backtrack budget without reaching success or exhaustive failure.
// ATPG treats this the same as "none found" in the report, but callers
// that care about the distinction can check for it with errors.As.
type BudgetExceededError struct {
	Fault   string
	Backtracks int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("ATPG budget exceeded for fault %s after %d backtracks", e.Fault, e.Backtracks)
}
