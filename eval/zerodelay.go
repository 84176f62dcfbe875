// Package eval implements the zero-delay logic evaluator: a single
// topological-order pass that computes every gate's output from a set of
// primary-input assignments, ignoring gate delay entirely.
package eval

import (
	"fmt"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/netlist"
)

// Run assigns inputs to the netlist's primary inputs (by address) and
// evaluates every gate exactly once, in declaration order, which the
// parser guarantees is a valid topological order. Primary inputs absent
// from the assignment keep their current Output unchanged.
//
// Run returns an error only when an address in inputs is not a gate of nl
// or names a gate that is not a primary input. A gate of unrecognized kind
// does not make Run fail: algebra.EvalBinary evaluates it to
// algebra.Unknown.
func Run(nl *netlist.Netlist, inputs map[int]algebra.Value) error {
	for addr, v := range inputs {
		g, ok := nl.Gate(addr)
		if !ok {
			return fmt.Errorf("eval: unknown primary input address %d", addr)
		}
		if g.Kind != algebra.KindInput {
			return fmt.Errorf("eval: address %d is not a primary input (kind=%s)", addr, g.Kind)
		}
		g.Output = v
	}

	for _, g := range nl.ByAddressOrder() {
		if g.Kind == algebra.KindInput {
			continue
		}
		g.Output = algebra.EvalBinary(g.Kind, g.InputValues())
	}
	return nil
}
