// Package netlist holds the immutable (post-construction) directed acyclic
// graph of gates that every other component in this repository operates
// over: the zero-delay evaluator, the event-driven simulator, the SCOAP
// engine, and the PODEM ATPG engine.
package netlist

import (
	"fmt"
	"math"

	"github.com/MatinHosseinianFard/logicbench/algebra"
)

// Gate is the atomic entity of a netlist. Its Output, CC0/CC1/CO, and
// Faulty/FaultValue fields are the only parts mutated after construction,
// by the evaluator, the SCOAP engine, and PODEM respectively.
type Gate struct {
	Address int
	Name    string
	Kind    algebra.Kind
	Fanin   int
	Fanout  int
	Delay   int

	Inputs []*Gate

	Output algebra.Value

	// CC0, CC1, CO are the SCOAP testability costs. They start at +Inf
	// (represented as InfCost, math.MaxInt32) until scoap.Compute runs.
	CC0, CC1, CO int

	// Faulty and FaultValue are set only while an atpg.Generator holds an
	// exclusive lease on the netlist for a single fault's search.
	Faulty     bool
	FaultValue algebra.Value
}

// InfCost is the SCOAP sentinel for "not yet computed" / "unreachable".
const InfCost = math.MaxInt32

func newGate(address int, name string, kind algebra.Kind, fanout, fanin int) *Gate {
	return &Gate{
		Address: address,
		Name:    name,
		Kind:    kind,
		Fanin:   fanin,
		Fanout:  fanout,
		Output:  algebra.Unknown,
		CC0:     InfCost,
		CC1:     InfCost,
		CO:      InfCost,
	}
}

// InputValues returns the current Output of every input gate, in order.
func (g *Gate) InputValues() []algebra.Value {
	vals := make([]algebra.Value, len(g.Inputs))
	for i, in := range g.Inputs {
		vals[i] = in.Output
	}
	return vals
}

func (g *Gate) String() string {
	return fmt.Sprintf("Gate %s (addr=%d kind=%s fanin=%d fanout=%d delay=%d output=%s)",
		g.Name, g.Address, g.Kind, g.Fanin, g.Fanout, g.Delay, g.Output)
}
