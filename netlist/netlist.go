package netlist

import (
	"github.com/MatinHosseinianFard/logicbench/algebra"
)

// Netlist is the read-mostly DAG of gates produced by ParseISCAS. Order
// holds gate addresses in declaration order, which the ISCAS convention
// guarantees is a valid topological order (predecessors are declared
// before consumers): every component that needs a topological scan (the
// zero-delay evaluator, SCOAP's forward pass, PODEM's implication) walks
// Order rather than ranging over the Gates map, whose iteration order Go
// does not guarantee.
type Netlist struct {
	Gates map[int]*Gate
	Order []int

	ByName map[string]*Gate

	PrimaryInputs  []*Gate
	PrimaryOutputs []*Gate

	// consumers maps a gate's address to the gates that take it as an
	// input, computed once at construction so that SCOAP's backward pass
	// and PODEM's X-path check do not each re-scan every gate.
	consumers map[int][]*Gate
}

// New builds a Netlist from already-linked gates in declaration order.
// Callers outside this package should use ParseISCAS; New is exported for
// programmatic netlist construction in tests.
func New(gates []*Gate) *Netlist {
	nl := &Netlist{
		Gates:     make(map[int]*Gate, len(gates)),
		Order:     make([]int, 0, len(gates)),
		ByName:    make(map[string]*Gate, len(gates)),
		consumers: make(map[int][]*Gate, len(gates)),
	}
	for _, g := range gates {
		nl.Gates[g.Address] = g
		nl.Order = append(nl.Order, g.Address)
		nl.ByName[g.Name] = g
	}
	nl.index()
	return nl
}

func (nl *Netlist) index() {
	for _, addr := range nl.Order {
		g := nl.Gates[addr]
		if g.Kind == algebra.KindInput {
			nl.PrimaryInputs = append(nl.PrimaryInputs, g)
		}
		if g.Fanout == 0 {
			nl.PrimaryOutputs = append(nl.PrimaryOutputs, g)
		}
		for _, in := range g.Inputs {
			nl.consumers[in.Address] = append(nl.consumers[in.Address], g)
		}
	}
}

// Consumers returns the gates that take g as a direct input.
func (nl *Netlist) Consumers(g *Gate) []*Gate {
	return nl.consumers[g.Address]
}

// Gate looks up a gate by address.
func (nl *Netlist) Gate(address int) (*Gate, bool) {
	g, ok := nl.Gates[address]
	return g, ok
}

// ByAddressOrder returns every gate in Order (topological/declaration
// order).
func (nl *Netlist) ByAddressOrder() []*Gate {
	gates := make([]*Gate, len(nl.Order))
	for i, addr := range nl.Order {
		gates[i] = nl.Gates[addr]
	}
	return gates
}

// ResetOutputs sets every gate's Output back to v (algebra.Unknown for the
// event/zero-delay simulators, algebra.DontCare for a fresh PODEM search).
func (nl *Netlist) ResetOutputs(v algebra.Value) {
	for _, addr := range nl.Order {
		nl.Gates[addr].Output = v
	}
}

// ResetFaults clears every gate's Faulty/FaultValue flags.
func (nl *Netlist) ResetFaults() {
	for _, addr := range nl.Order {
		g := nl.Gates[addr]
		g.Faulty = false
		g.FaultValue = ""
	}
}

// Clone returns a deep copy of nl: independent Gate values wired to each
// other the same way, with CC0/CC1/CO and Output copied verbatim. Used by
// the batch fault runner (session.Session) to give each concurrent
// atpg.Generator its own netlist instance, since PODEM mutates gate
// outputs and fault flags in place and forbids reentrant sharing.
func (nl *Netlist) Clone() *Netlist {
	copies := make(map[int]*Gate, len(nl.Order))
	for _, addr := range nl.Order {
		src := nl.Gates[addr]
		copies[addr] = &Gate{
			Address:    src.Address,
			Name:       src.Name,
			Kind:       src.Kind,
			Fanin:      src.Fanin,
			Fanout:     src.Fanout,
			Delay:      src.Delay,
			Output:     src.Output,
			CC0:        src.CC0,
			CC1:        src.CC1,
			CO:         src.CO,
			Faulty:     src.Faulty,
			FaultValue: src.FaultValue,
		}
	}
	gates := make([]*Gate, 0, len(nl.Order))
	for _, addr := range nl.Order {
		g := copies[addr]
		for _, in := range nl.Gates[addr].Inputs {
			g.Inputs = append(g.Inputs, copies[in.Address])
		}
		gates = append(gates, g)
	}
	return New(gates)
}
