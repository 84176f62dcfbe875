package atpg

import (
	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/netlist"
)

// backtrace walks from (objGate, objVal) back to a primary input,
// flipping the target value at every inverting gate and choosing which
// unassigned child to descend into at every step. Written iteratively
// rather than as self-recursion: each loop iteration operates on the
// updated (gate, value) pair rather than the original objective.
func (g *Generator) backtrace(objGate *netlist.Gate, objVal algebra.Value) (*netlist.Gate, algebra.Value) {
	gate, val := objGate, objVal

	for gate.Kind != algebra.KindInput {
		want := val // the value wanted on this gate's output
		if gate.Kind.Inversion() {
			val = algebra.Opposite(val)
		}

		var next *netlist.Gate
		switch gate.Kind {
		case algebra.KindXor, algebra.KindXnor:
			next, val = xorTarget(gate, val)
		case algebra.KindNot, algebra.KindBuf, algebra.KindFanout:
			next = gate.Inputs[0]
		default:
			if isHardCombo(gate.Kind, want) {
				next = hardestChild(gate, val)
			} else {
				next = easiestChild(gate, val)
			}
		}

		if next == nil {
			// No unassigned child to descend into. This should not happen
			// for a well-formed objective; staying at the current gate lets
			// the caller's imply pass settle on whatever it can.
			break
		}
		gate = next
	}

	return gate, val
}

// isHardCombo reports the four (kind, wanted output) pairs where every
// input must cooperate to realize the target, so backtrace must descend
// via the hardest-to-satisfy child rather than the easiest: AND wanting
// 1, OR wanting 0, NAND wanting 0, NOR wanting 1.
func isHardCombo(k algebra.Kind, want algebra.Value) bool {
	switch {
	case k == algebra.KindAnd && want == algebra.One:
		return true
	case k == algebra.KindOr && want == algebra.Zero:
		return true
	case k == algebra.KindNand && want == algebra.Zero:
		return true
	case k == algebra.KindNor && want == algebra.One:
		return true
	default:
		return false
	}
}

// easiestChild returns the unassigned input with the lowest cost of
// reaching want, i.e. the one a single assignment is most likely to
// satisfy cheaply.
func easiestChild(gate *netlist.Gate, want algebra.Value) *netlist.Gate {
	var best *netlist.Gate
	bestCost := netlist.InfCost
	for _, in := range gate.Inputs {
		if in.Output != algebra.DontCare {
			continue
		}
		cost := cc(in, want)
		if cost < bestCost {
			bestCost, best = cost, in
		}
	}
	return best
}

// hardestChild returns the unassigned input with the highest cost of
// reaching want: when every input must eventually agree, tackling the
// hardest one first avoids discovering the infeasible assignment late.
func hardestChild(gate *netlist.Gate, want algebra.Value) *netlist.Gate {
	var best *netlist.Gate
	bestCost := -1
	for _, in := range gate.Inputs {
		if in.Output != algebra.DontCare {
			continue
		}
		cost := cc(in, want)
		if cost > bestCost {
			bestCost, best = cost, in
		}
	}
	return best
}

func cc(g *netlist.Gate, want algebra.Value) int {
	if want == algebra.One {
		return g.CC1
	}
	return g.CC0
}

// xorTarget resolves backtrace's descent through a (2-or-more-input) xor
// gate already normalized to xor semantics (xnor's inversion flip has
// already been applied by the caller), generalized beyond the 2-input
// case: the parity of the inputs already fixed to 1 determines, for each
// still-unassigned child, which value it would need to carry to complete
// the target parity; among those candidates, the cheapest one by SCOAP
// cost is chosen.
func xorTarget(gate *netlist.Gate, want algebra.Value) (*netlist.Gate, algebra.Value) {
	fixedOnes := 0
	var unassigned []*netlist.Gate
	for _, in := range gate.Inputs {
		switch in.Output {
		case algebra.DontCare:
			unassigned = append(unassigned, in)
		case algebra.One:
			fixedOnes++
		}
	}
	if len(unassigned) == 0 {
		return nil, want
	}

	// If every other unassigned child ends up 0, this child alone must
	// supply parity: decide what value it needs to carry to do that.
	needOne := (want == algebra.One) != (fixedOnes%2 == 1)
	target := algebra.Zero
	if needOne {
		target = algebra.One
	}

	best := unassigned[0]
	bestCost := cc(best, target)
	for _, in := range unassigned[1:] {
		if cost := cc(in, target); cost < bestCost {
			best, bestCost = in, cost
		}
	}
	return best, target
}
