// Package scoap computes the Sandia Controllability/Observability Analysis
// Program testability measures: CC0/CC1 (controllability) in a forward
// pass, and CO (observability) in a backward pass.
package scoap

import (
	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/netlist"
)

// Compute runs both passes over nl, writing CC0/CC1/CO directly onto each
// Gate. It is idempotent: calling it again after PODEM or the simulator
// has run recomputes the same costs, since SCOAP depends only on netlist
// topology, never on Output.
func Compute(nl *netlist.Netlist) {
	forwardPass(nl)
	backwardPass(nl)
}

func forwardPass(nl *netlist.Netlist) {
	for _, g := range nl.ByAddressOrder() {
		switch g.Kind {
		case algebra.KindInput:
			g.CC0, g.CC1 = 1, 1
		case algebra.KindAnd:
			g.CC0 = minCC0(g.Inputs) + 1
			g.CC1 = sumCC1(g.Inputs) + 1
		case algebra.KindOr:
			g.CC0 = sumCC0(g.Inputs) + 1
			g.CC1 = minCC1(g.Inputs) + 1
		case algebra.KindNand:
			g.CC0 = sumCC1(g.Inputs) + 1
			g.CC1 = minCC0(g.Inputs) + 1
		case algebra.KindNor:
			g.CC0 = minCC1(g.Inputs) + 1
			g.CC1 = sumCC0(g.Inputs) + 1
		case algebra.KindXor:
			a, b := g.Inputs[0], g.Inputs[1]
			g.CC0 = minInt(a.CC0+b.CC0, a.CC1+b.CC1) + 1
			g.CC1 = minInt(a.CC0+b.CC1, a.CC1+b.CC0) + 1
		case algebra.KindXnor:
			a, b := g.Inputs[0], g.Inputs[1]
			g.CC0 = minInt(a.CC0+b.CC1, a.CC1+b.CC0) + 1
			g.CC1 = minInt(a.CC0+b.CC0, a.CC1+b.CC1) + 1
		case algebra.KindNot:
			g.CC0 = g.Inputs[0].CC1 + 1
			g.CC1 = g.Inputs[0].CC0 + 1
		case algebra.KindBuf, algebra.KindFanout:
			g.CC0 = g.Inputs[0].CC0
			g.CC1 = g.Inputs[0].CC1
		}
	}
}

// backwardPass charges CO in reverse declaration order. Every gate kind
// except fanout overwrites each input's CO on every visit rather than
// taking a running minimum; only at a fanout stem (where multiple
// branches reconverge onto one predecessor) is an explicit min applied,
// so an unconsumed sibling branch can't wipe out a better branch's
// contribution to the stem.
func backwardPass(nl *netlist.Netlist) {
	order := nl.ByAddressOrder()
	for i := len(order) - 1; i >= 0; i-- {
		g := order[i]

		if g.Fanout == 0 {
			g.CO = 0
		}

		switch g.Kind {
		case algebra.KindInput:
			continue
		case algebra.KindFanout:
			stem := g.Inputs[0]
			if len(nl.Consumers(g)) == 0 {
				// This branch is itself unconsumed (observed directly),
				// so it is as easy to observe as a primary output; it
				// does not, on its own, tell us anything about the
				// stem's best branch, which other branches still refine.
				g.CO = 0
			} else if g.CO < stem.CO {
				stem.CO = g.CO
			}
		case algebra.KindAnd, algebra.KindNand:
			total := sumCC1(g.Inputs)
			for _, in := range g.Inputs {
				in.CO = g.CO + (total - in.CC1) + 1
			}
		case algebra.KindOr, algebra.KindNor:
			total := sumCC0(g.Inputs)
			for _, in := range g.Inputs {
				in.CO = g.CO + (total - in.CC0) + 1
			}
		case algebra.KindXor, algebra.KindXnor:
			for i, in := range g.Inputs {
				minCC0, minCC1 := netlist.InfCost, netlist.InfCost
				for j, other := range g.Inputs {
					if j == i {
						continue
					}
					minCC0 = minInt(minCC0, other.CC0)
					minCC1 = minInt(minCC1, other.CC1)
				}
				in.CO = g.CO + minCC0 + minCC1 + 1
			}
		case algebra.KindNot, algebra.KindBuf:
			g.Inputs[0].CO = g.CO + 1
		}
	}
}

func minCC0(inputs []*netlist.Gate) int {
	m := netlist.InfCost
	for _, in := range inputs {
		m = minInt(m, in.CC0)
	}
	return m
}

func minCC1(inputs []*netlist.Gate) int {
	m := netlist.InfCost
	for _, in := range inputs {
		m = minInt(m, in.CC1)
	}
	return m
}

func sumCC0(inputs []*netlist.Gate) int {
	s := 0
	for _, in := range inputs {
		s += in.CC0
	}
	return s
}

func sumCC1(inputs []*netlist.Gate) int {
	s := 0
	for _, in := range inputs {
		s += in.CC1
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
