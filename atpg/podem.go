// Package atpg implements the PODEM-style automatic test-pattern
// generator: a recursive depth-first search over primary-input
// assignments, guided by SCOAP costs, that drives a single stuck-at fault
// to a primary output under D-algebra evaluation.
package atpg

import (
	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/internal/errs"
	"github.com/MatinHosseinianFard/logicbench/netlist"
)

// DefaultBacktrackBudget bounds the search when a caller does not supply
// one. It converts the theoretical 2^|PI| worst case into a defined
// failure rather than an unbounded search.
const DefaultBacktrackBudget = 50_000

// Fault names a single stuck-at fault site by net name, the same
// addressing scheme as the fault-list file format.
type Fault struct {
	NetName string
	StuckAt algebra.Value // algebra.Zero or algebra.One
}

// Generator holds the exclusive, scoped lease on one Netlist required to
// run PODEM: only one Generator may be active over a given Netlist at a
// time, but distinct Generators over distinct Netlists need no
// coordination, which is what lets session.Session fan a fault list out
// across goroutines, one Generator per circuit clone.
type Generator struct {
	nl     *netlist.Netlist
	budget int

	faultGate  *netlist.Gate
	activated  bool
	backtracks int
	faultName  string
}

// NewGenerator returns a Generator with the given backtrack budget. A
// budget <= 0 uses DefaultBacktrackBudget.
func NewGenerator(nl *netlist.Netlist, budget int) *Generator {
	if budget <= 0 {
		budget = DefaultBacktrackBudget
	}
	return &Generator{nl: nl, budget: budget}
}

// Generate searches for a primary-input assignment that detects fault.
// On success it returns the pattern (one value per nl.PrimaryInputs,
// same order) and true. On normal ATPG failure ("the fault is
// undetectable") it returns (nil, false, nil) — callers report this as
// "none found" rather than treating it as an error. A non-nil
// error is either a *errs.StructuralError (unknown net name) or a
// *errs.BudgetExceededError, which callers may still choose to report as
// "none found" while logging the distinction.
func (g *Generator) Generate(fault Fault) ([]algebra.Value, bool, error) {
	faultGate, ok := g.nl.ByName[fault.NetName]
	if !ok {
		return nil, false, &errs.StructuralError{Detail: "fault list references unknown net " + fault.NetName}
	}

	g.nl.ResetOutputs(algebra.DontCare)
	g.nl.ResetFaults()
	faultGate.Faulty = true
	faultGate.FaultValue = fault.StuckAt
	defer func() {
		faultGate.Faulty = false
		faultGate.FaultValue = ""
	}()

	g.faultGate = faultGate
	g.activated = false
	g.backtracks = 0
	g.faultName = fault.NetName

	g.imply()

	found, err := g.recurse()
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return g.collectPattern(), true, nil
}

func (g *Generator) collectPattern() []algebra.Value {
	pattern := make([]algebra.Value, len(g.nl.PrimaryInputs))
	for i, pi := range g.nl.PrimaryInputs {
		switch pi.Output {
		case algebra.D:
			pattern[i] = algebra.One
		case algebra.DPrime:
			pattern[i] = algebra.Zero
		default:
			pattern[i] = pi.Output
		}
	}
	return pattern
}

func (g *Generator) recurse() (bool, error) {
	if g.success() {
		return true, nil
	}

	g.backtracks++
	if g.backtracks > g.budget {
		return false, &errs.BudgetExceededError{Fault: g.faultName, Backtracks: g.backtracks}
	}

	objGate, objVal, ok := g.objective()
	if !ok {
		return false, nil
	}

	targetPI, targetVal := g.backtrace(objGate, objVal)

	targetPI.Output = targetVal
	g.imply()
	if ok, err := g.recurse(); err != nil || ok {
		return ok, err
	}

	targetPI.Output = algebra.Opposite(targetVal)
	g.imply()
	if ok, err := g.recurse(); err != nil || ok {
		return ok, err
	}

	targetPI.Output = algebra.DontCare
	g.imply()
	return false, nil
}

// success reports whether any primary output currently carries a fault
// discrepancy.
func (g *Generator) success() bool {
	for _, po := range g.nl.PrimaryOutputs {
		if po.Output.IsDiscrepancy() {
			return true
		}
	}
	return false
}

// objective picks the next primary-input target to assign: before the
// fault site activates, it targets the fault gate itself; afterward, it
// targets the cheapest-to-observe gate on the D-frontier.
func (g *Generator) objective() (objGate *netlist.Gate, objVal algebra.Value, ok bool) {
	if g.faultGate.Output.IsDiscrepancy() {
		g.activated = true
	}

	if !g.activated {
		if g.faultGate.Output.IsBinary() {
			return nil, "", false
		}
		return g.faultGate, algebra.Opposite(g.faultGate.FaultValue), true
	}

	frontier := g.dFrontier()
	if len(frontier) == 0 {
		return nil, "", false
	}

	best := frontier[0]
	for _, c := range frontier[1:] {
		if c.CO < best.CO {
			best = c
		}
	}

	for _, in := range best.Inputs {
		if in.Output == algebra.DontCare {
			return in, best.Kind.NonControllingValue(), true
		}
	}
	return nil, "", false
}

// dFrontier returns every gate with an unassigned (X) output and at least
// one D/D' input, filtered by the X-path check.
func (g *Generator) dFrontier() []*netlist.Gate {
	var frontier []*netlist.Gate
	for _, gate := range g.nl.ByAddressOrder() {
		if gate.Output != algebra.DontCare {
			continue
		}
		hasDiscrepancyInput := false
		for _, in := range gate.Inputs {
			if in.Output.IsDiscrepancy() {
				hasDiscrepancyInput = true
				break
			}
		}
		if hasDiscrepancyInput && g.xPathCheck(gate) {
			frontier = append(frontier, gate)
		}
	}
	return frontier
}

// xPathCheck performs a BFS over consumers of start, returning true if a
// forward path exists to a primary output along lines whose value is
// still X or a discrepancy.
func (g *Generator) xPathCheck(start *netlist.Gate) bool {
	visited := make(map[int]bool)
	queue := []*netlist.Gate{start}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited[node.Address] {
			continue
		}
		visited[node.Address] = true

		if node.Fanout == 0 {
			return true
		}
		for _, c := range g.nl.Consumers(node) {
			if c.Output == algebra.DontCare || c.Output.IsDiscrepancy() {
				queue = append(queue, c)
			}
		}
	}
	return false
}

// imply propagates D-algebra evaluation to a fixed point: iterate every
// gate in declaration order until a full pass produces no output change.
// Acyclicity bounds convergence to the graph's longest path.
func (g *Generator) imply() {
	gates := g.nl.ByAddressOrder()
	for {
		changed := false
		for _, gate := range gates {
			if gate.Kind == algebra.KindInput {
				continue
			}
			computed := algebra.EvalD(gate.Kind, gate.InputValues())
			if gate.Faulty {
				computed = algebra.InjectFault(gate.FaultValue, computed)
			}
			if computed != gate.Output {
				gate.Output = computed
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}
