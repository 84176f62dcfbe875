// Package session provides a single-circuit run context wrapping one
// *netlist.Netlist with entry points for each of the workbench's cores,
// plus a concurrent batch fault runner built on
// golang.org/x/sync/errgroup for multi-circuit regression sweeps.
package session

import (
	"context"
	"errors"
	"runtime"

	"github.com/rs/xid"
	"golang.org/x/sync/errgroup"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/atpg"
	"github.com/MatinHosseinianFard/logicbench/eval"
	"github.com/MatinHosseinianFard/logicbench/internal/errs"
	"github.com/MatinHosseinianFard/logicbench/netlist"
	"github.com/MatinHosseinianFard/logicbench/report"
	"github.com/MatinHosseinianFard/logicbench/scoap"
	"github.com/MatinHosseinianFard/logicbench/simtime"
)

// Session owns one netlist and exposes every core operation as an
// independent call: Simulate and GenerateTests each construct their own
// simtime.Simulator or atpg.Generator value. Trace, Simulate, ComputeSCOAP
// and GenerateTests all read and write the session's single netlist, so
// concurrent calls on one Session race on it; RunFaultBatch is the
// exception, giving each goroutine its own netlist clone.
type Session struct {
	ID xid.ID
	nl *netlist.Netlist
}

// New wraps nl in a Session, stamping it with a sortable run ID (ID). No
// report writer in this repository prints the ID.
func New(nl *netlist.Netlist) *Session {
	return &Session{ID: xid.New(), nl: nl}
}

// Netlist returns the underlying netlist, for callers that need direct
// access (report rendering, inspection).
func (s *Session) Netlist() *netlist.Netlist {
	return s.nl
}

// Trace runs the zero-delay evaluator over inputs.
func (s *Session) Trace(inputs map[int]algebra.Value) error {
	return eval.Run(s.nl, inputs)
}

// Simulate runs the event-driven simulator over stimuli, returning
// the resulting dense trace.
func (s *Session) Simulate(stimuli []simtime.Stimulus) (*simtime.Trace, error) {
	sim := simtime.New(s.nl)
	return sim.Run(stimuli)
}

// ComputeSCOAP runs the SCOAP engine over the session's netlist.
// It is idempotent and safe to call again after Simulate or GenerateTests
// has mutated gate outputs, since SCOAP depends only on topology.
func (s *Session) ComputeSCOAP() {
	scoap.Compute(s.nl)
}

// GenerateTests runs PODEM for a single fault, recomputing SCOAP over
// the session's netlist first on every call. budget <= 0 uses
// atpg.DefaultBacktrackBudget.
func (s *Session) GenerateTests(fault atpg.Fault, budget int) ([]algebra.Value, bool, error) {
	scoap.Compute(s.nl)
	gen := atpg.NewGenerator(s.nl, budget)
	return gen.Generate(fault)
}

// RunFaultBatch runs PODEM for every fault in faults concurrently, one
// atpg.Generator per goroutine over its own netlist clone, bounded by
// runtime.GOMAXPROCS. A *errs.BudgetExceededError from any single
// fault is recorded as "not found" rather than aborting the batch,
// matching ATPG's "undetectable is a normal outcome" rule; any other
// error aborts the whole batch.
func (s *Session) RunFaultBatch(ctx context.Context, faults []atpg.Fault, budget int) ([]report.FaultResult, error) {
	results := make([]report.FaultResult, len(faults))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, fault := range faults {
		i, fault := i, fault
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			clone := s.nl.Clone()
			scoap.Compute(clone)
			gen := atpg.NewGenerator(clone, budget)

			pattern, found, err := gen.Generate(fault)
			if err != nil {
				var budgetErr *errs.BudgetExceededError
				if errors.As(err, &budgetErr) {
					results[i] = report.FaultResult{Fault: fault, Found: false}
					return nil
				}
				return err
			}
			results[i] = report.FaultResult{Fault: fault, Pattern: pattern, Found: found}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
