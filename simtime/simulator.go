package simtime

import (
	"container/heap"
	"sort"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/internal/errs"
	"github.com/MatinHosseinianFard/logicbench/netlist"
)

// rescheduleSafetyBound caps the number of (re)scheduling operations a
// single Run performs. The netlist is acyclic by construction (checked at
// parse time), so a well-formed circuit can never approach this; tripping
// it means a scheduling bug re-inserted the same event past any sane
// bound, which is treated as a fatal structural error.
const rescheduleSafetyBound = 10_000_000

type gateState struct {
	pendingTime  int
	pendingValue algebra.Value
	hasPending   bool
}

// Trace is the time-indexed signal trace produced by Run: Times holds the
// logged time steps in increasing order (dense — every intervening
// integer step is present), and Snapshots maps a time to every gate's
// committed output at that time.
type Trace struct {
	Times     []int
	Snapshots map[int]map[int]algebra.Value
}

// Simulator drives one Netlist through a stimulus sequence. It is not
// safe for concurrent use by multiple goroutines, but distinct Simulator
// values over distinct Netlists require no coordination.
type Simulator struct {
	nl    *netlist.Netlist
	queue eventQueue
	state map[int]*gateState

	rescheduleCount int
}

// New creates a Simulator over nl. nl's gate outputs should already be at
// their reset value (algebra.Unknown); New does not reset them, so a
// caller can seed specific gates before the first stimulus if desired.
func New(nl *netlist.Netlist) *Simulator {
	s := &Simulator{
		nl:    nl,
		state: make(map[int]*gateState, len(nl.Order)),
	}
	for _, addr := range nl.Order {
		s.state[addr] = &gateState{}
	}
	return s
}

// Run drives the circuit through stimuli (sorted non-decreasingly by
// Time) and returns the resulting dense trace.
func (s *Simulator) Run(stimuli []Stimulus) (*Trace, error) {
	if err := validateStimuli(stimuli); err != nil {
		return nil, err
	}

	trace := &Trace{Snapshots: make(map[int]map[int]algebra.Value)}
	lastLogged := -1
	idx := 0

	for idx < len(stimuli) || s.queue.Len() > 0 {
		nextTime, ok := s.nextTime(stimuli, idx)
		if !ok {
			break
		}

		if idx < len(stimuli) && stimuli[idx].Time == nextTime {
			if err := s.applyStimulus(stimuli[idx], nextTime); err != nil {
				return nil, err
			}
			idx++
		}

		if err := s.drainEvents(nextTime); err != nil {
			return nil, err
		}

		s.logSnapshot(trace, nextTime, &lastLogged)
	}

	return trace, nil
}

func (s *Simulator) nextTime(stimuli []Stimulus, idx int) (int, bool) {
	haveStim := idx < len(stimuli)
	haveQueue := s.queue.Len() > 0

	switch {
	case haveStim && haveQueue:
		if stimuli[idx].Time < s.queue[0].Time {
			return stimuli[idx].Time, true
		}
		return s.queue[0].Time, true
	case haveStim:
		return stimuli[idx].Time, true
	case haveQueue:
		return s.queue[0].Time, true
	default:
		return 0, false
	}
}

func (s *Simulator) applyStimulus(st Stimulus, now int) error {
	for addr, v := range st.Values {
		g, ok := s.nl.Gate(addr)
		if !ok {
			return &errs.StimulusError{Detail: "unknown primary input address in stimulus"}
		}
		if g.Output == v {
			continue
		}
		g.Output = v
		for _, consumer := range s.nl.Consumers(g) {
			if err := s.schedule(consumer, now); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Simulator) drainEvents(now int) error {
	for s.queue.Len() > 0 && s.queue[0].Time == now {
		ev := heap.Pop(&s.queue).(Event)
		st := s.state[ev.Address]
		if !st.hasPending || st.pendingTime != ev.Time {
			continue // stale entry superseded by a later (re)scheduling
		}

		g, _ := s.nl.Gate(ev.Address)
		g.Output = st.pendingValue
		st.hasPending = false

		for _, consumer := range s.nl.Consumers(g) {
			if err := s.schedule(consumer, now); err != nil {
				return err
			}
		}
	}
	return nil
}

// schedule evaluates gate g against its inputs' current outputs and
// schedules the resulting pending_output to commit at now+g.Delay. A
// gate's local queue degenerates to a single pending slot: scheduling it
// again before the previous pending event fires overwrites that slot
// (inertial-delay coalescing), and the stale heap entry for the
// superseded (time, address) pair is discarded lazily when popped.
func (s *Simulator) schedule(g *netlist.Gate, now int) error {
	s.rescheduleCount++
	if s.rescheduleCount > rescheduleSafetyBound {
		return &errs.StructuralError{Address: g.Address, Detail: "rescheduling safety bound exceeded; netlist likely contains a cycle"}
	}

	pending := algebra.EvalBinary(g.Kind, g.InputValues())
	fireTime := now + g.Delay

	st := s.state[g.Address]
	st.pendingTime = fireTime
	st.pendingValue = pending
	st.hasPending = true

	heap.Push(&s.queue, Event{Time: fireTime, Address: g.Address})
	return nil
}

func (s *Simulator) logSnapshot(trace *Trace, now int, lastLogged *int) {
	if *lastLogged != -1 && now > *lastLogged+1 {
		prev := trace.Snapshots[*lastLogged]
		for t := *lastLogged + 1; t < now; t++ {
			trace.Snapshots[t] = prev
			trace.Times = append(trace.Times, t)
		}
	}

	snap := make(map[int]algebra.Value, len(s.nl.Order))
	for _, addr := range s.nl.Order {
		snap[addr] = s.nl.Gates[addr].Output
	}
	trace.Snapshots[now] = snap
	trace.Times = append(trace.Times, now)
	*lastLogged = now
}

func validateStimuli(stimuli []Stimulus) error {
	if !sort.SliceIsSorted(stimuli, func(i, j int) bool { return stimuli[i].Time < stimuli[j].Time }) {
		return &errs.StimulusError{Detail: "stimulus time steps are not non-decreasing"}
	}
	return nil
}
