package netlist

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/internal/errs"
)

var (
	gateLineRE   = regexp.MustCompile(`^\s*(\d+)\s+(\S+)\s+([A-Za-z]\S*)\s+(\d+)\s+(\d+)(?:\s+(.*))?$`)
	fanoutLineRE = regexp.MustCompile(`^\s*(\d+)\s+(\S+)\s+from\s+(\d+)\S*(?:\s+(.*))?$`)
)

// ParseISCASFile opens and parses an ISCAS-85 netlist file.
func ParseISCASFile(path string) (*Netlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseISCAS(f)
}

// ParseISCAS reads an ISCAS-85 subset netlist from r. Gates are
// materialized in declaration order; a `from <stem>` line allocates a
// synthetic fanout gate whose sole input is the stem, named
// "<stem>_<k>" for the k-th branch of that stem. If a gate's declared
// fanin addresses are unresolved at line-processing time, parsing fails
// with an *errs.ParseError naming the offending line.
func ParseISCAS(r io.Reader) (*Netlist, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var order []*Gate
	byAddr := make(map[int]*Gate)
	fanoutCounter := make(map[string]int)

	var pending *Gate // the gate whose input-list line is expected next

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "*") || trimmed == "" {
			continue
		}

		if m := gateLineRE.FindStringSubmatch(line); m != nil {
			addr, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, &errs.ParseError{Line: lineNo, Detail: "malformed gate address: " + m[1]}
			}
			kind := algebra.Kind(m[3])
			switch kind {
			case algebra.KindInput, algebra.KindAnd, algebra.KindOr, algebra.KindNand, algebra.KindNor,
				algebra.KindXor, algebra.KindXnor, algebra.KindNot, algebra.KindBuf, algebra.KindFanout:
			default:
				return nil, &errs.ParseError{Line: lineNo, Detail: "unknown gate kind: " + m[3]}
			}
			fanout, err := strconv.Atoi(m[4])
			if err != nil {
				return nil, &errs.ParseError{Line: lineNo, Detail: "malformed fanout count: " + m[4]}
			}
			fanin, err := strconv.Atoi(m[5])
			if err != nil {
				return nil, &errs.ParseError{Line: lineNo, Detail: "malformed fanin count: " + m[5]}
			}

			g := newGate(addr, m[2], kind, fanout, fanin)
			byAddr[addr] = g
			order = append(order, g)
			pending = g
			continue
		}

		if m := fanoutLineRE.FindStringSubmatch(line); m != nil {
			branchAddr, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, &errs.ParseError{Line: lineNo, Detail: "malformed branch address: " + m[1]}
			}
			sourceAddr, err := strconv.Atoi(m[3])
			if err != nil {
				return nil, &errs.ParseError{Line: lineNo, Detail: "malformed stem address: " + m[3]}
			}
			stem, ok := byAddr[sourceAddr]
			if !ok {
				return nil, &errs.ParseError{Line: lineNo, Detail: "fanout branch references unresolved stem address " + m[3]}
			}

			fanoutCounter[stem.Name]++
			branchName := stem.Name + "_" + strconv.Itoa(fanoutCounter[stem.Name])

			branch := newGate(branchAddr, branchName, algebra.KindFanout, 1, 1)
			branch.Inputs = []*Gate{stem}
			byAddr[branchAddr] = branch
			order = append(order, branch)
			pending = nil
			continue
		}

		// Otherwise this is an input-list line for `pending`.
		if pending != nil {
			fields := strings.Fields(trimmed)
			parts := make([]int, 0, len(fields))
			for _, f := range fields {
				n, err := strconv.Atoi(f)
				if err != nil {
					return nil, &errs.ParseError{Line: lineNo, Detail: "malformed input-list entry: " + f}
				}
				parts = append(parts, n)
			}

			delay := 0
			if len(parts) == pending.Fanin+1 {
				delay = parts[len(parts)-1]
				parts = parts[:len(parts)-1]
			}

			inputs := make([]*Gate, 0, len(parts))
			for _, addr := range parts {
				in, ok := byAddr[addr]
				if !ok {
					return nil, &errs.ParseError{Line: lineNo, Detail: "unresolved input address " + strconv.Itoa(addr)}
				}
				inputs = append(inputs, in)
			}

			pending.Inputs = inputs
			pending.Delay = delay
			pending = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	nl := New(order)
	if err := validate(nl); err != nil {
		return nil, err
	}
	return nl, nil
}

func validate(nl *Netlist) error {
	if len(nl.PrimaryInputs) == 0 {
		return &errs.StructuralError{Detail: "netlist has no primary inputs"}
	}
	if len(nl.PrimaryOutputs) == 0 {
		return &errs.StructuralError{Detail: "netlist has no primary outputs"}
	}
	for _, addr := range nl.Order {
		g := nl.Gates[addr]
		if g.Kind == algebra.KindFanout && len(g.Inputs) != 1 {
			return &errs.StructuralError{Address: g.Address, Detail: "fanout gate must have exactly one input"}
		}
		if g.Kind != algebra.KindInput && len(g.Inputs) != g.Fanin {
			return &errs.StructuralError{
				Address: g.Address,
				Detail:  "declared fanin does not match bound input count",
			}
		}
	}
	if cyclic, addr := hasCycle(nl); cyclic {
		return &errs.StructuralError{Address: addr, Detail: "netlist contains a cycle"}
	}
	return nil
}

// hasCycle detects a cycle via DFS over the input edges (predecessor
// graph). The system targets combinational circuits only; any cycle is a
// fatal structural error, never a latched feedback loop.
func hasCycle(nl *Netlist) (bool, int) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[int]int, len(nl.Order))

	var visit func(g *Gate) bool
	visit = func(g *Gate) bool {
		color[g.Address] = gray
		for _, in := range g.Inputs {
			switch color[in.Address] {
			case gray:
				return true
			case white:
				if visit(in) {
					return true
				}
			}
		}
		color[g.Address] = black
		return false
	}

	for _, addr := range nl.Order {
		if color[addr] == white {
			if visit(nl.Gates[addr]) {
				return true, addr
			}
		}
	}
	return false, 0
}
