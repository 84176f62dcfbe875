// Package report renders workbench results as tables using
// github.com/jedib0t/go-pretty/v6/table.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/atpg"
	"github.com/MatinHosseinianFard/logicbench/netlist"
	"github.com/MatinHosseinianFard/logicbench/simtime"
)

// FaultResult pairs one requested fault with its ATPG outcome: Pattern is
// nil and Found is false whenever PODEM reports "none found" or exhausts
// its backtrack budget — both render identically.
type FaultResult struct {
	Fault   atpg.Fault
	Pattern []algebra.Value
	Found   bool
}

// WriteTrace renders the dense signal trace produced by simtime.Run as a
// "Gate Outputs" table: one row per logged time step, one column per
// gate address in topological order.
func WriteTrace(w io.Writer, nl *netlist.Netlist, trace *simtime.Trace) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Gate Outputs")

	header := table.Row{"Time"}
	for _, addr := range nl.Order {
		header = append(header, nl.Gates[addr].Name)
	}
	t.AppendHeader(header)

	for _, time := range trace.Times {
		row := table.Row{time}
		snap := trace.Snapshots[time]
		for _, addr := range nl.Order {
			row = append(row, string(snap[addr]))
		}
		t.AppendRow(row)
	}

	t.Render()
}

// WriteTestVectors renders a single generated pattern as a "Test Vectors"
// table: one column per primary input and one row of values.
func WriteTestVectors(w io.Writer, nl *netlist.Netlist, pattern []algebra.Value) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Test Vectors")

	header := table.Row{}
	row := table.Row{}
	for i, pi := range nl.PrimaryInputs {
		header = append(header, pi.Name)
		if i < len(pattern) {
			row = append(row, string(pattern[i]))
		} else {
			row = append(row, "")
		}
	}
	t.AppendHeader(header)
	t.AppendRow(row)

	t.Render()
}

// WriteATPG renders the per-fault ATPG report: net name, fault type, and
// the space-separated pattern, or the literal "none found".
func WriteATPG(w io.Writer, nl *netlist.Netlist, results []FaultResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("ATPG Report")
	t.AppendHeader(table.Row{"Net", "Fault", "Pattern"})

	for _, r := range results {
		faultType := "sa0"
		if r.Fault.StuckAt == algebra.One {
			faultType = "sa1"
		}
		pattern := "none found"
		if r.Found {
			pattern = formatPattern(r.Pattern)
		}
		t.AppendRow(table.Row{r.Fault.NetName, faultType, pattern})
	}

	t.Render()
}

func formatPattern(values []algebra.Value) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += " "
		}
		out += string(v)
	}
	return out
}

// ScoapRow is one line of the SCOAP report, named rather than keyed on
// *netlist.Gate so WriteScoapJSON can marshal it directly.
type ScoapRow struct {
	Address int    `json:"address"`
	Name    string `json:"name"`
	CC0     int    `json:"cc0"`
	CC1     int    `json:"cc1"`
	CO      int    `json:"co"`
}

func scoapRows(nl *netlist.Netlist) []ScoapRow {
	rows := make([]ScoapRow, 0, len(nl.Order))
	for _, addr := range nl.Order {
		g := nl.Gates[addr]
		rows = append(rows, ScoapRow{Address: g.Address, Name: g.Name, CC0: g.CC0, CC1: g.CC1, CO: g.CO})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Address < rows[j].Address })
	return rows
}

// WriteScoap renders CC0/CC1/CO as a table, after scoap.Compute has run.
func WriteScoap(w io.Writer, nl *netlist.Netlist) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("SCOAP Report")
	t.AppendHeader(table.Row{"Address", "Name", "CC0", "CC1", "CO"})

	for _, row := range scoapRows(nl) {
		t.AppendRow(table.Row{row.Address, row.Name, row.CC0, row.CC1, row.CO})
	}

	t.Render()
}

// WriteScoapJSON renders the same data as WriteScoap's JSON twin.
func WriteScoapJSON(w io.Writer, nl *netlist.Netlist) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scoapRows(nl))
}

// WriteSummary prints a one-line run summary of the form
// "<label>: <n> steps".
func WriteSummary(w io.Writer, label string, elapsedSteps int) {
	fmt.Fprintf(w, "%s: %d steps\n", label, elapsedSteps)
}
