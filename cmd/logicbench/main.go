// Command logicbench drives the three workbench cores from the command
// line: event-driven timing simulation, SCOAP testability analysis,
// and PODEM-style ATPG for single stuck-at faults. A flat main() plus the
// standard flag package, rather than a cobra-style CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"

	"github.com/MatinHosseinianFard/logicbench/atpg"
	"github.com/MatinHosseinianFard/logicbench/faultlist"
	"github.com/MatinHosseinianFard/logicbench/internal/errs"
	"github.com/MatinHosseinianFard/logicbench/logging"
	"github.com/MatinHosseinianFard/logicbench/netlist"
	"github.com/MatinHosseinianFard/logicbench/report"
	"github.com/MatinHosseinianFard/logicbench/session"
	"github.com/MatinHosseinianFard/logicbench/stimulus"
)

func main() {
	jsonLogs := flag.Bool("json-logs", false, "emit structured JSON logs instead of text")
	netlistPath := flag.String("netlist", "", "path to an ISCAS-85 netlist file")
	stimulusPath := flag.String("stimulus", "", "path to a stimulus file (trace subcommand)")
	faultsPath := flag.String("faults", "", "path to a fault list, plain-text or .yaml (atpg subcommand)")
	budget := flag.Int("budget", atpg.DefaultBacktrackBudget, "PODEM backtrack budget per fault")
	concurrent := flag.Bool("concurrent", false, "run the atpg subcommand's fault list as a concurrent batch")
	flag.Parse()

	logger := logging.Default(slog.LevelInfo, *jsonLogs)
	slog.SetDefault(logger)

	if *netlistPath == "" {
		log.Fatalf("missing required -netlist flag")
	}

	nl, err := netlist.ParseISCASFile(*netlistPath)
	if err != nil {
		exitOnError(err)
	}
	sess := session.New(nl)

	switch flag.Arg(0) {
	case "trace":
		runTrace(sess, *stimulusPath)
	case "scoap":
		runScoap(sess)
	case "atpg":
		runATPG(sess, *faultsPath, *budget, *concurrent)
	default:
		log.Fatalf("usage: logicbench -netlist FILE {trace|scoap|atpg} [flags]")
	}

	atexit.Exit(0)
}

func runTrace(sess *session.Session, stimulusPath string) {
	if stimulusPath == "" {
		log.Fatalf("trace requires -stimulus")
	}
	stimuli, err := stimulus.ParseFile(stimulusPath)
	if err != nil {
		exitOnError(err)
	}

	trace, err := sess.Simulate(stimuli)
	if err != nil {
		exitOnError(err)
	}
	report.WriteTrace(os.Stdout, sess.Netlist(), trace)
}

func runScoap(sess *session.Session) {
	sess.ComputeSCOAP()
	report.WriteScoap(os.Stdout, sess.Netlist())
}

func runATPG(sess *session.Session, faultsPath string, budget int, concurrent bool) {
	if faultsPath == "" {
		log.Fatalf("atpg requires -faults")
	}

	var faults []atpg.Fault
	var err error
	if hasYAMLExtension(faultsPath) {
		faults, err = faultlist.ParseYAMLFile(faultsPath)
	} else {
		faults, err = faultlist.ParseFile(faultsPath)
	}
	if err != nil {
		exitOnError(err)
	}

	sess.ComputeSCOAP()

	if concurrent {
		results, err := sess.RunFaultBatch(context.Background(), faults, budget)
		if err != nil {
			exitOnError(err)
		}
		report.WriteATPG(os.Stdout, sess.Netlist(), results)
		return
	}

	results := make([]report.FaultResult, 0, len(faults))
	for _, fault := range faults {
		pattern, found, err := sess.GenerateTests(fault, budget)
		if err != nil {
			var budgetErr *errs.BudgetExceededError
			if errors.As(err, &budgetErr) {
				slog.Warn("atpg budget exceeded", "fault", fault.NetName, "backtracks", budgetErr.Backtracks)
				results = append(results, report.FaultResult{Fault: fault, Found: false})
				continue
			}
			exitOnError(err)
		}
		results = append(results, report.FaultResult{Fault: fault, Pattern: pattern, Found: found})
	}
	report.WriteATPG(os.Stdout, sess.Netlist(), results)
}

func hasYAMLExtension(path string) bool {
	n := len(path)
	return n >= 5 && path[n-5:] == ".yaml" || n >= 4 && path[n-4:] == ".yml"
}

// exitOnError maps the typed errors in internal/errs to a status message
// that names the kind of failure, then exits with a non-zero status via
// atexit so any registered cleanup still runs.
func exitOnError(err error) {
	var parseErr *errs.ParseError
	var structErr *errs.StructuralError
	var stimErr *errs.StimulusError
	var budgetErr *errs.BudgetExceededError

	switch {
	case errors.As(err, &parseErr):
		fmt.Fprintf(os.Stderr, "parse error: %v\n", parseErr)
	case errors.As(err, &structErr):
		fmt.Fprintf(os.Stderr, "structural error: %v\n", structErr)
	case errors.As(err, &stimErr):
		fmt.Fprintf(os.Stderr, "stimulus error: %v\n", stimErr)
	case errors.As(err, &budgetErr):
		fmt.Fprintf(os.Stderr, "atpg budget exceeded: %v\n", budgetErr)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	atexit.Exit(1)
}
