// Package faultlist parses the PODEM fault-list formats: the plain text
// `<net_name> sa0|sa1` format, and a structured YAML alternative for
// callers that already manage configuration as YAML documents.
package faultlist

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/atpg"
	"github.com/MatinHosseinianFard/logicbench/internal/errs"
)

// Source abstracts where a fault list comes from, mockable in tests via
// golang/mock.
//
//go:generate mockgen -write_package_comment=false -package=faultlist_test -destination=mock_source_test.go github.com/MatinHosseinianFard/logicbench/faultlist Source
type Source interface {
	Faults() ([]atpg.Fault, error)
}

// FileSource reads the plain-text fault-list format from Path.
type FileSource struct {
	Path string
}

func (f FileSource) Faults() ([]atpg.Fault, error) {
	return ParseFile(f.Path)
}

// ParseFile opens and parses a plain-text fault list at path.
func ParseFile(path string) ([]atpg.Fault, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads the plain-text format from r: one `<net_name> sa0|sa1` pair
// per non-blank line.
func Parse(r io.Reader) ([]atpg.Fault, error) {
	scanner := bufio.NewScanner(r)
	var faults []atpg.Fault
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &errs.StimulusError{Line: lineNo, Detail: "fault list line must be `<net_name> sa0|sa1`"}
		}

		stuckAt, err := parseStuckAt(fields[1])
		if err != nil {
			return nil, &errs.StimulusError{Line: lineNo, Detail: err.Error()}
		}
		faults = append(faults, atpg.Fault{NetName: fields[0], StuckAt: stuckAt})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return faults, nil
}

func parseStuckAt(token string) (algebra.Value, error) {
	switch token {
	case "sa0":
		return algebra.Zero, nil
	case "sa1":
		return algebra.One, nil
	default:
		return "", errors.New("unrecognized stuck-at token: " + token)
	}
}
