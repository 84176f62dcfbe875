// Package stimulus parses the timing simulator's stimulus file format: a
// header line of primary-input addresses ending in the literal "time",
// followed by one value-vector-plus-time-step line per stimulus.
package stimulus

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/internal/errs"
	"github.com/MatinHosseinianFard/logicbench/simtime"
)

var valueChars = map[byte]algebra.Value{
	'0': algebra.Zero,
	'1': algebra.One,
	'U': algebra.Unknown,
	'Z': algebra.HiZ,
}

// FileSource reads a stimulus file lazily from Path when Stimuli is
// called, implementing simtime.StimulusSource.
type FileSource struct {
	Path string
}

func (f FileSource) Stimuli() ([]simtime.Stimulus, error) {
	return ParseFile(f.Path)
}

// ParseFile opens and parses a stimulus file at path.
func ParseFile(path string) ([]simtime.Stimulus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the stimulus format from r.
func Parse(r io.Reader) ([]simtime.Stimulus, error) {
	scanner := bufio.NewScanner(r)

	var inputAddrs []int
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		header := strings.Fields(scanner.Text())
		if len(header) == 0 {
			continue // allow leading blank lines before the header
		}
		if header[len(header)-1] != "time" {
			return nil, &errs.StimulusError{Line: lineNo, Detail: `header must end with the literal "time"`}
		}
		for _, tok := range header[:len(header)-1] {
			addr, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &errs.StimulusError{Line: lineNo, Detail: "malformed primary input address: " + tok}
			}
			inputAddrs = append(inputAddrs, addr)
		}
		break
	}
	if inputAddrs == nil {
		return nil, &errs.StimulusError{Line: lineNo, Detail: "missing stimulus header"}
	}

	var stimuli []simtime.Stimulus
	lastTime := -1
	first := true

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != len(inputAddrs)+1 {
			return nil, &errs.StimulusError{Line: lineNo, Detail: "value vector does not match the number of header inputs"}
		}

		values := make(map[int]algebra.Value, len(inputAddrs))
		for i, addr := range inputAddrs {
			token := fields[i]
			if len(token) != 1 {
				return nil, &errs.StimulusError{Line: lineNo, Detail: "value must be a single character: " + token}
			}
			v, ok := valueChars[token[0]]
			if !ok {
				return nil, &errs.StimulusError{Line: lineNo, Detail: "unrecognized value character: " + token}
			}
			values[addr] = v
		}

		timeStep, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return nil, &errs.StimulusError{Line: lineNo, Detail: "malformed time step: " + fields[len(fields)-1]}
		}
		if !first && timeStep < lastTime {
			return nil, &errs.StimulusError{Line: lineNo, Detail: "time steps must be non-decreasing"}
		}
		lastTime = timeStep
		first = false

		stimuli = append(stimuli, simtime.Stimulus{Time: timeStep, Values: values})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return stimuli, nil
}
