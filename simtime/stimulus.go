package simtime

import "github.com/MatinHosseinianFard/logicbench/algebra"

// Stimulus is one entry of the input sequence: at Time, every
// primary input named in Values is (re-)asserted to that value. Callers
// must supply Stimulus slices sorted non-decreasingly by Time; Run
// validates this and returns a *errs.StimulusError otherwise.
type Stimulus struct {
	Time   int
	Values map[int]algebra.Value
}

// StimulusSource abstracts where a stimulus sequence comes from, so tests
// can substitute the generated MockStimulusSource for a parsed file.
//
//go:generate mockgen -write_package_comment=false -package=simtime_test -destination=mock_stimulussource_test.go github.com/MatinHosseinianFard/logicbench/simtime StimulusSource
type StimulusSource interface {
	Stimuli() ([]Stimulus, error)
}
