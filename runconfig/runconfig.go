// Package runconfig loads a YAML run configuration (netlist, stimulus and
// fault-list paths, ATPG budget, report paths): a plain
// os.ReadFile+yaml.Unmarshal pair that returns errors to the caller
// instead of panicking. cmd/logicbench does not read it; the CLI is
// configured by flags.
package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is the top-level shape of a logicbench run file.
type RunConfig struct {
	Netlist  string `yaml:"netlist"`
	Stimulus string `yaml:"stimulus,omitempty"`
	Faults   string `yaml:"faults,omitempty"`

	ATPG struct {
		BacktrackBudget int `yaml:"backtrack_budget"`
	} `yaml:"atpg"`

	Report struct {
		Trace     string `yaml:"trace,omitempty"`
		ATPG      string `yaml:"atpg,omitempty"`
		Scoap     string `yaml:"scoap,omitempty"`
		ScoapJSON string `yaml:"scoap_json,omitempty"`
	} `yaml:"report"`

	JSONLogs bool `yaml:"json_logs"`
}

// Load reads and parses a RunConfig from path.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	if cfg.Netlist == "" {
		return nil, fmt.Errorf("run config: netlist path is required")
	}
	return &cfg, nil
}
