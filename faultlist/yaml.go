package faultlist

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MatinHosseinianFard/logicbench/algebra"
	"github.com/MatinHosseinianFard/logicbench/atpg"
	"github.com/MatinHosseinianFard/logicbench/internal/errs"
)

// yamlDocument is the on-disk shape of the YAML fault-list alternative: a
// flat list under a `faults:` key, each entry naming a net and a stuck-at
// polarity spelled "0" or "1" rather than the plain-text format's
// sa0/sa1 tokens.
type yamlDocument struct {
	Faults []yamlFault `yaml:"faults"`
}

type yamlFault struct {
	Net     string `yaml:"net"`
	StuckAt string `yaml:"stuck_at"`
}

// YAMLSource reads the YAML fault-list format from Path.
type YAMLSource struct {
	Path string
}

func (y YAMLSource) Faults() ([]atpg.Fault, error) {
	return ParseYAMLFile(y.Path)
}

// ParseYAMLFile opens and parses a YAML fault list at path.
func ParseYAMLFile(path string) ([]atpg.Fault, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseYAML(file)
}

// ParseYAML reads the YAML fault-list format from r.
func ParseYAML(r io.Reader) ([]atpg.Fault, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, &errs.StimulusError{Detail: "malformed YAML fault list: " + err.Error()}
	}

	faults := make([]atpg.Fault, 0, len(doc.Faults))
	for _, f := range doc.Faults {
		var stuckAt algebra.Value
		switch f.StuckAt {
		case "0":
			stuckAt = algebra.Zero
		case "1":
			stuckAt = algebra.One
		default:
			return nil, &errs.StimulusError{Detail: "fault " + f.Net + ": stuck_at must be \"0\" or \"1\", got " + f.StuckAt}
		}
		faults = append(faults, atpg.Fault{NetName: f.Net, StuckAt: stuckAt})
	}
	return faults, nil
}
