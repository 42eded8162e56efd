package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/driftlab/internal/engine"
	"github.com/roach88/driftlab/internal/graph"
)

//go:embed default.yaml
var defaultYAML []byte

// RunParams are the default run parameters carried by a configuration
// file. CLI flags override them per invocation.
type RunParams struct {
	// Subjects is the number of virtual subjects per scenario.
	Subjects int `json:"subjects" yaml:"subjects"`

	// Days is the number of simulated days per subject.
	Days int `json:"days" yaml:"days"`

	// Threshold is the operational alert boundary. Zero selects the
	// engine default (0.7).
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// Seed is the master seed for subject random streams.
	Seed uint64 `json:"seed" yaml:"seed"`
}

// Config is a complete simulator configuration.
type Config struct {
	Nodes     []graph.NodeConfig `json:"nodes" yaml:"nodes"`
	Edges     []graph.EdgeConfig `json:"edges" yaml:"edges"`
	Scenarios []engine.Scenario  `json:"scenarios" yaml:"scenarios"`
	Run       RunParams          `json:"run" yaml:"run"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML strictly and validates the result against the CUE
// schema. Cross-reference validation (edge endpoints, shock targets) is
// graph construction's job, not Parse's.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // reject unknown fields
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.normalize()

	if err := validateSchema(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the embedded reference configuration.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		// The embedded configuration is validated by tests; a parse
		// failure here is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded default config invalid: %v", err))
	}
	return cfg
}

// normalize replaces nil slices with empty ones so the schema sees lists,
// not nulls, when optional sections are omitted.
func (c *Config) normalize() {
	if c.Edges == nil {
		c.Edges = []graph.EdgeConfig{}
	}
	if c.Scenarios == nil {
		c.Scenarios = []engine.Scenario{}
	}
	for i := range c.Scenarios {
		if c.Scenarios[i].Shocks == nil {
			c.Scenarios[i].Shocks = []engine.Shock{}
		}
	}
}
