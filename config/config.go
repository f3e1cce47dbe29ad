// Package config loads YAML run configurations: which analyses to run over
// a loaded graph and with what parameters. File parsing of the graph itself
// stays with the external scanner; this package only validates the knobs
// the engine consumes.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/codialab/panacus/cluster"
	"github.com/codialab/panacus/gfa"
	"github.com/codialab/panacus/growth"
)

// Run is one analysis run over a single graph state.
type Run struct {
	Name     string     `yaml:"name"`
	Graph    string     `yaml:"graph"`
	Subset   string     `yaml:"subset,omitempty"`
	Exclude  string     `yaml:"exclude,omitempty"`
	Grouping string     `yaml:"grouping,omitempty"`
	Analyses []Analysis `yaml:"analyses"`
}

// Analysis selects one analysis and its parameters. Coverage and quorum are
// the comma-separated threshold lists of the growth analyses; Order is the
// explicit group order of ordered growth (empty means cluster-derived).
type Analysis struct {
	Kind     string   `yaml:"analysis"`
	Count    string   `yaml:"count,omitempty"`
	Coverage string   `yaml:"coverage,omitempty"`
	Quorum   string   `yaml:"quorum,omitempty"`
	Order    []string `yaml:"order,omitempty"`
	Linkage  string   `yaml:"linkage,omitempty"`
}

var analysisKinds = map[string]bool{
	"hist":               true,
	"growth":             true,
	"histgrowth":         true,
	"ordered-histgrowth": true,
	"table":              true,
	"info":               true,
	"similarity":         true,
}

// Load reads and validates a run configuration.
func Load(r io.Reader) (*Run, error) {
	var run Run
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&run); err != nil {
		return nil, fmt.Errorf("parse run config: %w", err)
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}
	return &run, nil
}

// LoadFile reads a run configuration from disk.
func LoadFile(path string) (*Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Validate rejects unknown analyses and invalid parameters before any
// computation starts.
func (r *Run) Validate() error {
	if r.Graph == "" {
		return fmt.Errorf("run %q names no graph", r.Name)
	}
	if len(r.Analyses) == 0 {
		return fmt.Errorf("run %q has no analyses", r.Name)
	}
	for i, a := range r.Analyses {
		if !analysisKinds[a.Kind] {
			return fmt.Errorf("analysis %d: unknown analysis %q", i, a.Kind)
		}
		if a.Count != "" {
			if _, err := gfa.ParseKind(a.Count); err != nil {
				return fmt.Errorf("analysis %d: %w", i, err)
			}
		}
		if a.Coverage != "" || a.Quorum != "" {
			if _, err := growth.ParseSpecs(a.Coverage, a.Quorum); err != nil {
				return fmt.Errorf("analysis %d: %w", i, err)
			}
		}
		if a.Linkage != "" {
			if _, err := cluster.ParseLinkage(a.Linkage); err != nil {
				return fmt.Errorf("analysis %d: %w", i, err)
			}
		}
	}
	return nil
}

// Specs returns the parsed threshold specs of an analysis, applying the
// defaults when unset.
func (a Analysis) Specs() ([]growth.Spec, error) {
	return growth.ParseSpecs(a.Coverage, a.Quorum)
}
