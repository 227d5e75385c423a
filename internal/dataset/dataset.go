// Package dataset loads scored evaluation datasets from YAML files for the
// command-line tools.
package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ndt "github.com/jamesainslie/go-ndt"
)

// Dataset holds classifier scores with their ground-truth labels, plus an
// optional list of thresholds to evaluate.
type Dataset struct {
	Name       string
	Scores     []float64
	Labels     []int
	Thresholds []float64
}

// file mirrors the YAML layout. Labels decode as floats because YAML has no
// way to promise integers; coercion happens after parsing.
type file struct {
	Name       string    `yaml:"name"`
	Scores     []float64 `yaml:"scores"`
	Labels     []float64 `yaml:"labels"`
	Thresholds []float64 `yaml:"thresholds"`
}

// Load reads a dataset from a YAML file and validates it: labels must be
// integers and must align one-to-one with scores.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	labels, err := ndt.IntLabels(f.Labels, "labels")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(f.Scores) != len(labels) {
		return nil, fmt.Errorf("%s: %w: scores has %d, labels has %d",
			path, ndt.ErrLengthMismatch, len(f.Scores), len(labels))
	}
	if len(f.Scores) == 0 {
		return nil, fmt.Errorf("%s: dataset is empty", path)
	}

	return &Dataset{
		Name:       f.Name,
		Scores:     f.Scores,
		Labels:     labels,
		Thresholds: f.Thresholds,
	}, nil
}
