// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sxarconv/pkg/types"
)

// Manifest is the on-disk report of a batch conversion run. It lets the
// operator audit what was converted without rerunning the batch.
type Manifest struct {
	Inputs  []string                 `yaml:"inputs"`
	Results []types.ConversionRecord `yaml:"results"`
	Summary ManifestSummary          `yaml:"summary"`
}

// ManifestSummary stores run statistics and a timestamp.
type ManifestSummary struct {
	Converted int       `yaml:"converted"`
	Skipped   int       `yaml:"skipped"`
	Failed    int       `yaml:"failed"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteManifest saves a batch run report to a YAML file.
func WriteManifest(path string, inputs []string, records []types.ConversionRecord, result BatchResult) error {
	m := Manifest{
		Inputs:  inputs,
		Results: records,
		Summary: ManifestSummary{
			Converted: result.Converted,
			Skipped:   result.Skipped,
			Failed:    result.Failed,
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a batch run report from a YAML file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
