// SPDX-License-Identifier: AGPL-3.0-or-later

// Package manifest loads the YAML file that names a package's optional
// features. The manifest is the only external input the tool reads; when no
// manifest is given the built-in default list is used.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/featurekit/matrixgen/internal/featureset"
)

// Feature is a single feature entry in a manifest.
type Feature struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Manifest describes the feature surface of one package.
type Manifest struct {
	Package  string    `yaml:"package,omitempty"`
	Features []Feature `yaml:"features"`
}

// Default returns the built-in manifest: the feature list of the shell-quote
// package the tool was written for.
func Default() Manifest {
	return Manifest{
		Package: "shell-quote",
		Features: []Feature{
			{Name: "bstr"},
			{Name: "bash"},
			{Name: "fish"},
			{Name: "sh"},
		},
	}
}

// Load reads and validates a manifest file. Validation failures surface
// before any matrix output is produced.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path supplied by operator
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if _, err := m.Set(); err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Set converts the manifest's feature list into a validated featureset.Set.
func (m Manifest) Set() (featureset.Set, error) {
	names := make([]string, len(m.Features))
	for i, f := range m.Features {
		names[i] = f.Name
	}
	return featureset.New(names...)
}
