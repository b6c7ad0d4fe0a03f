// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/featurekit/matrixgen/cmd/matrixgen/internal/clierr"
	"github.com/featurekit/matrixgen/internal/featureset"
	"github.com/featurekit/matrixgen/internal/manifest"
	"github.com/featurekit/matrixgen/internal/matrix"
	"github.com/featurekit/matrixgen/internal/render"
)

func NewMatrixCommand() *cobra.Command {
	var (
		manifestPath string
		featuresCSV  string
		minSize      int
		maxSize      int
		formatName   string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the build/test command matrix for every feature combination",
		Long: `Enumerates all subsets of the feature list, smallest first, and emits the
cargo build and cargo test command for each. The feature list comes from
--features, a manifest file, or the built-in default, in that precedence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := matrix.ParseFormat(formatName)
			if err != nil {
				return clierr.Wrap(clierr.CodeInvalidInput, "invalid --format", err)
			}

			set, err := resolveSet(manifestPath, featuresCSV)
			if err != nil {
				return err
			}

			gen := matrix.New(set, matrix.Options{MinSize: minSize, MaxSize: maxSize})

			if outPath != "" {
				var buf bytes.Buffer
				if err := gen.Write(&buf, format); err != nil {
					return err
				}
				if err := render.AtomicWrite(outPath, buf.Bytes()); err != nil {
					return fmt.Errorf("failed to write matrix: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d command pairs to %s\n", gen.Count(), outPath)
				return nil
			}

			return gen.Write(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to a feature manifest YAML file")
	cmd.Flags().StringVar(&featuresCSV, "features", "", "Comma-separated feature list overriding the manifest")
	cmd.Flags().IntVar(&minSize, "min-size", 0, "Smallest subset size to include")
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "Largest subset size to include (0 = full set)")
	cmd.Flags().StringVar(&formatName, "format", "shell", "Output format: shell, json, or markdown")
	cmd.Flags().StringVar(&outPath, "out", "", "Write output to a file instead of stdout")

	return cmd
}

// resolveSet picks the effective feature list: --features wins over a
// manifest file, which wins over the built-in default. Invalid lists are
// rejected here, before any output is produced.
func resolveSet(manifestPath, featuresCSV string) (featureset.Set, error) {
	if featuresCSV != "" {
		set, err := featureset.New(strings.Split(featuresCSV, ",")...)
		if err != nil {
			return featureset.Set{}, clierr.Wrap(clierr.CodeInvalidInput, "invalid --features", err)
		}
		return set, nil
	}

	m := manifest.Default()
	if manifestPath != "" {
		var err error
		m, err = manifest.Load(manifestPath)
		if err != nil {
			return featureset.Set{}, manifestErr(err)
		}
	}
	set, err := m.Set()
	if err != nil {
		return featureset.Set{}, manifestErr(err)
	}
	return set, nil
}

// manifestErr maps feature-list validation failures to the invalid-input
// exit code; everything else (unreadable file, bad YAML) stays a plain
// failure.
func manifestErr(err error) error {
	if errors.Is(err, featureset.ErrDuplicateName) || errors.Is(err, featureset.ErrEmptyName) {
		return clierr.Wrap(clierr.CodeInvalidInput, "invalid feature list", err)
	}
	return err
}
