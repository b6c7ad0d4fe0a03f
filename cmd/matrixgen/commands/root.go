// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands contains the Cobra commands for the matrixgen CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/featurekit/matrixgen/internal/manifest"
	"github.com/featurekit/matrixgen/internal/matrix"
)

// NewRootCmd constructs the matrixgen root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("MATRIXGEN_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:   "matrixgen",
		Short: "matrixgen - feature-flag build/test matrix generator",
		Long: `matrixgen enumerates every combination of a package's optional features and
prints the cargo build and test command for each one. It only emits command
text; running the commands is left to the caller.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Bare invocation prints the full matrix for the built-in feature
		// list, so the tool stays usable as a zero-argument generator.
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := manifest.Default().Set()
			if err != nil {
				return err
			}
			return matrix.New(set, matrix.Options{}).Write(cmd.OutOrStdout(), matrix.FormatShell)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of matrixgen",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "matrixgen version %s\n", version)
		},
	})

	cmd.AddCommand(NewMatrixCommand())
	cmd.AddCommand(NewFeaturesCommand())
	cmd.AddCommand(NewManifestCommand())

	return cmd
}
