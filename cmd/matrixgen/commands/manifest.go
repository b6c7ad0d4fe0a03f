// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/featurekit/matrixgen/internal/manifest"
)

func NewManifestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Work with feature manifest files",
	}

	cmd.AddCommand(newManifestValidateCommand())

	return cmd
}

func newManifestValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a feature manifest file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return manifestErr(err)
			}

			n := len(m.Features)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Manifest is valid (%d features, %d combinations)\n", n, 1<<n)
			return nil
		},
	}

	return cmd
}
