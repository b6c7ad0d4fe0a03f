// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func NewFeaturesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Inspect the effective feature list",
	}

	cmd.AddCommand(newFeaturesListCommand())

	return cmd
}

func newFeaturesListCommand() *cobra.Command {
	var (
		manifestPath string
		featuresCSV  string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the features the matrix will be generated from",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := resolveSet(manifestPath, featuresCSV)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"features": set.Names()})
			}

			for _, name := range set.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to a feature manifest YAML file")
	cmd.Flags().StringVar(&featuresCSV, "features", "", "Comma-separated feature list overriding the manifest")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
