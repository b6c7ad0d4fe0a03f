// SPDX-License-Identifier: AGPL-3.0-or-later
package matrix

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/featurekit/matrixgen/internal/render"
)

// Format selects an output rendering for the matrix.
type Format string

const (
	FormatShell    Format = "shell"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatShell, FormatJSON, FormatMarkdown:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want shell, json, or markdown)", s)
	}
}

// Write emits the matrix to w in the given format.
func (g *Generator) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return g.writeJSON(w)
	case FormatMarkdown:
		return g.writeMarkdown(w)
	default:
		return g.writeShell(w)
	}
}

// writeShell emits the command pairs as plain shell text, two lines per
// subset, in enumeration order. This is the format downstream runners pipe
// into a shell.
func (g *Generator) writeShell(w io.Writer) error {
	for pair := range g.Pairs() {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", pair.Build, pair.Test); err != nil {
			return fmt.Errorf("writing matrix: %w", err)
		}
	}
	return nil
}

func (g *Generator) writeJSON(w io.Writer) error {
	pairs := make([]Pair, 0, g.Count())
	for pair := range g.Pairs() {
		pairs = append(pairs, pair)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"matrix": pairs})
}

func (g *Generator) writeMarkdown(w io.Writer) error {
	rows := make([][]string, 0, g.Count())
	for pair := range g.Pairs() {
		rows = append(rows, []string{
			fmt.Sprintf("%d", len(pair.Features)),
			fmt.Sprintf("`%s`", pair.Rendered),
			fmt.Sprintf("`%s`", pair.Build),
			fmt.Sprintf("`%s`", pair.Test),
		})
	}
	table := render.Table([]string{"Size", "Features", "Build", "Test"}, rows)
	if _, err := io.WriteString(w, table); err != nil {
		return fmt.Errorf("writing matrix table: %w", err)
	}
	return nil
}
