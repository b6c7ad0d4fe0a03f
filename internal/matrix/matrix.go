// SPDX-License-Identifier: AGPL-3.0-or-later

// Package matrix turns a feature set into the build/test command matrix: one
// command pair per subset of the set, in power-set order.
package matrix

import (
	"fmt"
	"iter"

	"github.com/featurekit/matrixgen/internal/featureset"
)

// Pair is the two command lines covering one feature combination. Build and
// Test always carry the identical rendered feature text.
type Pair struct {
	Features []string `json:"features"`
	Rendered string   `json:"rendered"`
	Build    string   `json:"build"`
	Test     string   `json:"test"`
}

// Options bound the generated matrix. The zero value means the full power
// set.
type Options struct {
	// MinSize and MaxSize restrict subset sizes to [MinSize, MaxSize].
	// MaxSize <= 0 means the full set size.
	MinSize int
	MaxSize int
}

// Generator produces the command matrix for one feature set.
type Generator struct {
	set  featureset.Set
	opts Options
}

// New creates a Generator over the given set.
func New(set featureset.Set, opts Options) *Generator {
	if opts.MaxSize <= 0 || opts.MaxSize > set.Len() {
		opts.MaxSize = set.Len()
	}
	return &Generator{set: set, opts: opts}
}

// Pairs lazily yields the command pairs in enumeration order: subset sizes
// ascending, combinations order within a size.
func (g *Generator) Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for subset := range g.set.PowerSetSized(g.opts.MinSize, g.opts.MaxSize) {
			if !yield(makePair(subset)) {
				return
			}
		}
	}
}

// Count returns how many pairs Pairs will yield.
func (g *Generator) Count() int {
	total := 0
	for range g.Pairs() {
		total++
	}
	return total
}

func makePair(subset []string) Pair {
	rendered := featureset.Render(subset)
	return Pair{
		Features: subset,
		Rendered: rendered,
		Build:    fmt.Sprintf("cargo build --no-default-features --features %s", rendered),
		// The doubled space after "test" column-aligns the flags with the
		// build line above it.
		Test: fmt.Sprintf("cargo test  --no-default-features --features %s --quiet --no-fail-fast", rendered),
	}
}
