// SPDX-License-Identifier: AGPL-3.0-or-later

// Package featureset models an ordered list of distinct feature-flag names
// and enumerates its combinations and power set.
package featureset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName reports a feature whose name is the empty string.
	ErrEmptyName = errors.New("feature name is empty")
	// ErrDuplicateName reports a feature name appearing more than once.
	ErrDuplicateName = errors.New("duplicate feature name")
)

// EmptyRendering is the literal used for the empty subset so the text stays
// a valid (explicitly empty) shell argument.
const EmptyRendering = "''"

// Set is an ordered sequence of distinct feature names. Order carries no
// semantic weight; it only fixes the enumeration order so output is
// reproducible.
type Set struct {
	names []string
}

// New builds a Set from the given names, rejecting empty and duplicate
// entries. Validation happens here so enumeration can never fail.
func New(names ...string) (Set, error) {
	seen := make(map[string]struct{}, len(names))
	for i, n := range names {
		if n == "" {
			return Set{}, fmt.Errorf("feature %d: %w", i, ErrEmptyName)
		}
		if _, ok := seen[n]; ok {
			return Set{}, fmt.Errorf("feature %q: %w", n, ErrDuplicateName)
		}
		seen[n] = struct{}{}
	}
	s := Set{names: make([]string, len(names))}
	copy(s.names, names)
	return s, nil
}

// MustNew is New for compile-time constant lists.
func MustNew(names ...string) Set {
	s, err := New(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of features in the set.
func (s Set) Len() int { return len(s.names) }

// Names returns a copy of the feature names in their original order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Render formats a subset as the comma-joined feature text used on command
// lines. The empty subset renders as EmptyRendering.
func Render(subset []string) string {
	if len(subset) == 0 {
		return EmptyRendering
	}
	return strings.Join(subset, ",")
}
