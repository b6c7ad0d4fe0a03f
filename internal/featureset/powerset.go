// SPDX-License-Identifier: AGPL-3.0-or-later
package featureset

import "iter"

// Combinations yields every size-k combination of the set's features, with
// chosen indices strictly increasing, so combinations appear in the
// lexicographic order induced by the set's own order. Each yielded slice is
// a fresh copy the consumer may keep.
func (s Set) Combinations(k int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		n := len(s.names)
		if k < 0 || k > n {
			return
		}
		if k == 0 {
			yield([]string{})
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			combo := make([]string, k)
			for i, j := range idx {
				combo[i] = s.names[j]
			}
			if !yield(combo) {
				return
			}

			// Advance the rightmost index that still has room, then
			// reset everything after it to consecutive values.
			j := k - 1
			for j >= 0 && idx[j] == n-k+j {
				j--
			}
			if j < 0 {
				return
			}
			idx[j]++
			for i := j + 1; i < k; i++ {
				idx[i] = idx[i-1] + 1
			}
		}
	}
}

// PowerSet yields all 2^N subsets of the set, ordered by increasing size and
// within a size in Combinations order. The first subset is always empty and
// the last is the full set in its original order. The sequence is lazy and
// restartable.
func (s Set) PowerSet() iter.Seq[[]string] {
	return s.PowerSetSized(0, len(s.names))
}

// PowerSetSized yields only the subsets whose size falls within [min, max],
// in the same order as PowerSet. Bounds are clamped to [0, Len].
func (s Set) PowerSetSized(min, max int) iter.Seq[[]string] {
	if min < 0 {
		min = 0
	}
	if max > len(s.names) {
		max = len(s.names)
	}
	return func(yield func([]string) bool) {
		for k := min; k <= max; k++ {
			for combo := range s.Combinations(k) {
				if !yield(combo) {
					return
				}
			}
		}
	}
}
