// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runcount

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Runs returns an iterator over the completed runs of the given sequence
// of (key, increment) observations. The final run is not yielded, because
// it is still in progress when the sequence ends.
func Runs[K comparable, N constraints.Unsigned](seq iter.Seq2[K, N]) iter.Seq[Run[K, N]] {
	return func(yield func(Run[K, N]) bool) {
		var c Counter[K, N]
		for key, inc := range seq {
			c = c.Advance(key, inc)
			if r, ok := c.Completed(); ok {
				if !yield(r) {
					return
				}
			}
		}
	}
}
