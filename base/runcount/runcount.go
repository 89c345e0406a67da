// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package runcount counts consecutive runs of observations that share the
same key, for example the number of frames rendered within each wall-clock
second.

A [Counter] is an immutable value: [Counter.Advance] returns a new Counter
and leaves the receiver untouched. The run closed by the most recent
Advance, if any, is available from [Counter.Completed] on the returned value
only; the next Advance clears it again.

Amounts saturate at the maximum value of the amount type instead of
wrapping around.
*/
package runcount

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Run is a maximal sequence of consecutive observations with the same Key,
// and the Amount accumulated over them.
type Run[K comparable, N constraints.Unsigned] struct {
	Key    K
	Amount N
}

func (r Run[K, N]) String() string {
	return fmt.Sprintf("%v: %d", r.Key, r.Amount)
}

// Counter is the state of a consecutive run counter.
// The zero value is an empty counter that has not observed any key yet.
type Counter[K comparable, N constraints.Unsigned] struct {
	current Run[K, N]

	// started is false only before the first observation.
	started bool

	completed Run[K, N]

	// closed is whether completed holds the run ended by the last Advance.
	closed bool
}

// Frames is a Counter with a uint64 amount, as used for counting frames.
type Frames[K comparable] = Counter[K, uint64]

// New returns an empty counter.
func New[K comparable, N constraints.Unsigned]() Counter[K, N] {
	return Counter[K, N]{}
}

// Advance returns the state after observing key with the given increment.
// If key continues the current run, the increment is added to its amount.
// Otherwise a new run starts with exactly inc as its amount, and the
// previous run, if there was one, becomes the completed run.
func (c Counter[K, N]) Advance(key K, inc N) Counter[K, N] {
	if c.started && key == c.current.Key {
		return Counter[K, N]{
			current: Run[K, N]{Key: key, Amount: addSat(c.current.Amount, inc)},
			started: true,
		}
	}
	return Counter[K, N]{
		current:   Run[K, N]{Key: key, Amount: inc},
		started:   true,
		completed: c.current,
		closed:    c.started,
	}
}

// Completed returns the run that was closed by the Advance call that
// produced c, and false if that call continued a run or was the first one.
// It does not modify c, so repeated calls return the same result.
func (c Counter[K, N]) Completed() (Run[K, N], bool) {
	if !c.closed {
		return Run[K, N]{}, false
	}
	return c.completed, true
}

// Current returns the run in progress, and false if nothing has
// been observed yet.
func (c Counter[K, N]) Current() (Run[K, N], bool) {
	return c.current, c.started
}

// Started returns whether at least one observation has been made.
func (c Counter[K, N]) Started() bool {
	return c.started
}

// addSat returns a+b, clamped to the maximum value of N.
func addSat[N constraints.Unsigned](a, b N) N {
	s := a + b
	if s < a {
		return ^N(0)
	}
	return s
}
