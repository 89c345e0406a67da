// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stopwatch measures time elapsed since a start point,
// in the forms needed by animation and frame counting.
package stopwatch

import (
	"time"

	"github.com/chewxy/math32"
)

// Clock is a source of the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is a [Clock] that reads the system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Stopwatch records a start time.
type Stopwatch struct {
	clock Clock
	start time.Time
}

// Start returns a Stopwatch started now on the system clock.
func Start() Stopwatch {
	return StartWith(SystemClock{})
}

// StartWith returns a Stopwatch started now on the given clock.
// A nil clock means the system clock.
func StartWith(clk Clock) Stopwatch {
	if clk == nil {
		clk = SystemClock{}
	}
	return Stopwatch{clock: clk, start: clk.Now()}
}

// Elapsed returns the time elapsed since the stopwatch was started.
func (s Stopwatch) Elapsed() Elapsed {
	if s.clock == nil {
		return 0
	}
	return Elapsed(s.clock.Now().Sub(s.start))
}

// Elapsed is a duration measured by a [Stopwatch].
type Elapsed time.Duration

// Duration returns e as a [time.Duration].
func (e Elapsed) Duration() time.Duration {
	return time.Duration(e)
}

// Second returns the number of whole seconds elapsed.
func (e Elapsed) Second() int64 {
	return int64(time.Duration(e) / time.Second)
}

// Period returns how far, from 0 up to but not including 1, the elapsed
// time is through the current cycle of a period lasting the given number
// of seconds. It has millisecond resolution, and returns 0 for a
// non-positive period.
func (e Elapsed) Period(seconds float32) float32 {
	if seconds <= 0 {
		return 0
	}
	secs := float32(time.Duration(e).Milliseconds()) / 1000
	f := math32.Mod(secs, seconds) / seconds
	if f < 0 {
		f += 1
	}
	return f
}

func (e Elapsed) String() string {
	return time.Duration(e).String()
}
