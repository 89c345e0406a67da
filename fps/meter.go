// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fps counts frames per wall-clock second and drives a
// headless paint loop at a target frame rate.
package fps

import (
	"fmt"

	"cogentcore.org/framecount/base/runcount"
	"cogentcore.org/framecount/base/stopwatch"
)

// Report is the number of frames painted during one whole second.
type Report struct {

	// Second is the elapsed second, counted from the start of the meter.
	Second int64

	// Frames is the number of frames painted during that second.
	Frames uint64
}

func (r Report) String() string {
	return fmt.Sprintf("fps: %d (second %d)", r.Frames, r.Second)
}

// Meter counts frames per second. It must only be used
// from one goroutine at a time.
type Meter struct {
	watch   stopwatch.Stopwatch
	counter runcount.Frames[int64]
}

// NewMeter returns a meter started now on the given clock.
// A nil clock means the system clock.
func NewMeter(clk stopwatch.Clock) *Meter {
	return &Meter{watch: stopwatch.StartWith(clk)}
}

// Frame records one painted frame. When it is the first frame of a new
// second, it returns the report for the previous second that had frames.
func (m *Meter) Frame() (Report, bool) {
	m.counter = m.counter.Advance(m.watch.Elapsed().Second(), 1)
	run, ok := m.counter.Completed()
	if !ok {
		return Report{}, false
	}
	return Report{Second: run.Key, Frames: run.Amount}, true
}

// Current returns the frames counted so far in the current second.
func (m *Meter) Current() (Report, bool) {
	run, ok := m.counter.Current()
	if !ok {
		return Report{}, false
	}
	return Report{Second: run.Key, Frames: run.Amount}, true
}

// Elapsed returns the time since the meter was created.
func (m *Meter) Elapsed() stopwatch.Elapsed {
	return m.watch.Elapsed()
}
