// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func TestElapsed(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	sw := StartWith(clk)
	assert.Equal(t, Elapsed(0), sw.Elapsed())
	assert.Equal(t, int64(0), sw.Elapsed().Second())

	clk.t = clk.t.Add(2500 * time.Millisecond)
	e := sw.Elapsed()
	assert.Equal(t, 2500*time.Millisecond, e.Duration())
	assert.Equal(t, int64(2), e.Second())
	assert.Equal(t, "2.5s", e.String())
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		period  float32
		want    float32
	}{
		{0, 4, 0},
		{time.Second, 4, 0.25},
		{3 * time.Second, 4, 0.75},
		{5 * time.Second, 4, 0.25},
		{1500 * time.Millisecond, 1, 0.5},
		{time.Second, 0, 0},
		{time.Second, -2, 0},
	}
	for _, tt := range tests {
		got := Elapsed(tt.elapsed).Period(tt.period)
		assert.InDelta(t, tt.want, got, 1e-5, "elapsed %v period %v", tt.elapsed, tt.period)
	}
}

func TestZeroStopwatch(t *testing.T) {
	var sw Stopwatch
	assert.Equal(t, Elapsed(0), sw.Elapsed())
}

func TestStartSystemClock(t *testing.T) {
	sw := Start()
	assert.GreaterOrEqual(t, sw.Elapsed().Duration(), time.Duration(0))
	sw = StartWith(nil)
	assert.GreaterOrEqual(t, sw.Elapsed().Duration(), time.Duration(0))
}
