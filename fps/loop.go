// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fps

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/framecount/base/errors"
	"cogentcore.org/framecount/base/stopwatch"
	"github.com/chewxy/math32"
)

// Frame describes one paint of a [Loop].
type Frame struct {

	// Index is the number of frames painted before this one.
	Index int

	// Elapsed is the time since the loop started.
	Elapsed stopwatch.Elapsed
}

// Loop calls Paint at a target frame rate until its context is done,
// and reports the number of frames painted in each second.
type Loop struct {

	// FPS is the target number of frames per second.
	// If it is <= 0, or too high for a one nanosecond tick,
	// frames are painted as fast as possible.
	FPS int

	// MaxFrames is the number of frames after which Run returns.
	// If it is 0, Run continues until its context is done.
	MaxFrames int

	// Clock is the time source. If it is nil, the system clock is used.
	Clock stopwatch.Clock

	// Paint is called for every frame. It must be set.
	Paint func(f Frame)

	// Report, if set, is called with each completed second.
	Report func(r Report)
}

// Run runs the loop. It returns nil after MaxFrames frames,
// and the context error if the context is done first.
func (l *Loop) Run(ctx context.Context) error {
	if l.Paint == nil {
		return errors.New("fps: Loop.Paint is nil")
	}
	meter := NewMeter(l.Clock)

	var tick <-chan time.Time
	if iv := l.interval(); iv > 0 {
		ticker := time.NewTicker(iv)
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := 0; l.MaxFrames <= 0 || n < l.MaxFrames; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		l.Paint(Frame{Index: n, Elapsed: meter.Elapsed()})
		if r, ok := meter.Frame(); ok {
			slog.Debug("fps", "second", r.Second, "frames", r.Frames)
			if l.Report != nil {
				l.Report(r)
			}
		}
	}
	return nil
}

// interval returns the time between ticks, or 0 if unthrottled.
func (l *Loop) interval() time.Duration {
	if l.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(l.FPS)
}

// Angle returns the rotation angle, in radians from 0 up to 2π,
// of a shape spinning once every period seconds.
func Angle(e stopwatch.Elapsed, period float32) float32 {
	return e.Period(period) * 2 * math32.Pi
}
