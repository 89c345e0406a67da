// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fpscount runs a headless frame loop that spins a shape at a
// target frame rate and prints the number of frames painted each second.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/framecount/base/errors"
	"cogentcore.org/framecount/base/logx"
	"cogentcore.org/framecount/base/stopwatch"
	"cogentcore.org/framecount/config"
	"cogentcore.org/framecount/fps"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(execute())
}

// execute runs the root command and returns the process exit code.
func execute() int {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var file string
	flags := config.Default()
	cmd := &cobra.Command{
		Use:           "fpscount",
		Short:         "Count frames per second of a headless spinning shape",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if file != "" {
				var err error
				cfg, err = config.Open(file)
				if err != nil {
					return errors.Log(err)
				}
			}
			config.ApplyFlags(cmd.Flags(), flags, &cfg)
			if err := cfg.Validate(); err != nil {
				return errors.Log(err)
			}
			logx.UserLevel.Set(cfg.Level())
			return errors.Log(run(cmd.Context(), cfg, nil, stdout))
		},
	}
	cmd.Flags().StringVarP(&file, "config", "c", "", "the TOML or YAML config file to read")
	config.AddFlags(cmd.Flags(), &flags)
	return cmd
}

// run paints frames as configured until the frame or time limit is reached
// or ctx is done, printing a line to w for every completed second.
// A nil clk means the system clock.
func run(ctx context.Context, cfg config.Config, clk stopwatch.Clock, w io.Writer) error {
	if cfg.Seconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout())
		defer cancel()
	}
	period := float32(cfg.Period)
	var werr error
	loop := &fps.Loop{
		FPS:       cfg.FPS,
		MaxFrames: cfg.Frames,
		Clock:     clk,
		Paint: func(f fps.Frame) {
			slog.Debug("paint", "frame", f.Index, "angle", fps.Angle(f.Elapsed, period))
		},
		Report: func(r fps.Report) {
			if _, err := fmt.Fprintf(w, "fps: %d\n", r.Frames); err != nil && werr == nil {
				werr = err
			}
		},
	}
	slog.Info("starting frame loop", "fps", cfg.FPS, "frames", cfg.Frames, "seconds", cfg.Seconds)
	err := loop.Run(ctx)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return err
	}
	return werr
}
