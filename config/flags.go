// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"reflect"

	"github.com/spf13/pflag"
)

// AddFlags adds a flag for each field of c to fs, bound to that field,
// with the current value of the field as its default.
func AddFlags(fs *pflag.FlagSet, c *Config) {
	fs.IntVar(&c.FPS, "fps", c.FPS, fieldDesc("FPS"))
	fs.IntVar(&c.Frames, "frames", c.Frames, fieldDesc("Frames"))
	fs.Float64Var(&c.Seconds, "seconds", c.Seconds, fieldDesc("Seconds"))
	fs.Float64Var(&c.Period, "period", c.Period, fieldDesc("Period"))
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, fieldDesc("LogLevel"))
}

// ApplyFlags copies into dst the fields of src whose flags
// were set on the command line.
func ApplyFlags(fs *pflag.FlagSet, src Config, dst *Config) {
	if fs.Changed("fps") {
		dst.FPS = src.FPS
	}
	if fs.Changed("frames") {
		dst.Frames = src.Frames
	}
	if fs.Changed("seconds") {
		dst.Seconds = src.Seconds
	}
	if fs.Changed("period") {
		dst.Period = src.Period
	}
	if fs.Changed("log-level") {
		dst.LogLevel = src.LogLevel
	}
}

func fieldDesc(name string) string {
	f, ok := reflect.TypeFor[Config]().FieldByName(name)
	if !ok {
		return ""
	}
	return f.Tag.Get("desc")
}
