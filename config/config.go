// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the fpscount tool.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/framecount/base/logx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of a frame counting run.
type Config struct {

	// the target number of frames per second; 0 paints as fast as possible
	FPS int `toml:"fps" yaml:"fps" desc:"the target number of frames per second; 0 paints as fast as possible"`

	// the number of frames after which to stop; 0 means no limit
	Frames int `toml:"frames" yaml:"frames" desc:"the number of frames after which to stop; 0 means no limit"`

	// the number of seconds after which to stop; 0 means no limit
	Seconds float64 `toml:"seconds" yaml:"seconds" desc:"the number of seconds after which to stop; 0 means no limit"`

	// the number of seconds for one full turn of the spinning shape
	Period float64 `toml:"period" yaml:"period" desc:"the number of seconds for one full turn of the spinning shape"`

	// the minimum level of log messages to print (debug, info, warn, error)
	LogLevel string `toml:"log_level" yaml:"log_level" desc:"the minimum level of log messages to print (debug, info, warn, error)"`
}

const (
	// MaxFPS is the highest accepted FPS.
	MaxFPS = 1_000_000

	// MaxSeconds is the highest accepted Seconds,
	// the longest run a [time.Duration] can hold.
	MaxSeconds = float64(math.MaxInt64 / int64(time.Second))
)

// Default returns the default configuration.
func Default() Config {
	return Config{
		FPS:      60,
		Seconds:  5,
		Period:   4,
		LogLevel: "info",
	}
}

// Format is a config file format.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf returns the format of a config file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("config: unsupported file type %q", path)
}

// Open reads the config file at the given path on top of [Default].
// A leading ~ in the path is expanded to the home directory.
func Open(path string) (Config, error) {
	cfg := Default()
	p, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	format, err := FormatOf(p)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Read(bytes.NewReader(b), format); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", p, err)
	}
	return cfg, nil
}

// Read decodes c from r in the given format. Fields that are not
// present keep their values, and unknown fields are an error.
func (c *Config) Read(r io.Reader, format Format) error {
	switch format {
	case TOML:
		return toml.NewDecoder(r).DisallowUnknownFields().Decode(c)
	case YAML:
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		err := d.Decode(c)
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// Validate returns an error if any field is out of range.
func (c Config) Validate() error {
	switch {
	case c.FPS < 0 || c.FPS > MaxFPS:
		return fmt.Errorf("config: fps must be between 0 and %d, not %d", MaxFPS, c.FPS)
	case c.Frames < 0:
		return fmt.Errorf("config: frames must be >= 0, not %d", c.Frames)
	case c.Seconds < 0 || c.Seconds > MaxSeconds:
		return fmt.Errorf("config: seconds must be between 0 and %g, not %g", MaxSeconds, c.Seconds)
	case c.Period <= 0:
		return fmt.Errorf("config: period must be > 0, not %g", c.Period)
	}
	if _, err := logx.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the parsed log level, or info if it is invalid.
func (c Config) Level() slog.Level {
	l, err := logx.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// Timeout returns Seconds as a duration, saturating at the
// largest duration.
func (c Config) Timeout() time.Duration {
	if c.Seconds >= MaxSeconds {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(c.Seconds * float64(time.Second))
}
