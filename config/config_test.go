// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 5*time.Second, c.Timeout())
	assert.Equal(t, slog.LevelInfo, c.Level())
}

func TestOpenTOML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "fps.toml", "fps = 30\nlog_level = \"debug\"\n")
	c, err := Open(p)
	require.NoError(t, err)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, slog.LevelDebug, c.Level())
	assert.Equal(t, 4.0, c.Period, "unset fields keep their defaults")
}

func TestOpenYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "fps.yml", "frames: 120\nseconds: 1.5\n")
	c, err := Open(p)
	require.NoError(t, err)
	assert.Equal(t, 120, c.Frames)
	assert.Equal(t, 1500*time.Millisecond, c.Timeout())

	p = writeFile(t, dir, "empty.yaml", "")
	c, err = Open(p)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "fps.json"))
	assert.ErrorContains(t, err, "unsupported")

	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	p := writeFile(t, dir, "bad.toml", "speed = 3\n")
	_, err = Open(p)
	assert.Error(t, err)

	p = writeFile(t, dir, "bad.yaml", "speed: 3\n")
	_, err = Open(p)
	assert.Error(t, err)
}

func TestOpenHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	writeFile(t, dir, "fps.toml", "fps = 144\n")
	c, err := Open("~/fps.toml")
	require.NoError(t, err)
	assert.Equal(t, 144, c.FPS)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(c *Config)
		want string
	}{
		{"fps", func(c *Config) { c.FPS = -1 }, "fps"},
		{"fps-max", func(c *Config) { c.FPS = 2_000_000_000 }, "fps"},
		{"frames", func(c *Config) { c.Frames = -3 }, "frames"},
		{"seconds", func(c *Config) { c.Seconds = -1 }, "seconds"},
		{"seconds-max", func(c *Config) { c.Seconds = 1e12 }, "seconds"},
		{"period", func(c *Config) { c.Period = 0 }, "period"},
		{"level", func(c *Config) { c.LogLevel = "chatty" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.edit(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), err.Error())
		})
	}
}

func TestTimeoutSaturates(t *testing.T) {
	c := Default()
	c.Seconds = MaxSeconds
	require.NoError(t, c.Validate())
	assert.Equal(t, time.Duration(math.MaxInt64), c.Timeout())

	c.Seconds = 1e12
	assert.Equal(t, time.Duration(math.MaxInt64), c.Timeout())

	c.FPS = MaxFPS
	c.Seconds = 0
	assert.NoError(t, c.Validate())
}

func TestFlags(t *testing.T) {
	flags := Default()
	fs := pflag.NewFlagSet("fpscount", pflag.ContinueOnError)
	AddFlags(fs, &flags)
	require.NoError(t, fs.Parse([]string{"--fps", "24", "--log-level", "warn"}))

	file := Default()
	file.FPS = 30
	file.Frames = 10
	ApplyFlags(fs, flags, &file)

	assert.Equal(t, 24, file.FPS)
	assert.Equal(t, 10, file.Frames)
	assert.Equal(t, "warn", file.LogLevel)
	assert.Contains(t, fs.Lookup("period").Usage, "full turn")
}
