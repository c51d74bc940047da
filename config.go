package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

const configFileName = "doxmd.toml"

type fileConfig struct {
	Transform transformConfig `toml:"transform"`
}

type transformConfig struct {
	Strip    bool `toml:"strip"`
	Extract  bool `toml:"extract"`
	Fallback bool `toml:"fallback"`
	Jobs     int  `toml:"jobs"`
}

// findConfig walks up from startDir looking for doxmd.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// applyConfig loads the config file named by opts.configPath, or the nearest
// doxmd.toml when none is named, and copies every key it defines into opts
// unless the matching flag was set on the command line.
func applyConfig(opts *options, flags *pflag.FlagSet) error {
	path := opts.configPath
	if path == "" {
		found, ok, err := findConfig(".")
		if err != nil || !ok {
			return err
		}
		path = found
	}
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	set := func(flag, key string, apply func()) {
		if meta.IsDefined("transform", key) && !flags.Changed(flag) {
			apply()
		}
	}
	set("strip", "strip", func() { opts.strip = cfg.Transform.Strip })
	set("extract", "extract", func() { opts.extract = cfg.Transform.Extract })
	set("fallback", "fallback", func() { opts.fallback = cfg.Transform.Fallback })
	set("jobs", "jobs", func() { opts.jobs = cfg.Transform.Jobs })
	return nil
}
