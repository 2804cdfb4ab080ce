// Package config handles application configuration and setup
package config

import (
	"fmt"
	"strconv"

	"github.com/retroenv/levelshuffle/internal/options"
	"github.com/retroenv/levelshuffle/internal/table"
	"github.com/retroenv/retrogolib/log"
	"github.com/xyproto/env/v2"
	"gopkg.in/ini.v1"
)

// Environment variables that provide option defaults.
const (
	EnvInput = "LEVELSHUFFLE_ROM"
	EnvSeed  = "LEVELSHUFFLE_SEED"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// ApplyDefaults fills options that were not set on the command line from the
// environment and the built in defaults.
func ApplyDefaults(opts *options.Program) error {
	return applyDefaults(opts, func(name string) (string, bool) {
		return env.Str(name), env.Has(name)
	})
}

func applyDefaults(opts *options.Program, lookup func(name string) (string, bool)) error {
	if opts.Input == "" {
		opts.Input = options.DefaultInput
		if value, ok := lookup(EnvInput); ok && value != "" {
			opts.Input = value
		}
	}
	if opts.Output == "" {
		opts.Output = options.DefaultOutput
	}

	if value, ok := lookup(EnvSeed); ok && opts.Seed == nil {
		seed, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvSeed, err)
		}
		opts.Seed = &seed
	}
	return nil
}

// LoadLayout returns the table layout. Without a config file name the
// default layout is returned, keys missing in the file keep their default.
//
// Example file:
//
//	offset  = 0x9CEAFC
//	rows    = 15
//	columns = 12
func LoadLayout(fileName string) (table.Layout, error) {
	layout := table.DefaultLayout()
	if fileName == "" {
		return layout, nil
	}

	cfg, err := ini.Load(fileName)
	if err != nil {
		return table.Layout{}, fmt.Errorf("loading config file '%s': %w", fileName, err)
	}
	section := cfg.Section("")

	values := []struct {
		key   string
		value *int
	}{
		{"offset", &layout.Offset},
		{"rows", &layout.Rows},
		{"columns", &layout.Columns},
	}
	for _, v := range values {
		if !section.HasKey(v.key) {
			continue
		}
		s := section.Key(v.key).String()
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return table.Layout{}, fmt.Errorf("parsing config key '%s' value '%s': %w", v.key, s, err)
		}
		*v.value = int(i)
	}

	return layout, nil
}
