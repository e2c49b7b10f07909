// Package config handles application configuration and setup
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Quirk profile names.
const (
	DefaultProfile = "default"
	CosmacProfile  = "cosmac"
	Chip48Profile  = "chip48"
)

var quirkProfiles = map[string]chip8.Quirks{
	DefaultProfile: {},
	CosmacProfile: {
		ClearFlagOnNoCarry: true,
		CarryOnNoBorrow:    true,
		IncrementIndex:     true,
	},
	Chip48Profile: {
		ClearFlagOnNoCarry: true,
		CarryOnNoBorrow:    true,
		WrapIndex:          true,
		ShiftInPlace:       true,
	},
}

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

// Quirks returns the interpreter quirks of the named profile.
func Quirks(profile string) (chip8.Quirks, error) {
	quirks, ok := quirkProfiles[strings.ToLower(profile)]
	if !ok {
		return chip8.Quirks{}, fmt.Errorf("unsupported quirks profile: %s. Valid options: %s",
			profile, strings.Join(QuirkProfiles(), ", "))
	}
	return quirks, nil
}

// QuirkProfiles returns the sorted names of all quirk profiles.
func QuirkProfiles() []string {
	names := make([]string, 0, len(quirkProfiles))
	for name := range quirkProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
