// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Quirks = strings.ToLower(opts.Quirks)
	if _, err := config.Quirks(opts.Quirks); err != nil {
		return err
	}

	if opts.CycleRate <= 0 {
		return fmt.Errorf("invalid cycle rate %d, must be positive", opts.CycleRate)
	}
	return nil
}

// validateOptionCombinations checks for options that can not be used together.
func validateOptionCombinations(opts options.Program) error {
	if opts.Trace && !opts.Debug {
		return errors.New("-trace requires -debug to output the trace")
	}
	if opts.Batch != "" && !opts.Headless {
		return errors.New("-batch requires -headless, ROMs of a batch can not share the terminal")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Batch, "batch", "", "run a batch of ROM files matching the given path and file mask, for example *.ch8")
	flags.StringVar(&opts.Quirks, "quirks", config.DefaultProfile,
		"interpreter quirks profile ("+strings.Join(config.QuirkProfiles(), "/")+")")
	flags.IntVar(&opts.CycleRate, "hz", runner.DefaultCycleRate, "instructions executed per second")
	flags.Uint64Var(&opts.MaxCycles, "cycles", 0, "stop after this many cycles, 0 runs until interrupted")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random seed for reproducible runs, 0 seeds from the current time")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal display and keyboard")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Dump, "dump", false, "print the machine state and screen after the run")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
