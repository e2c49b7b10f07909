// Package fileprocessor handles ROM file loading and execution
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile loads the ROM file of the options and runs it. The state dump
// requested by the options is written to out.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, out io.Writer) error {
	program, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	quirks, err := config.Quirks(opts.Quirks)
	if err != nil {
		return fmt.Errorf("selecting quirks: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen := display.New()
	keys, output, stop, err := setupTerminal(opts, cancel)
	if err != nil {
		return fmt.Errorf("setting up terminal: %w", err)
	}
	defer stop()

	machine := chip8.New(
		chip8.WithDisplay(screen),
		chip8.WithKeypad(keys),
		chip8.WithRandom(runner.NewRandom(opts.Seed)),
		chip8.WithQuirks(quirks),
		chip8.WithLogger(logger),
	)
	if err := machine.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	logger.Info("Running Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("quirks", opts.Quirks),
	)

	r := runner.New(logger, machine, screen, output, runner.Options{
		CycleRate: opts.CycleRate,
		MaxCycles: opts.MaxCycles,
		Unpaced:   opts.Headless,
		Trace:     opts.Trace,
	})
	runErr := r.Run(runCtx)
	stop()

	// the quit key cancels the run context only and ends the run normally
	if errors.Is(runErr, context.Canceled) && ctx.Err() == nil {
		runErr = nil
	}

	if opts.Dump {
		if err := dumpState(out, machine, screen); err != nil {
			return err
		}
	}

	if runErr != nil {
		return runErr
	}
	logger.Debug("Run finished", log.Int("cycles", int(r.Cycles())))
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// setupTerminal returns the keypad and the screen output for the run mode.
// Headless runs get a keypad without input and no screen output.
func setupTerminal(opts options.Program, quit func()) (chip8.Keypad, io.Writer, func(), error) {
	if opts.Headless {
		return keypad.New(), nil, func() {}, nil
	}

	terminal := keypad.NewTerminal(quit)
	if err := terminal.Start(); err != nil {
		return nil, nil, nil, fmt.Errorf("%w, use -headless to run without a terminal", err)
	}
	return terminal, os.Stdout, terminal.Stop, nil
}

func dumpState(out io.Writer, machine *chip8.Machine, screen *display.Framebuffer) error {
	if _, err := fmt.Fprintf(out, "%s\n\n%s", machine.State(), screen); err != nil {
		return fmt.Errorf("writing state dump: %w", err)
	}
	return nil
}
