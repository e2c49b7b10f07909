// Package runner drives a CHIP-8 machine in real time: it paces the cycle loop,
// ticks the timers at 60Hz, renders the screen and stops on cancellation.
package runner

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrogolib/log"
)

// DefaultCycleRate is the default number of instructions executed per second.
const DefaultCycleRate = 700

// Options controls the execution of a machine.
type Options struct {
	CycleRate int    // instructions per second
	MaxCycles uint64 // stop after this many cycles, 0 runs until cancelled
	Unpaced   bool   // run frames back to back without waiting for the timer rate
	Trace     bool   // log every executed instruction
}

// Runner executes a machine frame by frame. Each frame runs CycleRate/60
// cycles followed by one timer tick, the remainder of the division is carried
// to the next frames so that CycleRate cycles run per second.
type Runner struct {
	logger  *log.Logger
	machine *chip8.Machine
	screen  *display.Framebuffer
	output  io.Writer
	opts    Options

	cycles   uint64
	credit   int // cycle rate remainder carried to the next frame
	soundOn  bool
	rendered bool
}

// New returns a runner for the machine. Frames of the screen are written to
// output whenever they change, a nil output disables rendering.
func New(logger *log.Logger, machine *chip8.Machine, screen *display.Framebuffer, output io.Writer, opts Options) *Runner {
	if opts.CycleRate <= 0 {
		opts.CycleRate = DefaultCycleRate
	}
	return &Runner{
		logger:  logger,
		machine: machine,
		screen:  screen,
		output:  output,
		opts:    opts,
	}
}

// Run executes the machine until the context is cancelled, the cycle limit
// is reached or a cycle fails.
func (r *Runner) Run(ctx context.Context) error {
	var frames <-chan time.Time
	if !r.opts.Unpaced {
		ticker := time.NewTicker(time.Second / chip8.TimerRate)
		defer ticker.Stop()
		frames = ticker.C
	}

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("running machine: %w", err)
		}

		done, err := r.runFrame(r.frameCycles())
		if err != nil || done {
			return err
		}

		if frames != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("running machine: %w", ctx.Err())
			case <-frames:
			}
		}
	}
}

// Cycles returns the number of cycles the runner executed, including cycles
// spent waiting for a key.
func (r *Runner) Cycles() uint64 {
	return r.cycles
}

// frameCycles returns the number of cycles to execute in the next frame.
func (r *Runner) frameCycles() int {
	r.credit += r.opts.CycleRate
	cycles := r.credit / chip8.TimerRate
	r.credit %= chip8.TimerRate
	return cycles
}

// runFrame executes the cycles of one frame and ticks the timers. It returns
// true if the cycle limit was reached.
func (r *Runner) runFrame(cycles int) (bool, error) {
	for range cycles {
		if r.opts.MaxCycles > 0 && r.cycles >= r.opts.MaxCycles {
			return true, nil
		}
		if err := r.step(); err != nil {
			return false, err
		}
		r.cycles++
	}

	r.machine.TickTimers()
	r.updateSound()
	if err := r.render(); err != nil {
		return false, err
	}
	return false, nil
}

func (r *Runner) step() error {
	address := r.machine.ProgramCounter()
	ins, err := r.machine.Step()
	if err != nil {
		return fmt.Errorf("cycle %d: %w", r.cycles, err)
	}

	if r.opts.Trace && ins.Op != chip8.OpInvalid {
		r.logger.Debug("Executed",
			log.Hex("address", address),
			log.Hex("opcode", ins.Word),
			log.String("instruction", ins.String()))
	}
	return nil
}

// updateSound logs the start and end of the beeper, audio output is not emulated.
func (r *Runner) updateSound() {
	active := r.machine.SoundActive()
	if active == r.soundOn {
		return
	}
	r.soundOn = active

	if active {
		r.logger.Debug("Sound on")
	} else {
		r.logger.Debug("Sound off")
	}
}

// render writes the screen to the output if it changed since the last frame.
func (r *Runner) render() error {
	if r.output == nil || !r.screen.Dirty() {
		return nil
	}

	// move the cursor home and redraw, raw mode terminals need carriage returns
	frame := "\x1b[H" + strings.ReplaceAll(r.screen.String(), "\n", "\r\n")
	if !r.rendered {
		frame = "\x1b[2J" + frame
	}
	if _, err := io.WriteString(r.output, frame); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	r.rendered = true
	return nil
}
