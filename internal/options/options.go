// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
	Batch string `flag:"batch" usage:"run a batch of ROM files matching pattern (e.g. *.ch8)"`
}

// Flags contains behavior options.
type Flags struct {
	Quirks    string `flag:"quirks" usage:"interpreter quirks profile: default, cosmac, chip48" default:"default"`
	CycleRate int    `flag:"hz" usage:"instructions executed per second" default:"700"`
	MaxCycles uint64 `flag:"cycles" usage:"stop after this many cycles (0: unlimited)"`
	Seed      uint64 `flag:"seed" usage:"random seed for reproducible runs (0: time based)"`
	Headless  bool   `flag:"headless" usage:"run without terminal display and keyboard"`
	Trace     bool   `flag:"trace" usage:"log every executed instruction, requires -debug"`
	Dump      bool   `flag:"dump" usage:"print the machine state and screen after the run"`
	Debug     bool   `flag:"debug" usage:"enable debug logging"`
	Quiet     bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}
