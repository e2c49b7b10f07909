package chip8

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Option configures a machine.
type Option func(*Machine)

// WithRandom sets the random source used by the RND instruction.
func WithRandom(random RandomSource) Option {
	return func(m *Machine) {
		m.random = random
	}
}

// WithKeypad sets the key input source.
func WithKeypad(keypad Keypad) Option {
	return func(m *Machine) {
		m.keypad = keypad
	}
}

// WithDisplay sets the display that sprites are drawn to.
func WithDisplay(display Display) Option {
	return func(m *Machine) {
		m.display = display
	}
}

// WithQuirks sets the interpreter behavior variants.
func WithQuirks(quirks Quirks) Option {
	return func(m *Machine) {
		m.quirks = quirks
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// Machine is a CHIP-8 virtual machine instance. It exclusively owns its
// memory, registers, stack and timers.
type Machine struct {
	memory    Memory
	registers RegisterFile
	stack     Stack
	timers    TimerBank

	random  RandomSource
	keypad  Keypad
	display Display
	quirks  Quirks
	logger  *log.Logger

	awaitingKey bool
	keyRegister Register
	cycles      uint64
}

// New returns a powered on machine. Collaborators that are not set with
// options are replaced by inert stand-ins.
func New(opts ...Option) *Machine {
	m := &Machine{
		random:  zeroRandom{},
		keypad:  noKeypad{},
		display: discardDisplay{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Reset()
	return m
}

// Reset returns the machine to its power on state: memory contains only
// the font, all registers, the stack and the timers are zero.
func (m *Machine) Reset() {
	m.memory.reset()
	m.registers.reset()
	m.stack.reset()
	m.timers.reset()
	m.awaitingKey = false
	m.keyRegister = V0
	m.cycles = 0
}

// LoadProgram resets the machine, copies the program image to ProgramStart
// and points the program counter at it.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	m.Reset()
	if err := m.memory.WriteRange(ProgramStart, program); err != nil {
		return fmt.Errorf("writing program to memory: %w", err)
	}
	m.registers.PC = ProgramStart

	if m.logger != nil {
		m.logger.Debug("Program loaded",
			log.Int("size", len(program)),
			log.Hex("start", uint16(ProgramStart)))
	}
	return nil
}

// Step runs one fetch, decode and execute cycle and returns the executed
// instruction. While the machine awaits a key, Step polls the keypad and
// returns an instruction with OpInvalid without executing anything if no
// key was pressed. If the cycle fails, the program counter is restored to
// the address of the failing instruction.
func (m *Machine) Step() (Instruction, error) {
	if m.awaitingKey {
		key, ok := m.keypad.PressedKey()
		if !ok {
			return Instruction{}, nil
		}
		m.resume(key)
	}

	address := m.registers.PC
	word, err := m.memory.ReadWord(address)
	if err != nil {
		return Instruction{}, fmt.Errorf("fetching opcode at address %04X: %w", address, err)
	}
	m.registers.PC += 2

	ins, err := Decode(word)
	if err != nil {
		m.registers.PC = address
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Address = address
		}
		if m.logger != nil {
			m.logger.Debug("Decoding failed",
				log.Hex("address", address),
				log.Hex("opcode", word))
		}
		return Instruction{}, err
	}

	if err := m.execute(ins); err != nil {
		m.registers.PC = address
		return ins, fmt.Errorf("executing '%s' at address %04X: %w", ins, address, err)
	}

	m.cycles++
	return ins, nil
}

// IsAwaitingKey returns whether execution is suspended by a wait for key instruction.
func (m *Machine) IsAwaitingKey() bool {
	return m.awaitingKey
}

// SupplyKey stores the key in the register of the pending wait for key
// instruction and resumes execution.
func (m *Machine) SupplyKey(key uint8) error {
	if !m.awaitingKey {
		return ErrNotAwaitingKey
	}
	if key > 0xF {
		return fmt.Errorf("%w: %02X", ErrInvalidKey, key)
	}
	m.resume(key)
	return nil
}

// resume leaves the awaiting key state.
func (m *Machine) resume(key uint8) {
	m.registers.V[m.keyRegister] = key & 0x0F
	m.awaitingKey = false

	if m.logger != nil {
		m.logger.Debug("Key wait resumed",
			log.String("register", m.keyRegister.String()),
			log.Uint8("key", key))
	}
}

// TickTimers decrements the delay and sound timers. It is called by an
// external pacer at TimerRate.
func (m *Machine) TickTimers() {
	m.timers.Tick()
}

// SoundActive returns whether the sound timer is running.
func (m *Machine) SoundActive() bool {
	return m.timers.Sound() > 0
}

// ProgramCounter returns the address of the next instruction to execute.
func (m *Machine) ProgramCounter() uint16 {
	return m.registers.PC
}

// Cycles returns the number of successfully executed instructions since the last reset.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}
