package chip8

import (
	"fmt"
	"strings"
)

// State is a read-only snapshot of the machine, used for debugging and tests.
type State struct {
	V  [NumRegisters]uint8
	I  uint16
	PC uint16

	Stack []uint16
	Delay uint8
	Sound uint8

	Memory []byte

	AwaitingKey bool
	KeyRegister Register
	Cycles      uint64
}

// State returns a deep copy of the current machine state.
func (m *Machine) State() State {
	return State{
		V:           m.registers.V,
		I:           m.registers.I,
		PC:          m.registers.PC,
		Stack:       m.stack.Entries(),
		Delay:       m.timers.Delay(),
		Sound:       m.timers.Sound(),
		Memory:      m.memory.Bytes(),
		AwaitingKey: m.awaitingKey,
		KeyRegister: m.keyRegister,
		Cycles:      m.cycles,
	}
}

// String returns a register dump of the snapshot. Memory is not included.
func (s State) String() string {
	var buf strings.Builder
	for i, value := range s.V {
		if i > 0 && i%8 == 0 {
			buf.WriteByte('\n')
		} else if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "V%X=%02X", i, value)
	}
	fmt.Fprintf(&buf, "\nI=%04X PC=%04X DT=%02X ST=%02X", s.I, s.PC, s.Delay, s.Sound)

	buf.WriteString("\nstack:")
	for _, address := range s.Stack {
		fmt.Fprintf(&buf, " %04X", address)
	}
	if s.AwaitingKey {
		fmt.Fprintf(&buf, "\nawaiting key for %s", s.KeyRegister)
	}
	return buf.String()
}
