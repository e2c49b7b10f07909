package chip8

import "fmt"

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Register identifies a register of the machine. The general purpose
// registers V0-VF map directly to their slot index in the register file.
type Register uint8

// Register identifiers.
const (
	V0 Register = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
	RegisterI
	RegisterPC
)

// FlagRegister receives carry, borrow, shifted out bits and draw collisions.
const FlagRegister = VF

// IsGeneral returns whether the register is one of V0-VF.
func (r Register) IsGeneral() bool {
	return r <= VF
}

// String returns the assembler name of the register.
func (r Register) String() string {
	switch r {
	case RegisterI:
		return "I"
	case RegisterPC:
		return "PC"
	}
	if r.IsGeneral() {
		return fmt.Sprintf("V%X", uint8(r))
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

// RegisterFile contains the general purpose registers, the index register
// and the program counter.
type RegisterFile struct {
	V  [NumRegisters]uint8
	I  uint16
	PC uint16
}

// Get returns the value of a register in its native width.
func (r *RegisterFile) Get(id Register) uint16 {
	switch {
	case id.IsGeneral():
		return uint16(r.V[id])
	case id == RegisterI:
		return r.I
	case id == RegisterPC:
		return r.PC
	}
	return 0
}

// Set writes a value to a register. Values written to general purpose
// registers are truncated to 8 bits.
func (r *RegisterFile) Set(id Register, value uint16) {
	switch {
	case id.IsGeneral():
		r.V[id] = uint8(value)
	case id == RegisterI:
		r.I = value
	case id == RegisterPC:
		r.PC = value
	}
}

func (r *RegisterFile) reset() {
	*r = RegisterFile{}
}
