package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op identifies the operation of a decoded instruction.
type Op uint8

// Operations, in the order of their encoding.
const (
	OpInvalid                 Op = iota
	OpSys                        // 0NNN
	OpClearScreen                // 00E0
	OpReturn                     // 00EE
	OpJump                       // 1NNN
	OpCall                       // 2NNN
	OpSkipIfEqual                // 3XNN
	OpSkipIfNotEqual             // 4XNN
	OpSkipIfRegistersEqual       // 5XY0
	OpSetImmediate               // 6XNN
	OpAddImmediate               // 7XNN
	OpCopyRegister               // 8XY0
	OpOr                         // 8XY1
	OpAnd                        // 8XY2
	OpXor                        // 8XY3
	OpAddWithCarry               // 8XY4
	OpSubWithBorrow              // 8XY5
	OpShiftRight                 // 8XY6
	OpReverseSub                 // 8XY7
	OpShiftLeft                  // 8XYE
	OpSkipIfRegistersNotEqual    // 9XY0
	OpSetIndex                   // ANNN
	OpJumpPlusV0                 // BNNN
	OpRandomMasked               // CXNN
	OpDrawSprite                 // DXYN
	OpSkipIfKeyDown              // EX9E
	OpSkipIfKeyUp                // EXA1
	OpDelayToRegister            // FX07
	OpWaitForKey                 // FX0A
	OpRegisterToDelay            // FX15
	OpRegisterToSound            // FX18
	OpAddToIndex                 // FX1E
	OpLoadSpriteAddress          // FX29
	OpStoreBCD                   // FX33
	OpDumpRegisters              // FX55
	OpLoadRegisters              // FX65
)

// sysName is the mnemonic of the legacy machine code routine call,
// which has no counterpart in the CHIP-8 instruction set definitions.
const sysName = "sys"

// Instruction is a decoded instruction word. Only the operand fields that
// the operation uses are set.
type Instruction struct {
	Op   Op
	Word uint16 // raw instruction word

	X   Register // first register operand, bits 11-8
	Y   Register // second register operand, bits 7-4
	N   uint8    // 4-bit immediate, bits 3-0
	NN  uint8    // 8-bit immediate, bits 7-0
	NNN uint16   // 12-bit address, bits 11-0
}

// Name returns the assembler mnemonic of the instruction.
func (ins Instruction) Name() string {
	switch ins.Op {
	case OpSys:
		return sysName
	case OpClearScreen:
		return chip8cpu.Cls.Name
	case OpReturn:
		return chip8cpu.Ret.Name
	case OpJump, OpJumpPlusV0:
		return chip8cpu.Jp.Name
	case OpCall:
		return chip8cpu.Call.Name
	case OpSkipIfEqual, OpSkipIfRegistersEqual:
		return chip8cpu.Se.Name
	case OpSkipIfNotEqual, OpSkipIfRegistersNotEqual:
		return chip8cpu.Sne.Name
	case OpAddImmediate, OpAddWithCarry, OpAddToIndex:
		return chip8cpu.Add.Name
	case OpOr:
		return chip8cpu.Or.Name
	case OpAnd:
		return chip8cpu.And.Name
	case OpXor:
		return chip8cpu.Xor.Name
	case OpSubWithBorrow:
		return chip8cpu.Sub.Name
	case OpReverseSub:
		return chip8cpu.Subn.Name
	case OpShiftRight:
		return chip8cpu.Shr.Name
	case OpShiftLeft:
		return chip8cpu.Shl.Name
	case OpRandomMasked:
		return chip8cpu.Rnd.Name
	case OpDrawSprite:
		return chip8cpu.Drw.Name
	case OpSkipIfKeyDown:
		return chip8cpu.Skp.Name
	case OpSkipIfKeyUp:
		return chip8cpu.Sknp.Name
	case OpInvalid:
		return ""
	default:
		return chip8cpu.Ld.Name
	}
}

// IsSkip returns whether the instruction conditionally skips the next instruction.
func (ins Instruction) IsSkip() bool {
	switch ins.Op {
	case OpSkipIfEqual, OpSkipIfNotEqual, OpSkipIfRegistersEqual, OpSkipIfRegistersNotEqual,
		OpSkipIfKeyDown, OpSkipIfKeyUp:
		return true
	default:
		return false
	}
}

// String returns the instruction in assembler notation, for example "ld VA, $3C".
func (ins Instruction) String() string {
	name := ins.Name()
	if params := ins.params(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// params formats the operands of the instruction.
func (ins Instruction) params() string {
	switch ins.Op {
	case OpSys, OpJump, OpCall:
		return fmt.Sprintf("$%03X", ins.NNN)
	case OpJumpPlusV0:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case OpSetIndex:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case OpSkipIfEqual, OpSkipIfNotEqual, OpSetImmediate, OpAddImmediate, OpRandomMasked:
		return fmt.Sprintf("%s, $%02X", ins.X, ins.NN)
	case OpSkipIfRegistersEqual, OpSkipIfRegistersNotEqual, OpCopyRegister, OpOr, OpAnd, OpXor,
		OpAddWithCarry, OpSubWithBorrow, OpShiftRight, OpReverseSub, OpShiftLeft:
		return fmt.Sprintf("%s, %s", ins.X, ins.Y)
	case OpDrawSprite:
		return fmt.Sprintf("%s, %s, $%X", ins.X, ins.Y, ins.N)
	case OpSkipIfKeyDown, OpSkipIfKeyUp:
		return ins.X.String()
	case OpDelayToRegister:
		return fmt.Sprintf("%s, DT", ins.X)
	case OpWaitForKey:
		return fmt.Sprintf("%s, K", ins.X)
	case OpRegisterToDelay:
		return fmt.Sprintf("DT, %s", ins.X)
	case OpRegisterToSound:
		return fmt.Sprintf("ST, %s", ins.X)
	case OpAddToIndex:
		return fmt.Sprintf("I, %s", ins.X)
	case OpLoadSpriteAddress:
		return fmt.Sprintf("F, %s", ins.X)
	case OpStoreBCD:
		return fmt.Sprintf("B, %s", ins.X)
	case OpDumpRegisters:
		return fmt.Sprintf("[I], %s", ins.X)
	case OpLoadRegisters:
		return fmt.Sprintf("%s, [I]", ins.X)
	}
	return ""
}
