package chip8

import chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"

// operandLayout describes which bit fields of an instruction word carry operands.
type operandLayout uint8

const (
	layoutNone              operandLayout = iota
	layoutAddress                         // _NNN
	layoutRegister                        // _X__
	layoutRegisterByte                    // _XNN
	layoutRegisterPair                    // _XY_
	layoutRegisterPairImmed               // _XYN
)

// opcodeSemantics maps a matched opcode of the CHIP-8 opcode table to the
// executed operation. Mask is the strict mask of the base instruction set,
// words of extended instruction sets that pass the table match fail it.
type opcodeSemantics struct {
	Mask   uint16
	Op     Op
	Layout operandLayout
}

// semantics is indexed by the opcode Value of the CHIP-8 opcode table.
var semantics = map[uint16]opcodeSemantics{
	0x00E0: {Mask: 0xFFFF, Op: OpClearScreen, Layout: layoutNone},
	0x00EE: {Mask: 0xFFFF, Op: OpReturn, Layout: layoutNone},
	0x1000: {Mask: 0xF000, Op: OpJump, Layout: layoutAddress},
	0x2000: {Mask: 0xF000, Op: OpCall, Layout: layoutAddress},
	0x3000: {Mask: 0xF000, Op: OpSkipIfEqual, Layout: layoutRegisterByte},
	0x4000: {Mask: 0xF000, Op: OpSkipIfNotEqual, Layout: layoutRegisterByte},
	0x5000: {Mask: 0xF00F, Op: OpSkipIfRegistersEqual, Layout: layoutRegisterPair},
	0x6000: {Mask: 0xF000, Op: OpSetImmediate, Layout: layoutRegisterByte},
	0x7000: {Mask: 0xF000, Op: OpAddImmediate, Layout: layoutRegisterByte},
	0x8000: {Mask: 0xF00F, Op: OpCopyRegister, Layout: layoutRegisterPair},
	0x8001: {Mask: 0xF00F, Op: OpOr, Layout: layoutRegisterPair},
	0x8002: {Mask: 0xF00F, Op: OpAnd, Layout: layoutRegisterPair},
	0x8003: {Mask: 0xF00F, Op: OpXor, Layout: layoutRegisterPair},
	0x8004: {Mask: 0xF00F, Op: OpAddWithCarry, Layout: layoutRegisterPair},
	0x8005: {Mask: 0xF00F, Op: OpSubWithBorrow, Layout: layoutRegisterPair},
	0x8006: {Mask: 0xF00F, Op: OpShiftRight, Layout: layoutRegisterPair},
	0x8007: {Mask: 0xF00F, Op: OpReverseSub, Layout: layoutRegisterPair},
	0x800E: {Mask: 0xF00F, Op: OpShiftLeft, Layout: layoutRegisterPair},
	0x9000: {Mask: 0xF00F, Op: OpSkipIfRegistersNotEqual, Layout: layoutRegisterPair},
	0xA000: {Mask: 0xF000, Op: OpSetIndex, Layout: layoutAddress},
	0xB000: {Mask: 0xF000, Op: OpJumpPlusV0, Layout: layoutAddress},
	0xC000: {Mask: 0xF000, Op: OpRandomMasked, Layout: layoutRegisterByte},
	0xD000: {Mask: 0xF000, Op: OpDrawSprite, Layout: layoutRegisterPairImmed},
	0xE09E: {Mask: 0xF0FF, Op: OpSkipIfKeyDown, Layout: layoutRegister},
	0xE0A1: {Mask: 0xF0FF, Op: OpSkipIfKeyUp, Layout: layoutRegister},
	0xF007: {Mask: 0xF0FF, Op: OpDelayToRegister, Layout: layoutRegister},
	0xF00A: {Mask: 0xF0FF, Op: OpWaitForKey, Layout: layoutRegister},
	0xF015: {Mask: 0xF0FF, Op: OpRegisterToDelay, Layout: layoutRegister},
	0xF018: {Mask: 0xF0FF, Op: OpRegisterToSound, Layout: layoutRegister},
	0xF01E: {Mask: 0xF0FF, Op: OpAddToIndex, Layout: layoutRegister},
	0xF029: {Mask: 0xF0FF, Op: OpLoadSpriteAddress, Layout: layoutRegister},
	0xF033: {Mask: 0xF0FF, Op: OpStoreBCD, Layout: layoutRegister},
	0xF055: {Mask: 0xF0FF, Op: OpDumpRegisters, Layout: layoutRegister},
	0xF065: {Mask: 0xF0FF, Op: OpLoadRegisters, Layout: layoutRegister},
}

// sysSemantics covers the 0NNN words that are neither CLS nor RET.
var sysSemantics = opcodeSemantics{Mask: 0xF000, Op: OpSys, Layout: layoutAddress}

// Decode maps an instruction word to an instruction. Words that match no
// opcode return a *DecodeError, they are never substituted with a default.
func Decode(word uint16) (Instruction, error) {
	firstNibble := (word & 0xF000) >> 12
	opcodes := chip8cpu.Opcodes[int(firstNibble)]
	var opcode chip8cpu.Opcode
	for _, op := range opcodes {
		if op.Info.Mask&word == op.Info.Value {
			opcode = op
			break
		}
	}

	if opcode.Instruction != nil {
		sem, ok := semantics[opcode.Info.Value]
		if ok && word&sem.Mask == opcode.Info.Value {
			return decodeOperands(word, sem), nil
		}
	}

	// every remaining word of the first family is a machine code routine call
	if firstNibble == 0 {
		return decodeOperands(word, sysSemantics), nil
	}
	return Instruction{}, &DecodeError{Word: word}
}

// decodeOperands extracts the operand fields of the opcode layout.
// Register fields are 4 bits wide, so only V0-VF can be produced.
func decodeOperands(word uint16, sem opcodeSemantics) Instruction {
	ins := Instruction{
		Op:   sem.Op,
		Word: word,
	}

	switch sem.Layout {
	case layoutAddress:
		ins.NNN = word & 0x0FFF
	case layoutRegister:
		ins.X = registerX(word)
	case layoutRegisterByte:
		ins.X = registerX(word)
		ins.NN = uint8(word & 0x00FF)
	case layoutRegisterPair:
		ins.X = registerX(word)
		ins.Y = registerY(word)
	case layoutRegisterPairImmed:
		ins.X = registerX(word)
		ins.Y = registerY(word)
		ins.N = uint8(word & 0x000F)
	case layoutNone:
	}
	return ins
}

// registerX extracts the X register nibble of an instruction word.
func registerX(word uint16) Register {
	return Register((word & 0x0F00) >> 8)
}

// registerY extracts the Y register nibble of an instruction word.
func registerY(word uint16) Register {
	return Register((word & 0x00F0) >> 4)
}
