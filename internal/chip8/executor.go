package chip8

import "fmt"

// execute applies the instruction to the machine state. The program counter
// already points to the next instruction. Operations validate memory ranges
// and stack depth before mutating any state.
func (m *Machine) execute(ins Instruction) error {
	r := &m.registers

	switch ins.Op {
	case OpSys:
		// machine code routines of the host interpreter are not supported

	case OpClearScreen:
		m.display.Clear()

	case OpReturn:
		address, err := m.stack.Pop()
		if err != nil {
			return err
		}
		r.PC = address

	case OpJump:
		r.PC = ins.NNN

	case OpJumpPlusV0:
		r.PC = ins.NNN + uint16(r.V[V0])

	case OpCall:
		if err := m.stack.Push(r.PC); err != nil {
			return err
		}
		r.PC = ins.NNN

	case OpSkipIfEqual:
		m.skipIf(r.Get(ins.X) == uint16(ins.NN))

	case OpSkipIfNotEqual:
		m.skipIf(r.Get(ins.X) != uint16(ins.NN))

	case OpSkipIfRegistersEqual:
		m.skipIf(r.Get(ins.X) == r.Get(ins.Y))

	case OpSkipIfRegistersNotEqual:
		m.skipIf(r.Get(ins.X) != r.Get(ins.Y))

	case OpSetImmediate:
		r.V[ins.X] = ins.NN

	case OpAddImmediate:
		r.V[ins.X] += ins.NN // VF is not affected

	case OpSetIndex:
		r.I = ins.NNN

	case OpRandomMasked:
		r.V[ins.X] = m.random.RandomByte() & ins.NN

	case OpCopyRegister, OpOr, OpAnd, OpXor, OpAddWithCarry, OpSubWithBorrow,
		OpShiftRight, OpReverseSub, OpShiftLeft:
		m.executeALU(ins)

	case OpDrawSprite:
		return m.drawSprite(ins)

	case OpSkipIfKeyDown:
		m.skipIf(m.keypad.IsKeyDown(r.V[ins.X]))

	case OpSkipIfKeyUp:
		m.skipIf(!m.keypad.IsKeyDown(r.V[ins.X]))

	case OpWaitForKey:
		// only keys pressed after the wait started resume it
		m.keypad.ResetPressed()
		m.awaitingKey = true
		m.keyRegister = ins.X

	case OpDelayToRegister:
		r.V[ins.X] = m.timers.Delay()

	case OpRegisterToDelay:
		m.timers.SetDelay(r.V[ins.X])

	case OpRegisterToSound:
		m.timers.SetSound(r.V[ins.X])

	case OpAddToIndex:
		index := r.I + uint16(r.V[ins.X])
		if m.quirks.WrapIndex {
			index &= MaxAddress
		}
		r.I = index

	case OpLoadSpriteAddress:
		r.I = FontBase + FontGlyphSize*uint16(r.V[ins.X])

	case OpStoreBCD:
		value := r.V[ins.X]
		digits := []byte{value / 100, value / 10 % 10, value % 10}
		if err := m.memory.WriteRange(r.I, digits); err != nil {
			return fmt.Errorf("storing BCD: %w", err)
		}

	case OpDumpRegisters:
		count := int(ins.X) + 1
		if err := m.memory.WriteRange(r.I, r.V[:count]); err != nil {
			return fmt.Errorf("dumping registers: %w", err)
		}
		m.advanceIndex(count)

	case OpLoadRegisters:
		count := int(ins.X) + 1
		data, err := m.memory.ReadRange(r.I, count)
		if err != nil {
			return fmt.Errorf("loading registers: %w", err)
		}
		copy(r.V[:count], data)
		m.advanceIndex(count)

	default:
		return fmt.Errorf("%w: %04X", ErrUnknownOpcode, ins.Word)
	}

	return nil
}

// skipIf skips the next instruction if the condition holds.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.registers.PC += 2
	}
}

// drawSprite reads N sprite rows from I and draws them at VX, VY.
// VF is set to 1 on collision and 0 otherwise.
func (m *Machine) drawSprite(ins Instruction) error {
	r := &m.registers
	sprite, err := m.memory.ReadRange(r.I, int(ins.N))
	if err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}

	collided := m.display.Draw(r.V[ins.X], r.V[ins.Y], sprite)
	r.V[FlagRegister] = boolToFlag(collided)
	return nil
}

// advanceIndex moves I past the transferred registers if the quirk is enabled.
func (m *Machine) advanceIndex(count int) {
	if m.quirks.IncrementIndex {
		m.registers.I += uint16(count)
	}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
