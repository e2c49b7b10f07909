package chip8

// executeALU executes the register to register operations of the 8XYN family.
// The result is written to VX before the flag is written to VF, so VF as
// destination register holds the flag afterwards.
func (m *Machine) executeALU(ins Instruction) {
	v := &m.registers.V
	x, y := v[ins.X], v[ins.Y]

	switch ins.Op {
	case OpCopyRegister:
		v[ins.X] = y

	case OpOr:
		v[ins.X] = x | y

	case OpAnd:
		v[ins.X] = x & y

	case OpXor:
		v[ins.X] = x ^ y

	case OpAddWithCarry:
		sum := uint16(x) + uint16(y)
		v[ins.X] = uint8(sum)
		m.setCarry(sum > 0xFF)

	case OpSubWithBorrow:
		v[ins.X] = x - y
		m.setBorrow(x < y)

	case OpReverseSub:
		v[ins.X] = y - x
		m.setBorrow(y < x)

	case OpShiftRight:
		src := m.shiftSource(x, y)
		v[ins.X] = src >> 1
		v[FlagRegister] = src & 0x01

	case OpShiftLeft:
		src := m.shiftSource(x, y)
		v[ins.X] = src << 1
		v[FlagRegister] = src >> 7

	default:
	}
}

// setCarry sets VF when an addition overflowed. Without overflow VF is
// left unchanged unless the ClearFlagOnNoCarry quirk is enabled.
func (m *Machine) setCarry(carry bool) {
	switch {
	case carry:
		m.registers.V[FlagRegister] = 1
	case m.quirks.ClearFlagOnNoCarry:
		m.registers.V[FlagRegister] = 0
	}
}

// setBorrow sets VF when a subtraction borrowed, following the same policy
// as setCarry. With the CarryOnNoBorrow quirk VF holds the inverted borrow.
func (m *Machine) setBorrow(borrow bool) {
	if m.quirks.CarryOnNoBorrow {
		m.registers.V[FlagRegister] = boolToFlag(!borrow)
		return
	}
	m.setCarry(borrow)
}

// shiftSource returns the operand that shift instructions read.
func (m *Machine) shiftSource(x, y uint8) uint8 {
	if m.quirks.ShiftInPlace {
		return x
	}
	return y
}
