package chip8

// Quirks selects between the behaviors that differ across CHIP-8 interpreters.
// The zero value leaves the flag register untouched when an addition or
// subtraction does not carry or borrow and performs raw 16-bit index arithmetic.
type Quirks struct {
	// ClearFlagOnNoCarry writes 0 to VF when 8XY4, 8XY5 or 8XY7 do not
	// carry or borrow, instead of leaving VF unchanged.
	ClearFlagOnNoCarry bool

	// CarryOnNoBorrow makes 8XY5 and 8XY7 write 1 to VF when no borrow
	// occurred and 0 otherwise, as the COSMAC VIP interpreter does.
	CarryOnNoBorrow bool

	// WrapIndex masks the result of FX1E to 12 bits.
	WrapIndex bool

	// ShiftInPlace makes 8XY6 and 8XYE shift VX instead of VY.
	ShiftInPlace bool

	// IncrementIndex makes FX55 and FX65 leave I pointing after the last
	// transferred register.
	IncrementIndex bool
}
