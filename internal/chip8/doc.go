// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine Overview
//
// The machine consists of:
//   - 4KB of byte addressable memory (0x000-0xFFF)
//   - 16 general purpose 8-bit registers (V0-VF), VF doubles as the flag register
//   - a 16-bit index register (I) and a program counter (PC)
//   - a call stack of up to 16 return addresses
//   - a delay timer and a sound timer, decremented externally at 60Hz
//
// # Memory Layout
//
//	0x000-0x1FF: Interpreter area, the hexadecimal font is installed at FontBase
//	0x200-0xFFF: Program image and data
//
// # Execution
//
// Every call to Machine.Step fetches the two byte instruction word at PC,
// advances PC by 2, decodes the word into an Instruction and executes it.
// Display, key input and randomness are collaborators injected with options
// when the machine is created:
//
//	m := chip8.New(
//		chip8.WithDisplay(screen),
//		chip8.WithKeypad(keys),
//		chip8.WithRandom(rng),
//	)
//	if err := m.LoadProgram(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if _, err := m.Step(); err != nil {
//			return fmt.Errorf("executing cycle: %w", err)
//		}
//	}
//
// The wait for key instruction (FX0A) does not block. It puts the machine into
// an awaiting state that is left once the keypad reports a pressed key or the
// caller invokes Machine.SupplyKey.
//
// The machine is not safe for concurrent use, the caller serializes cycles and
// timer ticks.
package chip8
