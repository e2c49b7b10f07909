package chip8

// RandomSource supplies uniformly distributed random bytes.
type RandomSource interface {
	RandomByte() uint8
}

// Keypad reports the state of the 16 key hexadecimal keypad.
type Keypad interface {
	// IsKeyDown returns whether the given key is currently pressed.
	IsKeyDown(key uint8) bool
	// PressedKey returns a key that was pressed since the last call, without blocking.
	PressedKey() (uint8, bool)
	// ResetPressed discards the key presses that were not returned by PressedKey yet.
	ResetPressed()
}

// Display receives the drawing requests of the machine.
type Display interface {
	// Clear turns off all pixels.
	Clear()
	// Draw XORs the 8 pixel wide sprite rows onto the screen at x, y with
	// wraparound and returns whether any set pixel was turned off.
	Draw(x, y uint8, sprite []byte) bool
}

// zeroRandom is used when no random source is configured.
type zeroRandom struct{}

func (zeroRandom) RandomByte() uint8 { return 0 }

// noKeypad is used when no keypad is configured, no key is ever pressed.
type noKeypad struct{}

func (noKeypad) IsKeyDown(uint8) bool      { return false }
func (noKeypad) PressedKey() (uint8, bool) { return 0, false }
func (noKeypad) ResetPressed()             {}

// discardDisplay is used when no display is configured.
type discardDisplay struct{}

func (discardDisplay) Clear()                        {}
func (discardDisplay) Draw(uint8, uint8, []byte) bool { return false }
