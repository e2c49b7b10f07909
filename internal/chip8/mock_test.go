package chip8

// mockRandom returns a fixed value.
type mockRandom struct {
	value uint8
}

func (r mockRandom) RandomByte() uint8 {
	return r.value
}

// mockKeypad is a minimal keypad for testing.
type mockKeypad struct {
	down    map[uint8]bool
	pressed []uint8
}

func newMockKeypad() *mockKeypad {
	return &mockKeypad{
		down: make(map[uint8]bool),
	}
}

func (k *mockKeypad) IsKeyDown(key uint8) bool {
	return k.down[key]
}

func (k *mockKeypad) PressedKey() (uint8, bool) {
	if len(k.pressed) == 0 {
		return 0, false
	}
	key := k.pressed[0]
	k.pressed = k.pressed[1:]
	return key, true
}

func (k *mockKeypad) ResetPressed() {
	k.pressed = nil
}

// mockDisplay records draw requests.
type mockDisplay struct {
	cleared  int
	x, y     uint8
	sprite   []byte
	collided bool
}

func (d *mockDisplay) Clear() {
	d.cleared++
}

func (d *mockDisplay) Draw(x, y uint8, sprite []byte) bool {
	d.x = x
	d.y = y
	d.sprite = sprite
	return d.collided
}

// newTestMachine returns a machine with the given program loaded.
func newTestMachine(program []byte, opts ...Option) *Machine {
	m := New(opts...)
	if err := m.LoadProgram(program); err != nil {
		panic(err)
	}
	return m
}

// words encodes instruction words as a big endian program image.
func words(opcodes ...uint16) []byte {
	data := make([]byte, 0, len(opcodes)*2)
	for _, op := range opcodes {
		data = append(data, byte(op>>8), byte(op))
	}
	return data
}
