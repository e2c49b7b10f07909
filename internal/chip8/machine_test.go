package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	m := New()

	state := m.State()
	assert.Equal(t, uint16(0), state.PC)
	assert.Equal(t, uint16(0), state.I)
	assert.Empty(t, state.Stack)
	assert.Equal(t, font[:], state.Memory[FontBase:FontBase+len(font)])
	assert.Equal(t, byte(0), state.Memory[ProgramStart])
}

func TestMachine_LoadProgram(t *testing.T) {
	t.Run("maximum size", func(t *testing.T) {
		m := New()
		program := make([]byte, MemorySize-ProgramStart)
		program[len(program)-1] = 0xAB

		assert.NoError(t, m.LoadProgram(program))
		state := m.State()
		assert.Equal(t, uint16(ProgramStart), state.PC)
		assert.Equal(t, byte(0xAB), state.Memory[MaxAddress])
	})

	t.Run("too large", func(t *testing.T) {
		m := New()
		program := make([]byte, MemorySize-ProgramStart+1)

		err := m.LoadProgram(program)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrProgramTooLarge))
	})

	t.Run("resets previous state", func(t *testing.T) {
		m := newTestMachine(words(0x6A3C, 0x2300))
		_, err := m.Step()
		assert.NoError(t, err)
		_, err = m.Step()
		assert.NoError(t, err)

		assert.NoError(t, m.LoadProgram(words(0x00E0)))
		state := m.State()
		assert.Equal(t, uint8(0), state.V[VA])
		assert.Empty(t, state.Stack)
		assert.Equal(t, uint64(0), state.Cycles)
	})
}

func TestMachine_Reset(t *testing.T) {
	m := newTestMachine(words(0x6A3C, 0xA123, 0xF015))
	for range 3 {
		_, err := m.Step()
		assert.NoError(t, err)
	}

	m.Reset()
	state := m.State()
	assert.Equal(t, [NumRegisters]uint8{}, state.V)
	assert.Equal(t, uint16(0), state.I)
	assert.Equal(t, uint16(0), state.PC)
	assert.Equal(t, uint8(0), state.Delay)
	assert.Equal(t, byte(0), state.Memory[ProgramStart])
	assert.Equal(t, font[0], state.Memory[FontBase])
}

func TestMachine_SetImmediateRoundTrip(t *testing.T) {
	m := newTestMachine(words(0x6A3C))

	ins, err := m.Step()
	assert.NoError(t, err)
	assert.Equal(t, OpSetImmediate, ins.Op)
	assert.Equal(t, VA, ins.X)
	assert.Equal(t, uint8(0x3C), ins.NN)

	state := m.State()
	assert.Equal(t, uint8(0x3C), state.V[VA])
	assert.Equal(t, uint16(ProgramStart+2), state.PC)
}

func TestMachine_CallReturn(t *testing.T) {
	program := make([]byte, 0x102)
	copy(program, words(0x2300))
	copy(program[0x100:], words(0x00EE))
	m := newTestMachine(program)

	_, err := m.Step()
	assert.NoError(t, err)
	state := m.State()
	assert.Equal(t, uint16(0x300), state.PC)
	assert.Equal(t, []uint16{0x202}, state.Stack)

	_, err = m.Step()
	assert.NoError(t, err)
	state = m.State()
	assert.Equal(t, uint16(0x202), state.PC)
	assert.Empty(t, state.Stack)
}

func TestMachine_ReturnUnderflow(t *testing.T) {
	m := newTestMachine(words(0x00EE))

	_, err := m.Step()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, uint16(ProgramStart), m.State().PC)
}

func TestMachine_CallOverflow(t *testing.T) {
	m := newTestMachine(words(0x2200)) // calls itself

	for range StackDepth {
		_, err := m.Step()
		assert.NoError(t, err)
	}

	_, err := m.Step()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Len(t, m.State().Stack, StackDepth)
}

func TestMachine_Jumps(t *testing.T) {
	t.Run("jump", func(t *testing.T) {
		m := newTestMachine(words(0x1ABC))
		_, err := m.Step()
		assert.NoError(t, err)
		assert.Equal(t, uint16(0xABC), m.State().PC)
	})

	t.Run("jump plus V0", func(t *testing.T) {
		m := newTestMachine(words(0x60FF, 0xB300))
		for range 2 {
			_, err := m.Step()
			assert.NoError(t, err)
		}
		assert.Equal(t, uint16(0x3FF), m.State().PC)
	})
}

func TestMachine_Skips(t *testing.T) {
	tests := []struct {
		name   string
		setup  []uint16 // executed before the skip instruction
		skip   uint16
		taken  bool
		keypad func(*mockKeypad)
	}{
		{name: "equal taken", setup: []uint16{0x6112}, skip: 0x3112, taken: true},
		{name: "equal not taken", setup: []uint16{0x6112}, skip: 0x3113, taken: false},
		{name: "not equal taken", setup: []uint16{0x6112}, skip: 0x4113, taken: true},
		{name: "not equal not taken", setup: []uint16{0x6112}, skip: 0x4112, taken: false},
		{name: "registers equal taken", setup: []uint16{0x6112, 0x6212}, skip: 0x5120, taken: true},
		{name: "registers equal not taken", setup: []uint16{0x6112, 0x6213}, skip: 0x5120, taken: false},
		{name: "registers not equal taken", setup: []uint16{0x6112, 0x6213}, skip: 0x9120, taken: true},
		{name: "registers not equal not taken", setup: []uint16{0x6112, 0x6212}, skip: 0x9120, taken: false},
		{
			name: "key down taken", setup: []uint16{0x6105}, skip: 0xE19E, taken: true,
			keypad: func(k *mockKeypad) { k.down[5] = true },
		},
		{name: "key down not taken", setup: []uint16{0x6105}, skip: 0xE19E, taken: false},
		{name: "key up taken", setup: []uint16{0x6105}, skip: 0xE1A1, taken: true},
		{
			name: "key up not taken", setup: []uint16{0x6105}, skip: 0xE1A1, taken: false,
			keypad: func(k *mockKeypad) { k.down[5] = true },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keypad := newMockKeypad()
			if tt.keypad != nil {
				tt.keypad(keypad)
			}
			m := newTestMachine(words(append(tt.setup, tt.skip)...), WithKeypad(keypad))

			for range tt.setup {
				_, err := m.Step()
				assert.NoError(t, err)
			}

			before := m.State().PC
			_, err := m.Step()
			assert.NoError(t, err)

			expected := before + 2
			if tt.taken {
				expected += 2
			}
			assert.Equal(t, expected, m.State().PC)
		})
	}
}

func TestMachine_RandomMasked(t *testing.T) {
	m := newTestMachine(words(0xC30F), WithRandom(mockRandom{value: 0xAB}))

	_, err := m.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x0B), m.State().V[V3])
}

func TestMachine_DecodeFailure(t *testing.T) {
	m := newTestMachine(words(0x6001, 0x8008), WithLogger(log.NewTestLogger(t)))

	_, err := m.Step()
	assert.NoError(t, err)

	_, err = m.Step()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOpcode))

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, uint16(0x8008), decodeErr.Word)
	assert.Equal(t, uint16(0x202), decodeErr.Address)
	assert.Equal(t, uint16(0x202), m.State().PC)
}

func TestMachine_FetchOutOfBounds(t *testing.T) {
	m := newTestMachine(words(0x1FFF))

	_, err := m.Step()
	assert.NoError(t, err)

	_, err = m.Step()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestMachine_WaitForKey(t *testing.T) {
	keypad := newMockKeypad()
	m := newTestMachine(words(0xF30A, 0x6101), WithKeypad(keypad), WithLogger(log.NewTestLogger(t)))

	_, err := m.Step()
	assert.NoError(t, err)
	assert.True(t, m.IsAwaitingKey())

	// no key pressed, the machine stays suspended
	ins, err := m.Step()
	assert.NoError(t, err)
	assert.Equal(t, OpInvalid, ins.Op)
	assert.Equal(t, uint16(0x202), m.State().PC)
	assert.True(t, m.State().AwaitingKey)

	keypad.pressed = append(keypad.pressed, 0x0C)
	ins, err = m.Step()
	assert.NoError(t, err)
	assert.Equal(t, OpSetImmediate, ins.Op)
	assert.False(t, m.IsAwaitingKey())
	assert.Equal(t, uint8(0x0C), m.State().V[V3])
	assert.Equal(t, uint8(0x01), m.State().V[V1])
}

func TestMachine_WaitForKeyIgnoresEarlierPresses(t *testing.T) {
	keypad := newMockKeypad()
	keypad.pressed = []uint8{0x05, 0x07}
	m := newTestMachine(words(0xF30A, 0x6101), WithKeypad(keypad))

	_, err := m.Step()
	assert.NoError(t, err)
	assert.True(t, m.IsAwaitingKey())
	assert.Empty(t, keypad.pressed)

	ins, err := m.Step()
	assert.NoError(t, err)
	assert.Equal(t, OpInvalid, ins.Op)
	assert.True(t, m.IsAwaitingKey())
	assert.Equal(t, uint8(0), m.State().V[V3])

	keypad.pressed = append(keypad.pressed, 0x0B)
	_, err = m.Step()
	assert.NoError(t, err)
	assert.False(t, m.IsAwaitingKey())
	assert.Equal(t, uint8(0x0B), m.State().V[V3])
}

func TestMachine_SupplyKey(t *testing.T) {
	m := newTestMachine(words(0xF50A))

	err := m.SupplyKey(1)
	assert.True(t, errors.Is(err, ErrNotAwaitingKey))

	_, err = m.Step()
	assert.NoError(t, err)
	assert.True(t, m.IsAwaitingKey())

	err = m.SupplyKey(0x10)
	assert.True(t, errors.Is(err, ErrInvalidKey))
	assert.True(t, m.IsAwaitingKey())

	assert.NoError(t, m.SupplyKey(0x0A))
	assert.False(t, m.IsAwaitingKey())
	assert.Equal(t, uint8(0x0A), m.State().V[V5])
}

func TestMachine_Timers(t *testing.T) {
	m := newTestMachine(words(0x6102, 0xF115, 0xF118, 0xF207))
	for range 3 {
		_, err := m.Step()
		assert.NoError(t, err)
	}
	assert.True(t, m.SoundActive())

	m.TickTimers()
	_, err := m.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), m.State().V[V2])

	m.TickTimers()
	m.TickTimers()
	state := m.State()
	assert.Equal(t, uint8(0), state.Delay)
	assert.Equal(t, uint8(0), state.Sound)
	assert.False(t, m.SoundActive())
}

func TestMachine_DrawSprite(t *testing.T) {
	t.Run("collision", func(t *testing.T) {
		display := &mockDisplay{collided: true}
		m := newTestMachine(words(0x6103, 0x6204, 0xA050, 0xD125), WithDisplay(display))
		for range 4 {
			_, err := m.Step()
			assert.NoError(t, err)
		}

		assert.Equal(t, uint8(3), display.x)
		assert.Equal(t, uint8(4), display.y)
		assert.Equal(t, font[:5], display.sprite)
		assert.Equal(t, uint8(1), m.State().V[VF])
	})

	t.Run("no collision clears flag", func(t *testing.T) {
		display := &mockDisplay{}
		m := newTestMachine(words(0x6F01, 0xA050, 0xD001), WithDisplay(display))
		for range 3 {
			_, err := m.Step()
			assert.NoError(t, err)
		}
		assert.Equal(t, uint8(0), m.State().V[VF])
	})

	t.Run("sprite out of bounds", func(t *testing.T) {
		m := newTestMachine(words(0xAFFE, 0xD005))
		_, err := m.Step()
		assert.NoError(t, err)

		_, err = m.Step()
		assert.True(t, errors.Is(err, ErrOutOfBounds))
	})

	t.Run("clear screen", func(t *testing.T) {
		display := &mockDisplay{}
		m := newTestMachine(words(0x00E0), WithDisplay(display))
		_, err := m.Step()
		assert.NoError(t, err)
		assert.Equal(t, 1, display.cleared)
	})
}

func TestMachine_Sys(t *testing.T) {
	m := newTestMachine(words(0x0123))

	ins, err := m.Step()
	assert.NoError(t, err)
	assert.Equal(t, OpSys, ins.Op)
	assert.Equal(t, uint16(0x202), m.State().PC)
}

func TestState_String(t *testing.T) {
	m := newTestMachine(words(0x6A3C, 0x2300))
	for range 2 {
		_, err := m.Step()
		assert.NoError(t, err)
	}

	dump := m.State().String()
	assert.Contains(t, dump, "VA=3C")
	assert.Contains(t, dump, "PC=0300")
	assert.Contains(t, dump, "stack: 0204")
}
