package chip8

// TimerRate is the frequency in Hz at which the timers are decremented.
const TimerRate = 60

// TimerBank contains the delay and sound countdown timers.
type TimerBank struct {
	delay uint8
	sound uint8
}

// Delay returns the current delay timer value.
func (t *TimerBank) Delay() uint8 {
	return t.delay
}

// Sound returns the current sound timer value.
func (t *TimerBank) Sound() uint8 {
	return t.sound
}

// SetDelay sets the delay timer.
func (t *TimerBank) SetDelay(value uint8) {
	t.delay = value
}

// SetSound sets the sound timer.
func (t *TimerBank) SetSound(value uint8) {
	t.sound = value
}

// Tick decrements both timers by one, stopping at 0.
func (t *TimerBank) Tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

func (t *TimerBank) reset() {
	*t = TimerBank{}
}
