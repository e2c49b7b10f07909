package keypad

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// HoldDuration is how long a key counts as held down after a terminal key press.
// Terminals report no key releases, so presses decay after this duration.
const HoldDuration = 150 * time.Millisecond

// layout maps the left hand side of a QWERTY keyboard to the keypad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var layout = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Control bytes that stop the emulation while the terminal is in raw mode.
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1B
)

// Terminal reads key presses from a raw mode terminal.
type Terminal struct {
	*Keys

	input  io.Reader
	fd     int
	quit   func()
	done   chan struct{}
	once   sync.Once
	state  *term.State
	stopMu sync.Mutex
}

// NewTerminal returns a terminal keypad reading from stdin. The quit function
// is called when Ctrl+C or Escape is pressed.
func NewTerminal(quit func()) *Terminal {
	return &Terminal{
		Keys:  New(),
		input: os.Stdin,
		fd:    int(os.Stdin.Fd()),
		quit:  quit,
		done:  make(chan struct{}),
	}
}

// Start switches the terminal to raw mode and starts reading key presses.
func (t *Terminal) Start() error {
	if !term.IsTerminal(t.fd) {
		return errors.New("stdin is not a terminal")
	}

	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("setting terminal raw mode: %w", err)
	}
	t.stopMu.Lock()
	t.state = state
	t.stopMu.Unlock()

	go t.read()
	return nil
}

// Stop restores the terminal state. Reading stops with the next input byte.
func (t *Terminal) Stop() {
	t.once.Do(func() {
		close(t.done)
	})

	t.stopMu.Lock()
	defer t.stopMu.Unlock()
	if t.state != nil {
		_ = term.Restore(t.fd, t.state)
		t.state = nil
	}
}

// read forwards input bytes until Stop is called. A read that is blocked on
// stdin when Stop is called only returns with the next input byte; the
// goroutine is left behind in that case as the process exits after the run.
func (t *Terminal) read() {
	buf := make([]byte, 1)
	for {
		n, err := t.input.Read(buf)
		select {
		case <-t.done:
			return
		default:
		}
		if err != nil {
			return
		}
		if n > 0 {
			t.handleByte(buf[0])
		}
	}
}

// handleByte translates a terminal input byte to a key press.
func (t *Terminal) handleByte(b byte) {
	switch b {
	case keyCtrlC, keyEscape:
		if t.quit != nil {
			t.quit()
		}
		return
	}

	// upper case letters map to the same keys
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	if key, ok := layout[b]; ok {
		t.Hold(key, HoldDuration)
	}
}
