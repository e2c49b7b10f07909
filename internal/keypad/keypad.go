// Package keypad provides key input sources for the 16 key CHIP-8 keypad.
package keypad

import (
	"sync"
	"time"
)

// NumKeys is the number of keys of the hexadecimal keypad.
const NumKeys = 16

// maxPressed limits the queued key presses, the oldest presses are dropped first.
const maxPressed = 16

// Keys tracks the pressed state of the keypad. Keys can either be held until
// released or held for a fixed duration, which is used by input sources that
// only report key presses. It is safe for concurrent use.
type Keys struct {
	mu       sync.Mutex
	now      func() time.Time
	down     [NumKeys]bool
	deadline [NumKeys]time.Time
	pressed  []uint8
}

// New returns a keypad with no keys pressed.
func New() *Keys {
	return &Keys{
		now: time.Now,
	}
}

// Press marks the key as held down until Release is called.
func (k *Keys) Press(key uint8) {
	if key >= NumKeys {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	k.down[key] = true
	k.deadline[key] = time.Time{}
	k.queuePress(key)
}

// Hold marks the key as held down for the given duration.
func (k *Keys) Hold(key uint8, duration time.Duration) {
	if key >= NumKeys {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	k.down[key] = true
	k.deadline[key] = k.now().Add(duration)
	k.queuePress(key)
}

// Release marks the key as released.
func (k *Keys) Release(key uint8) {
	if key >= NumKeys {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	k.down[key] = false
	k.deadline[key] = time.Time{}
}

// IsKeyDown returns whether the key is currently held down.
func (k *Keys) IsKeyDown(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.down[key] {
		return false
	}
	deadline := k.deadline[key]
	if !deadline.IsZero() && !k.now().Before(deadline) {
		k.down[key] = false
		k.deadline[key] = time.Time{}
		return false
	}
	return true
}

// queuePress adds a key press to the queue. The caller must hold the lock.
func (k *Keys) queuePress(key uint8) {
	if len(k.pressed) >= maxPressed {
		k.pressed = k.pressed[1:]
	}
	k.pressed = append(k.pressed, key)
}

// PressedKey returns the oldest key press that was not consumed yet.
func (k *Keys) PressedKey() (uint8, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if len(k.pressed) == 0 {
		return 0, false
	}
	key := k.pressed[0]
	k.pressed = k.pressed[1:]
	return key, true
}

// ResetPressed discards all queued key presses. The held state of the keys
// is not changed.
func (k *Keys) ResetPressed() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.pressed = nil
}
