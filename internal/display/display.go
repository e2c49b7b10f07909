// Package display provides the monochrome framebuffer that the CHIP-8 machine draws to.
package display

import (
	"strings"
	"sync"
)

// Screen dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// spriteWidth is the fixed width of a sprite row in pixels.
const spriteWidth = 8

// Framebuffer is a 64x32 monochrome screen. It is safe for concurrent use so
// that a renderer can read frames while the machine draws.
type Framebuffer struct {
	mu     sync.RWMutex
	pixels [Height][Width]bool
	dirty  bool
}

// New returns a cleared framebuffer.
func New() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns off all pixels.
func (f *Framebuffer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pixels = [Height][Width]bool{}
	f.dirty = true
}

// Draw XORs the sprite rows onto the screen with the top left corner at x, y.
// Coordinates and pixels wrap around the screen edges. It returns whether any
// pixel was turned off.
func (f *Framebuffer) Draw(x, y uint8, sprite []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	collided := false
	for row, bits := range sprite {
		py := (int(y) + row) % Height
		for col := range spriteWidth {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % Width
			if f.pixels[py][px] {
				collided = true
			}
			f.pixels[py][px] = !f.pixels[py][px]
		}
	}
	f.dirty = true
	return collided
}

// Pixel returns whether the pixel at x, y is set.
func (f *Framebuffer) Pixel(x, y int) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pixels[y%Height][x%Width]
}

// Dirty returns whether the screen changed since the last call and resets the flag.
func (f *Framebuffer) Dirty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	dirty := f.dirty
	f.dirty = false
	return dirty
}

// String renders the screen as text, one line per pixel row.
func (f *Framebuffer) String() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var buf strings.Builder
	buf.Grow(Height * (Width + 1))
	for y := range Height {
		for x := range Width {
			if f.pixels[y][x] {
				buf.WriteByte('#')
			} else {
				buf.WriteByte('.')
			}
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
