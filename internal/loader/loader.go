// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw CHIP-8 program image. The file has no header, its content
// is loaded verbatim at the program start address. Files that do not fit into
// the machine memory are rejected without reading them completely.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("file %s: %w: maximum is %d bytes", path, chip8.ErrProgramTooLarge, chip8.MaxProgramSize)
	}
	return data, nil
}
