package chip8

import "fmt"

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address.
	MaxAddress = MemorySize - 1

	// ProgramStart is the address that program images are loaded to
	// and where execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart
)

// Memory is the flat 4KB address space of the machine.
type Memory struct {
	cells [MemorySize]byte
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if err := checkRange(int(address), 1); err != nil {
		return 0, err
	}
	return m.cells[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if err := checkRange(int(address), 1); err != nil {
		return err
	}
	m.cells[address] = value
	return nil
}

// ReadWord returns the big endian 16-bit word starting at the given address.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	if err := checkRange(int(address), 2); err != nil {
		return 0, err
	}
	return uint16(m.cells[address])<<8 | uint16(m.cells[address+1]), nil
}

// ReadRange returns a copy of length bytes starting at the given address.
func (m *Memory) ReadRange(address uint16, length int) ([]byte, error) {
	if err := checkRange(int(address), length); err != nil {
		return nil, err
	}
	data := make([]byte, length)
	copy(data, m.cells[int(address):int(address)+length])
	return data, nil
}

// WriteRange copies data into memory starting at the given address.
func (m *Memory) WriteRange(address uint16, data []byte) error {
	if err := checkRange(int(address), len(data)); err != nil {
		return err
	}
	copy(m.cells[address:], data)
	return nil
}

// Bytes returns a copy of the complete memory content.
func (m *Memory) Bytes() []byte {
	data := make([]byte, MemorySize)
	copy(data, m.cells[:])
	return data
}

// reset clears the memory and installs the font.
func (m *Memory) reset() {
	m.cells = [MemorySize]byte{}
	copy(m.cells[FontBase:], font[:])
}

// checkRange verifies that length bytes starting at address are addressable.
// The address is passed as int so that sums like I+X can not wrap around.
func checkRange(address, length int) error {
	if address < 0 || length < 0 || address+length > MemorySize {
		return fmt.Errorf("%w: address %04X length %d", ErrOutOfBounds, address, length)
	}
	return nil
}
