package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned when an instruction word matches no known pattern.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrStackOverflow is returned when a call is made with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is made with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrOutOfBounds is returned for memory accesses outside of the address space.
	ErrOutOfBounds = errors.New("memory access out of bounds")
	// ErrProgramTooLarge is returned when a program image does not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrNotAwaitingKey is returned when a key is supplied without a pending key wait.
	ErrNotAwaitingKey = errors.New("machine is not awaiting a key")
	// ErrInvalidKey is returned for key identifiers outside of 0x0-0xF.
	ErrInvalidKey = errors.New("invalid key")
)

// DecodeError describes an instruction word that could not be decoded.
type DecodeError struct {
	Word    uint16 // raw instruction word
	Address uint16 // address the word was fetched from
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %04X at address %04X", ErrUnknownOpcode, e.Word, e.Address)
}

// Unwrap allows errors.Is checks against ErrUnknownOpcode.
func (e *DecodeError) Unwrap() error {
	return ErrUnknownOpcode
}
