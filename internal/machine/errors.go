package machine

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

var (
	// ErrProgramTooLarge is returned by New for program images that do not
	// fit into memory after ProgramStart.
	ErrProgramTooLarge = errors.New("program image too large")
	// ErrStackOverflow is the fault raised by a call with a full stack.
	ErrStackOverflow = chip8.ErrStackOverflow
	// ErrStackUnderflow is the fault raised by a return with an empty stack.
	ErrStackUnderflow = chip8.ErrStackUnderflow
	// ErrInvalidKey is returned for keypad indexes outside of 0x0-0xF.
	ErrInvalidKey = chip8.ErrKeyIndexOutOfBounds
)

// Fault describes the instruction that halted the machine.
type Fault struct {
	Address uint16 // address of the faulting instruction
	Opcode  uint16 // the faulting instruction word
	Err     error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at $%03X executing %04X: %v", f.Address, f.Opcode, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
