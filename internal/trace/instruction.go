package trace

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction wraps a retrogolib CHIP-8 instruction definition.
type Instruction struct {
	ins *chip8.Instruction
}

// Name returns the instruction mnemonic.
func (i Instruction) Name() string {
	if i.ins == nil {
		return ""
	}
	return i.ins.Name
}

// Flow returns a short description of the control flow effect of the
// instruction, or an empty string for sequential instructions.
func (i Instruction) Flow() string {
	switch i.ins {
	case nil:
		return ""
	case chip8.CallInst:
		return "call"
	case chip8.JpInst:
		return "jump"
	case chip8.RetInst:
		return "return"
	}

	if chip8.SkipInstructions.Contains(i.ins.Name) {
		return "skip"
	}
	return ""
}
