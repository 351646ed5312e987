package trace

import (
	"fmt"

	"github.com/retroenv/chip8emu/internal/machine"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup returns the instruction matching the given word. The second return
// value is false if the word is not a valid CHIP-8 instruction.
func Lookup(word uint16) (Instruction, bool) {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value {
			return Instruction{ins: op.Instruction}, op.Instruction != nil
		}
	}
	return Instruction{}, false
}

// Disassemble returns the assembly representation of an instruction word
// as executed with the given quirks. Words that do not form an instruction
// are returned as a data directive.
func Disassemble(word uint16, quirks machine.Quirks) string {
	instruction, ok := Lookup(word)
	return format(instruction, ok, word, quirks)
}

func format(instruction Instruction, ok bool, word uint16, quirks machine.Quirks) string {
	if !ok {
		return fmt.Sprintf(".word $%04X", word)
	}

	name := instruction.Name()
	if params := formatParams(name, word, quirks); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// formatParams formats the operands of an instruction.
func formatParams(name string, word uint16, quirks machine.Quirks) string {
	switch name {
	case chip8.ClsName, chip8.RetName:
		return ""
	case chip8.JpName:
		return formatJump(word, quirks.JumpUsesVX)
	case chip8.CallName:
		return fmt.Sprintf("$%03X", word&0x0FFF)
	case chip8.SeName, chip8.SneName:
		return formatCompare(word)
	case chip8.LdName:
		return formatLoad(word)
	case chip8.AddName:
		return formatAdd(word)
	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName:
		return fmt.Sprintf("V%X, V%X", registerX(word), registerY(word))
	case chip8.ShrName, chip8.ShlName:
		if quirks.ShiftUsesVY {
			return fmt.Sprintf("V%X, V%X", registerX(word), registerY(word))
		}
		return fmt.Sprintf("V%X", registerX(word))
	case chip8.SkpName, chip8.SknpName:
		return fmt.Sprintf("V%X", registerX(word))
	case chip8.RndName:
		return fmt.Sprintf("V%X, $%02X", registerX(word), word&0x00FF)
	case chip8.DrwName:
		return fmt.Sprintf("V%X, V%X, $%X", registerX(word), registerY(word), word&0x000F)
	}
	return ""
}

// formatJump formats JP addr and JP Vx, addr. The offset register of BNNN
// is V0 unless the jump quirk selects the high nibble of the address.
func formatJump(word uint16, jumpUsesVX bool) string {
	switch word & 0xF000 {
	case 0x1000:
		return fmt.Sprintf("$%03X", word&0x0FFF)
	case 0xB000:
		register := uint16(0)
		if jumpUsesVX {
			register = registerX(word)
		}
		return fmt.Sprintf("V%X, $%03X", register, word&0x0FFF)
	}
	return ""
}

// formatCompare formats SE and SNE against a byte or a register.
func formatCompare(word uint16) string {
	x := registerX(word)
	switch word & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, word&0x00FF)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, registerY(word))
	}
	return ""
}

// formatLoad formats the register, address register, timer and memory
// transfer variants of LD.
func formatLoad(word uint16) string {
	x := registerX(word)
	switch word & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, word&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(word))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", word&0x0FFF)
	case 0xF000:
		return formatLoadMisc(x, word&0x00FF)
	}
	return ""
}

func formatLoadMisc(x, kind uint16) string {
	switch kind {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// formatAdd formats ADD Vx, byte, ADD Vx, Vy and ADD I, Vx.
func formatAdd(word uint16) string {
	x := registerX(word)
	switch word & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, word&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(word))
	case 0xF000:
		return fmt.Sprintf("I, V%X", x)
	}
	return ""
}

// registerX extracts the X register nibble from an instruction word.
func registerX(word uint16) uint16 {
	return (word & 0x0F00) >> 8
}

// registerY extracts the Y register nibble from an instruction word.
func registerY(word uint16) uint16 {
	return (word & 0x00F0) >> 4
}
