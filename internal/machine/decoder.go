package machine

// Instruction holds the fields of a decoded 16-bit instruction word.
// Not every field is meaningful for every instruction.
type Instruction struct {
	Word  uint16
	Group uint8  // top nibble, selects the instruction family
	NNN   uint16 // low 12 bits, address constant
	NN    uint8  // low byte, immediate constant
	X     uint8  // high nibble of the low 12 bits, register index
	Y     uint8  // high nibble of the low byte, register index
	N     uint8  // low nibble, sub-opcode or sprite height
}

// Decode extracts the opcode fields of an instruction word. Every word
// decodes to a field set, whether or not it names a valid instruction.
func Decode(word uint16) Instruction {
	return Instruction{
		Word:  word,
		Group: uint8(word >> 12),
		NNN:   word & 0x0FFF,
		NN:    uint8(word),
		X:     uint8(word>>8) & 0xF,
		Y:     uint8(word>>4) & 0xF,
		N:     uint8(word) & 0xF,
	}
}
