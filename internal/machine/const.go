package machine

// Memory layout.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the address the program image is loaded to and where
	// execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontAddress is the address of the first built-in font sprite.
	FontAddress = 0x000

	// FontSpriteSize is the size in bytes of a single font sprite.
	FontSpriteSize = 5

	addressMask = MemorySize - 1
)

// Machine dimensions.
const (
	RegisterCount = 16
	StackSize     = 16
	KeyCount      = 16

	// FlagRegister is the index of VF, which receives carry, borrow, shifted
	// out bits and sprite collisions.
	FlagRegister = 0xF

	instructionSize = 2
)

// font contains the hexadecimal digit sprites 0-F, each 4 pixels wide.
var font = [16 * FontSpriteSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
