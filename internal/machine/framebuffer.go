package machine

import "math/bits"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Framebuffer is the 64x32 monochrome display. Every row is stored as a
// 64 bit word with column 0 in the most significant bit.
type Framebuffer struct {
	rows [DisplayHeight]uint64
}

// Pixel returns whether the pixel at the given column and row is set.
// Coordinates outside of the display return false.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return f.rows[y]&columnBit(x) != 0
}

// Row returns the pixels of the given row, column 0 in the most significant
// bit.
func (f *Framebuffer) Row(y int) uint64 {
	if y < 0 || y >= DisplayHeight {
		return 0
	}
	return f.rows[y]
}

// Lit returns the number of set pixels.
func (f *Framebuffer) Lit() int {
	count := 0
	for _, row := range f.rows {
		count += bits.OnesCount64(row)
	}
	return count
}

func (f *Framebuffer) clear() {
	f.rows = [DisplayHeight]uint64{}
}

// toggle flips the pixel and returns whether it was set before.
func (f *Framebuffer) toggle(x, y int) bool {
	bit := columnBit(x)
	wasSet := f.rows[y]&bit != 0
	f.rows[y] ^= bit
	return wasSet
}

func columnBit(x int) uint64 {
	return 1 << (DisplayWidth - 1 - x)
}
