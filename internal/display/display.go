// Package display converts the machine framebuffer into printable and
// drawable representations.
package display

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/retroenv/chip8emu/internal/machine"
)

// Characters used for the ASCII representation.
const (
	PixelOn  = '#'
	PixelOff = '.'
)

// BufferSize is the size of an RGBA pixel buffer for the framebuffer.
const BufferSize = machine.DisplayWidth * machine.DisplayHeight * 4

// Default colors of lit and unlit pixels.
var (
	DefaultForeground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	DefaultBackground = color.RGBA{A: 0xFF}
)

// WriteASCII writes the framebuffer as one text line per display row.
func WriteASCII(w io.Writer, fb *machine.Framebuffer) error {
	var b strings.Builder
	b.Grow((machine.DisplayWidth + 1) * machine.DisplayHeight)

	for y := range machine.DisplayHeight {
		for x := range machine.DisplayWidth {
			if fb.Pixel(x, y) {
				b.WriteByte(PixelOn)
			} else {
				b.WriteByte(PixelOff)
			}
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}

// FillRGBA writes the framebuffer into an RGBA pixel buffer of BufferSize
// bytes, as expected by image.RGBA and ebiten.Image.WritePixels.
func FillRGBA(dst []byte, fb *machine.Framebuffer, foreground, background color.RGBA) {
	_ = dst[BufferSize-1]

	offset := 0
	for y := range machine.DisplayHeight {
		for x := range machine.DisplayWidth {
			c := background
			if fb.Pixel(x, y) {
				c = foreground
			}
			dst[offset] = c.R
			dst[offset+1] = c.G
			dst[offset+2] = c.B
			dst[offset+3] = c.A
			offset += 4
		}
	}
}
