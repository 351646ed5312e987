//go:build !headless

package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/chip8emu/internal/machine"
)

// keymap maps keypad indexes to host keys.
var keymap = [machine.KeyCount]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.KeyDigit1,
	0x2: ebiten.KeyDigit2,
	0x3: ebiten.KeyDigit3,
	0x4: ebiten.KeyQ,
	0x5: ebiten.KeyW,
	0x6: ebiten.KeyE,
	0x7: ebiten.KeyA,
	0x8: ebiten.KeyS,
	0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ,
	0xB: ebiten.KeyC,
	0xC: ebiten.KeyDigit4,
	0xD: ebiten.KeyR,
	0xE: ebiten.KeyF,
	0xF: ebiten.KeyV,
}

// keyEdges compares the current host key state with the previous keypad
// state and reports every keypad key that changed.
func keyEdges(previous *[machine.KeyCount]bool, pressed func(ebiten.Key) bool, changed func(key uint8, down bool) error) error {
	for i, hostKey := range keymap {
		down := pressed(hostKey)
		if down == previous[i] {
			continue
		}
		previous[i] = down
		if err := changed(uint8(i), down); err != nil {
			return err
		}
	}
	return nil
}
