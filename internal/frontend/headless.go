//go:build headless

package frontend

import (
	"github.com/retroenv/chip8emu/internal/machine"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Run always returns ErrUnavailable.
func Run(_ *log.Logger, _ *machine.Machine, _ options.Emulator, _ string) error {
	return ErrUnavailable
}
