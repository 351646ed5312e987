// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/chip8emu/internal/machine"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings.
// Tracing needs debug level as instructions are logged as debug messages.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateEmulatorOptions converts the program options into the options of
// an emulation session.
func CreateEmulatorOptions(opts options.Program) options.Emulator {
	emuOpts := options.NewEmulator()

	if opts.CyclesPerFrame > 0 {
		emuOpts.CyclesPerFrame = opts.CyclesPerFrame
	}
	if opts.Frames >= 0 {
		emuOpts.Frames = opts.Frames
	}
	if opts.Scale > 0 {
		emuOpts.Scale = opts.Scale
	}
	if opts.ToneFrequency > 0 {
		emuOpts.ToneFrequency = opts.ToneFrequency
	}
	emuOpts.Mute = opts.Mute
	emuOpts.Quirks = machine.Quirks{
		ShiftUsesVY: opts.ShiftUsesVY,
		JumpUsesVX:  opts.JumpUsesVX,
	}
	return emuOpts
}
