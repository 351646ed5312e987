// Package options contains the program options.
package options

import (
	"github.com/retroenv/chip8emu/internal/machine"
)

// Default emulation settings.
const (
	DefaultCyclesPerFrame = 10
	DefaultScale          = 10
	DefaultToneFrequency  = 440
	DefaultHeadlessFrames = 600
)

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
	Batch string `flag:"batch" usage:"run a batch of ROMs headless matching pattern (e.g. *.ch8)"`
}

// Flags contains behavior options.
type Flags struct {
	Headless bool `flag:"headless" usage:"run without a window and print the final display"`
	Trace    bool `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Debug    bool `flag:"debug" usage:"enable debug logging"`
	Quiet    bool `flag:"q" usage:"quiet mode"`
}

// MachineFlags contains emulation options.
type MachineFlags struct {
	CyclesPerFrame int  `flag:"cpf" usage:"instructions executed per 60Hz frame" default:"10"`
	Frames         int  `flag:"frames" usage:"frames to run in headless mode" default:"600"`
	Scale          int  `flag:"scale" usage:"window scale factor" default:"10"`
	ToneFrequency  int  `flag:"tone" usage:"beeper frequency in Hz" default:"440"`
	Mute           bool `flag:"mute" usage:"disable the beeper"`
	ShiftUsesVY    bool `flag:"shift-vy" usage:"shift instructions read VY instead of VX"`
	JumpUsesVX     bool `flag:"jump-vx" usage:"jump with offset adds VX instead of V0"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	MachineFlags
}

// Emulator defines options to control the emulation session.
type Emulator struct {
	CyclesPerFrame int            // instructions executed between two timer ticks
	Frames         int            // frames to run in headless mode, 0 runs until a fault
	Scale          int            // window scale factor
	ToneFrequency  int            // beeper frequency in Hz
	Mute           bool           // disable the beeper
	Quirks         machine.Quirks // interpreter compatibility behavior
}

// NewEmulator returns a new options instance with default options.
func NewEmulator() Emulator {
	return Emulator{
		CyclesPerFrame: DefaultCyclesPerFrame,
		Frames:         DefaultHeadlessFrames,
		Scale:          DefaultScale,
		ToneFrequency:  DefaultToneFrequency,
	}
}
