package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8emu/internal/machine"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, options.Emulator, error) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = append([]string{"prog"}, args...)
	return ParseFlags()
}

func TestParseFlags_EmulatorOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Emulator
	}{
		{
			name: "default flags",
			args: []string{"test.ch8"},
			want: options.NewEmulator(),
		},
		{
			name: "timing flags",
			args: []string{"-cpf", "20", "-frames", "0", "-scale", "4", "test.ch8"},
			want: options.Emulator{
				CyclesPerFrame: 20,
				Frames:         0,
				Scale:          4,
				ToneFrequency:  options.DefaultToneFrequency,
			},
		},
		{
			name: "audio flags",
			args: []string{"-tone", "880", "-mute", "test.ch8"},
			want: options.Emulator{
				CyclesPerFrame: options.DefaultCyclesPerFrame,
				Frames:         options.DefaultHeadlessFrames,
				Scale:          options.DefaultScale,
				ToneFrequency:  880,
				Mute:           true,
			},
		},
		{
			name: "quirk flags",
			args: []string{"-shift-vy", "-jump-vx", "test.ch8"},
			want: options.Emulator{
				CyclesPerFrame: options.DefaultCyclesPerFrame,
				Frames:         options.DefaultHeadlessFrames,
				Scale:          options.DefaultScale,
				ToneFrequency:  options.DefaultToneFrequency,
				Quirks:         machine.Quirks{ShiftUsesVY: true, JumpUsesVX: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, got, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, "test.ch8", opts.Input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_TraceEnablesDebug(t *testing.T) {
	opts, _, err := parseArgs(t, "-trace", "-headless", "test.ch8")
	assert.NoError(t, err)
	assert.True(t, opts.Trace)
	assert.True(t, opts.Debug)
	assert.True(t, opts.Headless)
}

func TestParseFlags_InputFlag(t *testing.T) {
	opts, _, err := parseArgs(t, "-i", "game.ch8")
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", opts.Input)
}

func TestParseFlags_Usage(t *testing.T) {
	_, _, err := parseArgs(t)
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))

	_, _, err = parseArgs(t, "test.ch8", "-debug")
	assert.True(t, errors.As(err, &usageErr))
	assert.ErrorContains(t, err, "-debug")
}

func TestNormalizeOptions(t *testing.T) {
	valid := options.MachineFlags{CyclesPerFrame: 1, Scale: 1}

	tests := []struct {
		name        string
		flags       options.MachineFlags
		expectError bool
	}{
		{"valid", valid, false},
		{"zero cycles", options.MachineFlags{CyclesPerFrame: 0, Scale: 1}, true},
		{"zero scale", options.MachineFlags{CyclesPerFrame: 1, Scale: 0}, true},
		{"negative frames", options.MachineFlags{CyclesPerFrame: 1, Scale: 1, Frames: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{MachineFlags: tt.flags}
			err := normalizeOptions(&opts)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{"single file", []string{"rom.ch8"}, false},
		{"empty trailing argument", []string{"rom.ch8", ""}, false},
		{"empty first argument", []string{"", "rom.ch8"}, false},
		{"flag after file", []string{"rom.ch8", "-q"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArgs(tt.args)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseFlags_EmptyTrailingArgument(t *testing.T) {
	opts, _, err := parseArgs(t, "rom.ch8", "")
	assert.NoError(t, err)
	assert.Equal(t, "rom.ch8", opts.Input)
}
