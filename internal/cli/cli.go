// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/config"
	"github.com/retroenv/chip8emu/internal/options"
)

// ParseFlags parses command line flags and returns program and emulator options
func ParseFlags() (options.Program, options.Emulator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, options.Emulator{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Emulator{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Emulator{}, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, config.CreateEmulatorOptions(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8emu [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && len(arg) > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.CyclesPerFrame < 1 {
		return fmt.Errorf("invalid cycles per frame %d, must be at least 1", opts.CyclesPerFrame)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d, must be at least 1", opts.Scale)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d, must not be negative", opts.Frames)
	}

	// instructions are traced as debug messages
	if opts.Trace {
		opts.Debug = true
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Batch, "batch", "", "run a batch of ROM files headless for the given path and file mask, for example *.ch8")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a window and print the display after the configured frames")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.IntVar(&opts.CyclesPerFrame, "cpf", options.DefaultCyclesPerFrame, "instructions executed per 60Hz frame")
	flags.IntVar(&opts.Frames, "frames", options.DefaultHeadlessFrames, "frames to run in headless mode, 0 runs until a fault")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window scale factor")
	flags.IntVar(&opts.ToneFrequency, "tone", options.DefaultToneFrequency, "beeper frequency in Hz")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the beeper")
	flags.BoolVar(&opts.ShiftUsesVY, "shift-vy", false, "shift instructions read VY instead of VX")
	flags.BoolVar(&opts.JumpUsesVX, "jump-vx", false, "jump with offset adds VX instead of V0")
}
