// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/retroenv/chip8emu/internal/detector"
	"github.com/retroenv/chip8emu/internal/display"
	"github.com/retroenv/chip8emu/internal/driver"
	"github.com/retroenv/chip8emu/internal/frontend"
	"github.com/retroenv/chip8emu/internal/loader"
	"github.com/retroenv/chip8emu/internal/machine"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/trace"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the input ROM and runs it. In headless mode the final
// display is written to output.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, emuOpts options.Emulator, output io.Writer) error {
	if err := p.detector.Validate(opts.Input); err != nil {
		return fmt.Errorf("detecting system: %w", err)
	}

	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	return p.ExecuteWithProgram(ctx, program, opts, emuOpts, output)
}

// ExecuteWithProgram runs the emulation with a pre-loaded program image.
// This is useful for testing and programmatic usage where the program is already in memory.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, program []byte, opts options.Program,
	emuOpts options.Emulator, output io.Writer) error {

	m, err := p.createMachine(program, opts, emuOpts)
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	p.printInfo(opts, emuOpts, len(program))

	if opts.Headless {
		return p.runHeadless(ctx, m, emuOpts, output)
	}
	return p.runWindow(m, opts, emuOpts)
}

// createMachine creates the machine with the configured quirks and an
// optional instruction tracer.
func (p *Pipeline) createMachine(program []byte, opts options.Program, emuOpts options.Emulator) (*machine.Machine, error) {
	machineOpts := []machine.Option{
		machine.WithLogger(p.logger),
		machine.WithQuirks(emuOpts.Quirks),
	}
	if opts.Trace {
		machineOpts = append(machineOpts, machine.WithTracer(trace.New(p.logger, emuOpts.Quirks)))
	}

	m, err := machine.New(program, machineOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading program image: %w", err)
	}
	return m, nil
}

// runHeadless runs the configured number of frames and prints the display,
// also when the run was stopped by a fault or cancellation.
func (p *Pipeline) runHeadless(ctx context.Context, m *machine.Machine, emuOpts options.Emulator, output io.Writer) error {
	clock := driver.New(p.logger, m, emuOpts.CyclesPerFrame)
	runErr := clock.Run(ctx, emuOpts.Frames)

	if err := display.WriteASCII(output, m.Framebuffer()); err != nil {
		return fmt.Errorf("printing display: %w", err)
	}
	if runErr != nil {
		return fmt.Errorf("running machine: %w", runErr)
	}
	return nil
}

// runWindow runs the machine in a window until it is closed.
func (p *Pipeline) runWindow(m *machine.Machine, opts options.Program, emuOpts options.Emulator) error {
	title := "chip8emu - " + filepath.Base(opts.Input)

	err := frontend.Run(p.logger, m, emuOpts, title)
	if errors.Is(err, frontend.ErrUnavailable) {
		return fmt.Errorf("%w, use -headless", err)
	}
	if err != nil {
		return fmt.Errorf("running machine: %w", err)
	}
	return nil
}

// printInfo prints information about the ROM being run.
func (p *Pipeline) printInfo(opts options.Program, emuOpts options.Emulator, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.Int("cycles_per_frame", emuOpts.CyclesPerFrame),
	)
	if emuOpts.Quirks.ShiftUsesVY {
		p.logger.Info("Quirk enabled: shift instructions read VY")
	}
	if emuOpts.Quirks.JumpUsesVX {
		p.logger.Info("Quirk enabled: jump with offset adds VX")
	}
}
