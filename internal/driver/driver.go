// Package driver paces a machine: it executes a fixed number of instructions
// per 60Hz frame and ticks the timers once per frame.
package driver

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the timer frequency in frames per second.
const FrameRate = 60

// Machine is the part of the machine that the driver controls.
type Machine interface {
	Step() bool
	TickTimers()
	Fault() error
}

// Clock runs a machine frame by frame.
type Clock struct {
	logger         *log.Logger
	machine        Machine
	cyclesPerFrame int
	frames         int
}

// New returns a clock that executes cyclesPerFrame instructions per frame.
// Values below 1 are raised to 1.
func New(logger *log.Logger, machine Machine, cyclesPerFrame int) *Clock {
	return &Clock{
		logger:         logger,
		machine:        machine,
		cyclesPerFrame: max(cyclesPerFrame, 1),
	}
}

// RunFrame executes one frame and returns whether the display changed.
// A fault stops the frame before the timers are ticked.
func (c *Clock) RunFrame() (bool, error) {
	render := false
	for range c.cyclesPerFrame {
		if c.machine.Step() {
			render = true
		}
		if err := c.machine.Fault(); err != nil {
			return render, fmt.Errorf("frame %d: %w", c.frames, err)
		}
	}

	c.machine.TickTimers()
	c.frames++
	return render, nil
}

// Run executes frames without real-time pacing until the given number of
// frames has run, the machine faults or the context is cancelled.
// A frame count of 0 runs until a fault or cancellation.
func (c *Clock) Run(ctx context.Context, frames int) error {
	for frames == 0 || c.frames < frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := c.RunFrame(); err != nil {
			return err
		}
	}

	c.logger.Debug("Run finished",
		log.Int("frames", c.frames),
		log.Int("cycles", c.frames*c.cyclesPerFrame))
	return nil
}

// Frames returns the number of completed frames.
func (c *Clock) Frames() int {
	return c.frames
}
