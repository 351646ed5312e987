//go:build !headless

package frontend

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/chip8emu/internal/display"
	"github.com/retroenv/chip8emu/internal/driver"
	"github.com/retroenv/chip8emu/internal/machine"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

const audioBufferSize = 50 * time.Millisecond

// game implements ebiten.Game. The machine is only touched from Update.
type game struct {
	machine *machine.Machine
	clock   *driver.Clock
	tone    *Tone

	pixels []byte
	keys   [machine.KeyCount]bool
	fault  error
}

// Run opens a window and runs the machine until the window is closed,
// Escape is pressed or the machine faults. A fault is returned as error.
func Run(logger *log.Logger, m *machine.Machine, opts options.Emulator, title string) error {
	g := &game{
		machine: m,
		clock:   driver.New(logger, m, opts.CyclesPerFrame),
		tone:    NewTone(SampleRate, opts.ToneFrequency),
		pixels:  make([]byte, display.BufferSize),
	}
	display.FillRGBA(g.pixels, m.Framebuffer(), display.DefaultForeground, display.DefaultBackground)

	if !opts.Mute {
		player, err := audio.NewContext(SampleRate).NewPlayer(g.tone)
		if err != nil {
			return fmt.Errorf("creating audio player: %w", err)
		}
		defer func() { _ = player.Close() }()
		player.SetBufferSize(audioBufferSize)
		player.Play()
	}

	ebiten.SetTPS(driver.FrameRate)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(machine.DisplayWidth*opts.Scale, machine.DisplayHeight*opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}

	logger.Debug("Window closed", log.Int("frames", g.clock.Frames()))
	return g.fault
}

// Update runs one machine frame.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	err := keyEdges(&g.keys, ebiten.IsKeyPressed, func(key uint8, down bool) error {
		if down {
			return g.machine.KeyDown(key)
		}
		return g.machine.KeyUp(key)
	})
	if err != nil {
		return err
	}

	render, err := g.clock.RunFrame()
	if err != nil {
		g.fault = err
		g.tone.SetEnabled(false)
		return ebiten.Termination
	}

	if render {
		display.FillRGBA(g.pixels, g.machine.Framebuffer(), display.DefaultForeground, display.DefaultBackground)
	}
	g.tone.SetEnabled(g.machine.SoundTimer() > 0)
	return nil
}

// Draw copies the last rendered frame to the screen.
func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.pixels)
}

// Layout keeps the logical screen at the display resolution, Ebitengine
// scales it to the window.
func (g *game) Layout(_, _ int) (int, int) {
	return machine.DisplayWidth, machine.DisplayHeight
}
