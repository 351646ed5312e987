package fileprocessor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8emu/internal/machine"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeROM(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	fileName := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(fileName, data, 0o600))
	return fileName
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	first := writeROM(t, dir, "a.ch8", []byte{0x12, 0x00})
	second := writeROM(t, dir, "b.ch8", []byte{0x12, 0x00})
	writeROM(t, dir, "c.txt", []byte{0x00})

	opts := options.Program{Parameters: options.Parameters{Input: "single.ch8"}}
	files, err := GetFilesToProcess(&opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"single.ch8"}, files)
	assert.False(t, opts.Headless)

	opts = options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.ch8")}}
	files, err = GetFilesToProcess(&opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{first, second}, files)
	assert.True(t, opts.Headless)

	opts = options.Program{Parameters: options.Parameters{Batch: "[invalid"}}
	_, err = GetFilesToProcess(&opts)
	assert.True(t, err != nil)
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	logger := log.NewTestLogger(t)

	emuOpts := options.NewEmulator()
	emuOpts.Frames = 1

	loop := writeROM(t, dir, "loop.ch8", []byte{0x12, 0x00})
	opts := options.Program{
		Parameters: options.Parameters{Input: loop},
		Flags:      options.Flags{Headless: true, Quiet: true},
	}
	assert.NoError(t, ProcessFile(context.Background(), logger, opts, emuOpts))

	ret := writeROM(t, dir, "ret.ch8", []byte{0x00, 0xEE})
	opts.Input = ret
	err := ProcessFile(context.Background(), logger, opts, emuOpts)
	assert.True(t, errors.Is(err, machine.ErrStackUnderflow))
	assert.ErrorContains(t, err, "ret.ch8")
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)

	PrintBanner(logger, options.Program{}, "1.0.0", "0123456789abcdef", "2026-10-17")
	PrintBanner(logger, options.Program{}, "dev", "", "unknown")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}
