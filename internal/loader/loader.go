// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8emu/internal/machine"
)

// Loader handles loading CHIP-8 program images from disk.
type Loader struct {
	maxSize int
}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{
		maxSize: machine.MaxProgramSize,
	}
}

// Load reads the program image from the given file.
// CHIP-8 ROM files contain the raw program without any header, the first
// byte of the file is loaded to the machine program start address.
func (l *Loader) Load(fileName string) ([]byte, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", fileName, err)
	}
	return data, nil
}

// LoadFrom reads a program image from a reader. Images that do not fit into
// the machine memory are rejected without reading the whole stream.
func (l *Loader) LoadFrom(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(reader, int64(l.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading program image: %w", err)
	}
	if len(data) > l.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", machine.ErrProgramTooLarge, l.maxSize)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	return data, nil
}
