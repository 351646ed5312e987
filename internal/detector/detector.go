// Package detector handles system architecture detection.
package detector

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnsupportedSystem is returned for ROM files of other systems.
var ErrUnsupportedSystem = errors.New("unsupported system")

// Detector handles system architecture detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system type based on the file extension.
// Unknown extensions are treated as raw CHIP-8 images.
func (d *Detector) Detect(fileName string) arch.System {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return arch.CHIP8System
	case ".nes":
		return arch.NES
	default:
		d.logger.Debug("Unknown file extension, assuming raw CHIP-8 image",
			log.String("file", fileName))
		return arch.CHIP8System
	}
}

// Validate returns an error if the file belongs to a system that can not
// be emulated.
func (d *Detector) Validate(fileName string) error {
	system := d.Detect(fileName)
	if system != arch.CHIP8System {
		return fmt.Errorf("%w '%s' detected for file '%s'", ErrUnsupportedSystem, system, fileName)
	}
	return nil
}
