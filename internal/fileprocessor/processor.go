// Package fileprocessor handles file selection and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, emuOpts options.Emulator) error {
	pipe := pipeline.New(logger)
	if err := pipe.Execute(ctx, opts, emuOpts, os.Stdout); err != nil {
		return fmt.Errorf("emulating %s: %w", opts.Input, err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options.
// Batch runs are always headless.
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		opts.Headless = true
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	if len(commit) > 7 {
		commit = commit[:7]
	}
	if strings.Contains(date, "unknown") {
		date = ""
	}

	logger.Info("chip8emu", log.String("version", buildinfo.Version(version, commit, date)))
}
