package output

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/grlibsrc/internal/utils"
)

// ErrExists indicates the output file exists and overwriting is disabled
var ErrExists = errors.New("output file already exists (use --force to overwrite)")

// Flusher renders its content to a writer
type Flusher interface {
	Flush(w io.Writer) error
}

// Writer writes rendered output to a file or to a fallback stream
type Writer struct {
	path       string
	force      bool
	executable bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	// Path is the output file; empty writes to the fallback stream
	Path  string
	Force bool
	// Executable marks the written file 0755
	Executable bool
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	return &Writer{
		path:       opts.Path,
		force:      opts.Force,
		executable: opts.Executable,
	}
}

// Path returns the output path, empty for the fallback stream
func (w *Writer) Path() string {
	return w.path
}

// Write flushes f to the output file, or to fallback when no path is set
func (w *Writer) Write(fallback io.Writer, f Flusher) error {
	if w.path == "" {
		return f.Flush(fallback)
	}

	if !w.force {
		if _, err := os.Stat(w.path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, w.path)
		}
	}

	if err := utils.EnsureDir(w.path); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	perm := os.FileMode(0644)
	if w.executable {
		perm = 0755
	}

	file, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := f.Flush(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	// OpenFile does not change the mode of an existing file
	return os.Chmod(w.path, perm)
}
