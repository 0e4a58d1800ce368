package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/quantmind-br/grlibsrc/internal/domain"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineLength bounds a single manifest line
const maxLineLength = 1024 * 1024

// Loader reads manifest files from a filesystem
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader on the given filesystem (the OS filesystem if nil)
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs}
}

// ReadDirList reads the directory list at path. A missing file is reported
// as domain.ErrDirListNotFound.
func (l *Loader) ReadDirList(path string) ([]string, error) {
	lines, err := l.readLines(path)
	if err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDirListNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDirListRead, path, err)
	}
	return ParseDirList(lines), nil
}

// ReadEntries reads the manifest at path. The boolean is false when the
// manifest does not exist, which is not an error.
func (l *Loader) ReadEntries(path string) ([]Entry, bool, error) {
	lines, err := l.readLines(path)
	if err != nil {
		if isNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %s: %v", domain.ErrManifestRead, path, err)
	}
	return ParseEntries(lines), true, nil
}

// Exists reports whether path exists. Errors other than not-exist are returned.
func (l *Loader) Exists(path string) (bool, error) {
	_, err := l.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %s: %v", domain.ErrSourceStat, path, err)
}

// isNotExist reports whether err means the path does not exist, including a
// path that runs through a regular file
func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// readLines returns the lines of a text file. A leading UTF-8 or UTF-16 BOM
// selects the decoding; plain files are read as UTF-8.
func (l *Loader) readLines(path string) ([]string, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return scanLines(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
}

func scanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
