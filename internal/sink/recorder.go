package sink

import (
	"fmt"

	"github.com/quantmind-br/grlibsrc/internal/domain"
)

// Recorder is an in-memory LibrarySink. Libraries keep creation order and
// files keep registration order.
type Recorder struct {
	libs  []*Library
	index map[string]*Library
}

// Library is a library held by a Recorder
type Library struct {
	name  string
	files []domain.Registration
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{index: make(map[string]*Library)}
}

// CreateLibrary creates a library. Creating an existing name returns the
// existing handle so that later files are appended to it.
func (r *Recorder) CreateLibrary(name string) (domain.Library, error) {
	if name == "" {
		return nil, fmt.Errorf("library name cannot be empty")
	}
	if lib, ok := r.index[name]; ok {
		return lib, nil
	}
	lib := &Library{name: name}
	r.libs = append(r.libs, lib)
	r.index[name] = lib
	return lib, nil
}

// Libraries returns the recorded libraries in creation order
func (r *Recorder) Libraries() []*Library {
	return r.libs
}

// Library returns the named library, or nil
func (r *Recorder) Library(name string) *Library {
	return r.index[name]
}

// Name returns the library name
func (l *Library) Name() string {
	return l.name
}

// AddSourceFile records a source file
func (l *Library) AddSourceFile(path string, rev domain.Revision) error {
	l.files = append(l.files, domain.Registration{Path: path, Revision: rev})
	return nil
}

// Files returns the registered files in order
func (l *Library) Files() []domain.Registration {
	return l.files
}
