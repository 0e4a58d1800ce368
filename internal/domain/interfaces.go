package domain

// LibrarySink is the external build/verification tool receiving libraries
type LibrarySink interface {
	// CreateLibrary creates a named library and returns a handle for it
	CreateLibrary(name string) (Library, error)
}

// Library is a handle to a library created by a LibrarySink
type Library interface {
	// Name returns the library name
	Name() string
	// AddSourceFile registers a source file compiled with the given revision
	AddSourceFile(path string, rev Revision) error
}
