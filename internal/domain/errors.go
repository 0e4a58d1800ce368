package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrDirListNotFound indicates a library root has no directory list
	ErrDirListNotFound = errors.New("directory list not found")

	// ErrDirListRead indicates the directory list exists but could not be read
	ErrDirListRead = errors.New("failed to read directory list")

	// ErrManifestRead indicates a per-directory manifest could not be read
	ErrManifestRead = errors.New("failed to read manifest")

	// ErrSourceStat indicates a manifest-listed file could not be checked
	ErrSourceStat = errors.New("failed to stat source file")

	// ErrLibraryCreate indicates the sink refused to create a library
	ErrLibraryCreate = errors.New("failed to create library")

	// ErrRegister indicates the sink refused a source file
	ErrRegister = errors.New("failed to add source file")

	// ErrUnknownFormat indicates an unsupported output format
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrRootNotFound indicates no project root could be determined
	ErrRootNotFound = errors.New("project root not found")
)

// LibraryError wraps a fatal error raised while resolving one library
type LibraryError struct {
	Library string
	Root    string
	Err     error
}

func (e *LibraryError) Error() string {
	return fmt.Sprintf("library %s (%s): %v", e.Library, e.Root, e.Err)
}

func (e *LibraryError) Unwrap() error {
	return e.Err
}

// NewLibraryError creates a new LibraryError
func NewLibraryError(library, root string, err error) *LibraryError {
	return &LibraryError{
		Library: library,
		Root:    root,
		Err:     err,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
