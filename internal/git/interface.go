package git

// Client defines the Git operations used to locate the project root
type Client interface {
	// WorkTreeRoot returns the top-level directory of the work tree containing dir
	WorkTreeRoot(dir string) (string, error)
}
