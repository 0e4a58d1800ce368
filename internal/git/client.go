package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// RealClient implements Client using go-git
type RealClient struct{}

// NewClient creates a new RealClient
func NewClient() *RealClient {
	return &RealClient{}
}

// WorkTreeRoot opens the repository enclosing dir, searching parent
// directories, and returns its work tree root
func (c *RealClient) WorkTreeRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("work tree of %s: %w", dir, err)
	}

	return wt.Filesystem.Root(), nil
}
