package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClient_WorkTreeRoot(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	nested := filepath.Join(root, "designs", "leon3-minimal")
	require.NoError(t, os.MkdirAll(nested, 0755))

	got, err := NewClient().WorkTreeRoot(nested)

	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}

func TestRealClient_WorkTreeRoot_NotARepository(t *testing.T) {
	_, err := NewClient().WorkTreeRoot(t.TempDir())

	assert.ErrorIs(t, err, git.ErrRepositoryNotExists)
}

func TestRealClient_ImplementsClient(t *testing.T) {
	var _ Client = NewClient()
}
