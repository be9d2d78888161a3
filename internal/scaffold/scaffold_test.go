package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Create(dir))

	for _, name := range []string{
		filepath.Join("src", "main.py"),
		"README.md",
		"requirements.txt",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	// repository exists with an initial commit
	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	assert.False(t, head.Hash().IsZero())
}

func TestCreate_KeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("mine\n"), 0o644))

	require.NoError(t, Create(dir))

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "mine\n", string(data))
}

func TestCreate_RejectsExistingRepo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Create(dir))

	err := Create(dir)
	assert.Error(t, err)
}
