package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGitRoot(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsGitRoot(dir))

	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	assert.True(t, IsGitRoot(dir))

	// worktree 中 .git 是文件
	wt := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wt, ".git"), []byte("gitdir: /elsewhere\n"), 0644))
	assert.True(t, IsGitRoot(wt))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0644))

	info, ok, err := FileExists(file)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, info.IsDir())

	info, ok, err = FileExists(dir)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, info.IsDir())

	_, ok, err = FileExists(filepath.Join(dir, "missing.md"))
	require.NoError(t, err)
	assert.False(t, ok)
}
