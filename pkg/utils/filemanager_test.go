package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates an empty file, creating parent directories as needed.
func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestDiscoverPDFFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.pdf"))
	touch(t, filepath.Join(root, "a.PDF"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "nested", "deep", "c.pdf"))
	touch(t, filepath.Join(root, "nested", "readme.md"))

	files, err := DiscoverPDFFiles(root)
	require.NoError(t, err)

	// Lexical walk order: root files first (case-insensitively matched,
	// including uppercase extensions), then the nested tree.
	assert.Equal(t, []string{
		filepath.Join(root, "a.PDF"),
		filepath.Join(root, "b.pdf"),
		filepath.Join(root, "nested", "deep", "c.pdf"),
	}, files)
}

func TestDiscoverPDFFilesEmptyTree(t *testing.T) {
	files, err := DiscoverPDFFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverPDFFilesMissingRoot(t *testing.T) {
	_, err := DiscoverPDFFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "账单.csv")
	assert.False(t, FileExists(path))

	touch(t, path)
	assert.True(t, FileExists(path))
}

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()
	entries := []ErrorLogEntry{
		{FilePath: "bills/202401.pdf", Page: 2, Message: "基本信息无匹配"},
		{FilePath: "bills/202402.pdf", Page: 1, Message: "电量信息示数类型无匹配"},
	}

	path, err := WriteErrorLog(entries, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Extraction errors: 2")
	assert.Contains(t, content, "bills/202401.pdf (page 2): 基本信息无匹配")
	assert.Contains(t, content, "bills/202402.pdf (page 1): 电量信息示数类型无匹配")
}

func TestWriteErrorLogUniqueNames(t *testing.T) {
	dir := t.TempDir()
	first, err := WriteErrorLog(nil, dir)
	require.NoError(t, err)
	second, err := WriteErrorLog(nil, dir)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
