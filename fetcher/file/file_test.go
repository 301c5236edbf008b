package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, content, 0o600)
	require.NoError(t, err)

	return path
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`
app {
  name = "test-app"
  version = "1.0"
}
`)
	configPath := writeConfig(t, "app.hconf", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFetcher_Fetch_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/app.hconf")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "empty.hconf", []byte{})

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_Fetch_DirectoryPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	fetcher, err := NewFetcher(tmpDir)()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestNewFetcher_ReturnsValidConstructor(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "app.hconf", []byte(`a { b = 1 }`))

	constructor := NewFetcher(configPath)

	assert.NotNil(t, constructor)

	fetcher, err := constructor()
	require.NoError(t, err)
	assert.NotNil(t, fetcher)
	assert.Equal(t, configPath, fetcher.filepath)
}

func TestNewFetcher_WithBaseDir(t *testing.T) {
	t.Parallel()

	content := []byte(`svc { on = true }`)
	configPath := writeConfig(t, "svc.hconf", content)
	baseDir := filepath.Dir(configPath)

	fetcher, err := NewFetcher("svc.hconf", WithBaseDir(baseDir))()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, configPath, fetcher.filepath)
}

func TestNewFetcher_WithBaseDir_AbsolutePathWins(t *testing.T) {
	t.Parallel()

	content := []byte(`svc { on = true }`)
	configPath := writeConfig(t, "svc.hconf", content)

	// The base directory must not be applied to an absolute path.
	fetcher, err := NewFetcher(configPath, WithBaseDir("/definitely/elsewhere"))()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestNewFetcher_WithMaxSize(t *testing.T) {
	t.Parallel()

	content := []byte(`metrics { interval = 15 }`)
	configPath := writeConfig(t, "metrics.hconf", content)

	fetcher, err := NewFetcher(configPath, WithMaxSize(int64(len(content))))()
	require.NoError(t, err)
	assert.NotNil(t, fetcher)

	fetcher, err = NewFetcher(configPath, WithMaxSize(int64(len(content))-1))()
	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrSizeLimitExceeded)
	assert.Contains(t, err.Error(), "limit")
}

func TestNewFetcher_WithMaxSize_ZeroDisablesCheck(t *testing.T) {
	t.Parallel()

	content := make([]byte, 1<<20)
	for i := range content {
		content[i] = ' '
	}
	configPath := writeConfig(t, "large.hconf", content)

	fetcher, err := NewFetcher(configPath, WithMaxSize(0))()

	require.NoError(t, err)
	assert.NotNil(t, fetcher)
}

func TestFetcher_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	originalContent := []byte(`app { version = "1.0" }`)
	modifiedContent := []byte(`app { version = "2.0" }`)

	configPath := writeConfig(t, "app.hconf", originalContent)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	err = os.WriteFile(configPath, modifiedContent, 0o600)
	require.NoError(t, err)

	// Fetch returns the content read at construction time, not the
	// current file content.
	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, originalContent, data)
	assert.NotEqual(t, modifiedContent, data)
}

func TestFetcher_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	content := []byte(`app { name = "original" }`)
	configPath := writeConfig(t, "app.hconf", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data1, err := fetcher.Fetch()
	require.NoError(t, err)

	data1[0] = 'X'

	data2, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, content, data2, "Fetch should return unmodified cached data")
}
