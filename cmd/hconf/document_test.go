package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	conf "github.com/0xalexb/hjarta-conf"
)

const sampleDocument = `# sample
server {
  host = "0.0.0.0"
  port = 8080
}

features {
  flags {
    beta = true
    regions = ["eu", "us"]
  }
}
`

func writeSample(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.conf")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o600))

	return path
}

func TestLoadDocument(t *testing.T) {
	path := writeSample(t)

	doc, err := loadDocument(path)

	require.NoError(t, err)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "server", doc.Sections[0].Name)
}

func TestLoadDocument_MissingFile(t *testing.T) {
	_, err := loadDocument(filepath.Join(t.TempDir(), "absent.conf"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat file")
}

func TestLoadDocument_MaxSize(t *testing.T) {
	path := writeSample(t)

	viper.Set("max_size", int64(4))
	t.Cleanup(func() { viper.Set("max_size", int64(0)) })

	_, err := loadDocument(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestParseOptions_EnvironmentTag(t *testing.T) {
	path := writeSample(t)

	viper.Set("env", "staging")
	t.Cleanup(func() { viper.Set("env", "") })

	doc, err := loadDocument(path)

	require.NoError(t, err)

	tag, ok := conf.EnvironmentTag[string](doc)
	assert.True(t, ok)
	assert.Equal(t, "staging", tag)
}

func TestItemText(t *testing.T) {
	t.Parallel()

	doc, err := conf.Parse([]byte(`a { n = -5 s = "x" l = [1, true] e = [] }`))
	require.NoError(t, err)

	items, err := conf.Properties(doc, "a")
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, "-5", itemText(&items[0]))
	assert.Equal(t, `"x"`, itemText(&items[1]))
	assert.Equal(t, "[1, true]", itemText(&items[2]))
	assert.Equal(t, "[]", itemText(&items[3]))
}

func TestWalkProperties(t *testing.T) {
	t.Parallel()

	doc, err := conf.Parse([]byte(sampleDocument))
	require.NoError(t, err)

	entries := walkProperties(doc)

	require.Len(t, entries, 4)
	assert.Equal(t, "server", entries[0].section)
	assert.Equal(t, "host", entries[0].item.Name)
	assert.Equal(t, "features.flags", entries[2].section)
	assert.Equal(t, "beta", entries[2].item.Name)
	assert.Equal(t, "regions", entries[3].item.Name)
}
