package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonicalSample is sampleDocument as the fmt command reprints it.
const canonicalSample = `server {
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

func TestRootCommand_Get(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer

	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"get", path, "server.port"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "8080\n", buf.String())
}

func TestRunCheck(t *testing.T) {
	good := writeSample(t)
	bad := filepath.Join(t.TempDir(), "bad.conf")
	require.NoError(t, os.WriteFile(bad, []byte("a { x = nope }"), 0o600))

	var buf bytes.Buffer

	checkCmd.SetOut(&buf)
	t.Cleanup(func() { checkCmd.SetOut(nil) })

	err := runCheck(checkCmd, []string{good, bad})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, buf.String(), "ok (2 sections)")
	assert.Contains(t, buf.String(), "invalid number")
}

func TestRunCheck_AllGood(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer

	checkCmd.SetOut(&buf)
	t.Cleanup(func() { checkCmd.SetOut(nil) })

	err := runCheck(checkCmd, []string{path})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ok (2 sections)")
}

func TestRunFmt_Stdout(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer

	fmtCmd.SetOut(&buf)
	t.Cleanup(func() { fmtCmd.SetOut(nil) })

	err := runFmt(fmtCmd, []string{path})

	require.NoError(t, err)
	assert.Equal(t, canonicalSample, buf.String())
}

func TestRunFmt_Write(t *testing.T) {
	path := writeSample(t)

	require.NoError(t, fmtCmd.Flags().Set("write", "true"))
	t.Cleanup(func() { _ = fmtCmd.Flags().Set("write", "false") })

	err := runFmt(fmtCmd, []string{path})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, canonicalSample, string(content))
}

func TestRunConvert(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer

	convertCmd.SetOut(&buf)
	t.Cleanup(func() { convertCmd.SetOut(nil) })

	err := runConvert(convertCmd, []string{path, "server"})

	require.NoError(t, err)
	assert.Equal(t, "host: 0.0.0.0\nport: 8080\n", buf.String())
}

func TestRunSections(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer

	sectionsCmd.SetOut(&buf)
	t.Cleanup(func() { sectionsCmd.SetOut(nil) })

	err := runSections(sectionsCmd, []string{path})

	require.NoError(t, err)
	assert.Equal(t, "server\nfeatures\n", buf.String())
}

func TestRunProps_WithPath(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer

	propsCmd.SetOut(&buf)
	t.Cleanup(func() { propsCmd.SetOut(nil) })

	err := runProps(propsCmd, []string{path, "server"})

	require.NoError(t, err)
	assert.Equal(t, "host = \"0.0.0.0\"\nport = 8080\n", buf.String())
}

func TestRunProps_Filtered(t *testing.T) {
	path := writeSample(t)

	var buf bytes.Buffer

	propsCmd.SetOut(&buf)
	require.NoError(t, propsCmd.Flags().Set("filter", `kind == "list"`))
	t.Cleanup(func() {
		propsCmd.SetOut(nil)
		_ = propsCmd.Flags().Set("filter", "")
	})

	err := runProps(propsCmd, []string{path})

	require.NoError(t, err)
	assert.Equal(t, "features.flags.regions = [\"eu\", \"us\"]\n", buf.String())
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer

	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "hconf dev (compiled unknown)\n", buf.String())
}
