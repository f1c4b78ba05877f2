package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipedOutput(t *testing.T) {
	t.Helper()
	original := stdoutIsTerminal
	t.Cleanup(func() { stdoutIsTerminal = original })
	stdoutIsTerminal = func() bool { return false }
	t.Setenv("CATTER_CONFIG", filepath.Join(t.TempDir(), "none.toml"))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNoArgumentsPrintsHelp(t *testing.T) {
	pipedOutput(t)
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--count")
}

func TestHelpFlag(t *testing.T) {
	pipedOutput(t)
	out, err := execute(t, "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "j, Down")
}

func TestPrintsFilesWhenPiped(t *testing.T) {
	pipedOutput(t)
	a := writeFile(t, "a.txt", "one\n")
	b := writeFile(t, "b.txt", "two\n")

	out, err := execute(t, a, b)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", out)
}

func TestCombinedShortFlags(t *testing.T) {
	pipedOutput(t)
	a := writeFile(t, "a.txt", strings.Repeat("x\n", 40))

	out, err := execute(t, "-ne", a)
	require.NoError(t, err)
	assert.Equal(t, "40\n", out)
}

func TestFlagsAfterFirstFileAreFiles(t *testing.T) {
	pipedOutput(t)
	a := writeFile(t, "a.txt", "one\n")

	out, err := execute(t, a, "-n")
	require.NoError(t, err)
	assert.Equal(t, "one\n", out, "-n after a file is treated as a (missing) file")
}

func TestUnknownFlagFails(t *testing.T) {
	pipedOutput(t)
	_, err := execute(t, "--bogus", "a.txt")
	require.Error(t, err)
}

func TestMissingExplicitConfigFails(t *testing.T) {
	pipedOutput(t)
	a := writeFile(t, "a.txt", "one\n")
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.toml"), a)
	require.Error(t, err)
}

func TestLogFileReceivesEntries(t *testing.T) {
	pipedOutput(t)
	a := writeFile(t, "a.txt", "one\n")
	logPath := filepath.Join(t.TempDir(), "catter.log")

	_, err := execute(t, "--log-file", logPath, "--log-level", "debug", a, "/missing/file")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "skipping input file")
	assert.Contains(t, string(data), "display mode selected")
}
