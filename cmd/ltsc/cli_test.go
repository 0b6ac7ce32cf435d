package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.lts")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCLICompilesAndPrintsJSON(t *testing.T) {
	path := writeSource(t, "A = a -> STOP.")

	var out, errOut bytes.Buffer
	cli := NewCLI()
	err := cli.Execute([]string{path}, &out, &errOut)

	require.NoError(t, err)
	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), `"name": "A"`)
	assert.Contains(t, out.String(), `"automata"`)
	assert.Contains(t, out.String(), `"operations"`)
}

func TestCLIReportsSyntaxError(t *testing.T) {
	path := writeSource(t, "A = a STOP.")

	var out, errOut bytes.Buffer
	cli := NewCLI()
	err := cli.Execute([]string{path}, &out, &errOut)

	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Syntax error")
	assert.Empty(t, out.String())
}

func TestCLIReportsInterpreterError(t *testing.T) {
	path := writeSource(t, "A = a -> B.")

	var out, errOut bytes.Buffer
	cli := NewCLI()
	err := cli.Execute([]string{path}, &out, &errOut)

	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Error:")
	assert.Empty(t, out.String())
}

func TestCLIMissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	cli := NewCLI()
	err := cli.Execute([]string{filepath.Join(t.TempDir(), "missing.lts")}, &out, &errOut)

	require.Error(t, err)
}

func TestCLIUnfairAbstractionFlag(t *testing.T) {
	path := writeSource(t, "A = a -> b -> STOP \\ {a, b}.")

	var out, errOut bytes.Buffer
	cli := NewCLI()
	err := cli.Execute([]string{path, "--fair-abstraction=false"}, &out, &errOut)

	require.NoError(t, err)
	assert.Contains(t, out.String(), `"automata"`)
}
