package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	out    string
	errOut string
	err    error
}

// runCLI executes a fresh root command in-process against fs.
func runCLI(t *testing.T, fs afero.Fs, args ...string) cliResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "")

	root := NewRootCmd(WithFs(fs))
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return cliResult{out: out.String(), errOut: errOut.String(), err: err}
}

// mustRun fails the test when the command returns an error.
func mustRun(t *testing.T, fs afero.Fs, args ...string) string {
	t.Helper()
	res := runCLI(t, fs, args...)
	require.NoError(t, res.err, "todo %v", args)
	return res.out
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec interface{ ExitCode() int }
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

func readList(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	return string(data)
}
