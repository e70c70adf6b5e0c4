// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmul/internal/payload"
	"github.com/katalvlaran/blockmul/matrix"
)

// run executes the root command with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root, _ := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

const twoByTwo = `{"a": [[1,2],[3,4]], "b": [[5,6],[7,8]], "k": 1}`

func TestMultiply_Stdin(t *testing.T) {
	for _, schedule := range []string{"sequential", "parallel"} {
		t.Run(schedule, func(t *testing.T) {
			out, _, err := run(t, twoByTwo, "multiply", "--schedule", schedule, "--log-level", "error")
			require.NoError(t, err)
			assert.Equal(t, "{\"solved\":[[19,22],[43,50]]}\n", out)
		})
	}
}

func TestMultiply_CAliasAndVerify(t *testing.T) {
	in := `{"a": [[1,0,0,0],[0,1,0,0],[0,0,1,0],[0,0,0,1]], "b": [[1,2,3,4],[5,6,7,8],[9,10,11,12],[13,14,15,16]], "c": 2}`

	out, logs, err := run(t, in, "multiply", "--verify", "--log-format", "json")
	require.NoError(t, err)
	assert.Equal(t, "{\"solved\":[[1,2,3,4],[5,6,7,8],[9,10,11,12],[13,14,15,16]]}\n", out)
	assert.Contains(t, logs, `"message":"verified against naive product"`)
	assert.Contains(t, logs, `"k":2`)
}

func TestMultiply_BlockSizeFlagOverrides(t *testing.T) {
	in := `{"a": [[1,0,0,0],[0,1,0,0],[0,0,1,0],[0,0,0,1]], "b": [[1,0,0,0],[0,1,0,0],[0,0,1,0],[0,0,0,1]], "k": 2}`

	_, _, err := run(t, in, "multiply", "-k", "3", "--log-level", "error")
	require.ErrorIs(t, err, matrix.ErrInvalidBlockSize)

	_, _, err = run(t, in, "multiply", "--block-size", "4", "--log-level", "error")
	require.NoError(t, err)
}

func TestMultiply_Files(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "req.json")
	outPath := filepath.Join(dir, "resp.json")
	require.NoError(t, os.WriteFile(inPath, []byte(twoByTwo), 0o600))

	out, _, err := run(t, "", "multiply", "-i", inPath, "-o", outPath, "--indent", "  ", "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(got), "\n  \"solved\": [")
}

func TestMultiply_Errors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		stdin string
		args  []string
		msg   string
	}{
		{"bad schedule", twoByTwo, []string{"multiply", "--schedule", "fast"}, "--schedule"},
		{"negative workers", twoByTwo, []string{"multiply", "--workers=-1"}, "--workers"},
		{"bad log level", twoByTwo, []string{"multiply", "--log-level", "loud"}, "--log-level"},
		{"bad log format", twoByTwo, []string{"multiply", "--log-format", "xml"}, "--log-format"},
		{"malformed request", `{"a":`, []string{"multiply"}, "malformed"},
		{"non-square", `{"a": [[1,2]], "b": [[1,2]], "k": 1}`, []string{"multiply"}, "not square"},
		{"missing input file", "", []string{"multiply", "-i", "/nonexistent/req.json"}, "req.json"},
		{"extra args", twoByTwo, []string{"multiply", "x"}, "unknown command"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.stdin, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestVerify_Mismatch(t *testing.T) {
	req := mustRequest(t)
	err := verify(req, [][]float64{{19, 22}, {43, 51}})
	require.ErrorIs(t, err, errVerifyFailed)

	require.NoError(t, verify(req, [][]float64{{19, 22}, {43, 50}}))
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "GOARCH: ")
	assert.Contains(t, out, "GOMAXPROCS: ")
}

func mustRequest(t *testing.T) *payload.Request {
	t.Helper()
	req, err := payload.Decode(strings.NewReader(twoByTwo))
	require.NoError(t, err)

	return req
}
