package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// setupDir creates bak/, sub/ and a 5 MB a.log.
func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bak"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	f, err := os.Create(filepath.Join(dir, "a.log"))
	require.NoError(t, err)
	require.NoError(t, f.Truncate(5_000_000))
	require.NoError(t, f.Close())
	return dir
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		names = append(names, e.Name())
	}
	return names
}

func TestCLI_UsageErrorsTouchNothing(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
		code int
	}{
		{"neither", []string{}, "you must specify a rotation option", exitOK},
		{"both", []string{"--size", "1000000", "--time", "day"}, "mutually exclusive", exitOK},
		{"size too small", []string{"--size", "500000"}, "minimum size for rotation is 1 MB", exitOK},
		{"decade", []string{"--time", "decade"}, "invalid time", exitOK},
		{"size overflow", []string{"--size", "99999999999PB"}, "overflows", exitOK},
		{"bad policy", []string{"--size", "1000000", "--on-error", "shrug"}, "invalid --on-error", exitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupDir(t)
			before := listNames(t, dir)

			code, out, _ := runCLI(t, append([]string{"-d", dir}, tt.args...)...)

			assert.Equal(t, tt.code, code)
			assert.True(t, strings.HasPrefix(out, "ERROR: "), "got %q", out)
			assert.Contains(t, out, tt.msg)
			assert.Equal(t, before, listNames(t, dir))
			assert.Empty(t, listNames(t, filepath.Join(dir, "bak")))
		})
	}
}

func TestCLI_MissingDirectoryFlag(t *testing.T) {
	code, out, _ := runCLI(t, "--size", "1000000")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, out, "no directory given")
}

func TestCLI_UnknownFlag(t *testing.T) {
	code, out, _ := runCLI(t, "--recursive")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, out, "ERROR: ")
}

func TestCLI_UnexpectedArgument(t *testing.T) {
	code, out, _ := runCLI(t, "-d", t.TempDir(), "-t", "day", "extra")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, out, "unexpected arguments")
}

func TestCLI_SizeRotation(t *testing.T) {
	dir := setupDir(t)

	code, out, _ := runCLI(t, "-d", dir, "-s", "1000000")
	require.Equal(t, exitOK, code, out)
	assert.Empty(t, out)

	matches, err := filepath.Glob(filepath.Join(dir, "bak", "a.log.*-*-*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	assert.NoFileExists(t, filepath.Join(dir, "a.log"))
	assert.DirExists(t, filepath.Join(dir, "sub"))
}

func TestCLI_TimeRotationLeavesFreshFiles(t *testing.T) {
	dir := setupDir(t)

	code, out, _ := runCLI(t, "-d", dir, "-t", "WEEK")
	require.Equal(t, exitOK, code, out)

	assert.FileExists(t, filepath.Join(dir, "a.log"))
	assert.DirExists(t, filepath.Join(dir, "sub"))
	assert.Empty(t, listNames(t, filepath.Join(dir, "bak")))
}

func TestCLI_MissingBakIsFailure(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "a.log"))
	require.NoError(t, err)
	require.NoError(t, f.Truncate(2_000_000))
	require.NoError(t, f.Close())

	code, out, _ := runCLI(t, "-d", dir, "-s", "1MB")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, out, "ERROR: ")
	assert.FileExists(t, filepath.Join(dir, "a.log"))
}

func TestCLI_MkdirCreatesBak(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "a.log"))
	require.NoError(t, err)
	require.NoError(t, f.Truncate(2_000_000))
	require.NoError(t, f.Close())

	code, out, _ := runCLI(t, "-d", dir, "-s", "1MB", "--mkdir")
	require.Equal(t, exitOK, code, out)

	matches, err := filepath.Glob(filepath.Join(dir, "bak", "a.log.*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestCLI_DryRunPrintsPlan(t *testing.T) {
	dir := setupDir(t)

	code, out, _ := runCLI(t, "-d", dir, "-s", "1000000", "--dry-run")
	require.Equal(t, exitOK, code, out)

	assert.Contains(t, out, "WARNING: dry run, nothing was renamed")
	assert.Contains(t, out, "planned a.log")
	assert.FileExists(t, filepath.Join(dir, "a.log"))
}

func TestCLI_JSONReportAndMetrics(t *testing.T) {
	dir := setupDir(t)
	metricsPath := filepath.Join(t.TempDir(), "bak_rotate.prom")

	code, out, _ := runCLI(t, "-d", dir, "-s", "1000000", "-o", "json", "--metrics-file", metricsPath)
	require.Equal(t, exitOK, code, out)

	var rep struct {
		Directory string `json:"directory"`
		Summary   struct {
			Rotated int `json:"rotated"`
			Skipped int `json:"skipped"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, dir, rep.Directory)
	assert.Equal(t, 1, rep.Summary.Rotated)
	assert.Equal(t, 2, rep.Summary.Skipped)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bak_rotate_entries_rotated")
	assert.Contains(t, string(data), "bak_rotate_last_run_success")
}

func TestCLI_DebugLogsGoToStderr(t *testing.T) {
	dir := setupDir(t)

	code, out, errOut := runCLI(t, "-d", dir, "-s", "1000000", "--log-level", "debug", "--log-format", "json")
	require.Equal(t, exitOK, code, out)

	assert.Empty(t, out)
	assert.Contains(t, errOut, `"msg":"rotated"`)
	assert.Contains(t, errOut, `"run_id"`)
}

func TestCLI_Version(t *testing.T) {
	code, out, _ := runCLI(t, "--version")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "bak-rotate dev")
}
