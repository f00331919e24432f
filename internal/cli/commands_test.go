package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/codesnap/pkg/codesnap"
)

func resetSnapshotFlags() {
	snapshotFlags = snapshotFlagValues{}
}

type errorRecorder struct {
	errors []string
}

func (r *errorRecorder) Verbose(string, ...interface{}) {}
func (r *errorRecorder) Info(string, ...interface{})    {}
func (r *errorRecorder) Warn(string, ...interface{})    {}
func (r *errorRecorder) Error(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestExecute_ReportsErrorsThroughLogger(t *testing.T) {
	dir := isolate(t)
	resetSnapshotFlags()
	t.Cleanup(func() {
		resetSnapshotFlags()
		rootCmd.SetArgs(nil)
	})

	tests := []struct {
		name     string
		args     []string
		exitCode int
		contains string
	}{
		{"too many args", []string{"a", "b"}, codesnap.ExitUsageError, "accepts at most 1 arg"},
		{"unknown flag", []string{"--no-such-flag"}, codesnap.ExitUsageError, "unknown flag"},
		{"missing root", []string{filepath.Join(dir, "missing"), "-o", filepath.Join(dir, "out.json")}, codesnap.ExitRootError, "invalid scan root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &errorRecorder{}

			err := execute(logger, tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, codesnap.ExitCodeForError(err))
			require.Len(t, logger.errors, 1)
			assert.Contains(t, logger.errors[0], tt.contains)
		})
	}
}

func TestExecute_SuccessLogsNoError(t *testing.T) {
	dir := isolate(t)
	resetSnapshotFlags()
	t.Cleanup(func() {
		resetSnapshotFlags()
		rootCmd.SetArgs(nil)
	})
	writeFile(t, filepath.Join(dir, "a.js"), "hello")

	logger := &errorRecorder{}
	require.NoError(t, execute(logger, []string{dir, "-o", filepath.Join(dir, "out.json"), "-e", ".js"}))
	assert.Empty(t, logger.errors)
}

func TestRootCmd_ArgsValidation_TooMany(t *testing.T) {
	err := rootCmd.Args(rootCmd, []string{"a", "b"})
	if err == nil {
		t.Fatal("Expected error for too many args")
	}
	exitCode := codesnap.ExitCodeForError(err)
	if exitCode != codesnap.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v", codesnap.ExitUsageError, exitCode, err)
	}
}

func TestRunSnapshot_WritesSnapshot(t *testing.T) {
	dir := isolate(t)
	resetSnapshotFlags()
	t.Cleanup(resetSnapshotFlags)

	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub", "dir"), 0755))
	writeFile(t, filepath.Join(src, "a.js"), "hello")
	writeFile(t, filepath.Join(src, "b.txt"), "ignored")
	writeFile(t, filepath.Join(src, "sub", "dir", "c.ts"), "x")

	output := filepath.Join(dir, "out.json")
	snapshotFlags.output = output

	require.NoError(t, runSnapshot(rootCmd, []string{src}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, map[string]string{"a.js": "hello", "sub/dir/c.ts": "x"}, got)
}

func TestRunSnapshot_NonexistentRoot(t *testing.T) {
	dir := isolate(t)
	resetSnapshotFlags()
	t.Cleanup(resetSnapshotFlags)
	snapshotFlags.output = filepath.Join(dir, "out.json")

	err := runSnapshot(rootCmd, []string{filepath.Join(dir, "missing")})
	require.Error(t, err)
	assert.Equal(t, codesnap.ExitRootError, codesnap.ExitCodeForError(err))

	_, statErr := os.Stat(snapshotFlags.output)
	assert.True(t, os.IsNotExist(statErr), "no output should be written for an invalid root")
}

func TestRunSnapshot_UnwritableOutput(t *testing.T) {
	dir := isolate(t)
	resetSnapshotFlags()
	t.Cleanup(resetSnapshotFlags)
	snapshotFlags.output = filepath.Join(dir, "no", "such", "dir", "out.json")

	err := runSnapshot(rootCmd, []string{dir})
	require.Error(t, err)
	assert.Equal(t, codesnap.ExitWriteFailed, codesnap.ExitCodeForError(err))
}

func TestRunSnapshot_InvalidFlag(t *testing.T) {
	isolate(t)
	resetSnapshotFlags()
	t.Cleanup(resetSnapshotFlags)
	snapshotFlags.decode = "utf-16"

	err := runSnapshot(rootCmd, nil)
	require.Error(t, err)
	assert.Equal(t, codesnap.ExitConfigError, codesnap.ExitCodeForError(err))
}
