package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SceneIt_Go/internal/config"
)

func writeLogs(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestCleanupLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	writeLogs(t, dir, 12)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0600))

	cleanupLogs(dir, 8)

	names := listDir(t, dir)
	assert.Len(t, names, 9)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "session_2024-01-01_00-00-00.log")
	assert.NotContains(t, names, "session_2024-01-04_00-00-00.log")
	assert.Contains(t, names, "session_2024-01-05_00-00-00.log")
	assert.Contains(t, names, "session_2024-01-12_00-00-00.log")
}

func TestCleanupLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	writeLogs(t, dir, 3)

	cleanupLogs(dir, 8)

	assert.Len(t, listDir(t, dir), 3)
}

func TestCleanupLogs_MissingDir(t *testing.T) {
	assert.NotPanics(t, func() {
		cleanupLogs(filepath.Join(t.TempDir(), "missing"), 8)
	})
}

func TestSetupLogger_CreatesSessionFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	writeLogs(t, mustMkdir(t, dir), 12)

	cfg := &config.Config{
		LogDir:      dir,
		LogLevel:    "info",
		LogFormat:   "text",
		ServiceName: "sceneit-test",
		Version:     "test",
		Environment: "test",
	}

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.FileExists(t, f.Name())
	assert.Len(t, listDir(t, dir), LogFileRetentionCount)
}

func mustMkdir(t *testing.T, dir string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, DirPermission))
	return dir
}
