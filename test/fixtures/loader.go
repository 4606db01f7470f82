package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/nftreg/internal/registry"
)

// fixturesDir returns the absolute path to the fixtures directory.
func fixturesDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}

// LoadSnapshot loads a fixture registry snapshot JSON file.
func LoadSnapshot(t *testing.T, filename string) *registry.Snapshot {
	t.Helper()
	data := LoadRaw(t, filename)

	var snap registry.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	return &snap
}

// LoadRaw loads a fixture snapshot file and returns its raw bytes.
func LoadRaw(t *testing.T, filename string) []byte {
	t.Helper()
	path := filepath.Join(fixturesDir(), "snapshots", filename)
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to load fixture snapshot: %s", filename)
	return data
}
