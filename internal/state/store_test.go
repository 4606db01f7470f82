package state

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/nftreg/internal/registry"
)

var (
	testMinter = common.HexToAddress("0x00000000000000000000000000000000000000A1")
	testOwner  = common.HexToAddress("0x00000000000000000000000000000000000000B2")
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New(registry.Config{
		Name:     "Test Registry",
		Symbol:   "TST",
		Version:  "1",
		BaseURI:  "https://tokens.example/",
		ChainID:  1337,
		Contract: common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Minter:   testMinter,
	})
	for i := 0; i < 3; i++ {
		_, err := r.Mint(testMinter, testOwner, "")
		require.NoError(t, err)
	}
	return r
}

func TestFileStoreLoadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "registry.json"))
	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoRegistry)
}

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	s := NewFileStore(path)
	r := testRegistry(t)

	require.NoError(t, s.Save(r.Snapshot()))

	snap, err := s.Load()
	require.NoError(t, err)
	restored, err := registry.FromSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, r.TotalSupply(), restored.TotalSupply())
	assert.Equal(t, uint64(3), restored.BalanceOf(testOwner))
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "registry.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(testRegistry(t).Snapshot()))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestFileStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), "registry.json")
	s := NewFileStore(path)
	require.NoError(t, s.Save(testRegistry(t).Snapshot()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing registry state")
}

func TestFileStorePath(t *testing.T) {
	assert.Equal(t, "/tmp/x.json", NewFileStore("/tmp/x.json").Path())
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()
	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoRegistry)

	snap := testRegistry(t).Snapshot()
	require.NoError(t, s.Save(snap))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestLoadSaveRegistry(t *testing.T) {
	s := NewMemStore()
	_, err := LoadRegistry(s)
	assert.ErrorIs(t, err, ErrNoRegistry)

	r := testRegistry(t)
	require.NoError(t, SaveRegistry(s, r))

	restored, err := LoadRegistry(s)
	require.NoError(t, err)
	assert.Equal(t, r.TotalSupply(), restored.TotalSupply())

	// Restored registry stays usable.
	id, err := restored.Mint(testMinter, testOwner, "")
	require.NoError(t, err)
	assert.Equal(t, registry.TokenID(4), id)
}

func TestLoadRegistryCorruptSnapshot(t *testing.T) {
	s := NewMemStore()
	snap := testRegistry(t).Snapshot()
	snap.Tokens = append(snap.Tokens, snap.Tokens[0])
	require.NoError(t, s.Save(snap))

	_, err := LoadRegistry(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restoring registry")
}
