package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/nftreg/internal/registry"
	"github.com/Mohsinsiddi/nftreg/internal/state"
	"github.com/Mohsinsiddi/nftreg/test/fixtures"
)

const ownerKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	minter  = common.HexToAddress("0x00000000000000000000000000000000000000A1")
	spender = common.HexToAddress("0x00000000000000000000000000000000000000B2")
	other   = common.HexToAddress("0x00000000000000000000000000000000000000C3")
)

func newStore(t *testing.T) *state.FileStore {
	t.Helper()
	return state.NewFileStore(filepath.Join(t.TempDir(), "registry.json"))
}

// TestPermitSurvivesPersistence walks the full flow a CLI user goes through
// across separate invocations: init, mint, sign a permit, then apply it
// against a registry reloaded from disk.
func TestPermitSurvivesPersistence(t *testing.T) {
	key, err := crypto.HexToECDSA(ownerKeyHex)
	require.NoError(t, err)
	owner := crypto.PubkeyToAddress(key.PublicKey)

	store := newStore(t)

	// Invocation 1: init + mint.
	reg := registry.New(registry.Config{
		Name:     "Lifecycle Collection",
		Symbol:   "LIFE",
		Version:  "1",
		ChainID:  1337,
		Contract: common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Minter:   minter,
	})
	id, err := reg.Mint(minter, owner, "")
	require.NoError(t, err)
	require.NoError(t, state.SaveRegistry(store, reg))

	// Invocation 2: build and sign the permit digest.
	reg, err = state.LoadRegistry(store)
	require.NoError(t, err)
	deadline := uint64(4102444800)
	digest, err := reg.PermitDigest(spender, id, deadline)
	require.NoError(t, err)
	sig, err := crypto.Sign(digest.Bytes(), key)
	require.NoError(t, err)

	// Invocation 3: apply the permit on a fresh load. The domain separator
	// and nonce must survive the round trip for the signature to verify.
	reg, err = state.LoadRegistry(store)
	require.NoError(t, err)
	require.NoError(t, reg.Permit(spender, id, deadline, sig))
	require.NoError(t, state.SaveRegistry(store, reg))

	// Invocation 4: the spender transfers the token out.
	reg, err = state.LoadRegistry(store)
	require.NoError(t, err)
	require.NoError(t, reg.Transfer(spender, owner, other, id))
	require.NoError(t, state.SaveRegistry(store, reg))

	// The transfer advanced the nonce, so the old permit is dead even
	// after yet another reload.
	reg, err = state.LoadRegistry(store)
	require.NoError(t, err)
	err = reg.Permit(spender, id, deadline, sig)
	assert.ErrorIs(t, err, registry.ErrInvalidSignature)
}

func TestEnumerationsSurvivePersistence(t *testing.T) {
	store := newStore(t)

	reg := registry.New(registry.Config{
		Name: "Enum Collection", Symbol: "ENUM", Version: "1",
		ChainID: 1337, Minter: minter,
	})
	for i := 0; i < 5; i++ {
		_, err := reg.Mint(minter, spender, "")
		require.NoError(t, err)
	}
	require.NoError(t, reg.Transfer(spender, spender, other, 2))
	require.NoError(t, reg.Burn(spender, 4))
	require.NoError(t, state.SaveRegistry(store, reg))

	restored, err := state.LoadRegistry(store)
	require.NoError(t, err)

	require.Equal(t, reg.TotalSupply(), restored.TotalSupply())
	for i := uint64(1); i <= reg.TotalSupply(); i++ {
		want, err := reg.TokenByIndex(i)
		require.NoError(t, err)
		got, err := restored.TokenByIndex(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "global slot %d", i)
	}
	for i := uint64(0); i < reg.BalanceOf(spender); i++ {
		want, err := reg.TokenOfOwnerByIndex(spender, i)
		require.NoError(t, err)
		got, err := restored.TokenOfOwnerByIndex(spender, i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "owner slot %d", i)
	}
}

func TestFixtureSnapshotLoads(t *testing.T) {
	snap := fixtures.LoadSnapshot(t, "small.json")

	reg, err := registry.FromSnapshot(snap)
	require.NoError(t, err)

	assert.Equal(t, "Fixture Collection", reg.Name())
	assert.Equal(t, uint64(2), reg.TotalSupply())
	assert.Equal(t, uint64(3), reg.Minted())
	assert.Equal(t, uint64(1), reg.Burned())

	// Token 2 was burned before the snapshot was taken; its ID stays dead.
	_, err = reg.OwnerOf(2)
	assert.ErrorIs(t, err, registry.ErrTokenNotFound)
	id, err := reg.Mint(reg.Config().Minter, spender, "")
	require.NoError(t, err)
	assert.Equal(t, registry.TokenID(4), id)

	// Approval and operator grants come back too.
	approved, err := reg.GetApproved(3)
	require.NoError(t, err)
	assert.Equal(t, spender, approved)
	assert.True(t, reg.IsApprovedForAll(other, spender))
}

func TestFixtureSnapshotThroughFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, fixtures.LoadRaw(t, "small.json"), 0o600))

	reg, err := state.LoadRegistry(state.NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, "FIX", reg.Symbol())

	uri, err := reg.TokenURI(3)
	require.NoError(t, err)
	assert.Equal(t, "https://tokens.example/3.json", uri)
}
