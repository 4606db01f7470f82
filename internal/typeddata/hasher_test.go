package typeddata

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDomain() Domain {
	return Domain{
		Name:              "Test Registry",
		Version:           "1",
		ChainID:           1,
		VerifyingContract: common.HexToAddress("0x1111111111111111111111111111111111111111"),
	}
}

// ---------------------------------------------------------------------------
// Typehashes — fixed constants derived from the ASCII schema strings
// ---------------------------------------------------------------------------

func TestDomainTypehashConstant(t *testing.T) {
	// Standard EIP-712 domain typehash.
	assert.Equal(t,
		"0x8b73c3c69bb8fe3d512ecc4cf759cc79239f7b179b0ffacaa9a75d522b39400f",
		DomainTypehash.Hex())
}

func TestPermitTypehashConstant(t *testing.T) {
	// EIP-4494 permit typehash.
	assert.Equal(t,
		"0x49ecf333e5b8c95c40fdafc95c1ad136e8914a8fb55e9dc8bb01eaa83a2df9ad",
		PermitTypehash.Hex())
}

// ---------------------------------------------------------------------------
// Domain separator
// ---------------------------------------------------------------------------

func TestDomainSeparatorKnownValue(t *testing.T) {
	h := NewHasher(testDomain())
	assert.Equal(t,
		"0x2e6c7c8317c3ea8a5622291792124b8ae05546f6832c88e5c97c64aa9cb737da",
		h.DomainSeparator().Hex())
}

func TestDomainSeparatorChainIDSensitivity(t *testing.T) {
	d := testDomain()
	d.ChainID = 11155111 // Sepolia
	h := NewHasher(d)
	assert.Equal(t,
		"0x8a2094b9a89f90555f350b7b1f0789c255084f60361cd70e803f45073efc8e53",
		h.DomainSeparator().Hex())
}

func TestDomainSeparatorDiffersPerField(t *testing.T) {
	base := NewHasher(testDomain()).DomainSeparator()

	variants := []Domain{
		{Name: "Other Registry", Version: "1", ChainID: 1,
			VerifyingContract: common.HexToAddress("0x1111111111111111111111111111111111111111")},
		{Name: "Test Registry", Version: "2", ChainID: 1,
			VerifyingContract: common.HexToAddress("0x1111111111111111111111111111111111111111")},
		{Name: "Test Registry", Version: "1", ChainID: 1337,
			VerifyingContract: common.HexToAddress("0x1111111111111111111111111111111111111111")},
		{Name: "Test Registry", Version: "1", ChainID: 1,
			VerifyingContract: common.HexToAddress("0x9999999999999999999999999999999999999999")},
	}
	for _, d := range variants {
		assert.NotEqual(t, base, NewHasher(d).DomainSeparator(),
			"changing any domain field must change the separator")
	}
}

func TestDomainRoundTrip(t *testing.T) {
	d := testDomain()
	h := NewHasher(d)
	assert.Equal(t, d, h.Domain())
}

// ---------------------------------------------------------------------------
// Permit digest
// ---------------------------------------------------------------------------

func TestPermitDigestKnownValue(t *testing.T) {
	h := NewHasher(testDomain())
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	digest := h.PermitDigest(spender, 1, 0, 1924992000)
	assert.Equal(t,
		"0x672a42bfdef288d31d4c18b44b082e0152b92211c5a85788a17417f40994bac4",
		digest.Hex())
}

func TestPermitDigestNonceAdvances(t *testing.T) {
	h := NewHasher(testDomain())
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	digest := h.PermitDigest(spender, 1, 1, 1924992000)
	assert.Equal(t,
		"0x4daca5c1f136587b6828669d47a973696142e6fb4107ddb57dd2988cfd2d86fb",
		digest.Hex())
}

func TestPermitDigestDeterministic(t *testing.T) {
	h := NewHasher(testDomain())
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	a := h.PermitDigest(spender, 7, 3, 2000000000)
	b := h.PermitDigest(spender, 7, 3, 2000000000)
	assert.Equal(t, a, b)
}

func TestPermitDigestFieldSensitivity(t *testing.T) {
	h := NewHasher(testDomain())
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")
	other := common.HexToAddress("0x3333333333333333333333333333333333333333")

	base := h.PermitDigest(spender, 1, 0, 1924992000)

	require.NotEqual(t, base, h.PermitDigest(other, 1, 0, 1924992000), "spender")
	require.NotEqual(t, base, h.PermitDigest(spender, 2, 0, 1924992000), "tokenId")
	require.NotEqual(t, base, h.PermitDigest(spender, 1, 1, 1924992000), "nonce")
	require.NotEqual(t, base, h.PermitDigest(spender, 1, 0, 1924992001), "deadline")
}

func TestPermitDigestDomainSeparation(t *testing.T) {
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	mainnet := NewHasher(testDomain())
	sepolia := testDomain()
	sepolia.ChainID = 11155111

	assert.NotEqual(t,
		mainnet.PermitDigest(spender, 1, 0, 1924992000),
		NewHasher(sepolia).PermitDigest(spender, 1, 0, 1924992000),
		"identical permits on different chains must produce different digests")
}
