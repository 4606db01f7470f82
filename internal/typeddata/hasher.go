// Package typeddata builds EIP-712 structured-data digests for the permit
// protocol. The byte layout here is the wire contract with off-registry
// signers: field order, 32-byte big-endian widths, and the schema strings
// must never change.
package typeddata

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Typehashes: keccak-256 of the fixed ASCII schema strings.
var (
	DomainTypehash = crypto.Keccak256Hash(
		[]byte("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"))
	PermitTypehash = crypto.Keccak256Hash(
		[]byte("Permit(address spender,uint256 tokenId,uint256 nonce,uint256 deadline)"))
)

// Domain identifies one registry instance for signature domain separation.
type Domain struct {
	Name              string
	Version           string
	ChainID           uint64
	VerifyingContract common.Address
}

// Hasher computes permit digests bound to a single domain. The domain
// separator is computed once at construction and never changes.
type Hasher struct {
	domain    Domain
	separator common.Hash
}

// NewHasher builds a hasher for the given domain.
func NewHasher(d Domain) *Hasher {
	sep := crypto.Keccak256Hash(
		DomainTypehash.Bytes(),
		crypto.Keccak256([]byte(d.Name)),
		crypto.Keccak256([]byte(d.Version)),
		encodeUint(d.ChainID),
		encodeAddress(d.VerifyingContract),
	)
	return &Hasher{domain: d, separator: sep}
}

// Domain returns the domain the hasher was constructed with.
func (h *Hasher) Domain() Domain {
	return h.domain
}

// DomainSeparator returns the precomputed EIP-712 domain separator.
func (h *Hasher) DomainSeparator() common.Hash {
	return h.separator
}

// PermitDigest returns the digest a token owner signs to authorize spender
// for tokenID at the given nonce, valid until deadline:
//
//	keccak256(0x19 0x01 ‖ domainSeparator ‖ keccak256(abi.encode(
//	    PERMIT_TYPEHASH, spender, tokenID, nonce, deadline)))
func (h *Hasher) PermitDigest(spender common.Address, tokenID, nonce, deadline uint64) common.Hash {
	structHash := crypto.Keccak256(
		PermitTypehash.Bytes(),
		encodeAddress(spender),
		encodeUint(tokenID),
		encodeUint(nonce),
		encodeUint(deadline),
	)
	return crypto.Keccak256Hash([]byte{0x19, 0x01}, h.separator.Bytes(), structHash)
}

// encodeUint returns v as a 32-byte big-endian word.
func encodeUint(v uint64) []byte {
	word := make([]byte, 32)
	binary.BigEndian.PutUint64(word[24:], v)
	return word
}

// encodeAddress returns the address left-padded to a 32-byte word.
func encodeAddress(a common.Address) []byte {
	word := make([]byte, 32)
	copy(word[12:], a.Bytes())
	return word
}
