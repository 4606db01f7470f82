package registry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the only accepted signature encoding: 32-byte R,
// 32-byte S, 1-byte recovery ID V, concatenated in that order.
const SignatureLength = 65

// Permit authorizes spender for a token without an on-registry approve call,
// based on a signature from the token's current owner over the EIP-712
// permit digest. The digest is built against the token's live nonce, so any
// completed transfer invalidates previously issued permits. Permit itself
// does not advance the nonce.
func (r *Registry) Permit(spender common.Address, id TokenID, deadline uint64, sig []byte) error {
	if deadline < uint64(r.now().Unix()) {
		return fmt.Errorf("deadline %d: %w", deadline, ErrPermitExpired)
	}
	owner, ok := r.owners[id]
	if !ok {
		return fmt.Errorf("token %d: %w", id, ErrTokenNotFound)
	}

	digest := r.hasher.PermitDigest(spender, uint64(id), r.nonces[id], deadline)
	signer, err := RecoverSigner(digest, sig)
	if err != nil {
		return err
	}
	if signer != owner {
		return fmt.Errorf("signed by %s, owner is %s: %w", signer.Hex(), owner.Hex(), ErrInvalidSignature)
	}

	r.approvals[id] = spender
	r.emit(ApprovalEvent{Owner: owner, Approved: spender, TokenID: id})
	return nil
}

// PermitDigest returns the digest an owner must sign to permit spender for
// the token at its current nonce. Exposed so signing tools can build the
// exact bytes the registry will verify.
func (r *Registry) PermitDigest(spender common.Address, id TokenID, deadline uint64) (common.Hash, error) {
	if _, ok := r.owners[id]; !ok {
		return common.Hash{}, fmt.Errorf("token %d: %w", id, ErrTokenNotFound)
	}
	return r.hasher.PermitDigest(spender, uint64(id), r.nonces[id], deadline), nil
}

// RecoverSigner recovers the signing address from a digest and a 65-byte
// R || S || V signature. V is accepted as 0/1 or 27/28. Pure function, no
// registry state involved.
func RecoverSigner(digest common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, fmt.Errorf("expected %d bytes, got %d: %w", SignatureLength, len(sig), ErrMalformedSignature)
	}

	// crypto.SigToPub wants V in 0/1; signers conventionally emit 27/28.
	normalized := make([]byte, SignatureLength)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}
	if normalized[64] > 1 {
		return common.Address{}, fmt.Errorf("recovery ID %d: %w", sig[64], ErrInvalidSignature)
	}

	pub, err := crypto.SigToPub(digest.Bytes(), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
