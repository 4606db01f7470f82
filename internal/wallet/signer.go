package wallet

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Signer issues permit signatures for a signing wallet.
type Signer struct {
	wallet *Wallet
	ks     KeystoreBackend
}

// NewSigner creates a signer for the given wallet.
func NewSigner(w *Wallet, ks KeystoreBackend) *Signer {
	return &Signer{wallet: w, ks: ks}
}

// SignPermit signs a permit digest produced by the registry for this
// wallet's account. The caller is responsible for building the digest
// against the token's current nonce.
func (s *Signer) SignPermit(digest common.Hash) ([]byte, error) {
	if s.wallet.Type != TypeSigning {
		return nil, fmt.Errorf("wallet %q is watch-only and cannot sign", s.wallet.Name)
	}
	return SignDigest(s.wallet, s.ks, digest)
}

// Address returns the wallet's address.
func (s *Signer) Address() common.Address {
	return common.HexToAddress(s.wallet.Address)
}
