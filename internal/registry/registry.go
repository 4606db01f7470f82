// Package registry implements a non-fungible-token ownership registry with
// per-token and per-operator approvals, dense global and per-owner
// enumerations, and off-chain signature-delegated approvals (permits).
//
// A Registry owns all of its state; there are no package-level globals.
// Operations are not safe for concurrent use — callers serialize access.
package registry

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Mohsinsiddi/nftreg/internal/typeddata"
)

// TokenID identifies one token. IDs are assigned monotonically starting at 1
// and are never reused, even after a burn.
type TokenID uint64

// Config holds the immutable parameters of a registry instance.
type Config struct {
	Name      string         // human-readable collection name (also binds signatures)
	Symbol    string         // short ticker symbol
	Version   string         // domain version string for permit signatures
	BaseURI   string         // prefix for token URIs
	ChainID   uint64         // network identifier for domain separation
	Contract  common.Address // the registry's own identity for domain separation
	Minter    common.Address // the only account allowed to mint
	MaxSupply uint64         // cap on total tokens ever minted (0 = unlimited)
}

// Registry is the single source of truth for token ownership, approvals,
// nonces, and both dense enumerations.
type Registry struct {
	cfg    Config
	hasher *typeddata.Hasher

	owners    map[TokenID]common.Address
	approvals map[TokenID]common.Address
	operators map[common.Address]map[common.Address]bool
	nonces    map[TokenID]uint64
	uris      map[TokenID]string

	global *denseIndex
	owned  map[common.Address]*denseIndex

	nextID TokenID
	minted uint64
	burned uint64

	observers []func(Event)
	now       func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithObserver registers a callback invoked once per emitted event.
func WithObserver(fn func(Event)) Option {
	return func(r *Registry) {
		r.observers = append(r.observers, fn)
	}
}

// WithClock overrides the time source used for permit deadline checks
// (useful for tests).
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// New creates an empty registry.
func New(cfg Config, opts ...Option) *Registry {
	r := &Registry{
		cfg: cfg,
		hasher: typeddata.NewHasher(typeddata.Domain{
			Name:              cfg.Name,
			Version:           cfg.Version,
			ChainID:           cfg.ChainID,
			VerifyingContract: cfg.Contract,
		}),
		owners:    make(map[TokenID]common.Address),
		approvals: make(map[TokenID]common.Address),
		operators: make(map[common.Address]map[common.Address]bool),
		nonces:    make(map[TokenID]uint64),
		uris:      make(map[TokenID]string),
		global:    newDenseIndex(),
		owned:     make(map[common.Address]*denseIndex),
		nextID:    1,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the registry's immutable configuration.
func (r *Registry) Config() Config {
	return r.cfg
}

// Name returns the collection name.
func (r *Registry) Name() string { return r.cfg.Name }

// Symbol returns the collection symbol.
func (r *Registry) Symbol() string { return r.cfg.Symbol }

// BaseURI returns the URI prefix shared by all tokens.
func (r *Registry) BaseURI() string { return r.cfg.BaseURI }

// TokenURI returns BaseURI + the token's stored suffix.
func (r *Registry) TokenURI(id TokenID) (string, error) {
	if _, ok := r.owners[id]; !ok {
		return "", fmt.Errorf("token %d: %w", id, ErrTokenNotFound)
	}
	return r.cfg.BaseURI + r.uris[id], nil
}

// OwnerOf returns the current owner of a token.
func (r *Registry) OwnerOf(id TokenID) (common.Address, error) {
	owner, ok := r.owners[id]
	if !ok {
		return common.Address{}, fmt.Errorf("token %d: %w", id, ErrTokenNotFound)
	}
	return owner, nil
}

// BalanceOf returns the number of tokens owned by an account. The balance is
// by construction the length of the account's dense enumeration.
func (r *Registry) BalanceOf(owner common.Address) uint64 {
	list, ok := r.owned[owner]
	if !ok {
		return 0
	}
	return uint64(list.count())
}

// GetApproved returns the approved spender for a token, or the zero address
// if none is set.
func (r *Registry) GetApproved(id TokenID) (common.Address, error) {
	if _, ok := r.owners[id]; !ok {
		return common.Address{}, fmt.Errorf("token %d: %w", id, ErrTokenNotFound)
	}
	return r.approvals[id], nil
}

// IsApprovedForAll reports whether operator may act on all of owner's tokens.
func (r *Registry) IsApprovedForAll(owner, operator common.Address) bool {
	return r.operators[owner][operator]
}

// TotalSupply returns the number of live (minted and not burned) tokens.
func (r *Registry) TotalSupply() uint64 {
	return r.minted - r.burned
}

// Minted returns the total number of tokens ever minted.
func (r *Registry) Minted() uint64 { return r.minted }

// Burned returns the total number of tokens burned.
func (r *Registry) Burned() uint64 { return r.burned }

// TokenByIndex returns the token at the given slot of the global
// enumeration. Indices are 1-based: valid slots are exactly 1..TotalSupply().
func (r *Registry) TokenByIndex(index uint64) (TokenID, error) {
	if index == 0 || index > uint64(r.global.count()) {
		return 0, fmt.Errorf("global index %d out of range 1..%d: %w", index, r.global.count(), ErrTokenNotFound)
	}
	return r.global.at(int(index - 1)), nil
}

// TokenOfOwnerByIndex returns the token at the given slot of owner's
// enumeration. Indices are 0-based: valid slots are exactly
// 0..BalanceOf(owner)-1.
func (r *Registry) TokenOfOwnerByIndex(owner common.Address, index uint64) (TokenID, error) {
	list, ok := r.owned[owner]
	if !ok || index >= uint64(list.count()) {
		return 0, fmt.Errorf("owner index %d out of range: %w", index, ErrTokenNotFound)
	}
	return list.at(int(index)), nil
}

// Nonce returns the token's replay-protection counter. The nonce advances by
// one on every transfer and burn, never on approvals or permits.
func (r *Registry) Nonce(id TokenID) (uint64, error) {
	if _, ok := r.owners[id]; !ok {
		return 0, fmt.Errorf("token %d: %w", id, ErrTokenNotFound)
	}
	return r.nonces[id], nil
}

// DomainSeparator returns the EIP-712 domain separator permit signatures
// are bound to.
func (r *Registry) DomainSeparator() common.Hash {
	return r.hasher.DomainSeparator()
}

// canSpend reports whether caller may move a token currently held by owner.
func (r *Registry) canSpend(caller, owner common.Address, id TokenID) bool {
	if caller == owner {
		return true
	}
	if r.approvals[id] == caller && caller != (common.Address{}) {
		return true
	}
	return r.operators[owner][caller]
}
