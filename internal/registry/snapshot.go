package registry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TokenRecord is one live token in a Snapshot.
type TokenRecord struct {
	ID       TokenID        `json:"id"`
	Owner    common.Address `json:"owner"`
	Approved common.Address `json:"approved,omitempty"`
	Nonce    uint64         `json:"nonce"`
	URI      string         `json:"uri,omitempty"`
}

// Snapshot is the full serializable image of a registry. Tokens appear in
// global enumeration order and OwnedOrder lists each owner's tokens in
// per-owner enumeration order, so a restored registry enumerates
// identically to the captured one.
type Snapshot struct {
	Config        Config                              `json:"config"`
	Tokens        []TokenRecord                       `json:"tokens"`
	OwnedOrder    map[common.Address][]TokenID        `json:"owned_order"`
	Operators     map[common.Address][]common.Address `json:"operators,omitempty"`
	RetiredNonces map[TokenID]uint64                  `json:"retired_nonces,omitempty"`
	NextID        TokenID                             `json:"next_id"`
	Minted        uint64                              `json:"minted"`
	Burned        uint64                              `json:"burned"`
}

// Snapshot captures the registry's complete state.
func (r *Registry) Snapshot() *Snapshot {
	s := &Snapshot{
		Config:     r.cfg,
		Tokens:     make([]TokenRecord, 0, r.global.count()),
		OwnedOrder: make(map[common.Address][]TokenID, len(r.owned)),
		NextID:     r.nextID,
		Minted:     r.minted,
		Burned:     r.burned,
	}

	for i := 0; i < r.global.count(); i++ {
		id := r.global.at(i)
		s.Tokens = append(s.Tokens, TokenRecord{
			ID:       id,
			Owner:    r.owners[id],
			Approved: r.approvals[id],
			Nonce:    r.nonces[id],
			URI:      r.uris[id],
		})
	}

	for owner, list := range r.owned {
		order := make([]TokenID, list.count())
		copy(order, list.ids)
		s.OwnedOrder[owner] = order
	}

	for owner, ops := range r.operators {
		for op := range ops {
			if s.Operators == nil {
				s.Operators = make(map[common.Address][]common.Address)
			}
			s.Operators[owner] = append(s.Operators[owner], op)
		}
	}

	for id, nonce := range r.nonces {
		if _, live := r.owners[id]; !live {
			if s.RetiredNonces == nil {
				s.RetiredNonces = make(map[TokenID]uint64)
			}
			s.RetiredNonces[id] = nonce
		}
	}

	return s
}

// FromSnapshot rebuilds a registry from a captured snapshot, preserving both
// enumeration orders exactly.
func FromSnapshot(s *Snapshot, opts ...Option) (*Registry, error) {
	r := New(s.Config, opts...)
	r.nextID = s.NextID
	r.minted = s.Minted
	r.burned = s.Burned

	for _, rec := range s.Tokens {
		if _, dup := r.owners[rec.ID]; dup {
			return nil, fmt.Errorf("snapshot: duplicate token %d", rec.ID)
		}
		if rec.Owner == (common.Address{}) {
			return nil, fmt.Errorf("snapshot: token %d has no owner", rec.ID)
		}
		r.owners[rec.ID] = rec.Owner
		r.nonces[rec.ID] = rec.Nonce
		if rec.Approved != (common.Address{}) {
			r.approvals[rec.ID] = rec.Approved
		}
		if rec.URI != "" {
			r.uris[rec.ID] = rec.URI
		}
		r.global.insert(rec.ID)
	}

	for owner, order := range s.OwnedOrder {
		list := r.ownedList(owner)
		for _, id := range order {
			if got := r.owners[id]; got != owner {
				return nil, fmt.Errorf("snapshot: token %d listed under %s but owned by %s", id, owner.Hex(), got.Hex())
			}
			list.insert(id)
		}
	}
	for id, owner := range r.owners {
		if !r.ownedList(owner).contains(id) {
			return nil, fmt.Errorf("snapshot: token %d missing from %s's enumeration", id, owner.Hex())
		}
	}

	for owner, ops := range s.Operators {
		for _, op := range ops {
			if r.operators[owner] == nil {
				r.operators[owner] = make(map[common.Address]bool)
			}
			r.operators[owner][op] = true
		}
	}

	for id, nonce := range s.RetiredNonces {
		r.nonces[id] = nonce
	}

	return r, nil
}
