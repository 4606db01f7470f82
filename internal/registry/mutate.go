package registry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Mint creates the next token ID, assigns it to recipient, and records the
// URI suffix. Only the configured minter may mint. Returns the new ID.
func (r *Registry) Mint(caller, to common.Address, uri string) (TokenID, error) {
	if caller != r.cfg.Minter {
		return 0, fmt.Errorf("mint by %s: %w", caller.Hex(), ErrUnauthorized)
	}
	if to == (common.Address{}) {
		return 0, ErrInvalidRecipient
	}
	if r.cfg.MaxSupply > 0 && r.minted >= r.cfg.MaxSupply {
		return 0, fmt.Errorf("minted %d of %d: %w", r.minted, r.cfg.MaxSupply, ErrSupplyExceeded)
	}

	id := r.nextID
	if _, exists := r.owners[id]; exists {
		// Unreachable while nextID stays monotonic; guards corrupted snapshots.
		return 0, fmt.Errorf("token %d: %w", id, ErrTokenExists)
	}

	r.owners[id] = to
	r.nonces[id] = 0
	r.uris[id] = uri
	r.global.insert(id)
	r.ownedList(to).insert(id)
	r.nextID++
	r.minted++

	r.emit(TransferEvent{From: common.Address{}, To: to, TokenID: id})
	return id, nil
}

// Transfer moves a token from its current owner to another account. The
// caller must be the owner, the approved spender, or an approved operator.
// On success the per-token approval is cleared and the nonce advances.
func (r *Registry) Transfer(caller, from, to common.Address, id TokenID) error {
	if err := r.checkTransfer(caller, from, to, id); err != nil {
		return err
	}
	r.move(from, to, id)
	r.emit(TransferEvent{From: from, To: to, TokenID: id})
	return nil
}

// Approve sets the single approved spender for a token. The caller must be
// the owner or one of the owner's operators. Does not touch the nonce.
func (r *Registry) Approve(caller, approved common.Address, id TokenID) error {
	owner, ok := r.owners[id]
	if !ok {
		return fmt.Errorf("token %d: %w", id, ErrTokenNotFound)
	}
	if approved == owner {
		return fmt.Errorf("%s owns token %d: %w", owner.Hex(), id, ErrInvalidApprovee)
	}
	if caller != owner && !r.operators[owner][caller] {
		return fmt.Errorf("approve by %s: %w", caller.Hex(), ErrUnauthorized)
	}

	r.approvals[id] = approved
	r.emit(ApprovalEvent{Owner: owner, Approved: approved, TokenID: id})
	return nil
}

// SetApprovalForAll grants or revokes operator rights over every token the
// caller owns now or later. No token-existence requirement.
func (r *Registry) SetApprovalForAll(caller, operator common.Address, approved bool) error {
	if operator == caller {
		return fmt.Errorf("%s: %w", caller.Hex(), ErrInvalidOperator)
	}

	if approved {
		if r.operators[caller] == nil {
			r.operators[caller] = make(map[common.Address]bool)
		}
		r.operators[caller][operator] = true
	} else {
		delete(r.operators[caller], operator)
		if len(r.operators[caller]) == 0 {
			delete(r.operators, caller)
		}
	}

	r.emit(ApprovalForAllEvent{Owner: caller, Operator: operator, Approved: approved})
	return nil
}

// Burn destroys a token permanently. Authorization follows the transfer
// rule. The ID is retired from both enumerations and never reassigned; the
// nonce still advances so no stale permit outlives the token.
func (r *Registry) Burn(caller common.Address, id TokenID) error {
	owner, ok := r.owners[id]
	if !ok {
		return fmt.Errorf("token %d: %w", id, ErrTokenNotFound)
	}
	if !r.canSpend(caller, owner, id) {
		return fmt.Errorf("burn by %s: %w", caller.Hex(), ErrUnauthorized)
	}

	r.global.remove(id)
	r.removeOwned(owner, id)
	delete(r.owners, id)
	delete(r.approvals, id)
	delete(r.uris, id)
	r.nonces[id]++
	r.burned++

	r.emit(TransferEvent{From: owner, To: common.Address{}, TokenID: id})
	return nil
}

// checkTransfer validates every transfer precondition without mutating.
func (r *Registry) checkTransfer(caller, from, to common.Address, id TokenID) error {
	owner, ok := r.owners[id]
	if !ok || owner != from {
		return fmt.Errorf("token %d not owned by %s: %w", id, from.Hex(), ErrTokenNotFound)
	}
	if to == (common.Address{}) {
		return ErrInvalidRecipient
	}
	if !r.canSpend(caller, owner, id) {
		return fmt.Errorf("transfer by %s: %w", caller.Hex(), ErrUnauthorized)
	}
	return nil
}

// move applies a validated transfer: approval cleared, enumeration entries
// swapped between owners, nonce advanced. Emits nothing.
func (r *Registry) move(from, to common.Address, id TokenID) {
	delete(r.approvals, id)
	r.removeOwned(from, id)
	r.ownedList(to).insert(id)
	r.owners[id] = to
	r.nonces[id]++
}

// ownedList returns the per-owner enumeration, creating it on first use.
func (r *Registry) ownedList(owner common.Address) *denseIndex {
	list, ok := r.owned[owner]
	if !ok {
		list = newDenseIndex()
		r.owned[owner] = list
	}
	return list
}

// removeOwned drops a token from an owner's enumeration, pruning the list
// once it is empty so BalanceOf and snapshots stay tidy.
func (r *Registry) removeOwned(owner common.Address, id TokenID) {
	list := r.owned[owner]
	list.remove(id)
	if list.count() == 0 {
		delete(r.owned, owner)
	}
}
