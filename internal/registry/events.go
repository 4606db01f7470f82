package registry

import "github.com/ethereum/go-ethereum/common"

// Event is a notification emitted exactly once per successful state change.
// Concrete types: TransferEvent, ApprovalEvent, ApprovalForAllEvent.
type Event interface {
	eventKind() string
}

// TransferEvent records an ownership change. From is the zero address for a
// mint, To is the zero address for a burn.
type TransferEvent struct {
	From    common.Address
	To      common.Address
	TokenID TokenID
}

// ApprovalEvent records a per-token spender approval (set by Approve or
// Permit; a zero Approved means the slot was cleared).
type ApprovalEvent struct {
	Owner    common.Address
	Approved common.Address
	TokenID  TokenID
}

// ApprovalForAllEvent records an operator grant or revocation.
type ApprovalForAllEvent struct {
	Owner    common.Address
	Operator common.Address
	Approved bool
}

func (TransferEvent) eventKind() string       { return "Transfer" }
func (ApprovalEvent) eventKind() string       { return "Approval" }
func (ApprovalForAllEvent) eventKind() string { return "ApprovalForAll" }

func (r *Registry) emit(ev Event) {
	for _, obs := range r.observers {
		obs(ev)
	}
}
