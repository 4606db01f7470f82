package registry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ReceiverAck is the 4-byte acknowledgement a Receiver must return for a
// safe transfer to stand.
var ReceiverAck = [4]byte{0x15, 0x0b, 0x7a, 0x02}

// Receiver is implemented by recipients that want to be notified of (and
// able to reject) incoming safe transfers.
type Receiver interface {
	// OnTokenReceived is called after the registry state already reflects
	// the completed transfer, so re-entrant reads observe consistent state.
	// Returning anything other than ReceiverAck, or an error, rejects the
	// transfer.
	OnTokenReceived(operator, from common.Address, id TokenID, data []byte) ([4]byte, error)
}

// SafeTransfer performs a Transfer and then notifies the recipient. If the
// recipient does not acknowledge, the whole operation is rolled back and no
// event is emitted — the all-or-nothing guarantee holds even though the
// callback ran against the mutated state. A nil receiver behaves like a
// plain Transfer.
func (r *Registry) SafeTransfer(caller, from, to common.Address, id TokenID, data []byte, recv Receiver) error {
	if err := r.checkTransfer(caller, from, to, id); err != nil {
		return err
	}
	if recv == nil {
		r.move(from, to, id)
		r.emit(TransferEvent{From: from, To: to, TokenID: id})
		return nil
	}

	saved := r.capture()
	r.move(from, to, id)

	ack, err := recv.OnTokenReceived(caller, from, id, data)
	if err != nil {
		r.restore(saved)
		return fmt.Errorf("%w: %v", ErrUnexpectedAck, err)
	}
	if ack != ReceiverAck {
		r.restore(saved)
		return fmt.Errorf("got %#x, want %#x: %w", ack, ReceiverAck, ErrUnexpectedAck)
	}

	r.emit(TransferEvent{From: from, To: to, TokenID: id})
	return nil
}

// state is a deep copy of everything a transfer can touch.
type state struct {
	owners    map[TokenID]common.Address
	approvals map[TokenID]common.Address
	nonces    map[TokenID]uint64
	owned     map[common.Address]*denseIndex
}

func (r *Registry) capture() state {
	s := state{
		owners:    make(map[TokenID]common.Address, len(r.owners)),
		approvals: make(map[TokenID]common.Address, len(r.approvals)),
		nonces:    make(map[TokenID]uint64, len(r.nonces)),
		owned:     make(map[common.Address]*denseIndex, len(r.owned)),
	}
	for id, owner := range r.owners {
		s.owners[id] = owner
	}
	for id, approved := range r.approvals {
		s.approvals[id] = approved
	}
	for id, nonce := range r.nonces {
		s.nonces[id] = nonce
	}
	for owner, list := range r.owned {
		s.owned[owner] = list.clone()
	}
	return s
}

func (r *Registry) restore(s state) {
	r.owners = s.owners
	r.approvals = s.approvals
	r.nonces = s.nonces
	r.owned = s.owned
}
