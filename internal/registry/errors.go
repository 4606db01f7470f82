package registry

import "errors"

// Errors. Every public operation fails with exactly one of these (possibly
// wrapped with context); callers inspect them with errors.Is.
var (
	// ErrTokenNotFound is returned when a token has no current owner, or an
	// enumeration index is out of range.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenExists is returned when minting an ID that is already owned.
	ErrTokenExists = errors.New("token already exists")

	// ErrUnauthorized is returned when the caller is neither the owner, the
	// approved spender, nor an approved operator.
	ErrUnauthorized = errors.New("caller not authorized")

	// ErrInvalidRecipient is returned when the target account is the zero
	// address.
	ErrInvalidRecipient = errors.New("invalid recipient")

	// ErrInvalidApprovee is returned when approving the token's own owner.
	ErrInvalidApprovee = errors.New("cannot approve current owner")

	// ErrInvalidOperator is returned when an account sets itself as operator.
	ErrInvalidOperator = errors.New("cannot set self as operator")

	// ErrSupplyExceeded is returned when minting past the configured
	// maximum supply.
	ErrSupplyExceeded = errors.New("max supply reached")

	// ErrPermitExpired is returned when a permit deadline has passed.
	ErrPermitExpired = errors.New("permit expired")

	// ErrInvalidSignature is returned when signature recovery fails or the
	// recovered signer is not the token's current owner.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrMalformedSignature is returned when a signature is not exactly
	// 65 bytes of R || S || V.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrUnexpectedAck is returned by safe transfers when the recipient
	// callback does not return the expected acknowledgement value.
	ErrUnexpectedAck = errors.New("recipient rejected transfer")
)
