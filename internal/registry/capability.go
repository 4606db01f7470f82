package registry

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// InterfaceID is a 4-byte capability tag (ERC-165 style).
type InterfaceID [4]byte

// Capability tags the registry reports support for.
var (
	InterfaceERC165        = InterfaceID{0x01, 0xff, 0xc9, 0xa7}
	InterfaceERC721        = InterfaceID{0x80, 0xac, 0x58, 0xcd}
	InterfaceMetadata      = InterfaceID{0x5b, 0x5e, 0x13, 0x9f}
	InterfaceEnumerable    = InterfaceID{0x78, 0x0e, 0x9d, 0x63}
	InterfaceTokenReceiver = InterfaceID{0x15, 0x0b, 0x7a, 0x02}
	InterfacePermit        = InterfaceID{0x56, 0x04, 0xe2, 0x25}
)

var supportedInterfaces = map[InterfaceID]bool{
	InterfaceERC165:        true,
	InterfaceERC721:        true,
	InterfaceMetadata:      true,
	InterfaceEnumerable:    true,
	InterfaceTokenReceiver: true,
	InterfacePermit:        true,
}

// String returns the tag as 0x-prefixed hex.
func (id InterfaceID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// ParseInterfaceID parses a 4-byte tag from 0x-prefixed or bare hex.
func ParseInterfaceID(s string) (InterfaceID, error) {
	clean := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return InterfaceID{}, fmt.Errorf("invalid interface ID hex: %w", err)
	}
	if len(raw) != 4 {
		return InterfaceID{}, fmt.Errorf("invalid interface ID length: expected 4 bytes, got %d", len(raw))
	}
	var id InterfaceID
	copy(id[:], raw)
	return id, nil
}

// SupportsInterface reports whether the registry implements the capability
// identified by the given tag.
func (r *Registry) SupportsInterface(id InterfaceID) bool {
	return supportedInterfaces[id]
}

// SupportedInterfaces returns all supported capability tags.
func SupportedInterfaces() []InterfaceID {
	return []InterfaceID{
		InterfaceERC165,
		InterfaceERC721,
		InterfaceMetadata,
		InterfaceEnumerable,
		InterfaceTokenReceiver,
		InterfacePermit,
	}
}
