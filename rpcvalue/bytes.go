// Package rpcvalue implements the wire-exact Ethereum scalar, byte-array,
// and polymorphic value types that flow through the JSON-RPC envelope.
//
// Every type here round-trips through Ethereum's hex-string wire format:
// encode always emits a lowercase "0x"-prefixed string, decode accepts
// both prefixed and unprefixed, even-length-only hex.
package rpcvalue

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Bytes is a variable-length byte string, wire-encoded as "0x" followed by
// lowercase hex. An empty Bytes encodes as "0x", never "".
type Bytes []byte

// String renders b as "0x"+hex, matching the wire encoding.
func (b Bytes) String() string {
	return "0x" + hex.EncodeToString(b)
}

// MarshalJSON implements json.Marshaler. The empty slice and nil both
// serialize to "0x" — there is no wire distinction between "absent" and
// "empty" at this type; omission is the caller's job (see the Optional
// field convention in the ethtypes/catalog packages).
func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON implements json.Unmarshaler, accepting both "0x"-prefixed
// and bare hex strings. Odd-length and non-hex input is rejected.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := decodeHexString(s)
	if err != nil {
		return fmt.Errorf("rpcvalue: Bytes: %w", err)
	}
	*b = decoded
	return nil
}

// decodeHexString strips an optional "0x"/"0X" prefix and decodes the
// remainder, rejecting odd-length or non-hex input.
func decodeHexString(s string) ([]byte, error) {
	trimmed := s
	if len(trimmed) >= 2 && trimmed[0] == '0' && (trimmed[1] == 'x' || trimmed[1] == 'X') {
		trimmed = trimmed[2:]
	}
	if len(trimmed)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex string %q", s)
	}
	if trimmed == "" {
		return []byte{}, nil
	}
	out, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string %q: %w", s, err)
	}
	return out, nil
}
