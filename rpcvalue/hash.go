package rpcvalue

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash8, Hash16, Address, and Hash32 are fixed-width byte arrays for the
// 64, 128, 160, and 256-bit wire widths used throughout the Ethereum
// JSON-RPC API. Each encodes as lowercase "0x"-prefixed hex of its exact
// nibble width; decode rejects input of the wrong length.
type (
	Hash8   [8]byte
	Hash16  [16]byte
	Address [20]byte
	Hash32  [32]byte
)

func (h Hash8) String() string   { return fixedString(h[:]) }
func (h Hash16) String() string  { return fixedString(h[:]) }
func (a Address) String() string { return fixedString(a[:]) }
func (h Hash32) String() string  { return fixedString(h[:]) }

func fixedString(b []byte) string { return "0x" + hex.EncodeToString(b) }

func (h Hash8) MarshalJSON() ([]byte, error)   { return json.Marshal(h.String()) }
func (h Hash16) MarshalJSON() ([]byte, error)  { return json.Marshal(h.String()) }
func (a Address) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }
func (h Hash32) MarshalJSON() ([]byte, error)  { return json.Marshal(h.String()) }

// MarshalText/UnmarshalText let these types serve as JSON object keys
// (encoding/json requires TextMarshaler for non-string-kind map keys) —
// used by ethtypes.TxPoolContent, which is keyed by sender Address.
func (h Hash8) MarshalText() ([]byte, error)   { return []byte(h.String()), nil }
func (h Hash16) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (h Hash32) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }

func (h *Hash8) UnmarshalText(text []byte) error   { return h.UnmarshalJSON(quoteBytes(text)) }
func (h *Hash16) UnmarshalText(text []byte) error  { return h.UnmarshalJSON(quoteBytes(text)) }
func (a *Address) UnmarshalText(text []byte) error { return a.UnmarshalJSON(quoteBytes(text)) }
func (h *Hash32) UnmarshalText(text []byte) error  { return h.UnmarshalJSON(quoteBytes(text)) }

// quoteBytes wraps raw text in JSON string quotes so UnmarshalText can
// reuse the UnmarshalJSON hex-decoding path.
func quoteBytes(text []byte) []byte {
	quoted := make([]byte, 0, len(text)+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, text...)
	quoted = append(quoted, '"')
	return quoted
}

func (h *Hash8) UnmarshalJSON(data []byte) error {
	b, err := unmarshalFixed(data, len(h))
	if err != nil {
		return fmt.Errorf("rpcvalue: Hash8: %w", err)
	}
	copy(h[:], b)
	return nil
}

func (h *Hash16) UnmarshalJSON(data []byte) error {
	b, err := unmarshalFixed(data, len(h))
	if err != nil {
		return fmt.Errorf("rpcvalue: Hash16: %w", err)
	}
	copy(h[:], b)
	return nil
}

func (a *Address) UnmarshalJSON(data []byte) error {
	b, err := unmarshalFixed(data, len(a))
	if err != nil {
		return fmt.Errorf("rpcvalue: Address: %w", err)
	}
	copy(a[:], b)
	return nil
}

func (h *Hash32) UnmarshalJSON(data []byte) error {
	b, err := unmarshalFixed(data, len(h))
	if err != nil {
		return fmt.Errorf("rpcvalue: Hash32: %w", err)
	}
	copy(h[:], b)
	return nil
}

// unmarshalFixed decodes a JSON hex string and enforces it is exactly
// width bytes long.
func unmarshalFixed(data []byte, width int) ([]byte, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	b, err := decodeHexString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != width {
		return nil, fmt.Errorf("wrong width: got %d bytes, want %d (%q)", len(b), width, s)
	}
	return b, nil
}
