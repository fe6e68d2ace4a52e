package rpcvalue

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// PrivateKeyEncoding selects whether a PrivateKey serializes with or
// without the "0x" prefix. Some node endpoints (notably personal_importRawKey
// on certain clients) expect the bare form.
type PrivateKeyEncoding int

const (
	// PrivateKeyPrefixed serializes as "0x"+hex.
	PrivateKeyPrefixed PrivateKeyEncoding = iota
	// PrivateKeyBare serializes as bare hex, no prefix.
	PrivateKeyBare
)

// PrivateKey is the 32-byte secret, tagged with which of the two wire
// encodings it should serialize as. String and GoString return a redacted
// placeholder, so an accidental %v, %s or %#v on a PrivateKey does not
// print the secret.
type PrivateKey struct {
	secret   [32]byte
	encoding PrivateKeyEncoding
}

func (k PrivateKey) String() string   { return "rpcvalue.PrivateKey{redacted}" }
func (k PrivateKey) GoString() string { return "rpcvalue.PrivateKey{redacted}" }

// NewPrivateKey wraps a 32-byte secret for serialization in the given encoding.
func NewPrivateKey(secret [32]byte, encoding PrivateKeyEncoding) PrivateKey {
	return PrivateKey{secret: secret, encoding: encoding}
}

func (k PrivateKey) MarshalJSON() ([]byte, error) {
	h := hex.EncodeToString(k.secret[:])
	if k.encoding == PrivateKeyPrefixed {
		h = "0x" + h
	}
	return json.Marshal(h)
}

func (k *PrivateKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	prefixed := len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
	b, err := decodeHexString(s)
	if err != nil {
		return fmt.Errorf("rpcvalue: PrivateKey: %w", err)
	}
	if len(b) != 32 {
		return fmt.Errorf("rpcvalue: PrivateKey: want 32 bytes, got %d", len(b))
	}
	encoding := PrivateKeyBare
	if prefixed {
		encoding = PrivateKeyPrefixed
	}
	k.encoding = encoding
	copy(k.secret[:], b)
	return nil
}
