package main

import (
	"encoding/json"
	"fmt"

	"github.com/dmagro/ethrpc/rpcvalue"
)

func parseAddress(s string) (rpcvalue.Address, error) {
	var addr rpcvalue.Address
	if err := json.Unmarshal(quoted(s), &addr); err != nil {
		return rpcvalue.Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return addr, nil
}

func parseHash32(s string) (rpcvalue.Hash32, error) {
	var hash rpcvalue.Hash32
	if err := json.Unmarshal(quoted(s), &hash); err != nil {
		return rpcvalue.Hash32{}, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	return hash, nil
}

func parseBytes(s string) (rpcvalue.Bytes, error) {
	var b rpcvalue.Bytes
	if err := json.Unmarshal(quoted(s), &b); err != nil {
		return nil, fmt.Errorf("invalid hex data %q: %w", s, err)
	}
	return b, nil
}

func quoted(s string) []byte {
	return []byte(`"` + s + `"`)
}
