package connector

import (
	"fmt"

	"github.com/dmagro/ethrpc/jsonrpc"
)

// PoolExhaustedError reports that the id pool had no free ids (1000
// concurrent in flight on one connector). This is terminal for the call
// that triggered it, not for the connector — the pool recovers as
// in-flight calls complete.
type PoolExhaustedError struct{}

func (e *PoolExhaustedError) Error() string {
	return "connector: id pool exhausted (1000 calls already in flight)"
}

// WrongIDError is returned by Call when a reply's id does not match the id
// of the call awaiting it. Call checks this on every reply, whatever the
// transport; because each subscription reads from its own forked
// transport, a notification normally never arrives where a call reply is
// expected.
type WrongIDError struct {
	Want uint32
	Got  uint32
}

func (e *WrongIDError) Error() string {
	return fmt.Sprintf("connector: reply id %d does not match in-flight id %d", e.Got, e.Want)
}

// RPCError wraps a server-returned JSON-RPC error: the call was delivered
// and processed, and the node rejected it.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("connector: rpc error %d: %s", e.Code, e.Message)
}

func rpcErrorFrom(e *jsonrpc.RPCError) *RPCError {
	if e == nil {
		return nil
	}
	return &RPCError{Code: e.Code, Message: e.Message}
}
