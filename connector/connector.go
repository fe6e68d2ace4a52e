// Package connector implements the multiplexing layer that owns a
// transport, mints correlation identifiers, serializes and deserializes
// JSON-RPC envelopes, and reconciles replies with their originating
// requests, plus the subscription lifecycle manager built on top of it
// (subscription.go).
package connector

import (
	"time"

	"github.com/dmagro/ethrpc/internal/auth"
	"github.com/dmagro/ethrpc/jsonrpc"
	"github.com/dmagro/ethrpc/transport"
)

// Connector owns exactly one transport and an id pool. It is used
// strictly sequentially and has no internal locking. A caller that needs
// parallelism constructs multiple Connectors, each on its own goroutine
// (see internal/provider.ExecuteAll).
//
// Connector holds a transport.Transport and type-asserts to
// transport.Subscribable only inside Subscribe, rather than taking a
// generic type parameter. Idiomatic Go favors this over parameterizing
// Connector[T transport.Transport], which would buy nothing here (every
// method signature is identical across transport kinds) while forcing
// every caller to name the concrete transport type.
type Connector struct {
	tr   transport.Transport
	pool *idPool
}

// New wraps an already-constructed transport. Most callers use the
// per-kind constructors below instead.
func New(tr transport.Transport) *Connector {
	return &Connector{tr: tr, pool: newIDPool()}
}

// NewHTTP constructs a Connector over a fresh HTTP transport.
func NewHTTP(url string, credentials auth.Credentials, timeout time.Duration) (*Connector, error) {
	tr, err := transport.NewHTTP(url, credentials, timeout)
	if err != nil {
		return nil, err
	}
	return New(tr), nil
}

// NewWebSocket constructs a Connector over a fresh WebSocket transport.
func NewWebSocket(url string, credentials auth.Credentials) (*Connector, error) {
	tr, err := transport.NewWebSocket(url, credentials)
	if err != nil {
		return nil, err
	}
	return New(tr), nil
}

// NewUDS constructs a Connector over a fresh Unix Domain Socket transport.
func NewUDS(path string) (*Connector, error) {
	tr, err := transport.NewUDS(path)
	if err != nil {
		return nil, err
	}
	return New(tr), nil
}

// Close tears down the underlying transport. It does not affect any
// Subscription forked from this connector, since a Subscription owns an
// entirely independent transport.
func (c *Connector) Close() error {
	return c.tr.Close()
}

// Kind reports which concrete transport this Connector was built over, if
// the transport implements transport.Identifiable (all three built-in
// transports do). ok is false for a Transport that doesn't report a kind.
func (c *Connector) Kind() (kind transport.Kind, ok bool) {
	identifiable, ok := c.tr.(transport.Identifiable)
	if !ok {
		return "", false
	}
	return identifiable.Kind(), true
}

// Call dispatches rpc and decodes its result as T:
//  1. acquire an id from the pool (PoolExhaustedError if none free)
//  2. encode the envelope with that id
//  3. invoke the transport's blocking Request
//  4. release the id back to the pool (success or RPC-error both release it)
//  5. parse the reply: result -> T, error -> *RPCError, shape mismatch -> *jsonrpc.ParseError
func Call[T any](c *Connector, rpc *jsonrpc.Request) (T, error) {
	var zero T

	id, err := c.pool.acquire()
	if err != nil {
		return zero, err
	}

	encoded, err := rpc.Encode(id)
	if err != nil {
		return zero, err
	}

	reply, err := c.tr.Request(encoded)
	if err != nil {
		// The id was never matched to a reply; it is lost from the pool
		// for the remainder of this connector's life. Only a successful
		// round trip — whether it carries a result or an RPC-level error —
		// returns the id; a transport failure is neither.
		return zero, err
	}
	c.pool.release(id)

	replyID, result, rpcErr, err := jsonrpc.ParseResponse[T](reply)
	if err != nil {
		return zero, err
	}
	if replyID != id {
		return zero, &WrongIDError{Want: id, Got: replyID}
	}
	if rpcErr != nil {
		return zero, rpcErrorFrom(rpcErr)
	}
	return result, nil
}
