// Package transport defines the byte-channel abstraction the connector
// multiplexes over, and provides three concrete implementations: HTTP
// (request-only), WebSocket, and Unix Domain Socket (both request +
// subscribable).
package transport

import (
	"errors"
	"fmt"
	"io"
)

// Kind distinguishes which of the three concrete transports an instance is.
// It is reported through Identifiable (and connector.Connector.Kind) and
// carried by InitError and OpError; whether a transport can fork is decided
// by the Subscribable interface, not by Kind.
type Kind string

const (
	KindHTTP      Kind = "http"
	KindWebSocket Kind = "websocket"
	KindUnix      Kind = "unix"
)

// Requester is the minimal capability every transport provides: a
// synchronous, blocking request that returns exactly one reply.
type Requester interface {
	// Request sends cmd and blocks for exactly one reply. It does not
	// retry and does not interpret cmd or the reply as JSON-RPC — that is
	// the jsonrpc/connector packages' job.
	Request(cmd []byte) ([]byte, error)
}

// Subscribable is implemented by transports that can additionally serve a
// long-lived notification stream: reading the next framed message without
// sending one, and forking an independently-configured sibling instance.
type Subscribable interface {
	// ReadNext blocks for the next framed message on the stream.
	ReadNext() ([]byte, error)
	// Fork creates a new, independent transport instance configured
	// identically to the receiver (same endpoint, same credentials).
	Fork() (Transport, error)
}

// Transport is a Requester that owns a closeable resource (an HTTP agent,
// a socket, a connection). Every transport, including the otherwise
// stateless HTTP one, implements Close so the connector has one teardown
// path regardless of transport kind.
type Transport interface {
	Requester
	io.Closer
}

// Identifiable is implemented by every built-in transport. connector.Connector
// type-asserts to it in Kind() so callers that dialed an Endpoint generically
// can still report which wire transport they ended up with, without holding
// a reference to the concrete *HTTPTransport/*WSTransport/*UDSTransport.
type Identifiable interface {
	Kind() Kind
}

// Sentinel errors, for conditions callers can test with errors.Is.
// Construction and I/O failures with other causes arrive as *InitError or
// *OpError wrapping the underlying error.
var (
	// ErrClosed is returned by Request and ReadNext on a transport whose
	// Close has already run.
	ErrClosed = errors.New("transport: closed")
	// ErrNonText is returned when a stream transport receives a frame
	// that cannot be interpreted as a UTF-8 text message where one was
	// required (e.g., UDS framing over non-UTF-8 bytes).
	ErrNonText = errors.New("transport: non-text frame")
	// ErrUnsupported is returned by constructors for transports unavailable
	// on the current build target (UDS on non-POSIX hosts).
	ErrUnsupported = errors.New("transport: unsupported on this platform")
)

// InitError wraps a failure to construct a transport (bad URL, DNS,
// handshake, socket missing).
type InitError struct {
	Kind Kind
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("transport: %s init: %v", e.Kind, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// OpError wraps an I/O failure during an already-initialized transport's
// Request/ReadNext.
type OpError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }
