package transport

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/dmagro/ethrpc/internal/auth"
)

// WSTransport is a single full-duplex text-frame stream: a request writes
// a frame then returns the next text frame, without looking at its id
// (connector.Call compares the reply id with the in-flight id); ReadNext
// returns the next text frame without writing. Request, ReadNext and Close
// are serialized by a mutex, but nothing routes frames between callers:
// each subscription gets its own forked transport so that every stream has
// a single consumer.
type WSTransport struct {
	url         string
	credentials auth.Credentials

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// NewWebSocket dials url (an HTTP upgrade handshake), attaching an
// Authorization header when credentials are configured.
func NewWebSocket(url string, credentials auth.Credentials) (*WSTransport, error) {
	header := http.Header{}
	if h := credentials.Header(); h != "" {
		header.Set("Authorization", h)
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		return nil, &InitError{Kind: KindWebSocket, Err: err}
	}
	return &WSTransport{url: url, credentials: credentials, conn: conn}, nil
}

func (t *WSTransport) Kind() Kind { return KindWebSocket }

// Request writes cmd as a text frame, then reads frames until it receives
// one worth returning to the caller. Non-text frames (ping/pong/binary)
// are silently skipped — they are not a protocol error.
func (t *WSTransport) Request(cmd []byte) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, ErrClosed
	}
	if err := t.conn.WriteMessage(websocket.TextMessage, cmd); err != nil {
		return nil, &OpError{Kind: KindWebSocket, Op: "write", Err: err}
	}
	return t.readTextFrame()
}

// ReadNext blocks for the next text frame, skipping non-text frames.
func (t *WSTransport) ReadNext() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, ErrClosed
	}
	return t.readTextFrame()
}

// readTextFrame loops past non-text frames. Caller holds t.mu.
func (t *WSTransport) readTextFrame() ([]byte, error) {
	for {
		msgType, data, err := t.conn.ReadMessage()
		if err != nil {
			return nil, &OpError{Kind: KindWebSocket, Op: "read", Err: err}
		}
		if msgType != websocket.TextMessage {
			continue
		}
		return data, nil
	}
}

// Fork opens an independent WebSocket connection to the same endpoint with
// the same credentials, for subscription isolation.
func (t *WSTransport) Fork() (Transport, error) {
	return NewWebSocket(t.url, t.credentials)
}

// Close sends a CLOSE frame with code Normal, then closes the underlying
// connection. Safe to call more than once.
func (t *WSTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	deadline := time.Now().Add(time.Second)
	_ = t.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	if err := t.conn.Close(); err != nil {
		return errors.Wrap(err, "transport: websocket close")
	}
	return nil
}
