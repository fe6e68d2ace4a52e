package transport

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/dmagro/ethrpc/internal/auth"
)

// HTTPTransport is a stateless, request-only transport: every call opens
// (or reuses, via the keep-alive-capable *http.Client) a connection, POSTs
// the request body, and returns the full response body as the reply.
//
// HTTP is never Subscribable — it has no notion of a server-initiated
// message, so it does not implement ReadNext/Fork.
type HTTPTransport struct {
	url         string
	credentials auth.Credentials
	client      *http.Client
	closed      bool
}

// NewHTTP constructs an HTTP transport against endpoint url. credentials
// may be the zero value (auth.Credentials{}) to send no Authorization
// header.
func NewHTTP(url string, credentials auth.Credentials, timeout time.Duration) (*HTTPTransport, error) {
	if url == "" {
		return nil, &InitError{Kind: KindHTTP, Err: errors.New("empty endpoint URL")}
	}
	return &HTTPTransport{
		url:         url,
		credentials: credentials,
		client:      &http.Client{Timeout: timeout},
	}, nil
}

func (t *HTTPTransport) Kind() Kind { return KindHTTP }

// Request performs a single POST with Content-Type/Accept set to
// application/json, and an Authorization header when credentials are
// configured. A non-2xx status is a transport error; the JSON-RPC layer
// above never sees the HTTP status line.
func (t *HTTPTransport) Request(cmd []byte) ([]byte, error) {
	if t.closed {
		return nil, ErrClosed
	}
	req, err := http.NewRequest(http.MethodPost, t.url, bytes.NewReader(cmd))
	if err != nil {
		return nil, &OpError{Kind: KindHTTP, Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if header := t.credentials.Header(); header != "" {
		req.Header.Set("Authorization", header)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &OpError{Kind: KindHTTP, Op: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &OpError{Kind: KindHTTP, Op: "read body", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &OpError{Kind: KindHTTP, Op: "request", Err: errors.Errorf("HTTP status %d", resp.StatusCode)}
	}
	return body, nil
}

// Close releases the underlying HTTP client's idle connections. Safe to
// call more than once.
func (t *HTTPTransport) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.client.CloseIdleConnections()
	return nil
}
