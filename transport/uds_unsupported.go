//go:build !unix

package transport

// NewUDS always fails on non-POSIX build targets: Unix Domain Sockets are
// a POSIX-only transport.
func NewUDS(path string) (*UDSTransport, error) {
	return nil, &InitError{Kind: KindUnix, Err: ErrUnsupported}
}

// UDSTransport is an unusable stand-in on non-Unix build targets so the
// type remains referenceable from platform-independent code (config
// loading, tests gated behind runtime checks).
type UDSTransport struct{}

func (t *UDSTransport) Kind() Kind                         { return KindUnix }
func (t *UDSTransport) Request(cmd []byte) ([]byte, error) { return nil, ErrUnsupported }
func (t *UDSTransport) ReadNext() ([]byte, error)          { return nil, ErrUnsupported }
func (t *UDSTransport) Fork() (Transport, error)           { return nil, ErrUnsupported }
func (t *UDSTransport) Close() error                       { return nil }
