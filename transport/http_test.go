package transport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmagro/ethrpc/internal/auth"
)

func TestHTTPTransportRequestRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("missing Content-Type header")
		}
		if r.Header.Get("Authorization") != "Bearer tok123" {
			t.Errorf("missing or wrong Authorization header: %q", r.Header.Get("Authorization"))
		}
		body, _ := io.ReadAll(r.Body)
		w.Write(append([]byte(`{"echo":`), append(body, '}')...))
	}))
	defer srv.Close()

	tr, err := NewHTTP(srv.URL, auth.NewBearer("tok123"), 5*time.Second)
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}
	defer tr.Close()

	reply, err := tr.Request([]byte(`"ping"`))
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if string(reply) != `{"echo":"ping"}` {
		t.Fatalf("got %s", reply)
	}
}

// S6 stand-in: the same RPC issued twice over an HTTP connector yields two
// valid, independent responses (invariant 6).
func TestHTTPTransportStatelessIndependence(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`"ok"`))
	}))
	defer srv.Close()

	tr, err := NewHTTP(srv.URL, auth.Credentials{}, time.Second)
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}
	defer tr.Close()

	for i := 0; i < 2; i++ {
		reply, err := tr.Request([]byte(`"ping"`))
		if err != nil {
			t.Fatalf("Request %d: %v", i, err)
		}
		if string(reply) != `"ok"` {
			t.Fatalf("Request %d: got %s", i, reply)
		}
	}
	if calls != 2 {
		t.Fatalf("got %d calls, want 2", calls)
	}
}

func TestHTTPTransportNon2xxIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	tr, err := NewHTTP(srv.URL, auth.Credentials{}, time.Second)
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}
	defer tr.Close()

	if _, err := tr.Request([]byte(`"ping"`)); err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
}

func TestHTTPTransportClosedReturnsErrClosed(t *testing.T) {
	tr, err := NewHTTP("http://127.0.0.1:0", auth.Credentials{}, time.Second)
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}
	tr.Close()
	if _, err := tr.Request([]byte("x")); err != ErrClosed {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}
