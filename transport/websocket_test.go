package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmagro/ethrpc/internal/auth"
)

// echoWSServer upgrades every connection and echoes text frames back,
// sending an irrelevant pong control frame before each echo to exercise
// the "skip non-text frames" contract.
func echoWSServer(t *testing.T, wantAuth string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantAuth != "" && r.Header.Get("Authorization") != wantAuth {
			t.Errorf("missing or wrong Authorization header: %q", r.Header.Get("Authorization"))
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if msgType != websocket.TextMessage {
				continue
			}
			_ = conn.WriteMessage(websocket.PongMessage, nil)
			_ = conn.WriteMessage(websocket.TextMessage, data)
		}
	}))
}

func toWSURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func TestWSTransportRequestRoundTrip(t *testing.T) {
	srv := echoWSServer(t, "Bearer tok123")
	defer srv.Close()

	tr, err := NewWebSocket(toWSURL(srv.URL), auth.NewBearer("tok123"))
	if err != nil {
		t.Fatalf("NewWebSocket: %v", err)
	}
	defer tr.Close()

	reply, err := tr.Request([]byte(`"ping"`))
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if string(reply) != `"ping"` {
		t.Fatalf("got %s", reply)
	}
}

func TestWSTransportFork(t *testing.T) {
	srv := echoWSServer(t, "")
	defer srv.Close()

	tr, err := NewWebSocket(toWSURL(srv.URL), auth.Credentials{})
	if err != nil {
		t.Fatalf("NewWebSocket: %v", err)
	}
	defer tr.Close()

	forked, err := tr.Fork()
	if err != nil {
		t.Fatalf("Fork: %v", err)
	}
	defer forked.Close()

	reply, err := forked.Request([]byte(`"forked"`))
	if err != nil {
		t.Fatalf("forked Request: %v", err)
	}
	if string(reply) != `"forked"` {
		t.Fatalf("got %s", reply)
	}

	// Parent transport is unaffected by the fork.
	reply, err = tr.Request([]byte(`"parent"`))
	if err != nil {
		t.Fatalf("parent Request after fork: %v", err)
	}
	if string(reply) != `"parent"` {
		t.Fatalf("got %s", reply)
	}
}

func TestWSTransportClosedReturnsErrClosed(t *testing.T) {
	srv := echoWSServer(t, "")
	defer srv.Close()

	tr, err := NewWebSocket(toWSURL(srv.URL), auth.Credentials{})
	if err != nil {
		t.Fatalf("NewWebSocket: %v", err)
	}
	tr.Close()

	if _, err := tr.Request([]byte(`"x"`)); err != ErrClosed {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}

func TestWSTransportReadNext(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		time.Sleep(10 * time.Millisecond)
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"method":"eth_subscription"}`))
	}))
	defer srv.Close()

	tr, err := NewWebSocket(toWSURL(srv.URL), auth.Credentials{})
	if err != nil {
		t.Fatalf("NewWebSocket: %v", err)
	}
	defer tr.Close()

	msg, err := tr.ReadNext()
	if err != nil {
		t.Fatalf("ReadNext: %v", err)
	}
	if string(msg) != `{"method":"eth_subscription"}` {
		t.Fatalf("got %s", msg)
	}
}
