package connector

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/dmagro/ethrpc/jsonrpc"
	"github.com/dmagro/ethrpc/transport"
)

// Subscription is a live eth_subscribe stream. It owns a Connector built
// on a forked transport, entirely independent from the Connector that
// created it: the parent can keep calling or be closed without affecting
// the subscription, and vice versa.
//
// A Subscription is used strictly sequentially, like the Connector it
// wraps: call Next to pull the next notification, and Close exactly once
// when done.
type Subscription[T any] struct {
	id   json.RawMessage
	conn *Connector
}

// Subscribe forks c's transport, builds a new Connector on the fork, and
// dispatches subscribeRPC over it. The subscription's id comes back as the
// call's hex string result; T is the notification payload type that Next
// decodes, not the type of that id.
//
// Subscribe fails with transport.ErrUnsupported if c's transport does not
// implement transport.Subscribable — HTTP, for instance.
func Subscribe[T any](c *Connector, subscribeRPC *jsonrpc.Request) (*Subscription[T], error) {
	subscribable, ok := c.tr.(transport.Subscribable)
	if !ok {
		return nil, transport.ErrUnsupported
	}

	forked, err := subscribable.Fork()
	if err != nil {
		return nil, err
	}

	child := New(forked)
	id, err := Call[string](child, subscribeRPC)
	if err != nil {
		_ = child.Close()
		return nil, err
	}

	encodedID, err := json.Marshal(id)
	if err != nil {
		_ = child.Close()
		return nil, err
	}

	return &Subscription[T]{id: encodedID, conn: child}, nil
}

// Next blocks for the next notification on the stream and decodes its
// result payload as T. It does not verify that the notification's
// subscription id matches this Subscription's id, since the forked
// transport carries exactly one subscription and nothing else arrives on
// it.
func (s *Subscription[T]) Next() (T, error) {
	var zero T

	subscribable := s.conn.tr.(transport.Subscribable)
	frame, err := subscribable.ReadNext()
	if err != nil {
		return zero, err
	}

	_, result, err := jsonrpc.ParseNotification(frame)
	if err != nil {
		return zero, err
	}

	var decoded T
	if err := json.Unmarshal(result, &decoded); err != nil {
		return zero, err
	}
	return decoded, nil
}

// Close unsubscribes and tears down the forked transport. A failed
// eth_unsubscribe call is logged and does not prevent the transport from
// closing — there is no way to retry it once the caller has moved on, and
// the server will eventually reap the subscription when the connection
// drops.
func (s *Subscription[T]) Close() error {
	unsub := jsonrpc.New("eth_unsubscribe")
	if err := unsub.AddParam(s.id); err != nil {
		logrus.WithError(err).Warn("connector: failed to build eth_unsubscribe request")
	} else if _, err := Call[bool](s.conn, unsub); err != nil {
		logrus.WithError(err).WithField("subscription_id", string(s.id)).
			Warn("connector: eth_unsubscribe failed, closing transport anyway")
	}
	return s.conn.Close()
}
