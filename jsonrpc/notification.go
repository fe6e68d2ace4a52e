package jsonrpc

import "encoding/json"

// notificationMethod is the fixed method name a subscription notification
// carries.
const notificationMethod = "eth_subscription"

// notificationParams is the "params" object of a subscription notification:
// { "subscription": <id>, "result": <payload> }.
type notificationParams struct {
	Subscription json.RawMessage `json:"subscription"`
	Result       json.RawMessage `json:"result"`
}

type wireNotification struct {
	JSONRPC string             `json:"jsonrpc"`
	Method  string             `json:"method"`
	Params  notificationParams `json:"params"`
}

// IsNotification reports whether data looks like a subscription
// notification frame rather than a call response (no top-level "id",
// method == "eth_subscription").
func IsNotification(data []byte) bool {
	var probe struct {
		Method string `json:"method"`
		ID     *uint32 `json:"id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Method == notificationMethod && probe.ID == nil
}

// ParseNotification decodes a subscription notification, returning the raw
// subscription id bytes (still hex-quoted JSON) and the raw result payload
// for the caller to decode into its expected type.
func ParseNotification(data []byte) (subscriptionID json.RawMessage, result json.RawMessage, err error) {
	var w wireNotification
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, nil, &ParseError{Err: err}
	}
	return w.Params.Subscription, w.Params.Result, nil
}

// EncodeNotification serializes a subscription notification — used by
// tests and fake transports.
func EncodeNotification(subscriptionID, result any) ([]byte, error) {
	sub, err := json.Marshal(subscriptionID)
	if err != nil {
		return nil, err
	}
	res, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireNotification{
		JSONRPC: Version,
		Method:  notificationMethod,
		Params:  notificationParams{Subscription: sub, Result: res},
	})
}
