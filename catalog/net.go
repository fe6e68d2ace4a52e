// Package catalog builds the JSON-RPC requests for every method this
// library supports, grouped by namespace. Each constructor returns a
// *jsonrpc.Request ready to pass to connector.Call[T] (or
// connector.Subscribe[T] for the eth_subscribe variants); its doc comment
// names the T the caller should instantiate.
package catalog

import "github.com/dmagro/ethrpc/jsonrpc"

// NetVersion builds net_version. Call with connector.Call[string].
func NetVersion() *jsonrpc.Request {
	return jsonrpc.New("net_version")
}

// NetPeerCount builds net_peerCount. Call with connector.Call[rpcvalue.Bytes].
func NetPeerCount() *jsonrpc.Request {
	return jsonrpc.New("net_peerCount")
}

// NetListening builds net_listening. Call with connector.Call[bool].
func NetListening() *jsonrpc.Request {
	return jsonrpc.New("net_listening")
}
