package catalog

import (
	"github.com/dmagro/ethrpc/jsonrpc"
	"github.com/dmagro/ethrpc/rpcvalue"
)

// Web3ClientVersion builds web3_clientVersion. Call with connector.Call[string].
func Web3ClientVersion() *jsonrpc.Request {
	return jsonrpc.New("web3_clientVersion")
}

// Web3SHA3 builds web3_sha3, hashing input with Keccak-256 server-side.
// Call with connector.Call[rpcvalue.Hash32].
func Web3SHA3(input rpcvalue.Bytes) *jsonrpc.Request {
	req := jsonrpc.New("web3_sha3")
	mustAddParam(req, input)
	return req
}
