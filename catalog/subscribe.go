package catalog

import (
	"github.com/dmagro/ethrpc/ethtypes"
	"github.com/dmagro/ethrpc/jsonrpc"
)

// EthSubscribeNewHeads builds eth_subscribe("newHeads"): a notification
// each time a new block header is appended to the canonical chain. Open
// with connector.Subscribe[ethtypes.BlockHeader].
func EthSubscribeNewHeads() *jsonrpc.Request {
	req := jsonrpc.New("eth_subscribe")
	mustAddParam(req, "newHeads")
	return req
}

// EthSubscribeNewPendingTransactions builds
// eth_subscribe("newPendingTransactions"): a notification carrying each
// new pending transaction's hash. Open with
// connector.Subscribe[rpcvalue.Hash32].
func EthSubscribeNewPendingTransactions() *jsonrpc.Request {
	req := jsonrpc.New("eth_subscribe")
	mustAddParam(req, "newPendingTransactions")
	return req
}

// EthSubscribeLogs builds eth_subscribe("logs", filter): a notification
// for every log entry matching filter. Open with
// connector.Subscribe[ethtypes.Log].
func EthSubscribeLogs(filter ethtypes.Filter) *jsonrpc.Request {
	req := jsonrpc.New("eth_subscribe")
	mustAddParam(req, "logs")
	mustAddParam(req, filter)
	return req
}

// EthSubscribeSyncing builds eth_subscribe("syncing"): a notification
// whenever the node's sync status changes. Open with
// connector.Subscribe[rpcvalue.SyncStatus].
func EthSubscribeSyncing() *jsonrpc.Request {
	req := jsonrpc.New("eth_subscribe")
	mustAddParam(req, "syncing")
	return req
}
