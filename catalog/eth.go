package catalog

import (
	"github.com/dmagro/ethrpc/ethtypes"
	"github.com/dmagro/ethrpc/jsonrpc"
	"github.com/dmagro/ethrpc/rpcvalue"
)

// EthProtocolVersion builds eth_protocolVersion. Call with connector.Call[string].
func EthProtocolVersion() *jsonrpc.Request { return jsonrpc.New("eth_protocolVersion") }

// EthSyncing builds eth_syncing. Call with connector.Call[rpcvalue.SyncStatus].
func EthSyncing() *jsonrpc.Request { return jsonrpc.New("eth_syncing") }

// EthCoinbase builds eth_coinbase. Call with connector.Call[rpcvalue.Address].
func EthCoinbase() *jsonrpc.Request { return jsonrpc.New("eth_coinbase") }

// EthMining builds eth_mining. Call with connector.Call[bool].
func EthMining() *jsonrpc.Request { return jsonrpc.New("eth_mining") }

// EthHashrate builds eth_hashrate. Call with connector.Call[rpcvalue.Bytes].
func EthHashrate() *jsonrpc.Request { return jsonrpc.New("eth_hashrate") }

// EthGasPrice builds eth_gasPrice. Call with connector.Call[rpcvalue.Bytes].
func EthGasPrice() *jsonrpc.Request { return jsonrpc.New("eth_gasPrice") }

// EthAccounts builds eth_accounts. Call with connector.Call[[]rpcvalue.Address].
func EthAccounts() *jsonrpc.Request { return jsonrpc.New("eth_accounts") }

// EthBlockNumber builds eth_blockNumber. Call with connector.Call[rpcvalue.Bytes].
func EthBlockNumber() *jsonrpc.Request { return jsonrpc.New("eth_blockNumber") }

// EthGetBalance builds eth_getBalance. Call with connector.Call[rpcvalue.Bytes].
func EthGetBalance(address rpcvalue.Address, block rpcvalue.BlockParameter) *jsonrpc.Request {
	req := jsonrpc.New("eth_getBalance")
	mustAddParam(req, address)
	mustAddParam(req, block)
	return req
}

// EthGetStorageAt builds eth_getStorageAt. Call with connector.Call[rpcvalue.Bytes].
func EthGetStorageAt(address rpcvalue.Address, position rpcvalue.Bytes, block rpcvalue.BlockParameter) *jsonrpc.Request {
	req := jsonrpc.New("eth_getStorageAt")
	mustAddParam(req, address)
	mustAddParam(req, position)
	mustAddParam(req, block)
	return req
}

// EthGetTransactionCount builds eth_getTransactionCount. Call with
// connector.Call[rpcvalue.Bytes].
func EthGetTransactionCount(address rpcvalue.Address, block rpcvalue.BlockParameter) *jsonrpc.Request {
	req := jsonrpc.New("eth_getTransactionCount")
	mustAddParam(req, address)
	mustAddParam(req, block)
	return req
}

// EthGetCode builds eth_getCode. Call with connector.Call[rpcvalue.Bytes].
func EthGetCode(address rpcvalue.Address, block rpcvalue.BlockParameter) *jsonrpc.Request {
	req := jsonrpc.New("eth_getCode")
	mustAddParam(req, address)
	mustAddParam(req, block)
	return req
}

// EthSign builds eth_sign. Call with connector.Call[rpcvalue.Bytes].
func EthSign(address rpcvalue.Address, data rpcvalue.Bytes) *jsonrpc.Request {
	req := jsonrpc.New("eth_sign")
	mustAddParam(req, address)
	mustAddParam(req, data)
	return req
}

// EthSendTransaction builds eth_sendTransaction. Call with
// connector.Call[rpcvalue.Hash32].
func EthSendTransaction(tx ethtypes.TransactionRequest) *jsonrpc.Request {
	req := jsonrpc.New("eth_sendTransaction")
	mustAddParam(req, tx)
	return req
}

// EthSendRawTransaction builds eth_sendRawTransaction. Call with
// connector.Call[rpcvalue.Hash32].
func EthSendRawTransaction(signed rpcvalue.Bytes) *jsonrpc.Request {
	req := jsonrpc.New("eth_sendRawTransaction")
	mustAddParam(req, signed)
	return req
}

// EthCall builds eth_call, a gas-free read-only execution. Call with
// connector.Call[rpcvalue.Bytes].
func EthCall(tx ethtypes.TransactionRequest, block rpcvalue.BlockParameter) *jsonrpc.Request {
	req := jsonrpc.New("eth_call")
	mustAddParam(req, tx)
	mustAddParam(req, block)
	return req
}

// EthEstimateGas builds eth_estimateGas. Call with connector.Call[rpcvalue.Bytes].
func EthEstimateGas(tx ethtypes.TransactionRequest) *jsonrpc.Request {
	req := jsonrpc.New("eth_estimateGas")
	mustAddParam(req, tx)
	return req
}

// EthGetBlockByNumber builds eth_getBlockByNumber. Call with
// connector.Call[*ethtypes.Block] (a null result decodes to a nil pointer).
func EthGetBlockByNumber(block rpcvalue.BlockParameter, fullTransactions bool) *jsonrpc.Request {
	req := jsonrpc.New("eth_getBlockByNumber")
	mustAddParam(req, block)
	mustAddParam(req, fullTransactions)
	return req
}

// EthGetBlockByHash builds eth_getBlockByHash. Call with
// connector.Call[*ethtypes.Block].
func EthGetBlockByHash(hash rpcvalue.Hash32, fullTransactions bool) *jsonrpc.Request {
	req := jsonrpc.New("eth_getBlockByHash")
	mustAddParam(req, hash)
	mustAddParam(req, fullTransactions)
	return req
}

// EthGetTransactionByHash builds eth_getTransactionByHash. Call with
// connector.Call[*ethtypes.Transaction].
func EthGetTransactionByHash(hash rpcvalue.Hash32) *jsonrpc.Request {
	req := jsonrpc.New("eth_getTransactionByHash")
	mustAddParam(req, hash)
	return req
}

// EthGetTransactionReceipt builds eth_getTransactionReceipt. Call with
// connector.Call[*ethtypes.TransactionReceipt].
func EthGetTransactionReceipt(hash rpcvalue.Hash32) *jsonrpc.Request {
	req := jsonrpc.New("eth_getTransactionReceipt")
	mustAddParam(req, hash)
	return req
}

// EthGetBlockTransactionCountByHash builds eth_getBlockTransactionCountByHash.
// Call with connector.Call[rpcvalue.Bytes].
func EthGetBlockTransactionCountByHash(hash rpcvalue.Hash32) *jsonrpc.Request {
	req := jsonrpc.New("eth_getBlockTransactionCountByHash")
	mustAddParam(req, hash)
	return req
}

// EthGetUncleCountByBlockHash builds eth_getUncleCountByBlockHash. Call
// with connector.Call[rpcvalue.Bytes].
func EthGetUncleCountByBlockHash(hash rpcvalue.Hash32) *jsonrpc.Request {
	req := jsonrpc.New("eth_getUncleCountByBlockHash")
	mustAddParam(req, hash)
	return req
}

// EthNewFilter builds eth_newFilter. Call with connector.Call[rpcvalue.Bytes]
// (the filter id).
func EthNewFilter(filter ethtypes.Filter) *jsonrpc.Request {
	req := jsonrpc.New("eth_newFilter")
	mustAddParam(req, filter)
	return req
}

// EthNewBlockFilter builds eth_newBlockFilter. Call with
// connector.Call[rpcvalue.Bytes].
func EthNewBlockFilter() *jsonrpc.Request { return jsonrpc.New("eth_newBlockFilter") }

// EthNewPendingTransactionFilter builds eth_newPendingTransactionFilter.
// Call with connector.Call[rpcvalue.Bytes].
func EthNewPendingTransactionFilter() *jsonrpc.Request {
	return jsonrpc.New("eth_newPendingTransactionFilter")
}

// EthUninstallFilter builds eth_uninstallFilter. Call with
// connector.Call[bool].
func EthUninstallFilter(filterID rpcvalue.Bytes) *jsonrpc.Request {
	req := jsonrpc.New("eth_uninstallFilter")
	mustAddParam(req, filterID)
	return req
}

// EthGetFilterChanges builds eth_getFilterChanges. Call with
// connector.Call[[]rpcvalue.FilterLogEntry].
func EthGetFilterChanges(filterID rpcvalue.Bytes) *jsonrpc.Request {
	req := jsonrpc.New("eth_getFilterChanges")
	mustAddParam(req, filterID)
	return req
}

// EthGetFilterLogs builds eth_getFilterLogs. Call with
// connector.Call[[]ethtypes.Log].
func EthGetFilterLogs(filterID rpcvalue.Bytes) *jsonrpc.Request {
	req := jsonrpc.New("eth_getFilterLogs")
	mustAddParam(req, filterID)
	return req
}

// EthGetLogs builds eth_getLogs. Call with connector.Call[[]ethtypes.Log].
func EthGetLogs(filter ethtypes.LogFilter) *jsonrpc.Request {
	req := jsonrpc.New("eth_getLogs")
	mustAddParam(req, filter)
	return req
}
