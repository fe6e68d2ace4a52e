package catalog

import "github.com/dmagro/ethrpc/jsonrpc"

// TxPoolStatus builds txpool_status. Call with
// connector.Call[ethtypes.TxPoolStatus].
func TxPoolStatus() *jsonrpc.Request { return jsonrpc.New("txpool_status") }

// TxPoolContent builds txpool_content. Call with
// connector.Call[ethtypes.TxPoolContent].
func TxPoolContent() *jsonrpc.Request { return jsonrpc.New("txpool_content") }

// TxPoolInspect builds txpool_inspect. Call with
// connector.Call[ethtypes.TxPoolInspect].
func TxPoolInspect() *jsonrpc.Request { return jsonrpc.New("txpool_inspect") }
