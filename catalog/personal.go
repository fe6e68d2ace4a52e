package catalog

import (
	"github.com/dmagro/ethrpc/ethtypes"
	"github.com/dmagro/ethrpc/jsonrpc"
	"github.com/dmagro/ethrpc/rpcvalue"
)

// PersonalImportRawKey builds personal_importRawKey. Call with
// connector.Call[rpcvalue.Address].
func PersonalImportRawKey(key rpcvalue.PrivateKey, password string) *jsonrpc.Request {
	req := jsonrpc.New("personal_importRawKey")
	mustAddParam(req, key)
	mustAddParam(req, password)
	return req
}

// PersonalListAccounts builds personal_listAccounts. Call with
// connector.Call[[]rpcvalue.Address].
func PersonalListAccounts() *jsonrpc.Request { return jsonrpc.New("personal_listAccounts") }

// PersonalUnlockAccount builds personal_unlockAccount. duration is the
// unlock period in seconds; pass nil for the node's default. Call with
// connector.Call[bool].
func PersonalUnlockAccount(address rpcvalue.Address, password string, duration *uint32) *jsonrpc.Request {
	req := jsonrpc.New("personal_unlockAccount")
	mustAddParam(req, address)
	mustAddParam(req, password)
	if duration != nil {
		mustAddParam(req, *duration)
	}
	return req
}

// PersonalLockAccount builds personal_lockAccount. Call with
// connector.Call[bool].
func PersonalLockAccount(address rpcvalue.Address) *jsonrpc.Request {
	req := jsonrpc.New("personal_lockAccount")
	mustAddParam(req, address)
	return req
}

// PersonalNewAccount builds personal_newAccount. Call with
// connector.Call[rpcvalue.Address].
func PersonalNewAccount(password string) *jsonrpc.Request {
	req := jsonrpc.New("personal_newAccount")
	mustAddParam(req, password)
	return req
}

// PersonalSendTransaction builds personal_sendTransaction, which signs
// with the node's unlocked key before sending. Call with
// connector.Call[rpcvalue.Hash32].
func PersonalSendTransaction(tx ethtypes.TransactionRequest, password string) *jsonrpc.Request {
	req := jsonrpc.New("personal_sendTransaction")
	mustAddParam(req, tx)
	mustAddParam(req, password)
	return req
}

// PersonalSign builds personal_sign. Call with connector.Call[rpcvalue.Bytes].
func PersonalSign(message rpcvalue.Bytes, address rpcvalue.Address, password string) *jsonrpc.Request {
	req := jsonrpc.New("personal_sign")
	mustAddParam(req, message)
	mustAddParam(req, address)
	mustAddParam(req, password)
	return req
}

// PersonalECRecover builds personal_ecRecover. Call with
// connector.Call[rpcvalue.Address].
func PersonalECRecover(message, signature rpcvalue.Bytes) *jsonrpc.Request {
	req := jsonrpc.New("personal_ecRecover")
	mustAddParam(req, message)
	mustAddParam(req, signature)
	return req
}
