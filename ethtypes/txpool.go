package ethtypes

import "github.com/dmagro/ethrpc/rpcvalue"

// TxPoolStatus is the result of txpool_status: the pending and queued
// transaction counts as hex-encoded integers.
type TxPoolStatus struct {
	Pending rpcvalue.Bytes `json:"pending"`
	Queued  rpcvalue.Bytes `json:"queued"`
}

// txsByNonce maps a transaction's decimal nonce string to either its full
// details (txpool_content) or a one-line summary (txpool_inspect).
type txsByNonce[T any] map[string]T

// accountBuckets maps a sender address to its pending/queued transactions,
// keyed by nonce.
type accountBuckets[T any] map[rpcvalue.Address]txsByNonce[T]

// TxPoolContent is the result of txpool_content: every pending and queued
// transaction, grouped by sender and nonce.
type TxPoolContent struct {
	Pending accountBuckets[Transaction] `json:"pending"`
	Queued  accountBuckets[Transaction] `json:"queued"`
}

// TxPoolInspect is the result of txpool_inspect: a human-readable
// one-line summary per transaction instead of the full object.
type TxPoolInspect struct {
	Pending accountBuckets[string] `json:"pending"`
	Queued  accountBuckets[string] `json:"queued"`
}
