// Package ethtypes holds the composite JSON objects the Ethereum JSON-RPC
// API exchanges — transactions, blocks, receipts, logs, filters, and the
// txpool inspection structures — built from the wire-exact scalars in
// rpcvalue.
package ethtypes

import "github.com/dmagro/ethrpc/rpcvalue"

// TransactionRequest is the input object for eth_sendTransaction and
// personal_sendTransaction. Optional fields are nil pointers so that
// omitted fields are left out of the wire object rather than serialized
// as zero values.
type TransactionRequest struct {
	From     rpcvalue.Address  `json:"from"`
	To       *rpcvalue.Address `json:"to,omitempty"`
	Gas      *rpcvalue.Bytes   `json:"gas,omitempty"`
	GasPrice *rpcvalue.Bytes   `json:"gasPrice,omitempty"`
	Value    *rpcvalue.Bytes   `json:"value,omitempty"`
	Data     *rpcvalue.Bytes   `json:"data,omitempty"`
	Nonce    *rpcvalue.Bytes   `json:"nonce,omitempty"`
}

// Transaction is a mined or pending transaction as returned by
// eth_getTransactionByHash and embedded in a full Block.
type Transaction struct {
	BlockHash        *rpcvalue.Hash32  `json:"blockHash"`
	BlockNumber      *rpcvalue.Bytes   `json:"blockNumber"`
	From             rpcvalue.Address  `json:"from"`
	Gas              rpcvalue.Bytes    `json:"gas"`
	GasPrice         rpcvalue.Bytes    `json:"gasPrice"`
	Hash             rpcvalue.Hash32   `json:"hash"`
	Input            rpcvalue.Bytes    `json:"input"`
	Nonce            rpcvalue.Bytes    `json:"nonce"`
	To               *rpcvalue.Address `json:"to"`
	TransactionIndex *rpcvalue.Bytes   `json:"transactionIndex"`
	Value            rpcvalue.Bytes    `json:"value"`
	V                rpcvalue.Bytes    `json:"v"`
	R                rpcvalue.Bytes    `json:"r"`
	S                rpcvalue.Bytes    `json:"s"`
}

// TransactionReceipt is the result of eth_getTransactionReceipt.
type TransactionReceipt struct {
	TransactionHash   rpcvalue.Hash32   `json:"transactionHash"`
	TransactionIndex  rpcvalue.Bytes    `json:"transactionIndex"`
	BlockHash         rpcvalue.Hash32   `json:"blockHash"`
	BlockNumber       rpcvalue.Bytes    `json:"blockNumber"`
	From              rpcvalue.Address  `json:"from"`
	To                *rpcvalue.Address `json:"to"`
	CumulativeGasUsed rpcvalue.Bytes    `json:"cumulativeGasUsed"`
	GasUsed           rpcvalue.Bytes    `json:"gasUsed"`
	ContractAddress   *rpcvalue.Address `json:"contractAddress"`
	Logs              []Log             `json:"logs"`
	LogsBloom         rpcvalue.Bytes    `json:"logsBloom"`
	Status            rpcvalue.Bytes    `json:"status"`
}

// Log is a single event log entry, embedded in a receipt or returned by
// eth_getLogs/eth_getFilterLogs/eth_getFilterChanges.
type Log struct {
	Address          rpcvalue.Address `json:"address"`
	Topics           []rpcvalue.Hash32 `json:"topics"`
	Data             rpcvalue.Bytes    `json:"data"`
	BlockHash        *rpcvalue.Hash32  `json:"blockHash"`
	BlockNumber      *rpcvalue.Bytes   `json:"blockNumber"`
	TransactionHash  *rpcvalue.Hash32  `json:"transactionHash"`
	TransactionIndex *rpcvalue.Bytes   `json:"transactionIndex"`
	LogIndex         *rpcvalue.Bytes   `json:"logIndex"`
	Removed          bool              `json:"removed"`
}
