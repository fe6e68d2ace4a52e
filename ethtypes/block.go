package ethtypes

import "github.com/dmagro/ethrpc/rpcvalue"

// BlockHeader is the payload of an eth_subscribe("newHeads") notification:
// a block's header fields without its transaction list.
type BlockHeader struct {
	Number           rpcvalue.Bytes  `json:"number"`
	Hash             rpcvalue.Hash32 `json:"hash"`
	ParentHash       rpcvalue.Hash32 `json:"parentHash"`
	Nonce            rpcvalue.Bytes  `json:"nonce"`
	SHA3Uncles       rpcvalue.Hash32 `json:"sha3Uncles"`
	LogsBloom        rpcvalue.Bytes  `json:"logsBloom"`
	TransactionsRoot rpcvalue.Hash32 `json:"transactionsRoot"`
	StateRoot        rpcvalue.Hash32 `json:"stateRoot"`
	ReceiptsRoot     rpcvalue.Hash32 `json:"receiptsRoot"`
	Miner            rpcvalue.Address `json:"miner"`
	Difficulty       rpcvalue.Bytes  `json:"difficulty"`
	ExtraData        rpcvalue.Bytes  `json:"extraData"`
	GasLimit         rpcvalue.Bytes  `json:"gasLimit"`
	GasUsed          rpcvalue.Bytes  `json:"gasUsed"`
	Timestamp        rpcvalue.Bytes  `json:"timestamp"`
}

// Block is the result of eth_getBlockByNumber/eth_getBlockByHash. Its
// transaction list holds either hashes or full transaction objects
// depending on the full-transactions flag passed at call time;
// rpcvalue.TransactionOrHash discriminates the two on decode.
type Block struct {
	BlockHeader
	Size         rpcvalue.Bytes               `json:"size"`
	TotalDifficulty rpcvalue.Bytes            `json:"totalDifficulty"`
	Uncles       []rpcvalue.Hash32            `json:"uncles"`
	Transactions []rpcvalue.TransactionOrHash `json:"transactions"`
}

// Filter is the input object for eth_newFilter and eth_subscribe("logs", ...).
type Filter struct {
	FromBlock *rpcvalue.BlockParameter `json:"fromBlock,omitempty"`
	ToBlock   *rpcvalue.BlockParameter `json:"toBlock,omitempty"`
	Address   *rpcvalue.Address        `json:"address,omitempty"`
	Topics    rpcvalue.Topics          `json:"topics,omitempty"`
}

// LogFilter additionally pins a filter to one block, as used by
// eth_getLogs when querying a single historical block.
type LogFilter struct {
	Filter
	BlockHash *rpcvalue.Hash32 `json:"blockHash,omitempty"`
}
