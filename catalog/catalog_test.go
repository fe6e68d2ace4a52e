package catalog

import (
	"encoding/json"
	"testing"

	"github.com/dmagro/ethrpc/ethtypes"
	"github.com/dmagro/ethrpc/jsonrpc"
	"github.com/dmagro/ethrpc/rpcvalue"
)

func decode(t *testing.T, req *jsonrpc.Request) (string, []json.RawMessage) {
	t.Helper()
	encoded, err := req.Encode(1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	method, params, _, err := jsonrpc.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return method, params
}

func TestNoArgMethodsUseTheirOwnName(t *testing.T) {
	cases := []struct {
		name string
		req  *jsonrpc.Request
		want string
	}{
		{"NetVersion", NetVersion(), "net_version"},
		{"NetPeerCount", NetPeerCount(), "net_peerCount"},
		{"NetListening", NetListening(), "net_listening"},
		{"Web3ClientVersion", Web3ClientVersion(), "web3_clientVersion"},
		{"EthBlockNumber", EthBlockNumber(), "eth_blockNumber"},
		{"EthSyncing", EthSyncing(), "eth_syncing"},
		{"EthAccounts", EthAccounts(), "eth_accounts"},
		{"PersonalListAccounts", PersonalListAccounts(), "personal_listAccounts"},
		{"TxPoolStatus", TxPoolStatus(), "txpool_status"},
		{"TxPoolContent", TxPoolContent(), "txpool_content"},
		{"TxPoolInspect", TxPoolInspect(), "txpool_inspect"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			method, params := decode(t, tc.req)
			if method != tc.want {
				t.Fatalf("got method %q, want %q", method, tc.want)
			}
			if len(params) != 0 {
				t.Fatalf("expected no params, got %d", len(params))
			}
		})
	}
}

func TestEthGetBalanceEncodesAddressAndBlock(t *testing.T) {
	var addr rpcvalue.Address
	addr[19] = 0xff
	method, params := decode(t, EthGetBalance(addr, rpcvalue.DefaultBlockParameter()))
	if method != "eth_getBalance" {
		t.Fatalf("got method %q", method)
	}
	if len(params) != 2 {
		t.Fatalf("got %d params, want 2", len(params))
	}
	if string(params[0]) != `"0x00000000000000000000000000000000000000ff"` {
		t.Fatalf("got address param %s", params[0])
	}
	if string(params[1]) != `"latest"` {
		t.Fatalf("got block param %s", params[1])
	}
}

func TestEthGetBlockByNumberEncodesBoolFlag(t *testing.T) {
	method, params := decode(t, EthGetBlockByNumber(rpcvalue.BlockByNumber(10), true))
	if method != "eth_getBlockByNumber" {
		t.Fatalf("got method %q", method)
	}
	if string(params[0]) != `"0xa"` {
		t.Fatalf("got block param %s", params[0])
	}
	if string(params[1]) != "true" {
		t.Fatalf("got flag param %s", params[1])
	}
}

func TestEthSendTransactionOmitsUnsetOptionalFields(t *testing.T) {
	var addr rpcvalue.Address
	_, params := decode(t, EthSendTransaction(ethtypes.TransactionRequest{From: addr}))
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(params[0], &decoded); err != nil {
		t.Fatalf("unmarshal tx param: %v", err)
	}
	for _, field := range []string{"to", "gas", "gasPrice", "value", "data", "nonce"} {
		if _, present := decoded[field]; present {
			t.Fatalf("expected %q to be omitted, got %s", field, decoded[field])
		}
	}
	if _, present := decoded["from"]; !present {
		t.Fatalf("expected \"from\" to be present")
	}
}

func TestPersonalUnlockAccountOmitsDurationWhenNil(t *testing.T) {
	var addr rpcvalue.Address
	_, params := decode(t, PersonalUnlockAccount(addr, "pw", nil))
	if len(params) != 2 {
		t.Fatalf("got %d params, want 2 when duration is nil", len(params))
	}

	duration := uint32(300)
	_, params = decode(t, PersonalUnlockAccount(addr, "pw", &duration))
	if len(params) != 3 {
		t.Fatalf("got %d params, want 3 when duration is set", len(params))
	}
	if string(params[2]) != "300" {
		t.Fatalf("got duration param %s", params[2])
	}
}

func TestEthSubscribeLogsEncodesChannelNameThenFilter(t *testing.T) {
	method, params := decode(t, EthSubscribeLogs(ethtypes.Filter{}))
	if method != "eth_subscribe" {
		t.Fatalf("got method %q", method)
	}
	if len(params) != 2 {
		t.Fatalf("got %d params, want 2", len(params))
	}
	if string(params[0]) != `"logs"` {
		t.Fatalf("got channel param %s", params[0])
	}
}
