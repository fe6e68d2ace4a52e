package rpcvalue

import (
	"encoding/json"
	"testing"
)

func TestBytesRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
	}{
		{"empty", []byte{}},
		{"nil", nil},
		{"single", []byte{0x7a}},
		{"multi", []byte{0, 1, 0x7a, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := json.Marshal(Bytes(tt.bytes))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var decoded Bytes
			if err := json.Unmarshal(encoded, &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(decoded) != len(tt.bytes) {
				t.Fatalf("round trip length: got %d, want %d", len(decoded), len(tt.bytes))
			}
			for i := range tt.bytes {
				if decoded[i] != tt.bytes[i] {
					t.Fatalf("round trip mismatch at %d: got %x, want %x", i, decoded, tt.bytes)
				}
			}
		})
	}
}

func TestBytesEncodeExact(t *testing.T) {
	// S4: encode [0, 1, 0x7a, 4] -> "0x00017a04"
	b := Bytes{0, 1, 0x7a, 4}
	encoded, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `"0x00017a04"` {
		t.Fatalf("got %s, want \"0x00017a04\"", encoded)
	}
}

func TestBytesDecodeAcceptsBareHex(t *testing.T) {
	var b Bytes
	if err := json.Unmarshal([]byte(`"00017a04"`), &b); err != nil {
		t.Fatalf("unmarshal bare hex: %v", err)
	}
	want := Bytes{0, 1, 0x7a, 4}
	if len(b) != len(want) {
		t.Fatalf("got %x, want %x", b, want)
	}
}

func TestBytesDecodeRejectsOddLength(t *testing.T) {
	var b Bytes
	if err := json.Unmarshal([]byte(`"0x0"`), &b); err == nil {
		t.Fatalf("expected error for odd-length hex")
	}
}

func TestBytesDecodeRejectsNonHex(t *testing.T) {
	var b Bytes
	if err := json.Unmarshal([]byte(`"0xzz"`), &b); err == nil {
		t.Fatalf("expected error for non-hex input")
	}
}

func TestHash32RoundTrip(t *testing.T) {
	var h Hash32
	for i := range h {
		h[i] = byte(i)
	}
	encoded, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Hash32
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != h {
		t.Fatalf("round trip mismatch: got %x, want %x", decoded, h)
	}
}

func TestHash32RejectsWrongWidth(t *testing.T) {
	var h Hash32
	if err := json.Unmarshal([]byte(`"0x0011"`), &h); err == nil {
		t.Fatalf("expected width error")
	}
}

func TestAddressWidth(t *testing.T) {
	var a Address
	if err := json.Unmarshal([]byte(`"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := a.String(); got != "0xd8da6bf26964af9d7eed9e03e53415d37aa96045" {
		t.Fatalf("got %s, want lowercase canonical form", got)
	}
}

func TestBlockParameterTags(t *testing.T) {
	for _, tag := range []BlockTag{Latest, Earliest, Pending} {
		p := BlockByTag(tag)
		encoded, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal %s: %v", tag, err)
		}
		want := `"` + string(tag) + `"`
		if string(encoded) != want {
			t.Fatalf("got %s, want %s", encoded, want)
		}
	}
}

func TestBlockParameterDefault(t *testing.T) {
	var p BlockParameter
	if p.String() != "latest" {
		t.Fatalf("zero value should default to latest, got %s", p.String())
	}
}

func TestBlockParameterCustom(t *testing.T) {
	// S3: Custom(0xb47abe) -> "0xb47abe"
	p := BlockByNumber(0xb47abe)
	encoded, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `"0xb47abe"` {
		t.Fatalf("got %s, want \"0xb47abe\"", encoded)
	}
}

func TestBlockParameterRoundTrip(t *testing.T) {
	p := BlockByNumber(21233467)
	encoded, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded BlockParameter
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.String() != p.String() {
		t.Fatalf("got %s, want %s", decoded.String(), p.String())
	}
}

func TestTopicsWildcardSerializesNull(t *testing.T) {
	topics := Topics{AnyTopic(), SingleTopic(Hash32{1})}
	encoded, err := json.Marshal(topics)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded []json.RawMessage
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal outer: %v", err)
	}
	if string(decoded[0]) != "null" {
		t.Fatalf("wildcard position should serialize as null, got %s", decoded[0])
	}
}

func TestTopicAlternationRoundTrip(t *testing.T) {
	alt := AlternationTopic(Hash32{1}, Hash32{2})
	encoded, err := json.Marshal(alt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Topic
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.values) != 2 {
		t.Fatalf("got %d values, want 2", len(decoded.values))
	}
}

func TestTransactionOrHashDiscriminates(t *testing.T) {
	var hashForm TransactionOrHash
	if err := json.Unmarshal([]byte(`"0x`+hex32()+`"`), &hashForm); err != nil {
		t.Fatalf("unmarshal hash form: %v", err)
	}
	if hashForm.Hash == nil {
		t.Fatalf("expected hash form to be discriminated as a hash")
	}

	var fullForm TransactionOrHash
	if err := json.Unmarshal([]byte(`{"hash":"0x`+hex32()+`","nonce":"0x1"}`), &fullForm); err != nil {
		t.Fatalf("unmarshal full form: %v", err)
	}
	if fullForm.Hash != nil || fullForm.Full == nil {
		t.Fatalf("expected full form to retain raw object")
	}
}

func TestSyncStatusDiscriminates(t *testing.T) {
	var notSyncing SyncStatus
	if err := json.Unmarshal([]byte(`false`), &notSyncing); err != nil {
		t.Fatalf("unmarshal false: %v", err)
	}
	if notSyncing.Syncing {
		t.Fatalf("expected not-syncing")
	}

	var syncing SyncStatus
	if err := json.Unmarshal([]byte(`{"currentBlock":"0x1","highestBlock":"0x2"}`), &syncing); err != nil {
		t.Fatalf("unmarshal object: %v", err)
	}
	if !syncing.Syncing {
		t.Fatalf("expected syncing")
	}
}

func hex32() string {
	return "1111111111111111111111111111111111111111111111111111111111111111"[:64]
}
