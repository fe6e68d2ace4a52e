package rpcvalue

import "encoding/json"

// TransactionOrHash discriminates a block's "transactions" array, which
// holds either transaction hashes (the common case) or full transaction
// objects, depending on the "full transactions" flag passed to
// eth_getBlockByNumber/eth_getBlockByHash.
type TransactionOrHash struct {
	Hash *Hash32
	Full json.RawMessage
}

func (t *TransactionOrHash) UnmarshalJSON(data []byte) error {
	var h Hash32
	if err := json.Unmarshal(data, &h); err == nil {
		t.Hash = &h
		t.Full = nil
		return nil
	}
	// Not a bare hash string: it's a full transaction object. Keep it raw;
	// the domain transaction type (out of scope here) decodes it.
	t.Hash = nil
	t.Full = append(json.RawMessage(nil), data...)
	return nil
}

func (t TransactionOrHash) MarshalJSON() ([]byte, error) {
	if t.Hash != nil {
		return json.Marshal(*t.Hash)
	}
	if t.Full != nil {
		return t.Full, nil
	}
	return json.Marshal(nil)
}

// SyncStatus discriminates eth_syncing's result: either the literal `false`
// (not syncing) or an object describing sync progress.
type SyncStatus struct {
	Syncing  bool
	Progress json.RawMessage
}

func (s *SyncStatus) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		s.Syncing = asBool
		s.Progress = nil
		return nil
	}
	s.Syncing = true
	s.Progress = append(json.RawMessage(nil), data...)
	return nil
}

func (s SyncStatus) MarshalJSON() ([]byte, error) {
	if !s.Syncing {
		return json.Marshal(false)
	}
	if s.Progress != nil {
		return s.Progress, nil
	}
	return json.Marshal(true)
}

// FilterLogEntry discriminates a single eth_getFilterChanges result item:
// either a hash (for a pending-transaction or block filter) or a full log
// object (for a logs filter).
type FilterLogEntry struct {
	Hash *Hash32
	Log  json.RawMessage
}

func (f *FilterLogEntry) UnmarshalJSON(data []byte) error {
	var h Hash32
	if err := json.Unmarshal(data, &h); err == nil {
		f.Hash = &h
		f.Log = nil
		return nil
	}
	f.Hash = nil
	f.Log = append(json.RawMessage(nil), data...)
	return nil
}

func (f FilterLogEntry) MarshalJSON() ([]byte, error) {
	if f.Hash != nil {
		return json.Marshal(*f.Hash)
	}
	if f.Log != nil {
		return f.Log, nil
	}
	return json.Marshal(nil)
}
