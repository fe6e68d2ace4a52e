package rpcvalue

import "encoding/json"

// Topic is one position in a filter's topic list: nil for a wildcard, a
// single Hash32 for an exact match, or a slice of Hash32 for an
// alternation ("any of these").
type Topic struct {
	values []Hash32
	isSet  bool
}

// AnyTopic is the wildcard topic; it serializes as JSON null.
func AnyTopic() Topic { return Topic{} }

// SingleTopic matches exactly one value.
func SingleTopic(h Hash32) Topic { return Topic{values: []Hash32{h}, isSet: true} }

// AlternationTopic matches any of the given values.
func AlternationTopic(hs ...Hash32) Topic { return Topic{values: hs, isSet: true} }

func (t Topic) MarshalJSON() ([]byte, error) {
	if !t.isSet {
		return json.Marshal(nil)
	}
	if len(t.values) == 1 {
		return json.Marshal(t.values[0])
	}
	return json.Marshal(t.values)
}

func (t *Topic) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = AnyTopic()
		return nil
	}
	// Try single value first, then alternation.
	var single Hash32
	if err := json.Unmarshal(data, &single); err == nil {
		*t = SingleTopic(single)
		return nil
	}
	var many []Hash32
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = AlternationTopic(many...)
	return nil
}

// Topics is the ordered topic-position list used by eth_getLogs,
// eth_newFilter, and eth_subscribe("logs", ...).
type Topics []Topic
