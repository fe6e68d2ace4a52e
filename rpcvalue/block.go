package rpcvalue

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// BlockTag names one of the three non-numeric block selectors.
type BlockTag string

const (
	Latest   BlockTag = "latest"
	Earliest BlockTag = "earliest"
	Pending  BlockTag = "pending"
)

// BlockParameter is the "latest | earliest | pending | <hex block number>"
// selector accepted by most eth_* methods. The zero value serializes as
// "latest".
type BlockParameter struct {
	tag    BlockTag
	number uint64
	custom bool
}

// BlockByTag constructs a BlockParameter selecting one of the named tags.
func BlockByTag(tag BlockTag) BlockParameter {
	return BlockParameter{tag: tag}
}

// BlockByNumber constructs a BlockParameter selecting a specific height.
func BlockByNumber(n uint64) BlockParameter {
	return BlockParameter{custom: true, number: n}
}

// DefaultBlockParameter is the implicit default block selector: "latest".
func DefaultBlockParameter() BlockParameter {
	return BlockByTag(Latest)
}

func (p BlockParameter) String() string {
	if p.custom {
		return "0x" + strconv.FormatUint(p.number, 16)
	}
	if p.tag == "" {
		return string(Latest)
	}
	return string(p.tag)
}

func (p BlockParameter) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *BlockParameter) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch BlockTag(s) {
	case Latest, Earliest, Pending:
		*p = BlockParameter{tag: BlockTag(s)}
		return nil
	}
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	n, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return fmt.Errorf("rpcvalue: BlockParameter: not a tag or hex number: %q: %w", s, err)
	}
	*p = BlockByNumber(n)
	return nil
}
