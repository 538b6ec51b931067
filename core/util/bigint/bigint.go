// Package bigint wraps big.Int for JSON serialization as a decimal string,
// so that token amounts beyond int64 range survive the wire format.
package bigint

import (
	"fmt"
	"math/big"
)

type BigInt struct {
	*big.Int
}

func (i *BigInt) MarshalJSON() ([]byte, error) {
	if i.Int == nil {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, i.String())), nil
}

func (i *BigInt) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		return nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("unmarshal big int: %s", string(b))
	}
	i.Int = v
	return nil
}

// Wrap wraps a big.Int pointer for JSON serialization.
func Wrap(i *big.Int) *BigInt {
	return &BigInt{Int: i}
}
