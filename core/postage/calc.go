package postage

import (
	"errors"
	"fmt"
	"math/big"
	"time"
)

// BlockTime is the expected cadence of new blocks on the chain the node
// settles on, used to convert a per-block price into a batch lifetime.
const BlockTime = 5 * time.Second

// ErrZeroPrice is returned when a batch lifetime is requested with no
// valid price per block.
var ErrZeroPrice = errors.New("zero price per block")

// BatchSize returns the number of bytes a batch of the given depth can
// store, 2^depth chunks of ChunkSize bytes each.
func BatchSize(depth uint8) *big.Int {
	return new(big.Int).Lsh(big.NewInt(ChunkSize), uint(depth))
}

// BatchPrice returns the total price in the smallest token unit for a batch
// of the given depth funded with the given per-chunk amount.
func BatchPrice(depth uint8, amount *big.Int) *big.Int {
	return new(big.Int).Lsh(amount, uint(depth))
}

// BatchTTL returns the expected batch lifetime in seconds for the given
// per-chunk amount and per-block price.
func BatchTTL(amount, pricePerBlock *big.Int) (*big.Int, error) {
	if pricePerBlock == nil || pricePerBlock.Sign() <= 0 {
		return nil, ErrZeroPrice
	}
	blocks := new(big.Int).Quo(amount, pricePerBlock)
	return blocks.Mul(blocks, big.NewInt(int64(BlockTime/time.Second))), nil
}

var sizeUnits = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// HumanSize renders a byte count in a human readable form, e.g. "4.29 GB".
func HumanSize(v *big.Int) string {
	f, _ := new(big.Float).SetInt(v).Float64()
	i := 0
	for f >= 1000 && i < len(sizeUnits)-1 {
		f /= 1000
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%.0f %s", f, sizeUnits[i])
	}
	return fmt.Sprintf("%.2f %s", f, sizeUnits[i])
}

type durationUnit struct {
	name    string
	seconds int64
}

var durationUnits = []durationUnit{
	{"year", 365 * 24 * 3600},
	{"day", 24 * 3600},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

// HumanDuration renders a duration given in seconds in a human readable
// form using the two most significant units, e.g. "2 days 5 hours".
func HumanDuration(seconds *big.Int) string {
	if seconds.Sign() <= 0 {
		return "0 seconds"
	}
	rest := new(big.Int).Set(seconds)
	var out string
	parts := 0
	for _, u := range durationUnits {
		if parts == 2 {
			break
		}
		n := new(big.Int)
		n, rest = n.QuoRem(rest, big.NewInt(u.seconds), new(big.Int))
		if n.Sign() == 0 {
			// Only adjacent units are combined: a zero unit after the
			// leading one ends the output.
			if parts > 0 {
				break
			}
			continue
		}
		name := u.name
		if n.Cmp(big.NewInt(1)) != 0 {
			name += "s"
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s %s", n, name)
		parts++
	}
	if out == "" {
		return "0 seconds"
	}
	return out
}

// TokenDecimals is the number of decimals of the token amounts are
// denominated in.
const TokenDecimals = 16

// HumanTokenAmount renders an amount in the smallest token unit as a
// token-denominated decimal with four significant digits and the token
// symbol as suffix, e.g. "1.049 MOP".
func HumanTokenAmount(v *big.Int) string {
	exp := new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)
	f := new(big.Float).Quo(new(big.Float).SetInt(v), new(big.Float).SetInt(exp))
	return fmt.Sprintf("%.4g MOP", f)
}
