package postage

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Validation messages shown next to the corresponding form field.
const (
	MsgAmountRequired = "Amount is required"
	MsgAmountInteger  = "Amount must be an integer"
	MsgAmountPositive = "Amount must be greater than 0"
	MsgDepthRequired  = "Depth is required"
	MsgDepthInteger   = "Depth must be an integer"
	MsgDepthTooSmall  = "Minimal depth is 17"
	MsgDepthTooLarge  = "Depth has to be at most 255"
)

// ValidateAmount checks that text is a positive whole number. It returns the
// value to store, which is the literal input when valid and "0" otherwise,
// and the validation message, empty when valid.
func ValidateAmount(text string) (value, msg string) {
	if text == "" {
		return "0", MsgAmountRequired
	}
	if strings.Contains(text, ".") {
		return "0", MsgAmountInteger
	}
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return "0", MsgAmountInteger
	}
	if v.Sign() <= 0 {
		return "0", MsgAmountPositive
	}
	return text, ""
}

// ValidateDepth checks that text is an integer within the accepted depth
// bounds. It returns the value to store, which is the literal input when
// valid and "0" otherwise, and the validation message, empty when valid.
func ValidateDepth(text string) (value, msg string) {
	if text == "" {
		return "0", MsgDepthRequired
	}
	// The same parser the fields use later; a leading sign is not an
	// acceptable depth.
	d, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return "0", MsgDepthTooLarge
		}
		return "0", MsgDepthInteger
	}
	if d < uint64(MinDepth) {
		return "0", MsgDepthTooSmall
	}
	if d > uint64(MaxDepth) {
		return "0", MsgDepthTooLarge
	}
	return text, ""
}
