package forms

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/redesblock/mopboard/core/nodeapi"
	"github.com/redesblock/mopboard/core/postage"
)

// ErrNoClient is returned when a transfer is attempted without a configured
// node client.
var ErrNoClient = errors.New("node client not configured")

// FundsForm is the state of the chequebook deposit/withdraw form. The zero
// value is an empty, idle form.
type FundsForm struct {
	Amount      string
	AmountError string
	Submitting  bool
}

// WithAmount returns the form with the amount field set from the given
// input text. Invalid input sets the field error and coerces the stored
// value to "0".
func (f FundsForm) WithAmount(text string) FundsForm {
	f.Amount, f.AmountError = postage.ValidateAmount(text)
	return f
}

// CanSubmit reports whether the form may be submitted.
func (f FundsForm) CanSubmit() bool {
	return !f.Submitting && f.AmountError == "" && f.Amount != ""
}

func (f FundsForm) amountValue() (*big.Int, bool) {
	if f.Amount == "" || f.AmountError != "" {
		return nil, false
	}
	v, ok := new(big.Int).SetString(f.Amount, 10)
	if !ok || v.Sign() <= 0 {
		return nil, false
	}
	return v, true
}

// Deposit moves the form amount from the node wallet into the chequebook
// and triggers the balance refresh. A missing node client is a
// configuration error.
func (f *FundsForm) Deposit(ctx context.Context, svc nodeapi.Service, refresh func()) (string, error) {
	if svc == nil {
		return "", ErrNoClient
	}
	return f.submit(ctx, svc.DepositTokens, refresh)
}

// Withdraw moves the form amount from the chequebook back into the node
// wallet and triggers the balance refresh. A missing node client is a
// configuration error.
func (f *FundsForm) Withdraw(ctx context.Context, svc nodeapi.Service, refresh func()) (string, error) {
	if svc == nil {
		return "", ErrNoClient
	}
	return f.submit(ctx, svc.WithdrawTokens, refresh)
}

func (f *FundsForm) submit(ctx context.Context, call func(context.Context, *big.Int) (string, error), refresh func()) (string, error) {
	if !f.CanSubmit() {
		return "", nil
	}

	f.Submitting = true
	defer func() {
		f.Submitting = false
	}()

	amount, ok := f.amountValue()
	if !ok {
		return "", nil
	}

	txHash, err := call(ctx, amount)
	if err != nil {
		return "", fmt.Errorf("transfer: %w", err)
	}

	if refresh != nil {
		refresh()
	}
	return txHash, nil
}
