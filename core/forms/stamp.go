// Package forms models the dashboard form state as explicit value objects
// updated by pure transition functions, keeping validation and the derived
// display values independent of any HTTP handler.
package forms

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/redesblock/mopboard/core/nodeapi"
	"github.com/redesblock/mopboard/core/postage"
)

// Placeholder is shown for derived values while inputs are invalid or
// absent.
const Placeholder = "-"

// StampForm is the state of the postage batch purchase form. The zero value
// is an empty, idle form.
type StampForm struct {
	Amount     string
	Depth      string
	Label      string
	Immutable  bool
	WaitUsable bool

	AmountError string
	DepthError  string

	Submitting bool
}

// WithAmount returns the form with the amount field set from the given
// input text. Invalid input sets the field error and coerces the stored
// value to "0".
func (f StampForm) WithAmount(text string) StampForm {
	f.Amount, f.AmountError = postage.ValidateAmount(text)
	return f
}

// WithDepth returns the form with the depth field set from the given input
// text. Invalid input sets the field error and coerces the stored value
// to "0".
func (f StampForm) WithDepth(text string) StampForm {
	f.Depth, f.DepthError = postage.ValidateDepth(text)
	return f
}

// WithLabel returns the form with the optional batch label set.
func (f StampForm) WithLabel(label string) StampForm {
	f.Label = label
	return f
}

// WithImmutable returns the form with the immutability flag set.
func (f StampForm) WithImmutable(immutable bool) StampForm {
	f.Immutable = immutable
	return f
}

// WithWaitUsable returns the form set to additionally wait until the node
// reports the purchased batch as usable before finishing the submission.
func (f StampForm) WithWaitUsable(wait bool) StampForm {
	f.WaitUsable = wait
	return f
}

// CanSubmit reports whether the form may be submitted: not while a
// submission is in flight, never with a validation error present, and never
// with a required field still empty.
func (f StampForm) CanSubmit() bool {
	if f.Submitting {
		return false
	}
	if f.AmountError != "" || f.DepthError != "" {
		return false
	}
	return f.Amount != "" && f.Depth != ""
}

func (f StampForm) depthValue() (uint8, bool) {
	if f.Depth == "" || f.DepthError != "" {
		return 0, false
	}
	d, err := strconv.ParseUint(f.Depth, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(d), true
}

func (f StampForm) amountValue() (*big.Int, bool) {
	if f.Amount == "" || f.AmountError != "" {
		return nil, false
	}
	v, ok := new(big.Int).SetString(f.Amount, 10)
	if !ok || v.Sign() <= 0 {
		return nil, false
	}
	return v, true
}

// FileSize returns the human readable capacity of a batch with the current
// depth, or the placeholder while the depth is invalid or absent.
func (f StampForm) FileSize() string {
	depth, ok := f.depthValue()
	if !ok {
		return Placeholder
	}
	return postage.HumanSize(postage.BatchSize(depth))
}

// TTL returns the human readable expected lifetime of a batch funded with
// the current amount at the chain's price per block, or the placeholder
// while the amount is invalid or absent or no chain state is known.
func (f StampForm) TTL(cs *postage.ChainState) string {
	amount, ok := f.amountValue()
	if !ok || cs == nil || cs.CurrentPrice == nil {
		return Placeholder
	}
	seconds, err := postage.BatchTTL(amount, cs.CurrentPrice.Int)
	if err != nil {
		return Placeholder
	}
	return fmt.Sprintf("%s (at %s per block)", postage.HumanDuration(seconds), cs.CurrentPrice)
}

// IndicativePrice returns the human readable total price of a batch with
// the current depth and amount, or the placeholder while either is invalid
// or absent.
func (f StampForm) IndicativePrice() string {
	depth, ok := f.depthValue()
	if !ok {
		return Placeholder
	}
	amount, ok := f.amountValue()
	if !ok {
		return Placeholder
	}
	return postage.HumanTokenAmount(postage.BatchPrice(depth, amount))
}

// Submit purchases the batch described by the form: it creates the batch
// through the node client, waits until the node reports the batch as known,
// refreshes the stamp list and signals completion. The submitting flag is
// cleared on every exit path. A form failing its submit guard, or a missing
// node client, is a silent no-op so the caller can simply resubmit.
func (f *StampForm) Submit(ctx context.Context, svc nodeapi.Service, refresh, onFinished func()) (batchID string, err error) {
	if !f.CanSubmit() || svc == nil {
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
	depth, ok := f.depthValue()
	if !ok {
		return "", nil
	}

	batchID, err = svc.CreatePostageBatch(ctx, amount, depth, nodeapi.CreateBatchOptions{
		Label:         f.Label,
		Immutable:     f.Immutable,
		WaitForUsable: f.WaitUsable,
	})
	if err != nil {
		return "", fmt.Errorf("create postage batch: %w", err)
	}

	if err := postage.WaitUntilBatchExists(ctx, svc, batchID); err != nil {
		return "", err
	}

	if refresh != nil {
		refresh()
	}
	if onFinished != nil {
		onFinished()
	}
	return batchID, nil
}
