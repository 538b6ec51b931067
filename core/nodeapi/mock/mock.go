// Package mock provides a nodeapi.Service implementation for tests.
package mock

import (
	"context"
	"errors"
	"math/big"

	"github.com/redesblock/mopboard/core/nodeapi"
	"github.com/redesblock/mopboard/core/postage"
)

type optionFunc func(*mockService)

// Option is an option passed to a mock nodeapi Service.
type Option interface {
	apply(*mockService)
}

func (f optionFunc) apply(s *mockService) { f(s) }

// New creates a new mock nodeapi service.
func New(o ...Option) nodeapi.Service {
	m := new(mockService)
	for _, v := range o {
		v.apply(m)
	}
	return m
}

func WithDepositFunc(f func(ctx context.Context, amount *big.Int) (string, error)) Option {
	return optionFunc(func(m *mockService) { m.depositFunc = f })
}

func WithWithdrawFunc(f func(ctx context.Context, amount *big.Int) (string, error)) Option {
	return optionFunc(func(m *mockService) { m.withdrawFunc = f })
}

func WithChequebookBalanceFunc(f func(ctx context.Context) (*nodeapi.ChequebookBalance, error)) Option {
	return optionFunc(func(m *mockService) { m.balanceFunc = f })
}

func WithCreateBatchFunc(f func(ctx context.Context, amount *big.Int, depth uint8, o nodeapi.CreateBatchOptions) (string, error)) Option {
	return optionFunc(func(m *mockService) { m.createBatchFunc = f })
}

func WithStampsFunc(f func(ctx context.Context) ([]*postage.Batch, error)) Option {
	return optionFunc(func(m *mockService) { m.stampsFunc = f })
}

func WithStampFunc(f func(ctx context.Context, batchID string) (*postage.Batch, error)) Option {
	return optionFunc(func(m *mockService) { m.stampFunc = f })
}

func WithBatchExistsFunc(f func(ctx context.Context, batchID string) (bool, error)) Option {
	return optionFunc(func(m *mockService) { m.batchExistsFunc = f })
}

func WithChainStateFunc(f func(ctx context.Context) (*postage.ChainState, error)) Option {
	return optionFunc(func(m *mockService) { m.chainStateFunc = f })
}

func WithStatusFunc(f func(ctx context.Context) (*nodeapi.Status, error)) Option {
	return optionFunc(func(m *mockService) { m.statusFunc = f })
}

type mockService struct {
	depositFunc     func(context.Context, *big.Int) (string, error)
	withdrawFunc    func(context.Context, *big.Int) (string, error)
	balanceFunc     func(context.Context) (*nodeapi.ChequebookBalance, error)
	createBatchFunc func(context.Context, *big.Int, uint8, nodeapi.CreateBatchOptions) (string, error)
	stampsFunc      func(context.Context) ([]*postage.Batch, error)
	stampFunc       func(context.Context, string) (*postage.Batch, error)
	batchExistsFunc func(context.Context, string) (bool, error)
	chainStateFunc  func(context.Context) (*postage.ChainState, error)
	statusFunc      func(context.Context) (*nodeapi.Status, error)
}

var errNotImplemented = errors.New("not implemented")

func (m *mockService) DepositTokens(ctx context.Context, amount *big.Int) (string, error) {
	if m.depositFunc == nil {
		return "", errNotImplemented
	}
	return m.depositFunc(ctx, amount)
}

func (m *mockService) WithdrawTokens(ctx context.Context, amount *big.Int) (string, error) {
	if m.withdrawFunc == nil {
		return "", errNotImplemented
	}
	return m.withdrawFunc(ctx, amount)
}

func (m *mockService) ChequebookBalance(ctx context.Context) (*nodeapi.ChequebookBalance, error) {
	if m.balanceFunc == nil {
		return nil, errNotImplemented
	}
	return m.balanceFunc(ctx)
}

func (m *mockService) CreatePostageBatch(ctx context.Context, amount *big.Int, depth uint8, o nodeapi.CreateBatchOptions) (string, error) {
	if m.createBatchFunc == nil {
		return "", errNotImplemented
	}
	return m.createBatchFunc(ctx, amount, depth, o)
}

func (m *mockService) Stamps(ctx context.Context) ([]*postage.Batch, error) {
	if m.stampsFunc == nil {
		return nil, errNotImplemented
	}
	return m.stampsFunc(ctx)
}

func (m *mockService) Stamp(ctx context.Context, batchID string) (*postage.Batch, error) {
	if m.stampFunc == nil {
		return nil, errNotImplemented
	}
	return m.stampFunc(ctx, batchID)
}

func (m *mockService) BatchExists(ctx context.Context, batchID string) (bool, error) {
	if m.batchExistsFunc == nil {
		return true, nil
	}
	return m.batchExistsFunc(ctx, batchID)
}

func (m *mockService) ChainState(ctx context.Context) (*postage.ChainState, error) {
	if m.chainStateFunc == nil {
		return nil, errNotImplemented
	}
	return m.chainStateFunc(ctx)
}

func (m *mockService) Status(ctx context.Context) (*nodeapi.Status, error) {
	if m.statusFunc == nil {
		return nil, errNotImplemented
	}
	return m.statusFunc(ctx)
}
