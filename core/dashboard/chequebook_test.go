package dashboard_test

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"testing"

	"github.com/redesblock/mopboard/core/dashboard"
	"github.com/redesblock/mopboard/core/jsonhttp"
	"github.com/redesblock/mopboard/core/jsonhttp/jsonhttptest"
	"github.com/redesblock/mopboard/core/nodeapi"
	"github.com/redesblock/mopboard/core/nodeapi/mock"
	"github.com/redesblock/mopboard/core/util/bigint"
)

func TestChequebookBalance(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{
			ClientOpts: []mock.Option{
				mock.WithChequebookBalanceFunc(func(_ context.Context) (*nodeapi.ChequebookBalance, error) {
					return &nodeapi.ChequebookBalance{
						TotalBalance:     bigint.Wrap(big.NewInt(10000)),
						AvailableBalance: bigint.Wrap(big.NewInt(9000)),
					}, nil
				}),
			},
		})

		jsonhttptest.Request(t, client, http.MethodGet, "/chequebook", http.StatusOK,
			jsonhttptest.WithExpectedJSONResponse(nodeapi.ChequebookBalance{
				TotalBalance:     bigint.Wrap(big.NewInt(10000)),
				AvailableBalance: bigint.Wrap(big.NewInt(9000)),
			}),
		)
	})

	t.Run("node error", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{
			ClientOpts: []mock.Option{
				mock.WithChequebookBalanceFunc(func(_ context.Context) (*nodeapi.ChequebookBalance, error) {
					return nil, errors.New("node down")
				}),
			},
		})

		jsonhttptest.Request(t, client, http.MethodGet, "/chequebook", http.StatusInternalServerError,
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "cannot get chequebook balance",
				Code:    http.StatusInternalServerError,
			}),
		)
	})
}

func TestChequebookDeposit(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var gotAmount *big.Int
		client := newTestServer(t, testServerOptions{
			ClientOpts: []mock.Option{
				mock.WithDepositFunc(func(_ context.Context, amount *big.Int) (string, error) {
					gotAmount = amount
					return "0xabcd", nil
				}),
				mock.WithChequebookBalanceFunc(func(_ context.Context) (*nodeapi.ChequebookBalance, error) {
					return &nodeapi.ChequebookBalance{
						TotalBalance:     bigint.Wrap(big.NewInt(11000)),
						AvailableBalance: bigint.Wrap(big.NewInt(10000)),
					}, nil
				}),
			},
		})

		jsonhttptest.Request(t, client, http.MethodPost, "/chequebook/deposit?amount=1000", http.StatusOK,
			jsonhttptest.WithExpectedJSONResponse(dashboard.TransferResponse{
				TransactionHash: "0xabcd",
				Balance: &nodeapi.ChequebookBalance{
					TotalBalance:     bigint.Wrap(big.NewInt(11000)),
					AvailableBalance: bigint.Wrap(big.NewInt(10000)),
				},
			}),
		)

		if gotAmount == nil || gotAmount.Cmp(big.NewInt(1000)) != 0 {
			t.Errorf("got deposit amount %v, want 1000", gotAmount)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{})

		jsonhttptest.Request(t, client, http.MethodPost, "/chequebook/deposit?amount=10.5", http.StatusBadRequest,
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "Amount must be an integer",
				Code:    http.StatusBadRequest,
			}),
		)
	})

	t.Run("node error", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{
			ClientOpts: []mock.Option{
				mock.WithDepositFunc(func(_ context.Context, _ *big.Int) (string, error) {
					return "", errors.New("insufficient funds")
				}),
			},
		})

		jsonhttptest.Request(t, client, http.MethodPost, "/chequebook/deposit?amount=1000", http.StatusInternalServerError,
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "cannot deposit tokens",
				Code:    http.StatusInternalServerError,
			}),
		)
	})
}

func TestChequebookWithdraw(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{
			ClientOpts: []mock.Option{
				mock.WithWithdrawFunc(func(_ context.Context, amount *big.Int) (string, error) {
					return "0xbeef", nil
				}),
				mock.WithChequebookBalanceFunc(func(_ context.Context) (*nodeapi.ChequebookBalance, error) {
					return &nodeapi.ChequebookBalance{
						TotalBalance:     bigint.Wrap(big.NewInt(9000)),
						AvailableBalance: bigint.Wrap(big.NewInt(8000)),
					}, nil
				}),
			},
		})

		jsonhttptest.Request(t, client, http.MethodPost, "/chequebook/withdraw?amount=500", http.StatusOK,
			jsonhttptest.WithExpectedJSONResponse(dashboard.TransferResponse{
				TransactionHash: "0xbeef",
				Balance: &nodeapi.ChequebookBalance{
					TotalBalance:     bigint.Wrap(big.NewInt(9000)),
					AvailableBalance: bigint.Wrap(big.NewInt(8000)),
				},
			}),
		)
	})

	t.Run("invalid amount", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{})

		jsonhttptest.Request(t, client, http.MethodPost, "/chequebook/withdraw?amount=0", http.StatusBadRequest,
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "Amount must be greater than 0",
				Code:    http.StatusBadRequest,
			}),
		)
	})
}
