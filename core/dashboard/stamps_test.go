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
	"github.com/redesblock/mopboard/core/postage"
	"github.com/redesblock/mopboard/core/util/bigint"
)

func TestChainState(t *testing.T) {
	client := newTestServer(t, testServerOptions{
		ClientOpts: []mock.Option{
			mock.WithChainStateFunc(func(_ context.Context) (*postage.ChainState, error) {
				return &postage.ChainState{
					Block:        100,
					TotalAmount:  bigint.Wrap(big.NewInt(5000)),
					CurrentPrice: bigint.Wrap(big.NewInt(24)),
				}, nil
			}),
		},
	})

	jsonhttptest.Request(t, client, http.MethodGet, "/chainstate", http.StatusOK,
		jsonhttptest.WithExpectedJSONResponse(postage.ChainState{
			Block:        100,
			TotalAmount:  bigint.Wrap(big.NewInt(5000)),
			CurrentPrice: bigint.Wrap(big.NewInt(24)),
		}),
	)
}

func TestStamps(t *testing.T) {
	batch := &postage.Batch{
		BatchID: "aa",
		Depth:   20,
		Usable:  true,
		Amount:  bigint.Wrap(big.NewInt(1000)),
	}

	t.Run("list", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{
			ClientOpts: []mock.Option{
				mock.WithStampsFunc(func(_ context.Context) ([]*postage.Batch, error) {
					return []*postage.Batch{batch}, nil
				}),
			},
		})

		jsonhttptest.Request(t, client, http.MethodGet, "/stamps", http.StatusOK,
			jsonhttptest.WithExpectedJSONResponse(dashboard.StampsResponse{
				Stamps: []*postage.Batch{batch},
			}),
		)
	})

	t.Run("get", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{
			ClientOpts: []mock.Option{
				mock.WithStampFunc(func(_ context.Context, batchID string) (*postage.Batch, error) {
					if batchID != "aa" {
						return nil, nodeapi.ErrNotFound
					}
					return batch, nil
				}),
			},
		})

		jsonhttptest.Request(t, client, http.MethodGet, "/stamps/aa", http.StatusOK,
			jsonhttptest.WithExpectedJSONResponse(batch),
		)

		jsonhttptest.Request(t, client, http.MethodGet, "/stamps/bb", http.StatusNotFound,
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: http.StatusText(http.StatusNotFound),
				Code:    http.StatusNotFound,
			}),
		)
	})
}

func TestStampCreate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var (
			gotAmount *big.Int
			gotDepth  uint8
			gotOpts   nodeapi.CreateBatchOptions
		)
		client := newTestServer(t, testServerOptions{
			ClientOpts: []mock.Option{
				mock.WithCreateBatchFunc(func(_ context.Context, amount *big.Int, depth uint8, o nodeapi.CreateBatchOptions) (string, error) {
					gotAmount, gotDepth, gotOpts = amount, depth, o
					return "abcd", nil
				}),
				mock.WithStampsFunc(func(_ context.Context) ([]*postage.Batch, error) {
					return []*postage.Batch{{BatchID: "abcd", Depth: 20}}, nil
				}),
			},
		})

		jsonhttptest.Request(t, client, http.MethodPost, "/stamps", http.StatusCreated,
			jsonhttptest.WithJSONRequestBody(dashboard.CreateStampRequest{
				Amount:    "1000",
				Depth:     "20",
				Label:     "test",
				Immutable: true,
			}),
			jsonhttptest.WithExpectedJSONResponse(dashboard.CreateStampResponse{
				BatchID: "abcd",
				Stamps:  []*postage.Batch{{BatchID: "abcd", Depth: 20}},
			}),
		)

		if gotAmount == nil || gotAmount.Cmp(big.NewInt(1000)) != 0 {
			t.Errorf("got amount %v, want 1000", gotAmount)
		}
		if gotDepth != 20 {
			t.Errorf("got depth %d, want 20", gotDepth)
		}
		if gotOpts.Label != "test" || !gotOpts.Immutable {
			t.Errorf("got options %+v", gotOpts)
		}
	})

	t.Run("invalid depth", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{})

		jsonhttptest.Request(t, client, http.MethodPost, "/stamps", http.StatusBadRequest,
			jsonhttptest.WithJSONRequestBody(dashboard.CreateStampRequest{
				Amount: "1000",
				Depth:  "16",
			}),
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "Minimal depth is 17",
				Code:    http.StatusBadRequest,
			}),
		)
	})

	t.Run("sign-prefixed depth", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{})

		jsonhttptest.Request(t, client, http.MethodPost, "/stamps", http.StatusBadRequest,
			jsonhttptest.WithJSONRequestBody(dashboard.CreateStampRequest{
				Amount: "1000",
				Depth:  "+20",
			}),
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "Depth must be an integer",
				Code:    http.StatusBadRequest,
			}),
		)
	})

	t.Run("invalid amount", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{})

		jsonhttptest.Request(t, client, http.MethodPost, "/stamps", http.StatusBadRequest,
			jsonhttptest.WithJSONRequestBody(dashboard.CreateStampRequest{
				Amount: "10.5",
				Depth:  "20",
			}),
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "Amount must be an integer",
				Code:    http.StatusBadRequest,
			}),
		)
	})

	t.Run("node error", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{
			ClientOpts: []mock.Option{
				mock.WithCreateBatchFunc(func(_ context.Context, _ *big.Int, _ uint8, _ nodeapi.CreateBatchOptions) (string, error) {
					return "", errors.New("out of funds")
				}),
			},
		})

		jsonhttptest.Request(t, client, http.MethodPost, "/stamps", http.StatusInternalServerError,
			jsonhttptest.WithJSONRequestBody(dashboard.CreateStampRequest{
				Amount: "1000",
				Depth:  "20",
			}),
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "cannot create stamp",
				Code:    http.StatusInternalServerError,
			}),
		)
	})
}

func TestStampQuote(t *testing.T) {
	chainState := []mock.Option{
		mock.WithChainStateFunc(func(_ context.Context) (*postage.ChainState, error) {
			return &postage.ChainState{CurrentPrice: bigint.Wrap(big.NewInt(24))}, nil
		}),
	}

	t.Run("valid input", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{ClientOpts: chainState})

		jsonhttptest.Request(t, client, http.MethodGet, "/stamps/quote?amount=24000&depth=20", http.StatusOK,
			jsonhttptest.WithExpectedJSONResponse(dashboard.StampQuoteResponse{
				FileSize:      "4.29 GB",
				TTL:           "1 hour 23 minutes (at 24 per block)",
				Price:         postage.HumanTokenAmount(postage.BatchPrice(20, big.NewInt(24000))),
				PricePerBlock: "24",
			}),
		)
	})

	t.Run("invalid input", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{ClientOpts: chainState})

		jsonhttptest.Request(t, client, http.MethodGet, "/stamps/quote?amount=10.5&depth=16", http.StatusOK,
			jsonhttptest.WithExpectedJSONResponse(dashboard.StampQuoteResponse{
				FileSize:      "-",
				TTL:           "-",
				Price:         "-",
				PricePerBlock: "24",
			}),
		)
	})

	t.Run("no chain state", func(t *testing.T) {
		client := newTestServer(t, testServerOptions{
			ClientOpts: []mock.Option{
				mock.WithChainStateFunc(func(_ context.Context) (*postage.ChainState, error) {
					return nil, errors.New("node down")
				}),
			},
		})

		jsonhttptest.Request(t, client, http.MethodGet, "/stamps/quote?amount=24000&depth=20", http.StatusOK,
			jsonhttptest.WithExpectedJSONResponse(dashboard.StampQuoteResponse{
				FileSize: "4.29 GB",
				TTL:      "-",
				Price:    postage.HumanTokenAmount(postage.BatchPrice(20, big.NewInt(24000))),
			}),
		)
	})
}
