// Package nodeapi implements a thin typed client for the node's debug HTTP
// API. It covers only the operations the dashboard needs: chequebook
// deposits and withdrawals, postage batch purchase and inspection, chain
// state and node status.
package nodeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/redesblock/mopboard/core/jsonhttp"
	"github.com/redesblock/mopboard/core/postage"
	"github.com/redesblock/mopboard/core/util/bigint"
)

const (
	// DefaultAddress is the debug API address of a node running on the same
	// host with default configuration.
	DefaultAddress = "http://localhost:1635"

	// immutableHeader marks a batch purchase as immutable.
	immutableHeader = "Immutable"

	defaultTimeout = 30 * time.Second
)

var (
	// ErrNotFound is returned when the debug API reports an unknown entity.
	ErrNotFound = errors.New("not found")

	usablePollInterval = time.Second
)

// CreateBatchOptions are the optional parameters of a batch purchase.
type CreateBatchOptions struct {
	Label         string
	Immutable     bool
	WaitForUsable bool
}

// Service is the part of the node's debug API the dashboard talks to.
type Service interface {
	DepositTokens(ctx context.Context, amount *big.Int) (txHash string, err error)
	WithdrawTokens(ctx context.Context, amount *big.Int) (txHash string, err error)
	ChequebookBalance(ctx context.Context) (*ChequebookBalance, error)
	CreatePostageBatch(ctx context.Context, amount *big.Int, depth uint8, o CreateBatchOptions) (batchID string, err error)
	Stamps(ctx context.Context) ([]*postage.Batch, error)
	Stamp(ctx context.Context, batchID string) (*postage.Batch, error)
	BatchExists(ctx context.Context, batchID string) (bool, error)
	ChainState(ctx context.Context) (*postage.ChainState, error)
	Status(ctx context.Context) (*Status, error)
}

// ChequebookBalance is the chequebook balance reported by the node.
type ChequebookBalance struct {
	TotalBalance     *bigint.BigInt `json:"totalBalance"`
	AvailableBalance *bigint.BigInt `json:"availableBalance"`
}

// Status is the health response of the node's debug API.
type Status struct {
	Status          string `json:"status"`
	Version         string `json:"version"`
	APIVersion      string `json:"apiVersion"`
	DebugAPIVersion string `json:"debugApiVersion"`
}

type client struct {
	baseURL    *url.URL
	httpClient *http.Client
	metrics    clientMetrics
}

// New constructs a Service talking to the debug API at the given address.
// If httpClient is nil a client with a default timeout is used.
func New(address string, httpClient *http.Client) (Service, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("parse node address: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &client{
		baseURL:    u,
		httpClient: httpClient,
		metrics:    newClientMetrics(),
	}, nil
}

type txResponse struct {
	TransactionHash string `json:"transactionHash"`
}

func (c *client) DepositTokens(ctx context.Context, amount *big.Int) (string, error) {
	var r txResponse
	err := c.request(ctx, http.MethodPost, "/chequebook/deposit", url.Values{"amount": {amount.String()}}, nil, &r)
	if err != nil {
		return "", fmt.Errorf("deposit: %w", err)
	}
	return r.TransactionHash, nil
}

func (c *client) WithdrawTokens(ctx context.Context, amount *big.Int) (string, error) {
	var r txResponse
	err := c.request(ctx, http.MethodPost, "/chequebook/withdraw", url.Values{"amount": {amount.String()}}, nil, &r)
	if err != nil {
		return "", fmt.Errorf("withdraw: %w", err)
	}
	return r.TransactionHash, nil
}

func (c *client) ChequebookBalance(ctx context.Context) (*ChequebookBalance, error) {
	var r ChequebookBalance
	if err := c.request(ctx, http.MethodGet, "/chequebook/balance", nil, nil, &r); err != nil {
		return nil, fmt.Errorf("chequebook balance: %w", err)
	}
	return &r, nil
}

type createBatchResponse struct {
	BatchID string `json:"batchID"`
}

func (c *client) CreatePostageBatch(ctx context.Context, amount *big.Int, depth uint8, o CreateBatchOptions) (string, error) {
	query := url.Values{}
	if o.Label != "" {
		query.Set("label", o.Label)
	}
	header := http.Header{}
	if o.Immutable {
		header.Set(immutableHeader, "true")
	}

	var r createBatchResponse
	path := fmt.Sprintf("/stamps/%s/%d", amount.String(), depth)
	if err := c.request(ctx, http.MethodPost, path, query, header, &r); err != nil {
		return "", fmt.Errorf("create batch: %w", err)
	}

	if o.WaitForUsable {
		if err := c.waitUntilUsable(ctx, r.BatchID); err != nil {
			return "", err
		}
	}
	return r.BatchID, nil
}

// waitUntilUsable polls the batch until the node reports it usable, meaning
// enough blocks have been synced past its creation.
func (c *client) waitUntilUsable(ctx context.Context, batchID string) error {
	for {
		b, err := c.Stamp(ctx, batchID)
		if err == nil && b.Usable {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for batch %s usable: %w", batchID, ctx.Err())
		case <-time.After(usablePollInterval):
		}
	}
}

type stampsResponse struct {
	Stamps []*postage.Batch `json:"stamps"`
}

func (c *client) Stamps(ctx context.Context) ([]*postage.Batch, error) {
	var r stampsResponse
	if err := c.request(ctx, http.MethodGet, "/stamps", nil, nil, &r); err != nil {
		return nil, fmt.Errorf("stamps: %w", err)
	}
	return r.Stamps, nil
}

func (c *client) Stamp(ctx context.Context, batchID string) (*postage.Batch, error) {
	var r postage.Batch
	if err := c.request(ctx, http.MethodGet, "/stamps/"+batchID, nil, nil, &r); err != nil {
		return nil, fmt.Errorf("stamp %s: %w", batchID, err)
	}
	return &r, nil
}

func (c *client) BatchExists(ctx context.Context, batchID string) (bool, error) {
	_, err := c.Stamp(ctx, batchID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *client) ChainState(ctx context.Context) (*postage.ChainState, error) {
	var r postage.ChainState
	if err := c.request(ctx, http.MethodGet, "/chainstate", nil, nil, &r); err != nil {
		return nil, fmt.Errorf("chain state: %w", err)
	}
	return &r, nil
}

func (c *client) Status(ctx context.Context) (*Status, error) {
	var r Status
	if err := c.request(ctx, http.MethodGet, "/health", nil, nil, &r); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	return &r, nil
}

func (c *client) request(ctx context.Context, method, path string, query url.Values, header http.Header, v interface{}) error {
	u := *c.baseURL
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return err
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	c.metrics.RequestCount.Inc()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ErrorCount.Inc()
		return err
	}
	defer resp.Body.Close()
	c.metrics.ResponseDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode == http.StatusNotFound {
		c.metrics.ErrorCount.Inc()
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.ErrorCount.Inc()
		var e jsonhttp.StatusResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Message != "" {
			return fmt.Errorf("node: %s: %s", resp.Status, e.Message)
		}
		return fmt.Errorf("node: %s", resp.Status)
	}

	if v == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
