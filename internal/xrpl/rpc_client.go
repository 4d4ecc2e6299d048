package xrpl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(method string, err error, started time.Time)
	}
)

// Client is a rippled JSON-RPC client with metrics instrumentation.
type Client struct {
	url        string
	httpClient *http.Client
	rpcMetrics RPCMetrics
}

// NewClient validates the node URL and constructs a Client.
func NewClient(rawURL string, timeout time.Duration, rpcMetrics RPCMetrics) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return &Client{
		url:        rawURL,
		httpClient: &http.Client{Timeout: timeout},
		rpcMetrics: rpcMetrics,
	}, nil
}

// ServerState fetches the node state.
func (c *Client) ServerState(ctx context.Context) (res *ServerStateResult, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("server_state", err, started)
	}()

	var out ServerStateResult
	if err = c.call(ctx, "server_state", nil, &out); err != nil {
		return nil, err
	}
	if err = out.resultStatus.check(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ledger fetches a validated ledger with expanded transactions.
func (c *Client) Ledger(ctx context.Context, ledgerIndex uint32) (res *LedgerResult, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("ledger", err, started)
	}()

	params := ledgerParams{
		LedgerIndex:  ledgerIndex,
		Transactions: true,
		Expand:       true,
	}

	var out LedgerResult
	if err = c.call(ctx, "ledger", params, &out); err != nil {
		return nil, err
	}
	if err = out.resultStatus.check(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s resultStatus) check() error {
	if s.Error == "" {
		return nil
	}
	if s.ErrorMessage != "" {
		return fmt.Errorf("rpc error %s: %s", s.Error, s.ErrorMessage)
	}
	return fmt.Errorf("rpc error %s", s.Error)
}

func (c *Client) call(ctx context.Context, method string, params any, out any) error {
	reqBody := rpcRequest{Method: method}
	if params != nil {
		reqBody.Params = []any{params}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", method, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("post %s: unexpected status %d", method, resp.StatusCode)
	}

	var envelope rpcEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if len(envelope.Result) == 0 {
		return fmt.Errorf("decode %s response: missing result", method)
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
