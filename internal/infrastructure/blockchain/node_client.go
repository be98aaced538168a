package blockchain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "github.com/saiisback/capy/internal/domain/errors"
)

// NodeClient talks to an Aptos fullnode REST API.
type NodeClient struct {
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
	waitTimeout  time.Duration
}

// AccountResource is a typed Move resource attached to an account.
type AccountResource struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// NewNodeClient creates a fullnode client for the given base URL
// (e.g. https://fullnode.testnet.aptoslabs.com).
func NewNodeClient(baseURL string, pollInterval, waitTimeout time.Duration) *NodeClient {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	if waitTimeout <= 0 {
		waitTimeout = time.Minute
	}
	return &NodeClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		pollInterval: pollInterval,
		waitTimeout:  waitTimeout,
	}
}

// View executes a read-only view function and returns the raw return values.
func (c *NodeClient) View(ctx context.Context, req ViewRequest) ([]json.RawMessage, error) {
	if req.TypeArguments == nil {
		req.TypeArguments = []string{}
	}
	if req.Arguments == nil {
		req.Arguments = []any{}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/view", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrLedgerUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrLedgerUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		if abort := domainerrors.ClassifyAbort(string(payload)); abort != nil {
			return nil, abort
		}
		return nil, fmt.Errorf("%w: view %s: status %d: %s", domainerrors.ErrLedgerUnavailable, req.Function, resp.StatusCode, truncate(payload))
	}

	var values []json.RawMessage
	if err := json.Unmarshal(payload, &values); err != nil {
		return nil, fmt.Errorf("decode view response: %w", err)
	}
	return values, nil
}

// AccountResources lists all Move resources attached to an account. A missing
// account maps to ErrNotFound.
func (c *NodeClient) AccountResources(ctx context.Context, address string) ([]AccountResource, error) {
	endpoint := c.baseURL + "/v1/accounts/" + url.PathEscape(address) + "/resources"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrLedgerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domainerrors.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: resources %s: status %d: %s", domainerrors.ErrLedgerUnavailable, address, resp.StatusCode, truncate(payload))
	}

	var resources []AccountResource
	if err := json.NewDecoder(resp.Body).Decode(&resources); err != nil {
		return nil, fmt.Errorf("decode resources response: %w", err)
	}
	return resources, nil
}

// HasResource reports whether the account holds a resource of the given type.
func (c *NodeClient) HasResource(ctx context.Context, address, resourceType string) (bool, error) {
	resources, err := c.AccountResources(ctx, address)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	for _, r := range resources {
		if r.Type == resourceType {
			return true, nil
		}
	}
	return false, nil
}

// WaitForTransaction polls the node until the transaction commits, fails, or
// the wait timeout passes. A committed-but-aborted transaction returns the
// classified abort error when recognized.
func (c *NodeClient) WaitForTransaction(ctx context.Context, hash string) (*TransactionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.waitTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		result, err := c.transactionByHash(ctx, hash)
		if err == nil && result != nil && !result.Pending() {
			if !result.Success {
				if abort := domainerrors.ClassifyAbort(result.VMStatus); abort != nil {
					return result, abort
				}
				return result, fmt.Errorf("transaction %s failed: %s", hash, result.VMStatus)
			}
			return result, nil
		}
		if err != nil && err != domainerrors.ErrNotFound {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, domainerrors.ErrTransactionTimeout
		case <-ticker.C:
		}
	}
}

func (c *NodeClient) transactionByHash(ctx context.Context, hash string) (*TransactionResult, error) {
	endpoint := c.baseURL + "/v1/transactions/by_hash/" + url.PathEscape(hash)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrLedgerUnavailable, err)
	}
	defer resp.Body.Close()

	// The node returns 404 until the transaction reaches the mempool.
	if resp.StatusCode == http.StatusNotFound {
		return nil, domainerrors.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: tx %s: status %d: %s", domainerrors.ErrLedgerUnavailable, hash, resp.StatusCode, truncate(payload))
	}

	var result TransactionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode transaction response: %w", err)
	}
	return &result, nil
}

func truncate(b []byte) string {
	const max = 256
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
