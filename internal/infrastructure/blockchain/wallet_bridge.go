package blockchain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
)

// userRejectionCode is the conventional error code wallets return when the
// user dismisses an approval prompt.
const userRejectionCode = 4001

// WalletBridge abstracts the user's wallet. Connect and
// SignAndSubmitTransaction both block on user approval, so every call takes a
// context with the caller's patience built in.
type WalletBridge interface {
	// Installed reports whether a wallet is reachable at all.
	Installed() bool
	// Connect asks the wallet to expose an account. A user rejection maps to
	// ErrSignatureDeclined.
	Connect(ctx context.Context) (*entities.Account, error)
	// Disconnect revokes the connection on the wallet side. Best effort.
	Disconnect(ctx context.Context) error
	// SignAndSubmitTransaction has the wallet sign and submit the payload and
	// returns the transaction hash.
	SignAndSubmitTransaction(ctx context.Context, payload EntryFunctionPayload) (string, error)
}

// HTTPWalletBridge talks to a wallet companion endpoint over HTTP. An empty
// base URL behaves like a missing extension.
type HTTPWalletBridge struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPWalletBridge creates a bridge for the given endpoint.
func NewHTTPWalletBridge(baseURL string, timeout time.Duration) *HTTPWalletBridge {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &HTTPWalletBridge{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (b *HTTPWalletBridge) Installed() bool {
	return b.baseURL != ""
}

type bridgeAccountResponse struct {
	Address     string `json:"address"`
	PublicKey   string `json:"publicKey"`
	AccountType string `json:"accountType"`
}

type bridgeErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (b *HTTPWalletBridge) Connect(ctx context.Context) (*entities.Account, error) {
	if !b.Installed() {
		return nil, domainerrors.ErrWalletNotInstalled
	}

	body, err := b.post(ctx, "/connect", nil)
	if err != nil {
		return nil, err
	}

	var account bridgeAccountResponse
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("decode wallet account: %w", err)
	}
	if account.Address == "" {
		return nil, fmt.Errorf("wallet returned no account")
	}

	return &entities.Account{
		Address:     account.Address,
		PublicKey:   account.PublicKey,
		AccountType: entities.ParseAccountType(account.AccountType),
	}, nil
}

func (b *HTTPWalletBridge) Disconnect(ctx context.Context) error {
	if !b.Installed() {
		return domainerrors.ErrWalletNotInstalled
	}
	_, err := b.post(ctx, "/disconnect", nil)
	return err
}

func (b *HTTPWalletBridge) SignAndSubmitTransaction(ctx context.Context, payload EntryFunctionPayload) (string, error) {
	if !b.Installed() {
		return "", domainerrors.ErrWalletNotInstalled
	}

	body, err := b.post(ctx, "/signAndSubmitTransaction", payload)
	if err != nil {
		return "", err
	}

	var result struct {
		Hash string `json:"hash"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode wallet submission: %w", err)
	}
	if result.Hash == "" {
		return "", fmt.Errorf("wallet returned no transaction hash")
	}
	return result.Hash, nil
}

func (b *HTTPWalletBridge) post(ctx context.Context, path string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wallet bridge unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var bridgeErr bridgeErrorResponse
		if json.Unmarshal(body, &bridgeErr) == nil && bridgeErr.Code == userRejectionCode {
			return nil, domainerrors.ErrSignatureDeclined
		}
		return nil, fmt.Errorf("wallet bridge %s: status %d: %s", path, resp.StatusCode, truncate(body))
	}
	return body, nil
}
