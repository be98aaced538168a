package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/internal/infrastructure/blockchain"
	"github.com/saiisback/capy/pkg/crypto"
	"github.com/saiisback/capy/pkg/jwt"
	"github.com/saiisback/capy/pkg/logger"
	"github.com/saiisback/capy/pkg/redis"
	"go.uber.org/zap"
)

// sessionStore is the persistence surface for wallet sessions, implemented by
// redis.SessionStore.
type sessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// WalletUsecase handles wallet connection business logic
type WalletUsecase struct {
	bridge     blockchain.WalletBridge
	sessions   sessionStore
	tokens     *jwt.SessionTokenService
	sessionTTL time.Duration
}

// ConnectResult carries the new session alongside the connection state.
type ConnectResult struct {
	State     entities.ConnectionState `json:"state"`
	SessionID string                   `json:"sessionId"`
	Token     string                   `json:"token"`
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(bridge blockchain.WalletBridge, sessions sessionStore, tokens *jwt.SessionTokenService, sessionTTL time.Duration) *WalletUsecase {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &WalletUsecase{
		bridge:     bridge,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// Connect asks the wallet for an account and opens a session for it.
func (u *WalletUsecase) Connect(ctx context.Context) (*ConnectResult, error) {
	if !u.bridge.Installed() {
		return &ConnectResult{State: entities.FailedState("no wallet installed")}, domainerrors.ErrWalletNotInstalled
	}

	account, err := u.bridge.Connect(ctx)
	if err != nil {
		reason := "wallet connection failed"
		if errors.Is(err, domainerrors.ErrSignatureDeclined) {
			reason = "connection request declined"
		}
		return &ConnectResult{State: entities.FailedState(reason)}, err
	}

	// Rotated or keyless accounts legitimately fail the derivation check, so
	// a mismatch is logged but never blocks the connection.
	if account.AccountType == entities.AccountTypeEd25519 && account.PublicKey != "" {
		if !crypto.MatchesAddress(account.Address, account.PublicKey) {
			logger.WithContext(ctx).Warn("public key does not derive account address",
				zap.String("address", account.Address))
		}
	}

	sessionID := uuid.New()
	data := &redis.SessionData{
		Phase:       string(entities.PhaseConnected),
		Address:     account.Address,
		PublicKey:   account.PublicKey,
		AccountType: string(account.AccountType),
	}
	if err := u.sessions.CreateSession(ctx, sessionID.String(), data, u.sessionTTL); err != nil {
		return nil, err
	}

	token, err := u.tokens.Generate(sessionID, account.Address)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info("wallet connected",
		zap.String("address", account.Address),
		zap.String("account_type", string(account.AccountType)))

	return &ConnectResult{
		State:     entities.ConnectedState(*account),
		SessionID: sessionID.String(),
		Token:     token,
	}, nil
}

// Disconnect closes the session and tells the wallet to revoke it.
func (u *WalletUsecase) Disconnect(ctx context.Context, sessionID string) error {
	if err := u.bridge.Disconnect(ctx); err != nil {
		// Revocation is best effort; the session is gone either way.
		logger.WithContext(ctx).Warn("wallet disconnect failed", zap.Error(err))
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// State resolves the connection state for a session. An unknown or expired
// session is simply disconnected.
func (u *WalletUsecase) State(ctx context.Context, sessionID string) entities.ConnectionState {
	data, err := u.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return entities.Disconnected()
	}
	return sessionState(data)
}

// Session resolves the account behind a session, or ErrWalletNotConnected.
func (u *WalletUsecase) Session(ctx context.Context, sessionID string) (*entities.Account, error) {
	data, err := u.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, domainerrors.ErrWalletNotConnected
	}
	state := sessionState(data)
	if !state.Connected() {
		return nil, domainerrors.ErrWalletNotConnected
	}
	return state.Account, nil
}

// ValidateToken checks a session token and returns its claims.
func (u *WalletUsecase) ValidateToken(token string) (*jwt.Claims, error) {
	return u.tokens.Validate(token)
}

func sessionState(data *redis.SessionData) entities.ConnectionState {
	switch entities.ConnectionPhase(data.Phase) {
	case entities.PhaseConnected:
		if data.Address == "" {
			return entities.Disconnected()
		}
		return entities.ConnectedState(entities.Account{
			Address:     data.Address,
			PublicKey:   data.PublicKey,
			AccountType: entities.ParseAccountType(data.AccountType),
		})
	case entities.PhaseFailed:
		return entities.FailedState(data.LastError)
	case entities.PhaseConnecting:
		return entities.Connecting()
	default:
		return entities.Disconnected()
	}
}
