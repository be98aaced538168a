package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/internal/interfaces/http/middleware"
	"github.com/saiisback/capy/internal/interfaces/http/response"
	"github.com/saiisback/capy/internal/usecases"
	"github.com/saiisback/capy/pkg/format"
)

type walletService interface {
	Connect(ctx context.Context) (*usecases.ConnectResult, error)
	Disconnect(ctx context.Context, sessionID string) error
	State(ctx context.Context, sessionID string) entities.ConnectionState
}

// WalletHandler handles wallet connection endpoints
type WalletHandler struct {
	walletUsecase walletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase *usecases.WalletUsecase) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase}
}

// Connect opens a wallet session
// POST /api/v1/wallet/connect
func (h *WalletHandler) Connect(c *gin.Context) {
	result, err := h.walletUsecase.Connect(c.Request.Context())
	if err != nil {
		// The failed state is part of the payload so clients can render it.
		if result != nil {
			status := http.StatusBadGateway
			switch err {
			case domainerrors.ErrWalletNotInstalled:
				status = http.StatusServiceUnavailable
			case domainerrors.ErrSignatureDeclined:
				status = http.StatusForbidden
			}
			c.JSON(status, gin.H{"state": result.State, "message": err.Error()})
			return
		}
		response.Error(c, err)
		return
	}

	payload := gin.H{
		"state":     result.State,
		"sessionId": result.SessionID,
		"token":     result.Token,
	}
	if result.State.Account != nil {
		payload["display"] = accountDisplay(result.State.Account)
	}
	response.Success(c, http.StatusOK, payload)
}

// Disconnect closes the current wallet session
// POST /api/v1/wallet/disconnect
func (h *WalletHandler) Disconnect(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("No active session"))
		return
	}

	if err := h.walletUsecase.Disconnect(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"state": entities.Disconnected(),
	})
}

// State returns the session's connection state
// GET /api/v1/wallet/state
func (h *WalletHandler) State(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		response.Success(c, http.StatusOK, gin.H{"state": entities.Disconnected()})
		return
	}

	state := h.walletUsecase.State(c.Request.Context(), sessionID)
	payload := gin.H{"state": state}
	if state.Account != nil {
		payload["display"] = accountDisplay(state.Account)
	}
	response.Success(c, http.StatusOK, payload)
}

// accountDisplay carries the presentation hints clients use to render
// the connected account chip.
func accountDisplay(account *entities.Account) gin.H {
	return gin.H{
		"shortAddress": format.ShortenAddress(account.Address),
		"color":        format.AccountTypeColor(string(account.AccountType)),
	}
}
