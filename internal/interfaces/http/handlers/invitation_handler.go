package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/internal/interfaces/http/middleware"
	"github.com/saiisback/capy/internal/interfaces/http/response"
	"github.com/saiisback/capy/internal/usecases"
)

type invitationService interface {
	Send(ctx context.Context, sender *entities.Account, to string) (*usecases.SendResult, error)
	Pending(ctx context.Context, account *entities.Account) ([]entities.Invitation, error)
	Accept(ctx context.Context, account *entities.Account, invitationID uint64) (*usecases.AcceptResult, error)
}

// InvitationHandler handles co-parenting invitation endpoints
type InvitationHandler struct {
	invitationUsecase invitationService
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationUsecase *usecases.InvitationUsecase) *InvitationHandler {
	return &InvitationHandler{invitationUsecase: invitationUsecase}
}

type sendInvitationInput struct {
	To string `json:"to" binding:"required"`
}

// Send sends a co-parenting invitation
// POST /api/v1/invitations
func (h *InvitationHandler) Send(c *gin.Context) {
	var input sendInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	result, err := h.invitationUsecase.Send(c.Request.Context(), account, input.To)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":    "Invitation sent",
		"txHash":     result.TxHash,
		"invitation": result.Invitation,
	})
}

// Pending lists invitations awaiting the caller's answer
// GET /api/v1/invitations/pending
func (h *InvitationHandler) Pending(c *gin.Context) {
	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	invitations, err := h.invitationUsecase.Pending(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	if invitations == nil {
		invitations = []entities.Invitation{}
	}

	response.Success(c, http.StatusOK, gin.H{"invitations": invitations})
}

// Accept accepts a pending invitation
// POST /api/v1/invitations/:id/accept
func (h *InvitationHandler) Accept(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid invitation id"))
		return
	}

	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	result, err := h.invitationUsecase.Accept(c.Request.Context(), account, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
