package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/internal/interfaces/http/middleware"
	"github.com/saiisback/capy/internal/interfaces/http/response"
	"github.com/saiisback/capy/internal/usecases"
)

// Screen names the view a client should render for the current state.
type Screen string

const (
	ScreenConnect     Screen = "connect"
	ScreenInvitations Screen = "invitations"
	ScreenInvite      Screen = "invite"
	ScreenDashboard   Screen = "dashboard"
)

// StateHandler resolves the app state into a single screen decision
type StateHandler struct {
	invitationUsecase invitationService
	petUsecase        petService
}

// NewStateHandler creates a new state handler
func NewStateHandler(invitationUsecase *usecases.InvitationUsecase, petUsecase *usecases.PetUsecase) *StateHandler {
	return &StateHandler{
		invitationUsecase: invitationUsecase,
		petUsecase:        petUsecase,
	}
}

// Resolve decides which screen the client should show: connect when no
// wallet session exists, the dashboard when a pair exists, the invitation
// inbox when one is waiting, and the invite screen otherwise.
// GET /api/v1/state
func (h *StateHandler) Resolve(c *gin.Context) {
	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Success(c, http.StatusOK, gin.H{
			"screen": ScreenConnect,
			"state":  entities.Disconnected(),
		})
		return
	}

	state := entities.ConnectedState(*account)

	pair, err := h.petUsecase.CoParent(c.Request.Context(), account)
	if err == nil {
		response.Success(c, http.StatusOK, gin.H{
			"screen": ScreenDashboard,
			"state":  state,
			"pair":   pair,
		})
		return
	}
	if !errors.Is(err, domainerrors.ErrNoCoParentPair) {
		response.Error(c, err)
		return
	}

	pending, err := h.invitationUsecase.Pending(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(pending) > 0 {
		response.Success(c, http.StatusOK, gin.H{
			"screen":      ScreenInvitations,
			"state":       state,
			"invitations": pending,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"screen": ScreenInvite,
		"state":  state,
	})
}
