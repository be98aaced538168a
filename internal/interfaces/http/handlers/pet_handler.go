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
)

type petService interface {
	CoParent(ctx context.Context, account *entities.Account) (*entities.CoParentPair, error)
	Feed(ctx context.Context, account *entities.Account) (*usecases.CareResult, error)
	ShowLove(ctx context.Context, account *entities.Account) (*usecases.CareResult, error)
}

// PetHandler handles shared pet endpoints
type PetHandler struct {
	petUsecase petService
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petUsecase *usecases.PetUsecase) *PetHandler {
	return &PetHandler{petUsecase: petUsecase}
}

// CoParent returns the caller's pair with live pet stats
// GET /api/v1/coparent
func (h *PetHandler) CoParent(c *gin.Context) {
	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	pair, err := h.petUsecase.CoParent(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"pair":    pair,
		"partner": pair.PartnerOf(account.Address),
	})
}

// Feed feeds the shared pet
// POST /api/v1/pet/feed
func (h *PetHandler) Feed(c *gin.Context) {
	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	result, err := h.petUsecase.Feed(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ShowLove raises the pet's happiness
// POST /api/v1/pet/love
func (h *PetHandler) ShowLove(c *gin.Context) {
	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	result, err := h.petUsecase.ShowLove(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
