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

type arcadeService interface {
	Start(ctx context.Context, kind entities.GameKind) (*entities.GameSession, error)
	Game(gameID string) (*entities.GameSession, error)
	RecordHit(gameID string) (*entities.GameSession, error)
	MoveTile(gameID string, tile int) (*entities.GameSession, error)
	Finish(gameID string) (*entities.GameSession, error)
	ClaimReward(ctx context.Context, account *entities.Account, gameID string) (*usecases.ClaimRewardResult, error)
}

// ArcadeHandler handles mini-game endpoints
type ArcadeHandler struct {
	arcadeUsecase arcadeService
}

// NewArcadeHandler creates a new arcade handler
func NewArcadeHandler(arcadeUsecase *usecases.ArcadeUsecase) *ArcadeHandler {
	return &ArcadeHandler{arcadeUsecase: arcadeUsecase}
}

// Start opens a new round
// POST /api/v1/arcade/:kind/start
func (h *ArcadeHandler) Start(c *gin.Context) {
	game, err := h.arcadeUsecase.Start(c.Request.Context(), entities.GameKind(c.Param("kind")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, game)
}

// Game returns the round state
// GET /api/v1/arcade/games/:id
func (h *ArcadeHandler) Game(c *gin.Context) {
	game, err := h.arcadeUsecase.Game(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, game)
}

// Hit scores a hit in a target or chase round
// POST /api/v1/arcade/games/:id/hit
func (h *ArcadeHandler) Hit(c *gin.Context) {
	game, err := h.arcadeUsecase.RecordHit(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, game)
}

type moveTileInput struct {
	Tile int `json:"tile" binding:"required,min=1,max=8"`
}

// Move slides a puzzle tile
// POST /api/v1/arcade/games/:id/move
func (h *ArcadeHandler) Move(c *gin.Context) {
	var input moveTileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	game, err := h.arcadeUsecase.MoveTile(c.Param("id"), input.Tile)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, game)
}

// Finish ends a running round
// POST /api/v1/arcade/games/:id/finish
func (h *ArcadeHandler) Finish(c *gin.Context) {
	game, err := h.arcadeUsecase.Finish(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, game)
}

// Claim converts a finished round's score into on-chain coins
// POST /api/v1/arcade/games/:id/claim
func (h *ArcadeHandler) Claim(c *gin.Context) {
	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	result, err := h.arcadeUsecase.ClaimReward(c.Request.Context(), account, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
