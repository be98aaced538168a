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

type inventoryService interface {
	Detailed(ctx context.Context, account *entities.Account) ([]entities.InventoryItem, error)
	PetNFTs(ctx context.Context, account *entities.Account) ([]entities.PetNFT, error)
	ClaimPetNFT(ctx context.Context, account *entities.Account) (string, error)
	Collection(ctx context.Context) (*entities.CollectionInfo, error)
}

// InventoryHandler handles owned items and pet NFT endpoints
type InventoryHandler struct {
	inventoryUsecase inventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryUsecase *usecases.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{inventoryUsecase: inventoryUsecase}
}

// Items lists the caller's owned items with catalog detail
// GET /api/v1/inventory
func (h *InventoryHandler) Items(c *gin.Context) {
	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	items, err := h.inventoryUsecase.Detailed(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []entities.InventoryItem{}
	}

	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// PetNFTs lists the caller's minted pet NFTs
// GET /api/v1/nfts
func (h *InventoryHandler) PetNFTs(c *gin.Context) {
	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	nfts, err := h.inventoryUsecase.PetNFTs(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	if nfts == nil {
		nfts = []entities.PetNFT{}
	}

	response.Success(c, http.StatusOK, gin.H{"nfts": nfts})
}

// ClaimPetNFT mints the caller's pair pet as an NFT
// POST /api/v1/nfts/claim
func (h *InventoryHandler) ClaimPetNFT(c *gin.Context) {
	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	hash, err := h.inventoryUsecase.ClaimPetNFT(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Pet NFT claimed",
		"txHash":  hash,
	})
}

// Collection returns the NFT collection metadata
// GET /api/v1/nfts/collection
func (h *InventoryHandler) Collection(c *gin.Context) {
	info, err := h.inventoryUsecase.Collection(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, info)
}
