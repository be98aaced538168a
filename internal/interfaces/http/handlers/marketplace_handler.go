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

type marketplaceService interface {
	Catalog(ctx context.Context, category string) ([]entities.MarketplaceItem, error)
	Item(ctx context.Context, id uint64) (*entities.MarketplaceItem, error)
	Purchase(ctx context.Context, account *entities.Account, itemID uint64) (string, error)
}

// MarketplaceHandler handles catalog and purchase endpoints
type MarketplaceHandler struct {
	marketplaceUsecase marketplaceService
}

// NewMarketplaceHandler creates a new marketplace handler
func NewMarketplaceHandler(marketplaceUsecase *usecases.MarketplaceUsecase) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceUsecase: marketplaceUsecase}
}

// Catalog lists items for sale, optionally filtered by ?category=
// GET /api/v1/marketplace/items
func (h *MarketplaceHandler) Catalog(c *gin.Context) {
	items, err := h.marketplaceUsecase.Catalog(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []entities.MarketplaceItem{}
	}

	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Item returns one catalog entry
// GET /api/v1/marketplace/items/:id
func (h *MarketplaceHandler) Item(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid item id"))
		return
	}

	item, err := h.marketplaceUsecase.Item(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// Purchase buys an item for the connected account
// POST /api/v1/marketplace/items/:id/purchase
func (h *MarketplaceHandler) Purchase(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid item id"))
		return
	}

	account, ok := middleware.GetAccount(c)
	if !ok {
		response.Error(c, domainerrors.ErrWalletNotConnected)
		return
	}

	hash, err := h.marketplaceUsecase.Purchase(c.Request.Context(), account, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Item purchased",
		"txHash":  hash,
	})
}
