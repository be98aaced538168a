package usecases

import (
	"context"
	"errors"

	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/internal/domain/repositories"
	"github.com/saiisback/capy/pkg/logger"
	"go.uber.org/zap"
)

// MarketplaceUsecase handles catalog browsing and purchases
type MarketplaceUsecase struct {
	contract ContractGateway
	catalog  repositories.CatalogRepository
}

// NewMarketplaceUsecase creates a new marketplace usecase
func NewMarketplaceUsecase(contract ContractGateway, catalog repositories.CatalogRepository) *MarketplaceUsecase {
	return &MarketplaceUsecase{contract: contract, catalog: catalog}
}

// Catalog lists items currently offered for sale, optionally filtered to one
// category.
func (u *MarketplaceUsecase) Catalog(ctx context.Context, category string) ([]entities.MarketplaceItem, error) {
	return u.catalog.ListAvailable(ctx, category)
}

// Item returns one catalog entry.
func (u *MarketplaceUsecase) Item(ctx context.Context, id uint64) (*entities.MarketplaceItem, error) {
	item, err := u.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Purchase buys an item for the connected account.
func (u *MarketplaceUsecase) Purchase(ctx context.Context, account *entities.Account, itemID uint64) (string, error) {
	item, err := u.Item(ctx, itemID)
	if err != nil {
		return "", err
	}
	if !item.Available {
		return "", domainerrors.ErrItemNotFound
	}

	hash, err := u.contract.PurchaseItem(ctx, account.Address, itemID)
	if err != nil {
		return "", err
	}

	logger.WithContext(ctx).Info("item purchased",
		zap.Uint64("item_id", itemID),
		zap.String("buyer", account.Address),
		zap.String("tx_hash", hash))
	return hash, nil
}
