package usecases

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/internal/domain/repositories"
	"github.com/saiisback/capy/pkg/logger"
	"go.uber.org/zap"
)

// InventoryUsecase resolves owned items and minted pet NFTs
type InventoryUsecase struct {
	contract ContractGateway
	catalog  repositories.CatalogRepository
}

// NewInventoryUsecase creates a new inventory usecase
func NewInventoryUsecase(contract ContractGateway, catalog repositories.CatalogRepository) *InventoryUsecase {
	return &InventoryUsecase{contract: contract, catalog: catalog}
}

// Detailed returns the account's owned items enriched with catalog metadata.
// Ownership comes from the ledger; the catalog only fills in display fields.
func (u *InventoryUsecase) Detailed(ctx context.Context, account *entities.Account) ([]entities.InventoryItem, error) {
	owned, err := u.contract.UserInventory(ctx, account.Address)
	if err != nil {
		return nil, err
	}

	items := make([]entities.InventoryItem, 0, len(owned))
	for id, purchasedAt := range owned {
		entry := entities.InventoryItem{
			ItemID:      id,
			Name:        fmt.Sprintf("Item #%d", id),
			PurchasedAt: purchasedAt,
		}
		if meta, err := u.catalog.GetByID(ctx, id); err == nil {
			entry.Name = meta.Name
			entry.Description = meta.Description
			entry.ItemType = meta.ItemType
			entry.ImageURL = meta.ImageURL
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		} else {
			logger.WithContext(ctx).Warn("owned item missing from catalog",
				zap.Uint64("item_id", id))
		}
		items = append(items, entry)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items, nil
}

// PetNFTs lists the account's minted pet NFTs.
func (u *InventoryUsecase) PetNFTs(ctx context.Context, account *entities.Account) ([]entities.PetNFT, error) {
	return u.contract.UserPetNFTs(ctx, account.Address)
}

// ClaimPetNFT mints the account's pair pet as an NFT.
func (u *InventoryUsecase) ClaimPetNFT(ctx context.Context, account *entities.Account) (string, error) {
	pair, err := u.contract.PairFor(ctx, account.Address)
	if err != nil {
		return "", err
	}

	hash, err := u.contract.ClaimPetNFT(ctx, account.Address, pair.ID)
	if err != nil {
		return "", err
	}

	logger.WithContext(ctx).Info("pet nft claimed",
		zap.Uint64("pair_id", pair.ID),
		zap.String("tx_hash", hash))
	return hash, nil
}

// Collection returns the NFT collection metadata.
func (u *InventoryUsecase) Collection(ctx context.Context) (*entities.CollectionInfo, error) {
	return u.contract.CollectionInfo(ctx)
}
