package usecases_test

import (
	"context"
	"testing"

	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarketplaceUsecase_Purchase(t *testing.T) {
	contract := new(MockContractGateway)
	catalog := new(MockCatalogRepository)
	catalog.On("GetByID", mock.Anything, uint64(3)).Return(&entities.MarketplaceItem{ID: 3, Name: "Special Treats", Available: true}, nil)
	contract.On("PurchaseItem", mock.Anything, testAccount.Address, uint64(3)).Return("0xhash", nil)

	u := usecases.NewMarketplaceUsecase(contract, catalog)

	hash, err := u.Purchase(context.Background(), testAccount, 3)
	require.NoError(t, err)
	assert.Equal(t, "0xhash", hash)
}

func TestMarketplaceUsecase_Purchase_UnknownItem(t *testing.T) {
	contract := new(MockContractGateway)
	catalog := new(MockCatalogRepository)
	catalog.On("GetByID", mock.Anything, uint64(99)).Return(nil, domainerrors.ErrNotFound)

	u := usecases.NewMarketplaceUsecase(contract, catalog)

	_, err := u.Purchase(context.Background(), testAccount, 99)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
	contract.AssertNotCalled(t, "PurchaseItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarketplaceUsecase_Purchase_Unavailable(t *testing.T) {
	contract := new(MockContractGateway)
	catalog := new(MockCatalogRepository)
	catalog.On("GetByID", mock.Anything, uint64(4)).Return(&entities.MarketplaceItem{ID: 4, Available: false}, nil)

	u := usecases.NewMarketplaceUsecase(contract, catalog)

	_, err := u.Purchase(context.Background(), testAccount, 4)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestMarketplaceUsecase_Purchase_AlreadyOwned(t *testing.T) {
	contract := new(MockContractGateway)
	catalog := new(MockCatalogRepository)
	catalog.On("GetByID", mock.Anything, uint64(5)).Return(&entities.MarketplaceItem{ID: 5, Available: true}, nil)
	contract.On("PurchaseItem", mock.Anything, testAccount.Address, uint64(5)).Return("", domainerrors.ErrItemAlreadyOwned)

	u := usecases.NewMarketplaceUsecase(contract, catalog)

	_, err := u.Purchase(context.Background(), testAccount, 5)
	assert.ErrorIs(t, err, domainerrors.ErrItemAlreadyOwned)
}

func TestMarketplaceUsecase_Catalog(t *testing.T) {
	catalog := new(MockCatalogRepository)
	items := []entities.MarketplaceItem{{ID: 1, Name: "Blue Ball"}}
	catalog.On("ListAvailable", mock.Anything, "").Return(items, nil)

	u := usecases.NewMarketplaceUsecase(new(MockContractGateway), catalog)

	got, err := u.Catalog(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestMarketplaceUsecase_Catalog_CategoryPassedThrough(t *testing.T) {
	catalog := new(MockCatalogRepository)
	toys := []entities.MarketplaceItem{{ID: 4, Name: "Blue Ball", Category: "toys"}}
	catalog.On("ListAvailable", mock.Anything, "toys").Return(toys, nil)

	u := usecases.NewMarketplaceUsecase(new(MockContractGateway), catalog)

	got, err := u.Catalog(context.Background(), "toys")
	require.NoError(t, err)
	assert.Equal(t, toys, got)
	catalog.AssertExpectations(t)
}
