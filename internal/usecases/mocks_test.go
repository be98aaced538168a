package usecases_test

import (
	"context"

	"github.com/saiisback/capy/internal/domain/entities"
	"github.com/saiisback/capy/internal/infrastructure/blockchain"
	"github.com/saiisback/capy/pkg/logger"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.Init("production")
}

// Mock ContractGateway
type MockContractGateway struct {
	mock.Mock
}

func (m *MockContractGateway) IsInitialized(ctx context.Context, address string) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}

func (m *MockContractGateway) EnsureInitialized(ctx context.Context, address string) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockContractGateway) SendInvitation(ctx context.Context, sender, to string) (string, error) {
	args := m.Called(ctx, sender, to)
	return args.String(0), args.Error(1)
}

func (m *MockContractGateway) AcceptInvitation(ctx context.Context, accepter string, invitationID uint64) (string, error) {
	args := m.Called(ctx, accepter, invitationID)
	return args.String(0), args.Error(1)
}

func (m *MockContractGateway) PendingInvitations(ctx context.Context, address string) ([]entities.Invitation, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Invitation), args.Error(1)
}

func (m *MockContractGateway) PairFor(ctx context.Context, address string) (*entities.CoParentPair, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CoParentPair), args.Error(1)
}

func (m *MockContractGateway) Pair(ctx context.Context, id uint64) (*entities.CoParentPair, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CoParentPair), args.Error(1)
}

func (m *MockContractGateway) FeedPet(ctx context.Context, caller string, pairID uint64) (string, error) {
	args := m.Called(ctx, caller, pairID)
	return args.String(0), args.Error(1)
}

func (m *MockContractGateway) ShowLoveToPet(ctx context.Context, caller string, pairID uint64) (string, error) {
	args := m.Called(ctx, caller, pairID)
	return args.String(0), args.Error(1)
}

func (m *MockContractGateway) PurchaseItem(ctx context.Context, caller string, itemID uint64) (string, error) {
	args := m.Called(ctx, caller, itemID)
	return args.String(0), args.Error(1)
}

func (m *MockContractGateway) UserInventory(ctx context.Context, address string) (map[uint64]uint64, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint64]uint64), args.Error(1)
}

func (m *MockContractGateway) MarketplaceItem(ctx context.Context, id uint64) (*entities.MarketplaceItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MarketplaceItem), args.Error(1)
}

func (m *MockContractGateway) ClaimGameReward(ctx context.Context, caller, game string, score uint64) (string, error) {
	args := m.Called(ctx, caller, game, score)
	return args.String(0), args.Error(1)
}

func (m *MockContractGateway) ClaimPetNFT(ctx context.Context, caller string, pairID uint64) (string, error) {
	args := m.Called(ctx, caller, pairID)
	return args.String(0), args.Error(1)
}

func (m *MockContractGateway) UserPetNFTs(ctx context.Context, address string) ([]entities.PetNFT, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.PetNFT), args.Error(1)
}

func (m *MockContractGateway) PetNFT(ctx context.Context, id uint64) (*entities.PetNFT, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PetNFT), args.Error(1)
}

func (m *MockContractGateway) CollectionInfo(ctx context.Context) (*entities.CollectionInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CollectionInfo), args.Error(1)
}

// Mock CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id uint64) (*entities.MarketplaceItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MarketplaceItem), args.Error(1)
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]entities.MarketplaceItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MarketplaceItem), args.Error(1)
}

func (m *MockCatalogRepository) ListAvailable(ctx context.Context, category string) ([]entities.MarketplaceItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MarketplaceItem), args.Error(1)
}

func (m *MockCatalogRepository) Upsert(ctx context.Context, item *entities.MarketplaceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) SetAvailability(ctx context.Context, id uint64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *MockCatalogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock WalletBridge
type MockWalletBridge struct {
	mock.Mock
}

func (m *MockWalletBridge) Installed() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockWalletBridge) Connect(ctx context.Context) (*entities.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockWalletBridge) Disconnect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWalletBridge) SignAndSubmitTransaction(ctx context.Context, payload blockchain.EntryFunctionPayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}
