package usecases

import (
	"context"

	"github.com/saiisback/capy/internal/domain/entities"
)

// ContractGateway is the on-chain surface the usecases depend on. It is
// implemented by blockchain.ContractClient.
type ContractGateway interface {
	IsInitialized(ctx context.Context, address string) (bool, error)
	EnsureInitialized(ctx context.Context, address string) error

	SendInvitation(ctx context.Context, sender, to string) (string, error)
	AcceptInvitation(ctx context.Context, accepter string, invitationID uint64) (string, error)
	PendingInvitations(ctx context.Context, address string) ([]entities.Invitation, error)

	PairFor(ctx context.Context, address string) (*entities.CoParentPair, error)
	Pair(ctx context.Context, id uint64) (*entities.CoParentPair, error)
	FeedPet(ctx context.Context, caller string, pairID uint64) (string, error)
	ShowLoveToPet(ctx context.Context, caller string, pairID uint64) (string, error)

	PurchaseItem(ctx context.Context, caller string, itemID uint64) (string, error)
	UserInventory(ctx context.Context, address string) (map[uint64]uint64, error)
	MarketplaceItem(ctx context.Context, id uint64) (*entities.MarketplaceItem, error)

	ClaimGameReward(ctx context.Context, caller, game string, score uint64) (string, error)

	ClaimPetNFT(ctx context.Context, caller string, pairID uint64) (string, error)
	UserPetNFTs(ctx context.Context, address string) ([]entities.PetNFT, error)
	PetNFT(ctx context.Context, id uint64) (*entities.PetNFT, error)
	CollectionInfo(ctx context.Context) (*entities.CollectionInfo, error)
}
