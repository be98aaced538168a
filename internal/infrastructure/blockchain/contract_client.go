package blockchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/pkg/logger"
	"go.uber.org/zap"
)

// nodeAPI is the slice of the fullnode client the contract client needs.
type nodeAPI interface {
	View(ctx context.Context, req ViewRequest) ([]json.RawMessage, error)
	HasResource(ctx context.Context, address, resourceType string) (bool, error)
	WaitForTransaction(ctx context.Context, hash string) (*TransactionResult, error)
}

// ContractClient wraps the capy Move module: entry functions go through the
// wallet bridge, views through the fullnode.
type ContractClient struct {
	node         nodeAPI
	wallet       WalletBridge
	contractAddr string
}

// NewContractClient creates a client bound to the module at contractAddr.
func NewContractClient(node nodeAPI, wallet WalletBridge, contractAddr string) *ContractClient {
	return &ContractClient{
		node:         node,
		wallet:       wallet,
		contractAddr: contractAddr,
	}
}

func (c *ContractClient) fn(name string) string {
	return c.contractAddr + "::capy::" + name
}

// capyDataResource is the per-account store the initialize entry creates.
func (c *ContractClient) capyDataResource() string {
	return c.contractAddr + "::capy::CapyData"
}

func u64Arg(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// submit signs, submits, and waits for the transaction to commit.
func (c *ContractClient) submit(ctx context.Context, payload EntryFunctionPayload) (string, error) {
	hash, err := c.wallet.SignAndSubmitTransaction(ctx, payload)
	if err != nil {
		return "", err
	}
	if _, err := c.node.WaitForTransaction(ctx, hash); err != nil {
		return hash, err
	}
	return hash, nil
}

// IsInitialized reports whether the account holds the module's per-user store.
func (c *ContractClient) IsInitialized(ctx context.Context, address string) (bool, error) {
	return c.node.HasResource(ctx, address, c.capyDataResource())
}

// Initialize creates the account's per-user store.
func (c *ContractClient) Initialize(ctx context.Context) (string, error) {
	return c.submit(ctx, NewEntryFunctionPayload(c.fn("initialize")))
}

// EnsureInitialized initializes the account when its store is missing. A
// concurrent initialization surfacing E_ALREADY_INITIALIZED counts as success.
func (c *ContractClient) EnsureInitialized(ctx context.Context, address string) error {
	ok, err := c.IsInitialized(ctx, address)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if _, err := c.Initialize(ctx); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyInitialized) {
			return nil
		}
		return err
	}
	return nil
}

// withInitRetry runs op, and when the contract aborts with a missing store it
// initializes the account and retries exactly once.
func (c *ContractClient) withInitRetry(ctx context.Context, address string, op func() (string, error)) (string, error) {
	hash, err := op()
	if err == nil || !errors.Is(err, domainerrors.ErrNotInitialized) {
		return hash, err
	}
	logger.WithContext(ctx).Info("account store missing, initializing before retry",
		zap.String("address", address))
	if err := c.EnsureInitialized(ctx, address); err != nil {
		return "", err
	}
	return op()
}

// SendInvitation sends a co-parenting invitation to the given address.
func (c *ContractClient) SendInvitation(ctx context.Context, sender, to string) (string, error) {
	return c.withInitRetry(ctx, sender, func() (string, error) {
		return c.submit(ctx, NewEntryFunctionPayload(c.fn("send_invitation"), to))
	})
}

// AcceptInvitation accepts a pending invitation, creating the pair on-chain.
func (c *ContractClient) AcceptInvitation(ctx context.Context, accepter string, invitationID uint64) (string, error) {
	return c.withInitRetry(ctx, accepter, func() (string, error) {
		return c.submit(ctx, NewEntryFunctionPayload(c.fn("accept_invitation"), u64Arg(invitationID)))
	})
}

// FeedPet feeds the pair's shared pet.
func (c *ContractClient) FeedPet(ctx context.Context, caller string, pairID uint64) (string, error) {
	return c.withInitRetry(ctx, caller, func() (string, error) {
		return c.submit(ctx, NewEntryFunctionPayload(c.fn("feed_pet"), u64Arg(pairID)))
	})
}

// ShowLoveToPet raises the pet's happiness.
func (c *ContractClient) ShowLoveToPet(ctx context.Context, caller string, pairID uint64) (string, error) {
	return c.withInitRetry(ctx, caller, func() (string, error) {
		return c.submit(ctx, NewEntryFunctionPayload(c.fn("show_love_to_pet"), u64Arg(pairID)))
	})
}

// PurchaseItem buys a marketplace item for the caller.
func (c *ContractClient) PurchaseItem(ctx context.Context, caller string, itemID uint64) (string, error) {
	return c.withInitRetry(ctx, caller, func() (string, error) {
		return c.submit(ctx, NewEntryFunctionPayload(c.fn("purchase_item"), u64Arg(itemID)))
	})
}

// ClaimGameReward submits the raw round score; the contract converts it into
// coins per game.
func (c *ContractClient) ClaimGameReward(ctx context.Context, caller, game string, score uint64) (string, error) {
	return c.withInitRetry(ctx, caller, func() (string, error) {
		return c.submit(ctx, NewEntryFunctionPayload(c.fn("claim_game_reward"), game, u64Arg(score)))
	})
}

// ClaimPetNFT mints the pair's pet as an NFT for the caller.
func (c *ContractClient) ClaimPetNFT(ctx context.Context, caller string, pairID uint64) (string, error) {
	return c.withInitRetry(ctx, caller, func() (string, error) {
		return c.submit(ctx, NewEntryFunctionPayload(c.fn("claim_pet_nft"), u64Arg(pairID)))
	})
}

// idList decodes a view returning a vector of ids.
func (c *ContractClient) idList(ctx context.Context, viewName string, args ...any) ([]uint64, error) {
	values, err := c.node.View(ctx, ViewRequest{Function: c.fn(viewName), Arguments: args})
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(values[0], &elems); err != nil {
		return nil, fmt.Errorf("view %s: %w", viewName, err)
	}

	ids := make([]uint64, 0, len(elems))
	for _, elem := range elems {
		id, err := NormalizeID(elem)
		if err != nil {
			logger.WithContext(ctx).Warn("skipping malformed id in view result",
				zap.String("view", viewName), zap.Error(err))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// UserInvitationIDs returns the ids of all invitations involving the address.
func (c *ContractClient) UserInvitationIDs(ctx context.Context, address string) ([]uint64, error) {
	return c.idList(ctx, "get_user_invitations_view", address)
}

// Invitation fetches one invitation by id.
func (c *ContractClient) Invitation(ctx context.Context, id uint64) (*entities.Invitation, error) {
	values, err := c.node.View(ctx, ViewRequest{Function: c.fn("get_invitation_view"), Arguments: []any{u64Arg(id)}})
	if err != nil {
		return nil, err
	}
	if len(values) < 4 {
		return nil, fmt.Errorf("get_invitation_view: expected 4 values, got %d", len(values))
	}

	from, err := DecodeText(values[0])
	if err != nil {
		return nil, err
	}
	to, err := DecodeText(values[1])
	if err != nil {
		return nil, err
	}
	status, err := DecodeU64(values[2])
	if err != nil {
		return nil, err
	}
	timestamp, err := DecodeU64(values[3])
	if err != nil {
		return nil, err
	}

	return &entities.Invitation{
		ID:        id,
		From:      from,
		To:        to,
		Status:    entities.InvitationStatus(status),
		Timestamp: timestamp,
	}, nil
}

// PendingInvitations lists invitations still actionable by the address.
// Individual invitations that fail to load are skipped.
func (c *ContractClient) PendingInvitations(ctx context.Context, address string) ([]entities.Invitation, error) {
	ids, err := c.UserInvitationIDs(ctx, address)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotInitialized) {
			return nil, nil
		}
		return nil, err
	}

	pending := make([]entities.Invitation, 0, len(ids))
	for _, id := range ids {
		inv, err := c.Invitation(ctx, id)
		if err != nil {
			logger.WithContext(ctx).Warn("skipping unreadable invitation",
				zap.Uint64("invitation_id", id), zap.Error(err))
			continue
		}
		if inv.PendingFor(address) {
			pending = append(pending, *inv)
		}
	}
	return pending, nil
}

// UserPairIDs returns the ids of the address's co-parent pairs.
func (c *ContractClient) UserPairIDs(ctx context.Context, address string) ([]uint64, error) {
	return c.idList(ctx, "get_user_pairs_view", address)
}

// Pair fetches one co-parent pair with live pet stats.
func (c *ContractClient) Pair(ctx context.Context, id uint64) (*entities.CoParentPair, error) {
	values, err := c.node.View(ctx, ViewRequest{Function: c.fn("get_pair_view"), Arguments: []any{u64Arg(id)}})
	if err != nil {
		return nil, err
	}
	if len(values) < 8 {
		return nil, fmt.Errorf("get_pair_view: expected 8 values, got %d", len(values))
	}

	parent1, err := DecodeText(values[0])
	if err != nil {
		return nil, err
	}
	parent2, err := DecodeText(values[1])
	if err != nil {
		return nil, err
	}
	petName, err := DecodeText(values[2])
	if err != nil {
		return nil, err
	}

	stats := make([]uint64, 5)
	for i := 0; i < 5; i++ {
		stats[i], err = DecodeU64(values[3+i])
		if err != nil {
			return nil, err
		}
	}

	return &entities.CoParentPair{
		ID:         id,
		Parent1:    parent1,
		Parent2:    parent2,
		PetName:    petName,
		Hunger:     stats[0],
		Happiness:  stats[1],
		CreatedAt:  stats[2],
		LastFedAt:  stats[3],
		LastLoveAt: stats[4],
	}, nil
}

// PairFor returns the first pair that includes the address, or
// ErrNoCoParentPair when none exists.
func (c *ContractClient) PairFor(ctx context.Context, address string) (*entities.CoParentPair, error) {
	ids, err := c.UserPairIDs(ctx, address)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotInitialized) {
			return nil, domainerrors.ErrNoCoParentPair
		}
		return nil, err
	}

	for _, id := range ids {
		pair, err := c.Pair(ctx, id)
		if err != nil {
			logger.WithContext(ctx).Warn("skipping unreadable pair",
				zap.Uint64("pair_id", id), zap.Error(err))
			continue
		}
		if pair.Includes(address) {
			return pair, nil
		}
	}
	return nil, domainerrors.ErrNoCoParentPair
}

type inventoryEntry struct {
	ItemID      json.RawMessage `json:"item_id"`
	PurchasedAt json.RawMessage `json:"purchased_at"`
}

// UserInventory returns the caller's owned items as (id, purchasedAt) pairs.
// Elements may be bare ids or structs carrying the purchase timestamp.
func (c *ContractClient) UserInventory(ctx context.Context, address string) (map[uint64]uint64, error) {
	values, err := c.node.View(ctx, ViewRequest{Function: c.fn("get_user_inventory_view"), Arguments: []any{address}})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotInitialized) {
			return map[uint64]uint64{}, nil
		}
		return nil, err
	}
	if len(values) == 0 {
		return map[uint64]uint64{}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(values[0], &elems); err != nil {
		return nil, fmt.Errorf("get_user_inventory_view: %w", err)
	}

	owned := make(map[uint64]uint64, len(elems))
	for _, elem := range elems {
		var entry inventoryEntry
		if err := json.Unmarshal(elem, &entry); err == nil && entry.ItemID != nil {
			id, idErr := NormalizeID(entry.ItemID)
			if idErr != nil {
				logger.WithContext(ctx).Warn("skipping malformed inventory entry", zap.Error(idErr))
				continue
			}
			purchasedAt := uint64(0)
			if entry.PurchasedAt != nil {
				purchasedAt, _ = DecodeU64(entry.PurchasedAt)
			}
			owned[id] = purchasedAt
			continue
		}

		id, idErr := NormalizeID(elem)
		if idErr != nil {
			logger.WithContext(ctx).Warn("skipping malformed inventory entry", zap.Error(idErr))
			continue
		}
		owned[id] = 0
	}
	return owned, nil
}

// MarketplaceItem fetches one catalog entry's on-chain state.
func (c *ContractClient) MarketplaceItem(ctx context.Context, id uint64) (*entities.MarketplaceItem, error) {
	values, err := c.node.View(ctx, ViewRequest{Function: c.fn("get_marketplace_item_view"), Arguments: []any{u64Arg(id)}})
	if err != nil {
		return nil, err
	}
	if len(values) < 4 {
		return nil, fmt.Errorf("get_marketplace_item_view: expected 4 values, got %d", len(values))
	}

	name, err := DecodeText(values[0])
	if err != nil {
		return nil, err
	}
	itemType, err := DecodeU64(values[1])
	if err != nil {
		return nil, err
	}
	price, err := DecodeU64(values[2])
	if err != nil {
		return nil, err
	}
	var available bool
	if err := json.Unmarshal(values[3], &available); err != nil {
		return nil, fmt.Errorf("get_marketplace_item_view: %w", err)
	}

	return &entities.MarketplaceItem{
		ID:        id,
		Name:      name,
		ItemType:  entities.ItemType(itemType),
		Price:     price,
		Available: available,
	}, nil
}

// UserPetNFTIDs returns the ids of the address's minted pet NFTs.
func (c *ContractClient) UserPetNFTIDs(ctx context.Context, address string) ([]uint64, error) {
	return c.idList(ctx, "get_user_pet_nfts_view", address)
}

// PetNFT fetches one minted pet NFT.
func (c *ContractClient) PetNFT(ctx context.Context, id uint64) (*entities.PetNFT, error) {
	values, err := c.node.View(ctx, ViewRequest{Function: c.fn("get_pet_nft_view"), Arguments: []any{u64Arg(id)}})
	if err != nil {
		return nil, err
	}
	if len(values) < 5 {
		return nil, fmt.Errorf("get_pet_nft_view: expected 5 values, got %d", len(values))
	}

	owner, err := DecodeText(values[0])
	if err != nil {
		return nil, err
	}
	pairID, err := DecodeU64(values[1])
	if err != nil {
		return nil, err
	}
	name, err := DecodeText(values[2])
	if err != nil {
		return nil, err
	}
	mintedAt, err := DecodeU64(values[3])
	if err != nil {
		return nil, err
	}
	tokenName, err := DecodeText(values[4])
	if err != nil {
		return nil, err
	}

	return &entities.PetNFT{
		ID:        id,
		Owner:     owner,
		PairID:    pairID,
		Name:      name,
		MintedAt:  mintedAt,
		TokenName: tokenName,
	}, nil
}

// UserPetNFTs lists the address's minted pet NFTs, skipping unreadable ones.
func (c *ContractClient) UserPetNFTs(ctx context.Context, address string) ([]entities.PetNFT, error) {
	ids, err := c.UserPetNFTIDs(ctx, address)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotInitialized) {
			return nil, nil
		}
		return nil, err
	}

	nfts := make([]entities.PetNFT, 0, len(ids))
	for _, id := range ids {
		nft, err := c.PetNFT(ctx, id)
		if err != nil {
			logger.WithContext(ctx).Warn("skipping unreadable pet nft",
				zap.Uint64("nft_id", id), zap.Error(err))
			continue
		}
		nfts = append(nfts, *nft)
	}
	return nfts, nil
}

// CollectionInfo fetches the NFT collection metadata.
func (c *ContractClient) CollectionInfo(ctx context.Context) (*entities.CollectionInfo, error) {
	values, err := c.node.View(ctx, ViewRequest{Function: c.fn("get_nft_collection_info_view")})
	if err != nil {
		return nil, err
	}
	if len(values) < 5 {
		return nil, fmt.Errorf("get_nft_collection_info_view: expected 5 values, got %d", len(values))
	}

	name, err := DecodeText(values[0])
	if err != nil {
		return nil, err
	}
	description, err := DecodeText(values[1])
	if err != nil {
		return nil, err
	}
	uri, err := DecodeText(values[2])
	if err != nil {
		return nil, err
	}
	supply, err := DecodeU64(values[3])
	if err != nil {
		return nil, err
	}
	maxSupply, err := DecodeU64(values[4])
	if err != nil {
		return nil, err
	}

	return &entities.CollectionInfo{
		Name:        name,
		Description: description,
		URI:         uri,
		Supply:      supply,
		MaxSupply:   maxSupply,
	}, nil
}
