package blockchain

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContractAddr = "0xabc"

func init() {
	logger.Init("production")
}

type fakeNode struct {
	viewFn        func(req ViewRequest) ([]json.RawMessage, error)
	hasResourceFn func(address, resourceType string) (bool, error)
	waitFn        func(hash string) (*TransactionResult, error)
}

func (f *fakeNode) View(_ context.Context, req ViewRequest) ([]json.RawMessage, error) {
	return f.viewFn(req)
}

func (f *fakeNode) HasResource(_ context.Context, address, resourceType string) (bool, error) {
	if f.hasResourceFn == nil {
		return true, nil
	}
	return f.hasResourceFn(address, resourceType)
}

func (f *fakeNode) WaitForTransaction(_ context.Context, hash string) (*TransactionResult, error) {
	if f.waitFn == nil {
		return &TransactionResult{Hash: hash, Type: "user_transaction", Success: true}, nil
	}
	return f.waitFn(hash)
}

type fakeWallet struct {
	payloads []EntryFunctionPayload
	errs     []error
}

func (f *fakeWallet) Installed() bool { return true }

func (f *fakeWallet) Connect(context.Context) (*entities.Account, error) {
	return &entities.Account{Address: "0x1"}, nil
}

func (f *fakeWallet) Disconnect(context.Context) error { return nil }

func (f *fakeWallet) SignAndSubmitTransaction(_ context.Context, payload EntryFunctionPayload) (string, error) {
	f.payloads = append(f.payloads, payload)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("0xhash%d", len(f.payloads)), nil
}

func rawValues(vals ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(vals))
	for i, v := range vals {
		out[i] = json.RawMessage(v)
	}
	return out
}

func TestContractClient_SendInvitation_PayloadShape(t *testing.T) {
	wallet := &fakeWallet{}
	client := NewContractClient(&fakeNode{}, wallet, testContractAddr)

	hash, err := client.SendInvitation(context.Background(), "0x1", "0x2")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	require.Len(t, wallet.payloads, 1)
	p := wallet.payloads[0]
	assert.Equal(t, "entry_function_payload", p.Type)
	assert.Equal(t, "0xabc::capy::send_invitation", p.Function)
	assert.Equal(t, []any{"0x2"}, p.Arguments)
	assert.Empty(t, p.TypeArguments)
}

func TestContractClient_AcceptInvitation_U64AsString(t *testing.T) {
	wallet := &fakeWallet{}
	client := NewContractClient(&fakeNode{}, wallet, testContractAddr)

	_, err := client.AcceptInvitation(context.Background(), "0x1", 7)
	require.NoError(t, err)
	require.Len(t, wallet.payloads, 1)
	assert.Equal(t, []any{"7"}, wallet.payloads[0].Arguments)
}

func TestContractClient_ClaimGameReward_GameAndScore(t *testing.T) {
	wallet := &fakeWallet{}
	client := NewContractClient(&fakeNode{}, wallet, testContractAddr)

	_, err := client.ClaimGameReward(context.Background(), "0x1", "chase", 85)
	require.NoError(t, err)

	require.Len(t, wallet.payloads, 1)
	p := wallet.payloads[0]
	assert.Equal(t, "0xabc::capy::claim_game_reward", p.Function)
	assert.Equal(t, []any{"chase", "85"}, p.Arguments)
}

func TestContractClient_InitRetry_ExactlyOnce(t *testing.T) {
	wallet := &fakeWallet{errs: []error{domainerrors.ErrNotInitialized}}
	node := &fakeNode{
		hasResourceFn: func(address, resourceType string) (bool, error) {
			assert.Equal(t, "0xabc::capy::CapyData", resourceType)
			return false, nil
		},
	}
	client := NewContractClient(node, wallet, testContractAddr)

	_, err := client.PurchaseItem(context.Background(), "0x1", 3)
	require.NoError(t, err)

	// failed purchase, initialize, retried purchase
	require.Len(t, wallet.payloads, 3)
	assert.Equal(t, "0xabc::capy::purchase_item", wallet.payloads[0].Function)
	assert.Equal(t, "0xabc::capy::initialize", wallet.payloads[1].Function)
	assert.Equal(t, "0xabc::capy::purchase_item", wallet.payloads[2].Function)
}

func TestContractClient_InitRetry_NoSecondRetry(t *testing.T) {
	wallet := &fakeWallet{errs: []error{
		domainerrors.ErrNotInitialized,
		nil, // initialize succeeds
		domainerrors.ErrNotInitialized,
	}}
	node := &fakeNode{
		hasResourceFn: func(string, string) (bool, error) { return false, nil },
	}
	client := NewContractClient(node, wallet, testContractAddr)

	_, err := client.FeedPet(context.Background(), "0x1", 1)
	assert.ErrorIs(t, err, domainerrors.ErrNotInitialized)
	assert.Len(t, wallet.payloads, 3)
}

func TestContractClient_EnsureInitialized_ShortCircuits(t *testing.T) {
	wallet := &fakeWallet{}
	node := &fakeNode{
		hasResourceFn: func(string, string) (bool, error) { return true, nil },
	}
	client := NewContractClient(node, wallet, testContractAddr)

	require.NoError(t, client.EnsureInitialized(context.Background(), "0x1"))
	assert.Empty(t, wallet.payloads)
}

func TestContractClient_EnsureInitialized_LostRaceIsSuccess(t *testing.T) {
	wallet := &fakeWallet{errs: []error{domainerrors.ErrAlreadyInitialized}}
	node := &fakeNode{
		hasResourceFn: func(string, string) (bool, error) { return false, nil },
	}
	client := NewContractClient(node, wallet, testContractAddr)

	assert.NoError(t, client.EnsureInitialized(context.Background(), "0x1"))
}

func TestContractClient_PendingInvitations_Filtering(t *testing.T) {
	node := &fakeNode{
		viewFn: func(req ViewRequest) ([]json.RawMessage, error) {
			switch req.Function {
			case "0xabc::capy::get_user_invitations_view":
				return rawValues(`["1","2","3"]`), nil
			case "0xabc::capy::get_invitation_view":
				switch req.Arguments[0] {
				case "1":
					return rawValues(`"0xaaa"`, `"0x1"`, `"0"`, `"100"`), nil
				case "2":
					return nil, fmt.Errorf("boom")
				case "3":
					// already accepted
					return rawValues(`"0xbbb"`, `"0x1"`, `"1"`, `"200"`), nil
				}
			}
			return nil, fmt.Errorf("unexpected view %s", req.Function)
		},
	}
	client := NewContractClient(node, &fakeWallet{}, testContractAddr)

	pending, err := client.PendingInvitations(context.Background(), "0x1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, uint64(1), pending[0].ID)
	assert.Equal(t, "0xaaa", pending[0].From)
}

func TestContractClient_PendingInvitations_UninitializedIsEmpty(t *testing.T) {
	node := &fakeNode{
		viewFn: func(ViewRequest) ([]json.RawMessage, error) {
			return nil, domainerrors.ErrNotInitialized
		},
	}
	client := NewContractClient(node, &fakeWallet{}, testContractAddr)

	pending, err := client.PendingInvitations(context.Background(), "0x1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestContractClient_Pair_Decode(t *testing.T) {
	node := &fakeNode{
		viewFn: func(req ViewRequest) ([]json.RawMessage, error) {
			assert.Equal(t, "0xabc::capy::get_pair_view", req.Function)
			return rawValues(
				`"0x1"`, `"0x2"`, `"0x4d6f636869"`, `"80"`, `"95"`, `"1000"`, `"2000"`, `"3000"`,
			), nil
		},
	}
	client := NewContractClient(node, &fakeWallet{}, testContractAddr)

	pair, err := client.Pair(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), pair.ID)
	assert.Equal(t, "Mochi", pair.PetName)
	assert.Equal(t, uint64(80), pair.Hunger)
	assert.Equal(t, uint64(95), pair.Happiness)
	assert.Equal(t, "0x2", pair.PartnerOf("0x1"))
}

func TestContractClient_PairFor_NoneFound(t *testing.T) {
	node := &fakeNode{
		viewFn: func(req ViewRequest) ([]json.RawMessage, error) {
			return rawValues(`[]`), nil
		},
	}
	client := NewContractClient(node, &fakeWallet{}, testContractAddr)

	_, err := client.PairFor(context.Background(), "0x1")
	assert.ErrorIs(t, err, domainerrors.ErrNoCoParentPair)
}

func TestContractClient_UserInventory_MixedShapes(t *testing.T) {
	node := &fakeNode{
		viewFn: func(req ViewRequest) ([]json.RawMessage, error) {
			return rawValues(`[{"item_id":"1","purchased_at":"500"}, "2", {"bogus":true}]`), nil
		},
	}
	client := NewContractClient(node, &fakeWallet{}, testContractAddr)

	owned, err := client.UserInventory(context.Background(), "0x1")
	require.NoError(t, err)
	assert.Equal(t, map[uint64]uint64{1: 500, 2: 0}, owned)
}

func TestContractClient_MarketplaceItem_Decode(t *testing.T) {
	node := &fakeNode{
		viewFn: func(req ViewRequest) ([]json.RawMessage, error) {
			return rawValues(`"0x4170706c65"`, `"1"`, `"1000000"`, `true`), nil
		},
	}
	client := NewContractClient(node, &fakeWallet{}, testContractAddr)

	item, err := client.MarketplaceItem(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Apple", item.Name)
	assert.Equal(t, entities.ItemTypeFood, item.ItemType)
	assert.Equal(t, uint64(1000000), item.Price)
	assert.True(t, item.Available)
}

func TestContractClient_CollectionInfo_Decode(t *testing.T) {
	node := &fakeNode{
		viewFn: func(req ViewRequest) ([]json.RawMessage, error) {
			return rawValues(`"CapyPets"`, `"Shared pets"`, `"https://capy.pet/collection"`, `"12"`, `"1000"`), nil
		},
	}
	client := NewContractClient(node, &fakeWallet{}, testContractAddr)

	info, err := client.CollectionInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "CapyPets", info.Name)
	assert.Equal(t, uint64(12), info.Supply)
	assert.Equal(t, uint64(1000), info.MaxSupply)
}
