package usecases

import (
	"context"

	"github.com/saiisback/capy/internal/domain/entities"
	"github.com/saiisback/capy/pkg/logger"
	"go.uber.org/zap"
)

// PetUsecase handles shared pet care business logic
type PetUsecase struct {
	contract ContractGateway
}

// NewPetUsecase creates a new pet usecase
func NewPetUsecase(contract ContractGateway) *PetUsecase {
	return &PetUsecase{contract: contract}
}

// CareResult carries the transaction hash and the pet's fresh stats.
type CareResult struct {
	TxHash string                 `json:"txHash"`
	Pair   *entities.CoParentPair `json:"pair,omitempty"`
}

// CoParent returns the account's pair with live pet stats, or
// ErrNoCoParentPair.
func (u *PetUsecase) CoParent(ctx context.Context, account *entities.Account) (*entities.CoParentPair, error) {
	return u.contract.PairFor(ctx, account.Address)
}

// Feed feeds the shared pet and returns its refreshed stats.
func (u *PetUsecase) Feed(ctx context.Context, account *entities.Account) (*CareResult, error) {
	return u.care(ctx, account, u.contract.FeedPet, "pet fed")
}

// ShowLove raises the pet's happiness and returns its refreshed stats.
func (u *PetUsecase) ShowLove(ctx context.Context, account *entities.Account) (*CareResult, error) {
	return u.care(ctx, account, u.contract.ShowLoveToPet, "love shown")
}

func (u *PetUsecase) care(ctx context.Context, account *entities.Account, action func(context.Context, string, uint64) (string, error), event string) (*CareResult, error) {
	pair, err := u.contract.PairFor(ctx, account.Address)
	if err != nil {
		return nil, err
	}

	hash, err := action(ctx, account.Address, pair.ID)
	if err != nil {
		return nil, err
	}

	result := &CareResult{TxHash: hash}
	if refreshed, err := u.contract.Pair(ctx, pair.ID); err == nil {
		result.Pair = refreshed
	} else {
		logger.WithContext(ctx).Warn("pet stats not readable after care action", zap.Error(err))
		result.Pair = pair
	}

	logger.WithContext(ctx).Info(event,
		zap.Uint64("pair_id", pair.ID),
		zap.String("tx_hash", hash))
	return result, nil
}
