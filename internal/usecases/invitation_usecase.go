package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/pkg/logger"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
)

// InvitationUsecase handles co-parenting invitation business logic
type InvitationUsecase struct {
	contract ContractGateway
}

// NewInvitationUsecase creates a new invitation usecase
func NewInvitationUsecase(contract ContractGateway) *InvitationUsecase {
	return &InvitationUsecase{contract: contract}
}

// AcceptResult carries the transaction hash and the pair it created.
type AcceptResult struct {
	TxHash string                 `json:"txHash"`
	Pair   *entities.CoParentPair `json:"pair,omitempty"`
}

// SendResult carries the transaction hash and the pending invitation as the
// recipient will see it. The chain assigns the id, so it is left zero here.
type SendResult struct {
	TxHash     string              `json:"txHash"`
	Invitation entities.Invitation `json:"invitation"`
}

// Send sends an invitation from the connected account to another address.
func (u *InvitationUsecase) Send(ctx context.Context, sender *entities.Account, to string) (*SendResult, error) {
	to = strings.TrimSpace(to)
	if !validAddress(to) {
		return nil, domainerrors.BadRequest("invalid recipient address")
	}
	if sameAddress(sender.Address, to) {
		return nil, domainerrors.BadRequest("cannot invite yourself")
	}

	hash, err := u.contract.SendInvitation(ctx, sender.Address, to)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info("invitation sent",
		zap.String("from", sender.Address),
		zap.String("to", to),
		zap.String("tx_hash", hash))
	return &SendResult{
		TxHash: hash,
		Invitation: entities.Invitation{
			From:      sender.Address,
			To:        to,
			Status:    entities.InvitationPending,
			Timestamp: uint64(time.Now().Unix()),
			TxHash:    null.StringFrom(hash),
		},
	}, nil
}

// Pending lists invitations still awaiting the account's answer.
func (u *InvitationUsecase) Pending(ctx context.Context, account *entities.Account) ([]entities.Invitation, error) {
	return u.contract.PendingInvitations(ctx, account.Address)
}

// Accept accepts a pending invitation and returns the resulting pair.
func (u *InvitationUsecase) Accept(ctx context.Context, account *entities.Account, invitationID uint64) (*AcceptResult, error) {
	hash, err := u.contract.AcceptInvitation(ctx, account.Address, invitationID)
	if err != nil {
		return nil, err
	}

	result := &AcceptResult{TxHash: hash}
	pair, err := u.contract.PairFor(ctx, account.Address)
	if err == nil {
		result.Pair = pair
	} else {
		// The transaction committed; a stale read here is not fatal.
		logger.WithContext(ctx).Warn("pair not visible after accept", zap.Error(err))
	}
	return result, nil
}

func validAddress(addr string) bool {
	if !strings.HasPrefix(addr, "0x") {
		return false
	}
	body := addr[2:]
	if len(body) == 0 || len(body) > 64 {
		return false
	}
	for _, r := range body {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func sameAddress(a, b string) bool {
	norm := func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
		return strings.TrimLeft(s, "0")
	}
	return norm(a) == norm(b)
}
