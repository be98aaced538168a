package entities_test

import (
	"testing"

	"github.com/saiisback/capy/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestConnectionState_Connected(t *testing.T) {
	assert.False(t, entities.Disconnected().Connected())
	assert.False(t, entities.Connecting().Connected())
	assert.False(t, entities.FailedState("user rejected").Connected())

	state := entities.ConnectedState(entities.Account{Address: "0x1"})
	assert.True(t, state.Connected())
	assert.Equal(t, "0x1", state.Account.Address)

	// A connected phase without an account is not usable.
	broken := entities.ConnectionState{Phase: entities.PhaseConnected}
	assert.False(t, broken.Connected())
}

func TestParseAccountType(t *testing.T) {
	assert.Equal(t, entities.AccountTypeEd25519, entities.ParseAccountType("Ed25519"))
	assert.Equal(t, entities.AccountTypeKeyless, entities.ParseAccountType("Keyless"))
	assert.Equal(t, entities.AccountTypeSecp256k1, entities.ParseAccountType("Secp256k1"))
	assert.Equal(t, entities.AccountTypeUnknown, entities.ParseAccountType("ed25519"))
	assert.Equal(t, entities.AccountTypeUnknown, entities.ParseAccountType(""))
}

func TestInvitation_PendingFor(t *testing.T) {
	inv := entities.Invitation{
		ID:     3,
		From:   "0xaaa",
		To:     "0x0bbb",
		Status: entities.InvitationPending,
	}
	assert.True(t, inv.PendingFor("0xbbb")) // leading zeros ignored
	assert.False(t, inv.PendingFor("0xaaa"))

	inv.Status = entities.InvitationAccepted
	assert.False(t, inv.PendingFor("0xbbb"))
}

func TestCoParentPair_PartnerOf(t *testing.T) {
	pair := entities.CoParentPair{ID: 1, Parent1: "0xAAA", Parent2: "0xbbb"}
	assert.Equal(t, "0xbbb", pair.PartnerOf("0xaaa"))
	assert.Equal(t, "0xAAA", pair.PartnerOf("0xBBB"))
	assert.Equal(t, "", pair.PartnerOf("0xccc"))
	assert.True(t, pair.Includes("0xaaa"))
	assert.False(t, pair.Includes("0xccc"))
}

func TestGameSession_Reward(t *testing.T) {
	tests := []struct {
		score int
		want  uint64
	}{
		{0, 1},
		{5, 1},
		{10, 1},
		{45, 4},
		{100, 10},
		{250, 10},
	}
	for _, tt := range tests {
		g := entities.GameSession{Score: tt.score}
		assert.Equal(t, tt.want, g.Reward(), "score %d", tt.score)
	}
}

func TestGameSession_PuzzleSolved(t *testing.T) {
	solved := entities.GameSession{Board: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}}
	assert.True(t, solved.PuzzleSolved())

	unsolved := entities.GameSession{Board: []int{1, 2, 3, 4, 5, 6, 7, 9, 8}}
	assert.False(t, unsolved.PuzzleSolved())

	assert.False(t, entities.GameSession{}.PuzzleSolved())
}

func TestInvitationStatus_String(t *testing.T) {
	assert.Equal(t, "pending", entities.InvitationPending.String())
	assert.Equal(t, "accepted", entities.InvitationAccepted.String())
	assert.Equal(t, "rejected", entities.InvitationRejected.String())
	assert.Equal(t, "unknown", entities.InvitationStatus(9).String())
}

func TestItemType_String(t *testing.T) {
	assert.Equal(t, "food", entities.ItemTypeFood.String())
	assert.Equal(t, "toy", entities.ItemTypeToy.String())
	assert.Equal(t, "furniture", entities.ItemTypeFurniture.String())
	assert.Equal(t, "decoration", entities.ItemTypeDecoration.String())
	assert.Equal(t, "unknown", entities.ItemType(0).String())
}
