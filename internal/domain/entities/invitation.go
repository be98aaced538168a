package entities

import "github.com/volatiletech/null/v8"

// InvitationStatus is the on-chain status of a co-parenting invitation.
type InvitationStatus uint8

const (
	InvitationPending  InvitationStatus = 0
	InvitationAccepted InvitationStatus = 1
	InvitationRejected InvitationStatus = 2
)

func (s InvitationStatus) String() string {
	switch s {
	case InvitationPending:
		return "pending"
	case InvitationAccepted:
		return "accepted"
	case InvitationRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Invitation is a co-parenting invitation read from the ledger.
type Invitation struct {
	ID        uint64           `json:"id"`
	From      string           `json:"from"`
	To        string           `json:"to"`
	Status    InvitationStatus `json:"status"`
	Timestamp uint64           `json:"timestamp"`
	TxHash    null.String      `json:"txHash,omitempty"`
}

// PendingFor reports whether the invitation is actionable by the given
// address, i.e. addressed to it and still pending.
func (i Invitation) PendingFor(address string) bool {
	return i.Status == InvitationPending && sameAddress(i.To, address)
}
