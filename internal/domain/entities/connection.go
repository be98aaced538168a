package entities

// ConnectionPhase enumerates the wallet connection lifecycle. A session is in
// exactly one phase at a time; there is no separate boolean to reconcile.
type ConnectionPhase string

const (
	PhaseDisconnected ConnectionPhase = "disconnected"
	PhaseConnecting   ConnectionPhase = "connecting"
	PhaseConnected    ConnectionPhase = "connected"
	PhaseFailed       ConnectionPhase = "failed"
)

// ConnectionState is the session-scoped wallet state. Account is set only in
// the connected phase, LastError only in the failed phase.
type ConnectionState struct {
	Phase     ConnectionPhase `json:"phase"`
	Account   *Account        `json:"account,omitempty"`
	LastError string          `json:"lastError,omitempty"`
}

// Connected reports whether the session currently has a usable account.
func (s ConnectionState) Connected() bool {
	return s.Phase == PhaseConnected && s.Account != nil
}

// Disconnected returns the initial state.
func Disconnected() ConnectionState {
	return ConnectionState{Phase: PhaseDisconnected}
}

// Connecting returns the in-progress state.
func Connecting() ConnectionState {
	return ConnectionState{Phase: PhaseConnecting}
}

// Connected state with the approved account.
func ConnectedState(account Account) ConnectionState {
	return ConnectionState{Phase: PhaseConnected, Account: &account}
}

// Failed state carrying the user-facing reason.
func FailedState(reason string) ConnectionState {
	return ConnectionState{Phase: PhaseFailed, LastError: reason}
}
