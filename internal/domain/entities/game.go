package entities

import "time"

// GameKind identifies an arcade mini-game.
type GameKind string

const (
	GameTarget GameKind = "target"
	GameChase  GameKind = "chase"
	GamePuzzle GameKind = "puzzle"
)

// GamePhase is the lifecycle of an arcade round.
type GamePhase string

const (
	GameRunning  GamePhase = "running"
	GameFinished GamePhase = "finished"
)

// GameSession is an in-flight or finished arcade round. Rounds are
// session-scoped and never persisted; only the claimed reward touches the
// ledger.
type GameSession struct {
	ID        string    `json:"id"`
	Kind      GameKind  `json:"kind"`
	Phase     GamePhase `json:"phase"`
	Score     int       `json:"score"`
	Deadline  time.Time `json:"deadline"`
	StartedAt time.Time `json:"startedAt"`

	// Target/chase rounds: current sprite position in a 0..100 grid. Speed
	// is the chase cat's ramp, rising with each catch.
	TargetX int     `json:"targetX,omitempty"`
	TargetY int     `json:"targetY,omitempty"`
	Speed   float64 `json:"speed,omitempty"`

	// Puzzle rounds: 3x3 board, values 1..9 with 9 as the blank.
	Board []int `json:"board,omitempty"`
	Moves int   `json:"moves,omitempty"`

	RewardClaimed bool `json:"rewardClaimed"`
}

// Reward converts a finished round's score into claimable coins,
// floor(score/10) clamped to [1, 10].
func (g GameSession) Reward() uint64 {
	r := g.Score / 10
	if r < 1 {
		r = 1
	}
	if r > 10 {
		r = 10
	}
	return uint64(r)
}

// PuzzleSolved reports whether the 3x3 board is in order 1..8 with the blank
// last.
func (g GameSession) PuzzleSolved() bool {
	if len(g.Board) != 9 {
		return false
	}
	for i := 0; i < 8; i++ {
		if g.Board[i] != i+1 {
			return false
		}
	}
	return true
}
