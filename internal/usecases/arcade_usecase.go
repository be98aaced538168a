package usecases

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saiisback/capy/internal/domain/entities"
	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/saiisback/capy/pkg/logger"
	"go.uber.org/zap"
)

const (
	roundLength      = 30 * time.Second
	hitScore         = 10
	catchScore       = 5
	puzzleSolveScore = 100
	shuffleMoves     = 40

	chaseStartSpeed = 2.0
	chaseSpeedStep  = 0.5
	chaseMaxSpeed   = 5.0
)

// ArcadeUsecase runs the mini-games. Rounds live in memory; only claimed
// rewards touch the ledger.
type ArcadeUsecase struct {
	contract ContractGateway

	mu    sync.Mutex
	games map[string]*entities.GameSession
	rng   *rand.Rand
	now   func() time.Time
}

// ClaimRewardResult carries the claim transaction and the credited amount.
type ClaimRewardResult struct {
	TxHash string `json:"txHash"`
	Amount uint64 `json:"amount"`
}

// NewArcadeUsecase creates a new arcade usecase
func NewArcadeUsecase(contract ContractGateway) *ArcadeUsecase {
	return &ArcadeUsecase{
		contract: contract,
		games:    make(map[string]*entities.GameSession),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// Start opens a new round of the given game.
func (u *ArcadeUsecase) Start(ctx context.Context, kind entities.GameKind) (*entities.GameSession, error) {
	switch kind {
	case entities.GameTarget, entities.GameChase, entities.GamePuzzle:
	default:
		return nil, domainerrors.BadRequest("unknown game")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	game := &entities.GameSession{
		ID:        uuid.New().String(),
		Kind:      kind,
		Phase:     entities.GameRunning,
		StartedAt: now,
		Deadline:  now.Add(roundLength),
	}

	switch kind {
	case entities.GamePuzzle:
		game.Board = u.shuffledBoard()
		// Puzzles are untimed; solving is the only way to finish.
		game.Deadline = now.Add(24 * time.Hour)
	case entities.GameChase:
		game.TargetX, game.TargetY = u.rng.Intn(101), u.rng.Intn(101)
		game.Speed = chaseStartSpeed
	default:
		game.TargetX, game.TargetY = u.rng.Intn(101), u.rng.Intn(101)
	}

	u.games[game.ID] = game

	logger.WithContext(ctx).Info("arcade round started",
		zap.String("game_id", game.ID),
		zap.String("kind", string(kind)))
	return snapshot(game), nil
}

// Game returns the current round state.
func (u *ArcadeUsecase) Game(gameID string) (*entities.GameSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	game, err := u.running(gameID)
	if err != nil {
		if game != nil {
			return snapshot(game), nil
		}
		return nil, err
	}
	return snapshot(game), nil
}

// RecordHit scores a target hit or a chase catch and moves the sprite. A
// chase catch is worth less but ramps the cat's speed.
func (u *ArcadeUsecase) RecordHit(gameID string) (*entities.GameSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	game, err := u.running(gameID)
	if err != nil {
		return nil, err
	}

	switch game.Kind {
	case entities.GameTarget:
		game.Score += hitScore
	case entities.GameChase:
		game.Score += catchScore
		game.Speed += chaseSpeedStep
		if game.Speed > chaseMaxSpeed {
			game.Speed = chaseMaxSpeed
		}
	default:
		return nil, domainerrors.BadRequest("puzzle rounds take tile moves")
	}

	game.TargetX, game.TargetY = u.rng.Intn(101), u.rng.Intn(101)
	return snapshot(game), nil
}

// MoveTile slides a tile into the blank in a puzzle round. Solving the board
// finishes the round.
func (u *ArcadeUsecase) MoveTile(gameID string, tile int) (*entities.GameSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	game, err := u.running(gameID)
	if err != nil {
		return nil, err
	}
	if game.Kind != entities.GamePuzzle {
		return nil, domainerrors.BadRequest("not a puzzle round")
	}

	tileIdx, blankIdx := -1, -1
	for i, v := range game.Board {
		switch v {
		case tile:
			tileIdx = i
		case 9:
			blankIdx = i
		}
	}
	if tileIdx < 0 || !adjacent(tileIdx, blankIdx) {
		return nil, domainerrors.BadRequest("illegal move")
	}

	game.Board[tileIdx], game.Board[blankIdx] = game.Board[blankIdx], game.Board[tileIdx]
	game.Moves++

	if game.PuzzleSolved() {
		game.Score += puzzleSolveScore
		game.Phase = entities.GameFinished
	}
	return snapshot(game), nil
}

// Finish ends a running round, fixing its score.
func (u *ArcadeUsecase) Finish(gameID string) (*entities.GameSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	game, ok := u.games[gameID]
	if !ok {
		return nil, domainerrors.NotFound("game not found")
	}
	game.Phase = entities.GameFinished
	return snapshot(game), nil
}

// ClaimReward converts a finished round's score into on-chain coins. Each
// round can be claimed once.
func (u *ArcadeUsecase) ClaimReward(ctx context.Context, account *entities.Account, gameID string) (*ClaimRewardResult, error) {
	u.mu.Lock()
	game, ok := u.games[gameID]
	if !ok {
		u.mu.Unlock()
		return nil, domainerrors.NotFound("game not found")
	}
	u.expireIfDue(game)
	if game.Phase != entities.GameFinished {
		u.mu.Unlock()
		return nil, domainerrors.BadRequest("round still running")
	}
	if game.RewardClaimed {
		u.mu.Unlock()
		return nil, domainerrors.Conflict("reward already claimed")
	}
	// Reserve the claim before submitting so a concurrent claim cannot
	// double-submit. Rolled back if the submission fails.
	game.RewardClaimed = true
	amount := game.Reward()
	kind, score := string(game.Kind), uint64(game.Score)
	u.mu.Unlock()

	hash, err := u.contract.ClaimGameReward(ctx, account.Address, kind, score)
	if err != nil {
		u.mu.Lock()
		game.RewardClaimed = false
		u.mu.Unlock()
		return nil, err
	}

	u.mu.Lock()
	delete(u.games, gameID)
	u.mu.Unlock()

	logger.WithContext(ctx).Info("game reward claimed",
		zap.String("game_id", gameID),
		zap.Uint64("amount", amount),
		zap.String("tx_hash", hash))
	return &ClaimRewardResult{TxHash: hash, Amount: amount}, nil
}

// running fetches a round, finishing it first when past its deadline. Callers
// hold the mutex.
func (u *ArcadeUsecase) running(gameID string) (*entities.GameSession, error) {
	game, ok := u.games[gameID]
	if !ok {
		return nil, domainerrors.NotFound("game not found")
	}
	u.expireIfDue(game)
	if game.Phase != entities.GameRunning {
		return game, domainerrors.BadRequest("round already finished")
	}
	return game, nil
}

func (u *ArcadeUsecase) expireIfDue(game *entities.GameSession) {
	if game.Phase == entities.GameRunning && u.now().After(game.Deadline) {
		game.Phase = entities.GameFinished
	}
}

// shuffledBoard walks random legal moves backwards from the solved board, so
// every dealt puzzle is solvable.
func (u *ArcadeUsecase) shuffledBoard() []int {
	board := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	blank := 8
	for i := 0; i < shuffleMoves; i++ {
		neighbors := neighborsOf(blank)
		next := neighbors[u.rng.Intn(len(neighbors))]
		board[blank], board[next] = board[next], board[blank]
		blank = next
	}
	return board
}

func adjacent(a, b int) bool {
	if a < 0 || b < 0 || a > 8 || b > 8 {
		return false
	}
	rowDiff := a/3 - b/3
	colDiff := a%3 - b%3
	if rowDiff < 0 {
		rowDiff = -rowDiff
	}
	if colDiff < 0 {
		colDiff = -colDiff
	}
	return rowDiff+colDiff == 1
}

func neighborsOf(idx int) []int {
	var out []int
	for i := 0; i < 9; i++ {
		if adjacent(idx, i) {
			out = append(out, i)
		}
	}
	return out
}

func snapshot(game *entities.GameSession) *entities.GameSession {
	copied := *game
	if game.Board != nil {
		copied.Board = append([]int(nil), game.Board...)
	}
	return &copied
}
