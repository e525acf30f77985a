package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
)

type GameUseCase interface {
	Play(ctx context.Context, symbol string, position int) (*entity.PlayResult, error)
	Draw(ctx context.Context) entity.Board
	Reset(ctx context.Context) (*entity.ResetResult, error)

	Moves(ctx context.Context) ([]entity.Move, error)
	Status(ctx context.Context) entity.Outcome
}

type moveLedger interface {
	Append(ctx context.Context, move entity.Move) error
	All(ctx context.Context) ([]entity.Move, error)
	Reset(ctx context.Context) error
}

// boardGame is the board capability: raw cells plus win and draw detection.
type boardGame interface {
	Positions() entity.Board
	ApplyMove(symbol entity.Symbol, position int)
	HasEnded() bool
	Winner() (entity.Symbol, bool)
	IsDraw() bool
	Reinitialize()
}

type moveValidator interface {
	Validate(symbol string, position int, board entity.Board, history []entity.Symbol) entity.ErrorList
}

type outcomeMessages interface {
	Ok() string
	Win(symbol entity.Symbol) string
	Draw() string
	GameFinished() string
}

// gameUseCase owns the single live game. mu serializes Play and Reset so that
// validation, ledger append and board replay happen as one step.
type gameUseCase struct {
	logger *slog.Logger

	mu        sync.RWMutex
	ledger    moveLedger
	game      boardGame
	validator moveValidator
	messages  outcomeMessages

	symbols []entity.Symbol
}

func NewGameUseCase(logger *slog.Logger, ledger moveLedger, game boardGame, validator moveValidator, messages outcomeMessages) GameUseCase {
	return &gameUseCase{
		logger:    logger.With("component", "game"),
		ledger:    ledger,
		game:      game,
		validator: validator,
		messages:  messages,
	}
}

// Play - validates and applies one move. A rejected move leaves ledger, history and board untouched.
func (that *gameUseCase) Play(ctx context.Context, symbol string, position int) (*entity.PlayResult, error) {
	log := that.logger.With("method", "Play", "symbol", symbol, "position", position)

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game.HasEnded() {
		log.Debug("move rejected, game is over")
		return nil, errors.Join(apperror.ErrGameFinished, entity.ErrorList{{Message: that.messages.GameFinished()}})
	}

	if errs := that.validator.Validate(symbol, position, that.game.Positions(), that.symbols); len(errs) > 0 {
		log.Debug("move rejected", "errors", errs.Messages())
		return nil, errs
	}

	moves, err := that.ledger.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	move := entity.Move{Symbol: entity.Symbol(symbol), Position: position}
	if err = that.ledger.Append(ctx, move); err != nil {
		return nil, fmt.Errorf("failed to record move: %w", err)
	}

	that.symbols = append(that.symbols, move.Symbol)
	that.replay(append(moves, move))

	outcome := that.outcome()
	log.Info("move accepted", "status", outcome.Status, "winner", outcome.Winner)

	return &entity.PlayResult{
		Message: that.outcomeMessage(outcome),
		Board:   that.game.Positions(),
		Outcome: outcome,
	}, nil
}

// Draw - returns the current board.
func (that *gameUseCase) Draw(_ context.Context) entity.Board {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.game.Positions()
}

// Reset - clears the ledger, the symbol history and the board. It is allowed at any time.
func (that *gameUseCase) Reset(ctx context.Context) (*entity.ResetResult, error) {
	log := that.logger.With("method", "Reset")

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.ledger.Reset(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset ledger: %w", err)
	}

	that.game.Reinitialize()
	that.symbols = nil

	log.Info("game reset")

	return &entity.ResetResult{
		Message: that.messages.Ok(),
		Board:   that.game.Positions(),
	}, nil
}

// Moves - returns the accepted moves in order.
func (that *gameUseCase) Moves(ctx context.Context) ([]entity.Move, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	moves, err := that.ledger.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	return moves, nil
}

func (that *gameUseCase) Status(_ context.Context) entity.Outcome {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.outcome()
}

// replay - rebuilds the board from scratch out of the ledger moves.
func (that *gameUseCase) replay(moves []entity.Move) {
	that.game.Reinitialize()
	for _, move := range moves {
		that.game.ApplyMove(move.Symbol, move.Position)
	}
}

func (that *gameUseCase) outcome() entity.Outcome {
	if !that.game.HasEnded() {
		return entity.OngoingOutcome()
	}

	if winner, ok := that.game.Winner(); ok {
		return entity.Outcome{Status: entity.StatusWon, Winner: winner}
	}

	return entity.Outcome{Status: entity.StatusDrawn}
}

func (that *gameUseCase) outcomeMessage(outcome entity.Outcome) string {
	switch outcome.Status {
	case entity.StatusWon:
		return that.messages.Win(outcome.Winner)
	case entity.StatusDrawn:
		return that.messages.Draw()
	default:
		return that.messages.Ok()
	}
}
