package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
)

// MoveLedger is the ordered record of accepted moves since the last reset.
// It applies no game rules; callers append only moves that passed validation.
type MoveLedger interface {
	Append(ctx context.Context, move entity.Move) error
	All(ctx context.Context) ([]entity.Move, error)
	Reset(ctx context.Context) error
}

type memoryLedger struct {
	mu    sync.Mutex
	moves []entity.Move
}

func NewMemoryLedger() MoveLedger {
	return &memoryLedger{}
}

func (that *memoryLedger) Append(_ context.Context, move entity.Move) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves = append(that.moves, move)

	return nil
}

func (that *memoryLedger) All(_ context.Context) ([]entity.Move, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return slices.Clone(that.moves), nil
}

func (that *memoryLedger) Reset(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves = nil

	return nil
}
