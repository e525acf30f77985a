package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/i18n"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	msgOutOfRange    = "position out of range, enter from 1 to 9"
	msgPositionTaken = "position has been taken, choose another one"
	msgInvalidSymbol = "invalid input, symbol be either 'x' or 'o' lowercase"
	msgConsecutive   = "You cannot play consecutively"
)

type mockPositionValidator struct {
	mock.Mock
}

func (that *mockPositionValidator) IsInRange(position int) bool {
	return that.Called(position).Bool(0)
}

func (that *mockPositionValidator) IsFree(board entity.Board, position int) bool {
	return that.Called(board, position).Bool(0)
}

func newValidationService() ValidationService {
	game := tictactoe.NewGame()
	return NewValidationService(game, game, i18n.MustCatalog("en"))
}

func TestValidationService_Validate(t *testing.T) {
	emptyBoard := entity.NewBoard()

	t.Run("Valid move has no errors", func(t *testing.T) {
		// Given: an empty board and no history
		validator := newValidationService()

		// When: validating a correct move
		errs := validator.Validate("x", 3, emptyBoard, nil)

		// Then: the list is empty
		assert.Empty(t, errs)
	})

	t.Run("Position out of range", func(t *testing.T) {
		validator := newValidationService()

		for _, position := range []int{0, -1, 10, 100} {
			// When: validating a position outside the board
			errs := validator.Validate("x", position, emptyBoard, nil)

			// Then: only the range error is reported
			assert.Equal(t, []string{msgOutOfRange}, errs.Messages(), "position %d", position)
		}
	})

	t.Run("Position taken", func(t *testing.T) {
		// Given: a board where position 1 holds 'o'
		validator := newValidationService()
		board := entity.Replay([]entity.Move{{Symbol: entity.SymbolO, Position: 1}})

		// When: 'x' plays on position 1
		errs := validator.Validate("x", 1, board, []entity.Symbol{entity.SymbolO})

		// Then: the occupancy error is reported
		assert.Equal(t, []string{msgPositionTaken}, errs.Messages())
	})

	t.Run("Invalid symbol", func(t *testing.T) {
		validator := newValidationService()

		for _, symbol := range []string{"e", "X", "O", "", "xx"} {
			// When: validating a symbol other than lowercase x or o
			errs := validator.Validate(symbol, 8, emptyBoard, nil)

			// Then: the symbol error is reported
			assert.Equal(t, []string{msgInvalidSymbol}, errs.Messages(), "symbol %q", symbol)
		}
	})

	t.Run("Consecutive play", func(t *testing.T) {
		// Given: 'x' played last
		validator := newValidationService()
		history := []entity.Symbol{entity.SymbolX, entity.SymbolO, entity.SymbolX}
		board := entity.Replay([]entity.Move{
			{Symbol: entity.SymbolX, Position: 1},
			{Symbol: entity.SymbolO, Position: 2},
			{Symbol: entity.SymbolX, Position: 3},
		})

		// When: 'x' plays again
		errs := validator.Validate("x", 4, board, history)

		// Then: the consecutive error is reported
		assert.Equal(t, []string{msgConsecutive}, errs.Messages())
	})

	t.Run("All failures accumulate in check order", func(t *testing.T) {
		// Given: a board where position 5 is taken by 'x' and 'x' played last
		validator := newValidationService()
		board := entity.Replay([]entity.Move{{Symbol: entity.SymbolX, Position: 5}})

		// When: the same symbol plays on the occupied cell
		errs := validator.Validate("x", 5, board, []entity.Symbol{entity.SymbolX})

		// Then: both errors are reported, occupancy first
		assert.Equal(t, []string{msgPositionTaken, msgConsecutive}, errs.Messages())

		// When: an invalid symbol plays out of range
		errs = validator.Validate("e", 0, board, []entity.Symbol{entity.SymbolX})

		// Then: range and symbol errors are reported
		assert.Equal(t, []string{msgOutOfRange, msgInvalidSymbol}, errs.Messages())
	})

	t.Run("Validation does not modify inputs", func(t *testing.T) {
		// Given: a board and a history
		validator := newValidationService()
		board := entity.Replay([]entity.Move{{Symbol: entity.SymbolO, Position: 1}})
		history := []entity.Symbol{entity.SymbolO}
		boardBefore := board

		// When: an invalid move is validated
		_ = validator.Validate("o", 1, board, history)

		// Then: board and history are unchanged
		assert.Equal(t, boardBefore, board)
		assert.Equal(t, []entity.Symbol{entity.SymbolO}, history)
	})
}

func TestValidationService_OccupancyGuard(t *testing.T) {
	// Given: a position validator that reports the position out of range
	positions := &mockPositionValidator{}
	positions.On("IsInRange", 12).Return(false)

	game := tictactoe.NewGame()
	validator := NewValidationService(positions, game, i18n.MustCatalog("en"))

	// When: validating the out of range position
	errs := validator.Validate("o", 12, entity.NewBoard(), nil)

	// Then: the board is never consulted and only the range error is reported
	require.Len(t, errs, 1)
	assert.Equal(t, msgOutOfRange, errs[0].Message)
	positions.AssertNotCalled(t, "IsFree", mock.Anything, mock.Anything)
	positions.AssertExpectations(t)
}
