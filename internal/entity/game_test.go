package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell is empty
	for _, cell := range board {
		assert.Equal(t, EmptyCell, cell)
	}
}

func TestReplay(t *testing.T) {
	t.Run("Places every move at position minus one", func(t *testing.T) {
		// Given: a win sequence for 'o'
		moves := []Move{
			{Symbol: SymbolO, Position: 1},
			{Symbol: SymbolX, Position: 5},
			{Symbol: SymbolO, Position: 3},
			{Symbol: SymbolX, Position: 4},
			{Symbol: SymbolO, Position: 2},
		}

		// When: replaying the moves
		board := Replay(moves)

		// Then: the board matches the moves
		expected := Board{"o", "o", "o", "x", "x", "-", "-", "-", "-"}
		assert.Equal(t, expected, board)
	})

	t.Run("Last move on a position wins", func(t *testing.T) {
		// Given: two moves on the same position
		moves := []Move{{Symbol: SymbolO, Position: 7}, {Symbol: SymbolX, Position: 7}}

		// When: replaying the moves
		board := Replay(moves)

		// Then: the latest symbol is kept
		assert.Equal(t, Cell("x"), board[6])
	})

	t.Run("Out of range moves are skipped", func(t *testing.T) {
		// Given: moves outside the board
		moves := []Move{{Symbol: SymbolO, Position: 0}, {Symbol: SymbolX, Position: 10}}

		// When: replaying the moves
		board := Replay(moves)

		// Then: the board stays empty
		assert.Equal(t, NewBoard(), board)
	})
}

func TestBoard_IsFree(t *testing.T) {
	board := Replay([]Move{{Symbol: SymbolX, Position: 5}})

	assert.True(t, board.IsFree(1))
	assert.False(t, board.IsFree(5))
	assert.False(t, board.IsFree(0))
	assert.False(t, board.IsFree(10))
}

func TestBoard_MarshalJSON(t *testing.T) {
	// Given: a board with a single move
	board := Replay([]Move{{Symbol: SymbolX, Position: 3}})

	// When: encoding it
	data, err := json.Marshal(board)
	require.NoError(t, err)

	// Then: it is a plain nine element array
	assert.JSONEq(t, `["-","-","x","-","-","-","-","-","-"]`, string(data))
}

func TestErrorList(t *testing.T) {
	// Given: a list with two validation errors
	list := ErrorList{
		{Message: "position out of range, enter from 1 to 9"},
		{Message: "You cannot play consecutively"},
	}

	// Then: it wraps ErrInvalidMove
	require.ErrorIs(t, list, apperror.ErrInvalidMove)

	// Then: it can be recovered from a wrapped error
	var target ErrorList
	require.True(t, errors.As(errors.Join(list), &target))
	assert.Equal(t, []string{
		"position out of range, enter from 1 to 9",
		"You cannot play consecutively",
	}, target.Messages())
	assert.Contains(t, list.Error(), "You cannot play consecutively")
}

func TestOutcome_IsFinished(t *testing.T) {
	assert.False(t, OngoingOutcome().IsFinished())
	assert.True(t, Outcome{Status: StatusWon, Winner: SymbolO}.IsFinished())
	assert.True(t, Outcome{Status: StatusDrawn}.IsFinished())
}
