package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
)

const playerTie = "-"

var winCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game is the in-memory board capability: it stores cells and knows how a game ends.
// It performs no move validation; callers only apply moves that were already accepted.
type Game struct {
	board  entity.Board
	winner entity.Symbol
	status string
}

func NewGame() *Game {
	return &Game{
		board:  entity.NewBoard(),
		status: entity.StatusOngoing,
	}
}

// Positions - returns a copy of the nine cells.
func (that *Game) Positions() entity.Board {
	return that.board
}

// ApplyMove - places symbol at the 1-indexed position and re-evaluates the game status.
func (that *Game) ApplyMove(symbol entity.Symbol, position int) {
	if !entity.IsPositionInRange(position) {
		return
	}

	that.board[position-1] = entity.Cell(symbol)
	that.updateGameStatus()
}

func (that *Game) HasEnded() bool {
	return that.status != entity.StatusOngoing
}

// Winner - returns the winning symbol, if any.
func (that *Game) Winner() (entity.Symbol, bool) {
	if that.status != entity.StatusWon {
		return "", false
	}

	return that.winner, true
}

func (that *Game) IsDraw() bool {
	return that.status == entity.StatusDrawn
}

// Reinitialize - clears the board and the outcome.
func (that *Game) Reinitialize() {
	that.board = entity.NewBoard()
	that.winner = ""
	that.status = entity.StatusOngoing
}

func (that *Game) IsInRange(position int) bool {
	return entity.IsPositionInRange(position)
}

func (that *Game) IsFree(board entity.Board, position int) bool {
	return board.IsFree(position)
}

func (that *Game) IsValidSymbol(symbol string) bool {
	return symbol == string(entity.SymbolX) || symbol == string(entity.SymbolO)
}

// updateGameStatus - checks the game status after a move.
func (that *Game) updateGameStatus() {
	switch winner := checkGameStatus(that.board); winner {
	case "":
		that.winner = ""
		that.status = entity.StatusOngoing
	case playerTie:
		that.winner = ""
		that.status = entity.StatusDrawn
	default:
		that.winner = entity.Symbol(winner)
		that.status = entity.StatusWon
	}
}

func checkGameStatus(board entity.Board) string {
	for _, combo := range winCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return string(a)
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return ""
		}
	}

	return playerTie
}
