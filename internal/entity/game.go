package entity

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"

	SymbolX Symbol = "x"
	SymbolO Symbol = "o"

	EmptyCell Cell = "-"
)

const (
	BoardSize   = 9
	MinPosition = 1
	MaxPosition = BoardSize
)

// Symbol is the mark a player puts on the board.
type Symbol string

// Cell is the content of a single board square: EmptyCell, "x" or "o".
type Cell string

// Board holds the nine cells in order 1..9 (index = position - 1).
type Board [BoardSize]Cell

// Move is one accepted play.
type Move struct {
	Symbol   Symbol `json:"symbol"`
	Position int    `json:"position"`
}

// Outcome describes where the current game stands.
type Outcome struct {
	Status string `json:"status"`
	Winner Symbol `json:"winner,omitempty"`
}

type PlayResult struct {
	Message string  `json:"message"`
	Board   Board   `json:"board"`
	Outcome Outcome `json:"-"`
}

type ResetResult struct {
	Message string `json:"message"`
	Board   Board  `json:"board"`
}

func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = EmptyCell
	}

	return board
}

// Replay - rebuilds a board from moves in ledger order. The last move on a position wins.
func Replay(moves []Move) Board {
	board := NewBoard()
	for _, move := range moves {
		if !IsPositionInRange(move.Position) {
			continue
		}
		board[move.Position-1] = Cell(move.Symbol)
	}

	return board
}

func IsPositionInRange(position int) bool {
	return position >= MinPosition && position <= MaxPosition
}

func (that Board) IsFree(position int) bool {
	return IsPositionInRange(position) && that[position-1] == EmptyCell
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

func OngoingOutcome() Outcome {
	return Outcome{Status: StatusOngoing}
}
