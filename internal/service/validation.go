package service

import (
	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
)

type PositionValidator interface {
	IsInRange(position int) bool
	IsFree(board entity.Board, position int) bool
}

type SymbolValidator interface {
	IsValidSymbol(symbol string) bool
}

// MessageCatalog supplies the rejection reasons reported to players.
type MessageCatalog interface {
	OutOfRange() string
	PositionTaken() string
	InvalidSymbol() string
	ConsecutivePlay() string
}

type ValidationService interface {
	Validate(symbol string, position int, board entity.Board, history []entity.Symbol) entity.ErrorList
}

type candidate struct {
	symbol   string
	position int
	board    entity.Board
	history  []entity.Symbol
}

// check returns a rejection message and false when the candidate fails it.
type check func(in candidate) (string, bool)

type validationService struct {
	checks []check
}

func NewValidationService(positions PositionValidator, symbols SymbolValidator, messages MessageCatalog) ValidationService {
	return &validationService{
		checks: []check{
			checkRange(positions, messages),
			checkOccupancy(positions, messages),
			checkSymbol(symbols, messages),
			checkConsecutive(messages),
		},
	}
}

// Validate - runs every check against the move and returns all failures in check order.
// It never modifies board or history.
func (that *validationService) Validate(symbol string, position int, board entity.Board, history []entity.Symbol) entity.ErrorList {
	in := candidate{
		symbol:   symbol,
		position: position,
		board:    board,
		history:  history,
	}

	var errs entity.ErrorList
	for _, run := range that.checks {
		if message, ok := run(in); !ok {
			errs = append(errs, entity.ValidationError{Message: message})
		}
	}

	return errs
}

func checkRange(positions PositionValidator, messages MessageCatalog) check {
	return func(in candidate) (string, bool) {
		return messages.OutOfRange(), positions.IsInRange(in.position)
	}
}

// checkOccupancy only looks at the board for in-range positions; the range check reports the rest.
func checkOccupancy(positions PositionValidator, messages MessageCatalog) check {
	return func(in candidate) (string, bool) {
		if !positions.IsInRange(in.position) {
			return "", true
		}

		return messages.PositionTaken(), positions.IsFree(in.board, in.position)
	}
}

func checkSymbol(symbols SymbolValidator, messages MessageCatalog) check {
	return func(in candidate) (string, bool) {
		return messages.InvalidSymbol(), symbols.IsValidSymbol(in.symbol)
	}
}

func checkConsecutive(messages MessageCatalog) check {
	return func(in candidate) (string, bool) {
		if len(in.history) == 0 {
			return "", true
		}

		return messages.ConsecutivePlay(), in.history[len(in.history)-1] != entity.Symbol(in.symbol)
	}
}
