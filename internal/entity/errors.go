package entity

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/apperror"
)

// ValidationError is a human-readable reason a move was rejected.
type ValidationError struct {
	Message string `json:"message"`
}

// ErrorList collects every reason a single move was rejected, in check order.
type ErrorList []ValidationError

func (that ErrorList) Error() string {
	return apperror.ErrInvalidMove.Error() + ": " + strings.Join(that.Messages(), "; ")
}

func (that ErrorList) Unwrap() error {
	return apperror.ErrInvalidMove
}

func (that ErrorList) Messages() []string {
	messages := make([]string, 0, len(that))
	for _, item := range that {
		messages = append(messages, item.Message)
	}

	return messages
}
