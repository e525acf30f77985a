package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrInvalidMove         = errors.New("invalid move")
	ErrUnknownLedgerDriver = errors.New("unknown ledger driver")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
