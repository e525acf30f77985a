package i18n

// Message keys. The English catalog carries the wire-visible strings clients depend on.
const (
	OkKey              = "game.ok"
	OutOfRangeKey      = "game.move.out_of_range"
	PositionTakenKey   = "game.move.position_taken"
	InvalidSymbolKey   = "game.move.invalid_symbol"
	ConsecutivePlayKey = "game.move.consecutive_play"
	GameFinishedKey    = "game.finished"
	WinKey             = "game.outcome.win"
	DrawKey            = "game.outcome.draw"
)
