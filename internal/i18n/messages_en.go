package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, OkKey, "Ok")
	message.SetString(lang, OutOfRangeKey, "position out of range, enter from 1 to 9")
	message.SetString(lang, PositionTakenKey, "position has been taken, choose another one")
	message.SetString(lang, InvalidSymbolKey, "invalid input, symbol be either 'x' or 'o' lowercase")
	message.SetString(lang, ConsecutivePlayKey, "You cannot play consecutively")
	message.SetString(lang, GameFinishedKey, "game is already finished")
	message.SetString(lang, WinKey, "Player using '%s' has won!")
	message.SetString(lang, DrawKey, " IT'S A DRAW!")
}
