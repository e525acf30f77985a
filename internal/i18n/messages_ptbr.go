package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, OkKey, "Ok")
	message.SetString(lang, OutOfRangeKey, "posição fora do intervalo, escolha de 1 a 9")
	message.SetString(lang, PositionTakenKey, "posição já ocupada, escolha outra")
	message.SetString(lang, InvalidSymbolKey, "entrada inválida, o símbolo deve ser 'x' ou 'o' minúsculo")
	message.SetString(lang, ConsecutivePlayKey, "Você não pode jogar duas vezes seguidas")
	message.SetString(lang, GameFinishedKey, "o jogo já terminou")
	message.SetString(lang, WinKey, "O jogador usando '%s' venceu!")
	message.SetString(lang, DrawKey, " DEU EMPATE!")
}
