package i18n

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-webapi/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-webapi/internal/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

// Catalog renders game messages in one language.
type Catalog struct {
	printer *message.Printer
}

// NewCatalog - builds a catalog for one of the supported languages.
func NewCatalog(lang string) (*Catalog, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnsupportedLanguage, lang)
	}

	for _, candidate := range supported {
		if candidate == tag {
			return &Catalog{printer: message.NewPrinter(tag)}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrUnsupportedLanguage, lang)
}

// MustCatalog - like NewCatalog, panics on unsupported languages.
func MustCatalog(lang string) *Catalog {
	catalog, err := NewCatalog(lang)
	if err != nil {
		panic(err)
	}

	return catalog
}

func (that *Catalog) Ok() string {
	return that.printer.Sprintf(OkKey)
}

func (that *Catalog) OutOfRange() string {
	return that.printer.Sprintf(OutOfRangeKey)
}

func (that *Catalog) PositionTaken() string {
	return that.printer.Sprintf(PositionTakenKey)
}

func (that *Catalog) InvalidSymbol() string {
	return that.printer.Sprintf(InvalidSymbolKey)
}

func (that *Catalog) ConsecutivePlay() string {
	return that.printer.Sprintf(ConsecutivePlayKey)
}

func (that *Catalog) GameFinished() string {
	return that.printer.Sprintf(GameFinishedKey)
}

func (that *Catalog) Win(symbol entity.Symbol) string {
	return that.printer.Sprintf(WinKey, string(symbol))
}

func (that *Catalog) Draw() string {
	return that.printer.Sprintf(DrawKey)
}
