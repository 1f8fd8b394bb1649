package highlighter

import (
	. "difgo/internal/themes"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/gdamore/tcell"
)

var HighlighterGlobal = Highlighter{}

type Highlighter struct {

}

var theme = DifgoDark

// Palette holds the terminal colors a diff view needs, resolved from the
// current chroma style.
type Palette struct {
	Added   int
	Removed int
	Changed int
	LineNum int
	Fg      int
	Bg      int
}

func DetectLang(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil { return "" }
	config := lexer.Config()
	if config == nil { return "" }
	return strings.ToLower(config.Name)
}

func (h *Highlighter) SetTheme(name string) {
	theme = styles.Get(name)
}

func (h *Highlighter) ThemeName() string { return theme.Name }

func (h *Highlighter) Palette() Palette {
	return Palette{
		Added:   colorOf(chroma.GenericInserted),
		Removed: colorOf(chroma.GenericDeleted),
		Changed: colorOf(chroma.GenericEmph),
		LineNum: colorOf(chroma.LineNumbers),
		Fg:      int(tcell.GetColor(theme.Get(chroma.Background).Colour.String())),
		Bg:      int(tcell.GetColor(theme.Get(chroma.Background).Background.String())),
	}
}

func colorOf(tokenType chroma.TokenType) int {
	return int(tcell.GetColor(theme.Get(tokenType).Colour.String()))
}

// Colorize returns a color per character of one source line.
func (h *Highlighter) Colorize(line string, filename string) []int {
	if line == "" { return nil }

	lexer := lexers.Match(filename)
	if lexer == nil { lexer = lexers.Fallback }

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil { return nil }

	lineColors := []int{}
	for _, token := range iterator.Tokens() {
		chromaColor := theme.Get(token.Type).Colour.String()
		color := int(tcell.GetColor(chromaColor))
		// copy color for each token character
		for range token.Value { lineColors = append(lineColors, color) }
	}
	return lineColors
}
