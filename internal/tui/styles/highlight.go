package styles

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

const highlightStyle = "catppuccin-mocha"

// HighlightYAML colours YAML text for the terminal. If the text cannot be
// tokenised it is returned unchanged.
func HighlightYAML(text string) string {
	lexer := lexers.Get("yaml")
	if lexer == nil {
		return text
	}
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	style := chromastyles.Get(highlightStyle)
	var sb strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := style.Get(token.Type)
		if !entry.Colour.IsSet() {
			sb.WriteString(token.Value)
			continue
		}

		ls := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			ls = ls.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			ls = ls.Italic(true)
		}
		// lipgloss pads multi-line blocks, so render line by line
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				sb.WriteString("\n")
			}
			if part != "" {
				sb.WriteString(ls.Render(part))
			}
		}
	}
	return sb.String()
}
