// Package syntax colours document lines with chroma lexers and styles.
package syntax

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/fennec/editor"
)

// Highlighter implements editor.Highlighter. Lines are tokenised one at a
// time, so constructs spanning several lines are coloured per line.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style

	cache map[chroma.TokenType]lipgloss.Style
}

// New picks a lexer for filename. Unknown file types get a plain highlighter
// that returns no spans.
func New(filename string, theme Theme) *Highlighter {
	h := &Highlighter{
		style: theme.Style,
		cache: make(map[chroma.TokenType]lipgloss.Style),
	}
	if lx := lexers.Match(filename); lx != nil {
		h.lexer = chroma.Coalesce(lx)
	}
	return h
}

// Plain reports whether no lexer matched the file name.
func (h *Highlighter) Plain() bool { return h.lexer == nil }

// Language returns the lexer name, or "plain".
func (h *Highlighter) Language() string {
	if h.lexer == nil {
		return "plain"
	}
	return h.lexer.Config().Name
}

func (h *Highlighter) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if h.lexer == nil || ctx.Text == "" {
		return nil, nil
	}

	it, err := h.lexer.Tokenise(nil, ctx.Text)
	if err != nil {
		return nil, err
	}

	var spans []editor.HighlightSpan
	col := 0
	for _, tok := range it.Tokens() {
		n := len([]rune(tok.Value))
		if n == 0 {
			continue
		}
		if st, ok := h.styleFor(tok.Type); ok {
			spans = append(spans, editor.HighlightSpan{StartCol: col, EndCol: col + n, Style: st})
		}
		col += n
	}
	return spans, nil
}

func (h *Highlighter) styleFor(tt chroma.TokenType) (lipgloss.Style, bool) {
	if st, ok := h.cache[tt]; ok {
		return st, true
	}

	entry := h.style.Get(tt)
	if !entry.Colour.IsSet() && entry.Bold != chroma.Yes && entry.Italic != chroma.Yes && entry.Underline != chroma.Yes {
		return lipgloss.Style{}, false
	}

	st := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		st = st.Foreground(color(entry.Colour))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	h.cache[tt] = st
	return st, true
}
