package syntax

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/fennec/editor"
	"github.com/iw2rmb/fennec/internal/config"
)

// Palette holds the chrome colours derived from a chroma style.
type Palette struct {
	Background  chroma.Colour
	Foreground  chroma.Colour
	GutterBg    chroma.Colour
	GutterFg    chroma.Colour
	HighlightBg chroma.Colour
	HighlightFg chroma.Colour
	HeaderBg    chroma.Colour
}

type Theme struct {
	Name    string
	Style   *chroma.Style
	Palette Palette
}

// LoadTheme resolves name in the chroma style registry, falling back to the
// default theme. lightFix selects the light-background colour multipliers.
func LoadTheme(name string, lightFix bool) Theme {
	st, ok := styles.Registry[name]
	if !ok {
		name = config.DefaultTheme
		st = styles.Get(name)
	}
	return Theme{
		Name:    name,
		Style:   st,
		Palette: derivePalette(st, !lightFix),
	}
}

func derivePalette(st *chroma.Style, dark bool) Palette {
	base := st.Get(chroma.Background)
	bg := orColour(base.Background, chroma.NewColour(0, 0, 0))
	fg := orColour(base.Colour, chroma.NewColour(255, 255, 255))

	gutterMul, headerMul := 4.0, 5.0
	hlBg, hlFg := uint8(48), uint8(160)
	if !dark {
		gutterMul, headerMul = 2.0, 1.5
		hlBg, hlFg = 132, 48
	}

	gutter := st.Get(chroma.LineNumbers)
	p := Palette{
		Background:  bg,
		Foreground:  fg,
		GutterBg:    orColour(gutter.Background, scale(bg, gutterMul/3)),
		GutterFg:    orColour(gutter.Colour, fg),
		HighlightBg: orColour(st.Get(chroma.LineHighlight).Background, chroma.NewColour(hlBg, hlBg, hlBg)),
		HighlightFg: chroma.NewColour(hlFg, hlFg, hlFg),
		HeaderBg:    scale(bg, headerMul/3),
	}
	return p
}

// EditorStyle maps the palette onto the editor's render styles.
func (t Theme) EditorStyle() editor.Style {
	p := t.Palette
	text := lipgloss.NewStyle().Foreground(color(p.Foreground)).Background(color(p.Background))
	chrome := lipgloss.NewStyle().Foreground(color(p.GutterFg)).Background(color(p.HeaderBg))
	return editor.Style{
		Text:      text,
		Selection: lipgloss.NewStyle().Foreground(color(p.HighlightFg)).Background(color(p.HighlightBg)),
		Cursor:    text.Reverse(true),
		Header:    chrome.Bold(true),
		Footer:    chrome,
		Gutter:    lipgloss.NewStyle().Foreground(color(p.GutterFg)).Background(color(p.GutterBg)),
		Filler:    lipgloss.NewStyle().Foreground(color(p.GutterFg)).Background(color(p.Background)),
		Popup: lipgloss.NewStyle().
			Foreground(color(p.Foreground)).
			Background(color(p.GutterBg)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(p.GutterFg)).
			BorderBackground(color(p.GutterBg)).
			Padding(0, 1),
		PopupTitle: lipgloss.NewStyle().Foreground(color(p.Foreground)).Background(color(p.GutterBg)).Bold(true),
	}
}

func orColour(c, fallback chroma.Colour) chroma.Colour {
	if c.IsSet() {
		return c
	}
	return fallback
}

func scale(c chroma.Colour, mul float64) chroma.Colour {
	ch := func(v uint8) uint8 {
		f := float64(v) * mul
		if f > 255 {
			f = 255
		}
		return uint8(f)
	}
	return chroma.NewColour(ch(c.Red()), ch(c.Green()), ch(c.Blue()))
}

func color(c chroma.Colour) lipgloss.Color {
	return lipgloss.Color(c.String())
}
