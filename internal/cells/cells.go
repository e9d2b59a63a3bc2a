// Package cells measures text in terminal cells.
package cells

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a non-positive tab width is passed.
const DefaultTabWidth = 4

// Cell is one document rune laid out on screen.
type Cell struct {
	// Col is the rune index in the source line.
	Col int
	// Text is what gets written to the terminal for this rune. Tabs become
	// spaces, control characters become caret notation.
	Text string
	// Start is the first screen column occupied by this rune.
	Start int
	Width int
}

// Width returns the cell width of s. Zero-width results from runewidth are
// re-measured per grapheme cluster with uniseg.
func Width(s string) int {
	w := runewidth.StringWidth(s)
	if w == 0 && s != "" {
		w = uniseg.StringWidth(s)
	}
	return w
}

// RuneWidth returns the cell width of a single rune (tabs excluded).
func RuneWidth(r rune) int {
	if isControl(r) {
		return 2
	}
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// TabAdvance returns how many cells a tab occupies at screen column col.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	adv := tabWidth - col%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// Layout places every rune of line on screen, expanding tabs to the next tab
// stop.
func Layout(line string, tabWidth int) []Cell {
	if line == "" {
		return nil
	}

	out := make([]Cell, 0, len(line))
	x := 0
	col := 0
	for _, r := range line {
		c := Cell{Col: col, Start: x}
		switch {
		case r == '\t':
			c.Width = TabAdvance(x, tabWidth)
			c.Text = strings.Repeat(" ", c.Width)
		case isControl(r):
			c.Width = 2
			c.Text = caret(r)
		default:
			c.Width = RuneWidth(r)
			c.Text = string(r)
		}
		out = append(out, c)
		x += c.Width
		col++
	}
	return out
}

// Truncate cuts s to at most w cells.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

// Center pads s with spaces so it sits in the middle of w cells. Text wider
// than w is truncated.
func Center(s string, w int) string {
	s = Truncate(s, w)
	gap := w - Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func isControl(r rune) bool {
	return r < 0x20 && r != '\t' || r == 0x7f
}

func caret(r rune) string {
	if r == 0x7f {
		return "^?"
	}
	return "^" + string(r+'@')
}
