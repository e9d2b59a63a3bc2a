package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/fennec/buffer"
	"github.com/iw2rmb/fennec/internal/cells"
)

// Frame is everything needed to draw one screen.
type Frame struct {
	Width  int
	Height int

	// Lines are the document rows starting at FirstRow. Rows past the end of
	// the slice are drawn as filler.
	Lines    []string
	FirstRow int

	Cursor       buffer.Pos
	Selection    buffer.Range
	HasSelection bool

	Header string
	// Footer is the status or prompt text on the left of the footer line.
	Footer string
	// Position is right-aligned in the footer.
	Position string

	ShowLineNums bool
	TabWidth     int
	Highlighter  Highlighter
	Style        Style
}

// Render draws f as a header line, the document rows and a footer line.
// It does not depend on any state outside f.
func Render(f Frame) string {
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}

	bodyRows := maxInt(f.Height-chromeRows, 1)
	out := make([]string, 0, bodyRows+chromeRows)
	out = append(out, f.Style.Header.Render(cells.Center(f.Header, f.Width)))

	digits := 0
	if f.ShowLineNums {
		digits = gutterDigits(f.FirstRow + bodyRows)
	}
	textWidth := maxInt(f.Width-gutterWidth(digits), 0)

	for i := 0; i < bodyRows; i++ {
		row := f.FirstRow + i
		var sb strings.Builder
		if f.ShowLineNums {
			sb.WriteString(f.Style.Gutter.Render(fmt.Sprintf(" %*d ", digits, row+1)))
		}
		if i < len(f.Lines) {
			sb.WriteString(renderLine(f, row, f.Lines[i], textWidth))
		} else {
			sb.WriteString(renderFiller(f.Style, textWidth))
		}
		out = append(out, sb.String())
	}

	out = append(out, renderFooter(f))
	return strings.Join(out, "\n")
}

func gutterDigits(maxRow int) int {
	return len(fmt.Sprint(maxInt(maxRow, 1)))
}

func gutterWidth(digits int) int {
	if digits == 0 {
		return 0
	}
	return digits + 2
}

func renderFiller(st Style, width int) string {
	if width <= 0 {
		return ""
	}
	return st.Filler.Render("~") + st.Text.Render(strings.Repeat(" ", width-1))
}

func renderFooter(f Frame) string {
	pos := cells.Truncate(f.Position, f.Width)
	left := cells.Truncate(f.Footer, maxInt(f.Width-cells.Width(pos)-1, 0))
	gap := maxInt(f.Width-cells.Width(left)-cells.Width(pos), 0)
	return f.Style.Footer.Render(left + strings.Repeat(" ", gap) + pos)
}

type cellRole int

const (
	roleText cellRole = iota
	roleSelection
	roleCursor
	// roleSpan + i is highlight span i.
	roleSpan
)

// renderLine draws one document row clipped to width cells. Consecutive
// cells with the same role share one styled run.
func renderLine(f Frame, row int, line string, width int) string {
	if width <= 0 {
		return ""
	}
	st := f.Style
	layout := cells.Layout(line, f.TabWidth)

	cursorCol := -1
	if row == f.Cursor.Row {
		cursorCol = f.Cursor.Col
	}
	showCursor := cursorCol >= 0 && !f.HasSelection
	selStart, selEnd, hasSel, selEOL := selectionColsForRow(f.Selection, f.HasSelection, row, len(layout))
	spans := highlightLine(f.Highlighter, row, line, cursorCol)

	styleFor := func(role cellRole) lipgloss.Style {
		switch {
		case role == roleSelection:
			return st.Selection
		case role == roleCursor:
			return st.Cursor
		case role >= roleSpan:
			return spans[role-roleSpan].Style.Inherit(st.Text)
		default:
			return st.Text
		}
	}

	var (
		sb      strings.Builder
		run     strings.Builder
		runRole cellRole
		used    int
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(styleFor(runRole).Render(run.String()))
		run.Reset()
	}
	emit := func(role cellRole, text string) {
		if role != runRole {
			flush()
			runRole = role
		}
		run.WriteString(text)
	}

	spanIdx := 0
	for _, c := range layout {
		if c.Start >= width {
			break
		}

		role := roleText
		for spanIdx < len(spans) && spans[spanIdx].EndCol <= c.Col {
			spanIdx++
		}
		if spanIdx < len(spans) && spans[spanIdx].StartCol <= c.Col {
			role = roleSpan + cellRole(spanIdx)
		}
		if hasSel && c.Col >= selStart && c.Col < selEnd {
			role = roleSelection
		}
		if showCursor && c.Col == cursorCol {
			role = roleCursor
		}

		text := c.Text
		if c.Start+c.Width > width {
			// Wide rune cut by the right edge: keep alignment with blanks.
			text = strings.Repeat(" ", width-c.Start)
		}
		emit(role, text)
		used = minInt(c.Start+c.Width, width)
	}

	// Cursor after the last character is a one-cell placeholder.
	if showCursor && cursorCol >= len(layout) && used < width {
		emit(roleCursor, " ")
		used++
	}
	// A selected line break is one selected cell past the line end.
	if selEOL && used < width {
		emit(roleSelection, " ")
		used++
	}
	if used < width {
		emit(roleText, strings.Repeat(" ", width-used))
	}
	flush()
	return sb.String()
}

// selectionColsForRow returns the selected columns of row and whether the
// row's line break is selected too.
func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has, eol bool) {
	if !ok {
		return 0, 0, false, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false, false
	}
	eol = row < sel.End.Row

	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.Col
	}
	if row == sel.End.Row {
		end = sel.End.Col
	}
	start = clampInt(start, 0, lineLen)
	end = clampInt(end, 0, lineLen)
	return start, end, start < end, eol
}

func (m Model) frame() Frame {
	sel, hasSel := m.buf.Selection()
	bodyRows := m.vp.VisibleRows()
	cursor := m.buf.Cursor()

	header := m.cfg.Path
	if header == "" {
		header = "[new]"
	}
	if m.dirty {
		header += "*"
	}

	return Frame{
		Width:        m.width,
		Height:       m.height,
		Lines:        m.buf.LinesRange(m.vp.Scroll, m.vp.Scroll+bodyRows),
		FirstRow:     m.vp.Scroll,
		Cursor:       cursor,
		Selection:    sel,
		HasSelection: hasSel,
		Header:       header,
		Footer:       m.footerText(),
		Position:     fmt.Sprintf("%d:%d", cursor.Col+1, cursor.Row+1),
		ShowLineNums: m.cfg.ShowLineNums,
		TabWidth:     m.cfg.TabWidth,
		Highlighter:  m.cfg.Highlighter,
		Style:        m.cfg.Style,
	}
}

func (m Model) footerText() string {
	if m.overlay.Mode != ModePrompt {
		return m.status
	}
	label := m.overlay.Kind.Label()
	if m.overlay.Kind == KindConfirmQuit {
		label = m.quitLabel()
	}
	s := label + ": " + m.overlay.Input
	if m.status != "" {
		s += "  " + m.status
	}
	return s
}
