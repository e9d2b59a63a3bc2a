package buffer

import (
	"slices"
	"strings"
)

// InsertChar inserts r at the cursor, replacing the active selection.
// A '\n' splits the line.
func (b *Buffer) InsertChar(r rune) {
	b.InsertText(string(r))
}

// InsertText inserts s (which may contain '\n') at the cursor, or replaces
// the active selection. The whole insertion is one undo step.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replace(r, s)
}

// SplitLine breaks the current line at the cursor. The right part becomes a
// new line below and the cursor moves to its start. An active selection is
// deleted first.
func (b *Buffer) SplitLine() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.replace(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with the previous line.
		prevRow := row - 1
		b.replace(Range{Start: Pos{Row: prevRow, Col: len(b.lines[prevRow])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.replace(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	case row < b.lastRow():
		// Join with the next line.
		b.replace(Range{Start: b.cursor, End: Pos{Row: row + 1, Col: 0}}, "")
	}
}

// DeleteSelection deletes the active selection, if any, and leaves the
// cursor at the start of the removed range.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.replace(r, "")
}

// SwapLineDown exchanges the current line with the one below. The cursor
// follows the moved line. No-op on the last line.
func (b *Buffer) SwapLineDown() {
	row := b.cursor.Row
	if row >= b.lastRow() {
		return
	}
	b.swapLines(row, row+1)
}

// SwapLineUp exchanges the current line with the one above. The cursor
// follows the moved line. No-op on the first line.
func (b *Buffer) SwapLineUp() {
	row := b.cursor.Row
	if row <= 0 {
		return
	}
	b.swapLines(row, row-1)
}

func (b *Buffer) swapLines(row, target int) {
	next := Pos{Row: target, Col: b.cursor.Col}
	if slices.Equal(b.lines[row], b.lines[target]) {
		b.setState(next, next)
		return
	}

	prev := b.snapshot()
	b.lines[row], b.lines[target] = b.lines[target], b.lines[row]
	b.commitEdit(prev, next)
}

// replace swaps the text in r for text as a single undoable edit.
func (b *Buffer) replace(r Range, text string) {
	prev := b.snapshot()
	nextCursor, changed := b.replaceRange(r, text)
	if !changed {
		// Same text: still collapse onto the insertion end.
		b.setState(nextCursor, nextCursor)
		return
	}
	b.commitEdit(prev, nextCursor)
}

// commitEdit finishes a text mutation: the selection collapses onto cursor
// and the previous state becomes an undo step.
func (b *Buffer) commitEdit(prev bufferSnapshot, cursor Pos) {
	b.cursor = b.clampPos(cursor)
	b.anchor = b.cursor
	b.version++
	b.textVersion++
	b.recordUndo(prev)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col
	if textForLinesRange(b.lines, r) == text {
		return r.End, false
	}

	prefix := append([]rune(nil), b.lines[startRow][:startCol]...)
	suffix := append([]rune(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]rune, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, []rune(p))
	}

	repl := make([][]rune, 0, len(ins))
	if len(ins) == 1 {
		line := make([]rune, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make([]rune, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, ins[i])
		}

		lastPart := ins[len(ins)-1]
		last := make([]rune, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	before := b.lines[:startRow]
	after := b.lines[endRow+1:]
	out := make([][]rune, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	if len(out) == 0 {
		out = [][]rune{nil}
	}

	b.lines = out
	return nextCursor, true
}

// TextInRange returns the document text covered by r (clamped, normalized).
func (b *Buffer) TextInRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)))
}

func textForLinesRange(lines [][]rune, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	if !r.MultiRow() {
		return string(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == r.Start.Row {
			partStart = r.Start.Col
		}
		if row == r.End.Row {
			partEnd = r.End.Col
		}
		sb.WriteString(string(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
