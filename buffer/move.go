package buffer

import "unicode"

// MoveVertical moves the cursor delta rows (clamped) and re-clamps the
// column to the target line. The selection collapses.
func (b *Buffer) MoveVertical(delta int) {
	next := b.clampPos(Pos{Row: b.cursor.Row + delta, Col: b.cursor.Col})
	b.setState(next, next)
}

// MoveHorizontal moves the cursor delta columns, wrapping across line
// boundaries.
//
// With an active selection the cursor collapses to the selection's right
// endpoint (delta > 0) or left endpoint (delta < 0) and delta itself is not
// applied.
func (b *Buffer) MoveHorizontal(delta int) {
	if r, ok := b.Selection(); ok {
		switch {
		case delta > 0:
			b.setState(r.End, r.End)
		case delta < 0:
			b.setState(r.Start, r.Start)
		}
		return
	}

	next := b.stepN(b.cursor, delta)
	b.setState(next, next)
}

// ExtendSelection moves only the anchor by delta columns. At a line boundary
// the anchor wraps to the adjacent row, so the selection may grow across
// rows. The cursor stays put.
func (b *Buffer) ExtendSelection(delta int) {
	b.setState(b.cursor, b.stepN(b.anchor, delta))
}

// ExtendSelectionVertical moves only the anchor by delta rows, clamping its
// column to the target line.
func (b *Buffer) ExtendSelectionVertical(delta int) {
	next := b.clampPos(Pos{Row: b.anchor.Row + delta, Col: b.anchor.Col})
	b.setState(b.cursor, next)
}

// GotoLine jumps to the start of row (clamped to the document).
func (b *Buffer) GotoLine(row int) {
	next := b.clampPos(Pos{Row: row, Col: 0})
	b.setState(next, next)
}

func (b *Buffer) MoveLineStart() {
	next := Pos{Row: b.cursor.Row, Col: 0}
	b.setState(next, next)
}

func (b *Buffer) MoveLineEnd() {
	next := Pos{Row: b.cursor.Row, Col: b.lineLen(b.cursor.Row)}
	b.setState(next, next)
}

func (b *Buffer) MoveWordLeft() {
	next := Pos{Row: b.cursor.Row, Col: prevWordBoundary(b.lines[b.cursor.Row], b.cursor.Col)}
	b.setState(next, next)
}

func (b *Buffer) MoveWordRight() {
	next := Pos{Row: b.cursor.Row, Col: nextWordBoundary(b.lines[b.cursor.Row], b.cursor.Col)}
	b.setState(next, next)
}

func (b *Buffer) stepN(p Pos, delta int) Pos {
	for ; delta > 0; delta-- {
		p = b.stepRight(p)
	}
	for ; delta < 0; delta++ {
		p = b.stepLeft(p)
	}
	return p
}

func (b *Buffer) stepLeft(p Pos) Pos {
	if p.Col > 0 {
		return Pos{Row: p.Row, Col: p.Col - 1}
	}
	if p.Row > 0 {
		return Pos{Row: p.Row - 1, Col: b.lineLen(p.Row - 1)}
	}
	return p
}

func (b *Buffer) stepRight(p Pos) Pos {
	if p.Col < b.lineLen(p.Row) {
		return Pos{Row: p.Row, Col: p.Col + 1}
	}
	if p.Row < b.lastRow() {
		return Pos{Row: p.Row + 1, Col: 0}
	}
	return p
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single line)
func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && unicode.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && unicode.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !unicode.IsSpace(line[i]) {
		i++
	}
	return i
}
