package buffer

import "strings"

// Find looks for the first literal, case-sensitive occurrence of pattern at
// or after from. On from.Row only the text at columns >= from.Col is
// searched. When nothing is found through the last row, the search wraps to
// row 0 and stops before from.Row.
//
// The returned range uses absolute rune columns. An empty pattern never
// matches.
func (b *Buffer) Find(pattern string, from Pos) (Range, bool) {
	if pattern == "" {
		return Range{}, false
	}
	from = b.clampPos(from)
	n := len([]rune(pattern))

	for row := from.Row; row < len(b.lines); row++ {
		offset := 0
		if row == from.Row {
			offset = from.Col
		}
		if col, ok := indexRunes(b.lines[row][offset:], pattern); ok {
			return matchRange(row, offset+col, n), true
		}
	}
	for row := 0; row < from.Row; row++ {
		if col, ok := indexRunes(b.lines[row], pattern); ok {
			return matchRange(row, col, n), true
		}
	}
	return Range{}, false
}

// FindNext searches from the cursor and, on a match, selects it: the anchor
// goes to the match start and the cursor to the match end. State is left
// unchanged when nothing matches.
func (b *Buffer) FindNext(pattern string) bool {
	r, ok := b.Find(pattern, b.cursor)
	if !ok {
		return false
	}
	b.setState(r.End, r.Start)
	return true
}

func matchRange(row, col, n int) Range {
	return Range{
		Start: Pos{Row: row, Col: col},
		End:   Pos{Row: row, Col: col + n},
	}
}

// indexRunes returns the rune column of the first occurrence of pattern in
// line.
func indexRunes(line []rune, pattern string) (int, bool) {
	s := string(line)
	i := strings.Index(s, pattern)
	if i < 0 {
		return 0, false
	}
	return len([]rune(s[:i])), true
}
