package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

// Buffer is the pure document state: lines, cursor and selection anchor.
//
// The selection is the range between the anchor and the cursor; it is empty
// when both are equal. Every exported method leaves the cursor and the anchor
// inside document bounds.
type Buffer struct {
	lines [][]rune

	// version bumps on any observable change (text, cursor or anchor).
	version uint64
	// textVersion bumps only when the text changes.
	textVersion uint64

	cursor Pos
	anchor Pos

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

// Text joins the lines with a single '\n' between consecutive lines.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Lines returns a copy of the document lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

// LinesRange returns lines [start, end) clipped to the document.
func (b *Buffer) LinesRange(start, end int) []string {
	start = clampInt(start, 0, len(b.lines))
	end = clampInt(end, start, len(b.lines))
	out := make([]string, 0, end-start)
	for _, line := range b.lines[start:end] {
		out = append(out, string(line))
	}
	return out
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// LineLen returns the rune length of row, or 0 when row is out of range.
func (b *Buffer) LineLen(row int) int { return b.lineLen(row) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) Anchor() Pos { return b.anchor }

// Selection returns the normalized selection range, or false when the anchor
// equals the cursor.
func (b *Buffer) Selection() (Range, bool) {
	if b.anchor == b.cursor {
		return Range{}, false
	}
	return NormalizeRange(Range{Start: b.anchor, End: b.cursor}), true
}

// SetCursor moves the cursor to p (clamped) and collapses the selection.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	b.setState(next, next)
}

// SetSelection places the anchor and the cursor independently (both clamped).
func (b *Buffer) SetSelection(anchor, cursor Pos) {
	b.setState(b.clampPos(cursor), b.clampPos(anchor))
}

// ClearSelection collapses the anchor onto the cursor.
func (b *Buffer) ClearSelection() {
	b.setState(b.cursor, b.cursor)
}

func (b *Buffer) setState(cursor, anchor Pos) {
	if cursor == b.cursor && anchor == b.anchor {
		return
	}
	b.cursor = cursor
	b.anchor = anchor
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) lastRow() int { return len(b.lines) - 1 }

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
