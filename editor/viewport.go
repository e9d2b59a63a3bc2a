package editor

// chromeRows is the number of screen rows taken by the header and footer.
const chromeRows = 2

// Viewport tracks which document rows are on screen.
type Viewport struct {
	// Scroll is the first visible document row.
	Scroll int
	// Height is the full terminal height, chrome included.
	Height int
}

// VisibleRows is the number of document rows between header and footer. It
// is at least 1.
func (v Viewport) VisibleRows() int {
	return maxInt(v.Height-chromeRows, 1)
}

// Reveal scrolls the minimum amount that puts row on screen.
func (v *Viewport) Reveal(row int) {
	v.reveal(row, v.VisibleRows())
}

// RevealReserved is Reveal with a window of Height-reserved rows, leaving
// extra room below the target.
func (v *Viewport) RevealReserved(row, reserved int) {
	v.reveal(row, maxInt(v.Height-reserved, 1))
}

func (v *Viewport) reveal(row, rows int) {
	if row < v.Scroll {
		v.Scroll = row
	}
	if row >= v.Scroll+rows {
		v.Scroll = row - rows + 1
	}
	if v.Scroll < 0 {
		v.Scroll = 0
	}
}
