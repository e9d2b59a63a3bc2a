package editor

import (
	"fmt"
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// lineChanges counts whole lines added and removed going from before to
// after.
func lineChanges(before, after string) (added, removed int) {
	if before == after {
		return 0, 0
	}

	// A shared trailing newline keeps the last line comparable.
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before+"\n", after+"\n")
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)
	for _, df := range diffs {
		n := strings.Count(df.Text, "\n")
		switch df.Type {
		case dmp.DiffInsert:
			added += n
		case dmp.DiffDelete:
			removed += n
		}
	}
	return added, removed
}

// quitLabel is the confirm-quit prompt with a summary of unsaved lines.
func (m Model) quitLabel() string {
	added, removed := lineChanges(m.savedText, m.buf.Text())
	if added == 0 && removed == 0 {
		return KindConfirmQuit.Label()
	}
	return fmt.Sprintf("Unsaved changes (+%d -%d), quit? (y/n)", added, removed)
}
