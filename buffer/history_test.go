package buffer

import "testing"

func TestBuffer_UndoRedo(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 2})

	b.InsertText("c")
	b.InsertText("d")
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	if !b.Redo() {
		t.Fatalf("expected redo")
	}
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 4}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Undo_RestoresSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Pos{Row: 0, Col: 0}, Pos{Row: 0, Col: 5})

	b.InsertText("bye")
	b.Undo()

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection restored")
	}
	if want := (Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 0, Col: 5}}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
}

func TestBuffer_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected redo available")
	}

	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("expected redo cleared by new edit")
	}
	if b.Redo() {
		t.Fatalf("redo should fail")
	}
}

func TestBuffer_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("a")
	b.InsertText("b")
	b.InsertText("c")

	if !b.Undo() || !b.Undo() {
		t.Fatalf("expected two undo steps")
	}
	if b.Undo() {
		t.Fatalf("expected history exhausted")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_HistoryDisabled(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("expected history disabled")
	}
}

func TestBuffer_Undo_SwapLine(t *testing.T) {
	b := New("one\ntwo", Options{})
	b.SwapLineDown()
	b.Undo()
	if got, want := b.Text(), "one\ntwo"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}
