package editor

import "testing"

func TestOverlay_OpenRejectsSecond(t *testing.T) {
	var o Overlay
	if o.Active() {
		t.Fatalf("zero overlay must be inactive")
	}
	if !o.Open(ModePrompt, KindFind) {
		t.Fatalf("expected first open to succeed")
	}
	o.AppendInput("ab")
	if o.Open(ModePopup, KindHelp) {
		t.Fatalf("expected second open to be rejected")
	}
	if got, want := o, (Overlay{Mode: ModePrompt, Kind: KindFind, Input: "ab"}); got != want {
		t.Fatalf("overlay=%+v, want %+v", got, want)
	}
}

func TestOverlay_OpenRejectsNone(t *testing.T) {
	var o Overlay
	if o.Open(ModeNone, KindFind) || o.Open(ModePrompt, KindNone) {
		t.Fatalf("expected open with none to be rejected")
	}
	if o.Active() {
		t.Fatalf("overlay must stay inactive")
	}
}

func TestOverlay_InputEditing(t *testing.T) {
	var o Overlay
	o.AppendInput("lost")
	if o.Input != "" {
		t.Fatalf("input on inactive overlay=%q, want empty", o.Input)
	}

	o.Open(ModePrompt, KindGotoLine)
	o.AppendInput("1é")
	o.Backspace()
	if got, want := o.Input, "1"; got != want {
		t.Fatalf("input=%q, want %q", got, want)
	}
	o.Backspace()
	o.Backspace()
	if o.Input != "" {
		t.Fatalf("input=%q, want empty", o.Input)
	}

	o.Close()
	if o != (Overlay{}) {
		t.Fatalf("overlay after close=%+v", o)
	}
	if !o.Open(ModePrompt, KindFind) {
		t.Fatalf("expected reopen after close")
	}
}

func TestKind_Labels(t *testing.T) {
	cases := map[Kind]string{
		KindConfirmQuit: "Unsaved changes, quit? (y/n)",
		KindFind:        "Search",
		KindGotoLine:    "Go to",
		KindHelp:        "Help!",
		KindNone:        "",
	}
	for k, want := range cases {
		if got := k.Label(); got != want {
			t.Fatalf("%v label=%q, want %q", k, got, want)
		}
	}
}
