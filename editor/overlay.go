package editor

// Mode says how an overlay is presented.
type Mode int

const (
	ModeNone Mode = iota
	// ModePrompt takes over the footer line.
	ModePrompt
	// ModePopup is a box composited over the document.
	ModePopup
)

type Kind int

const (
	KindNone Kind = iota
	KindConfirmQuit
	KindFind
	KindGotoLine
	KindHelp
)

func (k Kind) String() string {
	switch k {
	case KindConfirmQuit:
		return "confirm-quit"
	case KindFind:
		return "find"
	case KindGotoLine:
		return "goto-line"
	case KindHelp:
		return "help"
	default:
		return "none"
	}
}

// Label is the text shown in front of the prompt input, or the popup title.
func (k Kind) Label() string {
	switch k {
	case KindConfirmQuit:
		return "Unsaved changes, quit? (y/n)"
	case KindFind:
		return "Search"
	case KindGotoLine:
		return "Go to"
	case KindHelp:
		return "Help!"
	default:
		return ""
	}
}

// Overlay is the single modal slot of the editor: at most one prompt or
// popup is open at a time.
type Overlay struct {
	Mode  Mode
	Kind  Kind
	Input string
}

func (o Overlay) Active() bool { return o.Mode != ModeNone }

// Open starts a new overlay with empty input. It is rejected while another
// overlay is active.
func (o *Overlay) Open(mode Mode, kind Kind) bool {
	if o.Active() || mode == ModeNone || kind == KindNone {
		return false
	}
	*o = Overlay{Mode: mode, Kind: kind}
	return true
}

func (o *Overlay) Close() { *o = Overlay{} }

func (o *Overlay) AppendInput(s string) {
	if !o.Active() {
		return
	}
	o.Input += s
}

// Backspace removes the last rune of the input.
func (o *Overlay) Backspace() {
	if o.Input == "" {
		return
	}
	r := []rune(o.Input)
	o.Input = string(r[:len(r)-1])
}
