package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; a failed read pastes nothing.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
