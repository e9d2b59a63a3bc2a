// Package clipboard adapts the system clipboard to editor.Clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System reads and writes the OS clipboard through atotto/clipboard.
type System struct{}

// Available reports whether a clipboard utility was found on this system.
func (System) Available() bool { return !clipboard.Unsupported }

func (System) ReadText() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return s, nil
}

func (System) WriteText(s string) error {
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
