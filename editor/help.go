package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/fennec/internal/cells"
)

// Popup frame: border (1 each side) and horizontal padding (1 each side).
const (
	popupFrameX = 4
	popupFrameY = 2
	// Title plus a blank separator line.
	popupHeaderRows = 2
)

func (m *Model) openHelp() {
	if !m.overlay.Open(ModePopup, KindHelp) {
		return
	}
	m.help.SetContent(m.helpText())
	m.help.GotoTop()
	m.layoutHelp()
}

// layoutHelp sizes the popup body to the middle two thirds of the screen.
func (m *Model) layoutHelp() {
	w, h := popupSize(m.width, m.height)
	m.help.Width = maxInt(w-popupFrameX, 1)
	m.help.Height = maxInt(h-popupFrameY-popupHeaderRows, 1)
	m.help.SetYOffset(m.help.YOffset)
}

func popupSize(width, height int) (int, int) {
	w := width / 6 * 4
	h := height / 6 * 4
	return maxInt(w, minInt(width, 24)), maxInt(h, minInt(height, 6))
}

func (m *Model) scrollHelp(delta int) {
	if m.overlay.Kind != KindHelp {
		return
	}
	m.help.SetYOffset(m.help.YOffset + delta)
}

func (m Model) helpText() string {
	configPath := m.cfg.ConfigPath
	if configPath == "" {
		configPath = "unavailable"
	}
	version := m.cfg.Version
	if version == "" {
		version = "dev"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "fennec editor\nVersion %s\nConfig: %s\n\nCommands:\n", version, configPath)
	for _, b := range m.cfg.KeyMap.commandBindings() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		fmt.Fprintf(&sb, " %s: %s\n", h.Key, h.Desc)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderHelpPopup draws the help box centered over base.
func (m Model) renderHelpPopup(base string) string {
	st := m.cfg.Style
	title := st.PopupTitle.Render(cells.Center(KindHelp.Label(), m.help.Width))
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.help.View())
	box := st.Popup.Render(body)
	return overlay.Composite(box, base, overlay.Center, overlay.Center, 0, 0)
}
