package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Gutter lipgloss.Style
	// Filler marks rows past the end of the document.
	Filler lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style

	Popup      lipgloss.Style
	PopupTitle lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	chrome := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	return Style{
		Text:       lipgloss.NewStyle(),
		Selection:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Background(lipgloss.Color("238")),
		Cursor:     lipgloss.NewStyle().Reverse(true),
		Gutter:     gutter,
		Filler:     gutter,
		Header:     chrome.Bold(true),
		Footer:     chrome,
		Popup:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		PopupTitle: lipgloss.NewStyle().Bold(true),
	}
}
