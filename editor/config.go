package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string
	// Path is shown in the header as given on the command line.
	Path string

	// Save persists the document text. When nil, saving reports an error.
	Save func(text string) error

	// Rendering options.
	Style        Style
	ShowLineNums bool
	// TabWidth is the tab stop distance in cells (default 4).
	TabWidth int

	// Forwarded to buffer.Options.
	HistoryLimit int

	KeyMap      KeyMap
	Highlighter Highlighter
	Clipboard   Clipboard

	// Help popup details.
	Version    string
	ConfigPath string
}
