package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fennec/buffer"
)

const defaultTabWidth = 4

// Model is a Bubble Tea program model that edits a single document.
//
// All state lives in the value; Update returns the next Model.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	width  int
	height int
	vp     Viewport

	overlay Overlay
	// help scrolls the body of the help popup.
	help viewport.Model

	status string
	dirty  bool

	lastTextVersion uint64
	// savedText is the document as of the last load or save.
	savedText string

	err      error
	quitting bool
}

func New(cfg Config) Model {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if len(cfg.KeyMap.Save.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}

	m := Model{
		cfg:  cfg,
		buf:  buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		help: viewport.New(0, 0),
	}
	m.lastTextVersion = m.buf.TextVersion()
	m.savedText = m.buf.Text()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Overlay() Overlay { return m.overlay }

func (m Model) Viewport() Viewport { return m.vp }

// Status is the transient footer message. It is cleared by the next key.
func (m Model) Status() string { return m.status }

// Dirty reports whether the document changed since it was loaded or saved.
func (m Model) Dirty() bool { return m.dirty }

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.err }

func (m Model) Quitting() bool { return m.quitting }

func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.height = maxInt(height, 0)
	m.vp.Height = m.height
	m.vp.Reveal(m.buf.Cursor().Row)
	m.layoutHelp()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	v := Render(m.frame())
	if v != "" && m.overlay.Mode == ModePopup {
		v = m.renderHelpPopup(v)
	}
	return v
}
