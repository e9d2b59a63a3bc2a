package editor

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fennec/internal/logger"
)

const (
	statusSaved    = "Saved!"
	statusNotFound = "Could not find string!"

	// findReservedRows is the window used to reveal a search match.
	findReservedRows = 3
)

var errNoSaver = errors.New("no save target configured")

type revealKind int

const (
	revealCursor revealKind = iota
	revealMatch
)

// updateKey runs one key event: overlay or editing dispatch, then dirty
// tracking, then a single viewport reconciliation.
func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.status = ""

	var (
		cmd    tea.Cmd
		reveal revealKind
	)
	if m.overlay.Active() {
		cmd, reveal = (&m).updateOverlayKey(msg)
	} else {
		cmd = (&m).updateEditorKey(msg)
	}

	if tv := m.buf.TextVersion(); tv != m.lastTextVersion {
		m.lastTextVersion = tv
		m.dirty = true
	}

	row := m.buf.Cursor().Row
	switch reveal {
	case revealMatch:
		m.vp.RevealReserved(row, findReservedRows)
	default:
		m.vp.Reveal(row)
	}
	return m, cmd
}

func (m *Model) updateEditorKey(msg tea.KeyMsg) tea.Cmd {
	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		return nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Save):
		return m.save()
	case key.Matches(msg, km.Quit):
		return m.requestQuit()
	case key.Matches(msg, km.Find):
		m.overlay.Open(ModePrompt, KindFind)
	case key.Matches(msg, km.GotoLine):
		m.overlay.Open(ModePrompt, KindGotoLine)
	case key.Matches(msg, km.Help):
		m.openHelp()
	case key.Matches(msg, km.Cancel):
		m.buf.ClearSelection()

	case key.Matches(msg, km.SwapUp):
		m.buf.SwapLineUp()
	case key.Matches(msg, km.SwapDown):
		m.buf.SwapLineDown()
	case key.Matches(msg, km.Undo):
		_ = m.buf.Undo()
	case key.Matches(msg, km.Redo):
		_ = m.buf.Redo()
	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if m.copySelection() {
			m.buf.DeleteSelection()
		}
	case key.Matches(msg, km.Paste):
		if s, ok := m.readClipboard(); ok {
			m.buf.InsertText(s)
		}

	case key.Matches(msg, km.Left):
		m.buf.MoveHorizontal(-1)
	case key.Matches(msg, km.Right):
		m.buf.MoveHorizontal(1)
	case key.Matches(msg, km.Up):
		m.buf.MoveVertical(-1)
	case key.Matches(msg, km.Down):
		m.buf.MoveVertical(1)
	case key.Matches(msg, km.ShiftLeft):
		m.buf.ExtendSelection(-1)
	case key.Matches(msg, km.ShiftRight):
		m.buf.ExtendSelection(1)
	case key.Matches(msg, km.ShiftUp):
		m.buf.ExtendSelectionVertical(-1)
	case key.Matches(msg, km.ShiftDown):
		m.buf.ExtendSelectionVertical(1)
	case key.Matches(msg, km.WordLeft):
		m.buf.MoveWordLeft()
	case key.Matches(msg, km.WordRight):
		m.buf.MoveWordRight()
	case key.Matches(msg, km.Home):
		m.buf.MoveLineStart()
	case key.Matches(msg, km.End):
		m.buf.MoveLineEnd()
	case key.Matches(msg, km.PageUp):
		m.buf.MoveVertical(-m.vp.VisibleRows())
	case key.Matches(msg, km.PageDown):
		m.buf.MoveVertical(m.vp.VisibleRows())

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.SplitLine()
	case key.Matches(msg, km.Tab):
		m.buf.InsertChar('\t')

	default:
		if s, ok := typedText(msg); ok {
			m.buf.InsertText(s)
		}
	}
	return nil
}

// updateOverlayKey routes a key to the open overlay. Document navigation and
// edit commands are swallowed; save and quit stay available.
func (m *Model) updateOverlayKey(msg tea.KeyMsg) (tea.Cmd, revealKind) {
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.overlay.AppendInput(firstLine(string(msg.Runes)))
		return nil, revealCursor
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Save):
		return m.save(), revealCursor
	case key.Matches(msg, km.Quit):
		return m.requestQuit(), revealCursor
	case key.Matches(msg, km.Cancel):
		m.overlay.Close()
	case key.Matches(msg, km.Enter):
		return m.commitOverlay()
	case key.Matches(msg, km.Backspace):
		m.overlay.Backspace()
	case key.Matches(msg, km.Paste):
		if s, ok := m.readClipboard(); ok {
			m.overlay.AppendInput(firstLine(s))
		}

	case key.Matches(msg, km.Up):
		m.scrollHelp(-1)
	case key.Matches(msg, km.Down):
		m.scrollHelp(1)
	case key.Matches(msg, km.PageUp):
		m.scrollHelp(-m.help.Height)
	case key.Matches(msg, km.PageDown):
		m.scrollHelp(m.help.Height)

	default:
		if s, ok := typedText(msg); ok {
			m.overlay.AppendInput(s)
		}
	}
	return nil, revealCursor
}

func (m *Model) commitOverlay() (tea.Cmd, revealKind) {
	input := m.overlay.Input
	switch m.overlay.Kind {
	case KindConfirmQuit:
		switch input {
		case "y", "ye", "yes":
			return m.quit(), revealCursor
		}
	case KindFind:
		if !m.buf.FindNext(input) {
			m.status = statusNotFound
			return nil, revealCursor
		}
		m.overlay.Close()
		return nil, revealMatch
	case KindGotoLine:
		if n, err := strconv.Atoi(strings.TrimSpace(input)); err == nil && n >= 0 {
			m.buf.GotoLine(maxInt(n, 1) - 1)
		}
		m.overlay.Close()
	case KindHelp:
		m.overlay.Close()
	}
	return nil, revealCursor
}

func (m *Model) requestQuit() tea.Cmd {
	if !m.dirty {
		return m.quit()
	}
	// Rejected while another overlay is open.
	m.overlay.Open(ModePrompt, KindConfirmQuit)
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.overlay.Close()
	m.quitting = true
	return tea.Quit
}

func (m *Model) save() tea.Cmd {
	text := m.buf.Text()
	err := errNoSaver
	if m.cfg.Save != nil {
		err = m.cfg.Save(text)
	}
	if err != nil {
		logger.Error("save %s: %v", m.cfg.Path, err)
		m.err = err
		return m.quit()
	}

	logger.Info("saved %s (%d lines)", m.cfg.Path, m.buf.LineCount())
	m.dirty = false
	m.lastTextVersion = m.buf.TextVersion()
	m.savedText = text
	m.status = statusSaved
	return nil
}

func (m *Model) copySelection() bool {
	r, ok := m.buf.Selection()
	if !ok || m.cfg.Clipboard == nil {
		return false
	}
	if err := m.cfg.Clipboard.WriteText(m.buf.TextInRange(r)); err != nil {
		logger.Error("clipboard write: %v", err)
		return false
	}
	return true
}

func (m *Model) readClipboard() (string, bool) {
	if m.cfg.Clipboard == nil {
		return "", false
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		logger.Error("clipboard read: %v", err)
		return "", false
	}
	s = normalizeNewlines(s)
	return s, s != ""
}

// typedText returns the text of a printable key press.
func typedText(msg tea.KeyMsg) (string, bool) {
	if msg.Alt {
		return "", false
	}
	switch msg.Type {
	case tea.KeySpace:
		return " ", true
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return "", false
		}
		return string(msg.Runes), true
	}
	return "", false
}

// Normalize newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func firstLine(s string) string {
	s = normalizeNewlines(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
