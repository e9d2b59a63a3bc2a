package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fennec/internal/config"
)

func TestNewModel_LoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte("package main\n\nfunc main() {}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := newModel(options{path: path, configPath: filepath.Join(dir, "config.toml"), width: 300, height: 6})
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	if got, want := m.editor.Buffer().LineCount(), 3; got != want {
		t.Fatalf("lines=%d, want %d", got, want)
	}
	if got := m.View(); !strings.Contains(got, "main.go") {
		t.Fatalf("view missing header path:\n%s", got)
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("expected a default config to be written: %v", err)
	}
	if !strings.Contains(string(data), "gruvbox") {
		t.Fatalf("default config=%q, want the default theme", data)
	}
}

func TestLightFix(t *testing.T) {
	cases := []struct {
		theme config.Theme
		light bool
		want  bool
	}{
		{theme: config.Theme{}, light: true, want: true},
		{theme: config.Theme{}, light: false, want: false},
		{theme: config.Theme{LightFix: false, LightFixSet: true}, light: true, want: false},
		{theme: config.Theme{LightFix: true, LightFixSet: true}, light: false, want: true},
	}
	for _, tc := range cases {
		if got := lightFix(tc.theme, tc.light); got != tc.want {
			t.Fatalf("lightFix(%+v, %t)=%t, want %t", tc.theme, tc.light, got, tc.want)
		}
	}
}

func TestNewModel_MissingFileIsEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	m, err := newModel(options{path: path})
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	if got := m.editor.Buffer().Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file must not be created before save, stat err=%v", err)
	}
}

func TestNewModel_DirectoryIsAnError(t *testing.T) {
	if _, err := newModel(options{path: t.TempDir()}); err == nil {
		t.Fatalf("expected error opening a directory")
	}
}

func TestModel_SaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	m, err := newModel(options{path: path})
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}

	var tm tea.Model = m
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(data), "hi"; got != want {
		t.Fatalf("saved=%q, want %q", got, want)
	}
	if tm.(model).editor.Dirty() {
		t.Fatalf("expected clean after save")
	}
}
