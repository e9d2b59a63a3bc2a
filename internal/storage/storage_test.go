package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/fennec/buffer"
)

func TestLoad_MissingFile(t *testing.T) {
	text, existed, err := Load(filepath.Join(t.TempDir(), "new.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if existed || text != "" {
		t.Fatalf("got (%q,%v), want (\"\",false)", text, existed)
	}
}

func TestLoad_DirectoryIsAnError(t *testing.T) {
	if _, _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("expected error reading a directory")
	}
}

func TestSaveThenLoad_RoundTripsLines(t *testing.T) {
	cases := []string{"", "one", "one\ntwo", "trailing\n", "crlf\r\nline", "\t\tindented\n\n"}
	for _, text := range cases {
		path := filepath.Join(t.TempDir(), "doc.txt")
		b := buffer.New(text, buffer.Options{})

		if err := Save(path, b.Text()); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, existed, err := Load(path)
		if err != nil || !existed {
			t.Fatalf("load: existed=%v err=%v", existed, err)
		}
		if got != text {
			t.Fatalf("text=%q, want %q", got, text)
		}
		reloaded := buffer.New(got, buffer.Options{})
		if want := b.Lines(); strings.Join(reloaded.Lines(), "\n") != strings.Join(want, "\n") || reloaded.LineCount() != len(want) {
			t.Fatalf("lines=%q, want %q", reloaded.Lines(), want)
		}
	}
}

func TestSave_NewFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := Save(path, "x"); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	// umask may clear bits but never adds them.
	if perm := info.Mode().Perm(); perm&^0o644 != 0 {
		t.Fatalf("mode=%v, want subset of 0644", perm)
	}
}

func TestSave_KeepsExistingPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Save(path, "new"); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got, want := info.Mode().Perm(), os.FileMode(0o600); got != want {
		t.Fatalf("mode=%v, want %v", got, want)
	}
}

func TestSave_MissingDirectoryFails(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "doc.txt"), "x")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.HasPrefix(err.Error(), "write ") {
		t.Fatalf("error=%q, want write prefix", err)
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cases := []struct {
		in, want string
	}{
		{in: "~/notes.txt", want: "/home/tester/notes.txt"},
		{in: "~", want: "/home/tester"},
		{in: "/abs/path", want: "/abs/path"},
		{in: "rel/~/x", want: "rel/~/x"},
		{in: "~other/x", want: "~other/x"},
	}
	for _, tc := range cases {
		got, err := Expand(tc.in)
		if err != nil {
			t.Fatalf("Expand(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Expand(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
