package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v, want %+v", cfg, Default())
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v, want %+v", cfg, Default())
	}
}

func TestLoad_ReadsTheme(t *testing.T) {
	path := writeFile(t, "config.toml", `
tab_width = 8

[theme]
name = "monokai"
light_fix = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{TabWidth: 8, Theme: Theme{Name: "monokai", LightFix: true, LightFixSet: true}}
	if cfg != want {
		t.Fatalf("cfg=%+v, want %+v", cfg, want)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", "[theme]\nlight_fix = true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := cfg.Theme.Name, DefaultTheme; got != want {
		t.Fatalf("theme=%q, want %q", got, want)
	}
	if got, want := cfg.TabWidth, DefaultTabWidth; got != want {
		t.Fatalf("tab width=%d, want %d", got, want)
	}
	if !cfg.Theme.LightFix || !cfg.Theme.LightFixSet {
		t.Fatalf("theme=%+v, want light_fix set to true", cfg.Theme)
	}
}

func TestLoad_LightFixUnsetLeavesDetectionToCaller(t *testing.T) {
	path := writeFile(t, "config.toml", "[theme]\nname = \"monokai\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme.LightFixSet {
		t.Fatalf("expected light_fix unset")
	}

	path = writeFile(t, "config.toml", "[theme]\nlight_fix = false\n")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme.LightFix || !cfg.Theme.LightFixSet {
		t.Fatalf("theme=%+v, want light_fix explicitly false", cfg.Theme)
	}
}

func TestEnsureDefault_WritesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	created, err := EnsureDefault(path)
	if err != nil || !created {
		t.Fatalf("EnsureDefault=(%t, %v), want (true, nil)", created, err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v, want %+v", cfg, Default())
	}

	if err := os.WriteFile(path, []byte("tab_width = 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	created, err = EnsureDefault(path)
	if err != nil || created {
		t.Fatalf("EnsureDefault=(%t, %v), want (false, nil)", created, err)
	}
	if cfg, _ := Load(path); cfg.TabWidth != 2 {
		t.Fatalf("existing config was overwritten: %+v", cfg)
	}
}

func TestEnsureDefault_EmptyPath(t *testing.T) {
	if created, err := EnsureDefault(""); err != nil || created {
		t.Fatalf("EnsureDefault(\"\")=(%t, %v), want (false, nil)", created, err)
	}
}

func TestLoad_MalformedFallsBackWithError(t *testing.T) {
	path := writeFile(t, "config.toml", "[theme\nname = ")

	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v, want defaults", cfg)
	}
}

func TestValidate_ClampsTabWidth(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{in: 0, want: DefaultTabWidth},
		{in: -3, want: 1},
		{in: 2, want: 2},
		{in: 99, want: 16},
	}
	for _, tc := range cases {
		got := Config{TabWidth: tc.in}.Validate()
		if got.TabWidth != tc.want {
			t.Fatalf("Validate(tab_width=%d)=%d, want %d", tc.in, got.TabWidth, tc.want)
		}
		if got.Theme.Name != DefaultTheme {
			t.Fatalf("theme=%q, want %q", got.Theme.Name, DefaultTheme)
		}
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := Config{TabWidth: 2, Theme: Theme{Name: "dracula", LightFix: true, LightFixSet: true}}

	if err := Write(path, want); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("cfg=%+v, want %+v", got, want)
	}
}

func TestPath_Precedence(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/env.toml")

	if got, want := Path("/tmp/flag.toml"), "/tmp/flag.toml"; got != want {
		t.Fatalf("Path=%q, want %q", got, want)
	}
	if got, want := Path(""), "/tmp/env.toml"; got != want {
		t.Fatalf("Path=%q, want %q", got, want)
	}

	t.Setenv(EnvPath, "")
	if got := Path(""); filepath.Base(got) != FileName {
		t.Fatalf("Path=%q, want a %s next to the executable", got, FileName)
	}
}
