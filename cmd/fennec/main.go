package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iw2rmb/fennec"
	"github.com/iw2rmb/fennec/editor"
	"github.com/iw2rmb/fennec/internal/clipboard"
	"github.com/iw2rmb/fennec/internal/config"
	"github.com/iw2rmb/fennec/internal/logger"
	"github.com/iw2rmb/fennec/internal/storage"
	"github.com/iw2rmb/fennec/internal/syntax"
)

var errNotTerminal = errors.New("stdout is not a terminal")

type options struct {
	path       string
	configPath string
	width      int
	height     int

	// lightBackground is used when the config does not set light_fix.
	lightBackground bool
}

// model adapts editor.Model to tea.Model.
type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

// newModel loads the document and configuration for opts.path.
func newModel(opts options) (model, error) {
	path, err := storage.Expand(opts.path)
	if err != nil {
		return model{}, err
	}
	text, existed, err := storage.Load(path)
	if err != nil {
		return model{}, err
	}
	logger.Info("open %s (existed=%t)", path, existed)

	if created, err := config.EnsureDefault(opts.configPath); err != nil {
		logger.Error("%v", err)
	} else if created {
		logger.Info("wrote default config to %s", opts.configPath)
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Error("%v", err)
	}

	theme := syntax.LoadTheme(cfg.Theme.Name, lightFix(cfg.Theme, opts.lightBackground))
	hl := syntax.New(path, theme)
	logger.Debug("theme %s, language %s", theme.Name, hl.Language())

	cb := clipboard.System{}
	if !cb.Available() {
		logger.Info("no system clipboard available")
	}

	ed := editor.New(editor.Config{
		Text: text,
		Path: opts.path,
		Save: func(text string) error {
			return storage.Save(path, text)
		},
		Style:        theme.EditorStyle(),
		ShowLineNums: true,
		TabWidth:     cfg.TabWidth,
		Highlighter:  hl,
		Clipboard:    cb,
		Version:      fennec.Version(),
		ConfigPath:   opts.configPath,
	})
	if opts.width > 0 && opts.height > 0 {
		ed = ed.SetSize(opts.width, opts.height)
	}
	return model{editor: ed}, nil
}

// lightFix prefers the configured value and falls back to the detected
// terminal background.
func lightFix(t config.Theme, lightBackground bool) bool {
	if t.LightFixSet {
		return t.LightFix
	}
	return lightBackground
}

func run(opts options) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	if w, h, err := term.GetSize(fd); err == nil {
		opts.width, opts.height = w, h
	}
	opts.lightBackground = !termenv.HasDarkBackground()

	m, err := newModel(opts)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok {
		return fm.editor.Err()
	}
	return nil
}

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFlag := flag.String("config", "", "config file (default $"+config.EnvPath+" or config.toml next to the binary)")
	logFlag := flag.String("log", "", "log file (default $"+logger.EnvPath+", empty disables logging)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: fennec [flags] <path>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(fennec.Version())
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logPath := *logFlag
	if logPath == "" {
		logPath = os.Getenv(logger.EnvPath)
	}
	if err := logger.Init(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "fennec: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()
	// Bubble Tea logs through the standard logger.
	log.SetOutput(logger.Writer())

	err := run(options{path: flag.Arg(0), configPath: config.Path(*configFlag)})
	if err != nil {
		logger.Error("%v", err)
		_ = logger.Close()
		fmt.Fprintf(os.Stderr, "fennec: %v\n", err)
		os.Exit(1)
	}
}
