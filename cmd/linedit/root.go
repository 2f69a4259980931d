package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/linedit/buffer"
	"github.com/lixenwraith/linedit/config"
	"github.com/lixenwraith/linedit/editor"
	"github.com/lixenwraith/linedit/render"
	"github.com/lixenwraith/linedit/terminal"
)

// options collects command line flags
type options struct {
	cfgFile string
	backend string
	newFile bool
	debug   bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "linedit [flags] [path]",
		Short:        "A minimal terminal text editor",
		Long:         `linedit opens a text file (or an empty buffer) in the terminal for line editing. Ctrl-S saves, Ctrl-Q quits.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args, afero.NewOsFs())
		},
	}

	cmd.Flags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: ~/.config/linedit/config.toml)")
	cmd.Flags().StringVar(&opts.backend, "backend", "",
		"terminal backend: ansi or tcell (overrides config)")
	cmd.Flags().BoolVar(&opts.newFile, "new", false,
		"create the file if it does not exist")
	cmd.Flags().BoolVar(&opts.debug, "debug", false,
		"write debug logs to "+logDir+"/"+logFileName)

	return cmd
}

func run(cmd *cobra.Command, opts options, args []string, fsys afero.Fs) error {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("backend") {
		cfg.Backend = opts.backend
	}
	if opts.debug {
		cfg.Log.Debug = true
	}
	if opts.newFile {
		cfg.Editor.CreateMissing = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	doc, err := openDocument(fsys, path, cfg.Editor.CreateMissing)
	if err != nil {
		return err
	}

	keymap, err := cfg.Keymap()
	if err != nil {
		return err
	}

	screen, err := newScreen(cfg.Backend)
	if err != nil {
		return err
	}

	session := editor.NewSession(screen, doc, editor.Options{
		Path:      path,
		Fs:        fsys,
		Keymap:    keymap,
		QuitTimes: cfg.Editor.QuitTimes,
		StatusBar: cfg.UI.StatusBar,
		Pipeline: render.Pipeline{
			Welcome: cfg.UI.WelcomeText(version),
			Filler:  cfg.UI.Filler,
		},
	})
	return session.Run()
}

// openDocument loads path, an empty buffer when path is empty
// A missing file is an error unless createMissing is set
func openDocument(fsys afero.Fs, path string, createMissing bool) (*buffer.Document, error) {
	switch {
	case path == "":
		return buffer.New(), nil
	case createMissing:
		return buffer.OpenOrNew(fsys, path)
	default:
		doc, err := buffer.Open(fsys, path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w (use --new to create it)", err)
		}
		return doc, err
	}
}

// newScreen creates the terminal backend by name
func newScreen(backend string) (terminal.Screen, error) {
	log.Printf("linedit: backend %s", backend)
	switch backend {
	case config.BackendANSI:
		return terminal.NewANSIScreen(), nil
	case config.BackendTcell:
		s, err := terminal.NewTcellScreen()
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
