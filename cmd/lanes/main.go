package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/lanes/internal/config"
	"github.com/sandeepkv93/lanes/internal/logging"
	"github.com/sandeepkv93/lanes/internal/service"
	"github.com/sandeepkv93/lanes/internal/storage"
	"github.com/sandeepkv93/lanes/internal/update"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(newApp(os.Stdout, os.Stderr)).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lanes failed: %v\n", err)
		os.Exit(1)
	}
}

type program interface {
	Run() (tea.Model, error)
}

type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	dbPath     string
	backend    string

	paths      func() (config.Paths, error)
	newProgram func(tea.Model, ...tea.ProgramOption) program
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		paths:  config.DefaultPaths,
		newProgram: func(m tea.Model, opts ...tea.ProgramOption) program {
			return tea.NewProgram(m, opts...)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lanes",
		Short:         "Keyboard-first three-lane task board",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBoard()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: user config dir)")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "task store path")
	root.PersistentFlags().StringVar(&a.backend, "backend", "", "task store backend: sqlite, json or memory")

	root.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newMoveCmd(a),
		newRemoveCmd(a),
		newPathsCmd(a),
	)
	return root
}

func (a *app) resolveConfig() (config.Config, config.Paths, error) {
	paths, err := a.paths()
	if err != nil {
		return config.Config{}, config.Paths{}, err
	}
	cfgPath := a.configPath
	if cfgPath == "" {
		cfgPath = paths.ConfigPath
	}
	cfg, err := config.Resolve(cfgPath, paths)
	if err != nil {
		return config.Config{}, config.Paths{}, err
	}
	if a.backend != "" {
		cfg.Store.Backend = storage.Backend(strings.ToLower(a.backend))
	}
	if a.dbPath != "" {
		cfg.Store.Path = a.dbPath
	}
	cfg.AdjustStorePath(paths)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, config.Paths{}, err
	}
	return cfg, paths, nil
}

func (a *app) openService(logger *log.Logger) (*service.Service, func() error, config.Config, error) {
	cfg, _, err := a.resolveConfig()
	if err != nil {
		return nil, nil, config.Config{}, err
	}
	store, err := storage.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return nil, nil, config.Config{}, fmt.Errorf("open task store: %w", err)
	}
	logger.Debug("task store opened", "backend", cfg.Store.Backend, "path", cfg.Store.Path)
	return service.New(store, service.WithLogger(logger)), store.Close, cfg, nil
}

func (a *app) runBoard() error {
	cfg, _, err := a.resolveConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.File(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	svc, closeStore, _, err := a.openService(logger)
	if err != nil {
		return err
	}
	defer closeStore()

	model := update.NewModelWithConfig(svc, update.RuntimeConfig{
		UndoToast: cfg.UndoToast(),
		Mouse:     cfg.UI.Mouse,
	}, logger)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	logger.Info("board started", "backend", cfg.Store.Backend)
	if _, err := a.newProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	logger.Info("board closed")
	return nil
}

// consoleLogger is used by subcommands, which own the terminal.
func (a *app) consoleLogger() *log.Logger {
	cfg, _, err := a.resolveConfig()
	level := "warn"
	if err == nil {
		level = cfg.Log.Level
	}
	logger, err := logging.Console(a.stderr, level)
	if err != nil {
		return log.New(io.Discard)
	}
	return logger
}
