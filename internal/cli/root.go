// Package cli implements the infinicanvas command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/infinicanvas"
	"github.com/phanxgames/infinicanvas/internal/board"
	"github.com/phanxgames/infinicanvas/internal/config"
)

var version = "0.3.0"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	boardPath  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "infinicanvas",
		Short: "infinicanvas — an infinite, zoomable node canvas",
		Long: Brand.Sprint("infinicanvas") + " — pan, zoom and drag ellipse nodes on an infinite grid\n" +
			Subtle.Sprint("Open a window, render headless snapshots, or replay scripted input"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("infinicanvas {{ .Version }}\n")
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default $INFINICANVAS_CONFIG or ~/.config/infinicanvas/config.toml)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&g.boardPath, "board", "", "seed board YAML (overrides board.path)")

	root.AddCommand(
		runCmd(g),
		snapshotCmd(g),
		scriptCmd(g),
		configCmd(g),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		Bad.Fprintf(root.ErrOrStderr(), "infinicanvas: %v\n", err)
	}
	return err
}

// setup loads the config, installs the logger and resolves the board.
func (g *globalFlags) setup() (*config.Config, *board.Board, error) {
	path := g.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.boardPath != "" {
		cfg.Board.Path = g.boardPath
	}
	if err := installLogger(cfg.Log); err != nil {
		return nil, nil, err
	}

	b := board.Default()
	if cfg.Board.Path != "" {
		if b, err = board.Load(cfg.Board.Path); err != nil {
			return nil, nil, err
		}
	}
	return cfg, b, nil
}

func installLogger(lc config.LogConfig) error {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch lc.Format {
	case "json":
		h = slog.NewJSONHandler(os.Stderr, opts)
	case "text", "":
		h = slog.NewTextHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("log.format %q: want text or json", lc.Format)
	}
	infinicanvas.SetLogger(slog.New(h))
	return nil
}
