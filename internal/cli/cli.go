// Package cli implements the ariel command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/ariel/pkg/buildinfo"
	"github.com/matzehuels/ariel/pkg/cache"
	"github.com/matzehuels/ariel/pkg/config"
	"github.com/matzehuels/ariel/pkg/demo"
	"github.com/matzehuels/ariel/pkg/document"
	"github.com/matzehuels/ariel/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is the TOML settings file; empty uses ariel.toml.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ariel",
		Short:        "Ariel turns component trees into mermaid diagrams",
		Long:         `Ariel composes diagrams from small reusable components and renders them as mermaid text, ready to paste into markdown.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "settings file (default ariel.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.blocksCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.ConfigPath)
}

// newRunner creates a pipeline runner from the settings. noCache forces the
// null cache regardless of the configured backend.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, noCache bool) *pipeline.Runner {
	var store cache.Cache = cache.NewNullCache()
	if !noCache {
		var err error
		if store, err = cfg.OpenCache(ctx); err != nil {
			// A broken cache should not block rendering.
			c.Logger.Warn("cache unavailable, continuing without", "backend", cfg.Cache.Backend, "err", err)
			store = cache.NewNullCache()
		}
	}

	runner := pipeline.NewRunner(store, cfg.Keyer(), c.Logger)
	runner.MaxDepth = cfg.Render.MaxDepth
	if cfg.Cache.TTL.Duration > 0 {
		runner.TTL = cfg.Cache.TTL.Duration
	}
	return runner
}

// registry returns the component registry used for documents: the built-ins
// plus the demo flow composites.
func registry() (*document.Registry, error) {
	reg := document.NewRegistry()
	if err := demo.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
