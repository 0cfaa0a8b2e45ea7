package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ariel/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Routes:
  GET  /healthz
  POST /render        document body in, mermaid text out
  POST /render/json   document body in, diagram with diagnostics out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			var srv *server.Server
			err = withSpinner(ctx, isTerminal(os.Stderr), "Opening "+cfg.Cache.Backend+" cache", func() error {
				reg, err := registry()
				if err != nil {
					return err
				}
				runner := c.newRunner(ctx, cfg, noCache)
				srv = server.New(runner, server.Options{
					Registry:     reg,
					MaxBodyBytes: cfg.Server.MaxBodyBytes,
					Logger:       c.Logger,
				})
				return nil
			})
			if err != nil {
				return err
			}
			defer srv.Close()

			printKeyValue("Address", addr)
			printKeyValue("Cache", cfg.Cache.Backend)
			printNextStep("Try", "curl --data-binary @diagram.yaml http://localhost"+portOf(addr)+"/render")
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from settings, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the diagram cache")
	return cmd
}

// portOf returns the ":port" suffix of a listen address.
func portOf(addr string) string {
	if i := strings.LastIndexByte(addr, ':'); i >= 0 {
		return addr[i:]
	}
	return ""
}
