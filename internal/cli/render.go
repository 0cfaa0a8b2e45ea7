package cli

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ariel/pkg/document"
	"github.com/matzehuels/ariel/pkg/errors"
	"github.com/matzehuels/ariel/pkg/extract"
	"github.com/matzehuels/ariel/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // markdown file to write; stdout when empty
	markdown bool   // wrap stdout output in a markdown document
	title    string // markdown heading override
	noCache  bool
	refresh  bool
	maxDepth int
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a YAML, TOML or JSON document to mermaid",
		Long: `Render a declarative diagram document to mermaid text.

The format is detected from the file extension. Without -o the diagram is
printed to stdout; with -o it is written as a markdown document.`,
		Example: `  ariel render checkout.yaml
  ariel render checkout.yaml --markdown
  ariel render checkout.toml -o docs/checkout.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write a markdown file instead of printing")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "wrap printed output in a markdown document")
	cmd.Flags().StringVar(&opts.title, "title", "", "markdown heading (default: graph title)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the diagram cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached diagrams and re-render")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "limit nested custom component expansion; built-ins are not counted (0: from settings)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner := c.newRunner(ctx, cfg, opts.noCache)
	defer runner.Close()

	reg, err := registry()
	if err != nil {
		return err
	}
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded document", "path", path, "items", len(doc.Children))

	popts := pipeline.Options{
		Title:    opts.title,
		MaxDepth: opts.maxDepth,
		Refresh:  opts.refresh,
	}

	if opts.output != "" {
		if err := errors.ValidateOutputPath(opts.output); err != nil {
			return err
		}
		res, err := runner.RenderToFile(ctx, doc.Element(reg), opts.output, popts)
		if err != nil {
			return renderError(path, err)
		}
		reportDiagnostics(res.Diagnostics)
		prog.done("Rendered " + filepath.Base(path))
		printSuccess("Wrote %s", res.Title())
		printFile(opts.output)
		printStats(res.Stats.NodeCount, res.Stats.EdgeCount, res.Stats.SubgraphCount, res.CacheHit)
		return nil
	}

	if opts.markdown {
		popts.Output = pipeline.OutputMarkdown
	}
	res, err := runner.Render(ctx, doc.Element(reg), popts)
	if err != nil {
		return renderError(path, err)
	}
	reportDiagnostics(res.Diagnostics)
	out := res.Text
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	prog.done("Rendered " + filepath.Base(path))
	return nil
}

func renderError(path string, err error) error {
	return fmt.Errorf("render %s: %w", path, err)
}

// reportDiagnostics prints one warning per skipped component.
func reportDiagnostics(diags []extract.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	printWarning("%d component(s) skipped", len(diags))
	for _, d := range diags {
		printDetail("%s at %s: %s", d.Component, d.Path, errors.UserMessage(unwrapComponent(d.Err)))
	}
}

// unwrapComponent strips the COMPONENT_INVOCATION wrapper added by the
// extractor so the underlying reason is shown.
func unwrapComponent(err error) error {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Code == errors.ErrCodeComponentInvocation && e.Cause != nil {
		return e.Cause
	}
	return err
}
