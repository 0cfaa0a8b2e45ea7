package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ariel/pkg/demo"
	"github.com/matzehuels/ariel/pkg/errors"
	"github.com/matzehuels/ariel/pkg/markdown"
	"github.com/matzehuels/ariel/pkg/pipeline"
)

// demoCommand creates the demo command.
func (c *CLI) demoCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Print the built-in example diagrams",
		Long: `Print a built-in example diagram as a markdown mermaid block.

Without a name an interactive picker is shown when stdout is a terminal;
otherwise every demo is printed.

Available demos: ` + strings.Join(demo.Names(), ", "),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 1:
				d, ok := demo.Lookup(args[0])
				if !ok {
					return errors.New(errors.ErrCodeNotFound, "unknown demo %q (available: %s)", args[0], strings.Join(demo.Names(), ", "))
				}
				return printDemo(out, d)
			case !all && out == os.Stdout && isTerminal(os.Stdout):
				d, err := pickDemo()
				if err != nil || d == nil {
					return err
				}
				return printDemo(out, *d)
			default:
				for _, d := range demo.All() {
					if err := printDemo(out, d); err != nil {
						return err
					}
					fmt.Fprintln(out)
				}
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print every demo without prompting")
	return cmd
}

func printDemo(w io.Writer, d demo.Demo) error {
	text, err := pipeline.Render(d.Build())
	if err != nil {
		return fmt.Errorf("demo %s: %w", d.Name, err)
	}
	_, err = io.WriteString(w, markdown.Document(d.Title, text))
	return err
}
