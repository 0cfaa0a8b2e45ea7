package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ariel/pkg/markdown"
)

// blocksCommand creates the blocks command.
func (c *CLI) blocksCommand() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "blocks <markdown-file>",
		Short: "List the mermaid blocks in a markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := markdown.ReadFile(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("scanned markdown", "path", args[0], "blocks", len(blocks))

			if len(blocks) == 0 {
				printInfo("No mermaid blocks in %s", args[0])
				return nil
			}

			out := cmd.OutOrStdout()
			for i, b := range blocks {
				title := b.Title
				if title == "" {
					title = "(untitled)"
				}
				header, _, _ := strings.Cut(b.Diagram, "\n")
				fmt.Fprintf(out, "%d\t%d\t%s\t%s\n", i+1, b.Line, title, header)
				if show {
					fmt.Fprintln(out, b.Diagram)
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print each diagram after its summary line")
	return cmd
}
