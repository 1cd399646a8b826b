package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var files fileFlags
	var completeFile string

	cmd := cli.NewStandardCommand("search", "List search aliases or resolve a query against one")
	cmd.Use = "search [ALIAS QUERY...]"
	cmd.Long = `Apply the configuration, then either list the registered search aliases or
submit QUERY to ALIAS the way the omnibar would and print the resulting URL.

With --complete, the file is read as the engine's completion response and the
suggestions it carries are printed along with the request that would fetch it.`
	cmd.Example = `  sitekeys search
  sitekeys search d go modules
  sitekeys search d go --complete ac.json`

	files.register(cmd.Flags())
	cmd.Flags().StringVar(&completeFile, "complete", "", "Parse this completion response for ALIAS")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("search needs a query after the alias %q", args[0])
		}
		s, err := newSession(cmd.Context(), cli.GetLogger(cmd), files.resolve())
		if err != nil {
			return err
		}
		s.run(cmd.Context())

		var body []byte
		if completeFile != "" {
			body, err = os.ReadFile(completeFile)
			if err != nil {
				return fmt.Errorf("reading completion response: %w", err)
			}
		}
		return runSearch(cmd.Context(), cmd.OutOrStdout(), s, args, body)
	}

	return cmd
}

// runSearch lists aliases when args is empty, else resolves args[1:] on args[0].
// A non-nil completion body is parsed with the alias' completion source.
func runSearch(ctx context.Context, out io.Writer, s *session, args []string, completion []byte) error {
	t := theme.DefaultTheme

	if len(args) == 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ALIAS\tNAME\tURL PREFIX\tCOMPLETION")
		for _, a := range s.host.SearchAliases() {
			completes := "-"
			if a.Completion != nil {
				completes = a.Completion.URL.Prefix()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Alias, a.Name, a.Search.Prefix(), completes)
		}
		return w.Flush()
	}

	alias, query := args[0], strings.Join(args[1:], " ")
	u, err := s.host.Search(ctx, alias, query)
	if err != nil {
		return err
	}
	if u == "" {
		fmt.Fprintln(out, t.Muted.Render("Ran the callback of "+alias))
	} else {
		fmt.Fprintln(out, u)
	}

	if completion == nil {
		return nil
	}
	req, err := s.host.CompletionURL(alias, query)
	if err != nil {
		return err
	}
	suggestions, err := s.host.Suggestions(alias, completion)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, t.Muted.Render("completion "+req))
	for _, sg := range suggestions {
		fmt.Fprintf(out, "  %s\n", t.Highlight.Render(sg))
	}
	return nil
}
