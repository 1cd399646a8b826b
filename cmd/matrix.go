package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/grovetools/sitekeys/pkg/keys"
)

func newMatrixCmd() *cobra.Command {
	var files fileFlags
	var jsonOutput bool
	var shadowedOnly bool
	var visual bool

	cmd := cli.NewStandardCommand("matrix", "View a matrix of keys across domains")
	cmd.Long = `Display a spreadsheet-style matrix showing what each key does on each domain.

This provides a quick overview of key usage across sites, highlighting keys
where a site binding takes over a global one.

Use --shadowed to show only those rows.
Use --json for machine-readable output.`

	files.register(cmd.Flags())
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output matrix in JSON format")
	cmd.Flags().BoolVar(&shadowedOnly, "shadowed", false, "Show only keys a site takes over from global")
	cmd.Flags().BoolVar(&visual, "visual", false, "Show visual mode bindings")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context(), cli.GetLogger(cmd), files.resolve())
		if err != nil {
			return err
		}

		maps := s.cfg.Maps
		if visual {
			maps = s.cfg.VMaps
		}
		matrix := keys.BuildMatrix(keys.Hydrate(maps, s.cfg.Aliases), s.cfg.SiteLeader)

		out := cmd.OutOrStdout()
		if jsonOutput {
			data, _ := json.MarshalIndent(matrix, "", "  ")
			fmt.Fprintln(out, string(data))
			return nil
		}

		t := theme.DefaultTheme
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

		// Print Header
		header := []string{"KEY"}
		for _, domain := range matrix.Domains {
			if len(domain) > 18 {
				domain = domain[:15] + "..."
			}
			header = append(header, domain)
		}
		header = append(header, "STATUS")
		fmt.Fprintln(w, t.Bold.Render(strings.Join(header, "\t")))

		// Print separator
		sep := make([]string, len(header))
		for i := range sep {
			sep[i] = "─────"
		}
		fmt.Fprintln(w, t.Muted.Render(strings.Join(sep, "\t")))

		globalCount := 0
		shadowedCount := 0
		siteCount := 0

		for _, row := range matrix.Rows {
			if shadowedOnly && !row.Shadowed {
				continue
			}

			rowCells := []string{t.Highlight.Render(row.Key)}
			for _, domain := range matrix.Domains {
				val := "-"
				if label, ok := row.Domains[domain]; ok {
					val = label
				}
				rowCells = append(rowCells, val)
			}

			var status string
			_, global := row.Domains[keys.GlobalDomain]
			switch {
			case row.Shadowed:
				status = t.Warning.Render("⚠ SHADOWED")
				shadowedCount++
			case global:
				status = t.Success.Render("✓ GLOBAL")
				globalCount++
			default:
				status = t.Muted.Render("SITE ONLY")
				siteCount++
			}
			rowCells = append(rowCells, status)

			fmt.Fprintln(w, strings.Join(rowCells, "\t"))
		}

		w.Flush()

		// Print summary
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s  Global: %d  │  Shadowed: %d  │  Site-only: %d\n",
			t.Muted.Render("Summary:"),
			globalCount,
			shadowedCount,
			siteCount)

		return nil
	}

	return cmd
}
