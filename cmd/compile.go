package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/cli"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/grovetools/sitekeys/pkg/compiler"
	"github.com/grovetools/sitekeys/pkg/keys"
)

func newCompileCmd() *cobra.Command {
	var files fileFlags
	var jsonOutput bool
	var showMetrics bool
	var showHidden bool
	var strict bool

	cmd := cli.NewStandardCommand("compile", "Apply the configuration and print the effective bindings")
	cmd.Long = `Run a full startup pass against an in-memory key-dispatch engine seeded with
the standard factory defaults, then print every binding that is in effect.

The pass removes the configured defaults, registers search engines, then the
normal and visual bindings. Failures are reported per binding.

Use --json for machine-readable output.
Use --metrics to print the registration counters in Prometheus text format.`

	files.register(cmd.Flags())
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output bindings in JSON format")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print registration metrics after the bindings")
	cmd.Flags().BoolVar(&showHidden, "hidden", false, "Include bindings hidden from help")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any binding fails to register")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context(), cli.GetLogger(cmd), files.resolve())
		if err != nil {
			return err
		}
		summary := s.run(cmd.Context())

		var views []bindingView
		for _, mode := range []keys.Mode{keys.ModeNormal, keys.ModeVisual} {
			for _, v := range s.views(mode) {
				if v.Hidden && !showHidden {
					continue
				}
				views = append(views, v)
			}
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			data, err := json.MarshalIndent(struct {
				RunID    string        `json:"run_id"`
				Failed   int           `json:"failed"`
				Skipped  []string      `json:"skipped,omitempty"`
				Bindings []bindingView `json:"bindings"`
			}{summary.RunID, s.failed(), mapErrors(s.skipped), views}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		} else {
			printBindings(out, views, isTerminal(out))
			fmt.Fprintln(out)
			printSummary(out, s)
		}

		if showMetrics {
			if err := writeMetrics(out, s); err != nil {
				return err
			}
		}

		if strict && s.failed() > 0 {
			return fmt.Errorf("%d registration(s) failed", s.failed())
		}
		return nil
	}

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printBindings(out io.Writer, views []bindingView, styled bool) {
	render := func(st lipgloss.Style, s string) string {
		if !styled {
			return s
		}
		return st.Render(s)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, render(headerStyle, strings.Join([]string{"MODE", "SCOPE", "KEY", "CATEGORY", "ACTION"}, "\t")))
	for _, v := range views {
		action := v.Description
		if v.Target != "" {
			action = render(remapStyle, "-> "+v.Target)
			if v.Description != "" {
				action += " " + v.Description
			}
		}
		cat := v.Category
		if cat == "" {
			cat = render(faintStyle, "default")
		}
		key := render(keyStyle, v.Key)
		if v.Hidden {
			key = render(hiddenStyle, v.Key+" (hidden)")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", v.Mode, render(scopeStyle, v.Scope), key, cat, action)
	}
	w.Flush()
}

func printSummary(out io.Writer, s *session) {
	sum := s.summary
	fmt.Fprintf(out, "%s  Unmapped: %d  │  Search bindings: %d  │  Maps: %d  │  VMaps: %d\n",
		faintStyle.Render("Summary:"),
		sum.Unmaps.Registered,
		sum.SearchEngines.Registered,
		sum.Maps.Registered,
		sum.VMaps.Registered)

	if s.failed() == 0 {
		fmt.Fprintln(out, successStyle.Render("✓ Every binding registered"))
		return
	}
	fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("⚠ %d failure(s)", s.failed())))
	for _, err := range s.skipped {
		fmt.Fprintf(out, "  %s skipped %v\n", errorStyle.Render("✗"), err)
	}
	for _, r := range []compiler.Report{sum.Unmaps, sum.SearchEngines, sum.Maps, sum.VMaps} {
		for _, err := range r.Errors {
			fmt.Fprintf(out, "  %s %v\n", errorStyle.Render("✗"), err)
		}
	}
}

func writeMetrics(out io.Writer, s *session) error {
	families, err := s.metrics.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	fmt.Fprintln(out)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}
