package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/grovetools/sitekeys/pkg/keys"
)

// newCheckCmd creates the 'sitekeys check' command.
func newCheckCmd() *cobra.Command {
	var files fileFlags

	cmd := cli.NewStandardCommand("check", "Check the configuration for overrides and registration failures")

	cmd.Long = `Load the configuration, report keys declared more than once in the same
domain and path, then run a full startup pass and report every binding that
failed to register.

Overrides are not errors: the last declaration wins. Keys reused across
different domains are NOT reported because their URL predicates keep them apart.`

	files.register(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context(), cli.GetLogger(cmd), files.resolve())
		if err != nil {
			return err
		}
		return runCheck(cmd.Context(), cmd.OutOrStdout(), s)
	}

	return cmd
}

func runCheck(ctx context.Context, out io.Writer, s *session) error {
	t := theme.DefaultTheme

	fmt.Fprintln(out, t.Header.Render(theme.IconGear+" Sitekeys Check"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, t.Muted.Render("Loaded "+strings.Join(mapStrings(s.paths, abbreviatePath), ", ")))
	fmt.Fprintln(out)

	for _, section := range []struct {
		mode keys.Mode
		name string
		maps keys.DomainMap
	}{
		{keys.ModeNormal, "MAPS", s.cfg.Maps},
		{keys.ModeVisual, "VMAPS", s.cfg.VMaps},
	} {
		hydrated := keys.Hydrate(section.maps, s.cfg.Aliases)
		overrides := keys.DetectOverrides(hydrated, s.cfg.SiteLeader, section.mode)
		byDomain := keys.GroupOverridesByDomain(overrides)

		fmt.Fprintln(out, t.Bold.Render(section.name))
		if hydrated.Len() == 0 {
			fmt.Fprintln(out, "  "+t.Muted.Render("No bindings"))
			continue
		}
		for _, domain := range hydrated.Domains() {
			n := keys.CountOverrides(overrides, domain)
			if n == 0 {
				fmt.Fprintf(out, "  %s %s: %s (%d bindings)\n",
					t.Success.Render(theme.IconSuccess),
					t.Bold.Render(domain),
					t.Success.Render("No overrides"),
					len(hydrated[domain]))
				continue
			}
			fmt.Fprintf(out, "  %s %s: %s\n",
				t.Warning.Render(theme.IconWarning),
				t.Bold.Render(domain),
				t.Warning.Render(fmt.Sprintf("%d override(s)", n)))
			for _, o := range byDomain[domain] {
				where := o.Key
				if o.Path != "" {
					where += " " + t.Muted.Render("at "+o.Path)
				}
				fmt.Fprintf(out, "     %s: %d earlier declaration(s) shadowed by %s\n",
					t.Highlight.Render(where),
					len(o.Shadowed),
					describeSpec(o.Winner))
			}
		}
		fmt.Fprintln(out)
	}

	if len(s.skipped) > 0 {
		fmt.Fprintln(out, t.Warning.Render(fmt.Sprintf("%s %d malformed rule(s) skipped", theme.IconWarning, len(s.skipped))))
		for _, err := range s.skipped {
			fmt.Fprintf(out, "     %v\n", err)
		}
		fmt.Fprintln(out)
	}

	summary := s.run(ctx)
	if s.failed() == 0 {
		fmt.Fprintln(out, t.Success.Render(theme.IconSuccess+" Every binding registered"))
		return nil
	}

	if summary.Failed() > 0 {
		fmt.Fprintln(out, t.Error.Render(fmt.Sprintf("%s %d registration failure(s)", theme.IconError, summary.Failed())))
		for _, err := range flattenErrors(summary.Err()) {
			fmt.Fprintf(out, "     %v\n", err)
		}
	}
	return fmt.Errorf("%d binding(s) failed to register", s.failed())
}

func describeSpec(s keys.BindingSpec) string {
	desc := s.HelpDescription()
	if r, ok := s.Action.(keys.Remap); ok {
		return fmt.Sprintf("-> %s (%s)", r.Target, desc)
	}
	return desc
}

func mapStrings(in []string, f func(string) string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = f(s)
	}
	return out
}

func mapErrors(errs []error) []string {
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}

// flattenErrors unwraps joined errors into their leaves.
func flattenErrors(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, flattenErrors(e)...)
		}
		return out
	}
	return []error{err}
}
