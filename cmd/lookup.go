package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/grovetools/sitekeys/pkg/keys"
)

func newLookupCmd() *cobra.Command {
	var files fileFlags
	var visual bool
	var jsonOutput bool

	cmd := cli.NewStandardCommand("lookup", "Show the binding a key triggers on a URL")
	cmd.Use = "lookup URL KEY"
	cmd.Long = `Apply the configuration, then resolve KEY on URL the way the engine would:
the most recently registered binding whose URL predicate matches wins.`
	cmd.Example = `  sitekeys lookup https://github.com/grovetools rn
  sitekeys lookup --visual https://en.wikipedia.org/wiki/Go y`
	cmd.Args = cobra.ExactArgs(2)

	files.register(cmd.Flags())
	cmd.Flags().BoolVar(&visual, "visual", false, "Look up in the visual mode registry")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the binding in JSON format")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		url, key := args[0], args[1]
		mode := keys.ModeNormal
		if visual {
			mode = keys.ModeVisual
		}

		s, err := newSession(cmd.Context(), cli.GetLogger(cmd), files.resolve())
		if err != nil {
			return err
		}
		s.run(cmd.Context())

		reg, ok := s.host.Lookup(mode, url, key)
		if !ok {
			return fmt.Errorf("no %s mode binding for %q on %s", modeName(mode), key, url)
		}

		cat, text := splitDescription(reg.Description)
		v := bindingView{
			Mode:        mode.String(),
			Key:         reg.Key,
			Scope:       s.scopeLabel(reg),
			Category:    string(cat),
			Description: text,
			Kind:        reg.Action.Kind(),
			Hidden:      reg.Hidden,
		}
		if r, ok := reg.Action.(keys.Remap); ok {
			v.Target = r.Target
		}
		if cat == "" {
			v.Kind = "default"
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		t := theme.DefaultTheme
		fmt.Fprintf(out, "%s %s %s\n", t.Highlight.Render(v.Key), t.Muted.Render("on"), url)
		fmt.Fprintf(out, "  %-12s %s\n", "scope", v.Scope)
		fmt.Fprintf(out, "  %-12s %s\n", "mode", modeName(mode))
		if v.Category != "" {
			fmt.Fprintf(out, "  %-12s %s\n", "category", v.Category)
		}
		fmt.Fprintf(out, "  %-12s %s\n", "description", v.Description)
		if v.Target != "" {
			fmt.Fprintf(out, "  %-12s %s\n", "replays", v.Target)
		} else {
			fmt.Fprintf(out, "  %-12s %s\n", "kind", v.Kind)
		}
		return nil
	}

	return cmd
}

func modeName(m keys.Mode) string {
	if m == keys.ModeVisual {
		return "visual"
	}
	return "normal"
}
