package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"

	"github.com/grovetools/sitekeys/pkg/config"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := cli.NewStandardCommand("init", "Write a starter configuration file")
	cmd.Use = "init [PATH]"
	cmd.Long = `Write a starter configuration with a few global remaps, a site-scoped binding,
a search engine and DOI bindings.

PATH defaults to ~/.config/sitekeys/sitekeys.toml. A .yml or .yaml extension
writes YAML instead of TOML.`
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath()
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Write(path, config.Starter(), force); err != nil {
			return err
		}
		cli.GetLogger(cmd).Infof("Wrote %s", abbreviatePath(path))
		return nil
	}

	return cmd
}
