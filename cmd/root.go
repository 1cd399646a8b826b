package cmd

import (
	"github.com/grovetools/core/cli"
)

var rootCmd = cli.NewStandardCommand("sitekeys", "Compile per-site browser keybindings")

func init() {
	rootCmd.Long = `Compile declarative keybinding rules into the registrations of a browser
key-dispatch engine.

Bindings are grouped by domain, scoped by URL predicates and applied after the
configured factory defaults are removed. Each rule is registered on its own:
a broken rule is reported and skipped, never fatal.`

	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newMatrixCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newInitCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
