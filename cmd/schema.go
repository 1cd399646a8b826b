package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"

	"github.com/grovetools/sitekeys/pkg/config"
)

// newSchemaCmd creates the `schema` command.
func newSchemaCmd() *cobra.Command {
	var output string

	cmd := cli.NewStandardCommand("schema", "Print the JSON schema of the configuration file")
	cmd.Long = `Print the JSON schema describing sitekeys configuration files.

Point your editor's YAML or TOML language server at it for completion and
validation while editing bindings.`

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the schema to a file instead of stdout")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Schema(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}
		if output == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write schema file %s: %w", output, err)
		}
		cli.GetLogger(cmd).Infof("Wrote %s", abbreviatePath(output))
		return nil
	}

	return cmd
}
