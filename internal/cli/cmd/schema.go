package cmd

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var schemaCmd = &cobra.Command{
	Use:       "schema [config|layout]",
	Short:     "Print a JSON schema",
	Long:      `Print the JSON schema of the config file (default) or of layout documents.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"config", "layout"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	var schema *jsonschema.Schema
	if len(args) == 1 && args[0] == "layout" {
		schema = config.GenerateLayoutSchema()
	} else {
		schema = config.GenerateSchema()
	}

	data, err := config.MarshalSchema(schema)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
