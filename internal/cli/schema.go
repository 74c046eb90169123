package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lacquerai/datagen/internal/dataset"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:    "schema",
	Short:  "Output the JSON schema of generated datasets",
	Long:   `Output the JSON schema describing the document datagen writes, for consumers of json_init.json.`,
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaBytes, err := dataset.Schema()
		if err != nil {
			return fmt.Errorf("error generating schema: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(schemaBytes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
