package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipecast/pipecast/pkg/schemagen"
)

func SchemagenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemagen",
		Short: "Generate JSON schemas for the document formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			outDir, err := cmd.Flags().GetString("out")
			if err != nil {
				return fmt.Errorf("failed to get out flag: %w", err)
			}
			return schemagen.New().Generate(cmd.Context(), outDir)
		},
	}
	cmd.Flags().String("out", "schemas", "Output directory for generated schemas")
	return cmd
}
