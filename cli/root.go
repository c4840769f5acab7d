package cli

import (
	"github.com/spf13/cobra"

	"github.com/pipecast/pipecast/pkg/logger"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pipecast",
		Short: "Compile pipeline component specs into the typed IR",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
			if err != nil {
				return err
			}
			log := logger.SetupLogger(logLevel, logJSON, logSource)
			cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	root.PersistentFlags().Bool("log-source", false, "Include source location in logs")

	root.AddCommand(
		CompileCmd(),
		SchemagenCmd(),
	)

	return root
}
