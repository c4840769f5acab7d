package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/pipecast/pipecast/engine/compiler"
	"github.com/pipecast/pipecast/engine/component"
	"github.com/pipecast/pipecast/engine/typemap"
	"github.com/pipecast/pipecast/pkg/logger"
)

func CompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a component spec's declared I/O into IR types",
		RunE:  runCompile,
	}
	cmd.Flags().StringP("file", "f", "", "Path to the component spec YAML file")
	cmd.Flags().StringP("output", "o", "", "Write the IR YAML to this file instead of stdout")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runCompile(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)

	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	spec, err := component.Load(filePath)
	if err != nil {
		return err
	}

	result, err := compiler.New(typemap.New()).CompileIO(ctx, spec)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal IR: %w", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0o600); err != nil {
			return fmt.Errorf("failed to write IR to %s: %w", outPath, err)
		}
		log.Info("compiled component", "component", spec.Name, "output", outPath)
		return nil
	}

	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("failed to write IR: %w", err)
	}
	log.Info("compiled component", "component", spec.Name)
	return nil
}
