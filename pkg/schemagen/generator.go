package schemagen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/invopop/jsonschema"
	"golang.org/x/sync/errgroup"

	"github.com/pipecast/pipecast/engine/component"
	"github.com/pipecast/pipecast/engine/ir"
	"github.com/pipecast/pipecast/pkg/logger"
)

type schemaDefinition struct {
	name        string
	title       string
	description string
	value       any
}

func (d *schemaDefinition) fileName() string {
	return d.name + ".json"
}

var schemaDefinitions = []schemaDefinition{
	{
		name:        "component",
		title:       "Component Spec",
		description: "Authored component specification document",
		value:       &component.Spec{},
	},
	{
		name:        "component-ir",
		title:       "Component IR",
		description: "Compiled IR view of a component's typed I/O channels",
		value:       &ir.ComponentSpec{},
	},
}

// Generator emits JSON schema files for the document formats this SDK
// reads and writes, for use by editors and validation tooling.
type Generator struct {
	definitions []schemaDefinition
}

func New() *Generator {
	return &Generator{definitions: schemaDefinitions}
}

func (g *Generator) Generate(ctx context.Context, outDir string) error {
	log := logger.FromContext(ctx)
	log.Info("Generating JSON schemas", "dir", outDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for _, definition := range g.definitions {
		definition := definition
		group.Go(func() error {
			schemaJSON, err := g.buildSchema(&definition)
			if err != nil {
				return fmt.Errorf("failed to build schema for %s: %w", definition.name, err)
			}
			filePath := filepath.Join(outDir, definition.fileName())
			if err := os.WriteFile(filePath, schemaJSON, 0o600); err != nil {
				return fmt.Errorf("failed to write schema to %s: %w", filePath, err)
			}
			log.Info("Generated schema", "file", filePath)
			return nil
		})
	}
	return group.Wait()
}

func (g *Generator) buildSchema(definition *schemaDefinition) ([]byte, error) {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := reflector.Reflect(definition.value)
	schema.Title = definition.title
	schema.Description = definition.description
	return json.MarshalIndent(schema, "", "  ")
}
