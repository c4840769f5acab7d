package compiler

import (
	"context"
	"fmt"

	"github.com/pipecast/pipecast/engine/component"
	"github.com/pipecast/pipecast/engine/ir"
	"github.com/pipecast/pipecast/engine/typemap"
	"github.com/pipecast/pipecast/pkg/logger"
)

// -----------------------------------------------------------------------------
// Compiler
// -----------------------------------------------------------------------------

// Compiler translates component spec I/O declarations into IR channels.
// It holds the type mapper by reference; one compiler can serve any
// number of concurrent compilations.
type Compiler struct {
	mapper *typemap.Mapper
}

func New(mapper *typemap.Mapper) *Compiler {
	if mapper == nil {
		mapper = typemap.New()
	}
	return &Compiler{mapper: mapper}
}

// CompileIO classifies every declared input and output of the component
// and emits the corresponding IR channels: artifact kinds become
// artifact channels carrying a type schema, everything else becomes a
// parameter channel.
func (c *Compiler) CompileIO(ctx context.Context, spec *component.Spec) (*ir.ComponentSpec, error) {
	if spec == nil {
		return nil, fmt.Errorf("failed to compile component I/O: %w", errNilSpec)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("failed to compile component I/O: %w", err)
	}

	log := logger.FromContext(ctx)
	result := &ir.ComponentSpec{Name: spec.Name}

	for i := range spec.Inputs {
		in := &spec.Inputs[i]
		typeName := typemap.FromValue(in.Type)
		if c.mapper.IsArtifactType(typeName) {
			schema, _ := c.mapper.ArtifactTypeSchema(typeName.Value())
			if result.Inputs.Artifacts == nil {
				result.Inputs.Artifacts = make(map[string]ir.InputArtifactSpec)
			}
			result.Inputs.Artifacts[in.Name] = ir.InputArtifactSpec{ArtifactType: *schema}
			log.Debug("classified input as artifact", "component", spec.Name, "input", in.Name, "title", schema.Title)
			continue
		}
		if result.Inputs.Parameters == nil {
			result.Inputs.Parameters = make(map[string]ir.InputParameterSpec)
		}
		primitive := c.mapper.ParameterType(typeName)
		result.Inputs.Parameters[in.Name] = ir.InputParameterSpec{Type: primitive}
		log.Debug("classified input as parameter", "component", spec.Name, "input", in.Name, "type", primitive)
	}

	for i := range spec.Outputs {
		out := &spec.Outputs[i]
		typeName := typemap.FromValue(out.Type)
		if c.mapper.IsArtifactType(typeName) {
			schema, _ := c.mapper.ArtifactTypeSchema(typeName.Value())
			if result.Outputs.Artifacts == nil {
				result.Outputs.Artifacts = make(map[string]ir.OutputArtifactSpec)
			}
			result.Outputs.Artifacts[out.Name] = ir.OutputArtifactSpec{ArtifactType: *schema}
			log.Debug("classified output as artifact", "component", spec.Name, "output", out.Name, "title", schema.Title)
			continue
		}
		if result.Outputs.Parameters == nil {
			result.Outputs.Parameters = make(map[string]ir.OutputParameterSpec)
		}
		primitive := c.mapper.ParameterType(typeName)
		result.Outputs.Parameters[out.Name] = ir.OutputParameterSpec{Type: primitive}
		log.Debug("classified output as parameter", "component", spec.Name, "output", out.Name, "type", primitive)
	}

	return result, nil
}
