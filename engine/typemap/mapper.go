package typemap

import (
	"strings"

	"github.com/pipecast/pipecast/engine/component"
	"github.com/pipecast/pipecast/engine/ir"
)

// -----------------------------------------------------------------------------
// Mapper
// -----------------------------------------------------------------------------

// Mapper translates declared component I/O type names into IR types:
// artifact type schemas for the recognized artifact kinds, primitive
// types for parameters. Both lookup tables are built once by New and
// never mutated afterwards, so a single Mapper is safe for concurrent
// use without locking.
type Mapper struct {
	artifactTypes  map[string]ir.TypeSchema
	parameterTypes map[string]ir.PrimitiveType
}

// New builds a Mapper with the standard tables. Keys are lowercased;
// lookups are case-insensitive.
func New() *Mapper {
	return &Mapper{
		artifactTypes: map[string]ir.TypeSchema{
			"gcspath": {Title: "kfp.Artifact", Type: "object"},
			"model":   {Title: "kfp.Model", Type: "object"},
			"dataset": {Title: "kfp.Dataset", Type: "object"},
			"metrics": {Title: "kfp.Metrics", Type: "object"},
			"schema":  {Title: "kfp.Schema", Type: "object"},
		},
		parameterTypes: map[string]ir.PrimitiveType{
			"integer": ir.PrimitiveTypeInt,
			"int":     ir.PrimitiveTypeInt,
			"double":  ir.PrimitiveTypeDouble,
			"float":   ir.PrimitiveTypeDouble,
		},
	}
}

// IsArtifactType reports whether the declared type name maps to an
// artifact kind. The non-string variant is never an artifact.
func (m *Mapper) IsArtifactType(name TypeName) bool {
	if !name.IsString() {
		return false
	}
	_, ok := m.artifactTypes[strings.ToLower(name.Value())]
	return ok
}

// ArtifactTypeSchema returns the IR artifact type schema for the given
// type name. Lookup is case-insensitive; ok reports whether the name is
// a recognized artifact kind. The returned schema is a copy, callers
// may mutate it freely.
func (m *Mapper) ArtifactTypeSchema(typeName string) (*ir.TypeSchema, bool) {
	schema, ok := m.artifactTypes[strings.ToLower(typeName)]
	if !ok {
		return nil, false
	}
	return &schema, true
}

// ParameterType returns the IR primitive type for the given type name.
// The non-string variant and unrecognized aliases fall back to STRING;
// that default is deliberate, not an error.
func (m *Mapper) ParameterType(name TypeName) ir.PrimitiveType {
	if !name.IsString() {
		return ir.PrimitiveTypeString
	}
	if primitive, ok := m.parameterTypes[strings.ToLower(name.Value())]; ok {
		return primitive
	}
	return ir.PrimitiveTypeString
}

// InputArtifactTypeSchema finds the artifact type schema for the named
// component input. The scan is ordered and the first input with a
// matching name wins, even when duplicates exist.
func (m *Mapper) InputArtifactTypeSchema(inputName string, inputs []component.InputSpec) (*ir.TypeSchema, bool) {
	for i := range inputs {
		if inputs[i].Name != inputName {
			continue
		}
		typeName := FromValue(inputs[i].Type)
		if !typeName.IsString() {
			return nil, false
		}
		return m.ArtifactTypeSchema(typeName.Value())
	}
	return nil, false
}
