package ir

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/kaptinlin/jsonschema"
)

// -----------------------------------------------------------------------------
// TypeSchema
// -----------------------------------------------------------------------------

// TypeSchema is an artifact type schema document: a titled object-type
// declaration describing one artifact kind in the IR.
type TypeSchema struct {
	Title      string         `json:"title"                yaml:"title"`
	Type       string         `json:"type"                 yaml:"type"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// String renders the canonical YAML form of the schema document.
func (s *TypeSchema) String() string {
	bytes, err := yaml.Marshal(s)
	if err != nil {
		return ""
	}
	return string(bytes)
}

func (s *TypeSchema) Compile() (*jsonschema.Schema, error) {
	if s == nil {
		return nil, nil
	}
	bytes, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to compile type schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to compile type schema: %w", err)
	}
	return schema, nil
}

// Validate checks an artifact metadata value against the schema document.
func (s *TypeSchema) Validate(_ context.Context, value any) error {
	schema, err := s.Compile()
	if err != nil {
		return err
	}
	if schema == nil {
		return nil
	}
	result := schema.Validate(value)
	if result.Valid {
		return nil
	}
	return fmt.Errorf("type schema validation failed: %v", result.Errors)
}
