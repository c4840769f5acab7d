package ir

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TypeSchemaString(t *testing.T) {
	t.Run("Should render the canonical YAML document", func(t *testing.T) {
		schema := &TypeSchema{Title: "kfp.Model", Type: "object"}
		rendered := schema.String()
		assert.Contains(t, rendered, "title: kfp.Model")
		assert.Contains(t, rendered, "type: object")
	})
}

func Test_TypeSchemaValidate(t *testing.T) {
	t.Run("Should accept an object value against an object schema", func(t *testing.T) {
		schema := &TypeSchema{
			Title: "kfp.Metrics",
			Type:  "object",
			Properties: map[string]any{
				"accuracy": map[string]any{"type": "number"},
			},
		}
		err := schema.Validate(context.Background(), map[string]any{"accuracy": 0.97})
		require.NoError(t, err)
	})

	t.Run("Should reject a value violating the schema", func(t *testing.T) {
		schema := &TypeSchema{Title: "kfp.Dataset", Type: "object"}
		err := schema.Validate(context.Background(), "not an object")
		require.Error(t, err)
	})

	t.Run("Should pass through a nil schema", func(t *testing.T) {
		var schema *TypeSchema
		err := schema.Validate(context.Background(), map[string]any{})
		require.NoError(t, err)
	})
}

func Test_PrimitiveType(t *testing.T) {
	t.Run("Should render proto enum names", func(t *testing.T) {
		assert.Equal(t, "INT", PrimitiveTypeInt.String())
		assert.Equal(t, "DOUBLE", PrimitiveTypeDouble.String())
		assert.Equal(t, "STRING", PrimitiveTypeString.String())
		assert.Equal(t, "PRIMITIVE_TYPE_UNSPECIFIED", PrimitiveTypeUnspecified.String())
	})

	t.Run("Should keep proto numbering", func(t *testing.T) {
		assert.Equal(t, int32(1), PrimitiveTypeInt.Number())
		assert.Equal(t, int32(2), PrimitiveTypeDouble.Number())
		assert.Equal(t, int32(3), PrimitiveTypeString.Number())
	})

	t.Run("Should marshal as the enum name", func(t *testing.T) {
		data, err := PrimitiveTypeDouble.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `"DOUBLE"`, string(data))
	})
}
