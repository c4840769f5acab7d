package component

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpecFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "component.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_Load(t *testing.T) {
	t.Run("Should load a component spec from YAML", func(t *testing.T) {
		path := writeSpecFile(t, `
name: train
description: Trains a model
inputs:
  - name: dataset
    type: Dataset
  - name: epochs
    type: Integer
    default: 10
outputs:
  - name: model
    type: Model
`)
		spec, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, spec)

		assert.Equal(t, "train", spec.Name)
		assert.Equal(t, "Trains a model", spec.Description)
		assert.Equal(t, path, spec.FilePath())
		require.Len(t, spec.Inputs, 2)
		assert.Equal(t, "Dataset", spec.Inputs[0].Type)
		assert.Equal(t, 10, spec.Inputs[1].Default)
		require.Len(t, spec.Outputs, 1)
		assert.Equal(t, "Model", spec.Outputs[0].Type)

		require.NoError(t, spec.Validate())
	})

	t.Run("Should preserve non-string type values as decoded", func(t *testing.T) {
		path := writeSpecFile(t, `
name: odd
inputs:
  - name: weird
    type:
      kind: Model
`)
		spec, err := Load(path)
		require.NoError(t, err)
		require.Len(t, spec.Inputs, 1)
		_, isString := spec.Inputs[0].Type.(string)
		assert.False(t, isString)
	})

	t.Run("Should return error for a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("Should return error for malformed YAML", func(t *testing.T) {
		path := writeSpecFile(t, "name: [unclosed")
		_, err := Load(path)
		require.Error(t, err)
	})
}

func Test_Validate(t *testing.T) {
	t.Run("Should reject a spec without a name", func(t *testing.T) {
		spec := &Spec{Inputs: []InputSpec{{Name: "a", Type: "Model"}}}
		require.Error(t, spec.Validate())
	})

	t.Run("Should reject an input without a name", func(t *testing.T) {
		spec := &Spec{Name: "c", Inputs: []InputSpec{{Type: "Model"}}}
		require.Error(t, spec.Validate())
	})

	t.Run("Should accept inputs without a type", func(t *testing.T) {
		spec := &Spec{Name: "c", Inputs: []InputSpec{{Name: "untyped"}}}
		require.NoError(t, spec.Validate())
	})
}

func Test_Merge(t *testing.T) {
	t.Run("Should merge with the other spec taking precedence", func(t *testing.T) {
		base := &Spec{Name: "base", Description: "base description"}
		override := &Spec{Name: "override"}

		require.NoError(t, base.Merge(override))
		assert.Equal(t, "override", base.Name)
		assert.Equal(t, "base description", base.Description)
	})

	t.Run("Should reject merging a non-spec value", func(t *testing.T) {
		spec := &Spec{Name: "base"}
		require.Error(t, spec.Merge("not a spec"))
	})
}

func Test_FindInput(t *testing.T) {
	spec := &Spec{
		Name: "dup",
		Inputs: []InputSpec{
			{Name: "a", Type: "Model"},
			{Name: "b", Type: "Integer"},
			{Name: "a", Type: "Dataset"},
		},
		Outputs: []OutputSpec{{Name: "out", Type: "Metrics"}},
	}

	t.Run("Should return the first input when names are duplicated", func(t *testing.T) {
		in := spec.FindInput("a")
		require.NotNil(t, in)
		assert.Equal(t, "Model", in.Type)
	})

	t.Run("Should return nil for an unknown input", func(t *testing.T) {
		assert.Nil(t, spec.FindInput("missing"))
	})

	t.Run("Should find outputs by name", func(t *testing.T) {
		out := spec.FindOutput("out")
		require.NotNil(t, out)
		assert.Equal(t, "Metrics", out.Type)
		assert.Nil(t, spec.FindOutput("missing"))
	})
}
