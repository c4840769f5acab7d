package component

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a component specification document from a YAML file.
func Load(path string) (*Spec, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve component spec path: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open component spec file: %w", err)
	}
	defer file.Close()

	var spec Spec
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("failed to decode component spec: %w", err)
	}

	spec.SetFilePath(absPath)
	return &spec, nil
}
